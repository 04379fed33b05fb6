/*
File    : dhadLang/repl/repl.go
Author  : t-011

Package repl implements the interactive loop of the Dhad compiler.
Unlike an interpreter REPL there is nothing to evaluate: each entered
program is compiled on the spot and the generated NASM assembly is
printed, which makes the loop a quick way to inspect what the code
generator does with a snippet.

The REPL uses the readline library for line editing and history, and
colors its output: assembly in yellow, diagnostics in red.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/t-011/dhadLang/gen"
	"github.com/t-011/dhadLang/parser"
)

// Color definitions for REPL output
// - blueColor: decorative lines and separators
// - yellowColor: generated assembly
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the interactive compile loop instance.
// It encapsulates the configuration needed to run a session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the compiler
	Author  string // Author information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	cyanColor.Fprintf(writer, "%s\n", "Welcome to Dhad!")
	cyanColor.Fprintf(writer, "%s\n", "Type a program and press enter to see its assembly")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Compiles each entered line and prints the assembly or diagnostics
// 4. Continues until '.exit' or EOF (Ctrl+D)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == ".exit" {
			cyanColor.Fprintln(writer, "Bye!")
			break
		}
		if line == ".help" {
			cyanColor.Fprintln(writer, "Type a Dhad program to see its generated assembly")
			cyanColor.Fprintln(writer, ".exit quits")
			continue
		}

		r.CompileLine(line, writer)
	}
}

// CompileLine compiles a single entered program and writes the generated
// assembly (or the diagnostics) to the writer.
func (r *Repl) CompileLine(line string, writer io.Writer) {
	par := parser.NewParser(line)
	root := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}

	g := gen.NewGenerator(root)
	asm := g.GenProg()
	if g.HasErrors() {
		for _, msg := range g.GetErrors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}

	yellowColor.Fprint(writer, asm)
	blueColor.Fprintf(writer, "%s\n", r.Line)
}
