/*
File    : dhadLang/main.go
Author  : t-011

Package main is the entry point for the Dhad compiler.
It provides these modes of operation:
1. File Mode (default): compile a Dhad source file to a Linux executable
2. Assembly Mode (--asm-only): stop after writing out.asm
3. AST Mode (--ast): parse a file and dump the syntax tree
4. REPL Mode (repl): interactively compile snippets and show the assembly

The compiler uses a lexer-parser-generator pipeline: UTF-8 source is
decoded to code points, tokenized, parsed into an arena-backed AST, and
emitted as x86-64 NASM assembly, which is then handed to nasm and ld.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/t-011/dhadLang/file"
	"github.com/t-011/dhadLang/gen"
	"github.com/t-011/dhadLang/parser"
	"github.com/t-011/dhadLang/repl"
)

// VERSION represents the current version of the Dhad compiler
var VERSION = "v1.0.0"

// AUTHOR contains the maintainer information
var AUTHOR = "t-011"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "dhad >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
 ██████╗  ██╗  ██╗  █████╗  ██████╗
 ██╔══██╗ ██║  ██║ ██╔══██╗ ██╔══██╗
 ██║  ██║ ███████║ ███████║ ██║  ██║
 ██║  ██║ ██╔══██║ ██╔══██║ ██║  ██║
 ██████╔╝ ██║  ██║ ██║  ██║ ██████╔╝
 ╚═════╝  ╚═╝  ╚═╝ ╚═╝  ╚═╝ ╚═════╝   (ض)
`

// LINE is a separator line used for visual formatting
var LINE = "----------------------------------------------------------------"

// Color definitions for CLI output:
// - redColor: error messages and critical failures
// - yellowColor: results
// - cyanColor: informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Dhad compiler.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	dhad <filename>            - Compile the file, assemble and link it
//	dhad --asm-only <filename> - Compile the file, write out.asm only
//	dhad --ast <filename>      - Parse the file and dump the AST
//	dhad repl                  - Start the interactive compile loop
//	dhad --help                - Display help information
//	dhad --version             - Display version information
//
// Invoking the compiler with no arguments at all is an error.
func main() {
	if len(os.Args) < 2 {
		redColor.Fprintln(os.Stderr, "Too few inputs")
		os.Exit(1)
	}

	arg := os.Args[1]

	if arg == "--help" || arg == "-h" {
		showHelp()
		os.Exit(0)
	}

	if arg == "--version" || arg == "-v" {
		showVersion()
		os.Exit(0)
	}

	if arg == "repl" {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	if arg == "--ast" {
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "Too few inputs")
			os.Exit(1)
		}
		dumpAst(os.Args[2])
		return
	}

	if arg == "--asm-only" {
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "Too few inputs")
			os.Exit(1)
		}
		compileFile(os.Args[2], true)
		return
	}

	compileFile(arg, false)
}

// showHelp displays the help information for the Dhad compiler
func showHelp() {
	cyanColor.Println("Dhad - A Compiled Programming Language with Arabic Keywords")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  dhad <path-to-file>            Compile a Dhad file to ./out")
	yellowColor.Println("  dhad --asm-only <path-to-file> Compile a Dhad file to ./out.asm only")
	yellowColor.Println("  dhad --ast <path-to-file>      Parse a Dhad file and print its AST")
	yellowColor.Println("  dhad repl                      Start the interactive compile loop")
	yellowColor.Println("  dhad --help                    Display this help message")
	yellowColor.Println("  dhad --version                 Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLE PROGRAM:")
	yellowColor.Println("  دع س = 40 + 2;")
	yellowColor.Println("  خروج(س);")
	cyanColor.Println("")
	cyanColor.Println("The generated assembly targets x86-64 Linux and is assembled with")
	cyanColor.Println("nasm -felf64 and linked with ld.")
}

// showVersion displays the version information for the Dhad compiler
func showVersion() {
	cyanColor.Println("Dhad - A Compiled Programming Language with Arabic Keywords")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// compile runs the front end and code generator over a source string.
// It returns the generated assembly, or exits with status 1 after
// printing every collected diagnostic.
func compile(source string) string {
	par := parser.NewParser(source)
	root := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	g := gen.NewGenerator(root)
	asm := g.GenProg()

	if g.HasErrors() {
		for _, msg := range g.GetErrors() {
			redColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	return asm
}

// compileFile compiles a Dhad source file into out.asm and, unless
// asmOnly is set, hands the result to nasm and ld.
func compileFile(fileName string, asmOnly bool) {
	source, err := file.ReadSource(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	asm := compile(source)

	if err := file.WriteAssembly(asm); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if !asmOnly {
		file.Assemble()
	}
}

// dumpAst parses a Dhad source file and prints the syntax tree.
func dumpAst(fileName string) {
	source, err := file.ReadSource(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	par := parser.NewParser(source)
	root := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	fmt.Println(visitor)
}
