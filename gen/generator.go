/*
File    : dhadLang/gen/generator.go
Author  : t-011
*/

/*
Package gen implements the Dhad code generator.

The generator walks the AST produced by the parser and emits textual
x86-64 NASM assembly for Linux. Values live on the machine stack: every
expression leaves exactly one 8-byte value pushed, binary operators pop
two and push one, and variables are plain stack slots addressed relative
to rsp.

To make rsp-relative addressing work without a frame pointer, the
generator maintains a synthetic stack depth: StackSize counts the 8-byte
slots it believes are live at the current emission point. Every emitted
push increments it, every pop or explicit rsp adjustment decrements it
(except the unwind emitted before a return; see retCleanup), and a variable declared when the depth was k is read at offset
(StackSize - k) * 8 later on.

Scoping uses a chain of compile-time scopes (see the scope package):
entering a `{ ... }` pushes a fresh scope, leaving it pops the scope's
slots off the machine stack in one rsp adjustment. Early `return` instead
unwinds everything down to the enclosing function's base depth.

Errors (undeclared or redeclared names, bad calls) are collected like the
parser's, as "[line:col] GENERATOR ERROR: ..." strings; emission stops at
the first one.
*/
package gen

import (
	"bytes"
	"fmt"

	"github.com/t-011/dhadLang/lexer"
	"github.com/t-011/dhadLang/parser"
	"github.com/t-011/dhadLang/scope"
)

// Generator holds the state for emitting assembly from a parsed program.
type Generator struct {
	Prog *parser.RootNode // The program being compiled

	Output bytes.Buffer // Append-only assembly text

	// StackSize is the synthetic stack depth: the number of 8-byte slots
	// pushed since program start at the current emission point
	StackSize int

	// Vars is the innermost compile-time scope; its parent chain reaches
	// back to the program scope
	Vars *scope.Scope

	// Funcs maps function names to their declarations, for validating
	// calls and arity
	Funcs map[string]*parser.FunctionStatementNode

	// FuncBases records the StackSize snapshot taken on entry to each
	// function body; return unwinds to the innermost snapshot
	FuncBases []int

	// LabelCounter feeds createLabel; every label in a compilation is
	// distinct
	LabelCounter int

	// Errors collects generator diagnostics (the name errors)
	Errors []string
}

// NewGenerator creates a generator for the given program.
// Each compilation gets a fresh generator; nothing is shared.
func NewGenerator(prog *parser.RootNode) *Generator {
	return &Generator{
		Prog:  prog,
		Vars:  scope.NewScope(nil),
		Funcs: make(map[string]*parser.FunctionStatementNode),
	}
}

// GenProg emits the whole program and returns the assembly text.
//
// The preamble declares and opens the _start symbol; the epilogue issues
// an exit(0) syscall so a program that never calls exit still terminates
// cleanly when it falls off the end.
func (g *Generator) GenProg() string {

	g.Output.WriteString("global _start\n_start:\n")

	for _, stmt := range g.Prog.Statements {
		if g.HasErrors() {
			break
		}
		g.genStmt(stmt)
	}

	g.Output.WriteString("   mov rax, 60\n")
	g.Output.WriteString("   mov rdi, 0\n")
	g.Output.WriteString("   syscall\n")

	return g.Output.String()
}

// emit writes one indented instruction line.
func (g *Generator) emit(format string, a ...interface{}) {
	g.Output.WriteString("   ")
	fmt.Fprintf(&g.Output, format, a...)
	g.Output.WriteString("\n")
}

// emitLabel writes a label definition line.
func (g *Generator) emitLabel(label string) {
	g.Output.WriteString(label)
	g.Output.WriteString(":\n")
}

// push emits a push of the given operand and bumps the synthetic depth.
func (g *Generator) push(operand string) {
	g.emit("push %s", operand)
	g.StackSize++
}

// pop emits a pop into the given register and drops the synthetic depth.
func (g *Generator) pop(reg string) {
	g.emit("pop %s", reg)
	g.StackSize--
}

// scopeBegin pushes a fresh compile-time scope. Nothing is emitted;
// slots only appear when declarations inside the scope push values.
func (g *Generator) scopeBegin() {
	g.Vars = scope.NewScope(g.Vars)
}

// scopeEnd pops the innermost scope: the slots of every variable declared
// in it are discarded with a single rsp adjustment, and the synthetic
// depth drops by the same amount.
func (g *Generator) scopeEnd() {
	scopeSize := g.Vars.Size()
	g.emit("add rsp, %d", scopeSize*8)
	g.StackSize -= scopeSize
	g.Vars = g.Vars.Parent
}

// scopeDiscard pops the innermost scope without emitting anything.
// Used when closing a function's parameter scope: control has already
// left through ret, so there is no runtime cleanup to do, only
// compile-time bookkeeping.
func (g *Generator) scopeDiscard() {
	g.StackSize -= g.Vars.Size()
	g.Vars = g.Vars.Parent
}

// createLabel returns a fresh "labelN" name. The counter is never reset,
// so every label emitted across a single compilation is distinct.
func (g *Generator) createLabel() string {
	label := fmt.Sprintf("label%d", g.LabelCounter)
	g.LabelCounter++
	return label
}

// addError records a generator diagnostic anchored at the given token.
func (g *Generator) addError(tok lexer.Token, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	g.Errors = append(g.Errors, fmt.Sprintf("[%d:%d] GENERATOR ERROR: %s", tok.Line, tok.Column, msg))
}

// HasErrors returns true if generation hit a name error.
func (g *Generator) HasErrors() bool {
	return len(g.Errors) > 0
}

// GetErrors returns all generator errors collected so far.
func (g *Generator) GetErrors() []string {
	return g.Errors
}
