/*
File    : dhadLang/repl/repl_test.go
Author  : t-011
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRepl() *Repl {
	return NewRepl("banner", "v0.0.0", "t-011", "----", "MIT", ">>> ")
}

// TestRepl_CompileLine checks that a valid program prints its assembly.
func TestRepl_CompileLine(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()

	r.CompileLine(`exit(42);`, &buf)

	out := buf.String()
	assert.Contains(t, out, "global _start")
	assert.Contains(t, out, "mov rax, 42")
	assert.Contains(t, out, "syscall")
}

// TestRepl_CompileLine_ParseError checks that diagnostics come back
// instead of assembly.
func TestRepl_CompileLine_ParseError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()

	r.CompileLine(`exit(42)`, &buf)

	out := buf.String()
	assert.Contains(t, out, "PARSER ERROR")
	assert.NotContains(t, out, "global _start")
}

// TestRepl_CompileLine_NameError checks that generator errors surface too.
func TestRepl_CompileLine_NameError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()

	r.CompileLine(`exit(x);`, &buf)

	out := buf.String()
	assert.Contains(t, out, "GENERATOR ERROR")
	assert.Contains(t, out, "undeclared identifier: x")
}

// TestRepl_PrintBannerInfo checks the banner fields reach the writer.
func TestRepl_PrintBannerInfo(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()

	r.PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "banner")
	assert.Contains(t, out, "v0.0.0")
	assert.Contains(t, out, "Welcome to Dhad!")
}
