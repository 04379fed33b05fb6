/*
File    : dhadLang/gen/generator_test.go
Author  : t-011
*/
package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-011/dhadLang/parser"
)

// generate parses and generates a source string expected to compile
// cleanly, returning the generator for state inspection and its output.
func generate(t *testing.T, src string) (*Generator, string) {
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	g := NewGenerator(root)
	asm := g.GenProg()
	assert.False(t, g.HasErrors(), "unexpected generator errors: %v", g.GetErrors())
	return g, asm
}

// generateBad parses and generates a source string expected to fail in
// the generator, returning the first error message.
func generateBad(t *testing.T, src string) string {
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	g := NewGenerator(root)
	g.GenProg()
	assert.True(t, g.HasErrors(), "expected generator errors for %q", src)
	return g.GetErrors()[0]
}

// TestGenerator_EmptyProgram checks the boundary case: preamble and
// epilogue only, so the program exits 0 by falling off the end.
func TestGenerator_EmptyProgram(t *testing.T) {
	g, asm := generate(t, ``)

	expected := "global _start\n" +
		"_start:\n" +
		"   mov rax, 60\n" +
		"   mov rdi, 0\n" +
		"   syscall\n"
	assert.Equal(t, expected, asm)
	assert.Equal(t, 0, g.StackSize)
}

// TestGenerator_ExitStatement checks the exit syscall sequence.
func TestGenerator_ExitStatement(t *testing.T) {
	g, asm := generate(t, `exit(42);`)

	assert.Contains(t, asm, "   mov rax, 42\n   push rax\n")
	assert.Contains(t, asm, "   mov rax, 60\n   pop rdi\n   syscall\n")
	assert.Equal(t, 0, g.StackSize)
}

// TestGenerator_Arithmetic checks the operator sequences and that the
// epilogue still follows a leftover variable slot.
func TestGenerator_Arithmetic(t *testing.T) {
	_, asm := generate(t, `let x = 2 + 3 * 4; exit(x);`)

	// 3 * 4 first, then the addition, left operand popped into rax
	mulAt := strings.Index(asm, "   imul rax, rbx\n")
	addAt := strings.Index(asm, "   add rax, rbx\n")
	assert.True(t, mulAt >= 0 && addAt >= 0 && mulAt < addAt)
	assert.Contains(t, asm, "   pop rbx\n   pop rax\n")

	// x was the only slot pushed, so it reads at offset 0
	assert.Contains(t, asm, "   push QWORD [rsp + 0]\n")
}

// TestGenerator_DivisionAndModulus checks that both emit cqo before idiv
// and push the right half of the result.
func TestGenerator_DivisionAndModulus(t *testing.T) {
	_, asm := generate(t, `let x = 10; let y = 3; exit(x / y);`)
	assert.Contains(t, asm, "   cqo\n   idiv rbx\n   push rax\n")

	_, asm = generate(t, `let x = 10; let y = 3; exit(x % y);`)
	assert.Contains(t, asm, "   cqo\n   idiv rbx\n   push rdx\n")
}

// TestGenerator_Comparisons checks the 0/1 materialization of all four
// comparison operators.
func TestGenerator_Comparisons(t *testing.T) {
	_, asm := generate(t, `exit(1 == 2);`)
	assert.Contains(t, asm, "   cmp rax, rbx\n   sete al\n   movzx rax, al\n   push rax\n")

	_, asm = generate(t, `exit(1 != 2);`)
	assert.Contains(t, asm, "   setne al\n")

	_, asm = generate(t, `exit(3 > 2);`)
	assert.Contains(t, asm, "   setg al\n")

	_, asm = generate(t, `exit(3 < 2);`)
	assert.Contains(t, asm, "   setl al\n")
}

// TestGenerator_IdentifierOffsets checks the (stackSize - stackLoc) * 8
// addressing rule with two live variables.
func TestGenerator_IdentifierOffsets(t *testing.T) {
	_, asm := generate(t, `let x = 10; let y = 3; exit(x % y);`)

	// reading x at depth 2 gives (2-1)*8, then reading y at depth 3
	// gives (3-2)*8: both land at [rsp + 8]
	assert.Equal(t, 2, strings.Count(asm, "   push QWORD [rsp + 8]\n"))
}

// TestGenerator_Assignment checks the store-back sequence.
func TestGenerator_Assignment(t *testing.T) {
	g, asm := generate(t, `let x = 1; x = x + 1; exit(x);`)

	assert.Contains(t, asm, "   pop rax\n   mov [rsp + 0], rax\n")
	assert.Equal(t, 1, g.StackSize) // only x's slot remains
}

// TestGenerator_ScopeBalance checks that a scope leaves the synthetic
// depth exactly where it found it and pops its slots in one adjustment.
func TestGenerator_ScopeBalance(t *testing.T) {
	g, asm := generate(t, `{ let x = 5; let y = 6; }`)

	assert.Contains(t, asm, "   add rsp, 16\n")
	assert.Equal(t, 0, g.StackSize)
}

// TestGenerator_IfElifElseChain checks the jump structure of a chain.
func TestGenerator_IfElifElseChain(t *testing.T) {
	_, asm := generate(t, `if (1 == 2) { exit(1); } elif (3 > 2) { exit(7); } else { exit(0); }`)

	// the then-scope and every elif jump to the shared end label
	assert.Contains(t, asm, "   jz label0\n")
	assert.Equal(t, 2, strings.Count(asm, "   jmp endlabel1\n"))
	assert.Contains(t, asm, "label0:\n")
	assert.Contains(t, asm, "   jz label2\n")
	assert.Contains(t, asm, "endlabel1:\n")
}

// TestGenerator_WhileLoop checks the loop's test-jump-body-jump shape.
func TestGenerator_WhileLoop(t *testing.T) {
	g, asm := generate(t, `let x = 0; while (x < 5) { x = x + 1; } exit(x);`)

	assert.Contains(t, asm, "label0:\n")
	assert.Contains(t, asm, "   jz endlabel1\n")
	assert.Contains(t, asm, "   jmp label0\n")
	assert.Contains(t, asm, "endlabel1:\n")
	assert.Equal(t, 1, g.StackSize)
}

// TestGenerator_FunctionDeclarationAndCall checks the whole calling
// convention: jump over the body, uniform parameter copy, caller-side
// argument cleanup, and the pushed return value.
func TestGenerator_FunctionDeclarationAndCall(t *testing.T) {
	g, asm := generate(t, `sum(a, b) { return a + b; } exit(sum(4, 5));`)

	// straight-line flow skips the body
	assert.Contains(t, asm, "   jmp overlabel0sum\n")
	assert.Contains(t, asm, "sum:\n")
	assert.Contains(t, asm, "overlabel0sum:\n")

	// both parameters copy from the same offset: the pushes keep pace
	// with the arguments getting shallower
	assert.Equal(t, 2, strings.Count(asm, "   mov rax, [rsp + 16]\n"))

	// return: result into rax, unwind the two parameter slots, ret
	assert.Contains(t, asm, "   pop rax\n   add rsp, 16\n   ret\n")

	// caller cleans its two argument slots and pushes the result
	assert.Contains(t, asm, "   call sum\n   add rsp, 16\n   push rax\n")

	assert.Equal(t, 0, g.StackSize)
}

// TestGenerator_ReturnFromNestedScope checks that an early return unwinds
// params and every nested local in a single adjustment.
func TestGenerator_ReturnFromNestedScope(t *testing.T) {
	_, asm := generate(t, `deep(a) { { let x = 1; { let y = 2; return y; } } } exit(deep(0));`)

	// at the return: 1 param copy + x + y = 3 slots above the base
	assert.Contains(t, asm, "   pop rax\n   add rsp, 24\n   ret\n")
}

// TestGenerator_Recursion checks that a function may call itself: the
// name is registered before its body is generated.
func TestGenerator_Recursion(t *testing.T) {
	_, asm := generate(t, `f(n) { if (n < 1) { return 0; } return f(n - 1); } exit(f(3));`)
	assert.Equal(t, 2, strings.Count(asm, "   call f\n"))
}

// TestGenerator_LabelUniqueness collects every emitted label definition
// and checks they are all distinct.
func TestGenerator_LabelUniqueness(t *testing.T) {
	src := `
	f(a) { if (a > 1) { return 1; } return 0; }
	let x = 0;
	while (x < 3) {
		if (x == 1) { exit(f(x)); } elif (x == 2) { exit(2); } else { x = x + 1; }
	}
	exit(x);
	`
	_, asm := generate(t, src)

	seen := make(map[string]bool)
	for _, line := range strings.Split(asm, "\n") {
		if strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " ") {
			label := strings.TrimSuffix(line, ":")
			assert.False(t, seen[label], "label %s emitted twice", label)
			seen[label] = true
		}
	}
}

// TestGenerator_Determinism checks that the same source bytes always
// produce byte-identical assembly.
func TestGenerator_Determinism(t *testing.T) {
	src := `sum(a, b) { return a + b; } let x = sum(2, 3); exit(x * x);`

	par1 := parser.NewParser(src)
	g1 := NewGenerator(par1.Parse())
	par2 := parser.NewParser(src)
	g2 := NewGenerator(par2.Parse())

	assert.Equal(t, g1.GenProg(), g2.GenProg())
}

// TestGenerator_ArabicProgram generates the canonical-surface program end
// to end.
func TestGenerator_ArabicProgram(t *testing.T) {
	src := `
	دع س = 0;
	بينما (س < 5) {
		س = س + 1;
	}
	خروج(س);
	`
	g, asm := generate(t, src)
	assert.Contains(t, asm, "   jz endlabel1\n")
	assert.Contains(t, asm, "   syscall\n")
	assert.Equal(t, 1, g.StackSize)
}

// represents a generator error test case
type TestGenError struct {
	Input         string
	ExpectedError string
}

// TestGenerator_NameErrors checks every fatal name condition.
func TestGenerator_NameErrors(t *testing.T) {
	tests := []TestGenError{
		{Input: `exit(x);`, ExpectedError: "undeclared identifier: x"},
		{Input: `x = 1;`, ExpectedError: "undeclared identifier: x"},
		{Input: `let x = 1; let x = 2;`, ExpectedError: "identifier already used: x"},
		{Input: `let x = 1; { let x = 2; }`, ExpectedError: "identifier already used: x"},
		{Input: `f() { return 0; } f() { return 1; }`, ExpectedError: "function already declared: f"},
		{Input: `exit(f(1));`, ExpectedError: "undeclared function: f"},
		{Input: `f(a) { return a; } exit(f(1, 2));`, ExpectedError: "expects 1 arguments, got 2"},
		{Input: `return 5;`, ExpectedError: "return outside of a function"},
		{Input: `f(a, a) { return a; } exit(f(1, 2));`, ExpectedError: "identifier already used: a"},
	}

	for _, test := range tests {
		msg := generateBad(t, test.Input)
		assert.Contains(t, msg, test.ExpectedError, "input %q", test.Input)
		assert.Contains(t, msg, "GENERATOR ERROR")
	}
}

// TestGenerator_StackBalanceAcrossStatements checks the synthetic depth
// bookkeeping over a mixed program: one slot per live top-level variable,
// nothing more.
func TestGenerator_StackBalanceAcrossStatements(t *testing.T) {
	g, _ := generate(t, `
	let a = 1;
	let b = 2;
	{ let c = 3; }
	if (a < b) { let d = 4; } else { let e = 5; }
	while (a > 99) { let f = 6; }
	`)
	assert.Equal(t, 2, g.StackSize)
}
