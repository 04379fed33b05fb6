/*
File    : dhadLang/gen/gen_functions.go
Author  : t-011
*/
package gen

import (
	"github.com/t-011/dhadLang/parser"
	"github.com/t-011/dhadLang/scope"
)

// genFunctionStatement emits a function declaration.
//
// The body is emitted inline where the declaration appears, guarded by a
// jump over it so straight-line flow never falls into the function:
//
//	   jmp overlabel0name
//	name:
//	   mov rax, [rsp + paramCount*8]
//	   push rax                        ; once per parameter
//	<body scope>
//	   add rsp, N                      ; unwind to the function base
//	   ret
//	overlabel0name:
//
// Parameter copying relies on an equality that looks accidental but is
// exact: when parameters are copied in declaration order, the i-th
// argument sits at [rsp + paramCount*8] for every i. At entry the i-th
// argument (pushed left to right by the caller) is 8 + (paramCount-1-i)*8
// bytes above rsp, the +8 being the return address; after i copies rsp
// has dropped another i*8, and the terms sum to paramCount*8 regardless
// of i.
//
// The StackSize snapshot taken before the parameter pushes is the
// function base: return statements unwind to it, and the final cleanup
// before ret drops whatever is still above it (the parameter copies,
// after the body scope has already popped its locals).
func (g *Generator) genFunctionStatement(n *parser.FunctionStatementNode) {
	name := n.FuncName.Name
	if _, has := g.Funcs[name]; has {
		g.addError(n.FuncName.Token, "function already declared: %s", name)
		return
	}
	// registered before the body so the function can call itself
	g.Funcs[name] = n

	overLabel := "over" + g.createLabel() + name
	g.emit("jmp %s", overLabel)

	g.FuncBases = append(g.FuncBases, g.StackSize)
	g.scopeBegin()

	g.emitLabel(name)

	paramCount := len(n.FuncParams)
	for _, param := range n.FuncParams {
		g.emit("mov rax, [rsp + %d]", paramCount*8)
		g.push("rax")
		if g.Vars.Bind(param.Name, scope.Var{StackLoc: g.StackSize}) {
			g.addError(param.Token, "identifier already used: %s", param.Name)
			return
		}
	}

	g.genScope(n.FuncBody)

	g.retCleanup()
	g.emit("ret")

	// Control already left through ret, so the parameter scope closes
	// with bookkeeping only.
	g.scopeDiscard()
	g.FuncBases = g.FuncBases[:len(g.FuncBases)-1]

	g.emitLabel(overLabel)
}

// genCallExpression emits a function call.
//
// The caller evaluates arguments left to right (each pushes one slot),
// calls, then cleans its own arguments off the stack and pushes the
// return value from rax. Net effect on the synthetic depth is the +1
// every expression owes.
func (g *Generator) genCallExpression(n *parser.CallExpressionNode) {
	name := n.FunctionIdentifier.Name
	decl, has := g.Funcs[name]
	if !has {
		g.addError(n.FunctionIdentifier.Token, "undeclared function: %s", name)
		return
	}
	if len(n.Arguments) != len(decl.FuncParams) {
		g.addError(n.FunctionIdentifier.Token, "function %s expects %d arguments, got %d",
			name, len(decl.FuncParams), len(n.Arguments))
		return
	}

	for _, arg := range n.Arguments {
		g.genExpr(arg)
	}
	if g.HasErrors() {
		return
	}

	g.emit("call %s", name)

	nargs := len(n.Arguments)
	g.emit("add rsp, %d", nargs*8)
	g.StackSize -= nargs

	g.push("rax")
}

// genReturnStatement emits a return: evaluate the result into rax, unwind
// the stack to the enclosing function's base, and ret. The per-scope rsp
// adjustments of any scopes being exited are skipped because control
// leaves here; the single unwind covers all of them.
func (g *Generator) genReturnStatement(n *parser.ReturnStatementNode) {
	if len(g.FuncBases) == 0 {
		g.addError(n.ReturnToken, "return outside of a function")
		return
	}
	g.genExpr(n.Expr)
	if g.HasErrors() {
		return
	}
	g.pop("rax")
	g.retCleanup()
	g.emit("ret")
}

// retCleanup emits the rsp unwind from the current synthetic depth down
// to the enclosing function's base. Only text is emitted: the synthetic
// depth is left untouched, because emission continues with the
// still-live statements after the return.
func (g *Generator) retCleanup() {
	base := g.FuncBases[len(g.FuncBases)-1]
	g.emit("add rsp, %d", (g.StackSize-base)*8)
}
