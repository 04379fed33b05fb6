/*
File    : dhadLang/gen/gen_statements.go
Author  : t-011
*/
package gen

import (
	"github.com/t-011/dhadLang/parser"
	"github.com/t-011/dhadLang/scope"
)

// genStmt emits code for a single statement.
// This is the statement dispatcher; control flow and functions live in
// gen_controls.go and gen_functions.go.
func (g *Generator) genStmt(node parser.StatementNode) {
	if g.HasErrors() {
		return
	}
	switch n := node.(type) {

	case *parser.ExitStatementNode:
		g.genExitStatement(n)

	case *parser.DeclarativeStatementNode:
		g.genLetStatement(n)

	case *parser.AssignmentStatementNode:
		g.genAssignmentStatement(n)

	case *parser.BlockStatementNode:
		g.genScope(n)

	case *parser.IfStatementNode:
		g.genIfStatement(n)

	case *parser.WhileLoopStatementNode:
		g.genWhileLoop(n)

	case *parser.FunctionStatementNode:
		g.genFunctionStatement(n)

	case *parser.ReturnStatementNode:
		g.genReturnStatement(n)
	}
}

// genExitStatement emits an exit(expr) statement: evaluate the status
// expression, pop it into rdi and issue the exit syscall.
func (g *Generator) genExitStatement(n *parser.ExitStatementNode) {
	g.genExpr(n.Expr)
	if g.HasErrors() {
		return
	}

	g.emit("mov rax, 60")
	g.pop("rdi")
	g.emit("syscall")
}

// genLetStatement emits a variable declaration.
//
// Declaring a name already visible anywhere in the enclosing scope chain
// is an error. Otherwise the initializer's value simply stays where
// genExpr pushed it: that slot IS the variable, bound at the current
// synthetic depth.
func (g *Generator) genLetStatement(n *parser.DeclarativeStatementNode) {
	if g.Vars.Declared(n.Identifier.Name) {
		g.addError(n.Identifier.Token, "identifier already used: %s", n.Identifier.Name)
		return
	}
	g.genExpr(n.Expr)
	if g.HasErrors() {
		return
	}
	g.Vars.Bind(n.Identifier.Name, scope.Var{StackLoc: g.StackSize})
}

// genAssignmentStatement emits an assignment to an existing variable:
// evaluate the right-hand side, pop it into rax, and store it back into
// the variable's slot.
func (g *Generator) genAssignmentStatement(n *parser.AssignmentStatementNode) {
	v, ok := g.Vars.LookUp(n.Identifier.Name)
	if !ok {
		g.addError(n.Identifier.Token, "undeclared identifier: %s", n.Identifier.Name)
		return
	}
	g.genExpr(n.Expr)
	if g.HasErrors() {
		return
	}
	g.pop("rax")
	g.emit("mov [rsp + %d], rax", (g.StackSize-v.StackLoc)*8)
}

// genScope emits a `{ ... }` scope: a fresh compile-time scope around the
// statements, and one rsp adjustment on exit that discards every slot the
// scope declared. Synthetic depth and scope-chain depth are identical
// before and after.
func (g *Generator) genScope(n *parser.BlockStatementNode) {
	g.scopeBegin()

	for _, stmt := range n.Statements {
		if g.HasErrors() {
			break
		}
		g.genStmt(stmt)
	}

	g.scopeEnd()
}
