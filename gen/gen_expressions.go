/*
File    : dhadLang/gen/gen_expressions.go
Author  : t-011
*/
package gen

import (
	"fmt"

	"github.com/t-011/dhadLang/lexer"
	"github.com/t-011/dhadLang/parser"
)

// genExpr emits code that evaluates an expression.
//
// Contract: every genExpr call leaves exactly one 8-byte value on the
// machine stack and increments StackSize by exactly 1 net. The whole
// generator leans on this invariant: statements pop what they need and
// scope teardown counts declared slots, nothing else.
func (g *Generator) genExpr(node parser.ExpressionNode) {
	if g.HasErrors() {
		return
	}
	switch n := node.(type) {

	case *parser.IntegerLiteralExpressionNode:
		g.emit("mov rax, %s", n.Token.Literal)
		g.push("rax")

	case *parser.IdentifierExpressionNode:
		v, ok := g.Vars.LookUp(n.Name)
		if !ok {
			g.addError(n.Token, "undeclared identifier: %s", n.Name)
			return
		}
		// The variable's slot sits (StackSize - StackLoc) slots above rsp.
		offset := (g.StackSize - v.StackLoc) * 8
		g.push(fmt.Sprintf("QWORD [rsp + %d]", offset))

	case *parser.ParenthesizedExpressionNode:
		g.genExpr(n.Expr)

	case *parser.CallExpressionNode:
		g.genCallExpression(n)

	case *parser.BinaryExpressionNode:
		g.genBinaryExpression(n)

	default:
		g.addError(lexer.Token{}, "unexpected expression node %T", node)
	}
}

// genBinaryExpression emits code for one binary operation.
//
// Both operands are evaluated first (left then right, so the right
// operand ends up on top), then popped into rbx and rax. Arithmetic
// results are pushed from rax; division pushes the quotient from rax and
// modulus pushes the remainder from rdx, both after cqo sign-extends the
// dividend into rdx:rax. Comparisons materialize 0 or 1 through a setcc
// on al widened with movzx.
func (g *Generator) genBinaryExpression(n *parser.BinaryExpressionNode) {
	g.genExpr(n.Left)
	g.genExpr(n.Right)
	if g.HasErrors() {
		return
	}

	g.pop("rbx")
	g.pop("rax")

	switch n.Operation.Type {

	case lexer.PLUS_OP:
		g.emit("add rax, rbx")
		g.push("rax")

	case lexer.SUB_OP:
		g.emit("sub rax, rbx")
		g.push("rax")

	case lexer.MULT_OP:
		g.emit("imul rax, rbx")
		g.push("rax")

	case lexer.DIV_OP:
		g.emit("cqo")
		g.emit("idiv rbx")
		g.push("rax")

	case lexer.MOD_OP:
		g.emit("cqo")
		g.emit("idiv rbx")
		g.push("rdx")

	case lexer.EQEQ_OP:
		g.genComparison("sete")

	case lexer.BANGEQ_OP:
		g.genComparison("setne")

	case lexer.GT_OP:
		g.genComparison("setg")

	case lexer.LT_OP:
		g.genComparison("setl")

	default:
		g.addError(n.Operation, "unexpected binary operator: %s", n.Operation.Literal)
	}
}

// genComparison emits the shared tail of the comparison operators: the
// operands are already in rax (left) and rbx (right), and the result is
// a 0/1 value pushed as a full 8-byte slot. The setcc mnemonics are the
// signed ones, matching the language's signed 64-bit integers.
func (g *Generator) genComparison(setcc string) {
	g.emit("cmp rax, rbx")
	g.emit("%s al", setcc)
	g.emit("movzx rax, al")
	g.push("rax")
}
