/*
File    : dhadLang/print_visitor.go
Author  : t-011
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/t-011/dhadLang/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that renders the AST as an indented tree.
// It backs the --ast mode of the CLI.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent indents the buffer by the current indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Program (%d statements)\n", len(node.Statements)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIntegerLiteralExpressionNode visits an integer literal node
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("IntLit (%s)\n", node.Literal()))
}

// VisitIdentifierExpressionNode visits an identifier node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Ident (%s)\n", node.Name))
}

// VisitParenthesizedExpressionNode visits a parenthesized expression node
func (p *PrintingVisitor) VisitParenthesizedExpressionNode(node parser.ParenthesizedExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Paren (%s)\n", node.Literal()))
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBinaryExpressionNode visits a binary expression node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Binary [%s] (%s)\n", node.Operation.Literal, node.Literal()))
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a function call node
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Call [%s] (%d args)\n", node.FunctionIdentifier.Name, len(node.Arguments)))
	p.Indent += INDENT_SIZE
	for _, arg := range node.Arguments {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitExitStatementNode visits an exit statement node
func (p *PrintingVisitor) VisitExitStatementNode(node parser.ExitStatementNode) {
	p.indent()
	p.Buf.WriteString("Exit\n")
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitDeclarativeStatementNode visits a let statement node
func (p *PrintingVisitor) VisitDeclarativeStatementNode(node parser.DeclarativeStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Let [%s]\n", node.Identifier.Name))
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitAssignmentStatementNode visits an assignment statement node
func (p *PrintingVisitor) VisitAssignmentStatementNode(node parser.AssignmentStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Assign [%s]\n", node.Identifier.Name))
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBlockStatementNode visits a scope node
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Scope (%d statements)\n", len(node.Statements)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIfStatementNode visits an if statement node
func (p *PrintingVisitor) VisitIfStatementNode(node parser.IfStatementNode) {
	p.indent()
	p.Buf.WriteString("If\n")
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.ThenBlock.Accept(p)
	if node.Pred != nil {
		node.Pred.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitElifPredicateNode visits an elif link node
func (p *PrintingVisitor) VisitElifPredicateNode(node parser.ElifPredicateNode) {
	p.indent()
	p.Buf.WriteString("Elif\n")
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Body.Accept(p)
	if node.Pred != nil {
		node.Pred.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitElsePredicateNode visits an else node
func (p *PrintingVisitor) VisitElsePredicateNode(node parser.ElsePredicateNode) {
	p.indent()
	p.Buf.WriteString("Else\n")
	p.Indent += INDENT_SIZE
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitWhileLoopStatementNode visits a while loop node
func (p *PrintingVisitor) VisitWhileLoopStatementNode(node parser.WhileLoopStatementNode) {
	p.indent()
	p.Buf.WriteString("While\n")
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitFunctionStatementNode visits a function declaration node
func (p *PrintingVisitor) VisitFunctionStatementNode(node parser.FunctionStatementNode) {
	p.indent()
	params := ""
	for i, param := range node.FuncParams {
		if i > 0 {
			params += ","
		}
		params += param.Name
	}
	p.Buf.WriteString(fmt.Sprintf("FuncDecl [%s] (%s)\n", node.FuncName.Name, params))
	p.Indent += INDENT_SIZE
	node.FuncBody.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits a return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString("Return\n")
	p.Indent += INDENT_SIZE
	node.Expr.Accept(p)
	p.Indent -= INDENT_SIZE
}

// String returns the rendered tree
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
