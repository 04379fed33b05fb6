/*
File    : dhadLang/parser/parser_expressions.go
Author  : t-011
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/t-011/dhadLang/lexer"
)

// parseExpression is the entry point for parsing expressions.
// It delegates to parseInternal with minimum precedence, allowing
// all operators to be parsed.
//
// Returns:
//
//	An ExpressionNode representing the parsed expression
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the core of the precedence climbing algorithm.
// It parses expressions while respecting operator precedence.
//
// Parameters:
//
//	currPrecedence - The minimum precedence level for operators to parse
//
// Returns:
//
//	An ExpressionNode representing the parsed expression
//
// Algorithm:
//  1. Parse a term (literal, identifier, call, or parenthesized group)
//  2. While the next operator's precedence meets currPrecedence:
//     a. Parse the operator as an infix expression
//     b. The result becomes the new left operand
//  3. Return the final expression
//
// The inner recursive call in parseBinaryExpression uses the operator's
// precedence + 1, which is what makes every operator left-associative.
func (par *Parser) parseInternal(currPrecedence int) ExpressionNode {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: invalid expression at '%s'",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF_TYPE && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		par.advance()
		if !has {
			msg := fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected operator: %s",
				par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
			par.addError(msg)
			return nil
		}
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseNumberLiteral parses integer literal expressions.
// The lexeme is validated here so the generator can embed it verbatim
// as a 64-bit immediate.
//
// Examples:
//
//	42, 0, 255
func (par *Parser) parseNumberLiteral() ExpressionNode {
	token := par.CurrToken
	if _, err := strconv.ParseInt(token.Literal, 10, 64); err != nil {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: could not parse number literal: %s",
			token.Line, token.Column, token.Literal)
		par.addError(msg)
		return nil
	}
	node := par.Nodes.Integers.Alloc()
	node.Token = token
	return node
}

// parseIdentifierExpression parses identifier-led terms.
// An identifier can be either a variable read or a function call; one
// token of lookahead decides.
//
// Examples:
//
//	x          - Variable read
//	جمع(4, 5)  - Function call
func (par *Parser) parseIdentifierExpression() ExpressionNode {

	// may be a variable read or a function call expression
	if par.NextToken.Type == lexer.OPEN_PAREN {
		return par.parseCallExpression()
	}

	varToken := par.CurrToken
	node := par.Nodes.Idents.Alloc()
	node.Token = varToken
	node.Name = varToken.Literal
	return node
}

// parseCallExpression parses function call expressions.
//
// Syntax:
//
//	functionName(arg1, arg2, ...)
//	functionName()  (no arguments)
//
// Argument order is positionally significant: the generator pushes them
// left to right.
func (par *Parser) parseCallExpression() ExpressionNode {
	callNode := par.Nodes.Calls.Alloc()
	callNode.FunctionIdentifier = IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}

	if !par.expectAdvance(lexer.OPEN_PAREN) {
		return nil
	}
	// if there are arguments, parse them
	if par.NextToken.Type != lexer.CLOSE_PAREN {
		par.advance()
		for {
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			callNode.Arguments = append(callNode.Arguments, arg)
			if par.NextToken.Type == lexer.COMMA_DELIM {
				par.advance()
				par.advance()
			} else {
				break
			}
		}
	}

	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}
	return callNode
}

// parseParenthesizedExpression parses expressions enclosed in parentheses.
// Parentheses are used for grouping and overriding operator precedence.
//
// Examples:
//
//	(5 + 3) * 2
//	(a == b) + 1
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	// we are already at the OPEN_PAREN, so just advance
	par.advance()
	paren := par.Nodes.Parens.Alloc()
	paren.Expr = par.parseExpression()
	if paren.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}

	return paren
}

// parseBinaryExpression parses binary (infix) expressions.
// Binary expressions have the form: left operator right
//
// Parameters:
//
//	left - The already-parsed left operand
//
// Returns:
//
//	A BinaryExpressionNode representing the complete expression
//
// Supported operators:
//
//	Arithmetic: +, -, *, /, %
//	Comparison: ==, !=, >, <
//
// Examples:
//
//	5 + 3, a * b, x == y, n < 10
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}

	node := par.Nodes.Binaries.Alloc()
	node.Operation = op
	node.Left = left
	node.Right = right
	return node
}
