/*
File    : dhadLang/parser/parser_precedence.go
Author  : t-011
*/
package parser

import "github.com/t-011/dhadLang/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Equality operators (== !=)
// 2. Relational operators (> <)
// 3. Additive operators (+ -)
// 4. Multiplicative operators (* / %)
//
// All operators are left-associative: the climber's recursive call uses
// getPrecedence(op) + 1, so an operator never extends its own right
// operand at equal precedence.
//
// Example: In "a + b * c", multiplication binds tighter than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	// Example: a == b, a != b
	EQUALITY_PRIORITY = 90

	// Relational operators: > <
	// Example: a < b, a > b
	RELATIONAL_PRIORITY = 100

	// Additive operators: + -
	// Example: a + b, a - b
	PLUS_PRIORITY = 120

	// Multiplicative operators: * / %
	// Example: a * b, a / b, a % b
	MUL_PRIORITY = 130
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the climbing algorithm, determining how
// tightly operators bind to their operands.
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns -1 for tokens that are not binary operators, which is what
//	terminates the climb at delimiters like ')' and ';'.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Multiplicative: * / %
	case lexer.MULT_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.SUB_OP:
		return PLUS_PRIORITY

	// Relational: > <
	case lexer.GT_OP, lexer.LT_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQEQ_OP, lexer.BANGEQ_OP:
		return EQUALITY_PRIORITY

	default:
		return -1 // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing binary expressions.
// The already-parsed left operand is passed in; the function parses the
// operator and right operand and returns the complete expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing terms: the prefix
// position of the climber (literals, identifiers, calls, grouping).
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a term parsing function
// for multiple token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
