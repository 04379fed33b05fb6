/*
File    : dhadLang/parser/parser.go
Author  : t-011
*/

/*
Package parser implements a recursive descent parser with a Pratt-style
precedence climber for the Dhad programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (integer literals, identifiers, grouping, calls, binary ops)
- Statements (exit, let, assignment, scopes, if/elif/else, while,
  function declarations, return)
- Operator precedence and left associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Two tokens of lookahead to disambiguate identifier-led statements
  (assignment vs function declaration) and identifier-led terms
  (variable read vs function call)
- Arena-backed AST: all nodes below the RootNode are bump-allocated and
  live exactly as long as the parser does
- Error collection (doesn't panic on first error)
*/
package parser

import (
	"fmt"

	"github.com/t-011/dhadLang/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Dhad source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Tokens that can start a term
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/infix operators

	// Nodes owns every AST node produced by this parser
	Nodes *NodeArena

	// Collect parsing errors instead of panicking
	// Parse stops at the first one, so this holds at most one parser error
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Dhad source code to parse (UTF-8)
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex: lex,
	}

	par.init()

	return par
}

// init initializes the parser's internal state:
// 1. Function maps for Pratt parsing
// 2. The node arena
// 3. Error collection
// 4. Initial token lookahead
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Nodes = NewNodeArena()
	par.Errors = make([]string, 0)

	// Register term parsing functions
	// These handle tokens that can start an expression

	// Integer literals: 42
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.INT_LIT)

	// Identifiers: variable reads and function calls
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.OPEN_PAREN)

	// Register binary/infix parsing functions
	// The lexer pre-merges '==' and '!=' into single tokens, so the
	// climber treats every operator uniformly.

	// Arithmetic operators: +, -, *, /, %
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.SUB_OP, lexer.MULT_OP, lexer.DIV_OP, lexer.MOD_OP)

	// Comparison operators: >, <, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.GT_OP, lexer.LT_OP, lexer.EQEQ_OP, lexer.BANGEQ_OP)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Returns:
//
//	true if the next token matched and we advanced, false otherwise
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it adds an error message to the error list. This function
// doesn't advance the parser, it only checks.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected '%s', got '%s'",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type)
		par.addError(msg)
		return false
	}
	return true
}

// addError adds an error message to the parser's error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are lexing or parsing errors.
// This should be checked after parsing to determine if the parse
// was successful.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0 || par.Lex.HasErrors()
}

// GetErrors returns all errors collected so far, lexer errors first.
func (par *Parser) GetErrors() []string {
	errs := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errs = append(errs, par.Lex.Errors...)
	errs = append(errs, par.Errors...)
	return errs
}

// Parse is the main parsing function that converts source code into an AST.
// It repeatedly parses statements until reaching the end of the token
// stream, building up a RootNode that contains all the parsed statements.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed statements
//
// Example:
//
//	root := NewParser("exit(42);").Parse()
func (par *Parser) Parse() *RootNode {

	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		if par.HasErrors() {
			break
		}
		par.advance()
	}

	return root
}
