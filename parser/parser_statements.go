/*
File    : dhadLang/parser/parser_statements.go
Author  : t-011
*/
package parser

import (
	"fmt"

	"github.com/t-011/dhadLang/lexer"
)

// parseStatement parses a single statement.
// This is the main dispatcher that determines what type of statement to
// parse based on the current token.
//
// Returns:
//
//	A StatementNode representing the parsed statement, or nil for empty
//	statements and errors
//
// Supported statement types:
//   - exit statements:        exit(expr);
//   - declarations:           let name = expr;
//   - assignments:            name = expr;
//   - function declarations:  name(p1, p2) { ... }
//   - scopes:                 { ... }
//   - conditionals:           if (...) { ... } elif ... else { ... }
//   - while loops:            while (...) { ... }
//   - return statements:      return expr;
//
// Identifier-led statements are ambiguous one token in: `name =` is an
// assignment and `name (` is a function declaration. (At term position
// inside an expression, `name (` means a call instead; the enclosing
// production decides.)
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {

	// ignore stray semicolons
	case lexer.SEMI_DELIM:
		return nil

	// lexing already failed; the error is recorded on the lexer
	case lexer.INVALID_TYPE:
		return nil

	case lexer.EXIT_KEY:
		return par.parseExitStatement()

	case lexer.LET_KEY:
		return par.parseLetStatement()

	case lexer.OPEN_CURLY:
		return par.parseBlockStatement()

	case lexer.IF_KEY:
		return par.parseIfStatement()

	case lexer.WHILE_KEY:
		return par.parseWhileLoop()

	case lexer.RETURN_KEY:
		return par.parseReturnStatement()

	case lexer.IDENTIFIER_ID:
		if par.NextToken.Type == lexer.EQUAL_OP {
			return par.parseAssignmentStatement()
		}
		if par.NextToken.Type == lexer.OPEN_PAREN {
			return par.parseFunctionStatement()
		}
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: invalid statement at '%s'",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil

	default:
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: invalid statement at '%s'",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
}

// parseExitStatement parses exit statements.
//
// Syntax:
//
//	exit(expression);
//
// The expression becomes the process exit status.
func (par *Parser) parseExitStatement() StatementNode {
	node := par.Nodes.Exits.Alloc()
	node.ExitToken = par.CurrToken
	if !par.expectAdvance(lexer.OPEN_PAREN) {
		return nil
	}
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.SEMI_DELIM) {
		return nil
	}
	return node
}

// parseLetStatement parses variable declaration statements.
//
// Syntax:
//
//	let identifier = expression;
//
// Redeclaration checks happen in the generator, where scoping is known.
func (par *Parser) parseLetStatement() StatementNode {
	node := par.Nodes.Lets.Alloc()
	node.LetToken = par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	node.Identifier = IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
	if !par.expectAdvance(lexer.EQUAL_OP) {
		return nil
	}
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMI_DELIM) {
		return nil
	}
	return node
}

// parseAssignmentStatement parses assignments to existing variables.
//
// Syntax:
//
//	identifier = expression;
func (par *Parser) parseAssignmentStatement() StatementNode {
	node := par.Nodes.Assigns.Alloc()
	node.Identifier = IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
	if !par.expectAdvance(lexer.EQUAL_OP) {
		return nil
	}
	node.Operation = par.CurrToken
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMI_DELIM) {
		return nil
	}
	return node
}

// parseBlockStatement parses scopes (code blocks).
// A scope is a sequence of statements enclosed in curly braces.
//
// Syntax:
//
//	{ statement1 statement2 ... }
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := par.Nodes.Blocks.Alloc()
	block.Statements = make([]StatementNode, 0)
	par.advance()
	for par.CurrToken.Type != lexer.CLOSE_CURLY && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if par.HasErrors() {
			return nil
		}
		par.advance()
	}
	if par.CurrToken.Type != lexer.CLOSE_CURLY {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected '}'",
			par.CurrToken.Line, par.CurrToken.Column)
		par.addError(msg)
		return nil
	}

	return block
}

// parseIfStatement parses conditionals with optional elif/else chains.
//
// Syntax:
//
//	if (condition) { thenScope }
//	if (condition) { thenScope } elif (condition2) { scope2 } else { scope3 }
//
// The elif/else continuation hangs off the if node as a predicate chain:
// each elif may link to at most one further predicate, and the chain
// terminates with either nothing or an else.
func (par *Parser) parseIfStatement() StatementNode {
	node := par.Nodes.Ifs.Alloc()
	node.IfToken = par.CurrToken
	if !par.expectAdvance(lexer.OPEN_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression()
	if node.Condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.OPEN_CURLY) {
		return nil
	}
	node.ThenBlock = par.parseBlockStatement()
	if node.ThenBlock == nil {
		return nil
	}
	if par.NextToken.Type == lexer.ELIF_KEY || par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // move onto elif/else
		node.Pred = par.parseIfPredicate()
		if node.Pred == nil {
			return nil
		}
	}
	return node
}

// parseIfPredicate parses the continuation of a conditional: either an
// elif link (which may chain further) or a terminating else.
func (par *Parser) parseIfPredicate() IfPredicateNode {
	if par.CurrToken.Type == lexer.ELIF_KEY {
		node := par.Nodes.Elifs.Alloc()
		node.ElifToken = par.CurrToken
		if !par.expectAdvance(lexer.OPEN_PAREN) {
			return nil
		}
		par.advance()
		node.Condition = par.parseExpression()
		if node.Condition == nil {
			return nil
		}
		if !par.expectAdvance(lexer.CLOSE_PAREN) {
			return nil
		}
		if !par.expectAdvance(lexer.OPEN_CURLY) {
			return nil
		}
		node.Body = par.parseBlockStatement()
		if node.Body == nil {
			return nil
		}
		if par.NextToken.Type == lexer.ELIF_KEY || par.NextToken.Type == lexer.ELSE_KEY {
			par.advance()
			node.Pred = par.parseIfPredicate()
			if node.Pred == nil {
				return nil
			}
		}
		return node
	}

	// else branch
	node := par.Nodes.Elses.Alloc()
	node.ElseToken = par.CurrToken
	if !par.expectAdvance(lexer.OPEN_CURLY) {
		return nil
	}
	node.Body = par.parseBlockStatement()
	if node.Body == nil {
		return nil
	}
	return node
}

// parseWhileLoop parses while loop statements.
//
// Syntax:
//
//	while (condition) { body }
func (par *Parser) parseWhileLoop() StatementNode {
	node := par.Nodes.Whiles.Alloc()
	node.WhileToken = par.CurrToken
	if !par.expectAdvance(lexer.OPEN_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression()
	if node.Condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.OPEN_CURLY) {
		return nil
	}
	node.Body = par.parseBlockStatement()
	if node.Body == nil {
		return nil
	}
	return node
}

// parseFunctionStatement parses function declarations.
//
// Syntax:
//
//	name(param1, param2, ...) { body }
//
// There is no introducing keyword; the `name (` shape at statement
// position is what selects this production.
func (par *Parser) parseFunctionStatement() StatementNode {
	node := par.Nodes.Funcs.Alloc()
	node.FuncName = IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}
	node.FuncParams = make([]*IdentifierExpressionNode, 0)
	if !par.expectAdvance(lexer.OPEN_PAREN) {
		return nil
	}

	// Handle empty parameters case
	if par.NextToken.Type != lexer.CLOSE_PAREN {
		// First parameter
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		param := par.Nodes.Idents.Alloc()
		param.Token = par.CurrToken
		param.Name = par.CurrToken.Literal
		node.FuncParams = append(node.FuncParams, param)

		// Subsequent parameters
		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance() // Consume comma
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			param := par.Nodes.Idents.Alloc()
			param.Token = par.CurrToken
			param.Name = par.CurrToken.Literal
			node.FuncParams = append(node.FuncParams, param)
		}
	}
	if !par.expectAdvance(lexer.CLOSE_PAREN) {
		return nil
	}

	if !par.expectAdvance(lexer.OPEN_CURLY) {
		return nil
	}
	node.FuncBody = par.parseBlockStatement()
	if node.FuncBody == nil {
		return nil
	}
	return node
}

// parseReturnStatement parses return statements.
//
// Syntax:
//
//	return expression;
func (par *Parser) parseReturnStatement() StatementNode {
	node := par.Nodes.Returns.Alloc()
	node.ReturnToken = par.CurrToken
	par.advance()
	node.Expr = par.parseExpression()
	if node.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMI_DELIM) {
		return nil
	}
	return node
}
