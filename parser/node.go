/*
File    : dhadLang/parser/node.go
Author  : t-011
*/
package parser

import (
	"github.com/t-011/dhadLang/arena"
	"github.com/t-011/dhadLang/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or code generation.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Expression visitors
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 0
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)         // Variable reads: س, counter
	VisitParenthesizedExpressionNode(node ParenthesizedExpressionNode)   // Grouping: (expr)
	VisitBinaryExpressionNode(node BinaryExpressionNode)                 // Binary operations: + - * / % == != > <
	VisitCallExpressionNode(node CallExpressionNode)                     // Function calls: name(arg1, arg2)

	// Statement visitors
	VisitExitStatementNode(node ExitStatementNode)               // Exit statements: exit(expr);
	VisitDeclarativeStatementNode(node DeclarativeStatementNode) // Declarations: let x = expr;
	VisitAssignmentStatementNode(node AssignmentStatementNode)   // Assignments: x = expr;
	VisitBlockStatementNode(node BlockStatementNode)             // Scopes: { stmt1; stmt2; }
	VisitIfStatementNode(node IfStatementNode)                   // Conditionals with elif/else chains
	VisitWhileLoopStatementNode(node WhileLoopStatementNode)     // While loops
	VisitFunctionStatementNode(node FunctionStatementNode)       // Function declarations
	VisitReturnStatementNode(node ReturnStatementNode)           // Return statements

	// Conditional chain visitors
	VisitElifPredicateNode(node ElifPredicateNode) // elif (cond) { ... } links
	VisitElsePredicateNode(node ElsePredicateNode) // terminating else { ... }
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes.
// Expressions are not statements in Dhad: a bare expression at statement
// position is a parse error.
type ExpressionNode interface {
	Node
	Expression()
}

// IfPredicateNode: the continuation of an if statement.
// A predicate is either an elif link (which may chain to a further
// predicate) or a terminating else.
type IfPredicateNode interface {
	Node
	Predicate()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// IntegerLiteralExpressionNode: represents an integer literal
// Example: 42, 0, 255
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its literal text
}

func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

func (node *IntegerLiteralExpressionNode) Expression() {

}

// IdentifierExpressionNode: represents a variable read or a name position
// (declaration target, function name, parameter). Names are compared
// byte-exact as UTF-8; no normalization is applied.
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token (for error positions)
	Name  string      // The identifier text
}

func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

func (node *IdentifierExpressionNode) Expression() {

}

// ParenthesizedExpressionNode: an expression wrapped in parentheses for
// precedence control
// Example: (2 + 3) * 4
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (node *ParenthesizedExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

func (node *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitParenthesizedExpressionNode(*node)
}

func (node *ParenthesizedExpressionNode) Expression() {

}

// BinaryExpressionNode: a binary operation with two operands
// Example: 2 + 3, س * ص, a == b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The operator token (+ - * / % == != > <)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Literal + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

func (node *BinaryExpressionNode) Expression() {

}

// CallExpressionNode: a function call expression
// Example: جمع(4, 5)
type CallExpressionNode struct {
	FunctionIdentifier IdentifierExpressionNode // The function name being called
	Arguments          []ExpressionNode         // Argument expressions, call-site order
}

func (node *CallExpressionNode) Literal() string {
	args := ""
	for _, arg := range node.Arguments {
		args += arg.Literal() + ","
	}
	if len(args) > 0 {
		args = args[:len(args)-1]
	}
	return node.FunctionIdentifier.Literal() + "(" + args + ")"
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

func (node *CallExpressionNode) Expression() {

}

// ExitStatementNode: terminates the program with a status code
// Example: exit(42);
type ExitStatementNode struct {
	ExitToken lexer.Token    // The 'exit' keyword token
	Expr      ExpressionNode // The status expression
}

func (node *ExitStatementNode) Literal() string {
	return "exit(" + node.Expr.Literal() + ");"
}

func (node *ExitStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExitStatementNode(*node)
}

func (node *ExitStatementNode) Statement() {

}

// DeclarativeStatementNode: a variable declaration statement
// Example: let x = 10;
type DeclarativeStatementNode struct {
	LetToken   lexer.Token              // The 'let' keyword token
	Identifier IdentifierExpressionNode // The variable being declared
	Expr       ExpressionNode           // The initialization expression
}

func (node *DeclarativeStatementNode) Literal() string {
	return "let " + node.Identifier.Name + " = " + node.Expr.Literal() + ";"
}

func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(*node)
}

func (node *DeclarativeStatementNode) Statement() {

}

// AssignmentStatementNode: assignment to an already-declared variable
// Example: x = x + 1;
type AssignmentStatementNode struct {
	Identifier IdentifierExpressionNode // The variable being assigned
	Operation  lexer.Token              // The '=' token
	Expr       ExpressionNode           // The expression being assigned
}

func (node *AssignmentStatementNode) Literal() string {
	return node.Identifier.Name + " = " + node.Expr.Literal() + ";"
}

func (node *AssignmentStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentStatementNode(*node)
}

func (node *AssignmentStatementNode) Statement() {

}

// BlockStatementNode: a scope enclosed in braces
// Example: { let x = 5; exit(x); }
type BlockStatementNode struct {
	Statements []StatementNode // Statements in the scope
}

func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += "}"
	return str
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

func (node *BlockStatementNode) Statement() {

}

// IfStatementNode: a conditional with an optional elif/else chain
// Example: if (cond) { ... } elif (cond2) { ... } else { ... }
type IfStatementNode struct {
	IfToken   lexer.Token         // The 'if' keyword token
	Condition ExpressionNode      // The condition expression
	ThenBlock *BlockStatementNode // Scope to run when the condition is nonzero
	Pred      IfPredicateNode     // Optional elif/else chain (nil if absent)
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBlock.Literal()
	if node.Pred != nil {
		res += " " + node.Pred.Literal()
	}
	return res
}

func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(*node)
}

func (node *IfStatementNode) Statement() {

}

// ElifPredicateNode: one elif link of a conditional chain.
// May chain to at most one further predicate, terminating with either
// nothing or an ElsePredicateNode.
type ElifPredicateNode struct {
	ElifToken lexer.Token         // The 'elif' keyword token
	Condition ExpressionNode      // The condition expression
	Body      *BlockStatementNode // Scope to run when the condition is nonzero
	Pred      IfPredicateNode     // Optional continuation (nil if absent)
}

func (node *ElifPredicateNode) Literal() string {
	res := "elif (" + node.Condition.Literal() + ") " + node.Body.Literal()
	if node.Pred != nil {
		res += " " + node.Pred.Literal()
	}
	return res
}

func (node *ElifPredicateNode) Accept(visitor NodeVisitor) {
	visitor.VisitElifPredicateNode(*node)
}

func (node *ElifPredicateNode) Predicate() {

}

// ElsePredicateNode: the terminating else of a conditional chain
type ElsePredicateNode struct {
	ElseToken lexer.Token         // The 'else' keyword token
	Body      *BlockStatementNode // Fallback scope
}

func (node *ElsePredicateNode) Literal() string {
	return "else " + node.Body.Literal()
}

func (node *ElsePredicateNode) Accept(visitor NodeVisitor) {
	visitor.VisitElsePredicateNode(*node)
}

func (node *ElsePredicateNode) Predicate() {

}

// WhileLoopStatementNode: a condition-tested loop
// Example: while (x < 5) { x = x + 1; }
type WhileLoopStatementNode struct {
	WhileToken lexer.Token         // The 'while' keyword token
	Condition  ExpressionNode      // The loop condition
	Body       *BlockStatementNode // The loop body scope
}

func (node *WhileLoopStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

func (node *WhileLoopStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileLoopStatementNode(*node)
}

func (node *WhileLoopStatementNode) Statement() {

}

// FunctionStatementNode: a function declaration
// Example: جمع(a, b) { ارجع a + b; }
type FunctionStatementNode struct {
	FuncName   IdentifierExpressionNode    // The function name
	FuncParams []*IdentifierExpressionNode // Parameter names, declaration order
	FuncBody   *BlockStatementNode         // The function body scope
}

func (node *FunctionStatementNode) Literal() string {
	funcParams := ""
	for _, param := range node.FuncParams {
		funcParams += param.Literal() + ","
	}
	if len(funcParams) > 0 {
		funcParams = funcParams[:len(funcParams)-1]
	}
	return node.FuncName.Literal() + "(" + funcParams + ") " + node.FuncBody.Literal()
}

func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(*node)
}

func (node *FunctionStatementNode) Statement() {

}

// ReturnStatementNode: returns a value from the enclosing function
// Example: return x + 5;
type ReturnStatementNode struct {
	ReturnToken lexer.Token    // The 'return' keyword token
	Expr        ExpressionNode // The expression to return
}

func (node *ReturnStatementNode) Literal() string {
	return "return " + node.Expr.Literal() + ";"
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

func (node *ReturnStatementNode) Statement() {

}

// NodeArena groups one bump arena per AST node type. All node allocation
// in the parser except the RootNode itself (allocated by Parse) goes
// through these arenas, so every such node lives until the
// parser itself is dropped and cross-references between nodes are always
// valid. Nothing is freed per node.
type NodeArena struct {
	Integers *arena.Arena[IntegerLiteralExpressionNode]
	Idents   *arena.Arena[IdentifierExpressionNode]
	Parens   *arena.Arena[ParenthesizedExpressionNode]
	Binaries *arena.Arena[BinaryExpressionNode]
	Calls    *arena.Arena[CallExpressionNode]
	Exits    *arena.Arena[ExitStatementNode]
	Lets     *arena.Arena[DeclarativeStatementNode]
	Assigns  *arena.Arena[AssignmentStatementNode]
	Blocks   *arena.Arena[BlockStatementNode]
	Ifs      *arena.Arena[IfStatementNode]
	Elifs    *arena.Arena[ElifPredicateNode]
	Elses    *arena.Arena[ElsePredicateNode]
	Whiles   *arena.Arena[WhileLoopStatementNode]
	Funcs    *arena.Arena[FunctionStatementNode]
	Returns  *arena.Arena[ReturnStatementNode]
}

// NewNodeArena creates the arenas backing a single compilation.
func NewNodeArena() *NodeArena {
	return &NodeArena{
		Integers: arena.NewArena[IntegerLiteralExpressionNode](arena.DEFAULT_BLOCK_CAP),
		Idents:   arena.NewArena[IdentifierExpressionNode](arena.DEFAULT_BLOCK_CAP),
		Parens:   arena.NewArena[ParenthesizedExpressionNode](arena.DEFAULT_BLOCK_CAP),
		Binaries: arena.NewArena[BinaryExpressionNode](arena.DEFAULT_BLOCK_CAP),
		Calls:    arena.NewArena[CallExpressionNode](arena.DEFAULT_BLOCK_CAP),
		Exits:    arena.NewArena[ExitStatementNode](arena.DEFAULT_BLOCK_CAP),
		Lets:     arena.NewArena[DeclarativeStatementNode](arena.DEFAULT_BLOCK_CAP),
		Assigns:  arena.NewArena[AssignmentStatementNode](arena.DEFAULT_BLOCK_CAP),
		Blocks:   arena.NewArena[BlockStatementNode](arena.DEFAULT_BLOCK_CAP),
		Ifs:      arena.NewArena[IfStatementNode](arena.DEFAULT_BLOCK_CAP),
		Elifs:    arena.NewArena[ElifPredicateNode](arena.DEFAULT_BLOCK_CAP),
		Elses:    arena.NewArena[ElsePredicateNode](arena.DEFAULT_BLOCK_CAP),
		Whiles:   arena.NewArena[WhileLoopStatementNode](arena.DEFAULT_BLOCK_CAP),
		Funcs:    arena.NewArena[FunctionStatementNode](arena.DEFAULT_BLOCK_CAP),
		Returns:  arena.NewArena[ReturnStatementNode](arena.DEFAULT_BLOCK_CAP),
	}
}
