/*
File    : dhadLang/gen/gen_controls.go
Author  : t-011
*/
package gen

import (
	"github.com/t-011/dhadLang/parser"
)

// genIfStatement emits a conditional chain.
//
// The condition is evaluated and popped; zero means false, anything else
// means true. A jz skips the then-scope to the next link of the chain,
// and every taken scope jumps to the shared end label:
//
//	<condition>
//	   pop rax
//	   cmp rax, 0
//	   jz label1
//	<then scope>
//	   jmp endlabel2
//	label1:
//	<predicate chain>
//	endlabel2:
func (g *Generator) genIfStatement(n *parser.IfStatementNode) {
	g.genExpr(n.Condition)
	if g.HasErrors() {
		return
	}
	g.pop("rax")
	g.emit("cmp rax, 0")

	label := g.createLabel()
	g.emit("jz %s", label)

	g.genScope(n.ThenBlock)

	endLabel := "end" + g.createLabel()
	g.emit("jmp %s", endLabel)

	g.emitLabel(label)

	if n.Pred != nil {
		g.genIfPredicate(n.Pred, endLabel)
	}

	g.emitLabel(endLabel)
}

// genIfPredicate emits one link of an elif/else chain. Elif links repeat
// the if shape against the shared end label; an else scope just runs.
func (g *Generator) genIfPredicate(pred parser.IfPredicateNode, endLabel string) {
	if g.HasErrors() {
		return
	}
	switch p := pred.(type) {

	case *parser.ElifPredicateNode:
		g.genExpr(p.Condition)
		if g.HasErrors() {
			return
		}
		g.pop("rax")
		g.emit("cmp rax, 0")

		label := g.createLabel()
		g.emit("jz %s", label)

		g.genScope(p.Body)

		g.emit("jmp %s", endLabel)

		g.emitLabel(label)

		if p.Pred != nil {
			g.genIfPredicate(p.Pred, endLabel)
		}

	case *parser.ElsePredicateNode:
		g.genScope(p.Body)
	}
}

// genWhileLoop emits a while loop.
//
//	label1:
//	<condition>
//	   pop rax
//	   cmp rax, 0
//	   jz endlabel2
//	<body scope>
//	   jmp label1
//	endlabel2:
func (g *Generator) genWhileLoop(n *parser.WhileLoopStatementNode) {
	startLabel := g.createLabel()
	endLabel := "end" + g.createLabel()

	g.emitLabel(startLabel)

	g.genExpr(n.Condition)
	if g.HasErrors() {
		return
	}
	g.pop("rax")
	g.emit("cmp rax, 0")
	g.emit("jz %s", endLabel)

	g.genScope(n.Body)

	g.emit("jmp %s", startLabel)
	g.emitLabel(endLabel)
}
