// Package prettyprint renders an AST two ways: Debug produces an
// s-expression-like dump in which literal and identifier nodes carry the
// type the parser assigned them (an inference variable such as t3 for an
// identifier; solved types are not written back into the AST), and
// Pretty renders it back to surface syntax with minimal parentheses.
// Grounded on the teacher's internal/prettyprinter package, split the
// same way between a tree dumper and a precedence-aware code printer.
package prettyprint

import (
	"fmt"
	"strings"

	"github.com/hark-lang/hark/internal/ast"
)

type debugPrinter struct {
	buf strings.Builder
}

// Debug walks expr with the ast.Visitor dispatch and renders each node
// as a parenthesized tag plus its children, in the order the AST
// defines them.
func Debug(expr ast.Expr) string {
	d := &debugPrinter{}
	expr.Accept(d)
	return d.buf.String()
}

var _ ast.Visitor = (*debugPrinter)(nil)

func (d *debugPrinter) VisitIntegral(n *ast.Integral) {
	fmt.Fprintf(&d.buf, "(Integral %d : %s)", n.Value, n.Type())
}

func (d *debugPrinter) VisitBool(n *ast.Bool) {
	fmt.Fprintf(&d.buf, "(Bool %t : %s)", n.Value, n.Type())
}

func (d *debugPrinter) VisitStr(n *ast.Str) {
	fmt.Fprintf(&d.buf, "(Str %q)", n.Value)
}

func (d *debugPrinter) VisitID(n *ast.ID) {
	fmt.Fprintf(&d.buf, "(Id %s : %s)", n.Name, n.Type())
}

func (d *debugPrinter) VisitUnary(n *ast.Unary) {
	fmt.Fprintf(&d.buf, "(Unary %s ", n.Op)
	n.Expr.Accept(d)
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitBinary(n *ast.Binary) {
	fmt.Fprintf(&d.buf, "(Binary %s ", n.Op)
	n.Left.Accept(d)
	d.buf.WriteString(" ")
	n.Right.Accept(d)
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitGrouping(n *ast.Grouping) {
	d.buf.WriteString("(Grouping ")
	n.Inner.Accept(d)
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitTuple(n *ast.Tuple) {
	d.buf.WriteString("(Tuple")
	for _, el := range n.Elems {
		d.buf.WriteString(" ")
		el.Accept(d)
	}
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitBlock(n *ast.Block) {
	d.buf.WriteString("(Block")
	for _, el := range n.Exprs {
		d.buf.WriteString(" ")
		el.Accept(d)
	}
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitLet(n *ast.Let) {
	fmt.Fprintf(&d.buf, "(Let %s ", n.Binder.Name)
	n.Bound.Accept(d)
	if n.Body != nil {
		d.buf.WriteString(" ")
		n.Body.Accept(d)
	}
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitLambda(n *ast.Lambda) {
	d.buf.WriteString("(Lambda (")
	for i, p := range n.Params {
		if i > 0 {
			d.buf.WriteString(" ")
		}
		d.buf.WriteString(p.Name)
	}
	d.buf.WriteString(") ")
	n.Body.Accept(d)
	d.buf.WriteString(")")
}

func (d *debugPrinter) VisitApp(n *ast.App) {
	d.buf.WriteString("(App ")
	n.Fn.Accept(d)
	for _, a := range n.Args {
		d.buf.WriteString(" ")
		a.Accept(d)
	}
	d.buf.WriteString(")")
}
