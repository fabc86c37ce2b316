package prettyprint

import (
	"fmt"
	"strings"

	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/token"
)

// precApp is higher than every binary operator so a call's callee never
// needs parenthesizing unless it's itself a binary expression.
const precApp = 100

var precedence = map[token.Kind]int{
	token.DEQUAL: 1, token.BANGEQUAL: 1,
	token.LT: 1, token.LTE: 1, token.GT: 1, token.GTE: 1,
	token.PLUS: 2, token.MINUS: 2,
	token.STAR: 3, token.SLASH: 3,
	token.DSTAR: 4,
}

var rightAssoc = map[token.Kind]bool{token.DSTAR: true}

type prettyPrinter struct {
	buf strings.Builder
}

// Pretty renders expr as surface syntax, adding parentheses only where
// precedence would otherwise change how it reparses. It doesn't use
// ast.Visitor: the recursion needs a precedence argument threaded
// alongside the node, which the fixed Visitor signature doesn't carry,
// so it type-switches directly the way the teacher's own code printer does.
func Pretty(expr ast.Expr) string {
	p := &prettyPrinter{}
	p.expr(expr, 0)
	return p.buf.String()
}

func (p *prettyPrinter) expr(e ast.Expr, parentPrec int) {
	switch e := e.(type) {
	case *ast.Integral:
		fmt.Fprintf(&p.buf, "%d", e.Value)
	case *ast.Bool:
		fmt.Fprintf(&p.buf, "%t", e.Value)
	case *ast.Str:
		fmt.Fprintf(&p.buf, "%q", e.Value)
	case *ast.ID:
		p.buf.WriteString(e.Name)
	case *ast.Unary:
		p.buf.WriteString(e.Op.String())
		p.expr(e.Expr, precApp)
	case *ast.Binary:
		p.binary(e, parentPrec)
	case *ast.Grouping:
		p.buf.WriteString("(")
		p.expr(e.Inner, 0)
		p.buf.WriteString(")")
	case *ast.Tuple:
		p.buf.WriteString("(")
		for i, el := range e.Elems {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(el, 0)
		}
		p.buf.WriteString(")")
	case *ast.Block:
		p.block(e)
	case *ast.Let:
		p.let(e)
	case *ast.Lambda:
		p.lambda(e)
	case *ast.App:
		p.expr(e.Fn, precApp)
		p.buf.WriteString("(")
		for i, a := range e.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(a, 0)
		}
		p.buf.WriteString(")")
	default:
		p.buf.WriteString("<?>")
	}
}

func (p *prettyPrinter) binary(e *ast.Binary, parentPrec int) {
	prec := precedence[e.Op]
	needParens := prec < parentPrec
	if needParens {
		p.buf.WriteString("(")
	}
	leftPrec, rightPrec := prec, prec+1
	if rightAssoc[e.Op] {
		leftPrec, rightPrec = prec+1, prec
	}
	p.expr(e.Left, leftPrec)
	fmt.Fprintf(&p.buf, " %s ", e.Op)
	p.expr(e.Right, rightPrec)
	if needParens {
		p.buf.WriteString(")")
	}
}

func (p *prettyPrinter) block(e *ast.Block) {
	p.buf.WriteString("{ ")
	for i, sub := range e.Exprs {
		if i > 0 {
			p.buf.WriteString("; ")
		}
		p.expr(sub, 0)
	}
	if e.Suppressed && len(e.Exprs) > 0 {
		p.buf.WriteString(";")
	}
	p.buf.WriteString(" }")
}

func (p *prettyPrinter) let(e *ast.Let) {
	p.buf.WriteString("let ")
	p.buf.WriteString(e.Binder.Name)
	p.buf.WriteString(" = ")
	p.expr(e.Bound, 0)
	if e.Body != nil {
		p.buf.WriteString(" in ")
		p.expr(e.Body, 0)
	}
}

func (p *prettyPrinter) lambda(e *ast.Lambda) {
	p.buf.WriteString("fn ")
	parens := len(e.Params) != 1
	if parens {
		p.buf.WriteString("(")
	}
	for i, param := range e.Params {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.buf.WriteString(param.Name)
	}
	if parens {
		p.buf.WriteString(")")
	}
	p.buf.WriteString(" => ")
	p.expr(e.Body, 0)
}
