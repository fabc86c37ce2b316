// Package ast is the expression AST spec.md §3 defines: one node type per
// ExprKind variant, each carrying its span, its parse-time type slot, and
// a node id from the shared counter (spec.md §4.3). Nodes are dispatched
// with a closed interface and a Visitor, the way the teacher's ast
// package dispatches its (much larger) surface language.
package ast

import (
	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

// Expr is any expression node. NodeID and Span are fixed at construction.
// Type is the tentative type assigned at parse time: a fresh inference
// variable unless the constructor admits a concrete ground type (literals).
type Expr interface {
	Span() span.Span
	NodeID() uint64
	Type() types.Ty
	Accept(v Visitor)
	exprNode()
}

// Binder is an identifier with a type: either a parsed annotation or a
// fresh inference variable (spec.md §3).
type Binder struct {
	Sp   span.Span
	Name string
	Ty   types.Ty
}

// Visitor lets callers (the inferencer, the pretty-printer) walk the AST
// without a type switch at every call site.
type Visitor interface {
	VisitIntegral(*Integral)
	VisitBool(*Bool)
	VisitStr(*Str)
	VisitID(*ID)
	VisitUnary(*Unary)
	VisitBinary(*Binary)
	VisitGrouping(*Grouping)
	VisitTuple(*Tuple)
	VisitBlock(*Block)
	VisitLet(*Let)
	VisitLambda(*Lambda)
	VisitApp(*App)
}

type base struct {
	Sp span.Span
	ID uint64
	Ty types.Ty
}

func (b *base) Span() span.Span  { return b.Sp }
func (b *base) NodeID() uint64   { return b.ID }
func (b *base) Type() types.Ty   { return b.Ty }

// Integral is an i64 literal.
type Integral struct {
	base
	Value int64
}

// Bool is a boolean literal.
type Bool struct {
	base
	Value bool
}

// Str is a string literal, quotes already stripped.
type Str struct {
	base
	Value string
}

// ID is an identifier reference.
type ID struct {
	base
	Name string
}

// Unary is a prefix operator application.
type Unary struct {
	base
	Op   token.Kind
	Expr Expr
}

// Binary is an infix operator application.
type Binary struct {
	base
	Op          token.Kind
	Left, Right Expr
}

// Grouping is a parenthesized single expression; its type equals the
// inner expression's type.
type Grouping struct {
	base
	Inner Expr
}

// Tuple is a parenthesized comma-separated list: `()` has 0 elements,
// `(e,)` has 1, `(e1, e2, ...)` has 2 or more.
type Tuple struct {
	base
	Elems []Expr
}

// Block is `{ e1; e2; ... en [;] }`. Suppressed is true iff a trailing
// semicolon is present or the block is empty.
type Block struct {
	base
	Exprs      []Expr
	Suppressed bool
}

// Let is a local binding. Body is nil for the canonical statement form
// (Let has type unit); when the optional `in` continuation is present,
// Body holds the continuation expression and Let's type is Body's type
// (SPEC_FULL.md §4.10).
type Let struct {
	base
	Binder Binder
	Bound  Expr
	Body   Expr
}

// Lambda is a function literal with typed or inferred parameters and an
// optional annotated return type.
type Lambda struct {
	base
	Params []Binder
	Ret    types.Ty
	Body   Expr
}

// App is a function call with an ordered argument vector.
type App struct {
	base
	Fn   Expr
	Args []Expr
}

func (e *Integral) exprNode() {}
func (e *Bool) exprNode()     {}
func (e *Str) exprNode()      {}
func (e *ID) exprNode()       {}
func (e *Unary) exprNode()    {}
func (e *Binary) exprNode()   {}
func (e *Grouping) exprNode() {}
func (e *Tuple) exprNode()    {}
func (e *Block) exprNode()    {}
func (e *Let) exprNode()      {}
func (e *Lambda) exprNode()   {}
func (e *App) exprNode()      {}

func (e *Integral) Accept(v Visitor) { v.VisitIntegral(e) }
func (e *Bool) Accept(v Visitor)     { v.VisitBool(e) }
func (e *Str) Accept(v Visitor)      { v.VisitStr(e) }
func (e *ID) Accept(v Visitor)       { v.VisitID(e) }
func (e *Unary) Accept(v Visitor)    { v.VisitUnary(e) }
func (e *Binary) Accept(v Visitor)   { v.VisitBinary(e) }
func (e *Grouping) Accept(v Visitor) { v.VisitGrouping(e) }
func (e *Tuple) Accept(v Visitor)    { v.VisitTuple(e) }
func (e *Block) Accept(v Visitor)    { v.VisitBlock(e) }
func (e *Let) Accept(v Visitor)      { v.VisitLet(e) }
func (e *Lambda) Accept(v Visitor)   { v.VisitLambda(e) }
func (e *App) Accept(v Visitor)      { v.VisitApp(e) }

// New builders fill in base fields so parselets stay short.
func NewIntegral(sp span.Span, id uint64, ty types.Ty, value int64) *Integral {
	return &Integral{base: base{Sp: sp, ID: id, Ty: ty}, Value: value}
}

func NewBool(sp span.Span, id uint64, ty types.Ty, value bool) *Bool {
	return &Bool{base: base{Sp: sp, ID: id, Ty: ty}, Value: value}
}

func NewStr(sp span.Span, id uint64, ty types.Ty, value string) *Str {
	return &Str{base: base{Sp: sp, ID: id, Ty: ty}, Value: value}
}

func NewID(sp span.Span, id uint64, ty types.Ty, name string) *ID {
	return &ID{base: base{Sp: sp, ID: id, Ty: ty}, Name: name}
}

func NewUnary(sp span.Span, id uint64, ty types.Ty, op token.Kind, expr Expr) *Unary {
	return &Unary{base: base{Sp: sp, ID: id, Ty: ty}, Op: op, Expr: expr}
}

func NewBinary(sp span.Span, id uint64, ty types.Ty, op token.Kind, left, right Expr) *Binary {
	return &Binary{base: base{Sp: sp, ID: id, Ty: ty}, Op: op, Left: left, Right: right}
}

func NewGrouping(sp span.Span, id uint64, inner Expr) *Grouping {
	return &Grouping{base: base{Sp: sp, ID: id, Ty: inner.Type()}, Inner: inner}
}

func NewTuple(sp span.Span, id uint64, ty types.Ty, elems []Expr) *Tuple {
	return &Tuple{base: base{Sp: sp, ID: id, Ty: ty}, Elems: elems}
}

func NewBlock(sp span.Span, id uint64, ty types.Ty, exprs []Expr, suppressed bool) *Block {
	return &Block{base: base{Sp: sp, ID: id, Ty: ty}, Exprs: exprs, Suppressed: suppressed}
}

func NewLet(sp span.Span, id uint64, ty types.Ty, binder Binder, bound, body Expr) *Let {
	return &Let{base: base{Sp: sp, ID: id, Ty: ty}, Binder: binder, Bound: bound, Body: body}
}

func NewLambda(sp span.Span, id uint64, ty types.Ty, params []Binder, ret types.Ty, body Expr) *Lambda {
	return &Lambda{base: base{Sp: sp, ID: id, Ty: ty}, Params: params, Ret: ret, Body: body}
}

func NewApp(sp span.Span, id uint64, ty types.Ty, fn Expr, args []Expr) *App {
	return &App{base: base{Sp: sp, ID: id, Ty: ty}, Fn: fn, Args: args}
}
