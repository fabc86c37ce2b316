// Package driver wires lexing, parsing, constraint generation, solving,
// and normalization into the one entry point the CLI and the REPL both
// call: GenerateAST. Staging is expressed as an internal/pipeline run,
// the way the teacher's own pipeline package sequences its compiler
// stages, generalized here to this front end's three stages (lex, parse,
// and infer+solve+normalize).
package driver

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/infer"
	"github.com/hark-lang/hark/internal/lexer"
	"github.com/hark-lang/hark/internal/parser"
	"github.com/hark-lang/hark/internal/pipeline"
	"github.com/hark-lang/hark/internal/span"
	"github.com/hark-lang/hark/internal/types"
)

// Result is everything GenerateAST produces for one source string: the
// typed AST, its principal (normalized) type, and any diagnostics. Expr
// and Ty are nil once Diagnostics.Err() is non-nil.
type Result struct {
	Expr        ast.Expr
	Ty          types.Ty
	Diagnostics *diagnostics.List
}

// GenerateAST runs the full pipeline over one top-level expression.
func GenerateAST(source string) Result {
	ctx := &pipeline.Context{
		Source:  source,
		Counter: ids.New(),
		Env:     env.New(),
	}
	ctx = pipeline.New(lexStage{}, parseStage{}, inferStage{}).Run(ctx)
	if ctx.Diags.Err() != nil {
		return Result{Diagnostics: ctx.Diags}
	}
	return Result{Expr: ctx.Expr, Ty: ctx.Ty, Diagnostics: ctx.Diags}
}

type lexStage struct{}

func (lexStage) Process(ctx *pipeline.Context) *pipeline.Context {
	tokens, errs := lexer.Lex(ctx.Source)
	ctx.Tokens = tokens
	for _, e := range errs {
		lexErr, ok := e.(*lexer.Error)
		if !ok {
			continue
		}
		ctx.Diags = ctx.Diags.Append(diagnostics.New(lexErr.Code,
			span.Single(lexErr.ByteIndex, lexErr.Line), "%s", lexErr.Message))
	}
	return ctx
}

type parseStage struct{}

func (parseStage) Process(ctx *pipeline.Context) *pipeline.Context {
	expr, diags := parser.Parse(ctx.Tokens, ctx.Counter)
	ctx.Expr = expr
	if diags != nil {
		for _, d := range diags.Errs() {
			ctx.Diags = ctx.Diags.Append(d)
		}
	}
	return ctx
}

type inferStage struct{}

func (inferStage) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Expr == nil {
		return ctx
	}
	ty, constraint, err := infer.Infer(ctx.Expr, ctx.Env, ctx.Counter)
	if err != nil {
		ctx.Diags = ctx.Diags.Append(err)
		return ctx
	}
	subst, err := types.Solve(constraint)
	if err != nil {
		ctx.Diags = ctx.Diags.Append(err)
		return ctx
	}
	ctx.Ty = types.NewNormalizer().Normalize(types.Apply(subst, ty))
	return ctx
}
