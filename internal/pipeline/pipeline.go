// Package pipeline runs the lex/parse/infer stages as a small ordered
// sequence of processors over a shared context, the way the teacher's
// own pipeline package sequences its (much larger) compiler stages.
package pipeline

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/env"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/token"
	"github.com/hark-lang/hark/internal/types"
)

// Context carries one source string through lexing, parsing, and
// inference, accumulating diagnostics along the way instead of aborting
// at the first failing stage.
type Context struct {
	Source  string
	Counter *ids.Counter
	Env     *env.Env
	Tokens  []token.Token
	Expr    ast.Expr
	Ty      types.Ty
	Diags   *diagnostics.List
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Every stage is called even after a prior
// stage reported diagnostics, so lex errors are reported together with
// any parse or type errors found after them; a stage may still skip its
// work when an earlier one left it nothing to process.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
