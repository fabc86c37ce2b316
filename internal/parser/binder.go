package parser

import (
	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/token"
)

// parseBinder parses `name` or `name: Ty`. An unannotated binder gets a
// fresh inference variable for its type, same as any other AST node
// (spec.md §3).
func (p *Parser) parseBinder() (ast.Binder, *diagnostics.Error) {
	idTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return ast.Binder{}, err
	}
	ty := p.freshInferAt(idTok)
	if p.matches(token.COLON) {
		ty, err = p.parseType()
		if err != nil {
			return ast.Binder{}, err
		}
	}
	return ast.Binder{Sp: p.spanFrom(idTok), Name: idTok.Lexeme, Ty: ty}, nil
}
