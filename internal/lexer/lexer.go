// Package lexer is the external regex tokenizer SPEC_FULL.md §4.12 calls
// for: an ordered table of patterns tried at the current offset, a
// keyword map consulted after identifier matches, and two comment forms
// skipped between tokens. It is a direct Go rendering of the original
// implementation's regex-table lexer (see
// _examples/original_source/src/lexing/mod.rs), kept separate from the
// rest of the pipeline the way SPEC_FULL.md §1 describes it as an
// external collaborator.
package lexer

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/hark-lang/hark/internal/token"
)

// rule is one entry in the symbol table: match the regex anchored at the
// current offset, and if it wins, emit the given kind (subject to the
// keyword override for IDENTIFIER and TYPENAME).
type rule struct {
	pattern *regexp.Regexp
	kind    token.Kind
}

// Longer operators must precede their prefixes (e.g. "!=" before "!"),
// matching the ordering the original lexer relies on.
var rules = []rule{
	{regexp.MustCompile(`^(0|[1-9][0-9]*)`), token.INTEGRAL},
	{regexp.MustCompile(`^[a-z][a-zA-Z0-9]*`), token.IDENTIFIER},
	{regexp.MustCompile(`^[A-Z][A-Za-z]*`), token.TYPENAME},
	{regexp.MustCompile(`^".*?"`), token.STR},

	{regexp.MustCompile(`^->`), token.RARROW},
	{regexp.MustCompile(`^=>`), token.RFARROW},
	{regexp.MustCompile(`^==`), token.DEQUAL},
	{regexp.MustCompile(`^!=`), token.BANGEQUAL},
	{regexp.MustCompile(`^<=`), token.LTE},
	{regexp.MustCompile(`^>=`), token.GTE},
	{regexp.MustCompile(`^\*\*`), token.DSTAR},

	{regexp.MustCompile(`^,`), token.COMMA},
	{regexp.MustCompile(`^;`), token.SEMICOLON},
	{regexp.MustCompile(`^:`), token.COLON},
	{regexp.MustCompile(`^\\`), token.BACKSLASH},
	{regexp.MustCompile(`^\(`), token.LPAREN},
	{regexp.MustCompile(`^\)`), token.RPAREN},
	{regexp.MustCompile(`^\{`), token.LBRACE},
	{regexp.MustCompile(`^\}`), token.RBRACE},
	{regexp.MustCompile(`^\+`), token.PLUS},
	{regexp.MustCompile(`^-`), token.MINUS},
	{regexp.MustCompile(`^/`), token.SLASH},
	{regexp.MustCompile(`^\*`), token.STAR},
	{regexp.MustCompile(`^~`), token.TILDE},
	{regexp.MustCompile(`^!`), token.BANG},
	{regexp.MustCompile(`^=`), token.EQUAL},
	{regexp.MustCompile(`^<`), token.LT},
	{regexp.MustCompile(`^>`), token.GT},
}

var (
	whitespace   = regexp.MustCompile(`^[ \t\r]+`)
	newline      = regexp.MustCompile(`^\n`)
	lineComment  = regexp.MustCompile(`^//[^\n]*`)
	blockComment = regexp.MustCompile(`^/\*.*?\*/`)
)

// Lex-time error categories, reused verbatim as diagnostics.Error codes
// by internal/driver.
const (
	ErrUnknownChar  = "L-CHAR"
	ErrUnterminated = "L-STR"
)

// Error is a lex-time diagnostic: an unrecognized character or an
// unterminated literal. The external tokenizer contract (SPEC_FULL.md §6)
// surfaces these as plain strings; internal/driver wraps them into
// diagnostics.Error values with position information.
type Error struct {
	Code      string
	Message   string
	ByteIndex int
	Line      int
	Col       int
}

func (e *Error) Error() string { return e.Message }

// Lex tokenizes source, returning a token stream terminated by an EOF
// sentinel, or the lex errors encountered along the way.
func Lex(source string) ([]token.Token, []error) {
	var tokens []token.Token
	var errs []error

	i := 0
	line := 1
	col := 1

	advance := func(n int) {
		for _, r := range source[i : i+n] {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		i += n
	}

	for i < len(source) {
		rest := source[i:]

		if loc := whitespace.FindStringIndex(rest); loc != nil {
			advance(loc[1])
			continue
		}
		if loc := newline.FindStringIndex(rest); loc != nil {
			advance(loc[1])
			continue
		}
		if loc := lineComment.FindStringIndex(rest); loc != nil {
			advance(loc[1])
			continue
		}
		if loc := blockComment.FindStringIndex(rest); loc != nil {
			advance(loc[1])
			continue
		}

		matched := false
		for _, r := range rules {
			loc := r.pattern.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			lexeme := rest[:loc[1]]
			kind := r.kind
			if kind == token.IDENTIFIER || kind == token.TYPENAME {
				if kw, ok := token.Keywords[lexeme]; ok {
					kind = kw
				}
			}
			if kind == token.STR && !validString(lexeme) {
				errs = append(errs, &Error{
					Code:      ErrUnterminated,
					Message:   fmt.Sprintf("unterminated string literal starting at %q", lexeme),
					ByteIndex: i, Line: line, Col: col,
				})
				advance(len(lexeme))
				matched = true
				break
			}
			tokens = append(tokens, token.Token{
				Kind: kind, Lexeme: lexeme, ByteIndex: i, Line: line, Col: col,
			})
			advance(len(lexeme))
			matched = true
			break
		}

		if matched {
			continue
		}

		r, size := decodeRune(rest)
		code, message := ErrUnknownChar, fmt.Sprintf("unrecognized character %q", r)
		if r == '"' {
			// The STR rule only matches a closed literal, so a quote that
			// reaches here opens a string with no closing quote.
			code, message = ErrUnterminated, "unterminated string literal"
		}
		errs = append(errs, &Error{
			Code:      code,
			Message:   message,
			ByteIndex: i, Line: line, Col: col,
		})
		advance(size)
	}

	tokens = append(tokens, token.Token{Kind: token.EOF, Lexeme: "", ByteIndex: i, Line: line, Col: col})
	return tokens, errs
}

func validString(lexeme string) bool {
	return len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"'
}

func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size
}

// ParseIntegral is a small helper shared with the parser's literal
// parselet so the "0 | [1-9][0-9]*" lexical rule and the numeric
// conversion stay next to each other conceptually.
func ParseIntegral(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}
