package parser_test

import (
	"testing"

	"github.com/hark-lang/hark/internal/ast"
	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/ids"
	"github.com/hark-lang/hark/internal/lexer"
	"github.com/hark-lang/hark/internal/parser"
	"github.com/hark-lang/hark/internal/prettyprint"
)

// mustParse lexes and parses input, failing the test on any diagnostic.
func mustParse(t *testing.T, input string) ast.Expr {
	t.Helper()
	tokens, lexErrs := lexer.Lex(input)
	if len(lexErrs) > 0 {
		t.Fatalf("unexpected lex errors for %q: %v", input, lexErrs)
	}
	expr, diags := parser.Parse(tokens, ids.New())
	if diags != nil {
		t.Fatalf("unexpected parse errors for %q: %v", input, diags.Errs())
	}
	return expr
}

// expectParseError asserts parsing input fails with the given code.
func expectParseError(t *testing.T, input string, code string) *diagnostics.Error {
	t.Helper()
	tokens, lexErrs := lexer.Lex(input)
	if len(lexErrs) > 0 {
		t.Fatalf("unexpected lex errors for %q: %v", input, lexErrs)
	}
	_, diags := parser.Parse(tokens, ids.New())
	if diags == nil {
		t.Fatalf("expected a parse error for %q, got none", input)
	}
	errs := diags.Errs()
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	t.Fatalf("expected error %s for %q, got %v", code, input, errs)
	return nil
}

func TestPrecedenceLeftAssociativity(t *testing.T) {
	expr := mustParse(t, "1 - 2 - 3")
	if got, want := prettyprint.Pretty(expr), "1 - 2 - 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	bin, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expected top-level Binary, got %T", expr)
	}
	if _, ok := bin.Left.(*ast.Binary); !ok {
		t.Fatalf("expected left-associativity: left child should itself be a Binary, got %T", bin.Left)
	}
}

func TestPrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	expr := mustParse(t, "1 + 2 * 3")
	bin := expr.(*ast.Binary)
	if _, ok := bin.Right.(*ast.Binary); !ok {
		t.Fatalf("expected `2 * 3` grouped on the right, got %T", bin.Right)
	}
}

func TestExponentiationIsRightAssociative(t *testing.T) {
	expr := mustParse(t, "2 ** 3 ** 4")
	bin := expr.(*ast.Binary)
	if _, ok := bin.Right.(*ast.Binary); !ok {
		t.Fatalf("expected `3 ** 4` grouped on the right for right-associative **, got %T", bin.Right)
	}
}

func TestUnaryBindsLooserThanItsOperandSoItWrapsTheWholeExpression(t *testing.T) {
	expr := mustParse(t, "-x + y")
	unary, ok := expr.(*ast.Unary)
	if !ok {
		t.Fatalf("expected top-level Unary (spec.md: unary recurses at ZERO), got %T", expr)
	}
	if _, ok := unary.Expr.(*ast.Binary); !ok {
		t.Fatalf("expected `x + y` inside the unary, got %T", unary.Expr)
	}
}

func TestParenthesizedSingleExpressionIsAGrouping(t *testing.T) {
	expr := mustParse(t, "(1 + 2)")
	if _, ok := expr.(*ast.Grouping); !ok {
		t.Fatalf("expected Grouping, got %T", expr)
	}
}

func TestParenthesizedCommaListIsATuple(t *testing.T) {
	expr := mustParse(t, "(1, 2, 3)")
	tup, ok := expr.(*ast.Tuple)
	if !ok {
		t.Fatalf("expected Tuple, got %T", expr)
	}
	if len(tup.Elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(tup.Elems))
	}
}

func TestEmptyParensIsAZeroElementTuple(t *testing.T) {
	expr := mustParse(t, "()")
	tup, ok := expr.(*ast.Tuple)
	if !ok {
		t.Fatalf("expected Tuple, got %T", expr)
	}
	if len(tup.Elems) != 0 {
		t.Fatalf("expected 0 elements, got %d", len(tup.Elems))
	}
}

func TestTrailingCommaIsAcceptedInTuples(t *testing.T) {
	expr := mustParse(t, "(1, 2,)")
	tup := expr.(*ast.Tuple)
	if len(tup.Elems) != 2 {
		t.Fatalf("expected 2 elements with a trailing comma, got %d", len(tup.Elems))
	}
}

func TestBlockWithTrailingSemicolonIsSuppressed(t *testing.T) {
	expr := mustParse(t, "{ 1; 2; }")
	block := expr.(*ast.Block)
	if !block.Suppressed {
		t.Fatalf("expected a trailing semicolon to suppress the block's value")
	}
}

func TestBlockWithoutTrailingSemicolonIsNotSuppressed(t *testing.T) {
	expr := mustParse(t, "{ 1; 2 }")
	block := expr.(*ast.Block)
	if block.Suppressed {
		t.Fatalf("expected no suppression when the block ends without a semicolon")
	}
}

func TestEmptyBlockIsSuppressed(t *testing.T) {
	expr := mustParse(t, "{}")
	block := expr.(*ast.Block)
	if !block.Suppressed || len(block.Exprs) != 0 {
		t.Fatalf("expected an empty, suppressed block")
	}
}

func TestLetStatementFormHasNoBody(t *testing.T) {
	expr := mustParse(t, "let x = 5")
	let := expr.(*ast.Let)
	if let.Body != nil {
		t.Fatalf("expected nil Body for the statement form")
	}
}

func TestLetInFormHasABody(t *testing.T) {
	expr := mustParse(t, "let x = 5 in x")
	let := expr.(*ast.Let)
	if let.Body == nil {
		t.Fatalf("expected a non-nil Body for the `in` form")
	}
}

func TestLambdaSingleUnparenthesizedParam(t *testing.T) {
	expr := mustParse(t, "fn x => x")
	lambda := expr.(*ast.Lambda)
	if len(lambda.Params) != 1 || lambda.Params[0].Name != "x" {
		t.Fatalf("expected a single param named x, got %v", lambda.Params)
	}
}

func TestLambdaParenthesizedParamList(t *testing.T) {
	expr := mustParse(t, "fn (x, y) => x")
	lambda := expr.(*ast.Lambda)
	if len(lambda.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(lambda.Params))
	}
}

func TestApplicationBindsTighterThanAddition(t *testing.T) {
	// `f(x) + 1` must be `(f(x)) + 1`, not `f(x + 1)`.
	expr := mustParse(t, "f(x) + 1")
	bin, ok := expr.(*ast.Binary)
	if !ok {
		t.Fatalf("expected top-level Binary, got %T", expr)
	}
	if _, ok := bin.Left.(*ast.App); !ok {
		t.Fatalf("expected App on the left of +, got %T", bin.Left)
	}
}

func TestApplicationArgumentAdditionIsNotSwallowed(t *testing.T) {
	// `f(x + y)` keeps the whole addition as one argument.
	expr := mustParse(t, "f(x + y)")
	app := expr.(*ast.App)
	if len(app.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(app.Args))
	}
	if _, ok := app.Args[0].(*ast.Binary); !ok {
		t.Fatalf("expected the argument to be the whole Binary, got %T", app.Args[0])
	}
}

func TestTrailingInputIsRejected(t *testing.T) {
	expectParseError(t, "1 2", diagnostics.CodeParseTrailing)
}

func TestUnexpectedTokenHasNoNullDenotation(t *testing.T) {
	expectParseError(t, ")", diagnostics.CodeParseNoNud)
}

func TestMissingClosingParenIsExpectedError(t *testing.T) {
	expectParseError(t, "(1 + 2", diagnostics.CodeParseExpected)
}

func TestBinderWithTypeAnnotation(t *testing.T) {
	expr := mustParse(t, "fn x: Int => x")
	lambda := expr.(*ast.Lambda)
	if _, ok := lambda.Params[0].Ty.(interface{ String() string }); !ok {
		t.Fatalf("expected the annotation to produce a concrete Ty")
	}
	if got, want := lambda.Params[0].Ty.String(), "i64"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLambdaReturnAnnotation(t *testing.T) {
	expr := mustParse(t, "fn x: Int => x -> Int")
	lambda := expr.(*ast.Lambda)
	if got, want := lambda.Ret.String(), "i64"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
