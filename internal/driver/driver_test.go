package driver_test

import (
	"testing"

	"github.com/hark-lang/hark/internal/diagnostics"
	"github.com/hark-lang/hark/internal/driver"
)

func TestInferLiteralTypes(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"5", "i64"},
		{"false", "bool"},
		{"true", "bool"},
		{"(1, false)", "(i64, bool)"},
	}
	for _, c := range cases {
		result := driver.GenerateAST(c.source)
		if errs := result.Diagnostics.Errs(); len(errs) > 0 {
			t.Fatalf("%q: unexpected errors: %v", c.source, errs)
		}
		if got := result.Ty.String(); got != c.want {
			t.Fatalf("%q: got %s, want %s", c.source, got, c.want)
		}
	}
}

func TestInferAnnotatedIdentityFunction(t *testing.T) {
	result := driver.GenerateAST("fn x: Int => x")
	if errs := result.Diagnostics.Errs(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := result.Ty.String(), "(i64) -> i64"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestInferCurriedPairBuilderGeneralizesOverTwoVariables(t *testing.T) {
	result := driver.GenerateAST("fn x => fn y => (x, y)")
	if errs := result.Diagnostics.Errs(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := result.Ty.String(), "(a) -> (b) -> (a, b)"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestInferChurchTwiceSharesOneVariableAcrossBothApplications(t *testing.T) {
	result := driver.GenerateAST("fn f => fn x => f(f(x))")
	if errs := result.Diagnostics.Errs(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := result.Ty.String(), "((a) -> a) -> (a) -> a"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestInferUnboundVariableIsAnError(t *testing.T) {
	result := driver.GenerateAST("y")
	errs := result.Diagnostics.Errs()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Code != diagnostics.CodeTypeUnbound {
		t.Fatalf("got code %s, want %s", errs[0].Code, diagnostics.CodeTypeUnbound)
	}
}

func TestInferApplyingAnIntFunctionToABoolIsAMismatch(t *testing.T) {
	result := driver.GenerateAST("(fn x: Int => x)(false)")
	errs := result.Diagnostics.Errs()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Code != diagnostics.CodeTypeMismatch {
		t.Fatalf("got code %s, want %s", errs[0].Code, diagnostics.CodeTypeMismatch)
	}
}

func TestInferOccursCheckRejectsSelfApplication(t *testing.T) {
	// `fn x => x(x)` demands t1 = (t1) -> t2, an infinite type.
	result := driver.GenerateAST("fn x => x(x)")
	errs := result.Diagnostics.Errs()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Code != diagnostics.CodeTypeOccurs {
		t.Fatalf("got code %s, want %s", errs[0].Code, diagnostics.CodeTypeOccurs)
	}
}

func TestInferLexErrorIsSurfacedAndNoASTIsReturned(t *testing.T) {
	result := driver.GenerateAST("1 @ 2")
	errs := result.Diagnostics.Errs()
	if len(errs) == 0 {
		t.Fatalf("expected a lex error")
	}
	if errs[0].Code != diagnostics.CodeLexUnknownChar {
		t.Fatalf("got code %s, want %s", errs[0].Code, diagnostics.CodeLexUnknownChar)
	}
	if result.Expr != nil {
		t.Fatalf("expected no AST once the token stream failed to lex cleanly")
	}
}

func TestInferLetBindingIsVisibleInTheContinuation(t *testing.T) {
	result := driver.GenerateAST("let x = 5 in x + 1")
	if errs := result.Diagnostics.Errs(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := result.Ty.String(), "i64"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestInferComparisonOfIntegerOperandsIsBool(t *testing.T) {
	result := driver.GenerateAST("(fn x: Int => x)(1) == 1")
	if errs := result.Diagnostics.Errs(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got, want := result.Ty.String(), "bool"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
