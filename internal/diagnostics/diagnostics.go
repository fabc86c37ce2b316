// Package diagnostics defines the error record every stage of the
// pipeline returns, and aggregates them with hashicorp/go-multierror so
// a single Go `error` can carry the "ordered list of diagnostics" shape
// SPEC_FULL.md §4.11 asks for without changing call signatures if a
// future stage starts reporting more than one error.
package diagnostics

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hark-lang/hark/internal/span"
)

// Error codes, grouped by the stage that raises them (see SPEC_FULL §7).
const (
	CodeLexUnknownChar   = "L-CHAR"
	CodeLexUnterminated  = "L-STR"
	CodeParseNoNud       = "P-NUD"
	CodeParseExpected    = "P-EXPECT"
	CodeParseTrailing    = "P-TRAILING"
	CodeTypeUnbound      = "T-UNBOUND"
	CodeTypeMismatch     = "T-MISMATCH"
	CodeTypeOccurs       = "T-OCCURS"
)

// Error is a single diagnostic: a source span, a short machine-readable
// code, and a human message.
type Error struct {
	Span    span.Span `json:"span"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

func New(code string, sp span.Span, format string, args ...any) *Error {
	return &Error{Span: sp, Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", e.Code, e.Message, e.Span.Line)
}

// List aggregates diagnostics in encounter order. A nil List has no
// errors. Appending to a nil *List allocates one, mirroring
// multierror.Append's own nil-safety.
type List struct {
	merr *multierror.Error
}

// Append adds err to the list and returns the (possibly newly allocated)
// list, following the multierror.Append convention.
func (l *List) Append(err *Error) *List {
	if l == nil {
		l = &List{}
	}
	l.merr = multierror.Append(l.merr, err)
	return l
}

// Errs returns the accumulated diagnostics in order, or nil if there are
// none.
func (l *List) Errs() []*Error {
	if l == nil || l.merr == nil {
		return nil
	}
	out := make([]*Error, len(l.merr.Errors))
	for i, e := range l.merr.Errors {
		out[i] = e.(*Error)
	}
	return out
}

// Err returns the list as a Go error (nil if empty), suitable for
// returning from a function that otherwise signals success via error
// being nil.
func (l *List) Err() error {
	if l == nil || l.merr == nil || len(l.merr.Errors) == 0 {
		return nil
	}
	return l.merr
}

// Single wraps one diagnostic into a *List in one step.
func Single(err *Error) *List {
	return (&List{}).Append(err)
}
