package typeanalyzer

import (
	"fmt"

	"github.com/tscore/tscore/internal/logger"
)

// ErrorKind enumerates the taxonomy in §7. It exists as its own type (rather
// than distinguishing errors by message text) so a host can pattern-switch
// reliably, the way esbuild's own js_parser.markSyntaxFeature switches on a
// compat.JSFeature constant instead of a string.
type ErrorKind uint8

const (
	UndefinedSymbol ErrorKind = iota
	NoCallSignature
	NoNewSignature
	WrongParams
	WrongTypeParams
	UnionError
	Unimplemented
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedSymbol:
		return "undefined-symbol"
	case NoCallSignature:
		return "no-call-signature"
	case NoNewSignature:
		return "no-new-signature"
	case WrongParams:
		return "wrong-params"
	case WrongTypeParams:
		return "wrong-type-params"
	case UnionError:
		return "union-error"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every analyzer operation. It
// carries a Loc for diagnostic presentation (out of scope here, but the
// span must be preserved for whatever host renders it) and, for the
// aggregate UnionError case, the list of sub-errors in member order.
type Error struct {
	Kind ErrorKind
	Loc  logger.Loc
	Msg  string

	// WrongParams
	ExpectedMin, ExpectedMax, Actual int

	// Unimplemented
	Path string

	// UnionError
	Errors []*Error
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongParams:
		return fmt.Sprintf("expected %d..=%d arguments, got %d", e.ExpectedMin, e.ExpectedMax, e.Actual)
	case UnionError:
		return fmt.Sprintf("no union member matched (%d candidates tried): %s", len(e.Errors), e.Msg)
	case Unimplemented:
		if e.Path != "" {
			return fmt.Sprintf("unimplemented: %s (%s)", e.Msg, e.Path)
		}
		return fmt.Sprintf("unimplemented: %s", e.Msg)
	default:
		return e.Msg
	}
}

// Unwrap exposes a UnionError's sub-errors to the standard errors package
// (errors.Is / errors.As walk multi-errors through this method). Non-union
// errors have nothing to unwrap.
func (e *Error) Unwrap() []error {
	if e.Kind != UnionError || len(e.Errors) == 0 {
		return nil
	}
	out := make([]error, len(e.Errors))
	for i, sub := range e.Errors {
		out[i] = sub
	}
	return out
}

func NewUndefinedSymbol(loc logger.Loc, name string) *Error {
	return &Error{Kind: UndefinedSymbol, Loc: loc, Msg: fmt.Sprintf("undefined symbol %q", name)}
}

func NewNoCallSignature(loc logger.Loc) *Error {
	return &Error{Kind: NoCallSignature, Loc: loc, Msg: "no matching call signature"}
}

func NewNoNewSignature(loc logger.Loc) *Error {
	return &Error{Kind: NoNewSignature, Loc: loc, Msg: "no matching construct signature"}
}

func NewWrongParams(loc logger.Loc, min, max, actual int) *Error {
	return &Error{Kind: WrongParams, Loc: loc, ExpectedMin: min, ExpectedMax: max, Actual: actual}
}

func NewUnionError(loc logger.Loc, errs []*Error) *Error {
	return &Error{Kind: UnionError, Loc: loc, Errors: errs, Msg: "every union member failed"}
}

func NewUnimplemented(loc logger.Loc, msg, path string) *Error {
	return &Error{Kind: Unimplemented, Loc: loc, Msg: msg, Path: path}
}
