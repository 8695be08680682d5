package assembler

import (
	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/errors"
)

// pre-define errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidLiteral  = errors.New("invalid literal")
	ErrDuplicateMacro  = errors.New("duplicate macro")
	ErrMissingMain     = errors.New("missing main macro")
	ErrUndefinedMacro  = errors.New("undefined macro")
	ErrCyclicMacro     = errors.New("cyclic macro")
	ErrExpansionLimit  = errors.New("expansion limit exceeded")
	ErrUnexpandedCall  = errors.New("unexpanded macro call")
)

// spanError attaches a detail message and the offending source span to err.
func spanError(err error, span lexer.Span, format string, v ...interface{}) error {
	return errors.WithData(errors.WithDetailf(err, format, v...), "span", span)
}
