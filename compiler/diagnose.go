package compiler

import (
	"github.com/bytom/folio/compiler/assembler"
	"github.com/bytom/folio/compiler/lexer"
	"github.com/bytom/folio/compiler/opcode"
	"github.com/bytom/folio/diagnostics"
	"github.com/bytom/folio/errors"
	"github.com/bytom/folio/version"
)

// Diagnostic codes, one per error class.
const (
	CodeInternal           = "E0000"
	CodeLex                = "E0001"
	CodeParse              = "E0002"
	CodeDuplicateMacro     = "E0003"
	CodeMissingMain        = "E0004"
	CodeUndefinedMacro     = "E0005"
	CodeCyclicMacro        = "E0006"
	CodeEncodingOverflow   = "E0007"
	CodeExpansionLimit     = "E0008"
	CodeIncompatibleLayout = "E0009"
)

var errorCodes = []struct {
	root error
	code string
}{
	{lexer.ErrUnrecognizedToken, CodeLex},
	{assembler.ErrInvalidLiteral, CodeLex},
	{assembler.ErrUnexpectedToken, CodeParse},
	{assembler.ErrDuplicateMacro, CodeDuplicateMacro},
	{assembler.ErrMissingMain, CodeMissingMain},
	{assembler.ErrUndefinedMacro, CodeUndefinedMacro},
	{assembler.ErrCyclicMacro, CodeCyclicMacro},
	{opcode.ErrOverflow, CodeEncodingOverflow},
	{assembler.ErrExpansionLimit, CodeExpansionLimit},
	{version.ErrIncompatibleLayout, CodeIncompatibleLayout},
}

// ErrorCode returns the diagnostic code of a compilation error.
func ErrorCode(err error) string {
	root := errors.Root(err)
	for _, c := range errorCodes {
		if root == c.root {
			return c.code
		}
	}
	return CodeInternal
}

// SpanOf returns the source span a compilation error points at.
func SpanOf(err error) (lexer.Span, bool) {
	span, ok := errors.Data(err)["span"].(lexer.Span)
	return span, ok
}

// Diagnose describes a compilation error of src for a diagnostics sink.
// Errors without a location point at the start of the source.
func Diagnose(fileName, src string, err error) *diagnostics.Diagnostic {
	span, _ := SpanOf(err)
	label := errors.Detail(err)
	if label == "" {
		label = err.Error()
	}

	return &diagnostics.Diagnostic{
		Source:   src,
		FileName: fileName,
		Start:    span.Start,
		End:      span.End,
		Label:    label,
		Message:  errors.Root(err).Error(),
		Code:     ErrorCode(err),
	}
}
