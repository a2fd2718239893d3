package vasm

import (
	"fmt"
	"strings"
)

// CompileErrorKind identifies the specific failure a CompileError reports.
// Checked with ==, never by matching on the rendered message.
type CompileErrorKind int

const (
	// Lex
	ErrUnexpectedToken CompileErrorKind = iota
	ErrMalformedNumber
	ErrNumberTooBig
	ErrLiteralNeverClosed
	ErrLiteralTooLong

	// Parse
	ErrExpressionIsNotSubroutine
	ErrEmptySubroutine
	ErrRegisterMissingNumber
	ErrRangeExpectsStart
	ErrRangeExpectsEnd
	ErrRangeExpectsSeparator
	ErrRangeExpectsNumber
	ErrRangeStartsAfterEnd
	ErrMacroNeverClosed
	ErrAsideExpectsName
	ErrAsideNameMustBeIdentifier
	ErrInvalidTokenValue
	ErrOldProcedureSyntax

	// Preprocess
	ErrNonexistentDirective
	ErrInvalidArgumentCount
	ErrInvalidArgumentType
	ErrCompileIfMismatch

	// Codegen
	ErrInstructionDoesntExist
	ErrRegisterNumberTooLarge
	ErrExpectedParameter
	ErrTypeMismatch
	ErrTooLittleParams
	ErrCodegenOther

	// Link
	ErrMissingStart
	ErrIO
)

var compileErrorKindNames = [...]string{
	ErrUnexpectedToken:           "UnexpectedToken",
	ErrMalformedNumber:           "MalformedNumber",
	ErrNumberTooBig:              "NumberTooBig",
	ErrLiteralNeverClosed:        "LiteralNeverClosed",
	ErrLiteralTooLong:            "LiteralTooLong",
	ErrExpressionIsNotSubroutine: "ExpressionIsNotSubroutine",
	ErrEmptySubroutine:           "EmptySubroutine",
	ErrRegisterMissingNumber:     "RegisterMissingNumber",
	ErrRangeExpectsStart:         "RangeExpectsStart",
	ErrRangeExpectsEnd:           "RangeExpectsEnd",
	ErrRangeExpectsSeparator:     "RangeExpectsSeparator",
	ErrRangeExpectsNumber:        "RangeExpectsNumber",
	ErrRangeStartsAfterEnd:       "RangeStartsAfterEnd",
	ErrMacroNeverClosed:          "MacroNeverClosed",
	ErrAsideExpectsName:          "AsideExpectsName",
	ErrAsideNameMustBeIdentifier: "AsideNameMustBeIdentifier",
	ErrInvalidTokenValue:         "InvalidTokenValue",
	ErrOldProcedureSyntax:        "OldProcedureSyntax",
	ErrNonexistentDirective:      "NonexistentDirective",
	ErrInvalidArgumentCount:      "InvalidArgumentCount",
	ErrInvalidArgumentType:       "InvalidArgumentType",
	ErrCompileIfMismatch:         "CompileIfMismatch",
	ErrInstructionDoesntExist:    "InstructionDoesntExist",
	ErrRegisterNumberTooLarge:    "RegisterNumberTooLarge",
	ErrExpectedParameter:         "ExpectedParameter",
	ErrTypeMismatch:              "TypeMismatch",
	ErrTooLittleParams:           "TooLittleParams",
	ErrCodegenOther:              "Other",
	ErrMissingStart:              "MissingStart",
	ErrIO:                        "IO",
}

func (k CompileErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(compileErrorKindNames) {
		return compileErrorKindNames[k]
	}
	return fmt.Sprintf("CompileErrorKind(%d)", int(k))
}

// CompileError is the single error type produced by every stage of the
// pipeline. HasSpan reports whether Span is meaningful (link-stage and I/O
// errors often have none).
type CompileError struct {
	Kind    CompileErrorKind
	Message string
	Span    Span
	HasSpan bool
	wrapped error // set when this CompileError wraps a lower-level failure
}

func (e *CompileError) Error() string {
	if e.HasSpan {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Span)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CompileError) Unwrap() error { return e.wrapped }

func newErr(kind CompileErrorKind, span Span, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span, HasSpan: true}
}

func newErrNoSpan(kind CompileErrorKind, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapErr(kind CompileErrorKind, cause error, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...), wrapped: cause}
}

// excerpt returns the trimmed source line the span begins on, for
// diagnostics rendering. Mirrors gocpu/pkg/compiler/parser.go's fmtError,
// which looks the offending line up by index and trims it.
func excerpt(source string, lineNumber int) string {
	lines := strings.Split(source, "\n")
	idx := lineNumber - 1
	if idx < 0 || idx >= len(lines) {
		return "<source unavailable>"
	}
	return strings.TrimRight(lines[idx], "\r")
}
