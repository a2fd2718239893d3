// Package vasm implements the LR Assembly compiler core: lexer, parser,
// stylist, preprocessor, per-target code generators, a peephole dead-
// procedure eliminator, and a linker that frames generated procedures into
// a final byte sequence.
package vasm

import "fmt"

// Span is a closed-open character range attached to every token and AST
// value, used solely by diagnostics.
type Span struct {
	Begin      int // byte offset of the first character, inclusive
	End        int // byte offset one past the last character
	CharBegin  int // 1-based column of Begin within its line
	LineNumber int // 1-based source line
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.LineNumber, s.CharBegin)
}

// joinSpan returns the smallest span covering both a and b. Used when a
// grammar rule assembles a wider node out of narrower spans (e.g. a
// Range value spans from its opening '{' to its closing '}').
func joinSpan(a, b Span) Span {
	begin, end := a.Begin, a.End
	if b.Begin < begin {
		begin = b.Begin
	}
	if b.End > end {
		end = b.End
	}
	return Span{Begin: begin, End: end, CharBegin: a.CharBegin, LineNumber: a.LineNumber}
}
