package vasm

import (
	"fmt"
	"io"
)

// Color renders s in a given style. Reporter only calls it when UseColor
// is set, so plain-text callers never need to supply one.
type Color func(s string) string

func ansi(code string) Color {
	return func(s string) string { return "\x1b[" + code + "m" + s + "\x1b[0m" }
}

var (
	colorFatal      = ansi("31")
	colorSuggestion = ansi("35")
)

// Reporter formats CompileErrors and stylist Diagnostics as one-line
// file:line:col: messages with a source excerpt and a caret under the
// span, matching gocpu/pkg/compiler/parser.go's fmtError but with the
// excerpt and location split onto their own line for terminal output.
type Reporter struct {
	Out      io.Writer
	Filename string
	Source   string
	UseColor bool
}

func NewReporter(out io.Writer, filename, source string, useColor bool) *Reporter {
	return &Reporter{Out: out, Filename: filename, Source: source, UseColor: useColor}
}

func (r *Reporter) paint(c Color, s string) string {
	if !r.UseColor {
		return s
	}
	return c(s)
}

// ReportError prints a fatal CompileError.
func (r *Reporter) ReportError(err *CompileError) {
	if err == nil {
		return
	}
	if !err.HasSpan {
		fmt.Fprintf(r.Out, "%s: %s: %s\n", r.Filename, r.paint(colorFatal, "error"), err.Message)
		return
	}
	sp := err.Span
	fmt.Fprintf(r.Out, "%s:%d:%d: %s: %s\n", r.Filename, sp.LineNumber, sp.CharBegin, r.paint(colorFatal, err.Kind.String()), err.Message)
	line := excerpt(r.Source, sp.LineNumber)
	fmt.Fprintf(r.Out, "  %s\n", line)
	fmt.Fprintf(r.Out, "  %s%s\n", spaces(sp.CharBegin-1), r.paint(colorFatal, "^"))
}

// ReportDiagnostic prints a non-fatal stylist finding.
func (r *Reporter) ReportDiagnostic(d Diagnostic) {
	label := "good_practice"
	col := colorSuggestion
	if d.Kind == DiagNonCompliant || d.Kind == DiagUndefinedBehavior {
		col = colorFatal
	}
	switch d.Kind {
	case DiagNonCompliant:
		label = "non_compliant"
	case DiagUndefinedBehavior:
		label = "undefined_behavior"
	}
	fmt.Fprintf(r.Out, "%s:%d:%d: %s: %s\n", r.Filename, d.Location.LineNumber, d.Location.CharBegin, r.paint(col, label), d.Message)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
