package vasm

import (
	"strings"
	"testing"
)

func TestReportErrorWithSpan(t *testing.T) {
	source := "main:\nmov R99, 1\n"
	var buf strings.Builder
	r := NewReporter(&buf, "prog.vasm", source, false)

	err := newErr(ErrRegisterNumberTooLarge, Span{LineNumber: 2, CharBegin: 5}, "register %d exceeds target width", 99)
	r.ReportError(err)

	got := buf.String()
	if !strings.Contains(got, "prog.vasm:2:5:") {
		t.Errorf("got %q, want location prefix prog.vasm:2:5:", got)
	}
	if !strings.Contains(got, "mov R99, 1") {
		t.Errorf("got %q, want source excerpt", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("got %q, want a caret line", got)
	}
}

func TestReportErrorNoSpan(t *testing.T) {
	var buf strings.Builder
	r := NewReporter(&buf, "prog.vasm", "", false)

	r.ReportError(newErrNoSpan(ErrMissingStart, "entry procedure %q not found", "main"))

	got := buf.String()
	if got != "prog.vasm: error: entry procedure \"main\" not found\n" {
		t.Errorf("got %q", got)
	}
}

func TestReportErrorNilIsNoop(t *testing.T) {
	var buf strings.Builder
	r := NewReporter(&buf, "prog.vasm", "", false)
	r.ReportError(nil)
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty output", buf.String())
	}
}

func TestReportDiagnosticLabels(t *testing.T) {
	tests := []struct {
		kind  DiagnosticKind
		label string
	}{
		{DiagGoodPractice, "good_practice"},
		{DiagNonCompliant, "non_compliant"},
		{DiagUndefinedBehavior, "undefined_behavior"},
	}
	for _, tc := range tests {
		var buf strings.Builder
		r := NewReporter(&buf, "prog.vasm", "", false)
		r.ReportDiagnostic(Diagnostic{Kind: tc.kind, Message: "note", Location: Span{LineNumber: 1, CharBegin: 1}})
		if !strings.Contains(buf.String(), tc.label) {
			t.Errorf("kind %v: got %q, want label %q", tc.kind, buf.String(), tc.label)
		}
	}
}

func TestReportErrorColorWrapsWithANSI(t *testing.T) {
	var buf strings.Builder
	r := NewReporter(&buf, "prog.vasm", "", true)
	r.ReportError(newErrNoSpan(ErrCodegenOther, "boom"))
	if !strings.Contains(buf.String(), "\x1b[31m") {
		t.Errorf("got %q, want ANSI red escape", buf.String())
	}
}
