package vasm

import "strings"

// DiagnosticKind classifies a stylist finding.
type DiagnosticKind int

const (
	DiagRegular DiagnosticKind = iota
	DiagGoodPractice
	DiagNonCompliant
	DiagUndefinedBehavior
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagGoodPractice:
		return "good_practice"
	case DiagNonCompliant:
		return "non_compliant"
	case DiagUndefinedBehavior:
		return "undefined_behavior"
	default:
		return "regular"
	}
}

// Diagnostic is one advisory, source-level finding from the stylist.
type Diagnostic struct {
	Kind     DiagnosticKind
	Message  string
	Location Span
}

// RunStylist scans source independently of the lexer/parser and returns
// every advisory finding, in source order. Running it twice on the same
// source yields an identical list because it carries no state beyond the
// single forward scan below.
func RunStylist(source string) []Diagnostic {
	var diags []Diagnostic
	lines := strings.Split(source, "\n")

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSuffix(line, "\r")

		suppressed := false
		for col := 0; col < len(trimmed); col++ {
			b := trimmed[col]
			if !suppressed && b == ';' && col+1 < len(trimmed) && trimmed[col+1] == ';' {
				suppressed = true
			}
			if suppressed {
				continue
			}
			if b == ',' {
				if col == len(trimmed)-1 {
					diags = append(diags, Diagnostic{
						Kind:     DiagGoodPractice,
						Message:  "trailing comma before end of line",
						Location: Span{LineNumber: lineNo, CharBegin: col + 1},
					})
				} else if trimmed[col+1] != ' ' {
					diags = append(diags, Diagnostic{
						Kind:     DiagNonCompliant,
						Message:  "comma should be followed by a space",
						Location: Span{LineNumber: lineNo, CharBegin: col + 1},
					})
				}
			}
		}

		if !suppressed {
			diags = append(diags, jmpDiagnostics(trimmed, lineNo)...)
		}
	}

	if len(source) > 0 && !strings.HasSuffix(source, "\n") {
		diags = append(diags, Diagnostic{
			Kind:    DiagGoodPractice,
			Message: "file does not end in a newline",
			Location: Span{
				LineNumber: len(lines),
				CharBegin:  len(lines[len(lines)-1]) + 1,
			},
		})
	}

	return diags
}

// jmpDiagnostics flags `jmp <name>` where <name> has more than one
// alphanumeric letter — non-folding linkers encode only the first byte of
// a procedure name, so a long jump target name is misleading about what
// actually gets emitted.
func jmpDiagnostics(line string, lineNo int) []Diagnostic {
	var diags []Diagnostic
	fields := strings.Fields(line)
	for i := 0; i+1 < len(fields); i++ {
		if fields[i] != "jmp" {
			continue
		}
		name := strings.TrimSuffix(fields[i+1], ",")
		if countAlnum(name) > 1 {
			col := strings.Index(line, fields[i]) + 1
			diags = append(diags, Diagnostic{
				Kind:     DiagGoodPractice,
				Message:  "jmp target names a procedure with multiple letters; only its first letter is encoded",
				Location: Span{LineNumber: lineNo, CharBegin: col},
			})
		}
	}
	return diags
}

func countAlnum(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isAlnum(s[i]) {
			n++
		}
	}
	return n
}
