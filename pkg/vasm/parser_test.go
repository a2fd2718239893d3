package vasm

import "testing"

func mustLex(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Lex(source, 1<<30, false)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	return tokens
}

func TestParseSimpleProcedure(t *testing.T) {
	source := "main:\nmov R0, 5\necho 'a'\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}
	proc, ok := root.Children[0].(*Procedure)
	if !ok {
		t.Fatalf("got %T, want *Procedure", root.Children[0])
	}
	if proc.Header != "main" {
		t.Errorf("got header %q, want main", proc.Header)
	}
	if len(proc.Children) != 2 {
		t.Fatalf("got %d instructions, want 2", len(proc.Children))
	}
}

func TestParseEmptySubroutine(t *testing.T) {
	source := "main:\nother:\nnop\n"
	_, err := Parse(mustLex(t, source), source)
	if err == nil || err.Kind != ErrEmptySubroutine {
		t.Fatalf("got %v, want EmptySubroutine", err)
	}
}

func TestParseRegisterValue(t *testing.T) {
	source := "main:\nmov R12, 1\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	proc := root.Children[0].(*Procedure)
	call := proc.Children[0].(*InstructionCall)
	reg, ok := call.Parameters[0].(*Register)
	if !ok || reg.Number != 12 {
		t.Fatalf("got %+v, want Register{12}", call.Parameters[0])
	}
}

func TestParseRegisterMissingNumber(t *testing.T) {
	source := "main:\nmov R, 1\n"
	_, err := Parse(mustLex(t, source), source)
	if err == nil || err.Kind != ErrRegisterMissingNumber {
		t.Fatalf("got %v, want RegisterMissingNumber", err)
	}
}

func TestParseNilValue(t *testing.T) {
	source := "main:\nmov R0, nil\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	proc := root.Children[0].(*Procedure)
	call := proc.Children[0].(*InstructionCall)
	if _, ok := call.Parameters[1].(*Nil); !ok {
		t.Fatalf("got %+v, want Nil", call.Parameters[1])
	}
}

func TestParseRange(t *testing.T) {
	source := "main:\nlsl R0, {1:5}\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	proc := root.Children[0].(*Procedure)
	call := proc.Children[0].(*InstructionCall)
	rng, ok := call.Parameters[1].(*Range)
	if !ok || rng.Start != 1 || rng.End != 5 {
		t.Fatalf("got %+v, want Range{1,5}", call.Parameters[1])
	}
}

func TestParseRangeStartsAfterEnd(t *testing.T) {
	source := "main:\nlsl R0, {5:1}\n"
	_, err := Parse(mustLex(t, source), source)
	if err == nil || err.Kind != ErrRangeStartsAfterEnd {
		t.Fatalf("got %v, want RangeStartsAfterEnd", err)
	}
}

func TestParseMacro(t *testing.T) {
	source := "[compat openlud]\nmain:\nnop\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	macro, ok := root.Children[0].(*Macro)
	if !ok || macro.Name != "compat" {
		t.Fatalf("got %+v, want Macro{compat}", root.Children[0])
	}
}

func TestParseMacroNeverClosed(t *testing.T) {
	source := "[compat openlud"
	_, err := Parse(mustLex(t, source), source)
	if err == nil || err.Kind != ErrMacroNeverClosed {
		t.Fatalf("got %v, want MacroNeverClosed", err)
	}
}

func TestParseAside(t *testing.T) {
	source := ":greeting 'h'\nmain:\nnop\n"
	root, err := Parse(mustLex(t, source), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	aside, ok := root.Children[0].(*Aside)
	if !ok || aside.Name != "greeting" {
		t.Fatalf("got %+v, want Aside{greeting}", root.Children[0])
	}
}
