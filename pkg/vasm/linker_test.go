package vasm

import (
	"reflect"
	"testing"
)

func TestLinkFoldingModeAppendsOnlyEntry(t *testing.T) {
	procs := NewProcedureMap[int8]()
	procs.Set("helper", []int8{1, 2})
	procs.Set("main", []int8{9})

	out, err := Link(procs, "main", OpenLUDLinkContext())
	if err != nil {
		t.Fatalf("link error: %v", err)
	}
	want := []int8{9, 12} // main's body, then end_byte 12
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestLinkNonFoldingFramesEachProcedure(t *testing.T) {
	procs := NewProcedureMap[uint8]()
	procs.Set("aux", []uint8{5})
	procs.Set("main", []uint8{9})

	out, err := Link(procs, "main", NexFUSELinkContext())
	if err != nil {
		t.Fatalf("link error: %v", err)
	}
	// heading(10), first byte of "aux" ('a'=97), body(5), closing(128); then main's body(9); then end_byte(22)
	want := []uint8{10, 'a', 5, 128, 9, 22}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestLinkMissingEntryFailsWhenCompileFalse(t *testing.T) {
	procs := NewProcedureMap[int8]()
	procs.Set("helper", []int8{1})

	ctx := OpenLUDLinkContext() // Compile: false by default, a program build
	_, err := Link(procs, "main", ctx)
	if err == nil || err.Kind != ErrMissingStart {
		t.Fatalf("got %v, want MissingStart", err)
	}
}

func TestLinkMissingEntryOKWhenCompileTrue(t *testing.T) {
	procs := NewProcedureMap[int8]()
	procs.Set("helper", []int8{1})

	ctx := OpenLUDLinkContext()
	ctx.Compile = true // library output: no entry procedure required
	out, err := Link(procs, "main", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int8{12} // no entry body, just the end byte
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestOptimizedLinkPrunesDeadProcedures(t *testing.T) {
	procs := NewProcedureMap[uint8]()
	procs.Set("dead", []uint8{1})
	procs.Set("main", []uint8{9})

	out, err := OptimizedLink(procs, map[string]bool{}, "main", NexFUSELinkContext())
	if err != nil {
		t.Fatalf("link error: %v", err)
	}
	want := []uint8{9, 22} // dead was pruned before framing; only main's body and end byte remain
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestPersistLittleEndianWideWidth(t *testing.T) {
	out := Persist([]int32{0x01020304}, LittleEndian)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestPersistBigEndianWideWidth(t *testing.T) {
	out := Persist([]int32{0x01020304}, BigEndian)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestPersistNarrowWidthIsRawBytes(t *testing.T) {
	out := Persist([]uint8{1, 2, 255}, LittleEndian)
	want := []byte{1, 2, 255}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestPersistHeader(t *testing.T) {
	ctx := NexFUSELinkContext()
	ctx.VasmHeader = true
	got := string(PersistHeader(ctx))
	if got != "compiled using volt assembler(VASM)" {
		t.Errorf("got %q", got)
	}
	ctx.VasmHeader = false
	if PersistHeader(ctx) != nil {
		t.Error("expected nil header when VasmHeader is false")
	}
}
