package vasm

import "encoding/binary"

// LinkContext carries the per-target framing parameters the linker needs
// beyond the procedure map itself.
type LinkContext[W Width] struct {
	FoldProcedures       bool
	ProcedureHeadingByte W
	ProcedureClosingByte W
	ProcEndByte          bool
	EndByte              W
	UseEndByte           bool
	Compile              bool
	VasmHeader           bool
}

const vasmHeaderText = "compiled using volt assembler(VASM)"

// Link assembles procs into a final byte sequence for entry, framing
// non-folded procedures with heading/closing bytes and appending the entry
// procedure's body last.
//
// Grounded on gocpu/pkg/compiler's linear code-section layout, generalized
// to LR Assembly's two link modes (folding vs. per-procedure framing).
func Link[W Width](procs *ProcedureMap[W], entry string, ctx LinkContext[W]) ([]W, *CompileError) {
	var out []W

	if !ctx.FoldProcedures {
		for _, name := range procs.Names() {
			if name == entry {
				continue
			}
			body, _ := procs.Get(name)
			out = append(out, ctx.ProcedureHeadingByte)
			out = append(out, W(firstByteOfName(name)))
			out = append(out, body...)
			if ctx.ProcEndByte {
				out = append(out, ctx.EndByte)
			}
			out = append(out, ctx.ProcedureClosingByte)
		}
	}

	entryBody, hasEntry := procs.Get(entry)
	if hasEntry {
		out = append(out, entryBody...)
	} else if !ctx.Compile {
		return nil, newErrNoSpan(ErrMissingStart, "entry procedure %q not found", entry)
	}

	if ctx.UseEndByte {
		out = append(out, ctx.EndByte)
	}

	return out, nil
}

func firstByteOfName(name string) byte {
	if len(name) == 0 {
		return 0
	}
	return name[0]
}

// OptimizedLink seeds the peephole pass with entry and the fold-time
// reachable set, prunes procs to what survives, then links the result
// with the same context.
func OptimizedLink[W Width](procs *ProcedureMap[W], reachable map[string]bool, entry string, ctx LinkContext[W]) ([]W, *CompileError) {
	pruned := RunPeephole(procs, reachable, entry)
	return Link(pruned, entry, ctx)
}

// Persist serializes buf to bytes using width-appropriate encoding and the
// requested endianness. Single-byte widths (i8/u8) are written as-is;
// wider widths use binary.LittleEndian/BigEndian per element.
func Persist[W Width](buf []W, endian Endian) []byte {
	var zero W
	switch any(zero).(type) {
	case int8, uint8:
		out := make([]byte, len(buf))
		for i, v := range buf {
			out[i] = byte(v)
		}
		return out
	default:
		out := make([]byte, 0, len(buf)*4)
		for _, v := range buf {
			var tmp [4]byte
			u := uint32(v)
			if endian == BigEndian {
				binary.BigEndian.PutUint32(tmp[:], u)
			} else {
				binary.LittleEndian.PutUint32(tmp[:], u)
			}
			out = append(out, tmp[:]...)
		}
		return out
	}
}

// PersistHeader returns the optional VASM header bytes to prepend before
// the binary body, when ctx.VasmHeader is set.
func PersistHeader[W Width](ctx LinkContext[W]) []byte {
	if !ctx.VasmHeader {
		return nil
	}
	return []byte(vasmHeaderText)
}
