package vasm

// SiAX opcodes recovered from the original stax.c/siax.h instruction set:
// a handful of named operations with no equivalent in the other five
// targets, dealing in heap allocations and raw file descriptors.
const (
	opMove    = 60
	opAllocH  = 61
	opSiaxPut = 62
	opOpenFD  = 63
	opCloseFD = 64
	opWriteFD = 65
)

// SiAXVendor is a signed 32-bit target (as is JADE), with a
// table that layers SiAX's own named instructions on top of the shared
// register/loop vocabulary.
func SiAXVendor() *Vendor[int32] {
	table := extendedTable[int32]()
	table["move"] = handleMove[int32]
	table["alloch"] = handleAllocH[int32]
	table["siax-put"] = handleSiaxPut[int32]
	table["open_fd"] = handleOpenFD[int32]
	table["close_fd"] = handleCloseFD[int32]
	table["write_fd"] = handleWriteFD[int32]
	return &Vendor[int32]{
		Name:  "siax",
		Table: table,
	}
}

// SiAXLinkContext: framing is experimental and not bit-exact for this
// target; folding, no end byte.
func SiAXLinkContext() LinkContext[int32] {
	return LinkContext[int32]{FoldProcedures: true, Compile: false}
}

// handleMove: move Rn, Rm -> [60, n, m]. Copies Rm's value into Rn.
func handleMove[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	dst, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	src, err := expectRegister(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opMove, W(dst.Number), W(src.Number)}, nil
}

// handleAllocH: alloch Rn, k -> [61, n, k]. Allocates k words on the heap,
// storing the handle in Rn.
func handleAllocH[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	size, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opAllocH, W(reg.Number), W(size.Val)}, nil
}

// handleSiaxPut: siax-put Rn, k -> [62, n, k]. Writes k into the heap
// block referenced by Rn's handle.
func handleSiaxPut[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	val, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opSiaxPut, W(reg.Number), W(val.Val)}, nil
}

// handleOpenFD: open_fd Rn, path -> [63, n, first-byte-of-path]. Opens a
// file descriptor and stores it in Rn.
func handleOpenFD[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	path, err := expectLabel(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opOpenFD, W(reg.Number), W(firstByteOfLabel(path))}, nil
}

// handleCloseFD: close_fd Rn -> [64, n].
func handleCloseFD[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opCloseFD, W(reg.Number)}, nil
}

// handleWriteFD: write_fd Rn, Rm -> [65, n, m]. Writes Rm's contents to
// the descriptor held by Rn.
func handleWriteFD[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	fd, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	src, err := expectRegister(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opWriteFD, W(fd.Number), W(src.Number)}, nil
}
