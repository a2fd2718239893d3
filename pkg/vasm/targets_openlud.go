package vasm

// OpenLUD is the signed 8-bit target: procedures fold into their callers
// and every instruction sequence is nul-terminated. It registers only the
// eight base opcodes; NexFUSE and the other targets layer ten more on top
// of this same set.
func OpenLUDVendor() *Vendor[int8] {
	return &Vendor[int8]{
		Name:             "openlud",
		Table:            baseTable[int8](),
		NulAfterSequence: true,
		NulByte:          0,
	}
}

// OpenLUDLinkContext is OpenLUD's bit-exact framing: folding enabled,
// end byte 12.
func OpenLUDLinkContext() LinkContext[int8] {
	return LinkContext[int8]{
		FoldProcedures: true,
		UseEndByte:     true,
		EndByte:        12,
		Compile:        false,
	}
}

// baseTable is OpenLUD's instruction set: echo, mov, each, init, put,
// clear, reset, get. Every wider target starts here and adds its own.
func baseTable[W Width]() map[string]Handler[W] {
	return map[string]Handler[W]{
		"echo":  handleEcho[W],
		"mov":   handleMov[W],
		"each":  handleEach[W],
		"init":  handleInit[W],
		"put":   handlePut[W],
		"clear": handleClear[W],
		"reset": handleReset[W],
		"get":   handleGet[W],
	}
}

// extendedTable layers NexFUSE's ten additional opcodes (add, nop, lar,
// lsl, in, cmp, inc, rep, jmp, zeroall) on top of baseTable. NexFUSE,
// Mercury, SiAX, JADE, and SolarisVM all register this full set.
func extendedTable[W Width]() map[string]Handler[W] {
	t := baseTable[W]()
	t["add"] = handleAdd[W]
	t["nop"] = handleNop[W]
	t["lar"] = handleLar[W]
	t["lsl"] = handleLsl[W]
	t["in"] = handleIn[W]
	t["cmp"] = handleCmp[W]
	t["inc"] = handleInc[W]
	t["rep"] = handleRep[W]
	t["jmp"] = handleJmp[W]
	t["zeroall"] = handleClear[W]
	return t
}
