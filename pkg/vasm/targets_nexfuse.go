package vasm

// NexFUSE is the unsigned 8-bit target. It pads every emitted instruction
// sequence with a trailing nul byte, matching its historical framing on
// byte-oriented storage.
func NexFUSEVendor() *Vendor[uint8] {
	return &Vendor[uint8]{
		Name:             "nexfuse",
		Table:            extendedTable[uint8](),
		NulAfterSequence: true,
		NulByte:          0,
	}
}

// NexFUSELinkContext is NexFUSE's bit-exact framing: no folding, each
// procedure framed by heading/closing bytes, end byte 22.
func NexFUSELinkContext() LinkContext[uint8] {
	return LinkContext[uint8]{
		FoldProcedures:       false,
		ProcedureHeadingByte: 10,
		ProcedureClosingByte: 128,
		UseEndByte:           true,
		EndByte:              22,
		Compile:              false,
	}
}
