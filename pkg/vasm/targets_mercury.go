package vasm

// MercuryPIC is NexFUSE's PIC-oriented sibling: same unsigned 8-bit width,
// instruction table, and procedure framing, but every statement additionally
// carries an explicit 0xAF terminator byte.
func MercuryPICVendor() *Vendor[uint8] {
	return &Vendor[uint8]{
		Name:                   "mercury",
		Table:                  extendedTable[uint8](),
		NulAfterSequence:       true,
		NulByte:                0,
		HasStatementTerminator: true,
		StatementTerminator:    0xAF,
	}
}

// MercuryPICLinkContext mirrors NexFUSE's framing.
func MercuryPICLinkContext() LinkContext[uint8] {
	return LinkContext[uint8]{
		FoldProcedures:       false,
		ProcedureHeadingByte: 10,
		ProcedureClosingByte: 128,
		UseEndByte:           true,
		EndByte:              22,
		Compile:              false,
	}
}
