package vasm

// JADE is the other signed 32-bit target, sharing SiAX's width but not
// its named-instruction extensions.
func JADEVendor() *Vendor[int32] {
	return &Vendor[int32]{
		Name:  "jade",
		Table: extendedTable[int32](),
	}
}

// JADELinkContext: framing is experimental and not bit-exact for this
// target; folding, no end byte.
func JADELinkContext() LinkContext[int32] {
	return LinkContext[int32]{FoldProcedures: true, Compile: false}
}
