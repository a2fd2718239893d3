package vasm

// SolarisVM is the unsigned 32-bit target.
func SolarisVMVendor() *Vendor[uint32] {
	return &Vendor[uint32]{
		Name:  "solarisvm",
		Table: extendedTable[uint32](),
	}
}

// SolarisVMLinkContext: framing is experimental and not bit-exact for
// this target; folding, no end byte.
func SolarisVMLinkContext() LinkContext[uint32] {
	return LinkContext[uint32]{FoldProcedures: true, Compile: false}
}
