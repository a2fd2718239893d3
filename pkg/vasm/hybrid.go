package vasm

// HybridVendor constructs the instruction-set intersection of vendors,
// taking each handler from the first vendor in the list that defines it.
// Its Name is the name argument; the result carries no framing flags.
func HybridVendor[W Width](name string, vendors ...*Vendor[W]) *Vendor[W] {
	table := make(map[string]Handler[W])

	if len(vendors) > 0 {
		for instr := range vendors[0].Table {
			present := true
			for _, v := range vendors[1:] {
				if _, ok := v.Table[instr]; !ok {
					present = false
					break
				}
			}
			if present {
				table[instr] = vendors[0].Table[instr]
			}
		}
	}

	return &Vendor[W]{Name: name, Table: table}
}
