package vasm

// RunPeephole prunes procedures from procs that are neither entry nor
// named in reachable. reachable is the fold set Generate already
// computed: every callee name it folded into some other procedure's body
// during code generation. A name folded only by a procedure that is itself
// pruned still survives; reachability is not re-traced from entry.
//
// Grounded on gocpu/pkg/compiler/optimize.go's eliminateDeadFunctions: a
// reachable set seeded from implicit roots, expanded to a fixed point, and
// used at the end to filter the surviving declarations. Here the
// "reachable" set is already complete by the time Generate returns
// (folding happens eagerly during codegen), so there is no worklist left
// to drain — Peephole's own pass is the filter step alone, seeded with
// entry plus every folded name.
func RunPeephole[W Width](procs *ProcedureMap[W], reachable map[string]bool, entry string) *ProcedureMap[W] {
	seeds := make(map[string]bool, len(reachable)+1)
	for name := range reachable {
		seeds[name] = true
	}
	if entry != "" {
		seeds[entry] = true
	}

	pruned := NewProcedureMap[W]()
	for _, name := range procs.Names() {
		if !seeds[name] {
			continue
		}
		buf, _ := procs.Get(name)
		pruned.Set(name, buf)
	}
	return pruned
}
