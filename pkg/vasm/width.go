package vasm

// Width is the byte-element type a target's procedure map and linker
// output are built from: i8 for OpenLUD, u8 for NexFUSE/MercuryPIC, i32/u32
// for SiAX/JADE/SolarisVM. Parameterizing Vendor/ProcedureMap/Peephole/
// LinkContext over Width, rather than writing four near-identical
// non-generic implementations, keeps one code path for all six targets.
type Width interface {
	~int8 | ~uint8 | ~int32 | ~uint32
}

// ProcedureMap holds procedure name -> generated byte sequence, in
// insertion order, so non-folding linker output is deterministic and
// testable byte-for-byte rather than depending on Go's native map order.
type ProcedureMap[W Width] struct {
	order []string
	bufs  map[string][]W
}

func NewProcedureMap[W Width]() *ProcedureMap[W] {
	return &ProcedureMap[W]{bufs: make(map[string][]W)}
}

// Set stores buf under name, appending name to the insertion order only
// the first time it's seen (redefining a procedure keeps its original
// position, matching how a Go map would behave under repeated assignment).
func (m *ProcedureMap[W]) Set(name string, buf []W) {
	if _, exists := m.bufs[name]; !exists {
		m.order = append(m.order, name)
	}
	m.bufs[name] = buf
}

func (m *ProcedureMap[W]) Get(name string) ([]W, bool) {
	buf, ok := m.bufs[name]
	return buf, ok
}

func (m *ProcedureMap[W]) Delete(name string) {
	if _, exists := m.bufs[name]; !exists {
		return
	}
	delete(m.bufs, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *ProcedureMap[W]) Len() int { return len(m.order) }

// Names returns procedure names in insertion order.
func (m *ProcedureMap[W]) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
