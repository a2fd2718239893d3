package vasm

import "math"

// Handler emits the bytes for one InstructionCall. It receives the whole
// call so it can build spans for its own diagnostics.
type Handler[W Width] func(g *Generator[W], v *Vendor[W], call *InstructionCall) ([]W, *CompileError)

// Vendor is a per-target code generator: an instruction table, framing
// flags, and the integer width it emits.
//
// Grounded on gocpu/pkg/asm/asm.go's per-arity opcode tables
// (zeroOperandOps, oneRegisterOps, twoRegisterOps, ...): here the arity
// and type checking live inside each Handler instead of being implied by
// which table an opcode is filed under, because LR Assembly's instruction
// set is richer (variadic lsl, mixed register/label/number operands) than
// GoCPU's fixed register-only encoding.
type Vendor[W Width] struct {
	Name                   string
	Table                  map[string]Handler[W]
	NulAfterSequence       bool
	NulByte                W
	HasStatementTerminator bool
	StatementTerminator    W
}

// maxRegister returns the highest register number a Vendor's width can
// address, i.e. max(W).
func maxRegister[W Width]() int64 {
	var zero W
	switch any(zero).(type) {
	case int8:
		return math.MaxInt8
	case uint8:
		return math.MaxUint8
	case int32:
		return math.MaxInt32
	case uint32:
		return math.MaxUint32
	default:
		return 0
	}
}

// Generator walks a Root and produces a ProcedureMap. FoldedReachable
// records every procedure name folded (inlined) into another during
// generation — the peephole optimizer's reachable set is exactly this set
// plus the seeded entry name.
type Generator[W Width] struct {
	Vendor          *Vendor[W]
	Procedures      *ProcedureMap[W]
	FoldedReachable map[string]bool
}

func newGenerator[W Width](v *Vendor[W]) *Generator[W] {
	return &Generator[W]{
		Vendor:          v,
		Procedures:      NewProcedureMap[W](),
		FoldedReachable: make(map[string]bool),
	}
}

// Generate walks root's procedures in source order, producing a
// ProcedureMap and the set of names folded into some other procedure.
// Grounded on gocpu/pkg/compiler/codegen.go's per-function code generation
// loop, adapted to a fold-or-emit dispatch per call.
func Generate[W Width](root *Root, v *Vendor[W]) (*ProcedureMap[W], map[string]bool, *CompileError) {
	g := newGenerator(v)

	for _, child := range root.Children {
		proc, ok := child.(*Procedure)
		if !ok {
			continue // Macros were run by the preprocessor; asides emit no code
		}
		buf, err := g.generateProcedure(proc)
		if err != nil {
			return nil, nil, err
		}
		g.Procedures.Set(proc.Header, buf)
	}

	return g.Procedures, g.FoldedReachable, nil
}

func (g *Generator[W]) generateProcedure(proc *Procedure) ([]W, *CompileError) {
	var buf []W

	for _, child := range proc.Children {
		call, ok := child.(*InstructionCall)
		if !ok {
			continue
		}

		if callee, exists := g.Procedures.Get(call.Name.Text); exists {
			// Procedure folding: inline the callee's already-generated
			// bytes and mark it reachable.
			buf = append(buf, callee...)
			g.FoldedReachable[call.Name.Text] = true
			continue
		}

		handler, ok := g.Vendor.Table[call.Name.Text]
		if !ok {
			return nil, newErr(ErrInstructionDoesntExist, call.Sp, "no such instruction %q", call.Name.Text)
		}

		if err := g.checkRegisterWidths(call); err != nil {
			return nil, err
		}

		emitted, err := handler(g, g.Vendor, call)
		if err != nil {
			return nil, err
		}
		buf = append(buf, emitted...)

		if g.Vendor.HasStatementTerminator {
			buf = append(buf, g.Vendor.StatementTerminator)
		}
		if g.Vendor.NulAfterSequence {
			buf = append(buf, g.Vendor.NulByte)
		}
	}

	return buf, nil
}

// checkRegisterWidths verifies every Register parameter's number fits in
// the vendor's width before the handler ever runs.
func (g *Generator[W]) checkRegisterWidths(call *InstructionCall) *CompileError {
	max := maxRegister[W]()
	for _, p := range call.Parameters {
		reg, ok := p.(*Register)
		if !ok {
			continue
		}
		if int64(reg.Number) > max {
			return newErr(ErrRegisterNumberTooLarge, reg.Sp,
				"register R%d exceeds this target's maximum of R%d", reg.Number, max)
		}
	}
	return nil
}
