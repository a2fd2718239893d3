package vasm

// Opcode bytes shared by every target's instruction table.
const (
	opJmp   = 15
	opEcho  = 40
	opMov   = 41
	opEach  = 42
	opReset = 43
	opClear = 44 // shared with zeroall
	opPut   = 45
	opGet   = 46
	opAdd   = 47
	opLar   = 48
	opLsl   = 49
	opIn    = 50
	opCmp   = 51
	opInc   = 52
	opRep   = 53
	// init has no canonical byte assignment; it takes 54, the next byte
	// after rep's 53.
	opInit = 54
)

func arityError(call *InstructionCall, want int) *CompileError {
	return newErr(ErrTooLittleParams, call.Sp,
		"%s expects %d parameter(s), got %d", call.Name.Text, want, len(call.Parameters))
}

func paramAt(call *InstructionCall, idx int) (Value, *CompileError) {
	if idx >= len(call.Parameters) {
		return nil, newErr(ErrExpectedParameter, call.Sp, "%s is missing parameter %d", call.Name.Text, idx+1)
	}
	return call.Parameters[idx], nil
}

func expectRegister(call *InstructionCall, idx int) (*Register, *CompileError) {
	v, err := paramAt(call, idx)
	if err != nil {
		return nil, err
	}
	r, ok := v.(*Register)
	if !ok {
		return nil, newErr(ErrTypeMismatch, v.span(), "%s parameter %d: expected a register, got %T", call.Name.Text, idx+1, v)
	}
	return r, nil
}

func expectNumber(call *InstructionCall, idx int) (*Number, *CompileError) {
	v, err := paramAt(call, idx)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*Number)
	if !ok {
		return nil, newErr(ErrTypeMismatch, v.span(), "%s parameter %d: expected a number, got %T", call.Name.Text, idx+1, v)
	}
	return n, nil
}

func expectLiteral(call *InstructionCall, idx int) (*Literal, *CompileError) {
	v, err := paramAt(call, idx)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*Literal)
	if !ok {
		return nil, newErr(ErrTypeMismatch, v.span(), "%s parameter %d: expected a character literal, got %T", call.Name.Text, idx+1, v)
	}
	return l, nil
}

// expectLabel accepts an Identifier naming a procedure/jump target.
func expectLabel(call *InstructionCall, idx int) (*Identifier, *CompileError) {
	v, err := paramAt(call, idx)
	if err != nil {
		return nil, err
	}
	id, ok := v.(*Identifier)
	if !ok {
		return nil, newErr(ErrTypeMismatch, v.span(), "%s parameter %d: expected a label, got %T", call.Name.Text, idx+1, v)
	}
	return id, nil
}

func firstByteOfLabel(id *Identifier) byte {
	if len(id.Text) == 0 {
		return 0
	}
	return id.Text[0]
}

// handleEcho: echo 'c' -> [40, ord(c)]. c must be a literal.
func handleEcho[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	lit, err := expectLiteral(call, 0)
	if err != nil {
		return nil, err
	}
	ch, ok := toCharacter(lit.Body)
	if !ok {
		return nil, newErr(ErrTypeMismatch, lit.Sp, "echo: %q is not a valid character literal", lit.Body)
	}
	return []W{opEcho, W(ch)}, nil
}

// handleMov: mov Rn, k -> [41, n, k].
func handleMov[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	num, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opMov, W(reg.Number), W(num.Val)}, nil
}

// handleEach: each Rn -> [42, n].
func handleEach[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opEach, W(reg.Number)}, nil
}

// handleReset: reset Rn -> [43, n].
func handleReset[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opReset, W(reg.Number)}, nil
}

// handleClear: clear / zeroall (nullary) -> [44].
func handleClear[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 0 {
		return nil, arityError(call, 0)
	}
	return []W{opClear}, nil
}

// handleInit: init (nullary) -> [54].
func handleInit[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 0 {
		return nil, arityError(call, 0)
	}
	return []W{opInit}, nil
}

// handlePut: put Rn, k, p -> [45, n, k, p].
func handlePut[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 3 {
		return nil, arityError(call, 3)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	k, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	p, err := expectNumber(call, 2)
	if err != nil {
		return nil, err
	}
	return []W{opPut, W(reg.Number), W(k.Val), W(p.Val)}, nil
}

// handleGet: get Rn, p, Rm -> [46, n, p, m].
func handleGet[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 3 {
		return nil, arityError(call, 3)
	}
	regN, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	p, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	regM, err := expectRegister(call, 2)
	if err != nil {
		return nil, err
	}
	return []W{opGet, W(regN.Number), W(p.Val), W(regM.Number)}, nil
}

// handleAdd: add Rn, Rm -> [47, n, m].
func handleAdd[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	regN, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	regM, err := expectRegister(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opAdd, W(regN.Number), W(regM.Number)}, nil
}

// handleLar: lar Rn -> [48, n].
func handleLar[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opLar, W(reg.Number)}, nil
}

// handleLsl: lsl Rn, ...ints/chars -> [49, n, ...].
func handleLsl[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) < 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	out := []W{opLsl, W(reg.Number)}
	for i := 1; i < len(call.Parameters); i++ {
		switch v := call.Parameters[i].(type) {
		case *Number:
			out = append(out, W(v.Val))
		case *Literal:
			ch, ok := toCharacter(v.Body)
			if !ok {
				return nil, newErr(ErrTypeMismatch, v.Sp, "lsl: %q is not a valid character literal", v.Body)
			}
			out = append(out, W(ch))
		default:
			return nil, newErr(ErrTypeMismatch, v.span(), "lsl parameter %d: expected a number or character literal", i+1)
		}
	}
	return out, nil
}

// handleIn: in Rn -> [50, n].
func handleIn[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opIn, W(reg.Number)}, nil
}

// handleCmp: cmp Rn, Rm, label -> [51, n, m, first-byte-of-label].
func handleCmp[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 3 {
		return nil, arityError(call, 3)
	}
	regN, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	regM, err := expectRegister(call, 1)
	if err != nil {
		return nil, err
	}
	label, err := expectLabel(call, 2)
	if err != nil {
		return nil, err
	}
	return []W{opCmp, W(regN.Number), W(regM.Number), W(firstByteOfLabel(label))}, nil
}

// handleInc: inc Rn -> [52, n].
func handleInc[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	reg, err := expectRegister(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opInc, W(reg.Number)}, nil
}

// handleRep: rep label, k -> [53, first-byte-of-label, k].
func handleRep[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 2 {
		return nil, arityError(call, 2)
	}
	label, err := expectLabel(call, 0)
	if err != nil {
		return nil, err
	}
	k, err := expectNumber(call, 1)
	if err != nil {
		return nil, err
	}
	return []W{opRep, W(firstByteOfLabel(label)), W(k.Val)}, nil
}

// handleJmp: jmp label -> [15, first-byte-of-label].
func handleJmp[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 1 {
		return nil, arityError(call, 1)
	}
	label, err := expectLabel(call, 0)
	if err != nil {
		return nil, err
	}
	return []W{opJmp, W(firstByteOfLabel(label))}, nil
}

// handleNop: nop -> empty.
func handleNop[W Width](_ *Generator[W], _ *Vendor[W], call *InstructionCall) ([]W, *CompileError) {
	if len(call.Parameters) != 0 {
		return nil, arityError(call, 0)
	}
	return nil, nil
}
