package vasm

import "math"

// Result is everything a successful compile produced: the linked and
// persisted binary, plus every stylist diagnostic collected along the way.
type Result struct {
	Bytes       []byte
	Diagnostics []Diagnostic
}

// Compile runs the full pipeline — stylist, lex, parse, preprocess,
// codegen, link, persist — over source for the format selected by opts
// (or by a `[compat ...]` directive if opts.Format is unset;
// `[compile-if ...]` only checks it). It stops at the first stage that fails.
//
// Grounded on gocpu's own main.go: read source, assemble, write binary,
// generalized here into the eleven-step sequence the multi-target pipeline
// requires.
func Compile(source string, opts *Options) (*Result, *CompileError) {
	var diags []Diagnostic
	if opts.StylistEnabled {
		diags = RunStylist(source)
		if opts.StrictStylist && len(diags) > 0 {
			return nil, newErrNoSpan(ErrCodegenOther, "strict mode: %d style diagnostic(s) found", len(diags))
		}
	}

	maxSize, checkBig := lexLimitsFor(opts.Format, opts.AllowBigNumbers)
	tokens, err := Lex(source, maxSize, checkBig)
	if err != nil {
		return nil, err
	}

	root, err := Parse(tokens, source)
	if err != nil {
		return nil, err
	}

	if err := Preprocess(root, opts); err != nil {
		return nil, err
	}

	if opts.Format == FormatUnset {
		return nil, newErrNoSpan(ErrCodegenOther, "no target format selected: pass -f/--format or a [compat ...] directive")
	}

	// The lexer's numeric bounds were chosen before Preprocess could learn
	// the format from a directive. When the format comes only from a
	// directive, lexing ran without the number-size check, and numbers are
	// not checked against the target's bound again afterwards.

	bytes, err := generateForFormat(root, opts)
	if err != nil {
		return nil, err
	}

	return &Result{Bytes: bytes, Diagnostics: diags}, nil
}

func lexLimitsFor(f Format, allowBig bool) (int64, bool) {
	check := !allowBig
	switch f {
	case FormatOpenLUD:
		return math.MaxInt8, check
	case FormatNexFUSE, FormatMercury:
		return math.MaxUint8, check
	case FormatSiAX, FormatJADE:
		return math.MaxInt32, check
	case FormatSolarisVM:
		return math.MaxUint32, check
	default:
		// Format not yet known (pending a directive): the number-size
		// check is turned off. Codegen's register-width check covers
		// register numbers only, not numeric operands.
		return math.MaxInt32, false
	}
}

func generateForFormat(root *Root, opts *Options) ([]byte, *CompileError) {
	switch opts.Format {
	case FormatOpenLUD:
		return runPipeline(root, OpenLUDVendor(), OpenLUDLinkContext(), opts)
	case FormatNexFUSE:
		return runPipeline(root, NexFUSEVendor(), NexFUSELinkContext(), opts)
	case FormatMercury:
		return runPipeline(root, MercuryPICVendor(), MercuryPICLinkContext(), opts)
	case FormatSiAX:
		return runPipeline(root, SiAXVendor(), SiAXLinkContext(), opts)
	case FormatJADE:
		return runPipeline(root, JADEVendor(), JADELinkContext(), opts)
	case FormatSolarisVM:
		return runPipeline(root, SolarisVMVendor(), SolarisVMLinkContext(), opts)
	default:
		return nil, newErrNoSpan(ErrCodegenOther, "unknown target format %q", opts.Format)
	}
}

// entryProcedureName is the conventional program root: a procedure named
// "_start". Its absence is not itself fatal here — LinkContext.Compile
// decides whether a missing entry is an error (a program) or acceptable
// (a library).
const entryProcedureName = "_start"

func runPipeline[W Width](root *Root, vendor *Vendor[W], ctx LinkContext[W], opts *Options) ([]byte, *CompileError) {
	procs, reachable, err := Generate(root, vendor)
	if err != nil {
		return nil, err
	}

	entry := entryProcedureName

	var linked []W
	if opts.OptimizationLevel > 0 {
		linked, err = OptimizedLink(procs, reachable, entry, ctx)
	} else {
		linked, err = Link(procs, entry, ctx)
	}
	if err != nil {
		return nil, err
	}

	out := PersistHeader(ctx)
	out = append(out, Persist(linked, opts.Endian)...)
	return out, nil
}
