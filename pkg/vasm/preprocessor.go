package vasm

import "strings"

// directiveFunc mutates opts in response to a [name args...] macro.
type directiveFunc func(opts *Options, args []Value) *CompileError

// directives is the built-in table dispatched by name. Grounded on
// gocpu/pkg/compiler/preprocessor.go's directive-line dispatch shape
// (look the name up, call its handler, error on unknown name) — LR
// Assembly directives arrive as already-parsed Macro nodes rather than
// raw text lines, so only the table-plus-dispatch structure carries over.
var directives = map[string]directiveFunc{
	"compat":     directiveCompat,
	"endian":     directiveEndian,
	"compile-if": directiveCompileIf,
}

func directiveCompat(opts *Options, args []Value) *CompileError {
	name, err := singleIdentifierArg("compat", args)
	if err != nil {
		return err
	}
	format, ok := ParseFormat(name.Text)
	if !ok {
		return newErr(ErrInvalidArgumentType, name.Sp, "compat: unknown format %q", name.Text)
	}
	if !opts.formatLockedByCLI {
		opts.Format = format
	}
	return nil
}

func directiveEndian(opts *Options, args []Value) *CompileError {
	name, err := singleIdentifierArg("endian", args)
	if err != nil {
		return err
	}
	switch strings.ToLower(name.Text) {
	case "little":
		opts.Endian = LittleEndian
	case "big":
		opts.Endian = BigEndian
	default:
		return newErr(ErrInvalidArgumentType, name.Sp, "endian: expected 'little' or 'big', found %q", name.Text)
	}
	return nil
}

func directiveCompileIf(opts *Options, args []Value) *CompileError {
	name, err := singleIdentifierArg("compile-if", args)
	if err != nil {
		return err
	}
	format, ok := ParseFormat(name.Text)
	if !ok {
		return newErr(ErrInvalidArgumentType, name.Sp, "compile-if: unknown format %q", name.Text)
	}
	if opts.Format != FormatUnset && opts.Format != format {
		return newErr(ErrCompileIfMismatch, name.Sp,
			"compile-if %s: current target is %s", format, opts.Format)
	}
	return nil
}

func singleIdentifierArg(directive string, args []Value) (*Identifier, *CompileError) {
	if len(args) != 1 {
		return nil, newErrNoSpan(ErrInvalidArgumentCount, "%s expects exactly 1 argument, got %d", directive, len(args))
	}
	id, ok := args[0].(*Identifier)
	if !ok {
		return nil, newErr(ErrInvalidArgumentType, args[0].span(), "%s expects an identifier argument", directive)
	}
	return id, nil
}

// Preprocess walks root and executes every registered directive macro,
// mutating opts in place. Procedures and asides pass through untouched.
// An unregistered macro name is a NonexistentDirective.
func Preprocess(root *Root, opts *Options) *CompileError {
	for _, child := range root.Children {
		macro, ok := child.(*Macro)
		if !ok {
			continue
		}
		fn, ok := directives[macro.Name]
		if !ok {
			return newErr(ErrNonexistentDirective, macro.Sp, "no such directive %q", macro.Name)
		}
		if err := fn(opts, macro.Parameters); err != nil {
			return err
		}
	}
	return nil
}
