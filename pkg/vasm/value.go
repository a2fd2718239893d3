package vasm

import "fmt"

// Value is the AST-level tagged variant derived from tokens at parse time.
// Every concrete type below implements it via an unexported marker method,
// the same shape gocpu/pkg/compiler/ast.go uses for its Expr/Stmt
// interfaces.
type Value interface {
	valueNode()
	String() string
	span() Span
}

// Identifier is a bare name that is neither a register, nil, nor a range.
type Identifier struct {
	Text string
	Sp   Span
}

func (*Identifier) valueNode()      {}
func (v *Identifier) String() string { return v.Text }
func (v *Identifier) span() Span     { return v.Sp }

// Number is a parsed integer literal.
type Number struct {
	Val int64
	Sp  Span
}

func (*Number) valueNode()      {}
func (v *Number) String() string { return fmt.Sprintf("%d", v.Val) }
func (v *Number) span() Span     { return v.Sp }

// Literal is a character literal; Body preserves the escape digraph
// verbatim (e.g. `\n`, two characters) until toCharacter resolves it.
type Literal struct {
	Body string
	Sp   Span
}

func (*Literal) valueNode()      {}
func (v *Literal) String() string { return fmt.Sprintf("'%s'", v.Body) }
func (v *Literal) span() Span     { return v.Sp }

// Register is an identifier shaped R<digits>, e.g. R0, R15.
type Register struct {
	Number int
	Sp     Span
}

func (*Register) valueNode()      {}
func (v *Register) String() string { return fmt.Sprintf("R%d", v.Number) }
func (v *Register) span() Span     { return v.Sp }

// Range is {N:M} with N <= M.
type Range struct {
	Start int64
	End   int64
	Sp    Span
}

func (*Range) valueNode()      {}
func (v *Range) String() string { return fmt.Sprintf("{%d:%d}", v.Start, v.End) }
func (v *Range) span() Span     { return v.Sp }

// Nil is the identifier "nil" (case-insensitive): a type-safe "nothing,"
// not zero, not comparable to numbers.
type Nil struct {
	Sp Span
}

func (*Nil) valueNode()      {}
func (v *Nil) String() string { return "nil" }
func (v *Nil) span() Span     { return v.Sp }

// ValueSpan returns the span carried by any Value, for diagnostics.
func ValueSpan(v Value) Span { return v.span() }
