package vasm

import (
	"fmt"
	"strings"
)

// Node is implemented by every top-level AST construct. Root.Children
// holds only Procedure | Macro | Aside; a Procedure never contains
// another Procedure.
type Node interface {
	nodeType()
	String() string
}

// Root is the top of the AST: a flat sequence of procedures, macros, and
// asides in source order.
type Root struct {
	Children []Node
}

func (*Root) nodeType() {}
func (r *Root) String() string {
	parts := make([]string, len(r.Children))
	for i, c := range r.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("Root(%s)", strings.Join(parts, ", "))
}

// Procedure is `header:` followed by a run of InstructionCall nodes, up to
// the next `identifier :` pair or EOF.
type Procedure struct {
	Header   string
	Children []Node // always *InstructionCall
	Sp       Span
}

func (*Procedure) nodeType() {}
func (p *Procedure) String() string {
	return fmt.Sprintf("Procedure(%s, %d instructions)", p.Header, len(p.Children))
}

// InstructionCall is a single `name arg, arg, ...` line inside a Procedure.
type InstructionCall struct {
	Name       *Identifier
	Parameters []Value
	Sp         Span
}

func (*InstructionCall) nodeType() {}
func (c *InstructionCall) String() string {
	parts := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name.Text, strings.Join(parts, ", "))
}

// Macro is the bracket form `[name args...]`, living at root.
type Macro struct {
	Name       string
	Parameters []Value
	Sp         Span
}

func (*Macro) nodeType() {}
func (m *Macro) String() string {
	parts := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s %s]", m.Name, strings.Join(parts, " "))
}

// Aside is the colon-led form `:name args...` at root, binding a
// compile-time symbol.
type Aside struct {
	Name       string
	Parameters []Value
	Sp         Span
}

func (*Aside) nodeType() {}
func (a *Aside) String() string {
	parts := make([]string, len(a.Parameters))
	for i, p := range a.Parameters {
		parts[i] = p.String()
	}
	return fmt.Sprintf(":%s %s", a.Name, strings.Join(parts, " "))
}
