package ir

import (
	"fmt"
	"strings"
)

// Param is one subroutine parameter. Type is the basic textual type (for
// arrays, the element's textual type -- the array flag conveys the
// "is this cell actually an array" bit separately, since a reference to
// an array parameter is stored the same way as a scalar.
type Param struct {
	Name    string
	Type    string
	IsArray bool
}

// Local is one subroutine-local variable. CellCount is size-of(type) --
// 1 for scalars, length*size-of(elem) for arrays.
type Local struct {
	Name      string
	Type      string
	CellCount int
}

// Subroutine is one compiled function or procedure.
type Subroutine struct {
	Name   string
	Params []Param
	Locals []Local
	Body   InstructionList
}

// NewSubroutine creates an empty subroutine ready to be assembled by the
// Codegen Pass's subroutine-assembly step.
func NewSubroutine(name string) *Subroutine {
	return &Subroutine{Name: name}
}

func (s *Subroutine) AddParam(name, typeText string, isArray bool) {
	s.Params = append(s.Params, Param{Name: name, Type: typeText, IsArray: isArray})
}

func (s *Subroutine) AddLocal(name, typeText string, cellCount int) {
	s.Locals = append(s.Locals, Local{Name: name, Type: typeText, CellCount: cellCount})
}

func (s *Subroutine) SetBody(code InstructionList) {
	s.Body = code
}

// String renders the subroutine in the abstract machine's textual
// form: header, params, locals, body, trailing RETURN (the RETURN is
// expected to already be part of Body by the time this is called).
func (s *Subroutine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "subroutine %s\n", s.Name)
	for _, p := range s.Params {
		if p.IsArray {
			fmt.Fprintf(&b, "param %s %s array\n", p.Name, p.Type)
		} else {
			fmt.Fprintf(&b, "param %s %s\n", p.Name, p.Type)
		}
	}
	for _, v := range s.Locals {
		fmt.Fprintf(&b, "var %s %s %d\n", v.Name, v.Type, v.CellCount)
	}
	for _, instr := range s.Body {
		fmt.Fprintf(&b, "    %s\n", instr.String())
	}
	return b.String()
}
