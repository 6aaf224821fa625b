package ir

import "strings"

// Program is an ordered list of subroutines, in source order.
type Program struct {
	Subroutines []*Subroutine
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{}
}

// AddSubroutine appends a compiled subroutine. This is the one
// chokepoint subroutines enter the program through, keeping source
// ordering (and any future duplicate-name validation) in one place
// instead of scattered across call sites.
func (p *Program) AddSubroutine(s *Subroutine) {
	p.Subroutines = append(p.Subroutines, s)
}

func (p *Program) String() string {
	var parts []string
	for _, s := range p.Subroutines {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}
