package codegen

import (
	"github.com/hegalit/aslc/internal/ir"
	"github.com/hegalit/aslc/internal/types"
)

// reference returns the address to use as the base of an array value
// held in addr, loading an ALOAD into a fresh temp when addr names a
// local array variable: a local's own name is its storage cell, not a
// pointer to it, so taking its address is the only way to get a base
// usable by LOADX/XLOAD.
func (p *Pass) reference(addr string, ty types.TypeId) (string, ir.InstructionList) {
	if p.Symbols.IsLocalVar(addr) && p.Types.IsArray(ty) {
		tmp := p.counters.NewTemp()
		return tmp, ir.Of(ir.ALOAD(tmp, addr))
	}
	return addr, ir.Empty
}

// dereference loads the address held by an array parameter into a fresh
// temp: a parameter cell already holds the address the caller passed,
// so one LOAD recovers that address as a usable base.
func (p *Pass) dereference(addr string, ty types.TypeId) (string, ir.InstructionList) {
	if p.Symbols.IsParameter(addr) && p.Types.IsArray(ty) {
		tmp := p.counters.NewTemp()
		return tmp, ir.Of(ir.LOAD(tmp, addr))
	}
	return addr, ir.Empty
}

// coerceType widens attr's value from srcTy to dstTy when srcTy is int
// and dstTy is float, leaving it untouched otherwise -- int -> float is
// the only implicit conversion this language admits.
func (p *Pass) coerceType(attr *ir.CodeAttrib, srcTy, dstTy types.TypeId) *ir.CodeAttrib {
	if p.Types.IsInteger(srcTy) && p.Types.IsFloat(dstTy) {
		tmp := p.counters.NewTemp()
		code := ir.Concat(attr.Code, ir.Of(ir.FLOAT(tmp, attr.Addr)))
		return ir.NewCodeAttrib(tmp, "", code)
	}
	return attr
}

// instructionMOD lowers MOD, which the abstract machine has no opcode
// for, to a - (a/b)*b.
func (p *Pass) instructionMOD(dst, a, b string) ir.InstructionList {
	q := p.counters.NewTemp()
	m := p.counters.NewTemp()
	return ir.Concat(
		ir.Of(ir.DIV(q, a, b)),
		ir.Of(ir.MUL(m, q, b)),
		ir.Of(ir.SUB(dst, a, m)),
	)
}

// instructionNE lowers integer != to EQ then NOT; the machine has no
// direct not-equal opcode for either numeric kind.
func (p *Pass) instructionNE(dst, a, b string) ir.InstructionList {
	tmp := p.counters.NewTemp()
	return ir.Concat(ir.Of(ir.EQ(tmp, a, b)), ir.Of(ir.NOT(dst, tmp)))
}

func (p *Pass) instructionFNE(dst, a, b string) ir.InstructionList {
	tmp := p.counters.NewTemp()
	return ir.Concat(ir.Of(ir.FEQ(tmp, a, b)), ir.Of(ir.NOT(dst, tmp)))
}

// arrayAddr resolves the usable base address of an array value held in
// a variable named addr, applying whichever of dereference/reference
// actually fires for its storage class -- exactly one of the two ever
// does, since a name is never both a parameter and a local.
func (p *Pass) arrayAddr(addr string, ty types.TypeId) (string, ir.InstructionList) {
	addr, code := p.dereference(addr, ty)
	addr, code2 := p.reference(addr, ty)
	return addr, ir.Concat(code, code2)
}

// loadIfIndexed resolves a CodeAttrib that may denote an array cell
// (non-empty Offs) down to a plain value in a fresh temp. Every
// expression-consuming context -- arithmetic, comparisons, write,
// return, call arguments -- needs the value, never the cell address.
func (p *Pass) loadIfIndexed(attr *ir.CodeAttrib) *ir.CodeAttrib {
	if attr.Offs == "" {
		return attr
	}
	tmp := p.counters.NewTemp()
	code := ir.Concat(attr.Code, ir.Of(ir.LOADX(tmp, attr.Addr, attr.Offs)))
	return ir.NewCodeAttrib(tmp, "", code)
}

// instructionLOOP assembles a while loop's full shape around a
// pre-lowered condition and body: top label, condition, a false-jump
// past the body, the body, a jump back to the top, end label.
func (p *Pass) instructionLOOP(cond *ir.CodeAttrib, body ir.InstructionList) ir.InstructionList {
	suffix := p.counters.NewLabelWhile()
	start := "while" + suffix
	end := "endwhile" + suffix
	return ir.Concat(
		ir.Of(ir.LABEL(start)),
		cond.Code,
		ir.Of(ir.FJUMP(cond.Addr, end)),
		body,
		ir.Of(ir.UJUMP(start)),
		ir.Of(ir.LABEL(end)),
	)
}
