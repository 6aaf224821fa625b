package codegen

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/ir"
	"github.com/hegalit/aslc/internal/logging"
)

// visitExpr lowers any expr-position node to a CodeAttrib holding its
// value (or, for an indexed array element passed through from a
// leftExpr, still carrying a live Offs -- callers that need the value
// rather than the cell go through loadIfIndexed).
func (p *Pass) visitExpr(ctx *ast.Branch) *ir.CodeAttrib {
	switch ctx.Name {
	case ast.NValue:
		return p.visitValue(ctx)
	case ast.NExprIdent:
		return p.visitExprIdent(ctx)
	case ast.NLeftExpr:
		return p.visitLeftExprTarget(ctx.BranchAt(0))
	case ast.NFuncCall:
		return p.visitCall(ctx.BranchAt(0))
	case ast.NArithmetic:
		return p.visitArithmetic(ctx)
	case ast.NRelational:
		return p.visitRelational(ctx)
	case ast.NLogical:
		return p.visitLogical(ctx)
	case ast.NUnary:
		return p.visitUnary(ctx)
	case ast.NParenthesis:
		return p.visitExpr(ctx.Content[0].(*ast.Branch))
	default:
		logging.LogFatal("codegen: unrecognized expr node " + ctx.Name)
		return nil
	}
}

func (p *Pass) visitValue(ctx *ast.Branch) *ir.CodeAttrib {
	leaf := ctx.LeafAt(0)
	tmp := p.counters.NewTemp()

	switch leaf.Kind {
	case ast.FloatVal:
		return ir.NewCodeAttrib(tmp, "", ir.Of(ir.FLOAD(tmp, leaf.Text)))
	case ast.CharVal:
		ch := leaf.Text[1 : len(leaf.Text)-1]
		return ir.NewCodeAttrib(tmp, "", ir.Of(ir.CHLOAD(tmp, ch)))
	case ast.BoolVal:
		v := "0"
		if leaf.Text == "true" {
			v = "1"
		}
		return ir.NewCodeAttrib(tmp, "", ir.Of(ir.ILOAD(tmp, v)))
	default:
		return ir.NewCodeAttrib(tmp, "", ir.Of(ir.ILOAD(tmp, leaf.Text)))
	}
}

// visitExprIdent lowers a bare identifier reference to its own name,
// with no code: scalars and arrays alike are addressed by name until a
// consumer (assignment, call argument, array copy) decides whether that
// name needs dereferencing or taking the address of.
func (p *Pass) visitExprIdent(ctx *ast.Branch) *ir.CodeAttrib {
	identBranch := ctx.BranchAt(0)
	name := identBranch.LeafAt(0).Text
	return ir.NewCodeAttrib(name, "", ir.Empty)
}

func (p *Pass) visitArithmetic(ctx *ast.Branch) *ir.CodeAttrib {
	aNode := ctx.Content[0].(*ast.Branch)
	bNode := ctx.Content[1].(*ast.Branch)
	aTy := p.Decor.GetType(aNode)
	bTy := p.Decor.GetType(bNode)
	resultTy := p.Decor.GetType(ctx)

	a := p.loadIfIndexed(p.visitExpr(aNode))
	b := p.loadIfIndexed(p.visitExpr(bNode))

	var tmp string
	var opCode ir.InstructionList
	code := ir.Concat(a.Code, b.Code)

	if ctx.Op == ast.Mod {
		tmp = p.counters.NewTemp()
		opCode = p.instructionMOD(tmp, a.Addr, b.Addr)
	} else {
		// Both operands are loaded before either is coerced.
		a = p.coerceType(ir.NewCodeAttrib(a.Addr, "", ir.Empty), aTy, resultTy)
		b = p.coerceType(ir.NewCodeAttrib(b.Addr, "", ir.Empty), bTy, resultTy)
		code = ir.Concat(code, a.Code, b.Code)
		tmp = p.counters.NewTemp()
		isFloat := p.Types.IsFloat(resultTy)
		switch ctx.Op {
		case ast.Plus:
			if isFloat {
				opCode = ir.Of(ir.FADD(tmp, a.Addr, b.Addr))
			} else {
				opCode = ir.Of(ir.ADD(tmp, a.Addr, b.Addr))
			}
		case ast.Minus:
			if isFloat {
				opCode = ir.Of(ir.FSUB(tmp, a.Addr, b.Addr))
			} else {
				opCode = ir.Of(ir.SUB(tmp, a.Addr, b.Addr))
			}
		case ast.Star:
			if isFloat {
				opCode = ir.Of(ir.FMUL(tmp, a.Addr, b.Addr))
			} else {
				opCode = ir.Of(ir.MUL(tmp, a.Addr, b.Addr))
			}
		case ast.Divide:
			if isFloat {
				opCode = ir.Of(ir.FDIV(tmp, a.Addr, b.Addr))
			} else {
				opCode = ir.Of(ir.DIV(tmp, a.Addr, b.Addr))
			}
		}
	}

	return ir.NewCodeAttrib(tmp, "", ir.Concat(code, opCode))
}

// visitRelational handles both orderings and the float/int split: GT and
// GE lower to LT/LE with swapped operands rather than new opcodes.
func (p *Pass) visitRelational(ctx *ast.Branch) *ir.CodeAttrib {
	aNode := ctx.Content[0].(*ast.Branch)
	bNode := ctx.Content[1].(*ast.Branch)
	aTy := p.Decor.GetType(aNode)
	bTy := p.Decor.GetType(bNode)

	a := p.loadIfIndexed(p.visitExpr(aNode))
	b := p.loadIfIndexed(p.visitExpr(bNode))

	isFloat := p.Types.IsFloat(aTy) || p.Types.IsFloat(bTy)
	if isFloat {
		a = p.coerceType(a, aTy, p.Types.CreateFloat())
		b = p.coerceType(b, bTy, p.Types.CreateFloat())
	}

	tmp := p.counters.NewTemp()
	var opCode ir.InstructionList

	switch ctx.Op {
	case ast.Lt:
		if isFloat {
			opCode = ir.Of(ir.FLT(tmp, a.Addr, b.Addr))
		} else {
			opCode = ir.Of(ir.LT(tmp, a.Addr, b.Addr))
		}
	case ast.Le:
		if isFloat {
			opCode = ir.Of(ir.FLE(tmp, a.Addr, b.Addr))
		} else {
			opCode = ir.Of(ir.LE(tmp, a.Addr, b.Addr))
		}
	case ast.Gt:
		if isFloat {
			opCode = ir.Of(ir.FLT(tmp, b.Addr, a.Addr))
		} else {
			opCode = ir.Of(ir.LT(tmp, b.Addr, a.Addr))
		}
	case ast.Ge:
		if isFloat {
			opCode = ir.Of(ir.FLE(tmp, b.Addr, a.Addr))
		} else {
			opCode = ir.Of(ir.LE(tmp, b.Addr, a.Addr))
		}
	case ast.Eq:
		if isFloat {
			opCode = ir.Of(ir.FEQ(tmp, a.Addr, b.Addr))
		} else {
			opCode = ir.Of(ir.EQ(tmp, a.Addr, b.Addr))
		}
	case ast.Neq:
		if isFloat {
			opCode = p.instructionFNE(tmp, a.Addr, b.Addr)
		} else {
			opCode = p.instructionNE(tmp, a.Addr, b.Addr)
		}
	}

	return ir.NewCodeAttrib(tmp, "", ir.Concat(a.Code, b.Code, opCode))
}

func (p *Pass) visitLogical(ctx *ast.Branch) *ir.CodeAttrib {
	aNode := ctx.Content[0].(*ast.Branch)
	bNode := ctx.Content[1].(*ast.Branch)

	a := p.loadIfIndexed(p.visitExpr(aNode))
	b := p.loadIfIndexed(p.visitExpr(bNode))

	tmp := p.counters.NewTemp()
	var opCode ir.InstructionList
	if ctx.Op == ast.And {
		opCode = ir.Of(ir.AND(tmp, a.Addr, b.Addr))
	} else {
		opCode = ir.Of(ir.OR(tmp, a.Addr, b.Addr))
	}

	return ir.NewCodeAttrib(tmp, "", ir.Concat(a.Code, b.Code, opCode))
}

func (p *Pass) visitUnary(ctx *ast.Branch) *ir.CodeAttrib {
	innerNode := ctx.Content[0].(*ast.Branch)
	innerTy := p.Decor.GetType(innerNode)
	inner := p.loadIfIndexed(p.visitExpr(innerNode))

	tmp := p.counters.NewTemp()
	isFloat := p.Types.IsFloat(innerTy)
	var opCode ir.InstructionList
	switch {
	case ctx.Op == ast.Not:
		opCode = ir.Of(ir.NOT(tmp, inner.Addr))
	case ctx.Op == ast.Minus:
		if isFloat {
			opCode = ir.Of(ir.FNEG(tmp, inner.Addr))
		} else {
			opCode = ir.Of(ir.NEG(tmp, inner.Addr))
		}
	default:
		// Unary plus: a redundant copy, not a negation.
		if isFloat {
			opCode = ir.Of(ir.FLOAD(tmp, inner.Addr))
		} else {
			opCode = ir.Of(ir.ILOAD(tmp, inner.Addr))
		}
	}

	return ir.NewCodeAttrib(tmp, "", ir.Concat(inner.Code, opCode))
}
