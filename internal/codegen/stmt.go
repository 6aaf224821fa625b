package codegen

import (
	"strconv"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/common"
	"github.com/hegalit/aslc/internal/ir"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/types"
)

func (p *Pass) visitStatements(ctx *ast.Branch) ir.InstructionList {
	code := ir.Empty
	for _, child := range ctx.Content {
		code = ir.Concat(code, p.visitStmt(child.(*ast.Branch)))
	}
	return code
}

func (p *Pass) visitStmt(ctx *ast.Branch) ir.InstructionList {
	switch ctx.Name {
	case ast.NAssignStmt:
		return p.visitAssignStmt(ctx)
	case ast.NIfStmt:
		return p.visitIfStmt(ctx)
	case ast.NWhileStmt:
		return p.visitWhileStmt(ctx)
	case ast.NReturnStmt:
		return p.visitReturnStmt(ctx)
	case ast.NProcCall:
		return p.visitCall(ctx.BranchAt(0)).Code
	case ast.NReadStmt:
		return p.visitReadStmt(ctx)
	case ast.NWriteExpr:
		return p.visitWriteExprStmt(ctx)
	case ast.NWriteString:
		return p.visitWriteStringStmt(ctx)
	default:
		logging.LogFatal("codegen: unrecognized statement node " + ctx.Name)
		return nil
	}
}

func (p *Pass) visitAssignStmt(ctx *ast.Branch) ir.InstructionList {
	left := ctx.BranchAt(0)
	right := ctx.Content[1].(*ast.Branch)
	leftTy := p.Decor.GetType(left)

	if p.Types.IsArray(leftTy) {
		return p.visitArrayAssign(left, right, leftTy)
	}

	lhs := p.visitLeftExprTarget(left)
	rhsTy := p.Decor.GetType(right)
	rhs := p.loadIfIndexed(p.visitExpr(right))
	rhs = p.coerceType(rhs, rhsTy, leftTy)

	code := ir.Concat(lhs.Code, rhs.Code)
	if lhs.Offs != "" {
		code = ir.Concat(code, ir.Of(ir.XLOAD(lhs.Addr, lhs.Offs, rhs.Addr)))
	} else {
		code = ir.Concat(code, ir.Of(ir.LOAD(lhs.Addr, rhs.Addr)))
	}
	return code
}

// visitArrayAssign lowers a whole-array assignment (both sides bare
// array identifiers, guaranteed equal in shape before this is called)
// to an element-copy loop: a cell-offset iterator stepping by the
// element's size until it reaches the array's total cell count.
func (p *Pass) visitArrayAssign(left, right *ast.Branch, arrTy types.TypeId) ir.InstructionList {
	lhsName := left.BranchAt(0).LeafAt(0).Text
	rhsName := right.BranchAt(0).LeafAt(0).Text

	lhsAddr, lhsCode := p.arrayAddr(lhsName, arrTy)
	rhsAddr, rhsCode := p.arrayAddr(rhsName, arrTy)

	iter := p.counters.NewTemp()
	elemSize := p.counters.NewTemp()
	totalSize := p.counters.NewTemp()
	cond := p.counters.NewTemp()
	cell := p.counters.NewTemp()

	elemSizeVal := strconv.Itoa(p.Types.SizeOf(p.Types.GetArrayElem(arrTy)))
	totalSizeVal := strconv.Itoa(p.Types.SizeOf(arrTy))

	condAttr := ir.NewCodeAttrib(cond, "", ir.Of(ir.LT(cond, iter, totalSize)))
	body := ir.Concat(
		ir.Of(ir.LOADX(cell, rhsAddr, iter)),
		ir.Of(ir.XLOAD(lhsAddr, iter, cell)),
		ir.Of(ir.ADD(iter, iter, elemSize)),
	)

	return ir.Concat(
		lhsCode, rhsCode,
		ir.Of(ir.ILOAD(iter, "0")),
		ir.Of(ir.ILOAD(elemSize, elemSizeVal)),
		ir.Of(ir.ILOAD(totalSize, totalSizeVal)),
		p.instructionLOOP(condAttr, body),
	)
}

func (p *Pass) visitIfStmt(ctx *ast.Branch) ir.InstructionList {
	cond := p.loadIfIndexed(p.visitExpr(ctx.BranchAt(0)))
	thenCode := p.visitStatements(ctx.BranchAt(1))
	suffix := p.counters.NewLabelIf()

	if ctx.Len() == 3 {
		elseCode := p.visitStatements(ctx.BranchAt(2))
		elseLabel := "else" + suffix
		endLabel := "endif" + suffix
		return ir.Concat(
			cond.Code,
			ir.Of(ir.FJUMP(cond.Addr, elseLabel)),
			thenCode,
			ir.Of(ir.UJUMP(endLabel)),
			ir.Of(ir.LABEL(elseLabel)),
			elseCode,
			ir.Of(ir.LABEL(endLabel)),
		)
	}

	endLabel := "endif" + suffix
	return ir.Concat(
		cond.Code,
		ir.Of(ir.FJUMP(cond.Addr, endLabel)),
		thenCode,
		ir.Of(ir.LABEL(endLabel)),
	)
}

func (p *Pass) visitWhileStmt(ctx *ast.Branch) ir.InstructionList {
	cond := p.loadIfIndexed(p.visitExpr(ctx.BranchAt(0)))
	body := p.visitStatements(ctx.BranchAt(1))
	return p.instructionLOOP(cond, body)
}

func (p *Pass) visitReturnStmt(ctx *ast.Branch) ir.InstructionList {
	if ctx.Len() == 0 {
		return ir.Of(ir.RETURN())
	}
	exprNode := ctx.BranchAt(0)
	exprTy := p.Decor.GetType(exprNode)

	attr := p.loadIfIndexed(p.visitExpr(exprNode))
	attr = p.coerceType(attr, exprTy, p.currentReturnType)

	return ir.Concat(attr.Code, ir.Of(ir.LOAD(common.ResultAddress, attr.Addr)), ir.Of(ir.RETURN()))
}

func (p *Pass) visitReadStmt(ctx *ast.Branch) ir.InstructionList {
	left := ctx.BranchAt(0)
	ty := p.Decor.GetType(left)
	lhs := p.visitLeftExprTarget(left)

	tmp := p.counters.NewTemp()
	var readInstr ir.Instruction
	switch {
	case p.Types.IsFloat(ty):
		readInstr = ir.READF(tmp)
	case p.Types.IsCharacter(ty):
		readInstr = ir.READC(tmp)
	default:
		readInstr = ir.READI(tmp)
	}

	code := ir.Concat(lhs.Code, ir.Of(readInstr))
	if lhs.Offs != "" {
		code = ir.Concat(code, ir.Of(ir.XLOAD(lhs.Addr, lhs.Offs, tmp)))
	} else {
		code = ir.Concat(code, ir.Of(ir.LOAD(lhs.Addr, tmp)))
	}
	return code
}

func (p *Pass) visitWriteExprStmt(ctx *ast.Branch) ir.InstructionList {
	exprNode := ctx.BranchAt(0)
	ty := p.Decor.GetType(exprNode)
	attr := p.loadIfIndexed(p.visitExpr(exprNode))

	var writeInstr ir.Instruction
	switch {
	case p.Types.IsFloat(ty):
		writeInstr = ir.WRITEF(attr.Addr)
	case p.Types.IsCharacter(ty):
		writeInstr = ir.WRITEC(attr.Addr)
	default:
		writeInstr = ir.WRITEI(attr.Addr)
	}

	return ir.Concat(attr.Code, ir.Of(writeInstr))
}

func (p *Pass) visitWriteStringStmt(ctx *ast.Branch) ir.InstructionList {
	leaf := ctx.LeafAt(0)
	return ir.Of(ir.WRITES(leaf.Text))
}
