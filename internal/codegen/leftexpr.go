package codegen

import (
	"strconv"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/ir"
)

// visitLeftExprTarget lowers an identLeftExpr/arrLeftExpr node to the
// address (and, for an indexed element, offset) an assignment or read
// should store into. A bare identifier carries no Offs; an indexed
// element's Offs holds the byte-like cell offset to add to its base.
func (p *Pass) visitLeftExprTarget(ctx *ast.Branch) *ir.CodeAttrib {
	identBranch := ctx.BranchAt(0)
	name := identBranch.LeafAt(0).Text

	if ctx.Name != ast.NArrLeftExpr {
		return ir.NewCodeAttrib(name, "", ir.Empty)
	}

	arrTy := p.Decor.GetType(identBranch)
	elemTy := p.Types.GetArrayElem(arrTy)
	elemSize := p.Types.SizeOf(elemTy)

	base, baseCode := p.arrayAddr(name, arrTy)

	idxNode := ctx.Content[1].(*ast.Branch)
	idx := p.loadIfIndexed(p.visitExpr(idxNode))

	sizeTmp := p.counters.NewTemp()
	offsTmp := p.counters.NewTemp()
	code := ir.Concat(
		baseCode, idx.Code,
		ir.Of(ir.ILOAD(sizeTmp, strconv.Itoa(elemSize))),
		ir.Of(ir.MUL(offsTmp, idx.Addr, sizeTmp)),
	)
	return ir.NewCodeAttrib(base, offsTmp, code)
}
