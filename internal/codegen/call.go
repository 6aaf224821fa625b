package codegen

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/ir"
)

// visitCall lowers a call node: a bare reserved result slot is pushed
// first when the callee is non-void, then each argument (coerced to its
// parameter's type; a local array is referenced to its address, while a
// parameter array is pushed as-is, already holding the address its own
// caller gave it), then CALL, then one bare POP per pushed argument
// (discarded), then -- for a non-void callee -- a final POP recovering
// the result into a fresh temp. The returned CodeAttrib's Addr is empty
// for a void call; callers in statement position simply never read it.
func (p *Pass) visitCall(ctx *ast.Branch) *ir.CodeAttrib {
	funcName := ctx.LeafAt(0).Text
	funcTy := p.Symbols.GetType(funcName)
	retTy := p.Types.GetFuncReturn(funcTy)

	code := ir.Empty
	isVoid := p.Types.IsVoid(retTy)
	if !isVoid {
		code = ir.Concat(code, ir.Of(ir.PUSH()))
	}

	nArgs := ctx.Len() - 1
	for i := 0; i < nArgs; i++ {
		argNode := ctx.BranchAt(i + 1)
		argTy := p.Decor.GetType(argNode)
		paramTy := p.Types.GetFuncParam(funcTy, i)

		arg := p.loadIfIndexed(p.visitExpr(argNode))
		arg = p.coerceType(arg, argTy, paramTy)

		refAddr, refCode := p.reference(arg.Addr, paramTy)
		code = ir.Concat(code, arg.Code, refCode, ir.Of(ir.PUSH(refAddr)))
	}

	code = ir.Concat(code, ir.Of(ir.CALL(funcName)))

	for i := 0; i < nArgs; i++ {
		code = ir.Concat(code, ir.Of(ir.POP()))
	}

	if isVoid {
		return ir.NewCodeAttrib("", "", code)
	}

	final := p.counters.NewTemp()
	code = ir.Concat(code, ir.Of(ir.POP(final)))
	return ir.NewCodeAttrib(final, "", code)
}
