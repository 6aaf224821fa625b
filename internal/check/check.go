// Package check performs just enough of a semantic pass to satisfy the
// Codegen Pass's contract: every expression, left-expr, and call node in
// a function body ends up decorated with its type. A real frontend's
// checker also rejects ill-typed programs (mismatched operands, unknown
// identifiers, wrong argument counts); none of that lives here -- this
// pass assumes the tree it is handed is already well-formed and its
// only job is to compute and attach the types codegen reads back out.
package check

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

// Pass owns the collaborators this pass reads (the Symbol Table, by then
// fully populated by the Symbols Pass) and writes (Decorations).
type Pass struct {
	Types   *types.Manager
	Symbols *symtab.Table
	Decor   *decor.Table
}

// NewPass wires a type-decoration pass to its collaborators.
func NewPass(tm *types.Manager, st *symtab.Table, dec *decor.Table) *Pass {
	return &Pass{Types: tm, Symbols: st, Decor: dec}
}

// Run decorates every function body in program.
func (p *Pass) Run(program *ast.Branch) {
	p.Symbols.PushThisScope(p.Decor.GetScope(program))
	for _, child := range program.Content {
		p.visitFunction(child.(*ast.Branch))
	}
	p.Symbols.PopScope()
}

func (p *Pass) visitFunction(ctx *ast.Branch) {
	p.Symbols.PushThisScope(p.Decor.GetScope(ctx))
	p.visitStatements(ctx.BranchAt(3))
	p.Symbols.PopScope()
}

func (p *Pass) visitStatements(ctx *ast.Branch) {
	for _, child := range ctx.Content {
		p.visitStmt(child.(*ast.Branch))
	}
}

func (p *Pass) visitStmt(ctx *ast.Branch) {
	switch ctx.Name {
	case ast.NAssignStmt:
		p.visitLeftExpr(ctx.BranchAt(0))
		p.visitExpr(ctx.BranchAt(1))
	case ast.NIfStmt:
		p.visitExpr(ctx.BranchAt(0))
		p.visitStatements(ctx.BranchAt(1))
		if ctx.Len() == 3 {
			p.visitStatements(ctx.BranchAt(2))
		}
	case ast.NWhileStmt:
		p.visitExpr(ctx.BranchAt(0))
		p.visitStatements(ctx.BranchAt(1))
	case ast.NReturnStmt:
		if ctx.Len() > 0 {
			p.visitExpr(ctx.BranchAt(0))
		}
	case ast.NProcCall:
		p.visitCall(ctx.BranchAt(0))
	case ast.NReadStmt:
		p.visitLeftExpr(ctx.BranchAt(0))
	case ast.NWriteExpr:
		p.visitExpr(ctx.BranchAt(0))
	case ast.NWriteString:
		// A string literal leaf carries no type decoration to attach.
	}
}

// visitLeftExpr decorates an identLeftExpr/arrLeftExpr node (and, for the
// latter, its index expression) and returns the resolved type.
func (p *Pass) visitLeftExpr(ctx *ast.Branch) types.TypeId {
	identBranch := ctx.BranchAt(0)
	nameLeaf := identBranch.LeafAt(0)
	declTy := p.Symbols.GetType(nameLeaf.Text)
	p.Decor.PutType(identBranch, declTy)

	switch ctx.Name {
	case ast.NArrLeftExpr:
		idxNode := ctx.Content[1].(*ast.Branch)
		p.visitExpr(idxNode)
		elemTy := p.Types.GetArrayElem(declTy)
		p.Decor.PutType(ctx, elemTy)
		return elemTy
	default:
		p.Decor.PutType(ctx, declTy)
		return declTy
	}
}

func (p *Pass) visitExpr(ctx *ast.Branch) types.TypeId {
	var t types.TypeId

	switch ctx.Name {
	case ast.NValue:
		t = p.valueType(ctx.LeafAt(0))

	case ast.NExprIdent:
		identBranch := ctx.BranchAt(0)
		nameLeaf := identBranch.LeafAt(0)
		t = p.Symbols.GetType(nameLeaf.Text)
		p.Decor.PutType(identBranch, t)

	case ast.NLeftExpr:
		t = p.visitLeftExpr(ctx.BranchAt(0))

	case ast.NFuncCall:
		t = p.visitCall(ctx.BranchAt(0))

	case ast.NArithmetic:
		ta := p.visitExpr(ctx.Content[0].(*ast.Branch))
		tb := p.visitExpr(ctx.Content[1].(*ast.Branch))
		if ctx.Op == ast.Mod {
			t = p.Types.CreateInteger()
		} else if p.Types.IsFloat(ta) || p.Types.IsFloat(tb) {
			t = p.Types.CreateFloat()
		} else {
			t = p.Types.CreateInteger()
		}

	case ast.NRelational, ast.NLogical:
		p.visitExpr(ctx.Content[0].(*ast.Branch))
		p.visitExpr(ctx.Content[1].(*ast.Branch))
		t = p.Types.CreateBoolean()

	case ast.NUnary:
		t = p.visitExpr(ctx.Content[0].(*ast.Branch))

	case ast.NParenthesis:
		t = p.visitExpr(ctx.Content[0].(*ast.Branch))
	}

	p.Decor.PutType(ctx, t)
	return t
}

func (p *Pass) valueType(leaf *ast.Leaf) types.TypeId {
	switch leaf.Kind {
	case ast.FloatVal:
		return p.Types.CreateFloat()
	case ast.CharVal:
		return p.Types.CreateCharacter()
	case ast.BoolVal:
		return p.Types.CreateBoolean()
	default:
		return p.Types.CreateInteger()
	}
}

func (p *Pass) visitCall(ctx *ast.Branch) types.TypeId {
	nameLeaf := ctx.LeafAt(0)
	funcTy := p.Symbols.GetType(nameLeaf.Text)

	for i := 1; i < ctx.Len(); i++ {
		p.visitExpr(ctx.BranchAt(i))
	}

	retTy := p.Types.GetFuncReturn(funcTy)
	p.Decor.PutType(ctx, retTy)
	return retTy
}
