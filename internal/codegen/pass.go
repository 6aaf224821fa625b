// Package codegen implements the Codegen Pass: the second tree walk,
// which lowers a decorated parse tree to the three-address instruction
// stream the abstract machine executes. It reads the Symbol Table and
// Decorations the Symbols Pass (and the type-decoration pass ahead of
// it) produced; it writes nothing back to either.
package codegen

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/common"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/ir"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

// Pass owns the collaborators the Codegen Pass reads, plus the program
// it assembles and the per-function counters reset at every function
// entry.
type Pass struct {
	Types   *types.Manager
	Symbols *symtab.Table
	Decor   *decor.Table

	program  *ir.Program
	counters *ir.Counters

	// currentReturnType is the enclosing function's return type, set at
	// the top of visitFunction; visitReturnStmt needs it to coerce.
	currentReturnType types.TypeId
}

// NewPass wires a Codegen Pass to its collaborators.
func NewPass(tm *types.Manager, st *symtab.Table, dec *decor.Table) *Pass {
	return &Pass{Types: tm, Symbols: st, Decor: dec, program: ir.NewProgram()}
}

// Run lowers every function in program and returns the assembled
// program.
func (p *Pass) Run(program *ast.Branch) *ir.Program {
	p.Symbols.PushThisScope(p.Decor.GetScope(program))
	for _, child := range program.Content {
		p.visitFunction(child.(*ast.Branch))
	}
	p.Symbols.PopScope()
	return p.program
}

// visitFunction re-enters the function's scope (by id, matching the
// Symbols Pass's earlier visit exactly) and assembles a Subroutine:
// the implicit result parameter first (if the function is non-void),
// then declared parameters and locals in declaration order, then the
// lowered body with a trailing RETURN.
func (p *Pass) visitFunction(ctx *ast.Branch) {
	name := ctx.LeafAt(0).Text
	sc := p.Decor.GetScope(ctx)
	p.Symbols.PushThisScope(sc)
	p.counters = &ir.Counters{}

	sub := ir.NewSubroutine(name)

	funcTy := p.Decor.GetType(ctx)
	retTy := p.Types.GetFuncReturn(funcTy)
	p.currentReturnType = retTy
	if !p.Types.IsVoid(retTy) {
		sub.AddParam(common.ResultAddress, p.Types.ToStringBasic(retTy), p.Types.IsArray(retTy))
	}

	for _, sym := range p.Symbols.Bindings(sc) {
		switch sym.Kind {
		case symtab.Parameter:
			sub.AddParam(sym.Name, p.Types.ToStringBasic(sym.Type), p.Types.IsArray(sym.Type))
		case symtab.LocalVar:
			sub.AddLocal(sym.Name, p.Types.ToStringBasic(sym.Type), p.Types.SizeOf(sym.Type))
		}
	}

	body := p.visitStatements(ctx.BranchAt(3))
	body = ir.Concat(body, ir.Of(ir.RETURN()))
	sub.SetBody(body)

	p.Symbols.PopScope()
	p.program.AddSubroutine(sub)
}
