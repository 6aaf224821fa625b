// Package symbols implements the Symbols Pass: the first tree walk,
// which builds the scoped symbol table and attaches scope/type
// decorations. The only Decorations it reads are the type decorations it
// has itself just written on type-syntax nodes; the type-decoration pass
// (internal/check) and the Codegen Pass are the other readers.
package symbols

import (
	"strconv"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/errs"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

// Pass owns the collaborators the Symbols Pass reads and writes: the
// Types Manager (read-only queries, type construction), the Symbol
// Table (mutated as scopes and bindings are declared), and the
// Decorations table (written by this pass, and read back only for the
// type nodes it has already decorated).
type Pass struct {
	Types   *types.Manager
	Symbols *symtab.Table
	Decor   *decor.Table
}

// NewPass wires a Symbols Pass to its collaborators.
func NewPass(tm *types.Manager, st *symtab.Table, dec *decor.Table) *Pass {
	return &Pass{Types: tm, Symbols: st, Decor: dec}
}

// Run walks a `program` node, declaring every function (and, per
// function, its parameters and locals) along the way.
func (p *Pass) Run(program *ast.Branch) {
	p.visitProgram(program)
}

func (p *Pass) visitProgram(ctx *ast.Branch) {
	sc := p.Symbols.PushNewScope(symtab.GlobalScopeName)
	p.Decor.PutScope(ctx, sc)
	for _, child := range ctx.Content {
		p.visitFunction(child.(*ast.Branch))
	}
	p.Symbols.PopScope()
}

// visitFunction declares a function, in its enclosing (global) scope,
// and -- regardless of whether the declaration was rejected as a
// duplicate -- visits its parameters and locals in a fresh scope of
// their own, so decorations downstream of the duplicate are still
// complete.
func (p *Pass) visitFunction(ctx *ast.Branch) {
	nameLeaf := ctx.LeafAt(0)
	funcName := nameLeaf.Text

	redefined := p.Symbols.FindInCurrentScope(funcName)
	if redefined {
		errs.DeclaredIdent(nameLeaf)
	}

	sc := p.Symbols.PushNewScope(funcName)
	p.Decor.PutScope(ctx, sc)

	paramDecl := ctx.BranchAt(1)
	p.visitParameterDecl(paramDecl)

	decls := ctx.BranchAt(2)
	p.visitDeclarations(decls)

	p.Symbols.PopScope()

	retType := p.Types.CreateVoid()
	if ctx.Len() == 5 {
		typeNode := ctx.BranchAt(4)
		p.visitType(typeNode)
		retType = p.Decor.GetType(typeNode)
	}

	nParams := paramDecl.Len() / 2
	paramTys := make([]types.TypeId, nParams)
	for i := 0; i < nParams; i++ {
		typeNode := paramDecl.BranchAt(2*i + 1)
		paramTys[i] = p.Decor.GetType(typeNode)
	}

	funcTy := p.Types.CreateFunction(paramTys, retType)
	p.Decor.PutType(ctx, funcTy)

	if !redefined {
		p.Symbols.AddFunction(funcName, funcTy)
	}
}

// visitParameterDecl walks the flattened (id, type) pairs of a
// `parameter_decl` node in declaration order.
func (p *Pass) visitParameterDecl(ctx *ast.Branch) {
	n := ctx.Len() / 2
	for i := 0; i < n; i++ {
		idLeaf := ctx.LeafAt(2 * i)
		typeNode := ctx.BranchAt(2*i + 1)
		p.visitType(typeNode)
		paramType := p.Decor.GetType(typeNode)

		if p.Symbols.FindInCurrentScope(idLeaf.Text) {
			errs.DeclaredIdent(idLeaf)
		} else {
			p.Symbols.AddParameter(idLeaf.Text, paramType)
		}
	}
}

func (p *Pass) visitDeclarations(ctx *ast.Branch) {
	for _, child := range ctx.Content {
		p.visitVariableDecl(child.(*ast.Branch))
	}
}

// visitVariableDecl walks a `variable_decl` node: N id leaves sharing one
// trailing type node.
func (p *Pass) visitVariableDecl(ctx *ast.Branch) {
	nIds := ctx.Len() - 1
	typeNode := ctx.BranchAt(nIds)
	p.visitType(typeNode)
	varType := p.Decor.GetType(typeNode)

	for i := 0; i < nIds; i++ {
		idLeaf := ctx.LeafAt(i)
		if p.Symbols.FindInCurrentScope(idLeaf.Text) {
			errs.DeclaredIdent(idLeaf)
		} else {
			p.Symbols.AddLocal(idLeaf.Text, varType)
		}
	}
}

// visitType dispatches to array_type or basic_type and forwards the
// resulting TypeId onto the `type` node itself.
func (p *Pass) visitType(ctx *ast.Branch) {
	child := ctx.Content[0].(*ast.Branch)

	var t types.TypeId
	if child.Name == ast.NArrayType {
		p.visitArrayType(child)
		t = p.Decor.GetType(child)
	} else {
		p.visitBasicType(child)
		t = p.Decor.GetType(child)
	}
	p.Decor.PutType(ctx, t)
}

func (p *Pass) visitBasicType(ctx *ast.Branch) {
	leaf := ctx.LeafAt(0)

	var t types.TypeId
	switch leaf.Kind {
	case ast.KwBool:
		t = p.Types.CreateBoolean()
	case ast.KwFloat:
		t = p.Types.CreateFloat()
	case ast.KwChar:
		t = p.Types.CreateCharacter()
	default:
		t = p.Types.CreateInteger()
	}
	p.Decor.PutType(ctx, t)
}

// visitArrayType requires the length leaf to be a positive integer
// literal and the element to be primitive; the grammar only
// ever admits a primitive basic_type here, so the latter holds by
// construction rather than by a runtime check in this pass.
func (p *Pass) visitArrayType(ctx *ast.Branch) {
	lenLeaf := ctx.LeafAt(0)
	n, err := strconv.Atoi(lenLeaf.Text)
	if err != nil {
		logging.LogFatal("array length `" + lenLeaf.Text + "` is not an integer literal")
	}

	basic := ctx.BranchAt(1)
	p.visitBasicType(basic)
	elem := p.Decor.GetType(basic)

	arr := p.Types.CreateArray(n, elem)
	p.Decor.PutType(ctx, arr)
}
