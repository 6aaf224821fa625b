package check

import (
	"testing"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/symbols"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

func leaf(kind int, text string) *ast.Leaf {
	return &ast.Leaf{Kind: kind, Text: text, Line: 1, Col: len(text)}
}

func identBranch(name string) *ast.Branch {
	return &ast.Branch{Name: ast.NIdent, Content: []ast.Node{leaf(ast.ID, name)}}
}

func exprIdent(name string) *ast.Branch {
	return &ast.Branch{Name: ast.NExprIdent, Content: []ast.Node{identBranch(name)}}
}

func value(kind int, text string) *ast.Branch {
	return &ast.Branch{Name: ast.NValue, Content: []ast.Node{leaf(kind, text)}}
}

func arithmetic(op int, a, b *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NArithmetic, Op: op, Content: []ast.Node{a, b}}
}

func relational(op int, a, b *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NRelational, Op: op, Content: []ast.Node{a, b}}
}

func identLeftExpr(name string) *ast.Branch {
	return &ast.Branch{Name: ast.NIdentLeftExpr, Content: []ast.Node{identBranch(name)}}
}

func arrLeftExpr(name string, idx *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NArrLeftExpr, Content: []ast.Node{identBranch(name), idx}}
}

func assignStmt(target, val *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NAssignStmt, Content: []ast.Node{target, val}}
}

func statements(stmts ...*ast.Branch) *ast.Branch {
	content := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		content[i] = s
	}
	return &ast.Branch{Name: ast.NStatements, Content: content}
}

func basicType(kw int) *ast.Branch {
	return &ast.Branch{Name: ast.NBasicType, Content: []ast.Node{leaf(kw, "")}}
}

func typeNode(basic *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NType, Content: []ast.Node{basic}}
}

func varDecl(names []string, ty *ast.Branch) *ast.Branch {
	content := make([]ast.Node, 0, len(names)+1)
	for _, n := range names {
		content = append(content, leaf(ast.ID, n))
	}
	content = append(content, ty)
	return &ast.Branch{Name: ast.NVariableDecl, Content: content}
}

func declarations(decls ...*ast.Branch) *ast.Branch {
	content := make([]ast.Node, len(decls))
	for i, d := range decls {
		content[i] = d
	}
	return &ast.Branch{Name: ast.NDeclarations, Content: content}
}

func paramDecl(pairs ...ast.Node) *ast.Branch {
	return &ast.Branch{Name: ast.NParameterDecl, Content: pairs}
}

func function(name string, params, decls, stmts *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NFunction, Content: []ast.Node{leaf(ast.ID, name), params, decls, stmts}}
}

func program(fns ...*ast.Branch) *ast.Branch {
	content := make([]ast.Node, len(fns))
	for i, f := range fns {
		content[i] = f
	}
	return &ast.Branch{Name: ast.NProgram, Content: content}
}

// setup runs the Symbols Pass first so the Symbol Table is populated the
// way the type-decoration pass expects to find it.
func setup(t *testing.T, prog *ast.Branch) (*types.Manager, *symtab.Table, *decor.Table) {
	t.Helper()
	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()
	symbols.NewPass(tm, st, dec).Run(prog)
	return tm, st, dec
}

func TestArithmeticNodeIsDecoratedFloatWhenEitherOperandIsFloat(t *testing.T) {
	decls := declarations(varDecl([]string{"x"}, typeNode(basicType(ast.KwFloat))))
	addNode := arithmetic(ast.Plus, value(ast.IntVal, "1"), value(ast.FloatVal, "2.0"))
	stmts := statements(assignStmt(identLeftExpr("x"), addNode))
	fn := function("f", paramDecl(), decls, stmts)
	prog := program(fn)

	tm, st, dec := setup(t, prog)
	NewPass(tm, st, dec).Run(prog)

	if dec.GetType(addNode) != tm.CreateFloat() {
		t.Fatal("expected an int+float arithmetic node to be decorated float")
	}
}

func TestRelationalNodeIsDecoratedBoolean(t *testing.T) {
	decls := declarations(varDecl([]string{"a", "b"}, typeNode(basicType(ast.KwInt))))
	cond := relational(ast.Lt, exprIdent("a"), exprIdent("b"))
	stmts := statements() // cond is referenced directly below, not through a stmt
	fn := function("f", paramDecl(), decls, stmts)
	prog := program(fn)

	tm, st, dec := setup(t, prog)
	p := NewPass(tm, st, dec)

	// Re-enter the function's scope manually and visit the lone expr, the
	// way visitStmt does for an if or while condition.
	st.PushThisScope(dec.GetScope(fn))
	p.visitExpr(cond)
	st.PopScope()

	if dec.GetType(cond) != tm.CreateBoolean() {
		t.Fatal("expected a relational node to be decorated boolean")
	}
}

func TestArrayElementLeftExprResolvesToElementType(t *testing.T) {
	arrTy := &ast.Branch{Name: ast.NType, Content: []ast.Node{
		&ast.Branch{Name: ast.NArrayType, Content: []ast.Node{leaf(ast.IntVal, "3"), basicType(ast.KwInt)}},
	}}
	decls := declarations(varDecl([]string{"xs"}, arrTy))
	target := arrLeftExpr("xs", value(ast.IntVal, "0"))
	stmts := statements(assignStmt(target, value(ast.IntVal, "7")))
	fn := function("f", paramDecl(), decls, stmts)
	prog := program(fn)

	tm, st, dec := setup(t, prog)
	NewPass(tm, st, dec).Run(prog)

	if dec.GetType(target) != tm.CreateInteger() {
		t.Fatal("expected `xs[0]` to resolve to the array's int element type")
	}
}

func TestModAlwaysDecoratesInteger(t *testing.T) {
	decls := declarations(varDecl([]string{"x"}, typeNode(basicType(ast.KwFloat))))
	modNode := arithmetic(ast.Mod, value(ast.IntVal, "7"), value(ast.IntVal, "2"))
	stmts := statements(assignStmt(identLeftExpr("x"), modNode))
	fn := function("f", paramDecl(), decls, stmts)
	prog := program(fn)

	tm, st, dec := setup(t, prog)
	NewPass(tm, st, dec).Run(prog)

	if dec.GetType(modNode) != tm.CreateInteger() {
		t.Fatal("expected a MOD node to always decorate as int, regardless of target type")
	}
}
