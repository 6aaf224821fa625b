package symbols

import (
	"strconv"
	"testing"

	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/decor"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

func leaf(kind int, text string) *ast.Leaf {
	return &ast.Leaf{Kind: kind, Text: text, Line: 1, Col: len(text)}
}

func idLeaf(name string) *ast.Leaf {
	return leaf(ast.ID, name)
}

func basicType(kw int) *ast.Branch {
	return &ast.Branch{Name: ast.NBasicType, Content: []ast.Node{leaf(kw, "")}}
}

func typeNode(basic *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NType, Content: []ast.Node{basic}}
}

func arrayTypeNode(length int, basic *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NType, Content: []ast.Node{
		&ast.Branch{Name: ast.NArrayType, Content: []ast.Node{leaf(ast.IntVal, strconv.Itoa(length)), basic}},
	}}
}

func paramDecl(pairs ...ast.Node) *ast.Branch {
	return &ast.Branch{Name: ast.NParameterDecl, Content: pairs}
}

func varDecl(names []string, ty *ast.Branch) *ast.Branch {
	content := make([]ast.Node, 0, len(names)+1)
	for _, n := range names {
		content = append(content, idLeaf(n))
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

func emptyStatements() *ast.Branch {
	return &ast.Branch{Name: ast.NStatements, Content: []ast.Node{}}
}

func function(name string, params, decls, stmts *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NFunction, Content: []ast.Node{idLeaf(name), params, decls, stmts}}
}

func functionWithReturn(name string, params, decls, stmts, retTy *ast.Branch) *ast.Branch {
	return &ast.Branch{Name: ast.NFunction, Content: []ast.Node{idLeaf(name), params, decls, stmts, retTy}}
}

func program(fns ...*ast.Branch) *ast.Branch {
	content := make([]ast.Node, len(fns))
	for i, f := range fns {
		content[i] = f
	}
	return &ast.Branch{Name: ast.NProgram, Content: content}
}

func TestFunctionParamsAndLocalsGetSeparateScope(t *testing.T) {
	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	fn := function(
		"f",
		paramDecl(idLeaf("x"), typeNode(basicType(ast.KwInt))),
		declarations(varDecl([]string{"y"}, typeNode(basicType(ast.KwFloat)))),
		emptyStatements(),
	)
	prog := program(fn)

	NewPass(tm, st, dec).Run(prog)

	sc := dec.GetScope(fn)
	st.PushThisScope(sc)
	defer st.PopScope()

	if st.GetType("x") != tm.CreateInteger() {
		t.Fatal("expected parameter `x` to be bound as int in the function's scope")
	}
	if st.GetType("y") != tm.CreateFloat() {
		t.Fatal("expected local `y` to be bound as float in the function's scope")
	}
}

func TestDuplicateFunctionIsRejectedButStillVisited(t *testing.T) {
	logging.Initialize("silent")

	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	first := function("f", paramDecl(), declarations(), emptyStatements())
	second := function("f", paramDecl(), declarations(varDecl([]string{"z"}, typeNode(basicType(ast.KwInt)))), emptyStatements())
	prog := program(first, second)

	NewPass(tm, st, dec).Run(prog)

	// Only the first `f` should have been bound globally.
	st.PushThisScope(dec.GetScope(prog))
	if !st.FindInCurrentScope("f") {
		t.Fatal("expected `f` to be declared once in global scope")
	}
	st.PopScope()

	// The second (duplicate) function's own scope must still carry its
	// local's decoration, even though the declaration itself was rejected.
	secondScope := dec.GetScope(second)
	st.PushThisScope(secondScope)
	if st.GetType("z") != tm.CreateInteger() {
		t.Fatal("expected the duplicate function's local to still be decorated")
	}
	st.PopScope()
}

func TestArrayTypeDecoratesLengthAndElement(t *testing.T) {
	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	fn := function(
		"f",
		paramDecl(),
		declarations(varDecl([]string{"xs"}, arrayTypeNode(5, basicType(ast.KwInt)))),
		emptyStatements(),
	)
	prog := program(fn)

	NewPass(tm, st, dec).Run(prog)

	st.PushThisScope(dec.GetScope(fn))
	defer st.PopScope()

	ty := st.GetType("xs")
	if !tm.IsArray(ty) {
		t.Fatal("expected `xs` to be bound as an array type")
	}
	if tm.GetArrayLength(ty) != 5 {
		t.Fatalf("GetArrayLength = %d, want 5", tm.GetArrayLength(ty))
	}
	if tm.GetArrayElem(ty) != tm.CreateInteger() {
		t.Fatal("expected array element type to be int")
	}
}

func TestFunctionTypeCapturesParamsAndDeclaredReturn(t *testing.T) {
	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	fn := functionWithReturn(
		"add",
		paramDecl(idLeaf("a"), typeNode(basicType(ast.KwInt)), idLeaf("b"), typeNode(basicType(ast.KwInt))),
		declarations(),
		emptyStatements(),
		typeNode(basicType(ast.KwInt)),
	)
	prog := program(fn)

	NewPass(tm, st, dec).Run(prog)

	st.PushThisScope(dec.GetScope(prog))
	defer st.PopScope()

	funcTy := st.GetType("add")
	if tm.GetFuncParamCount(funcTy) != 2 {
		t.Fatalf("GetFuncParamCount = %d, want 2", tm.GetFuncParamCount(funcTy))
	}
	if tm.GetFuncReturn(funcTy) != tm.CreateInteger() {
		t.Fatal("expected declared return type to be int")
	}
}

func TestFunctionWithoutReturnTypeIsVoid(t *testing.T) {
	tm := types.NewManager()
	st := symtab.New()
	dec := decor.New()

	fn := function("proc", paramDecl(), declarations(), emptyStatements())
	prog := program(fn)

	NewPass(tm, st, dec).Run(prog)

	st.PushThisScope(dec.GetScope(prog))
	defer st.PopScope()

	if !tm.IsVoid(tm.GetFuncReturn(st.GetType("proc"))) {
		t.Fatal("expected a function with no declared return type node to be void")
	}
}
