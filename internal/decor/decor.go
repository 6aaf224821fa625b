// Package decor implements the tree-decorations side-table: a map from
// parse-tree nodes to the scope and type information the Symbols and
// Codegen passes attach to them. It is append-only for the lifetime of a
// single compilation.
package decor

import (
	"github.com/hegalit/aslc/internal/ast"
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/symtab"
	"github.com/hegalit/aslc/internal/types"
)

// Table is the decorations side-table for one compilation.
type Table struct {
	scopes map[ast.Node]symtab.ScopeId
	tys    map[ast.Node]types.TypeId
}

// New creates an empty decorations table.
func New() *Table {
	return &Table{
		scopes: make(map[ast.Node]symtab.ScopeId),
		tys:    make(map[ast.Node]types.TypeId),
	}
}

// PutScope attaches a scope id to a node.
func (t *Table) PutScope(n ast.Node, sc symtab.ScopeId) {
	t.scopes[n] = sc
}

// GetScope reads the scope id attached to a node. Missing decorations are
// a programming fault: the passes that read decorations are only ever
// invoked after the pass that must have written them.
func (t *Table) GetScope(n ast.Node) symtab.ScopeId {
	sc, ok := t.scopes[n]
	if !ok {
		logging.LogFatal("read of undecorated node: missing scope")
	}
	return sc
}

// PutType attaches a type id to a node.
func (t *Table) PutType(n ast.Node, ty types.TypeId) {
	t.tys[n] = ty
}

// GetType reads the type id attached to a node.
func (t *Table) GetType(n ast.Node) types.TypeId {
	ty, ok := t.tys[n]
	if !ok {
		logging.LogFatal("read of undecorated node: missing type")
	}
	return ty
}
