// Package symtab implements the Symbol Table: a stack of named scopes
// with a distinguished Global scope at the bottom and one Function scope
// per declared subroutine.
package symtab

import (
	"github.com/hegalit/aslc/internal/logging"
	"github.com/hegalit/aslc/internal/types"
)

// ScopeId is an opaque handle to a scope, stable across the Symbols and
// Codegen passes -- a Function scope is entered once by creation (during
// the Symbols Pass) and again by id (during the Codegen Pass), and must
// yield the identical set of bindings both times.
type ScopeId int

// GlobalScopeName is the name given to the bottommost scope.
const GlobalScopeName = "$global"

// Kind enumerates what a Symbol was declared as.
type Kind int

const (
	LocalVar Kind = iota
	Parameter
	Function
)

// Symbol is a single named binding.
type Symbol struct {
	Name string
	Kind Kind
	Type types.TypeId
}

type scope struct {
	id       ScopeId
	name     string
	order    []string
	bindings map[string]*Symbol
}

func newScope(id ScopeId, name string) *scope {
	return &scope{id: id, name: name, bindings: make(map[string]*Symbol)}
}

// Table is the stack of scopes for one compilation.
type Table struct {
	byId  map[ScopeId]*scope
	stack []*scope
	next  ScopeId
}

// New creates an empty Symbol Table. The caller is expected to push the
// Global scope first (the Program node of the Symbols Pass does this).
func New() *Table {
	return &Table{byId: make(map[ScopeId]*scope)}
}

// PushNewScope creates a fresh scope named `name`, pushes it, and returns
// its id for later re-entry during the Codegen Pass.
func (t *Table) PushNewScope(name string) ScopeId {
	id := t.next
	t.next++
	sc := newScope(id, name)
	t.byId[id] = sc
	t.stack = append(t.stack, sc)
	return id
}

// PushThisScope re-enters a previously created scope by id.
func (t *Table) PushThisScope(id ScopeId) {
	sc, ok := t.byId[id]
	if !ok {
		logging.LogFatal("pushThisScope: unknown scope id")
	}
	t.stack = append(t.stack, sc)
}

// PopScope pops the innermost scope. Balanced with every push on all exit
// paths is the caller's responsibility: visitors should pop in
// a defer immediately after pushing.
func (t *Table) PopScope() {
	if len(t.stack) == 0 {
		logging.LogFatal("popScope: scope stack is empty")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

func (t *Table) current() *scope {
	if len(t.stack) == 0 {
		logging.LogFatal("no scope is active")
	}
	return t.stack[len(t.stack)-1]
}

// FindInCurrentScope reports whether `name` is bound in the innermost
// scope only.
func (t *Table) FindInCurrentScope(name string) bool {
	_, ok := t.current().bindings[name]
	return ok
}

// FindThroughStack resolves a name innermost-scope-first: a parameter or
// local in a function scope shadows a global of the same name.
func (t *Table) FindThroughStack(name string) (*Symbol, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if sym, ok := t.stack[i].bindings[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

func (t *Table) add(name string, kind Kind, ty types.TypeId) bool {
	sc := t.current()
	if _, ok := sc.bindings[name]; ok {
		return false
	}
	sc.bindings[name] = &Symbol{Name: name, Kind: kind, Type: ty}
	sc.order = append(sc.order, name)
	return true
}

// AddLocal declares a local variable in the current scope. Returns false
// (without mutating anything) if the name is already bound there.
func (t *Table) AddLocal(name string, ty types.TypeId) bool {
	return t.add(name, LocalVar, ty)
}

// AddParameter declares a parameter in the current (function) scope.
func (t *Table) AddParameter(name string, ty types.TypeId) bool {
	return t.add(name, Parameter, ty)
}

// AddFunction declares a function in whatever scope is current at the
// call site -- the Symbols Pass always calls this after popping back out
// of the function's own scope, so in practice this lands in Global.
func (t *Table) AddFunction(name string, ty types.TypeId) bool {
	return t.add(name, Function, ty)
}

// GetType resolves a name through the stack and returns its type. Called
// only with names already known (by construction) to be bound.
func (t *Table) GetType(name string) types.TypeId {
	sym, ok := t.FindThroughStack(name)
	if !ok {
		logging.LogFatal("getType: unbound symbol " + name)
	}
	return sym.Type
}

// IsLocalVar reports whether name resolves to a local variable. Unbound
// names (eg. compiler temporaries) simply report false.
func (t *Table) IsLocalVar(name string) bool {
	sym, ok := t.FindThroughStack(name)
	return ok && sym.Kind == LocalVar
}

// IsParameter reports whether name resolves to a parameter.
func (t *Table) IsParameter(name string) bool {
	sym, ok := t.FindThroughStack(name)
	return ok && sym.Kind == Parameter
}

// Bindings returns a scope's bindings in declaration order, by id. Used
// by the Codegen Pass's subroutine-assembly step to walk parameters and
// locals in the order they were declared.
func (t *Table) Bindings(id ScopeId) []*Symbol {
	sc, ok := t.byId[id]
	if !ok {
		logging.LogFatal("bindings: unknown scope id")
	}
	syms := make([]*Symbol, len(sc.order))
	for i, name := range sc.order {
		syms[i] = sc.bindings[name]
	}
	return syms
}
