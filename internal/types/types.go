// Package types implements the Types Manager: it interns type
// descriptors and answers the type queries the Symbols and Codegen
// passes need. TypeId is an opaque handle; callers are
// expected to only query a TypeId through the kind-appropriate
// accessor -- querying the wrong variant is a programming fault (the
// passes above guarantee shape via decorations), and is reported as a
// fatal error rather than recovered from.
package types

import (
	"fmt"
	"strconv"

	"github.com/hegalit/aslc/internal/logging"
)

// Kind enumerates the type variants.
type Kind int

const (
	KindVoid Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindCharacter
	KindArray
	KindFunction
)

// dataType is the concrete representation behind a TypeId.
type dataType struct {
	kind Kind

	// Array
	length int
	elem   *dataType

	// Function
	params []*dataType
	ret    *dataType
}

// TypeId is the opaque handle exposed to the rest of the compiler.
// Primitive types are singletons: two TypeIds for the same primitive
// kind are the same pointer. Array and function types are structural:
// use Equals, not ==, to compare them.
type TypeId = *dataType

// Manager owns every type descriptor created during one compilation.
type Manager struct {
	voidTy, intTy, floatTy, boolTy, charTy *dataType
}

// NewManager creates a Types Manager with the primitive singletons
// pre-interned.
func NewManager() *Manager {
	return &Manager{
		voidTy:  &dataType{kind: KindVoid},
		intTy:   &dataType{kind: KindInteger},
		floatTy: &dataType{kind: KindFloat},
		boolTy:  &dataType{kind: KindBoolean},
		charTy:  &dataType{kind: KindCharacter},
	}
}

func (m *Manager) CreateVoid() TypeId      { return m.voidTy }
func (m *Manager) CreateInteger() TypeId   { return m.intTy }
func (m *Manager) CreateFloat() TypeId     { return m.floatTy }
func (m *Manager) CreateBoolean() TypeId   { return m.boolTy }
func (m *Manager) CreateCharacter() TypeId { return m.charTy }

// CreateArray builds an array type of the given length over a primitive
// element type. A non-positive length or a non-primitive element is a
// programming fault: the grammar only ever admits a positive integer
// literal length and the checker is responsible for rejecting
// non-primitive elements before this is called with one.
func (m *Manager) CreateArray(length int, elem TypeId) TypeId {
	if length <= 0 {
		logging.LogFatal("array type must have a positive length")
	}
	if !m.isPrimitive(elem) {
		logging.LogFatal("array element type must be primitive")
	}
	return &dataType{kind: KindArray, length: length, elem: elem}
}

// CreateFunction builds a function type from ordered parameter types and
// a return type.
func (m *Manager) CreateFunction(params []TypeId, ret TypeId) TypeId {
	return &dataType{kind: KindFunction, params: params, ret: ret}
}

func (m *Manager) isPrimitive(t TypeId) bool {
	switch t.kind {
	case KindVoid, KindInteger, KindFloat, KindBoolean, KindCharacter:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------
// Kind predicates.

func (m *Manager) IsVoid(t TypeId) bool      { return t.kind == KindVoid }
func (m *Manager) IsInteger(t TypeId) bool   { return t.kind == KindInteger }
func (m *Manager) IsFloat(t TypeId) bool     { return t.kind == KindFloat }
func (m *Manager) IsBoolean(t TypeId) bool   { return t.kind == KindBoolean }
func (m *Manager) IsCharacter(t TypeId) bool { return t.kind == KindCharacter }
func (m *Manager) IsArray(t TypeId) bool     { return t.kind == KindArray }
func (m *Manager) IsFunction(t TypeId) bool  { return t.kind == KindFunction }

// IsNumeric reports whether t is an integer or a float.
func (m *Manager) IsNumeric(t TypeId) bool {
	return m.IsInteger(t) || m.IsFloat(t)
}

// -----------------------------------------------------------------------------
// Array/function accessors. Calling these on the wrong kind is a
// programming fault.

func (m *Manager) GetArrayElem(t TypeId) TypeId {
	if t.kind != KindArray {
		logging.LogFatal("GetArrayElem called on a non-array type")
	}
	return t.elem
}

func (m *Manager) GetArrayLength(t TypeId) int {
	if t.kind != KindArray {
		logging.LogFatal("GetArrayLength called on a non-array type")
	}
	return t.length
}

func (m *Manager) GetFuncReturn(t TypeId) TypeId {
	if t.kind != KindFunction {
		logging.LogFatal("GetFuncReturn called on a non-function type")
	}
	return t.ret
}

func (m *Manager) GetFuncParamCount(t TypeId) int {
	if t.kind != KindFunction {
		logging.LogFatal("GetFuncParamCount called on a non-function type")
	}
	return len(t.params)
}

func (m *Manager) GetFuncParam(t TypeId, i int) TypeId {
	if t.kind != KindFunction {
		logging.LogFatal("GetFuncParam called on a non-function type")
	}
	return t.params[i]
}

// -----------------------------------------------------------------------------

// SizeOf returns the number of storage cells a value of type t occupies.
func (m *Manager) SizeOf(t TypeId) int {
	switch t.kind {
	case KindVoid:
		return 0
	case KindArray:
		return t.length * m.SizeOf(t.elem)
	case KindFunction:
		logging.LogFatal("SizeOf called on a function type")
		return 0
	default:
		return 1
	}
}

// Equals reports structural equality: primitives compare as singletons,
// arrays compare length and element type, functions compare parameter
// and return types in order.
func Equals(a, b TypeId) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindArray:
		return a.length == b.length && Equals(a.elem, b.elem)
	case KindFunction:
		if len(a.params) != len(b.params) || !Equals(a.ret, b.ret) {
			return false
		}
		for i := range a.params {
			if !Equals(a.params[i], b.params[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// ToString renders a type's full textual form, including array length.
func (m *Manager) ToString(t TypeId) string {
	switch t.kind {
	case KindVoid:
		return "void"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "bool"
	case KindCharacter:
		return "char"
	case KindArray:
		return fmt.Sprintf("array[%s] of %s", strconv.Itoa(t.length), m.ToString(t.elem))
	case KindFunction:
		s := "("
		for i, p := range t.params {
			if i > 0 {
				s += ", "
			}
			s += m.ToString(p)
		}
		return s + ") -> " + m.ToString(t.ret)
	default:
		logging.LogFatal("ToString: unknown type kind")
		return ""
	}
}

// ToStringBasic renders the textual form used to declare a storage
// cell: for arrays this is the element's textual form (the cell count
// is conveyed separately by the subroutine's variable-size field), for
// every other kind it is the same as ToString.
func (m *Manager) ToStringBasic(t TypeId) string {
	if t.kind == KindArray {
		return m.ToStringBasic(t.elem)
	}
	return m.ToString(t)
}
