package types

import "testing"

func TestPrimitivesAreSingletons(t *testing.T) {
	m := NewManager()
	if m.CreateInteger() != m.CreateInteger() {
		t.Fatal("two calls to CreateInteger returned different pointers")
	}
	if m.CreateInteger() == m.CreateFloat() {
		t.Fatal("CreateInteger and CreateFloat returned the same pointer")
	}
}

func TestArraySizeOf(t *testing.T) {
	m := NewManager()
	arr := m.CreateArray(3, m.CreateInteger())
	if got := m.SizeOf(arr); got != 3 {
		t.Fatalf("SizeOf(array[3] of int) = %d, want 3", got)
	}
	if got := m.SizeOf(m.CreateInteger()); got != 1 {
		t.Fatalf("SizeOf(int) = %d, want 1", got)
	}
}

func TestArrayElementMustBePrimitive(t *testing.T) {
	m := NewManager()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a fatal error for a non-primitive array element")
		}
	}()
	inner := m.CreateArray(2, m.CreateInteger())
	m.CreateArray(2, inner)
}

func TestEqualsIsStructural(t *testing.T) {
	m := NewManager()
	a := m.CreateArray(4, m.CreateFloat())
	b := m.CreateArray(4, m.CreateFloat())
	if a == b {
		t.Fatal("two CreateArray calls unexpectedly returned the same pointer")
	}
	if !Equals(a, b) {
		t.Fatal("Equals should consider same-shape arrays equal")
	}

	c := m.CreateArray(5, m.CreateFloat())
	if Equals(a, c) {
		t.Fatal("Equals should distinguish arrays of different length")
	}
}

func TestToStringBasicUnwrapsArrays(t *testing.T) {
	m := NewManager()
	arr := m.CreateArray(10, m.CreateCharacter())
	if got := m.ToStringBasic(arr); got != "char" {
		t.Fatalf("ToStringBasic(array[10] of char) = %q, want %q", got, "char")
	}
	if got := m.ToString(arr); got != "array[10] of char" {
		t.Fatalf("ToString(array[10] of char) = %q, want %q", got, "array[10] of char")
	}
}

func TestIsNumeric(t *testing.T) {
	m := NewManager()
	if !m.IsNumeric(m.CreateInteger()) || !m.IsNumeric(m.CreateFloat()) {
		t.Fatal("int and float should both be numeric")
	}
	if m.IsNumeric(m.CreateBoolean()) {
		t.Fatal("bool should not be numeric")
	}
}
