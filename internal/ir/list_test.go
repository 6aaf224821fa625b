package ir

import "testing"

func TestConcatIsAssociativeWithEmptyIdentity(t *testing.T) {
	a := Of(ILOAD("%1", "1"))
	b := Of(ILOAD("%2", "2"))
	c := Of(ADD("%3", "%1", "%2"))

	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))
	if !sameInstructions(left, right) {
		t.Fatal("Concat should be associative")
	}

	if !sameInstructions(Concat(Empty, a), a) {
		t.Fatal("Empty should be a left identity")
	}
	if !sameInstructions(Concat(a, Empty), a) {
		t.Fatal("Empty should be a right identity")
	}
}

func TestConcatDoesNotAliasInputs(t *testing.T) {
	a := Of(ILOAD("%1", "1"))
	combined := Concat(a, Of(ILOAD("%2", "2")))
	combined[0] = ILOAD("%9", "9")
	if a[0].Args[0] != "%1" {
		t.Fatal("mutating the result of Concat must not mutate an input list")
	}
}

func TestInstructionString(t *testing.T) {
	if got := ADD("%3", "%1", "%2").String(); got != "ADD %3, %1, %2" {
		t.Fatalf("ADD.String() = %q", got)
	}
	if got := RETURN().String(); got != "RETURN" {
		t.Fatalf("RETURN.String() = %q", got)
	}
}

func sameInstructions(a, b InstructionList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}
