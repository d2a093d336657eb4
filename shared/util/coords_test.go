package util

import "testing"

func TestChunkCoordMath(t *testing.T) {
	a := NewChunkCoord(1, -2, 3)
	b := NewChunkCoord(4, 5, -6)

	if got := a.Add(b); !got.Equals(NewChunkCoord(5, 3, -3)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equals(NewChunkCoord(-3, -7, 9)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.String(); got != "(1, -2, 3)" {
		t.Errorf("String = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs = %v", got)
	}
	if !Between(0, 0.5, 1) || Between(0, 1.5, 1) {
		t.Error("Between com resultado errado")
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp = %v", got)
	}
	if got := Clamp(-2, 0, 1); got != 0 {
		t.Errorf("Clamp = %v", got)
	}
}
