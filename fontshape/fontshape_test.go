package fontshape

import "testing"

func TestFixedToFloat(t *testing.T) {
	// 64 units per 26.6-fixed-point integer.
	if got := fixedToFloat(128); got != 2 {
		t.Errorf("fixedToFloat(128) = %v, want 2", got)
	}
	if got := fixedToFloat(96); got != 1.5 {
		t.Errorf("fixedToFloat(96) = %v, want 1.5", got)
	}
}

func TestLoadRejectsGarbageBytes(t *testing.T) {
	if _, err := Load([]byte("not a font"), 'A', 1000); err == nil {
		t.Error("Load with garbage bytes should return an error")
	}
}
