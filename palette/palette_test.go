package palette

import (
	"image/color"
	"testing"
)

func TestCellShadesCount(t *testing.T) {
	got := CellShades(100)
	if len(got) != 100 {
		t.Fatalf("Expected 100 shades, got %d", len(got))
	}
	for i, c := range got {
		rgba, ok := c.(color.RGBA)
		if !ok {
			t.Fatalf("Shade %d is not RGBA", i)
		}
		if rgba.A != 255 {
			t.Errorf("Shade %d is not opaque: %+v", i, rgba)
		}
	}
}

func TestCellShadesDeterministic(t *testing.T) {
	a := CellShades(16)
	b := CellShades(16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Shade %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCellShadesVary(t *testing.T) {
	got := CellShades(4)
	if got[0] == got[2] {
		t.Errorf("Expected opposite hues to differ, got %v twice", got[0])
	}
}

func TestCellShadesEmpty(t *testing.T) {
	if got := CellShades(0); got != nil {
		t.Errorf("Expected nil for 0 shades, got %v", got)
	}
}
