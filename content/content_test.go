package content

import "testing"

func TestEmojiCycles(t *testing.T) {
	got := Emoji(100)

	if len(got) != 100 {
		t.Fatalf("Expected 100 labels, got %d", len(got))
	}
	for i, s := range got {
		if s == "" {
			t.Fatalf("Empty label at %d", i)
		}
	}
	// Past the end of the base set the labels repeat from the start.
	if got[len(emoji)] != got[0] {
		t.Errorf("Expected label %d to cycle back to %q, got %q", len(emoji), got[0], got[len(emoji)])
	}
}

func TestEmojiEmpty(t *testing.T) {
	if got := Emoji(0); got != nil {
		t.Errorf("Expected nil for 0 labels, got %v", got)
	}
	if got := Emoji(-5); got != nil {
		t.Errorf("Expected nil for negative count, got %v", got)
	}
}

func TestLabelsCountUp(t *testing.T) {
	got := Labels(5)

	want := []string{"0", "1", "2", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
