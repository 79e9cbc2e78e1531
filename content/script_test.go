package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScriptLabelsList(t *testing.T) {
	src := `labels = ["a", "b", "c"]`

	got, err := evalScript("list.star", src)
	if err != nil {
		t.Fatalf("Failed to eval script: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("Unexpected labels: %v", got)
	}
}

func TestScriptLabelsFunction(t *testing.T) {
	src := `
def labels():
    out = []
    for i in range(4):
        out.append(str(i * i))
    return out
`

	got, err := evalScript("fn.star", src)
	if err != nil {
		t.Fatalf("Failed to eval script: %v", err)
	}
	want := []string{"0", "1", "4", "9"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d labels, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestScriptStringifiesNumbers(t *testing.T) {
	src := `labels = [1, 2, 3]`

	got, err := evalScript("nums.star", src)
	if err != nil {
		t.Fatalf("Failed to eval script: %v", err)
	}
	if got[0] != "1" || got[2] != "3" {
		t.Errorf("Expected stringified ints, got %v", got)
	}
}

func TestScriptMissingLabels(t *testing.T) {
	src := `something_else = 1`

	_, err := evalScript("missing.star", src)
	if err == nil {
		t.Fatal("Expected an error for a script with no labels")
	}
	if !strings.Contains(err.Error(), "no labels defined") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestScriptLabelsWrongType(t *testing.T) {
	src := `labels = 42`

	_, err := evalScript("wrong.star", src)
	if err == nil {
		t.Fatal("Expected an error for non-list labels")
	}
}

func TestScriptSyntaxError(t *testing.T) {
	src := `labels = [`

	_, err := evalScript("broken.star", src)
	if err == nil {
		t.Fatal("Expected a parse error")
	}
}

func TestFromScriptReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.star")
	if err := os.WriteFile(path, []byte(`labels = ["x", "y"]`), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	got, err := FromScript(path)
	if err != nil {
		t.Fatalf("Failed to load script: %v", err)
	}
	if len(got) != 2 || got[0] != "x" {
		t.Errorf("Unexpected labels: %v", got)
	}
}

func TestFromScriptMissingFile(t *testing.T) {
	_, err := FromScript(filepath.Join(t.TempDir(), "nope.star"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
