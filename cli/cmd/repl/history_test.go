package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"1 + 1", "  export r = 2  ", "", "2 * r", "1 + 1", "1 + 1"} {
		if _, err := h.Write(line); err != nil {
			t.Fatalf("Write(%q) unexpected error: %v", line, err)
		}
	}

	want := []string{"export r = 2", "2 * r", "1 + 1"}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %q, want %q", got, want)
	}
}

func TestHistory_LoadDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	err := os.WriteFile(path, []byte("sin(30)\n\ncos(60)\nsin(30)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if got, want := h.Entries(), []string{"cos(60)", "sin(30)"}; !slices.Equal(got, want) {
		t.Errorf("Entries() = %q, want %q", got, want)
	}
}

func TestHistory_MissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent", baseHistory))

	if err := h.Load(); err != nil {
		t.Errorf("Load() of missing file = %v, want nil", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_InMemory(t *testing.T) {
	h := NewHistory("")

	if _, err := h.Write("2^10"); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	line, err := h.GetLine(0)
	if err != nil || line != "2^10" {
		t.Errorf("GetLine(0) = (%q, %v), want (%q, nil)", line, err, "2^10")
	}

	if _, err := h.GetLine(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetLine(1) error = %v, want %v", err, ErrOutOfBounds)
	}

	if _, err := h.GetLine(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetLine(-1) error = %v, want %v", err, ErrOutOfBounds)
	}
}
