package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/scicalc/calc"
)

// writeFiles creates each named file in a new temporary directory and
// returns the directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

// pipeStdin replaces os.Stdin with a pipe carrying content for the duration
// of the test.
func pipeStdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	old := os.Stdin
	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})

	go func() {
		defer w.Close()
		io.WriteString(w, content)
	}()
}

func readSources(t *testing.T, sources []string) (string, bool) {
	t.Helper()

	src := sourceFilesFrom(WithSourceFiles(t.Context(), sources))
	if src == nil {
		return "", false
	}

	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	return string(data), true
}

func TestWithSourceFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.calc": "1+1\n",
		"b.calc": "2*3\n",
	})

	a := filepath.Join(dir, "a.calc")
	b := filepath.Join(dir, "b.calc")

	link := filepath.Join(dir, "link.calc")
	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(mustGetwd(t), a)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    string
		wantNil bool
	}{
		{"nil", nil, "", true},
		{"empty", []string{}, "", true},
		{"single", []string{a}, "1+1\n", false},
		{"ordered", []string{b, a}, "2*3\n1+1\n", false},
		{"duplicate_path", []string{a, a, a}, "1+1\n", false},
		{"relative_absolute", []string{a, rel}, "1+1\n", false},
		{"symlink", []string{link, a}, "1+1\n", false},
		{"skip_missing", []string{"/nonexistent/x.calc", a, "/nonexistent/y"}, "1+1\n", false},
		{"all_missing", []string{"/nonexistent/x.calc", "/nonexistent/y"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := readSources(t, tt.sources)
			if ok == tt.wantNil {
				t.Fatalf("WithSourceFiles(%q) reader present = %v, want %v",
					tt.sources, ok, !tt.wantNil)
			}

			if got != tt.want {
				t.Errorf("read %q, want %q", got, tt.want)
			}
		})
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	return wd
}

func TestWithSourceFiles_StdinLast(t *testing.T) {
	dir := writeFiles(t, map[string]string{"f.calc": "file\n"})
	pipeStdin(t, "stdin\n")

	got, ok := readSources(t, []string{"-", filepath.Join(dir, "f.calc"), "-"})
	if !ok {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	if want := "file\nstdin\n"; got != want {
		t.Errorf("read %q, want %q (stdin should be read once and last)", got, want)
	}
}

func TestWithSourceFiles_IsZero(t *testing.T) {
	pipeStdin(t, "")

	src := sourceFilesFrom(WithSourceFiles(t.Context(), []string{"-"}))
	if src == nil {
		t.Fatal("WithSourceFiles should return non-nil reader for stdin")
	}

	if src.IsZero() {
		t.Error("IsZero() = true with stdin included")
	}

	if src.Stdin() == nil {
		t.Error("Stdin() = nil with stdin included")
	}
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		defines []string
		want    map[string]float64
		wantErr error
	}{
		{"none", nil, map[string]float64{}, nil},
		{"single", []string{"r=2"}, map[string]float64{"r": 2}, nil},
		{"chained", []string{"r = 2", "d = 2*r"}, map[string]float64{"r": 2, "d": 4}, nil},
		{"overwrite", []string{"x=1", "x=x+1"}, map[string]float64{"x": 2}, nil},
		{"missing_equals", []string{"r"}, nil, calc.ErrExportForm},
		{"reserved", []string{"sin=1"}, nil, calc.ErrInvalidName},
		{"bad_expression", []string{"r=1/0"}, nil, calc.ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(t.Context(), tt.defines)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewTable(%q) error = %v, want %v", tt.defines, err, tt.wantErr)
				}

				if !errors.Is(err, ErrDefine) {
					t.Errorf("NewTable(%q) error = %v, want wrapped in %v", tt.defines, err, ErrDefine)
				}

				return
			}

			if err != nil {
				t.Fatalf("NewTable(%q) unexpected error: %v", tt.defines, err)
			}

			got := table.Snapshot()
			if len(got) != len(tt.want) {
				t.Fatalf("table = %v, want %v", got, tt.want)
			}

			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("table[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestTableFrom(t *testing.T) {
	if got := tableFrom(context.Background()); got == nil || got.Len() != 0 {
		t.Fatalf("tableFrom(empty context) = %v, want new empty table", got)
	}

	table := calc.NewTable()
	table.Store("k", 1)

	if got := tableFrom(WithTable(t.Context(), table)); got != table {
		t.Errorf("tableFrom(WithTable(t)) = %p, want %p", got, table)
	}
}
