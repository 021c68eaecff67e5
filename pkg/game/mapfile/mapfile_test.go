package mapfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pyramid/pkg/engine/world"
)

const sampleMap = `; sample pyramid
E.L#T
 X.T
`

func TestParse_Sample(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 5 {
		t.Errorf("dimensions = %dx%d, want 2x5", g.Rows(), g.Cols())
	}
	if g.Len() != 7 {
		t.Errorf("Len() = %d, want 7", g.Len())
	}
	if g.TreasureCount() != 2 {
		t.Errorf("TreasureCount() = %d, want 2", g.TreasureCount())
	}

	e := g.Entrance()
	if e == nil || e.Name != "0:0" {
		t.Fatalf("Entrance() = %v, want 0:0", e)
	}
	if e.Lighted || e.Sealed || e.Treasure {
		t.Error("entrance should be a plain chamber")
	}

	flags := []struct {
		row, col                  int
		lighted, sealed, treasure bool
	}{
		{0, 2, true, false, false},
		{0, 4, false, false, true},
		{1, 1, false, true, false},
		{1, 3, false, false, true},
	}
	for _, f := range flags {
		c := g.GetChamber(f.row, f.col)
		if c == nil {
			t.Errorf("no chamber at %d:%d", f.row, f.col)
			continue
		}
		if c.Lighted != f.lighted || c.Sealed != f.sealed || c.Treasure != f.treasure {
			t.Errorf("chamber %v flags = L%v X%v T%v, want L%v X%v T%v", c, c.Lighted, c.Sealed, c.Treasure, f.lighted, f.sealed, f.treasure)
		}
	}

	if g.GetChamber(0, 3) != nil || g.GetChamber(1, 0) != nil || g.GetChamber(1, 4) != nil {
		t.Error("walls, spaces and padding should not hold chambers")
	}
	if e.Neighbor(world.East) != g.GetChamber(0, 1) {
		t.Error("parsed grid should be connected")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyMap},
		{"only comments", "; nothing\n\n", ErrEmptyMap},
		{"no entrance", "..T\n", ErrNoEntrance},
		{"two entrances", "E.E\n", ErrMultipleEntrances},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("; header\nE..\n.?.\n"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Parse() error = %v, want *SyntaxError", err)
	}
	if se.Line != 3 || se.Col != 2 || se.Symbol != '?' {
		t.Errorf("SyntaxError = %+v, want line 3 col 2 symbol '?'", se)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyramid.txt")
	if err := os.WriteFile(path, []byte(sampleMap), 0o600); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if g.Entrance() == nil {
		t.Error("loaded grid has no entrance")
	}

	if _, err := Load(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("...\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrNoEntrance) {
		t.Errorf("Load(bad) error = %v, want ErrNoEntrance", err)
	}
}
