package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"pyramid/pkg/engine/dlstack"
	"pyramid/pkg/engine/world"
	"pyramid/pkg/game/locale"
	"pyramid/pkg/game/mapfile"
)

// newPlainRenderer returns an initialized renderer with color output disabled.
func newPlainRenderer(t *testing.T) *Renderer {
	t.Helper()
	enabled := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = enabled })

	locale.Init("en")
	r := New()
	r.Init()
	return r
}

func parseGrid(t *testing.T, text string) *world.Grid {
	t.Helper()
	g, err := mapfile.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("mapfile.Parse: %v", err)
	}
	return g
}

func TestFormatString(t *testing.T) {
	r := newPlainRenderer(t)

	tests := []struct {
		name string
		msg  string
		args []any
		want string
	}{
		{"plain", "hello %d", []any{3}, "hello 3"},
		{"room", "in ROOM{%s}", []any{"0:1"}, "in 0:1"},
		{"item", "got ITEM{gold}", nil, "got gold"},
		{"action", "ACTION{Quit}", nil, "Quit"},
		{"translated", "GT{LEGEND}", nil, "Legend"},
		{"unknown", "FOO{bar}", nil, "ERROR, function not found: FOO -> bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.ClearCode(r.FormatString(tt.msg, tt.args...))
			if got != tt.want {
				t.Errorf("FormatString(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestRenderMap(t *testing.T) {
	r := newPlainRenderer(t)
	g := parseGrid(t, "E.#T\n LX\n")

	var buf bytes.Buffer
	r.RenderMap(&buf, g, nil)
	lines := strings.Split(strings.TrimRight(color.ClearCode(buf.String()), "\n"), "\n")

	want := []string{
		IconEntrance + " " + IconPlain + " " + IconWall + " " + IconTreasure,
		" " + IconWall + " " + IconLighted + " " + IconSealed + " " + IconWall,
	}
	if len(lines) != len(want) {
		t.Fatalf("RenderMap wrote %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestChamberIcon_States(t *testing.T) {
	r := newPlainRenderer(t)
	g := parseGrid(t, "E..")
	popped := g.GetChamber(0, 1)
	popped.MarkPopped()

	if got := color.ClearCode(r.ChamberIcon(g, popped, false)); got != IconVisited {
		t.Errorf("popped chamber icon = %q, want %q", got, IconVisited)
	}
	if got := color.ClearCode(r.ChamberIcon(g, g.GetChamber(0, 2), true)); got != IconPlain {
		t.Errorf("path chamber icon = %q, want %q", got, IconPlain)
	}
	if got := color.ClearCode(r.ChamberIcon(g, nil, false)); got != IconWall {
		t.Errorf("nil chamber icon = %q, want %q", got, IconWall)
	}
}

func TestRenderPath(t *testing.T) {
	r := newPlainRenderer(t)
	g := parseGrid(t, "E.T")

	path := dlstack.New[*world.Chamber]()
	for col := 0; col < 3; col++ {
		path.Push(g.GetChamber(0, col))
	}

	var buf bytes.Buffer
	r.RenderPath(&buf, path)
	out := color.ClearCode(buf.String())
	if !strings.Contains(out, "0:0 → 0:1 → 0:2") {
		t.Errorf("RenderPath output = %q, want chambers from entrance to end", out)
	}

	buf.Reset()
	r.RenderPath(&buf, dlstack.New[*world.Chamber]())
	if !strings.Contains(buf.String(), locale.Get("PATH_EMPTY")) {
		t.Errorf("RenderPath(empty) = %q, want the empty path message", buf.String())
	}
}

func TestRenderPath_Wraps(t *testing.T) {
	r := newPlainRenderer(t)
	r.SetWidth(12)
	g := parseGrid(t, "E.....")

	path := dlstack.New[*world.Chamber]()
	for col := 0; col < 6; col++ {
		path.Push(g.GetChamber(0, col))
	}

	var buf bytes.Buffer
	r.RenderPath(&buf, path)
	lines := strings.Split(strings.TrimRight(color.ClearCode(buf.String()), "\n"), "\n")
	// title + wrapped chamber lines
	if len(lines) < 3 {
		t.Fatalf("RenderPath with width 12 wrote %d lines, want wrapping:\n%s", len(lines), buf.String())
	}
	joined := strings.Join(lines[1:], "")
	for col := 0; col < 6; col++ {
		if !strings.Contains(joined, g.GetChamber(0, col).Name) {
			t.Errorf("wrapped path is missing %v", g.GetChamber(0, col))
		}
	}
}

func TestRenderSummary(t *testing.T) {
	r := newPlainRenderer(t)

	var buf bytes.Buffer
	r.RenderSummary(&buf, 2, 2, 5)
	out := color.ClearCode(buf.String())
	if !strings.Contains(out, "Found 2 of 2 treasures, path length 5.") || !strings.Contains(out, locale.Get("ALL_FOUND")) {
		t.Errorf("RenderSummary(2, 2, 5) = %q", out)
	}

	buf.Reset()
	r.RenderSummary(&buf, 1, 2, 0)
	if !strings.Contains(color.ClearCode(buf.String()), locale.Get("SOME_MISSING")) {
		t.Errorf("RenderSummary(1, 2, 0) = %q", buf.String())
	}
}

func TestRenderLegend(t *testing.T) {
	r := newPlainRenderer(t)
	var buf bytes.Buffer
	r.RenderLegend(&buf)
	out := color.ClearCode(buf.String())
	for _, want := range []string{"Legend", IconTreasure + " treasure", IconSealed + " sealed"} {
		if !strings.Contains(out, want) {
			t.Errorf("legend %q does not contain %q", out, want)
		}
	}
}
