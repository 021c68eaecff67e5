// Package renderer draws pyramid maps and search results for the terminal.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"pyramid/pkg/engine/dlstack"
	"pyramid/pkg/engine/terminal"
	"pyramid/pkg/engine/world"
	"pyramid/pkg/game/locale"
)

// Icon constants, one per chamber kind
const (
	IconWall     = "▒"
	IconVoid     = " "
	IconPlain    = "●"
	IconVisited  = "○" // Backtracked out of
	IconEntrance = "⌂"
	IconTreasure = "◆"
	IconLighted  = "☼"
	IconSealed   = "▣"

	pathSeparator = " → "
)

// Renderer is the terminal renderer for pyramid maps
type Renderer struct {
	colorCell        color.Style
	colorTitle       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorItem        color.Style
	colorSubtle      color.Style
	colorPath        color.Style
	colorTreasure    color.Style
	colorLighted     color.Style
	colorSealed      color.Style

	regexpStringFunctions *regexp.Regexp

	width int
}

// New creates a new renderer. Call Init before use.
func New() *Renderer {
	return &Renderer{width: terminal.DefaultWidth}
}

// Init initializes the color styles
func (r *Renderer) Init() {
	r.colorCell = color.Style{color.FgBlue}
	r.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	r.colorAction = color.Style{color.FgMagenta}
	r.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	r.colorDenied = color.Style{color.FgRed, color.OpBold}
	r.colorItem = color.Style{color.FgGreen, color.OpBold}
	r.colorSubtle = color.Style{color.FgGray}
	r.colorPath = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	r.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	r.colorLighted = color.Style{color.FgYellow}
	r.colorSealed = color.Style{color.FgRed}

	r.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// SetWidth sets the line width used to wrap path listings
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// FormatString formats a string with special markup:
// GT{KEY} translates KEY, ROOM{name} styles a chamber name,
// ACTION{text} highlights text, ITEM{text} styles a found item.
func (r *Renderer) FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := r.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = locale.Get(operand)
		case "ITEM":
			val = r.colorItem.Sprint(operand)
		case "ROOM":
			val = r.colorCell.Sprint(operand)
		case "ACTION":
			val = r.colorActionShort.Sprint(operand[0:1]) + r.colorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// PrintTitle writes text as a section title
func (r *Renderer) PrintTitle(w io.Writer, text string) {
	fmt.Fprintln(w, r.colorTitle.Sprint(text))
}

// ChamberIcon returns the icon for a chamber, styled by its state.
// onPath chambers are highlighted; chambers the search backtracked out of are dimmed.
func (r *Renderer) ChamberIcon(grid *world.Grid, c *world.Chamber, onPath bool) string {
	if c == nil {
		return r.colorSubtle.Sprint(IconWall)
	}

	icon := IconPlain
	style := r.colorCell
	switch {
	case c == grid.Entrance():
		icon = IconEntrance
	case c.Treasure:
		icon, style = IconTreasure, r.colorTreasure
	case c.Sealed:
		icon, style = IconSealed, r.colorSealed
	case c.Lighted:
		icon, style = IconLighted, r.colorLighted
	case c.Mark() == world.Popped:
		icon = IconVisited
	}

	switch {
	case onPath:
		style = r.colorPath
	case c.Mark() == world.Popped:
		style = r.colorSubtle
	}
	return style.Sprint(icon)
}

// RenderMap draws the grid with odd rows shifted half a chamber right.
// Chambers held by path are highlighted; path may be nil.
func (r *Renderer) RenderMap(w io.Writer, grid *world.Grid, path *dlstack.Stack[*world.Chamber]) {
	onPath := mapset.New[*world.Chamber]()
	if path != nil {
		path.Each(func(c *world.Chamber) {
			onPath.Put(c)
		})
	}

	for row := 0; row < grid.Rows(); row++ {
		var sb strings.Builder
		if row%2 != 0 {
			sb.WriteString(IconVoid)
		}
		for col := 0; col < grid.Cols(); col++ {
			c := grid.GetChamber(row, col)
			sb.WriteString(r.ChamberIcon(grid, c, c != nil && onPath.Has(c)))
			if col < grid.Cols()-1 {
				sb.WriteString(IconVoid)
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}

// RenderLegend writes the icon legend
func (r *Renderer) RenderLegend(w io.Writer) {
	entries := []struct {
		icon string
		key  string
	}{
		{IconEntrance, "ENTRANCE"},
		{r.colorTreasure.Sprint(IconTreasure), "TREASURE"},
		{r.colorLighted.Sprint(IconLighted), "LIGHTED"},
		{r.colorSealed.Sprint(IconSealed), "SEALED"},
		{r.colorCell.Sprint(IconPlain), "CHAMBER"},
		{r.colorPath.Sprint(IconPlain), "ON_PATH"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.icon+" "+locale.Get(e.key))
	}
	fmt.Fprintf(w, "%s: %s\n", r.colorTitle.Sprint(locale.Get("LEGEND")), strings.Join(parts, "  "))
}

// RenderPath lists the path from the entrance to its last chamber,
// wrapping at the renderer's width.
func (r *Renderer) RenderPath(w io.Writer, path *dlstack.Stack[*world.Chamber]) {
	if path == nil || path.IsEmpty() {
		fmt.Fprintln(w, r.colorDenied.Sprint(locale.Get("PATH_EMPTY")))
		return
	}

	r.PrintTitle(w, locale.Get("PATH_TITLE"))

	values := path.Values()
	line := ""
	for i := len(values) - 1; i >= 0; i-- {
		name := r.FormatString("ROOM{%s}", values[i].Name)
		if values[i].Treasure {
			name = r.FormatString("ITEM{%s}", values[i].Name)
		}
		if i > 0 {
			name += pathSeparator
		}
		if line != "" && visibleLen(line)+visibleLen(name) > r.width {
			fmt.Fprintln(w, strings.TrimRight(line, " "))
			line = ""
		}
		line += name
	}
	fmt.Fprintln(w, line)
}

// RenderSummary writes the found/total treasure line
func (r *Renderer) RenderSummary(w io.Writer, found, total, length int) {
	fmt.Fprintln(w, locale.Get("SUMMARY", found, total, length))
	if found == total {
		fmt.Fprintln(w, r.colorItem.Sprint(locale.Get("ALL_FOUND")))
	} else {
		fmt.Fprintln(w, r.colorDenied.Sprint(locale.Get("SOME_MISSING")))
	}
}

// visibleLen counts the runes of s without color codes
func visibleLen(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}
