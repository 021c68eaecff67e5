// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"pyramid/pkg/engine/dlstack"
	"pyramid/pkg/engine/world"
	"pyramid/pkg/game/mapfile"
)

// Result is the outcome of one search, as recorded in a dump
type Result struct {
	Path      *dlstack.Stack[*world.Chamber]
	Found     int
	Treasures int
}

// chamberSymbol returns the map-file symbol for a chamber.
func chamberSymbol(grid *world.Grid, c *world.Chamber) rune {
	switch {
	case c == nil:
		return mapfile.SymbolWall
	case c == grid.Entrance():
		return mapfile.SymbolEntrance
	case c.Treasure:
		return mapfile.SymbolTreasure
	case c.Sealed:
		return mapfile.SymbolSealed
	case c.Lighted:
		return mapfile.SymbolLighted
	default:
		return mapfile.SymbolPlain
	}
}

// markSymbol returns the single-character symbol for a chamber's traversal state.
func markSymbol(c *world.Chamber, onPath bool) rune {
	switch {
	case c == nil:
		return '#'
	case onPath:
		return '@'
	case c.Mark() == world.Popped:
		return 'o'
	case c.Mark() == world.Pushed:
		return '+'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with one symbol per chamber, odd rows indented.
func writeMapGrid(w io.Writer, grid *world.Grid, symbol func(c *world.Chamber) rune) {
	for row := 0; row < grid.Rows(); row++ {
		if row%2 != 0 {
			fmt.Fprint(w, " ")
		}
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", symbol(grid.GetChamber(row, col)))
			if col < grid.Cols()-1 {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump: metadata, legend, the layout, the
// traversal state, the path from the entrance, and per-chamber details.
func WriteDump(w io.Writer, grid *world.Grid, res Result) {
	onPath := mapset.New[*world.Chamber]()
	pathLen := 0
	if res.Path != nil {
		res.Path.Each(func(c *world.Chamber) {
			onPath.Put(c)
		})
		pathLen = res.Path.Size()
	}

	entranceName := ""
	if e := grid.Entrance(); e != nil {
		entranceName = e.Name
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== PYRAMID DUMP DEBUG (layout, traversal, chambers) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row:col (0-based, odd rows shifted right)\n")
	fmt.Fprintf(w, "chambers: %d\n", grid.Len())
	fmt.Fprintf(w, "entrance: %s\n", entranceName)
	fmt.Fprintf(w, "treasures: %d\n", res.Treasures)
	fmt.Fprintf(w, "treasures_found: %d\n", res.Found)
	fmt.Fprintf(w, "path_length: %d\n", pathLen)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "layout:    # = wall  . = plain  L = lighted  X = sealed  T = treasure  E = entrance")
	fmt.Fprintln(w, "traversal: # = wall  . = unmarked  + = pushed  o = popped  @ = on final path")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (layout) ---")
	writeMapGrid(w, grid, func(c *world.Chamber) rune {
		return chamberSymbol(grid, c)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (traversal) ---")
	writeMapGrid(w, grid, func(c *world.Chamber) rune {
		return markSymbol(c, c != nil && onPath.Has(c))
	})
	fmt.Fprintln(w, "")

	// --- Path, entrance first ---
	fmt.Fprintln(w, "Path:")
	if pathLen == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		values := res.Path.Values()
		for i := len(values) - 1; i >= 0; i-- {
			c := values[i]
			fmt.Fprintf(w, "  step: %d chamber: %s treasure: %v\n", len(values)-1-i, c.Name, c.Treasure)
		}
	}
	fmt.Fprintln(w, "")

	// --- Chambers ---
	fmt.Fprintln(w, "Chambers:")
	grid.ForEachChamber(func(row, col int, c *world.Chamber) {
		fmt.Fprintf(w, "  row: %d col: %d id: %d sealed: %v lighted: %v treasure: %v mark: %s neighbors: %d\n",
			row, col, c.ID, c.Sealed, c.Lighted, c.Treasure, c.Mark(), len(c.Neighbors()))
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END PYRAMID DUMP ===")
}

// DumpToFile writes WriteDump's output to path and returns the absolute path written.
func DumpToFile(path string, grid *world.Grid, res Result) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteDump(f, grid, res)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
