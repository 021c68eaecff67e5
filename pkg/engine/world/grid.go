package world

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")
	// ErrNoEntrance indicates a grid without an entrance chamber.
	ErrNoEntrance = errors.New("world: grid has no entrance")
)

// Grid is a pyramid map: a rows x cols hex layout where every position
// holds either a chamber or a wall.
type Grid struct {
	chambers []*Chamber
	index    []int // rows*cols positions, noNeighbor for walls
	byName   map[string]*Chamber
	rows     int
	cols     int

	entrance *Chamber
}

// NewGrid creates a grid of the given dimensions with every position walled
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{
		index:  make([]int, rows*cols),
		byName: make(map[string]*Chamber),
		rows:   rows,
		cols:   cols,
	}
	for i := range g.index {
		g.index[i] = noNeighbor
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of chambers in the grid
func (g *Grid) Len() int {
	return len(g.chambers)
}

// Entrance returns the entrance chamber
func (g *Grid) Entrance() *Chamber {
	return g.entrance
}

// SetEntrance sets the entrance chamber. Returns false if the chamber is nil or not in this grid.
func (g *Grid) SetEntrance(c *Chamber) bool {
	if c == nil || g.ChamberByID(c.ID) != c {
		return false
	}
	g.entrance = c
	return true
}

// TreasureCount returns the number of treasure chambers in the grid
func (g *Grid) TreasureCount() int {
	count := 0
	for _, c := range g.chambers {
		if c.Treasure {
			count++
		}
	}
	return count
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// AddChamber opens a chamber at the given position and returns it.
// If a chamber already exists there it is returned unchanged.
// Returns nil if the position is out of bounds.
func (g *Grid) AddChamber(row, col int) *Chamber {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	if c := g.GetChamber(row, col); c != nil {
		return c
	}

	c := newChamber(g, len(g.chambers), row, col)
	g.chambers = append(g.chambers, c)
	g.index[row*g.cols+col] = c.ID
	g.byName[c.Name] = c
	return c
}

// GetChamber returns the chamber at the given position, or nil for walls and out of bounds
func (g *Grid) GetChamber(row, col int) *Chamber {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.ChamberByID(g.index[row*g.cols+col])
}

// GetChamberByName returns a chamber by its name, or nil if not found
func (g *Grid) GetChamberByName(name string) *Chamber {
	return g.byName[name]
}

// ChamberByID returns the chamber with the given arena index, or nil
func (g *Grid) ChamberByID(id int) *Chamber {
	if id < 0 || id >= len(g.chambers) {
		return nil
	}
	return g.chambers[id]
}

// GetChamberRelative returns the chamber adjacent to c in the specified direction
// by grid position, regardless of whether the two are linked.
func (g *Grid) GetChamberRelative(c *Chamber, dir Direction) *Chamber {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta(c.Row)
	return g.GetChamber(c.Row+rowRel, c.Col+colRel)
}

// BuildAllChamberConnections links every chamber to its adjacent chambers
func (g *Grid) BuildAllChamberConnections() {
	for _, c := range g.chambers {
		g.buildChamberConnections(c)
	}
}

func (g *Grid) buildChamberConnections(current *Chamber) {
	for _, dir := range AllDirections() {
		adj := g.GetChamberRelative(current, dir)

		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachChamber iterates over all chambers in row-major order
func (g *Grid) ForEachChamber(fn func(row, col int, c *Chamber)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if c := g.GetChamber(row, col); c != nil {
				fn(row, col, c)
			}
		}
	}
}

// Reachable collects every chamber connected to start. Sealed chambers are
// included but not walked through.
func (g *Grid) Reachable(start *Chamber) mapset.Set[*Chamber] {
	visited := mapset.New[*Chamber]()
	queue := []*Chamber{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == nil || visited.Has(current) {
			continue
		}
		visited.Put(current)

		if current.Sealed {
			continue
		}

		for _, n := range current.Neighbors() {
			if !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrInvalidDimensions
	}
	if g.entrance == nil {
		return ErrNoEntrance
	}
	return nil
}
