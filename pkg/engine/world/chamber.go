// Package world provides the hexagonal chamber grid a pyramid map is made of.
// Chambers live in a flat arena owned by the Grid and refer to their
// neighbors by arena index, so the cyclic adjacency never forms owning links.
package world

import "fmt"

// noNeighbor marks a side with a wall or the grid edge behind it
const noNeighbor = -1

// Mark is the visitation state of a chamber during a traversal
type Mark int

// Visitation states
const (
	Unmarked Mark = iota
	Pushed
	Popped
)

// String returns the string representation of a mark
func (m Mark) String() string {
	switch m {
	case Unmarked:
		return "unmarked"
	case Pushed:
		return "pushed"
	case Popped:
		return "popped"
	default:
		return "unknown"
	}
}

// Chamber is a single hexagonal room of the pyramid
type Chamber struct {
	// ID is the chamber's index in its grid's arena
	ID   int
	Name string

	// Grid position
	Row int
	Col int

	// Chamber type flags
	Sealed   bool // Sealed chambers are never entered as dim chambers
	Lighted  bool
	Treasure bool

	mark      Mark
	neighbors [NumDirections]int
	grid      *Grid
}

func newChamber(g *Grid, id, row, col int) *Chamber {
	c := &Chamber{
		ID:   id,
		Name: fmt.Sprintf("%v:%v", row, col),
		Row:  row,
		Col:  col,
		grid: g,
	}
	for i := range c.neighbors {
		c.neighbors[i] = noNeighbor
	}
	return c
}

// String returns the chamber's name
func (c *Chamber) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// Neighbor returns the adjacent chamber in the given direction, or nil if
// there is a wall, the grid edge, or the direction is invalid.
func (c *Chamber) Neighbor(dir Direction) *Chamber {
	if c == nil || !dir.IsValid() || c.grid == nil {
		return nil
	}
	return c.grid.ChamberByID(c.neighbors[dir])
}

// SetNeighbor links n on the given side of c. A nil n removes the link.
// Only c is updated; use Grid.BuildAllChamberConnections for symmetric links.
func (c *Chamber) SetNeighbor(dir Direction, n *Chamber) {
	if c == nil || !dir.IsValid() {
		return
	}
	if n == nil {
		c.neighbors[dir] = noNeighbor
		return
	}
	c.neighbors[dir] = n.ID
}

// Neighbors returns all non-nil adjacent chambers in direction order
func (c *Chamber) Neighbors() []*Chamber {
	var neighbors []*Chamber
	for _, dir := range AllDirections() {
		if n := c.Neighbor(dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Mark returns the chamber's visitation state
func (c *Chamber) Mark() Mark {
	return c.mark
}

// IsMarked returns true once the chamber has been pushed or popped
func (c *Chamber) IsMarked() bool {
	return c.mark != Unmarked
}

// MarkPushed records that the chamber is on the current path
func (c *Chamber) MarkPushed() {
	c.mark = Pushed
}

// MarkPopped records that the chamber was backtracked out of
func (c *Chamber) MarkPopped() {
	c.mark = Popped
}
