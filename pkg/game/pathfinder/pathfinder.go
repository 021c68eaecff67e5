// Package pathfinder searches a pyramid map for a path that collects every
// treasure the search can reach from the entrance.
//
// The search is depth-first. The current path lives on a doubly-linked
// stack: moving into a chamber pushes it, a dead end pops it. At each step
// the next chamber is chosen by priority: an unmarked treasure first, then
// an unmarked lighted chamber, then an unmarked dim chamber. The result is a
// valid path, not a shortest one.
package pathfinder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pyramid/pkg/engine/dlstack"
	"pyramid/pkg/engine/world"
	"pyramid/pkg/game/mapfile"
)

// ErrNoMap is returned by Path when the finder has no usable map.
var ErrNoMap = errors.New("pathfinder: no map loaded")

// Option configures a PathFinder
type Option func(*PathFinder)

// WithLogger traces the search at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(f *PathFinder) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// PathFinder runs the treasure search over one grid
type PathFinder struct {
	grid      *world.Grid
	treasures int
	found     int
	logger    *zap.Logger
}

// New loads the map file at path and returns a finder for it
func New(path string, opts ...Option) (*PathFinder, error) {
	grid, err := mapfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}
	return NewFromGrid(grid, opts...), nil
}

// NewFromGrid returns a finder for an already built grid. The grid's
// chambers are expected to be unmarked.
func NewFromGrid(grid *world.Grid, opts ...Option) *PathFinder {
	f := &PathFinder{
		grid:   grid,
		logger: zap.NewNop(),
	}
	if grid != nil {
		f.treasures = grid.TreasureCount()
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Map returns the grid being searched
func (f *PathFinder) Map() *world.Grid {
	return f.grid
}

// Treasures returns the number of treasures the map declares
func (f *PathFinder) Treasures() int {
	return f.treasures
}

// Found returns the number of treasures collected by the last Path call
func (f *PathFinder) Found() int {
	return f.found
}

// Path runs the search and returns the stack holding the path, entrance at
// the bottom. The stack is empty when the search backtracked all the way out
// before collecting every treasure.
//
// Path marks the grid's chambers; running it again on the same grid does not
// repeat the first search.
func (f *PathFinder) Path() (*dlstack.Stack[*world.Chamber], error) {
	if f.grid == nil || f.grid.Entrance() == nil {
		return nil, ErrNoMap
	}

	stack := dlstack.New[*world.Chamber]()
	current := f.grid.Entrance()
	f.found = 0

	stack.Push(current)
	current.MarkPushed()
	f.logger.Debug("entered pyramid", zap.Stringer("chamber", current), zap.Int("treasures", f.treasures))

	for !stack.IsEmpty() {
		// Treasures are pushed unmarked so they are counted here, once.
		top, _ := stack.Peek()
		if top.Treasure && !top.IsMarked() {
			f.found++
			top.MarkPushed()
			f.logger.Debug("treasure found", zap.Stringer("chamber", top), zap.Int("found", f.found))
			if f.found == f.treasures {
				break
			}
		}

		next := f.BestChamber(current)
		if next != nil {
			stack.Push(next)
			if !next.Treasure {
				next.MarkPushed()
			}
			f.logger.Debug("push", zap.Stringer("chamber", next), zap.Int("depth", stack.Size()))
			current = next
			continue
		}

		popped, _ := stack.Pop()
		popped.MarkPopped()
		f.logger.Debug("backtrack", zap.Stringer("chamber", popped), zap.Int("depth", stack.Size()))
		if !stack.IsEmpty() {
			current, _ = stack.Peek()
		}
	}

	f.logger.Info("search finished",
		zap.Int("found", f.found),
		zap.Int("treasures", f.treasures),
		zap.Int("path_length", stack.Size()),
	)
	return stack, nil
}

// BestChamber picks the next chamber to move into from current, or nil if
// every neighbor is marked or unsuitable. Unmarked treasures win over
// unmarked lighted chambers, which win over unmarked dim chambers; within a
// tier the first direction wins.
func (f *PathFinder) BestChamber(current *world.Chamber) *world.Chamber {
	if current == nil {
		return nil
	}

	tiers := []func(*world.Chamber) bool{
		func(c *world.Chamber) bool { return c.Treasure },
		func(c *world.Chamber) bool { return c.Lighted },
		f.IsDim,
	}

	for _, matches := range tiers {
		for _, dir := range world.AllDirections() {
			n := current.Neighbor(dir)
			if n != nil && !n.IsMarked() && matches(n) {
				return n
			}
		}
	}

	return nil
}

// IsDim returns true for an unsealed, unlit chamber next to at least one lit chamber
func (f *PathFinder) IsDim(c *world.Chamber) bool {
	if c == nil || c.Sealed || c.Lighted {
		return false
	}
	for _, n := range c.Neighbors() {
		if n.Lighted {
			return true
		}
	}
	return false
}
