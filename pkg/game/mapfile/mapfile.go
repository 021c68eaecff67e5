// Package mapfile reads pyramid maps from their plain-text representation.
//
// Each non-comment line is one row of the hex layout (odd rows sit half a
// chamber to the right). Lines starting with ';' are comments and blank
// lines are skipped. Rows shorter than the widest one are padded with walls.
//
//	#  or space  wall
//	.            plain chamber
//	L            lighted chamber
//	X            sealed chamber
//	T            treasure chamber
//	E            entrance
package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"pyramid/pkg/engine/world"
)

// Map symbols
const (
	SymbolWall     = '#'
	SymbolSpace    = ' '
	SymbolPlain    = '.'
	SymbolLighted  = 'L'
	SymbolSealed   = 'X'
	SymbolTreasure = 'T'
	SymbolEntrance = 'E'

	commentPrefix = ";"
)

var (
	// ErrEmptyMap indicates the input has no rows.
	ErrEmptyMap = errors.New("mapfile: map has no rows")
	// ErrNoEntrance indicates the map has no entrance symbol.
	ErrNoEntrance = errors.New("mapfile: map has no entrance")
	// ErrMultipleEntrances indicates more than one entrance symbol.
	ErrMultipleEntrances = errors.New("mapfile: map has more than one entrance")
)

// SyntaxError reports an unknown symbol. Line and Col are 1-based and refer
// to the input text, comments included.
type SyntaxError struct {
	Line   int
	Col    int
	Symbol rune
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mapfile: unknown symbol %q at line %d, column %d", e.Symbol, e.Line, e.Col)
}

type row struct {
	line    int
	symbols []rune
}

// Load reads and parses the map file at path
func Load(path string) (*world.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse reads a map and returns a connected grid with its entrance set
func Parse(r io.Reader) (*world.Grid, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	cols := 0
	for _, rw := range rows {
		if len(rw.symbols) > cols {
			cols = len(rw.symbols)
		}
	}

	g := world.NewGrid(len(rows), cols)
	var entrance *world.Chamber

	for r, rw := range rows {
		for c, sym := range rw.symbols {
			if sym == SymbolWall || sym == SymbolSpace {
				continue
			}

			chamber := g.AddChamber(r, c)
			switch sym {
			case SymbolPlain:
			case SymbolLighted:
				chamber.Lighted = true
			case SymbolSealed:
				chamber.Sealed = true
			case SymbolTreasure:
				chamber.Treasure = true
			case SymbolEntrance:
				if entrance != nil {
					return nil, fmt.Errorf("%w: %v and %v", ErrMultipleEntrances, entrance, chamber)
				}
				entrance = chamber
			default:
				return nil, &SyntaxError{Line: rw.line, Col: c + 1, Symbol: sym}
			}
		}
	}

	if entrance == nil {
		return nil, ErrNoEntrance
	}

	g.BuildAllChamberConnections()
	g.SetEntrance(entrance)
	return g, nil
}

func readRows(r io.Reader) ([]row, error) {
	var rows []row
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		rows = append(rows, row{line: line, symbols: []rune(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
