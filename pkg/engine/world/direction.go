package world

// Direction is one of the six sides of a hexagonal chamber
type Direction int

// Directions run clockwise starting at the upper right side.
const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of sides a chamber has
const NumDirections = 6

// AllDirections returns all valid directions in search order
func AllDirections() []Direction {
	return []Direction{NorthEast, East, SouthEast, SouthWest, West, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the six sides
func (d Direction) IsValid() bool {
	return d >= NorthEast && d <= NorthWest
}

// Opposite returns the side facing d
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 3) % NumDirections
}

// Delta returns the row and column offsets for this direction from a chamber
// on the given row. Odd rows are shifted half a chamber to the right.
func (d Direction) Delta(row int) (rowDelta, colDelta int) {
	odd := row%2 != 0
	switch d {
	case NorthEast:
		if odd {
			return -1, 1
		}
		return -1, 0
	case East:
		return 0, 1
	case SouthEast:
		if odd {
			return 1, 1
		}
		return 1, 0
	case SouthWest:
		if odd {
			return 1, 0
		}
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		if odd {
			return -1, 0
		}
		return -1, -1
	default:
		return 0, 0
	}
}
