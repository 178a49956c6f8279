package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

type Ship struct {
	bow         Coordinates
	length      int
	orientation Orientation
	lives       int
}

func NewShip(bow Coordinates, length int, orientation Orientation) *Ship {
	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}

// Cells returns the cells occupied by the ship starting from the bow.
// Horizontal ships grow along the columns, vertical ones along the rows.
func (sh *Ship) Cells() []Coordinates {
	if sh.length < 1 {
		return nil
	}

	cells := make([]Coordinates, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		cell := sh.bow
		if sh.orientation == OrientationHorizontal {
			cell.Y += i
		} else {
			cell.X += i
		}
		cells = append(cells, cell)
	}
	return cells
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, cell := range sh.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

func (sh *Ship) GotHit() {
	if sh.lives > 0 {
		sh.lives--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}
