package battleship

import "fmt"

// The game is always played on a 6x6 grid.
const GridSize int = 6

type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellMiss
	CellHit

	// Water revealed around a sunken ship
	CellContour
)

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// String renders the coordinates the way the human enters them (1-indexed).
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X+1, c.Y+1)
}

type Grid [][]Cell

// Creates a new default grid
// All indexes are CellEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]Cell, gridSize)
	}
	return grid
}

// Random is the source of randomness for fleet placement and the
// automated player. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}
