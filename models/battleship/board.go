package battleship

import (
	"github.com/dolthub/swiss"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Phase uint8

const (
	PhasePlacement Phase = iota
	PhaseBattle
)

type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
)

// FireAgain reports whether the shooter keeps the turn.
func (o Outcome) FireAgain() bool {
	return o == OutcomeHit || o == OutcomeSunk
}

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	size      int
	hidden    bool
	destroyed int
	phase     Phase
	grid      Grid
	ships     []*Ship

	// reserved holds ship cells and their contours while the fleet is
	// being placed. targeted holds every shot and revealed contour once
	// the battle has begun. Only the set of the current phase is live.
	reserved *swiss.Map[Coordinates, struct{}]
	targeted *swiss.Map[Coordinates, struct{}]
}

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		phase:    PhasePlacement,
		grid:     NewGrid(size),
		ships:    make([]*Ship, 0, len(DefaultFleet)),
		reserved: swiss.NewMap[Coordinates, struct{}](uint32(size * size)),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) Destroyed() int {
	return b.destroyed
}

func (b *Board) Ships() []*Ship {
	return b.ships
}

// Cell returns the state of c. Out of bounds cells read as empty.
func (b *Board) Cell(c Coordinates) Cell {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	return b.grid[c.X][c.Y]
}

// Targeted reports whether c can no longer be shot at.
func (b *Board) Targeted(c Coordinates) bool {
	return b.targeted != nil && b.targeted.Has(c)
}

func (b *Board) IsOutOfBounds(c Coordinates) bool {
	return !(0 <= c.X && c.X < b.size && 0 <= c.Y && c.Y < b.size)
}

func (b *Board) busy() *swiss.Map[Coordinates, struct{}] {
	if b.phase == PhaseBattle {
		return b.targeted
	}
	return b.reserved
}

func (b *Board) exclusionZone(ship *Ship, mark bool) {
	busy := b.busy()

	for _, cell := range ship.Cells() {
		for _, d := range neighbourhood {
			cur := NewCoordinates(cell.X+d[0], cell.Y+d[1])
			if b.IsOutOfBounds(cur) || busy.Has(cur) {
				continue
			}
			if mark && !ship.Occupies(cur) {
				b.grid[cur.X][cur.Y] = CellContour
			}
			busy.Put(cur, struct{}{})
		}
	}
}

func (b *Board) AddShip(ship *Ship) error {
	if b.phase != PhasePlacement {
		return cerr.ErrPlacementOutsidePhase()
	}

	if ship.length < 1 {
		return cerr.ErrShipPlacement(ship.bow.X, ship.bow.Y, ship.length)
	}

	cells := ship.Cells()
	for _, cell := range cells {
		if b.IsOutOfBounds(cell) || b.reserved.Has(cell) {
			return cerr.ErrShipPlacement(ship.bow.X, ship.bow.Y, ship.length)
		}
	}

	for _, cell := range cells {
		b.grid[cell.X][cell.Y] = CellShip
		b.reserved.Put(cell, struct{}{})
	}

	b.ships = append(b.ships, ship)
	b.exclusionZone(ship, false)
	return nil
}

// BeginBattle drops the placement bookkeeping and starts with no targeted
// cells, so that water next to ships can still be shot at.
func (b *Board) BeginBattle() {
	b.phase = PhaseBattle
	b.reserved = nil
	b.targeted = swiss.NewMap[Coordinates, struct{}](uint32(b.size * b.size))
}

func (b *Board) Shoot(c Coordinates) (Outcome, error) {
	if b.IsOutOfBounds(c) {
		return OutcomeMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	// The first shot closes placement on boards set up by hand.
	if b.phase != PhaseBattle {
		b.BeginBattle()
	}
	if b.targeted.Has(c) {
		return OutcomeMiss, cerr.ErrPositionAlreadyTargeted(c.X, c.Y)
	}

	b.targeted.Put(c, struct{}{})

	for _, ship := range b.ships {
		if ship.IsSunk() || !ship.Occupies(c) {
			continue
		}

		ship.GotHit()
		b.grid[c.X][c.Y] = CellHit
		if ship.IsSunk() {
			b.destroyed++
			b.exclusionZone(ship, true)
			return OutcomeSunk, nil
		}
		return OutcomeHit, nil
	}

	b.grid[c.X][c.Y] = CellMiss
	return OutcomeMiss, nil
}
