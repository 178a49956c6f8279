package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	defaultMaxShipAttempts  = 2000
	defaultMaxRegenerations = 1000
)

// Fleet is the ordered list of ship lengths placed on every board.
type Fleet []int

var DefaultFleet = Fleet{3, 2, 2, 1, 1, 1, 1}

// Cells returns the total number of cells the fleet occupies.
func (f Fleet) Cells() int {
	total := 0
	for _, length := range f {
		total += length
	}
	return total
}

type Placer struct {
	rnd              Random
	maxShipAttempts  int
	maxRegenerations int
}

type PlacerOption func(*Placer)

func NewPlacer(rnd Random, opts ...PlacerOption) *Placer {
	p := &Placer{
		rnd:              rnd,
		maxShipAttempts:  defaultMaxShipAttempts,
		maxRegenerations: defaultMaxRegenerations,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithMaxShipAttempts bounds the random placements tried for one board.
func WithMaxShipAttempts(attempts int) PlacerOption {
	return func(p *Placer) {
		if attempts > 0 {
			p.maxShipAttempts = attempts
		}
	}
}

// WithMaxRegenerations bounds how many boards are thrown away before
// RandomBoard gives up. Without a bound an unlucky fleet/grid combination
// could keep regenerating forever.
func WithMaxRegenerations(regenerations int) PlacerOption {
	return func(p *Placer) {
		if regenerations > 0 {
			p.maxRegenerations = regenerations
		}
	}
}

// TryPlace makes a single attempt at arranging the fleet on an empty board.
// The attempt budget is shared by all ships of the board.
func (p *Placer) TryPlace(size int, fleet Fleet) (*Board, error) {
	board := NewBoard(size)
	attempts := 0

	for _, length := range fleet {
		for {
			attempts++
			if attempts > p.maxShipAttempts {
				return nil, cerr.ErrPlacementBudget(p.maxShipAttempts)
			}

			bow := NewCoordinates(p.rnd.Intn(size), p.rnd.Intn(size))
			orientation := Orientation(p.rnd.Intn(2))

			err := board.AddShip(NewShip(bow, length, orientation))
			if err == nil {
				break
			}
			if !errors.Is(err, cerr.ErrWrongPlacement) {
				return nil, err
			}
		}
	}
	return board, nil
}

// RandomBoard regenerates boards until the fleet fits, then opens the
// board for battle.
func (p *Placer) RandomBoard(size int, fleet Fleet) (*Board, error) {
	for i := 0; i < p.maxRegenerations; i++ {
		board, err := p.TryPlace(size, fleet)
		if err != nil {
			if errors.Is(err, cerr.ErrPlacementAttemptsExceeded) {
				continue
			}
			return nil, err
		}

		board.BeginBattle()
		return board, nil
	}
	return nil, cerr.ErrBoardGeneration(p.maxRegenerations)
}
