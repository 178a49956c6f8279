package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type PlayerKind uint8

const (
	PlayerHuman PlayerKind = iota
	PlayerAutomated
)

func (k PlayerKind) String() string {
	if k == PlayerAutomated {
		return "automated"
	}
	return "human"
}

// Targeter picks the next coordinates to shoot at on the enemy board.
type Targeter interface {
	Ask(enemy *Board) (Coordinates, error)
}

type AutomatedTargeter struct {
	rnd Random
}

var _ Targeter = (*AutomatedTargeter)(nil)

func NewAutomatedTargeter(rnd Random) *AutomatedTargeter {
	return &AutomatedTargeter{rnd: rnd}
}

// Ask draws uniformly from the whole board. Cells already shot at are
// rejected by the board and drawn again by Player.Move.
func (a *AutomatedTargeter) Ask(enemy *Board) (Coordinates, error) {
	return NewCoordinates(a.rnd.Intn(enemy.Size()), a.rnd.Intn(enemy.Size())), nil
}

// CoordinateSource yields 1-indexed (row, column) pairs entered by a person.
// Reject is called with the reason a pair could not be used.
type CoordinateSource interface {
	NextCoordinates() (x, y int, err error)
	Reject(err error)
}

type HumanTargeter struct {
	source CoordinateSource
}

var _ Targeter = (*HumanTargeter)(nil)

func NewHumanTargeter(source CoordinateSource) *HumanTargeter {
	return &HumanTargeter{source: source}
}

func (h *HumanTargeter) Ask(enemy *Board) (Coordinates, error) {
	for {
		x, y, err := h.source.NextCoordinates()
		if err != nil {
			return Coordinates{}, err
		}
		if x < 1 || y < 1 {
			h.source.Reject(cerr.ErrInputNotPositive(x, y))
			continue
		}
		return NewCoordinates(x-1, y-1), nil
	}
}

type Player struct {
	kind     PlayerKind
	board    *Board
	enemy    *Board
	targeter Targeter
	notify   func(Event)
}

func NewPlayer(kind PlayerKind, board, enemy *Board, targeter Targeter) *Player {
	return &Player{
		kind:     kind,
		board:    board,
		enemy:    enemy,
		targeter: targeter,
		notify:   func(Event) {},
	}
}

func (p *Player) Kind() PlayerKind {
	return p.kind
}

func (p *Player) Board() *Board {
	return p.board
}

func (p *Player) Enemy() *Board {
	return p.enemy
}

// Move keeps asking for targets until one can legally be shot and returns
// the outcome of that shot. Rejected targets do not use up the turn.
func (p *Player) Move() (Coordinates, Outcome, error) {
	for {
		target, err := p.targeter.Ask(p.enemy)
		if err != nil {
			return Coordinates{}, OutcomeMiss, err
		}

		outcome, err := p.enemy.Shoot(target)
		if err == nil {
			return target, outcome, nil
		}

		if errors.Is(err, cerr.ErrOutOfBounds) || errors.Is(err, cerr.ErrAlreadyTargeted) {
			p.notify(Event{Kind: EventShotRejected, Player: p.kind, Target: target, Err: err})
			continue
		}
		return Coordinates{}, OutcomeMiss, err
	}
}
