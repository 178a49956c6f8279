package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type State uint8

const (
	StateHumanTurn State = iota
	StateAutomatedTurn
	StateHumanWon
	StateAutomatedWon
)

func (s State) IsFinished() bool {
	return s == StateHumanWon || s == StateAutomatedWon
}

func (s State) String() string {
	switch s {
	case StateHumanTurn:
		return "human turn"
	case StateAutomatedTurn:
		return "automated turn"
	case StateHumanWon:
		return "human won"
	case StateAutomatedWon:
		return "automated won"
	default:
		return "unknown"
	}
}

type Game struct {
	uuid      string
	state     State
	moves     int
	fleet     Fleet
	human     *Player
	automated *Player
	observers []Observer
}

type GameOption func(*Game)

// WithFleet sets the fleet the game is won against. Boards built by a
// GameManager are generated from it.
func WithFleet(fleet Fleet) GameOption {
	return func(g *Game) {
		if len(fleet) > 0 {
			g.fleet = fleet
		}
	}
}

// fleetOf returns the fleet a game created with opts is played with.
func fleetOf(opts []GameOption) Fleet {
	g := &Game{fleet: DefaultFleet}
	for _, opt := range opts {
		opt(g)
	}
	return g.fleet
}

func WithObservers(observers ...Observer) GameOption {
	return func(g *Game) {
		g.observers = append(g.observers, observers...)
	}
}

// NewGame cross-wires the two boards: each player shoots at the other's board.
func NewGame(uuid string, humanBoard, automatedBoard *Board, humanTargeter, automatedTargeter Targeter, opts ...GameOption) *Game {
	g := &Game{
		uuid:      uuid,
		state:     StateHumanTurn,
		fleet:     DefaultFleet,
		human:     NewPlayer(PlayerHuman, humanBoard, automatedBoard, humanTargeter),
		automated: NewPlayer(PlayerAutomated, automatedBoard, humanBoard, automatedTargeter),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.human.notify = g.notify
	g.automated.notify = g.notify
	return g
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Fleet() Fleet {
	return g.fleet
}

func (g *Game) Human() *Player {
	return g.human
}

func (g *Game) Automated() *Player {
	return g.automated
}

func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

func (g *Game) notify(e Event) {
	e.GameUuid = g.uuid
	e.State = g.state
	e.Moves = g.moves
	e.Fleet = g.fleet
	e.HumanDestroyed = g.human.board.Destroyed()
	e.AutomatedDestroyed = g.automated.board.Destroyed()
	for _, o := range g.observers {
		o.Observe(e)
	}
}

func (g *Game) activePlayer() *Player {
	if g.state == StateAutomatedTurn {
		return g.automated
	}
	return g.human
}

// Step resolves one move of the active player and advances the state.
func (g *Game) Step() (State, error) {
	if g.state.IsFinished() {
		return g.state, cerr.ErrGameIsFinished(g.uuid)
	}

	player := g.activePlayer()
	g.notify(Event{Kind: EventTurn, Player: player.kind})

	target, outcome, err := player.Move()
	if err != nil {
		return g.state, err
	}
	g.moves++

	if !outcome.FireAgain() {
		if g.state == StateHumanTurn {
			g.state = StateAutomatedTurn
		} else {
			g.state = StateHumanTurn
		}
	}

	switch {
	case g.automated.board.Destroyed() == len(g.fleet):
		g.state = StateHumanWon
	case g.human.board.Destroyed() == len(g.fleet):
		g.state = StateAutomatedWon
	}

	g.notify(Event{Kind: EventShot, Player: player.kind, Target: target, Outcome: outcome})
	if g.state.IsFinished() {
		g.notify(Event{Kind: EventGameOver, Player: player.kind})
	}
	return g.state, nil
}

// Run plays the game to the end.
func (g *Game) Run() (State, error) {
	g.notify(Event{Kind: EventGameStarted})

	for !g.state.IsFinished() {
		if _, err := g.Step(); err != nil {
			return g.state, err
		}
	}
	return g.state, nil
}
