package battleship

type EventKind uint8

const (
	EventGameStarted EventKind = iota
	EventTurn
	EventShot
	EventShotRejected
	EventGameOver
)

// Event describes something that happened in a game. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind     EventKind
	GameUuid string
	State    State
	Player   PlayerKind
	Target   Coordinates
	Outcome  Outcome
	Moves    int
	Fleet    Fleet
	Err      error

	// Ships destroyed so far on each side's board
	HumanDestroyed     int
	AutomatedDestroyed int
}

// Observer is notified of game events. Observers are called synchronously
// from the game loop.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
