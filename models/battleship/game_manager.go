package battleship

import (
	"sync"

	"github.com/google/uuid"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type GameManager interface {
	CreateGame(humanTargeter, automatedTargeter Targeter, opts ...GameOption) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	Games() int
}

type BattleshipGameManager struct {
	placer *Placer
	games  map[string]*Game
	mu     sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(placer *Placer) *BattleshipGameManager {
	return &BattleshipGameManager{
		placer: placer,
		games:  make(map[string]*Game, 10),
	}
}

// CreateGame places the game's fleet at random on both boards. The
// automated player's board is hidden from the human.
func (bgm *BattleshipGameManager) CreateGame(humanTargeter, automatedTargeter Targeter, opts ...GameOption) (*Game, error) {
	fleet := fleetOf(opts)

	humanBoard, err := bgm.placer.RandomBoard(GridSize, fleet)
	if err != nil {
		return nil, err
	}

	automatedBoard, err := bgm.placer.RandomBoard(GridSize, fleet)
	if err != nil {
		return nil, err
	}
	automatedBoard.SetHidden(true)

	gameUuid := uuid.NewString()[:6]
	game := NewGame(gameUuid, humanBoard, automatedBoard, humanTargeter, automatedTargeter, opts...)

	bgm.mu.Lock()
	bgm.games[gameUuid] = game
	bgm.mu.Unlock()

	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExist(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) Games() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
