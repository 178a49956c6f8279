package sqlc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sqlc-dev/pqtype"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const QuerierCtxTimeout = time.Second * 10

type GameSummary struct {
	Fleet              []int `json:"fleet"`
	HumanDestroyed     int   `json:"human_destroyed"`
	AutomatedDestroyed int   `json:"automated_destroyed"`
}

type AnalyticsManager struct {
	queries Querier
}

var _ mb.Observer = (*AnalyticsManager)(nil)

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesStarted(ctx context.Context) error {
	return a.queries.IncrementGamesStarted(ctx)
}

// RecordGameResult stores the outcome of a finished game and bumps the win
// counter of the winning side.
func (a *AnalyticsManager) RecordGameResult(ctx context.Context, gameUuid string, state mb.State, moves int, summary GameSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	winner := mb.PlayerHuman
	if state == mb.StateAutomatedWon {
		winner = mb.PlayerAutomated
	}

	if err := a.queries.CreateGameResult(ctx, CreateGameResultParams{
		GameUuid: gameUuid,
		Winner:   winner.String(),
		Moves:    int32(moves),
		Summary:  pqtype.NullRawMessage{RawMessage: summaryJSON, Valid: true},
	}); err != nil {
		return err
	}

	if winner == mb.PlayerAutomated {
		return a.queries.IncrementAutomatedWins(ctx)
	}
	return a.queries.IncrementHumanWins(ctx)
}

func (a *AnalyticsManager) GetGameAnalytics(ctx context.Context) (GameAnalytic, error) {
	return a.queries.GetGameAnalytics(ctx)
}

func (a *AnalyticsManager) GetGameResult(ctx context.Context, gameUuid string) (GameResult, error) {
	return a.queries.GetGameResult(ctx, gameUuid)
}

// Observe records analytics for started and finished games. Failures are
// logged; a game is never stopped because analytics could not be written.
func (a *AnalyticsManager) Observe(e mb.Event) {
	switch e.Kind {
	case mb.EventGameStarted:
		ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
		defer cancel()

		if err := a.IncrementGamesStarted(ctx); err != nil {
			log.Error("failed to record game start", "game", e.GameUuid, "err", err)
		}

	case mb.EventGameOver:
		ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
		defer cancel()

		summary := GameSummary{
			Fleet:              e.Fleet,
			HumanDestroyed:     e.HumanDestroyed,
			AutomatedDestroyed: e.AutomatedDestroyed,
		}
		if err := a.RecordGameResult(ctx, e.GameUuid, e.State, e.Moves, summary); err != nil {
			log.Error("failed to record game result", "game", e.GameUuid, "err", err)
		}
	}
}
