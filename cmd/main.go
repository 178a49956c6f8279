package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal/config"
	"github.com/saeidalz13/battleship-solo/internal/terminal"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

func main() {
	if err := run(); err != nil {
		log.Fatal("battleship stopped", "err", err)
	}
}

// run plays games until the human declines a rematch or input ends.
// Everything it opens is released before it returns.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed := cfg.SeedOrNow()
	rnd := rand.New(rand.NewSource(seed))
	log.Debug("random source seeded", "seed", seed, "stage", cfg.Stage)

	var observers []mb.Observer

	if cfg.DatabaseUrl != "" {
		dbConn := db.MustConnectToDb(cfg.DatabaseUrl)
		defer dbConn.Close()
		observers = append(observers, sqlc.NewAnalyticsManager(sqlc.New(dbConn)))
	}

	if cfg.SpectatorPort != "" {
		ssm := mc.NewSpectatorSessionManager()
		server, err := api.NewServer(ssm, api.WithPort(cfg.SpectatorPort), api.WithStage(cfg.Stage))
		if err != nil {
			return fmt.Errorf("failed to create spectator server: %w", err)
		}

		go ssm.CleanupPeriodically(ctx)
		go func() {
			if err := server.ListenAndServe(); err != nil {
				log.Error("spectator feed stopped", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*5)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		observers = append(observers, ssm)
	}

	placer := mb.NewPlacer(rnd, mb.WithMaxRegenerations(cfg.MaxBoardRegenerations))
	gameManager := mb.NewBattleshipGameManager(placer)
	prompt := terminal.NewPrompt(os.Stdin, os.Stdout)

	terminal.Greet(os.Stdout)

	for {
		game, err := gameManager.CreateGame(
			mb.NewHumanTargeter(prompt),
			terminal.NewThinkingTargeter(mb.NewAutomatedTargeter(rnd), os.Stdout, cfg.ThinkDelay),
			mb.WithObservers(observers...),
		)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		game.AddObserver(terminal.NewRenderer(os.Stdout, game))
		log.Debug("game created", "game", game.Uuid())

		state, err := game.Run()
		gameManager.TerminateGame(game.Uuid())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("game %s stopped: %w", game.Uuid(), err)
		}
		log.Debug("game finished", "game", game.Uuid(), "state", state, "moves", game.Moves())

		again, err := prompt.Confirm("Play again?")
		if err != nil || !again {
			return nil
		}
	}
}
