package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	WatchPath         = "/battleship/watch"
	readHeaderTimeout = time.Second * 5
)

var defaultPort = "9191"

type Server struct {
	port           string
	stage          string
	SessionManager mc.SessionManager
	httpServer     *http.Server
}

type Option func(*Server) error

func NewServer(sessionManager mc.SessionManager, optFuncs ...Option) (*Server, error) {
	server := Server{SessionManager: sessionManager, stage: StageDev}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}
	if server.port == "" {
		server.port = defaultPort
	}

	server.httpServer = &http.Server{
		Addr:              "0.0.0.0:" + server.port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return &server, nil
}

func WithPort(port string) Option {
	return func(s *Server) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func (s *Server) Port() string {
	return s.port
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET "+WatchPath, NewRequestProcessor(s.SessionManager))
	return mux
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	log.Info("spectator feed listening", "port", s.port, "stage", s.stage, "path", WatchPath)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
