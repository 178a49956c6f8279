package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// spectators only receive small JSON frames
	ReadBufferSize:  1024,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RequestProcessor upgrades spectator requests and keeps their
// connections open until they leave.
type RequestProcessor struct {
	sessionManager mc.SessionManager
}

func NewRequestProcessor(sessionManager mc.SessionManager) RequestProcessor {
	return RequestProcessor{sessionManager: sessionManager}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade spectator connection", "err", err)
		return
	}

	session, err := rp.sessionManager.GenerateNewSession(conn)
	if err != nil {
		log.Error("could not start spectator session", "err", err)
		_ = conn.Close()
		return
	}

	log.Info("a new spectator connected", "remote_addr", conn.RemoteAddr().String(), "session", session.Id())
	rp.processSessionRequests(session)
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()
	defer rp.sessionManager.TerminateSession(sessionId)

	// Spectators have nothing to say. Reading keeps control frames
	// flowing and tells us when they leave.
	for {
		if _, _, err := rp.sessionManager.ReadFromSessionConn(session); err != nil {
			log.Debug("spectator left", "session", sessionId, "err", err)
			return
		}
	}
}
