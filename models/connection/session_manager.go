package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) (*Session, error)
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	WriteToSession(sessionId string, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	Broadcast(msg interface{}, msgType uint8)
	CleanupPeriodically(ctx context.Context)
	Sessions() int
}

// SpectatorSessionManager keeps track of everyone watching the game and
// forwards every game event to them.
type SpectatorSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var (
	_ SessionManager = (*SpectatorSessionManager)(nil)
	_ mb.Observer    = (*SpectatorSessionManager)(nil)
)

func NewSpectatorSessionManager() *SpectatorSessionManager {
	initMapSize := 10

	return &SpectatorSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

// GenerateNewSession registers conn as a spectator and starts its write
// pump. The session id frame is queued before any game event can be.
func (ssm *SpectatorSessionManager) GenerateNewSession(conn *websocket.Conn) (*Session, error) {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	resp := NewMessage[RespSessionId](CodeSessionID)
	resp.AddPayload(RespSessionId{SessionID: sessionId})
	respBytes, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	session.enqueue(respBytes, MessageTypeBytes)

	ssm.mu.Lock()
	ssm.sessions[sessionId] = session
	ssm.mu.Unlock()

	go session.writePump(func(err error) {
		log.Warn("dropping spectator", "session", sessionId, "err", err)
		ssm.TerminateSession(sessionId)
	})
	return session, nil
}

func (ssm *SpectatorSessionManager) FindSession(sessionId string) (*Session, error) {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()

	session, prs := ssm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}
	return session, nil
}

func (ssm *SpectatorSessionManager) TerminateSession(sessionId string) {
	ssm.mu.Lock()
	session, prs := ssm.sessions[sessionId]
	delete(ssm.sessions, sessionId)
	ssm.mu.Unlock()

	if prs {
		session.close()
	}
}

func (ssm *SpectatorSessionManager) Sessions() int {
	ssm.mu.RLock()
	defer ssm.mu.RUnlock()
	return len(ssm.sessions)
}

// WriteToSession queues msg for the spectator with the given id.
func (ssm *SpectatorSessionManager) WriteToSession(sessionId string, msg interface{}, msgType uint8) error {
	session, err := ssm.FindSession(sessionId)
	if err != nil {
		return err
	}

	if !session.enqueue(msg, msgType) {
		return cerr.ErrSessionOutboxFull(sessionId, len(session.outbox))
	}
	return nil
}

func (ssm *SpectatorSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if session.handleReadFromConnErr(err, retries) == ConnLoopContinue {
			retries++
			continue
		}
		return -1, []byte{}, err
	}
}

// Broadcast queues msg for every spectator and returns without waiting for
// the writes. Spectators that have fallen too far behind are dropped.
func (ssm *SpectatorSessionManager) Broadcast(msg interface{}, msgType uint8) {
	ssm.mu.RLock()
	sessionIds := make([]string, 0, len(ssm.sessions))
	for id := range ssm.sessions {
		sessionIds = append(sessionIds, id)
	}
	ssm.mu.RUnlock()

	for _, id := range sessionIds {
		err := ssm.WriteToSession(id, msg, msgType)
		if err == nil || errors.Is(err, cerr.ErrSessionNotExists) {
			continue
		}

		log.Warn("dropping spectator", "session", id, "err", err)
		ssm.TerminateSession(id)
	}
}

// Observe forwards game events to the spectators.
func (ssm *SpectatorSessionManager) Observe(e mb.Event) {
	msg, ok := NewEventMessage(e)
	if !ok {
		return
	}
	ssm.Broadcast(msg, MessageTypeJSON)
}

// To ensure that there is no dangling connections,
// the session manager marks the connections with a
// lifetime of more than 20 mins as stale and deletes them.
func (ssm *SpectatorSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(ssm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			ssm.mu.RLock()
			toDelete := make([]string, 0, len(ssm.sessions))
			for id, session := range ssm.sessions {
				if time.Since(session.createdAt) > ssm.cleanupInterval {
					toDelete = append(toDelete, id)
				}
			}
			ssm.mu.RUnlock()

			for _, id := range toDelete {
				ssm.TerminateSession(id)
				log.Debug("removed stale spectator session", "session", id)
			}
		}
	}
}
