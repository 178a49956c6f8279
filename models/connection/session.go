package connection

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     uint8         = 2
	writeWait         time.Duration = time.Second * 5

	// Frames a spectator may fall behind by before it is dropped
	outboxSize int = 64
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

type outboundMessage struct {
	msg     interface{}
	msgType uint8
}

// Session is a single spectator connection. Spectators only receive
// messages; anything they send is read and dropped.
//
// Outgoing frames are queued on outbox and written by writePump, which
// is the only writer of conn. The game never waits on a spectator.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time

	outbox    chan outboundMessage
	done      chan struct{}
	closeOnce sync.Once
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		outbox:    make(chan outboundMessage, outboxSize),
		done:      make(chan struct{}),
	}
}

func (s *Session) Id() string {
	return s.id
}

// enqueue hands msg to the write pump without blocking. It reports false
// when the session is closed or its outbox is full.
func (s *Session) enqueue(msg interface{}, msgType uint8) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.outbox <- outboundMessage{msg: msg, msgType: msgType}:
		return true
	default:
		return false
	}
}

// writePump writes queued frames until the session is closed. onFail is
// called once if a frame cannot be written.
func (s *Session) writePump(onFail func(err error)) {
	for {
		select {
		case <-s.done:
			return

		case out := <-s.outbox:
			if err := s.writeToConnWithRetry(out.msg, out.msgType); err != nil {
				onFail(err)
				return
			}
		}
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.conn != nil {
			_ = s.conn.Close()
		}
	})
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Warn("timeout error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Warn("high server load/traffic error", "session", s.id, "err", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Debug("close error", "session", s.id, "err", err)
		return ConnLoopBreak
	}

	log.Error("unexpected error", "session", s.id, "err", err)
	return ConnLoopBreak
}

// Writes to the connection of that session and retries
// timeouts with a linear back off.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

writeLoop:
	for {
		var err error
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWriteWsRetries {
			retries++
			log.Warn("writing to ws failed; retrying", "session", s.id, "retry", retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			continue writeLoop
		}
		return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
	}
}

// Handles the errors that occur when reading from
// the ws connection.
func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries < maxWriteWsRetries {
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		return ConnLoopBreak
	}
}
