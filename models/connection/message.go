package connection

import (
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

type Message[T any] struct {
	Code    uint8    `json:"code"`
	Payload T        `json:"payload,omitempty"`
	Error   *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

// NewEventMessage translates a game event into the message sent to
// spectators. The second return value is false for events spectators
// are not told about.
func NewEventMessage(e mb.Event) (interface{}, bool) {
	switch e.Kind {
	case mb.EventGameStarted:
		msg := NewMessage[RespGameStarted](CodeGameStarted)
		msg.AddPayload(RespGameStarted{
			GameUuid: e.GameUuid,
			GridSize: mb.GridSize,
			Fleet:    e.Fleet,
		})
		return msg, true

	case mb.EventTurn:
		msg := NewMessage[RespTurn](CodeTurn)
		msg.AddPayload(RespTurn{GameUuid: e.GameUuid, Player: e.Player.String()})
		return msg, true

	case mb.EventShot:
		msg := NewMessage[RespShot](CodeShot)
		msg.AddPayload(RespShot{
			GameUuid:             e.GameUuid,
			Player:               e.Player.String(),
			X:                    e.Target.X,
			Y:                    e.Target.Y,
			Outcome:              e.Outcome.String(),
			FireAgain:            e.Outcome.FireAgain(),
			State:                e.State.String(),
			SunkenShipsHuman:     e.HumanDestroyed,
			SunkenShipsAutomated: e.AutomatedDestroyed,
		})
		return msg, true

	case mb.EventShotRejected:
		msg := NewMessage[RespShot](CodeShotRejected)
		msg.AddPayload(RespShot{
			GameUuid: e.GameUuid,
			Player:   e.Player.String(),
			X:        e.Target.X,
			Y:        e.Target.Y,
			State:    e.State.String(),
		})
		if e.Err != nil {
			msg.AddError(e.Err.Error(), "shot rejected")
		}
		return msg, true

	case mb.EventGameOver:
		msg := NewMessage[RespEndGame](CodeGameOver)
		msg.AddPayload(RespEndGame{
			GameUuid:             e.GameUuid,
			Winner:               e.Player.String(),
			State:                e.State.String(),
			SunkenShipsHuman:     e.HumanDestroyed,
			SunkenShipsAutomated: e.AutomatedDestroyed,
		})
		return msg, true
	}

	return nil, false
}
