package connection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func TestNewEventMessage(t *testing.T) {
	tests := []struct {
		name         string
		event        mb.Event
		expectedCode uint8
	}{
		{
			name:         "game started",
			event:        mb.Event{Kind: mb.EventGameStarted, GameUuid: "g1", Fleet: mb.Fleet{2, 1, 1}},
			expectedCode: CodeGameStarted,
		},
		{
			name:         "turn",
			event:        mb.Event{Kind: mb.EventTurn, Player: mb.PlayerAutomated},
			expectedCode: CodeTurn,
		},
		{
			name:         "shot",
			event:        mb.Event{Kind: mb.EventShot, Outcome: mb.OutcomeHit},
			expectedCode: CodeShot,
		},
		{
			name:         "game over",
			event:        mb.Event{Kind: mb.EventGameOver, State: mb.StateHumanWon},
			expectedCode: CodeGameOver,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg, ok := NewEventMessage(test.event)
			require.True(t, ok)

			switch m := msg.(type) {
			case Message[RespGameStarted]:
				assert.Equal(t, test.expectedCode, m.Code)
				assert.Equal(t, mb.GridSize, m.Payload.GridSize)
				assert.Equal(t, []int{2, 1, 1}, m.Payload.Fleet)
			case Message[RespTurn]:
				assert.Equal(t, test.expectedCode, m.Code)
				assert.Equal(t, "automated", m.Payload.Player)
			case Message[RespShot]:
				assert.Equal(t, test.expectedCode, m.Code)
				assert.True(t, m.Payload.FireAgain)
			case Message[RespEndGame]:
				assert.Equal(t, test.expectedCode, m.Code)
				assert.Equal(t, "human won", m.Payload.State)
			default:
				t.Fatalf("unexpected message type %T", msg)
			}
		})
	}
}

func TestNewEventMessageRejectedShot(t *testing.T) {
	msg, ok := NewEventMessage(mb.Event{
		Kind:   mb.EventShotRejected,
		Target: mb.NewCoordinates(9, 9),
		Err:    errors.New("shot is outside of the board"),
	})
	require.True(t, ok)

	m, ok := msg.(Message[RespShot])
	require.True(t, ok)
	assert.Equal(t, CodeShotRejected, m.Code)
	require.NotNil(t, m.Error)
	assert.Equal(t, "shot is outside of the board", m.Error.ErrorDetails)
}
