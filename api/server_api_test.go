package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

var dialer = websocket.Dialer{
	HandshakeTimeout: 10 * time.Second,
}

func TestNewServerOptions(t *testing.T) {
	server, err := NewServer(mc.NewSpectatorSessionManager())
	require.NoError(t, err)
	assert.Equal(t, defaultPort, server.Port())

	server, err = NewServer(mc.NewSpectatorSessionManager(), WithPort("7171"), WithStage(StageProd))
	require.NoError(t, err)
	assert.Equal(t, "7171", server.Port())

	_, err = NewServer(mc.NewSpectatorSessionManager(), WithStage("staging"))
	assert.Error(t, err)
}

func TestSpectatorFeed(t *testing.T) {
	ssm := mc.NewSpectatorSessionManager()
	server, err := NewServer(ssm)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	wsUrl := "ws" + strings.TrimPrefix(ts.URL, "http") + WatchPath
	conn, _, err := dialer.Dial(wsUrl, nil)
	require.NoError(t, err)
	defer conn.Close()

	frameType, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, frameType)

	var respSessionId mc.Message[mc.RespSessionId]
	require.NoError(t, json.Unmarshal(frame, &respSessionId))
	assert.Equal(t, mc.CodeSessionID, respSessionId.Code)
	assert.NotEmpty(t, respSessionId.Payload.SessionID)
	assert.Equal(t, 1, ssm.Sessions())

	ssm.Observe(mb.Event{
		Kind:               mb.EventShot,
		GameUuid:           "abc123",
		State:              mb.StateHumanTurn,
		Player:             mb.PlayerHuman,
		Target:             mb.NewCoordinates(2, 3),
		Outcome:            mb.OutcomeSunk,
		AutomatedDestroyed: 1,
	})

	var respShot mc.Message[mc.RespShot]
	require.NoError(t, conn.ReadJSON(&respShot))
	assert.Equal(t, mc.CodeShot, respShot.Code)
	assert.Equal(t, mc.RespShot{
		GameUuid:             "abc123",
		Player:               "human",
		X:                    2,
		Y:                    3,
		Outcome:              "sunk",
		FireAgain:            true,
		State:                "human turn",
		SunkenShipsAutomated: 1,
	}, respShot.Payload)
}

func TestSpectatorLeaves(t *testing.T) {
	ssm := mc.NewSpectatorSessionManager()
	server, err := NewServer(ssm)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	conn, _, err := dialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+WatchPath, nil)
	require.NoError(t, err)

	var respSessionId mc.Message[mc.RespSessionId]
	require.NoError(t, conn.ReadJSON(&respSessionId))

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	assert.Eventually(t, func() bool { return ssm.Sessions() == 0 }, 5*time.Second, 50*time.Millisecond)
}
