package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		x, y        int
		expectedErr error
	}{
		{name: "valid", line: "3 4", x: 3, y: 4},
		{name: "extra spaces", line: "  1    6 ", x: 1, y: 6},
		{name: "zero passes through", line: "0 2", x: 0, y: 2},
		{name: "one value", line: "3", expectedErr: cerr.ErrCoordinateCount},
		{name: "three values", line: "1 2 3", expectedErr: cerr.ErrCoordinateCount},
		{name: "letters", line: "a 2", expectedErr: cerr.ErrCoordinateNotNumber},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			x, y, err := ParseCoordinates(test.line)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.ErrorIs(t, err, cerr.ErrMalformedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.x, x)
			assert.Equal(t, test.y, y)
		})
	}
}

func TestPrompt_NextCoordinates(t *testing.T) {
	var out bytes.Buffer
	prompt := NewPrompt(strings.NewReader("hello\n1 b\n2 5\n"), &out)

	x, y, err := prompt.NextCoordinates()
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 5, y)
	assert.Contains(t, out.String(), "Enter 2 coordinates!")
	assert.Contains(t, out.String(), "Enter numbers!")

	_, _, err = prompt.NextCoordinates()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt_WithHumanTargeter(t *testing.T) {
	var out bytes.Buffer
	targeter := mb.NewHumanTargeter(NewPrompt(strings.NewReader("0 1\n6 6\n"), &out))

	target, err := targeter.Ask(mb.NewBoard(mb.GridSize))
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(5, 5), target)
	assert.Contains(t, out.String(), "Coordinates start at 1!")
}

func TestPrompt_Confirm(t *testing.T) {
	prompt := NewPrompt(strings.NewReader("Y\nnope\n"), io.Discard)

	yes, err := prompt.Confirm("Play again?")
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = prompt.Confirm("Play again?")
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestFormatBoard(t *testing.T) {
	board := mb.NewBoard(3)
	require.NoError(t, board.AddShip(mb.NewShip(mb.NewCoordinates(0, 0), 1, mb.OrientationHorizontal)))
	_, err := board.Shoot(mb.NewCoordinates(2, 2))
	require.NoError(t, err)

	expected := "  | 1 | 2 | 3 |\n" +
		"1 | ■ | O | O |\n" +
		"2 | O | O | O |\n" +
		"3 | O | O | T |"
	assert.Equal(t, expected, FormatBoard(board))

	board.SetHidden(true)
	assert.True(t, strings.HasPrefix(strings.Split(FormatBoard(board), "\n")[1], "1 | O |"))

	_, err = board.Shoot(mb.NewCoordinates(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "1 | X | . | O |", strings.Split(FormatBoard(board), "\n")[1])
}

type fixedTargeter struct {
	target mb.Coordinates
}

func (f fixedTargeter) Ask(*mb.Board) (mb.Coordinates, error) {
	return f.target, nil
}

func TestThinkingTargeter(t *testing.T) {
	var out bytes.Buffer
	var slept time.Duration

	thinking := NewThinkingTargeter(fixedTargeter{target: mb.NewCoordinates(1, 4)}, &out, time.Second*4)
	thinking.sleep = func(d time.Duration) { slept += d }

	target, err := thinking.Ask(mb.NewBoard(mb.GridSize))
	require.NoError(t, err)
	assert.Equal(t, mb.NewCoordinates(1, 4), target)
	assert.Equal(t, time.Second*4, slept)
	assert.Contains(t, out.String(), "Computer's move: 2 5")
}

func TestRenderer_Observe(t *testing.T) {
	humanBoard := mb.NewBoard(mb.GridSize)
	automatedBoard := mb.NewBoard(mb.GridSize)
	game := mb.NewGame("test", humanBoard, automatedBoard, fixedTargeter{}, fixedTargeter{})

	var out bytes.Buffer
	renderer := NewRenderer(&out, game)

	renderer.Observe(mb.Event{Kind: mb.EventTurn, Player: mb.PlayerHuman})
	assert.Contains(t, out.String(), "Your board:")
	assert.Contains(t, out.String(), "Your move!")

	out.Reset()
	renderer.Observe(mb.Event{Kind: mb.EventShotRejected, Player: mb.PlayerHuman, Err: cerr.ErrXorYOutOfGridBound(7, 7)})
	renderer.Observe(mb.Event{Kind: mb.EventShotRejected, Player: mb.PlayerHuman, Err: cerr.ErrPositionAlreadyTargeted(1, 1)})
	renderer.Observe(mb.Event{Kind: mb.EventShotRejected, Player: mb.PlayerAutomated, Err: errors.New("ignored")})
	assert.Equal(t, "You are trying to shoot outside the board!\nYou have already shot at this cell!\n", out.String())

	out.Reset()
	renderer.Observe(mb.Event{Kind: mb.EventShot, Outcome: mb.OutcomeSunk})
	renderer.Observe(mb.Event{Kind: mb.EventShot, Outcome: mb.OutcomeHit})
	renderer.Observe(mb.Event{Kind: mb.EventShot, Outcome: mb.OutcomeMiss})
	assert.Equal(t, "Ship destroyed!\nShip hit!\nMiss!\n", out.String())

	out.Reset()
	renderer.Observe(mb.Event{Kind: mb.EventGameOver, State: mb.StateAutomatedWon})
	assert.Contains(t, out.String(), "The computer won!")
}
