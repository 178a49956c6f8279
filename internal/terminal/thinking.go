package terminal

import (
	"fmt"
	"io"
	"time"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const thinkingDots = 4

// ThinkingTargeter pauses and prints a small animation before passing on
// the automated player's choice.
type ThinkingTargeter struct {
	inner mb.Targeter
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

var _ mb.Targeter = (*ThinkingTargeter)(nil)

func NewThinkingTargeter(inner mb.Targeter, out io.Writer, delay time.Duration) *ThinkingTargeter {
	return &ThinkingTargeter{
		inner: inner,
		out:   out,
		delay: delay,
		sleep: time.Sleep,
	}
}

func (t *ThinkingTargeter) Ask(enemy *mb.Board) (mb.Coordinates, error) {
	target, err := t.inner.Ask(enemy)
	if err != nil {
		return target, err
	}

	fmt.Fprint(t.out, "Computer is thinking. .")
	for i := 0; i < thinkingDots; i++ {
		t.sleep(t.delay / thinkingDots)
		fmt.Fprint(t.out, " . .")
	}
	fmt.Fprintf(t.out, "\nComputer's move: %d %d\n", target.X+1, target.Y+1)
	return target, nil
}
