package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const separator = "--------------------"

var cellSymbols = map[mb.Cell]string{
	mb.CellEmpty:   "O",
	mb.CellShip:    "■",
	mb.CellMiss:    "T",
	mb.CellHit:     "X",
	mb.CellContour: ".",
}

// FormatBoard draws the board with 1-indexed row and column headers.
// Ships on a hidden board are drawn as open water.
func FormatBoard(b *mb.Board) string {
	var sb strings.Builder

	sb.WriteString("  |")
	for y := 1; y <= b.Size(); y++ {
		fmt.Fprintf(&sb, " %d |", y)
	}

	for x := 0; x < b.Size(); x++ {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for y := 0; y < b.Size(); y++ {
			cell := b.Cell(mb.NewCoordinates(x, y))
			if b.Hidden() && cell == mb.CellShip {
				cell = mb.CellEmpty
			}
			fmt.Fprintf(&sb, " %s |", cellSymbols[cell])
		}
	}
	return sb.String()
}

// Renderer narrates a game on a terminal.
type Renderer struct {
	out       io.Writer
	human     *mb.Board
	automated *mb.Board
}

var _ mb.Observer = (*Renderer)(nil)

func NewRenderer(out io.Writer, game *mb.Game) *Renderer {
	return &Renderer{
		out:       out,
		human:     game.Human().Board(),
		automated: game.Automated().Board(),
	}
}

func Greet(out io.Writer) {
	fmt.Fprintln(out, "---------------------------------------------------------")
	fmt.Fprintln(out, "                      Welcome to                         ")
	fmt.Fprintln(out, "                      BATTLESHIP                         ")
	fmt.Fprintln(out, "---------------------------------------------------------")
	fmt.Fprintln(out, "  input format: x y, separated by a space, where          ")
	fmt.Fprintln(out, "  x is the row number and y is the column number         ")
	fmt.Fprintln(out, "---------------------------------------------------------")
}

func (r *Renderer) renderBoards() {
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, "Your board:")
	fmt.Fprintln(r.out, FormatBoard(r.human))
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, "Computer's board:")
	fmt.Fprintln(r.out, FormatBoard(r.automated))
}

func (r *Renderer) Observe(e mb.Event) {
	switch e.Kind {
	case mb.EventTurn:
		r.renderBoards()
		fmt.Fprintln(r.out, separator)
		if e.Player == mb.PlayerHuman {
			fmt.Fprintln(r.out, "Your move!")
		} else {
			fmt.Fprintln(r.out, "Computer's move!")
		}

	case mb.EventShot:
		switch e.Outcome {
		case mb.OutcomeSunk:
			fmt.Fprintln(r.out, "Ship destroyed!")
		case mb.OutcomeHit:
			fmt.Fprintln(r.out, "Ship hit!")
		default:
			fmt.Fprintln(r.out, "Miss!")
		}

	case mb.EventShotRejected:
		if e.Player != mb.PlayerHuman {
			log.Debug("automated shot rejected", "target", e.Target, "err", e.Err)
			return
		}
		switch {
		case errors.Is(e.Err, cerr.ErrOutOfBounds):
			fmt.Fprintln(r.out, "You are trying to shoot outside the board!")
		case errors.Is(e.Err, cerr.ErrAlreadyTargeted):
			fmt.Fprintln(r.out, "You have already shot at this cell!")
		default:
			fmt.Fprintln(r.out, e.Err)
		}

	case mb.EventGameOver:
		r.renderBoards()
		fmt.Fprintln(r.out, separator)
		if e.State == mb.StateHumanWon {
			fmt.Fprintln(r.out, "You won!")
		} else {
			fmt.Fprintln(r.out, "The computer won!")
		}
	}
}
