package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// Prompt reads coordinates typed by the player, one pair per line.
type Prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.CoordinateSource = (*Prompt)(nil)

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompt) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// ParseCoordinates parses a "x y" line into two integers.
func ParseCoordinates(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, cerr.ErrInputFieldCount(len(fields))
	}

	values := [2]int{}
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, cerr.ErrInputNotNumber(field)
		}
		values[i] = v
	}
	return values[0], values[1], nil
}

// NextCoordinates keeps prompting until a line with two numbers is entered.
func (p *Prompt) NextCoordinates() (int, int, error) {
	for {
		line, err := p.readLine("Your move: ")
		if err != nil {
			return 0, 0, err
		}

		x, y, err := ParseCoordinates(line)
		if err != nil {
			p.Reject(err)
			continue
		}
		return x, y, nil
	}
}

func (p *Prompt) Reject(err error) {
	switch {
	case errors.Is(err, cerr.ErrCoordinateCount):
		fmt.Fprintln(p.out, "Enter 2 coordinates!")
	case errors.Is(err, cerr.ErrCoordinateNotNumber):
		fmt.Fprintln(p.out, "Enter numbers!")
	case errors.Is(err, cerr.ErrCoordinateNotPositive):
		fmt.Fprintln(p.out, "Coordinates start at 1!")
	default:
		fmt.Fprintln(p.out, err)
	}
}

// Confirm asks a yes/no question. Anything but y/yes counts as no.
func (p *Prompt) Confirm(question string) (bool, error) {
	line, err := p.readLine(question + " [y/n]: ")
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes", nil
}
