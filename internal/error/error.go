package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds               = errors.New("shot is outside of the board")
	ErrAlreadyTargeted           = errors.New("this cell has already been shot at")
	ErrWrongPlacement            = errors.New("ship cannot be placed here")
	ErrPlacementAttemptsExceeded = errors.New("placement attempts exceeded for board")
	ErrBoardGenerationExhausted  = errors.New("could not generate a valid board")
	ErrGameFinished              = errors.New("game is already finished")
	ErrGameNotExists             = errors.New("game does not exist")
	ErrMalformedInput            = errors.New("malformed coordinates input")
	ErrSessionNotExists          = errors.New("session does not exist")
	ErrSessionBacklogged         = errors.New("session is not keeping up with messages")

	ErrCoordinateCount       = fmt.Errorf("%w: expected 2 coordinates", ErrMalformedInput)
	ErrCoordinateNotNumber   = fmt.Errorf("%w: not a number", ErrMalformedInput)
	ErrCoordinateNotPositive = fmt.Errorf("%w: coordinates must be positive", ErrMalformedInput)
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrShipPlacement(x, y, length int) error {
	return fmt.Errorf("%w\tbow x: %d\tbow y: %d\tlength: %d", ErrWrongPlacement, x, y, length)
}

func ErrPlacementOutsidePhase() error {
	return fmt.Errorf("%w: board is no longer accepting ships", ErrWrongPlacement)
}

func ErrPlacementBudget(attempts int) error {
	return fmt.Errorf("%w: %d", ErrPlacementAttemptsExceeded, attempts)
}

func ErrBoardGeneration(regenerations int) error {
	return fmt.Errorf("%w after %d regenerations", ErrBoardGenerationExhausted, regenerations)
}

func ErrGameNotExist(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrGameIsFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrInputNotPositive(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrCoordinateNotPositive, x, y)
}

func ErrInputFieldCount(got int) error {
	return fmt.Errorf("%w, got %d", ErrCoordinateCount, got)
}

func ErrInputNotNumber(value string) error {
	return fmt.Errorf("%w:\t%s", ErrCoordinateNotNumber, value)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotExists, sessionId)
}

func ErrSessionOutboxFull(sessionId string, pending int) error {
	return fmt.Errorf("%w, id: %s\tpending: %d", ErrSessionBacklogged, sessionId, pending)
}
