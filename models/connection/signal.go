package connection

const (
	CodeSessionID uint8 = iota
	CodeGameStarted
	CodeTurn
	CodeShot

	// Target was off the board or already shot at.
	// The same player is asked again
	CodeShotRejected
	CodeGameOver
)
