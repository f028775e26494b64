package sweeper

import "errors"

var (
	// ErrOutOfBounds is returned when a row/col pair lies outside the board.
	// It signals a caller bug, not a player mistake.
	ErrOutOfBounds = errors.New("sweeper: coordinates out of bounds")

	// ErrUnknownDifficulty is returned when a difficulty key is not in the catalog.
	ErrUnknownDifficulty = errors.New("sweeper: unknown difficulty")

	// ErrInvalidDifficulty is returned for difficulties that leave no safe cell
	// or have non-positive dimensions.
	ErrInvalidDifficulty = errors.New("sweeper: invalid difficulty")

	// ErrUnknownPowerUp is returned when a power-up id is not in the session inventory.
	ErrUnknownPowerUp = errors.New("sweeper: unknown power-up")
)
