package apperror

import "errors"

var (
	// ErrIllegalMove - a move was rejected, the session is left unchanged.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidState - the controller was asked for something its current state does not allow.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidDifficulty - unknown difficulty name at the configuration boundary.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMode  = errors.New("invalid game mode")
	ErrNotFound     = errors.New("game not found")
)
