package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrIndexOutOfRange = errors.New("move index out of range")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrGameNotFound    = errors.New("game not found")
)
