package apperror

import "errors"

var (
	ErrCellOccupied           = errors.New("cell already taken")
	ErrOutOfRange             = errors.New("position is out of range")
	ErrInvalidName            = errors.New("name must not be empty")
	ErrUnsupportedInputDevice = errors.New("input device does not support raw mode")
	ErrGameFinished           = errors.New("game is already finished")
	ErrAborted                = errors.New("game aborted")
)
