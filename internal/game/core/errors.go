package core

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidTile        = errors.New("invalid tile")
	ErrForeignTile        = errors.New("tile does not belong to this board")
	ErrUnitNotPlaced      = errors.New("unit is not on the board")
	ErrUnitAlreadyPlaced  = errors.New("unit is already on the board")
	ErrInvalidBaseRow     = errors.New("base row out of range")
	ErrInvalidConfig      = errors.New("invalid board config")
)
