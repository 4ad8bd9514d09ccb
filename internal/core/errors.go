package core

import "errors"

var (
	// ErrInvalidConfiguration reports a non-positive grid dimension or an
	// unknown option passed at construction time.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidCoordinate reports a cell address outside the grid.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
