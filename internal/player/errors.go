package player

import "errors"

// ErrInvalidInput is returned when a join request is rejected before any mutation
var ErrInvalidInput = errors.New("invalid input")
