package game

import "errors"

// ErrNotFound is returned when no game exists for a room id
var ErrNotFound = errors.New("game not found")

// ErrInvalidInput is returned when a request is rejected before any mutation
var ErrInvalidInput = errors.New("invalid input")
