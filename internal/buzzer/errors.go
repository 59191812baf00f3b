package buzzer

import "errors"

// ErrNotFound is returned when no buzzer state exists for a room id
var ErrNotFound = errors.New("buzzer state not found")

// ErrInvalidInput is returned when a request is rejected before any mutation
var ErrInvalidInput = errors.New("invalid input")
