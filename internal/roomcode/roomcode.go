// Package roomcode generates the human-typeable numeric identifiers players
// punch in to join a room.
package roomcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultLength gives a 10^6 identifier space; collisions are accepted as
// improbable rather than handled.
const DefaultLength = 6

var ten = big.NewInt(10)

// Generate returns a numeric code of the given length, each digit drawn
// uniformly at random. Non-positive lengths fall back to DefaultLength.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to draw digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
