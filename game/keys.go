package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Keys maps keyboard symbols to tiles in row-major order.
const Keys = "uiohjkbnm"

const KeyLegend = "|u|i|o|\n|h|j|k|\n|b|n|m|\n"

// ParseKey reads a single keyboard symbol.
func ParseKey(text string) (Coordinate, error) {
	key := strings.TrimSpace(text)
	index := strings.Index(Keys, key)
	if len(key) != 1 || index < 0 {
		return Coordinate{}, errors.Errorf("unknown key %q", key)
	}
	return Coordinate{Row: index / Size, Col: index % Size}, nil
}

// Key returns the keyboard symbol of c.
func Key(c Coordinate) string {
	if !c.Valid() {
		return "?"
	}
	i := c.Row*Size + c.Col
	return Keys[i : i+1]
}
