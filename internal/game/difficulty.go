package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a label is not one of the known difficulties.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is a grid preset: the board is Side×Side with Pairs matching pairs.
type Difficulty struct {
	Label string
	Side  int
	Pairs int
}

// Difficulty labels.
const (
	Easy   = "EASY"
	Normal = "NORMAL"
	Hard   = "HARD"
)

var difficulties = map[string]Difficulty{
	Easy:   {Label: Easy, Side: 4, Pairs: 8},
	Normal: {Label: Normal, Side: 6, Pairs: 18},
	Hard:   {Label: Hard, Side: 8, Pairs: 32},
}

// Difficulties returns the presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{difficulties[Easy], difficulties[Normal], difficulties[Hard]}
}

// ResolveDifficulty looks up a difficulty by its exact label.
func ResolveDifficulty(label string) (Difficulty, error) {
	d, ok := difficulties[label]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, label)
	}
	return d, nil
}

// ParseDifficulty is ResolveDifficulty with case and surrounding space ignored.
// Used for flags, env vars and config files.
func ParseDifficulty(s string) (Difficulty, error) {
	return ResolveDifficulty(strings.ToUpper(strings.TrimSpace(s)))
}

// Cards returns the number of grid slots.
func (d Difficulty) Cards() int {
	return d.Side * d.Side
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d)", d.Label, d.Side, d.Side)
}
