package options

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownProgression indicates a progression mode other than fixed or shuffled.
	ErrUnknownProgression = errors.New("options: unknown progression mode")

	// ErrUnknownChoice indicates an unknown value for a named choice option.
	ErrUnknownChoice = errors.New("options: unknown choice")
)

// Progression selects how blocks are unlocked.
type Progression string

const (
	// ProgressionFixed hands out one counting item per block, in schedule order.
	ProgressionFixed Progression = "fixed"
	// ProgressionShuffled hands out one named item per block.
	ProgressionShuffled Progression = "shuffled"
)

// ParseProgression maps a name to a Progression.
func ParseProgression(s string) (Progression, error) {
	switch p := Progression(strings.ToLower(strings.TrimSpace(s))); p {
	case ProgressionFixed, ProgressionShuffled:
		return p, nil
	default:
		return "", fmt.Errorf("progression %q: %w", s, ErrUnknownProgression)
	}
}

// UnmarshalYAML accepts the mode name.
func (p *Progression) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := ParseProgression(n.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Difficulty is the solving-technique tier of generated puzzles.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota + 1
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

var difficultyNames = map[string]Difficulty{
	"beginner": DifficultyBeginner,
	"easy":     DifficultyEasy,
	"medium":   DifficultyMedium,
	"hard":     DifficultyHard,
}

// String returns the lower-case name.
func (d Difficulty) String() string {
	for name, v := range difficultyNames {
		if v == d {
			return name
		}
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts a name or its numeric value 1..4.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := difficultyNames[s]; ok {
		return d, nil
	}
	for _, d := range difficultyNames {
		if fmt.Sprint(int(d)) == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("difficulty %q: %w", s, ErrUnknownChoice)
}

// UnmarshalYAML accepts a name or number.
func (d *Difficulty) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := ParseDifficulty(n.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LocationScouting controls how the client scouts locations.
type LocationScouting string

const (
	ScoutingAuto     LocationScouting = "auto"
	ScoutingManual   LocationScouting = "manual"
	ScoutingDisabled LocationScouting = "disabled"
)

// ParseLocationScouting maps a name to a LocationScouting.
func ParseLocationScouting(s string) (LocationScouting, error) {
	switch l := LocationScouting(strings.ToLower(strings.TrimSpace(s))); l {
	case ScoutingAuto, ScoutingManual, ScoutingDisabled:
		return l, nil
	default:
		return "", fmt.Errorf("location scouting %q: %w", s, ErrUnknownChoice)
	}
}

// UnmarshalYAML accepts the scouting name.
func (l *LocationScouting) UnmarshalYAML(n *yaml.Node) error {
	parsed, err := ParseLocationScouting(n.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
