package bot

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects which strategy plays for the AI.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Hard
	Pain
)

// DefaultDifficulty is used until the player picks one.
const DefaultDifficulty = Easy

var ErrInvalidDifficulty = errors.New("invalid difficulty")

var difficultyNames = map[Difficulty]string{
	Easy: "easy",
	Hard: "hard",
	Pain: "pain",
}

// Difficulties lists every valid level in ascending strength.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Hard, Pain}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts the level names case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
