package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{input: "easy", want: Easy},
		{input: "Hard", want: Hard},
		{input: " PAIN ", want: Pain},
		{input: "medium", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficultyText(t *testing.T) {
	for _, d := range Difficulties() {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var parsed Difficulty
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, d, parsed)
	}

	_, err := Difficulty(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	assert.False(t, Difficulty(42).Valid())
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		level Difficulty
		want  Strategy
	}{
		{Easy, &RandomStrategy{}},
		{Hard, &HeuristicStrategy{}},
		{Pain, &MinimaxStrategy{}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			s, err := NewStrategy(tt.level, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}

	_, err := NewStrategy(Difficulty(7), nil)
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}
