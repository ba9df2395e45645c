package bot

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// moveIn is a helper function to check if a move is in a list of expected moves.
func moveIn(move game.Cell, list []game.Cell) bool {
	for _, item := range list {
		if item == move {
			return true
		}
	}
	return false
}

func TestRandomStrategy(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		s := NewRandomStrategy(newTestRand())
		cell, ok := s.SelectMove(game.MustParseBoard("XOX/OXO/X.O"))
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 2, Col: 1}, cell)
	})

	t.Run("Multiple spots left - check randomness and validity", func(t *testing.T) {
		s := NewRandomStrategy(newTestRand())
		board := game.MustParseBoard("X../.O./...")
		empty := board.EmptyCells()
		seen := map[game.Cell]bool{}
		for range 200 {
			cell, ok := s.SelectMove(board)
			require.True(t, ok)
			require.True(t, moveIn(cell, empty), "random move %v is not empty", cell)
			seen[cell] = true
		}
		assert.Greater(t, len(seen), 1, "random strategy always picked the same cell")
	})

	t.Run("Full board", func(t *testing.T) {
		s := NewRandomStrategy(newTestRand())
		_, ok := s.SelectMove(game.MustParseBoard("XOX/OXO/XOX"))
		assert.False(t, ok)
	})
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  int
	}{
		{"Empty board", ".../.../...", 0},
		// row, column and one diagonal each hold a lone X.
		{"Lone AI corner", "X../.../...", 3},
		{"Lone human center", ".../.O./...", -4},
		{"AI open pair", "XX./.../...", 10 + 1 + 1 + 1},
		{"Human open pair", "OO./.../...", -15 - 1 - 1 - 1},
		{"Mixed line scores nothing", "XO./.../...", 1 - 1 + 1},
		{"AI completes a row", "XXX/OO./...", 100 - 15 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(game.MustParseBoard(tt.board)))
		})
	}
}

func swapMarks(b game.Board) game.Board {
	var swapped game.Board
	for r := range 3 {
		for c := range 3 {
			swapped[r][c] = b[r][c].Opponent()
		}
	}
	return swapped
}

// The table weighs open pairs +10 for the AI but -15 for the human, so exact
// negation under a mark swap holds on boards without an open pair.
func TestScoreSymmetry(t *testing.T) {
	boards := []string{
		".../.../...",
		"X../.../...",
		"X../.O./...",
		"XO./.../...",
		"XXX/OOX/OXO",
		"XOX/XOO/OXX",
		"OX./.X./.O.",
	}
	for _, s := range boards {
		b := game.MustParseBoard(s)
		assert.Equal(t, -Score(b), Score(swapMarks(b)), "board %s", s)
	}

	// With an open pair the asymmetry shows up.
	pair := game.MustParseBoard("XX./.../...")
	assert.Equal(t, 13, Score(pair))
	assert.Equal(t, -18, Score(swapMarks(pair)))
}

func TestHeuristicOpening(t *testing.T) {
	s := NewHeuristicStrategy(newTestRand())
	seen := map[game.Cell]int{}
	for range 1000 {
		s.Reset()
		cell, ok := s.SelectMove(game.Board{})
		require.True(t, ok)
		require.True(t, moveIn(cell, openingCells), "opening %v is not a corner or the center", cell)
		require.True(t, s.OpeningPlayed())
		seen[cell]++
	}
	assert.Greater(t, len(seen), 1, "opening move is not randomized: %v", seen)
}

func TestHeuristicOpeningSkipsOccupiedCandidates(t *testing.T) {
	board := game.MustParseBoard("O.O/.O./O..")
	for range 100 {
		s := NewHeuristicStrategy(newTestRand())
		cell, ok := s.SelectMove(board)
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 2, Col: 2}, cell)
	}
}

func TestHeuristicOpeningOnlyOncePerGame(t *testing.T) {
	s := NewHeuristicStrategy(newTestRand())
	_, ok := s.SelectMove(game.Board{})
	require.True(t, ok)

	// Second call must evaluate: with the human threatening row 0 the block wins.
	board := game.MustParseBoard("OO./.X./...")
	cell, ok := s.SelectMove(board)
	require.True(t, ok)
	assert.Equal(t, game.Cell{Row: 0, Col: 2}, cell)

	s.Reset()
	assert.False(t, s.OpeningPlayed())
}

func TestHeuristicMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  []game.Cell
	}{
		{
			name:  "Completes its own line over blocking",
			board: "XX./OO./...",
			want:  []game.Cell{{Row: 0, Col: 2}},
		},
		{
			name:  "Blocks the human's open pair",
			board: "OO./X../...",
			want:  []game.Cell{{Row: 0, Col: 2}},
		},
		{
			name:  "Takes the only empty cell",
			board: "XOX/OXO/OX.",
			want:  []game.Cell{{Row: 2, Col: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewHeuristicStrategy(newTestRand())
			s.openingPlayed = true
			board := game.MustParseBoard(tt.board)
			cell, ok := s.SelectMove(board)
			require.True(t, ok)
			assert.True(t, moveIn(cell, tt.want), "got %v, want one of %v", cell, tt.want)
			assert.Equal(t, tt.board, board.String(), "caller's board was modified")
		})
	}

	t.Run("Full board", func(t *testing.T) {
		s := NewHeuristicStrategy(newTestRand())
		_, ok := s.SelectMove(game.MustParseBoard("XOX/OXO/XOX"))
		assert.False(t, ok)
	})
}

func TestHeuristicBreaksTiesRandomly(t *testing.T) {
	// After the human takes the center every corner scores the same.
	board := game.MustParseBoard(".../.O./...")
	corners := []game.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	s := NewHeuristicStrategy(newTestRand())
	s.openingPlayed = true
	seen := map[game.Cell]bool{}
	for range 200 {
		cell, ok := s.SelectMove(board)
		require.True(t, ok)
		require.True(t, moveIn(cell, corners), "got %v, want a corner", cell)
		seen[cell] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestMinimaxRepliesToCornerWithCenter(t *testing.T) {
	s := NewMinimaxStrategy()
	cell, ok := s.SelectMove(game.MustParseBoard("O../.../..."))
	require.True(t, ok)
	assert.Equal(t, game.Cell{Row: 1, Col: 1}, cell)
}

func TestMinimaxMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  game.Cell
	}{
		{"Wins immediately", "XX./OO./O..", game.Cell{Row: 0, Col: 2}},
		{"Blocks the only threat", "OO./.X./...", game.Cell{Row: 0, Col: 2}},
		// All four corners draw against the center; row-major order picks the first.
		{"Ties go to the first cell", ".../.O./...", game.Cell{Row: 0, Col: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := game.MustParseBoard(tt.board)
			cell, ok := NewMinimaxStrategy().SelectMove(board)
			require.True(t, ok)
			assert.Equal(t, tt.want, cell)
			assert.Equal(t, tt.board, board.String())
		})
	}

	t.Run("Full board", func(t *testing.T) {
		_, ok := NewMinimaxStrategy().SelectMove(game.MustParseBoard("XOX/XOO/OXX"))
		assert.False(t, ok)
	})
}

func TestMinimaxIsDeterministic(t *testing.T) {
	board := game.MustParseBoard(".../.O./...")
	first, ok := NewMinimaxStrategy().SelectMove(board)
	require.True(t, ok)
	for range 5 {
		cell, _ := NewMinimaxStrategy().SelectMove(board)
		assert.Equal(t, first, cell)
	}
}

// Every possible human move sequence is played against minimax; the AI must
// never lose.
func TestMinimaxNeverLosesExhaustive(t *testing.T) {
	ai := NewMinimaxStrategy()
	games := 0

	var humanTurn func(b game.Board)
	humanTurn = func(b game.Board) {
		for _, c := range b.EmptyCells() {
			next := b
			next[c.Row][c.Col] = game.HumanMark
			if next.Winner() == game.HumanMark {
				t.Fatalf("human won on board %s", next.String())
			}
			if next.IsFull() {
				games++
				continue
			}
			cell, ok := ai.SelectMove(next)
			require.True(t, ok)
			next[cell.Row][cell.Col] = game.AIMark
			if next.Outcome().IsOver() {
				games++
				continue
			}
			humanTurn(next)
		}
	}
	humanTurn(game.Board{})
	assert.Positive(t, games)
}

func TestMinimaxNeverLosesToRandomPlayers(t *testing.T) {
	rng := newTestRand()
	human := NewRandomStrategy(rng)
	ai := NewMinimaxStrategy()

	for range 100 {
		var b game.Board
		turn := game.HumanMark
		for !b.Outcome().IsOver() {
			var cell game.Cell
			var ok bool
			if turn == game.HumanMark {
				cell, ok = human.SelectMove(b)
			} else {
				cell, ok = ai.SelectMove(b)
			}
			require.True(t, ok)
			require.NoError(t, b.Place(cell, turn))
			turn = turn.Opponent()
		}
		assert.NotEqual(t, game.HumanMark, b.Outcome().Winner, "human beat minimax on %s", b)
	}
}

func TestWithMarkRestoresCell(t *testing.T) {
	board := game.MustParseBoard("X../.../...")
	func() {
		defer func() { _ = recover() }()
		withMark(&board, game.Cell{Row: 1, Col: 1}, game.HumanMark, func() int {
			panic("evaluation failed")
		})
	}()
	assert.Equal(t, game.None, board.At(game.Cell{Row: 1, Col: 1}))
}
