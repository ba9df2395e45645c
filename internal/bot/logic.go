package bot

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"math"
	"math/rand/v2"
)

// Strategy picks the AI's next cell. The board is passed by value, so an
// implementation can never change the caller's board. ok is false when no
// empty cell remains.
type Strategy interface {
	SelectMove(board game.Board) (cell game.Cell, ok bool)
}

// openingCells are the strong first moves for the heuristic AI: corners and center.
var openingCells = []game.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}

// withMark places mark in c, runs fn, and restores the previous cell value on
// every exit path.
func withMark[T any](board *game.Board, c game.Cell, mark game.PlayerMark, fn func() T) T {
	prev := board[c.Row][c.Col]
	board[c.Row][c.Col] = mark
	defer func() { board[c.Row][c.Col] = prev }()
	return fn()
}

// RandomStrategy plays a uniformly random empty cell.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates the easy AI.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: orDefault(rng)}
}

// SelectMove picks any empty cell.
func (s *RandomStrategy) SelectMove(board game.Board) (game.Cell, bool) {
	availableMoves := board.EmptyCells()
	if len(availableMoves) == 0 {
		return game.Cell{}, false
	}
	return availableMoves[s.rng.IntN(len(availableMoves))], true
}

// HeuristicStrategy randomizes its first move between the corners and the
// center, then plays the move with the best one-ply Score, breaking ties at
// random. It does not look further ahead.
type HeuristicStrategy struct {
	rng           *rand.Rand
	openingPlayed bool
}

// NewHeuristicStrategy creates the hard AI.
func NewHeuristicStrategy(rng *rand.Rand) *HeuristicStrategy {
	return &HeuristicStrategy{rng: orDefault(rng)}
}

// Reset forgets that the opening move was played. Call it on every new game.
func (s *HeuristicStrategy) Reset() {
	s.openingPlayed = false
}

// OpeningPlayed reports whether the randomized opening was used in this game.
func (s *HeuristicStrategy) OpeningPlayed() bool {
	return s.openingPlayed
}

// SelectMove returns the opening move once per game, otherwise the best scored move.
func (s *HeuristicStrategy) SelectMove(board game.Board) (game.Cell, bool) {
	if !s.openingPlayed {
		if cell, ok := s.openingMove(board); ok {
			s.openingPlayed = true
			return cell, true
		}
	}

	bestScore := math.MinInt
	var bestMoves []game.Cell
	for _, cell := range board.EmptyCells() {
		score := withMark(&board, cell, game.AIMark, func() int { return Score(board) })
		switch {
		case score > bestScore:
			bestScore = score
			bestMoves = []game.Cell{cell}
		case score == bestScore:
			bestMoves = append(bestMoves, cell)
		}
	}

	if len(bestMoves) == 0 {
		return game.Cell{}, false
	}
	return bestMoves[s.rng.IntN(len(bestMoves))], true
}

// openingMove draws from the opening cells, dropping occupied candidates until
// a free one is found.
func (s *HeuristicStrategy) openingMove(board game.Board) (game.Cell, bool) {
	candidates := make([]game.Cell, len(openingCells))
	copy(candidates, openingCells)
	for len(candidates) > 0 {
		i := s.rng.IntN(len(candidates))
		if board.At(candidates[i]) == game.None {
			return candidates[i], true
		}
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
	return game.Cell{}, false
}

// Score rates the board from the AI's point of view, summing a weight per line.
// Open pairs of the human weigh more than the AI's own, so blocking is favored
// over building.
func Score(board game.Board) int {
	score := 0
	for _, line := range game.Lines {
		xCount, oCount := 0, 0
		for _, cell := range line {
			switch board.At(cell) {
			case game.AIMark:
				xCount++
			case game.HumanMark:
				oCount++
			}
		}

		switch {
		case xCount == 3:
			score += 100
		case oCount == 3:
			score -= 100
		case xCount == 2 && oCount == 0:
			score += 10
		case xCount == 0 && oCount == 2:
			score -= 15
		case xCount == 1 && oCount == 0:
			score++
		case xCount == 0 && oCount == 1:
			score--
		}
	}
	return score
}

// MinimaxStrategy searches the whole remaining game tree. It is deterministic:
// ties go to the first cell in row-major order.
type MinimaxStrategy struct{}

// NewMinimaxStrategy creates the pain AI.
func NewMinimaxStrategy() *MinimaxStrategy {
	return &MinimaxStrategy{}
}

// SelectMove returns the cell with the strictly greatest minimax value.
func (s *MinimaxStrategy) SelectMove(board game.Board) (game.Cell, bool) {
	bestScore := math.MinInt
	var bestMove game.Cell
	found := false
	for _, cell := range board.EmptyCells() {
		score := withMark(&board, cell, game.AIMark, func() int { return minimax(&board, false) })
		if score > bestScore {
			bestScore = score
			bestMove = cell
			found = true
		}
	}
	return bestMove, found
}

// minimax returns +1 if the AI wins with best play from here, -1 if the human
// does, and 0 for a draw. Wins at any depth count the same.
func minimax(board *game.Board, maximizing bool) int {
	switch board.Winner() {
	case game.AIMark:
		return 1
	case game.HumanMark:
		return -1
	}
	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range board.EmptyCells() {
			best = max(best, withMark(board, cell, game.AIMark, func() int { return minimax(board, false) }))
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range board.EmptyCells() {
		best = min(best, withMark(board, cell, game.HumanMark, func() int { return minimax(board, true) }))
	}
	return best
}

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
