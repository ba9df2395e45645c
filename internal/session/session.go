// Package session runs one human-versus-AI game series: turn order, the
// selected AI difficulty, winner detection and the running score.
//
// A Session is not safe for concurrent use. Callers serialize access, and are
// expected to ignore player input while an AI move is pending.
package session

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"fmt"
	"math/rand/v2"
)

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks ctchen222/Tic-Tac-Toe-AI/internal/session Notifier

// State is the phase of the current game.
type State string

const (
	AwaitingPlayerMove State = "awaiting_player_move"
	AwaitingAIMove     State = "awaiting_ai_move"
	GameOver           State = "game_over"
)

// Notifier receives what the presentation layer has to render.
type Notifier interface {
	// MarkPlaced fires once per successful placement by either side.
	MarkPlaced(mark game.PlayerMark, cell game.Cell)
	// GameOver fires exactly once per finished game. A draw has no winner and no line.
	GameOver(outcome game.Outcome)
	// ScoreChanged fires once per win, never on a draw.
	ScoreChanged(aiScore, playerScore int)
}

// resetter is implemented by strategies that keep per-game state.
type resetter interface {
	Reset()
}

// Scores holds the running totals of a session.
type Scores struct {
	AI     int `json:"ai"`
	Player int `json:"player"`
}

// Session is one player's game series against the AI.
type Session struct {
	ID string

	board      game.Board
	turn       game.PlayerMark
	state      State
	outcome    game.Outcome
	difficulty bot.Difficulty
	strategies map[bot.Difficulty]bot.Strategy
	scores     Scores
	notifier   Notifier

	rng       *rand.Rand
	overrides map[bot.Difficulty]bot.Strategy
}

// Option configures a Session.
type Option func(*Session)

// WithDifficulty sets the starting difficulty.
func WithDifficulty(d bot.Difficulty) Option {
	return func(s *Session) {
		s.difficulty = d
	}
}

// WithRand makes the built-in randomized strategies draw from rng. Strategies
// set with WithStrategy are kept whatever the option order.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithStrategy replaces the strategy used at one difficulty.
func WithStrategy(d bot.Difficulty, strategy bot.Strategy) Option {
	return func(s *Session) {
		s.overrides[d] = strategy
	}
}

// New creates a session with an empty board and the player to move.
func New(id string, notifier Notifier, opts ...Option) (*Session, error) {
	s := &Session{
		ID:         id,
		difficulty: bot.DefaultDifficulty,
		notifier:   notifier,
		overrides:  make(map[bot.Difficulty]bot.Strategy),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.difficulty.Valid() {
		return nil, fmt.Errorf("new session: %w: %d", bot.ErrInvalidDifficulty, int(s.difficulty))
	}
	strategies, err := buildStrategies(s.rng, s.overrides)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.strategies = strategies
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	s.reset()
	return s, nil
}

func buildStrategies(rng *rand.Rand, overrides map[bot.Difficulty]bot.Strategy) (map[bot.Difficulty]bot.Strategy, error) {
	strategies := make(map[bot.Difficulty]bot.Strategy, len(bot.Difficulties()))
	for d, strategy := range overrides {
		if !d.Valid() {
			return nil, fmt.Errorf("strategy override: %w: %d", bot.ErrInvalidDifficulty, int(d))
		}
		if strategy == nil {
			return nil, fmt.Errorf("strategy override for %s is nil", d)
		}
		strategies[d] = strategy
	}
	for _, d := range bot.Difficulties() {
		if _, ok := strategies[d]; ok {
			continue
		}
		strategy, err := bot.NewStrategy(d, rng)
		if err != nil {
			return nil, err
		}
		strategies[d] = strategy
	}
	return strategies, nil
}

// SetNotifier swaps the receiver of game notifications.
func (s *Session) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	s.notifier = n
}

// SubmitPlayerMove places the player's mark. Illegal requests (wrong phase,
// occupied or off-board cell) are ignored and reported as false.
func (s *Session) SubmitPlayerMove(row, col int) bool {
	if s.state != AwaitingPlayerMove || s.turn != game.HumanMark {
		return false
	}
	cell := game.Cell{Row: row, Col: col}
	if err := s.board.Place(cell, game.HumanMark); err != nil {
		return false
	}
	s.notifier.MarkPlaced(game.HumanMark, cell)
	s.advance()
	return true
}

// RequestAIMove lets the current difficulty's strategy play. It does nothing
// unless the session is waiting for the AI.
func (s *Session) RequestAIMove() (game.Cell, bool) {
	if s.state != AwaitingAIMove || s.turn != game.AIMark {
		return game.Cell{}, false
	}
	cell, ok := s.strategies[s.difficulty].SelectMove(s.board)
	if !ok {
		return game.Cell{}, false
	}
	if err := s.board.Place(cell, game.AIMark); err != nil {
		return game.Cell{}, false
	}
	s.notifier.MarkPlaced(game.AIMark, cell)
	s.advance()
	return cell, true
}

// advance checks the board after a placement and moves to the next phase.
func (s *Session) advance() {
	s.outcome = s.board.Outcome()
	switch s.outcome.Status {
	case game.Win:
		s.state = GameOver
		switch s.outcome.Winner {
		case game.HumanMark:
			s.scores.Player++
		case game.AIMark:
			s.scores.AI++
		}
		s.notifier.GameOver(s.outcome)
		s.notifier.ScoreChanged(s.scores.AI, s.scores.Player)
	case game.Draw:
		s.state = GameOver
		s.notifier.GameOver(s.outcome)
	default:
		s.turn = s.turn.Opponent()
		if s.turn == game.AIMark {
			s.state = AwaitingAIMove
		} else {
			s.state = AwaitingPlayerMove
		}
	}
}

// SetDifficulty changes the strategy used for future AI moves.
func (s *Session) SetDifficulty(d bot.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("set difficulty: %w: %d", bot.ErrInvalidDifficulty, int(d))
	}
	s.difficulty = d
	return nil
}

// Restart clears the board for a new game. Scores are kept.
func (s *Session) Restart() {
	s.reset()
}

func (s *Session) reset() {
	s.board = game.Board{}
	s.turn = game.HumanMark
	s.state = AwaitingPlayerMove
	s.outcome = game.Outcome{Status: game.InProgress}
	for _, strategy := range s.strategies {
		if r, ok := strategy.(resetter); ok {
			r.Reset()
		}
	}
}

// Board returns a copy of the board.
func (s *Session) Board() game.Board { return s.board }

// Turn returns whose move it is.
func (s *Session) Turn() game.PlayerMark { return s.turn }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Outcome returns the result of the current game so far.
func (s *Session) Outcome() game.Outcome { return s.outcome }

// Difficulty returns the level used for the next AI move.
func (s *Session) Difficulty() bot.Difficulty { return s.difficulty }

// Scores returns the running totals.
func (s *Session) Scores() Scores { return s.scores }

// MovesPlayed counts the marks on the board.
func (s *Session) MovesPlayed() int {
	return s.board.Count(game.AIMark) + s.board.Count(game.HumanMark)
}

type nopNotifier struct{}

func (nopNotifier) MarkPlaced(game.PlayerMark, game.Cell) {}
func (nopNotifier) GameOver(game.Outcome)                 {}
func (nopNotifier) ScoreChanged(int, int)                 {}
