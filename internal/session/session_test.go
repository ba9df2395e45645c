package session_test

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/session"
	"ctchen222/Tic-Tac-Toe-AI/internal/session/mocks"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedStrategy plays a fixed list of cells in order.
type scriptedStrategy struct {
	moves []game.Cell
	calls int
}

func (s *scriptedStrategy) SelectMove(board game.Board) (game.Cell, bool) {
	if s.calls >= len(s.moves) {
		return game.Cell{}, false
	}
	cell := s.moves[s.calls]
	s.calls++
	return cell, true
}

func cell(row, col int) game.Cell {
	return game.Cell{Row: row, Col: col}
}

func newScripted(t *testing.T, n session.Notifier, moves ...game.Cell) (*session.Session, *scriptedStrategy) {
	t.Helper()
	script := &scriptedStrategy{moves: moves}
	s, err := session.New("test", n, session.WithStrategy(bot.Easy, script))
	require.NoError(t, err)
	return s, script
}

func TestNewSession(t *testing.T) {
	s, err := session.New("abc", nil)
	require.NoError(t, err)

	assert.Equal(t, "abc", s.ID)
	assert.Equal(t, session.AwaitingPlayerMove, s.State())
	assert.Equal(t, game.HumanMark, s.Turn())
	assert.Equal(t, bot.Easy, s.Difficulty())
	assert.Equal(t, game.Board{}, s.Board())
	assert.Equal(t, session.Scores{}, s.Scores())

	_, err = session.New("abc", nil, session.WithDifficulty(bot.Difficulty(9)))
	assert.ErrorIs(t, err, bot.ErrInvalidDifficulty)
}

func TestSubmitPlayerMoveWaitsForAI(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocks.NewMockNotifier(ctrl)
	s, script := newScripted(t, n, cell(1, 1))

	n.EXPECT().MarkPlaced(game.HumanMark, cell(0, 0))
	require.True(t, s.SubmitPlayerMove(0, 0))

	// The player's move is fully reported before any strategy runs.
	assert.Equal(t, session.AwaitingAIMove, s.State())
	assert.Equal(t, game.AIMark, s.Turn())
	assert.Zero(t, script.calls)

	n.EXPECT().MarkPlaced(game.AIMark, cell(1, 1))
	got, ok := s.RequestAIMove()
	require.True(t, ok)
	assert.Equal(t, cell(1, 1), got)
	assert.Equal(t, session.AwaitingPlayerMove, s.State())
	assert.Equal(t, 2, s.MovesPlayed())
}

func TestIllegalMovesAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocks.NewMockNotifier(ctrl)
	s, _ := newScripted(t, n, cell(1, 1))

	_, ok := s.RequestAIMove()
	assert.False(t, ok, "AI moved while the player was to move")

	assert.False(t, s.SubmitPlayerMove(3, 0))
	assert.False(t, s.SubmitPlayerMove(0, -1))

	n.EXPECT().MarkPlaced(game.HumanMark, cell(0, 0))
	require.True(t, s.SubmitPlayerMove(0, 0))

	// A stale click while the AI is thinking.
	assert.False(t, s.SubmitPlayerMove(2, 2))

	n.EXPECT().MarkPlaced(game.AIMark, cell(1, 1))
	_, ok = s.RequestAIMove()
	require.True(t, ok)

	assert.False(t, s.SubmitPlayerMove(0, 0), "occupied by the player")
	assert.False(t, s.SubmitPlayerMove(1, 1), "occupied by the AI")
	board := s.Board()
	assert.Equal(t, "O../.X./...", board.String())
}

func TestPlayerWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocks.NewMockNotifier(ctrl)
	s, _ := newScripted(t, n, cell(1, 0), cell(1, 1))

	line := game.Lines[0]
	gomock.InOrder(
		n.EXPECT().MarkPlaced(game.HumanMark, cell(0, 0)),
		n.EXPECT().MarkPlaced(game.AIMark, cell(1, 0)),
		n.EXPECT().MarkPlaced(game.HumanMark, cell(0, 1)),
		n.EXPECT().MarkPlaced(game.AIMark, cell(1, 1)),
		n.EXPECT().MarkPlaced(game.HumanMark, cell(0, 2)),
		n.EXPECT().GameOver(game.Outcome{Status: game.Win, Winner: game.HumanMark, Line: &line}),
		n.EXPECT().ScoreChanged(0, 1),
	)

	for _, c := range []game.Cell{cell(0, 0), cell(0, 1)} {
		require.True(t, s.SubmitPlayerMove(c.Row, c.Col))
		_, ok := s.RequestAIMove()
		require.True(t, ok)
	}
	require.True(t, s.SubmitPlayerMove(0, 2))

	assert.Equal(t, session.GameOver, s.State())
	assert.Equal(t, session.Scores{AI: 0, Player: 1}, s.Scores())

	// Nothing moves once the game is over.
	assert.False(t, s.SubmitPlayerMove(2, 2))
	_, ok := s.RequestAIMove()
	assert.False(t, ok)
}

func TestAIWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocks.NewMockNotifier(ctrl)
	s, _ := newScripted(t, n, cell(1, 1), cell(0, 0), cell(2, 2))

	n.EXPECT().MarkPlaced(gomock.Any(), gomock.Any()).Times(6)
	line := game.Lines[6]
	gomock.InOrder(
		n.EXPECT().GameOver(game.Outcome{Status: game.Win, Winner: game.AIMark, Line: &line}),
		n.EXPECT().ScoreChanged(1, 0),
	)

	for _, c := range []game.Cell{cell(0, 1), cell(0, 2), cell(2, 0)} {
		require.True(t, s.SubmitPlayerMove(c.Row, c.Col))
		_, ok := s.RequestAIMove()
		require.True(t, ok)
	}

	assert.Equal(t, session.GameOver, s.State())
	assert.Equal(t, session.Scores{AI: 1, Player: 0}, s.Scores())
	assert.Equal(t, game.AIMark, s.Outcome().Winner)
}

func TestDrawDoesNotChangeScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocks.NewMockNotifier(ctrl)
	s, _ := newScripted(t, n, cell(1, 1), cell(0, 1), cell(1, 2), cell(2, 0))

	n.EXPECT().MarkPlaced(gomock.Any(), gomock.Any()).Times(9)
	n.EXPECT().GameOver(game.Outcome{Status: game.Draw}).Times(1)
	n.EXPECT().ScoreChanged(gomock.Any(), gomock.Any()).Times(0)

	for _, c := range []game.Cell{cell(0, 0), cell(0, 2), cell(2, 1), cell(1, 0)} {
		require.True(t, s.SubmitPlayerMove(c.Row, c.Col))
		_, ok := s.RequestAIMove()
		require.True(t, ok)
	}
	require.True(t, s.SubmitPlayerMove(2, 2))

	board := s.Board()
	assert.Equal(t, "OXO/OXX/XOO", board.String())
	assert.Equal(t, session.GameOver, s.State())
	assert.Equal(t, game.Draw, s.Outcome().Status)
	assert.Equal(t, game.None, s.Outcome().Winner)
	assert.Nil(t, s.Outcome().Line)
	assert.Equal(t, session.Scores{}, s.Scores())
}

func TestRestartKeepsScores(t *testing.T) {
	s, _ := newScripted(t, nil, cell(1, 0), cell(1, 1))
	require.True(t, s.SubmitPlayerMove(0, 0))
	_, _ = s.RequestAIMove()
	require.True(t, s.SubmitPlayerMove(0, 1))
	_, _ = s.RequestAIMove()
	require.True(t, s.SubmitPlayerMove(0, 2))
	before := s.Scores()
	require.Equal(t, session.Scores{Player: 1}, before)

	s.Restart()
	first := s.Board()
	s.Restart()

	assert.Equal(t, first, s.Board())
	assert.Equal(t, game.Board{}, s.Board())
	assert.Equal(t, session.AwaitingPlayerMove, s.State())
	assert.Equal(t, game.HumanMark, s.Turn())
	assert.Equal(t, game.InProgress, s.Outcome().Status)
	assert.Equal(t, before, s.Scores())
}

func TestRestartResetsHardOpening(t *testing.T) {
	hard := bot.NewHeuristicStrategy(rand.New(rand.NewPCG(7, 7)))
	s, err := session.New("hard", nil, session.WithDifficulty(bot.Hard), session.WithStrategy(bot.Hard, hard))
	require.NoError(t, err)

	require.True(t, s.SubmitPlayerMove(0, 1))
	_, ok := s.RequestAIMove()
	require.True(t, ok)
	assert.True(t, hard.OpeningPlayed())

	s.Restart()
	assert.False(t, hard.OpeningPlayed())
}

func TestSetDifficulty(t *testing.T) {
	s, err := session.New("d", nil)
	require.NoError(t, err)

	require.NoError(t, s.SetDifficulty(bot.Pain))
	assert.Equal(t, bot.Pain, s.Difficulty())

	err = s.SetDifficulty(bot.Difficulty(0))
	assert.ErrorIs(t, err, bot.ErrInvalidDifficulty)
	assert.Equal(t, bot.Pain, s.Difficulty(), "a rejected level must not change the session")
}

func TestPainRepliesToCornerWithCenter(t *testing.T) {
	s, err := session.New("pain", nil, session.WithDifficulty(bot.Pain))
	require.NoError(t, err)

	require.True(t, s.SubmitPlayerMove(0, 0))
	got, ok := s.RequestAIMove()
	require.True(t, ok)
	assert.Equal(t, cell(1, 1), got)
}

func TestDifficultyChangeAppliesToNextMoveOnly(t *testing.T) {
	easy := &scriptedStrategy{moves: []game.Cell{cell(2, 2)}}
	pain := &scriptedStrategy{moves: []game.Cell{cell(2, 0)}}
	s, err := session.New("switch", nil,
		session.WithStrategy(bot.Easy, easy),
		session.WithStrategy(bot.Pain, pain),
	)
	require.NoError(t, err)

	require.True(t, s.SubmitPlayerMove(0, 0))
	_, ok := s.RequestAIMove()
	require.True(t, ok)

	require.NoError(t, s.SetDifficulty(bot.Pain))
	board := s.Board()
	assert.Equal(t, "O../.../..X", board.String(), "earlier AI move must be untouched")

	require.True(t, s.SubmitPlayerMove(0, 1))
	_, ok = s.RequestAIMove()
	require.True(t, ok)
	assert.Equal(t, 1, easy.calls)
	assert.Equal(t, 1, pain.calls)
}

func TestStrategyOverrideSurvivesWithRand(t *testing.T) {
	script := &scriptedStrategy{moves: []game.Cell{cell(2, 2)}}
	s, err := session.New("opts", nil,
		session.WithStrategy(bot.Easy, script),
		session.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)

	require.True(t, s.SubmitPlayerMove(0, 0))
	got, ok := s.RequestAIMove()
	require.True(t, ok)
	assert.Equal(t, cell(2, 2), got)
	assert.Equal(t, 1, script.calls)
}

func TestStrategyOverrideRejectsUnknownDifficulty(t *testing.T) {
	_, err := session.New("opts", nil, session.WithStrategy(bot.Difficulty(9), &scriptedStrategy{}))
	assert.ErrorIs(t, err, bot.ErrInvalidDifficulty)

	_, err = session.New("opts", nil, session.WithStrategy(bot.Hard, nil))
	assert.Error(t, err)
}
