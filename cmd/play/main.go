// Command play runs a game against the AI in the terminal.
package main

import (
	"bufio"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/logger"
	"ctchen222/Tic-Tac-Toe-AI/internal/session"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func main() {
	difficulty := flag.String("difficulty", bot.DefaultDifficulty.String(), "AI level: easy, hard or pain")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	slog.SetDefault(logger.New(os.Stderr, *level))

	d, err := bot.ParseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	t := &terminal{out: os.Stdout}
	s, err := session.New(uuid.New().String(), t, session.WithDifficulty(d))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.Debug("session started", "session.id", s.ID, "difficulty", d.String())

	if err := t.play(os.Stdin, s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// terminal renders session notifications as text.
type terminal struct {
	out io.Writer
}

func (t *terminal) MarkPlaced(mark game.PlayerMark, cell game.Cell) {
	who := "You"
	if mark == game.AIMark {
		who = "AI"
	}
	fmt.Fprintf(t.out, "%s played %s at %d %d\n", who, mark, cell.Row, cell.Col)
}

func (t *terminal) GameOver(outcome game.Outcome) {
	switch outcome.Winner {
	case game.AIMark:
		fmt.Fprintf(t.out, "AI wins (%d %d to %d %d)\n",
			outcome.Line.Start().Row, outcome.Line.Start().Col, outcome.Line.End().Row, outcome.Line.End().Col)
	case game.HumanMark:
		fmt.Fprintf(t.out, "You win (%d %d to %d %d)\n",
			outcome.Line.Start().Row, outcome.Line.Start().Col, outcome.Line.End().Row, outcome.Line.End().Col)
	default:
		fmt.Fprintln(t.out, "Draw")
	}
}

func (t *terminal) ScoreChanged(aiScore, playerScore int) {
	fmt.Fprintf(t.out, "Score: AI %d - %d You\n", aiScore, playerScore)
}

const help = `Commands:
  <row> <col>   place your mark (0-2 each)
  d <level>     change difficulty (easy, hard, pain) before the first move
  r             restart, keeping the score
  q             quit`

// play reads commands from in until it ends or the player quits.
func (t *terminal) play(in io.Reader, s *session.Session) error {
	fmt.Fprintf(t.out, "You are %s, the AI is %s. Difficulty: %s\n%s\n", game.HumanMark, game.AIMark, s.Difficulty(), help)
	t.render(s)

	scanner := bufio.NewScanner(in)
	for t.prompt(s); scanner.Scan(); t.prompt(s) {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "r", "restart":
			s.Restart()
			t.render(s)
		case "d", "difficulty":
			t.changeDifficulty(s, fields[1:])
		case "h", "help":
			fmt.Fprintln(t.out, help)
		default:
			t.move(s, fields)
		}
	}
	return scanner.Err()
}

func (t *terminal) prompt(s *session.Session) {
	if s.State() == session.GameOver {
		fmt.Fprint(t.out, "Game over. r to restart, q to quit> ")
		return
	}
	fmt.Fprint(t.out, "> ")
}

func (t *terminal) changeDifficulty(s *session.Session, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(t.out, "usage: d <easy|hard|pain>")
		return
	}
	if s.MovesPlayed() > 0 && s.State() != session.GameOver {
		fmt.Fprintln(t.out, "Difficulty is locked until the game ends")
		return
	}
	d, err := bot.ParseDifficulty(args[0])
	if err == nil {
		err = s.SetDifficulty(d)
	}
	if err != nil {
		fmt.Fprintln(t.out, err)
		return
	}
	fmt.Fprintf(t.out, "Difficulty: %s\n", d)
}

func (t *terminal) move(s *session.Session, fields []string) {
	if len(fields) != 2 {
		fmt.Fprintln(t.out, "Enter a move as: <row> <col>")
		return
	}
	row, rowErr := strconv.Atoi(fields[0])
	col, colErr := strconv.Atoi(fields[1])
	if rowErr != nil || colErr != nil || !s.SubmitPlayerMove(row, col) {
		fmt.Fprintln(t.out, "Illegal move")
		return
	}
	if s.State() == session.AwaitingAIMove {
		s.RequestAIMove()
	}
	t.render(s)
}

func (t *terminal) render(s *session.Session) {
	board := s.Board()
	fmt.Fprintln(t.out, "    0   1   2")
	for r := range 3 {
		cells := make([]string, 3)
		for c := range 3 {
			cells[c] = string(board[r][c])
			if cells[c] == "" {
				cells[c] = " "
			}
		}
		fmt.Fprintf(t.out, "%d   %s\n", r, strings.Join(cells, " | "))
		if r < 2 {
			fmt.Fprintln(t.out, "   ---+---+---")
		}
	}
}
