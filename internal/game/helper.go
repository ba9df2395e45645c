package game

import (
	"fmt"
	"strings"
)

// BoardAsStrings converts the board to a slice of slices for the wire format.
func BoardAsStrings(b Board) [][]PlayerMark {
	board := make([][]PlayerMark, 3)
	for i := range 3 {
		board[i] = make([]PlayerMark, 3)
		copy(board[i], b[i][:])
	}
	return board
}

// ParseBoard builds a board from three rows separated by '/', using X, O and '.'
// for empty cells, e.g. "XX./OO./...".
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.Split(s, "/")
	if len(rows) != 3 {
		return b, fmt.Errorf("parse board %q: want 3 rows, got %d", s, len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return b, fmt.Errorf("parse board %q: row %d has %d cells", s, r, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'X', 'x':
				b[r][c] = PlayerX
			case 'O', 'o':
				b[r][c] = PlayerO
			case '.', ' ', '-':
				b[r][c] = None
			default:
				return b, fmt.Errorf("parse board %q: unexpected %q", s, ch)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for literals known to be valid.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the board in the ParseBoard format.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range 3 {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range 3 {
			switch b[r][c] {
			case None:
				sb.WriteByte('.')
			default:
				sb.WriteString(string(b[r][c]))
			}
		}
	}
	return sb.String()
}
