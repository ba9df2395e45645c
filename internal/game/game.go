package game

import (
	"errors"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// OutcomeStatus classifies a board.
type OutcomeStatus string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// The AI always plays X and the human always plays O.
	AIMark    = PlayerX
	HumanMark = PlayerO

	// Outcome statuses
	InProgress OutcomeStatus = "in_progress"
	Win        OutcomeStatus = "win"
	Draw       OutcomeStatus = "draw"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
)

var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the cell lies on the 3x3 board.
func (c Cell) InBounds() bool {
	return c.Row >= BorderMin && c.Row <= BorderMax && c.Col >= BorderMin && c.Col <= BorderMax
}

// Line is one of the eight winning patterns.
type Line [3]Cell

// Start returns the first cell of the line.
func (l Line) Start() Cell { return l[0] }

// End returns the last cell of the line.
func (l Line) End() Cell { return l[2] }

// Lines holds the winning patterns in scan order: rows top to bottom,
// columns left to right, then the main and anti diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Board is the 3x3 grid, indexed [row][col].
type Board [3][3]PlayerMark

// At returns the mark in the given cell.
func (b *Board) At(c Cell) PlayerMark {
	return b[c.Row][c.Col]
}

// Place puts mark into an empty cell. Turn order is not the board's concern.
func (b *Board) Place(c Cell, mark PlayerMark) error {
	if !c.InBounds() {
		return ErrOutOfBounds
	}
	if b[c.Row][c.Col] != None {
		return ErrCellOccupied
	}
	b[c.Row][c.Col] = mark
	return nil
}

// IsFull reports whether no empty cells remain.
func (b *Board) IsFull() bool {
	for r := range 3 {
		for c := range 3 {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, 9)
	for r := range 3 {
		for c := range 3 {
			if b[r][c] == None {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Count returns how many cells hold mark.
func (b *Board) Count(mark PlayerMark) int {
	n := 0
	for r := range 3 {
		for c := range 3 {
			if b[r][c] == mark {
				n++
			}
		}
	}
	return n
}

// WinningLineFor returns the first line, in scan order, fully owned by mark.
func (b *Board) WinningLineFor(mark PlayerMark) (Line, bool) {
	if mark == None {
		return Line{}, false
	}
	for _, line := range Lines {
		if b.At(line[0]) == mark && b.At(line[1]) == mark && b.At(line[2]) == mark {
			return line, true
		}
	}
	return Line{}, false
}

// Winner returns the mark owning a complete line, or None.
func (b *Board) Winner() PlayerMark {
	for _, mark := range [2]PlayerMark{AIMark, HumanMark} {
		if _, ok := b.WinningLineFor(mark); ok {
			return mark
		}
	}
	return None
}

// Outcome is the classification of a board.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner PlayerMark    `json:"winner,omitempty"`
	Line   *Line         `json:"line,omitempty"`
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Status == Win || o.Status == Draw
}

// Outcome scans the board for a win, then for a draw.
func (b *Board) Outcome() Outcome {
	for _, mark := range [2]PlayerMark{AIMark, HumanMark} {
		if line, ok := b.WinningLineFor(mark); ok {
			return Outcome{Status: Win, Winner: mark, Line: &line}
		}
	}
	if b.IsFull() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}
