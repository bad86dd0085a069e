package game

import (
	"fmt"
	"iter"
	"strings"

	"tictactoe/utils"
)

// Empty marks an unplayed cell.
const Empty = ""

// Board is a square grid of player tokens. Alongside the grid it tracks the
// play-order history and the remaining empty cells; together these always
// partition the full coordinate space.
//
// A board is only ever mutated through Play. Searches work on copies and
// leave the live board alone.
type Board struct {
	numRows int
	numCols int

	cells           [][]string
	playedPositions []Position
	playedTokens    []string
	emptyCells      []Position
}

// NewBoard creates an empty numRows x numCols board. Boards must be square.
func NewBoard(numRows, numCols int) (*Board, error) {
	if numRows != numCols {
		return nil, fmt.Errorf("boards must be square: got %dx%d", numRows, numCols)
	}
	if numRows < 1 {
		return nil, fmt.Errorf("board size must be positive: got %d", numRows)
	}

	cells := make([][]string, numRows)
	for i := range cells {
		cells[i] = make([]string, numCols)
	}
	empty := make([]Position, 0, numRows*numCols)
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			empty = append(empty, Position{Row: i, Col: j})
		}
	}

	return &Board{
		numRows:    numRows,
		numCols:    numCols,
		cells:      cells,
		emptyCells: empty,
	}, nil
}

// blank returns an empty board of the same size, for transforms to fill in.
func (b *Board) blank() *Board {
	board, err := NewBoard(b.numRows, b.numCols)
	if err != nil {
		panic(err) // b was already validated
	}
	return board
}

func (b *Board) NumRows() int { return b.numRows }
func (b *Board) NumCols() int { return b.numCols }

// At returns the token at (row, col), or Empty for an unplayed cell.
func (b *Board) At(row, col int) string {
	return b.cells[row][col]
}

// Play puts token at (row, col). It fails if the cell is outside the board or
// has already been played; the board is unchanged on failure.
func (b *Board) Play(row, col int, token string) error {
	if row < 0 || row >= b.numRows || col < 0 || col >= b.numCols {
		return fmt.Errorf("position (%d,%d) is outside the %dx%d board", row+1, col+1, b.numRows, b.numCols)
	}

	pos := Position{Row: row, Col: col}
	i := utils.FindIndex(b.emptyCells, pos)
	if i == -1 {
		return InvalidMoveError{Position: pos}
	}

	b.cells[row][col] = token
	b.playedPositions = append(b.playedPositions, pos)
	b.playedTokens = append(b.playedTokens, token)
	b.emptyCells = append(b.emptyCells[:i], b.emptyCells[i+1:]...)
	return nil
}

// Winner returns the token occupying a fully-uniform non-empty line, or Empty
// if there is none. Lines are checked in a fixed order: rows top to bottom,
// columns left to right, main diagonal, anti-diagonal. The first uniform line
// wins, so boards built by hand with several uniform lines resolve
// deterministically.
func (b *Board) Winner() string {
	for i := 0; i < b.numRows; i++ {
		if winner := lineWinner(b.row(i)); winner != Empty {
			return winner
		}
	}
	for j := 0; j < b.numCols; j++ {
		if winner := lineWinner(b.column(j)); winner != Empty {
			return winner
		}
	}
	if winner := lineWinner(b.mainDiagonal()); winner != Empty {
		return winner
	}
	return lineWinner(b.antiDiagonal())
}

func lineWinner(line []string) string {
	first := line[0]
	if first == Empty {
		return Empty
	}
	for _, cell := range line[1:] {
		if cell != first {
			return Empty
		}
	}
	return first
}

func (b *Board) row(i int) []string { return b.cells[i] }

func (b *Board) column(j int) []string {
	column := make([]string, b.numRows)
	for i := 0; i < b.numRows; i++ {
		column[i] = b.cells[i][j]
	}
	return column
}

func (b *Board) mainDiagonal() []string {
	diagonal := make([]string, b.numRows)
	for i := 0; i < b.numRows; i++ {
		diagonal[i] = b.cells[i][i]
	}
	return diagonal
}

func (b *Board) antiDiagonal() []string {
	diagonal := make([]string, b.numRows)
	for i := 0; i < b.numRows; i++ {
		diagonal[i] = b.cells[i][b.numCols-i-1]
	}
	return diagonal
}

// Full reports whether every cell has been played.
func (b *Board) Full() bool {
	return len(b.emptyCells) == 0
}

// EmptyCells returns the unplayed coordinates. The slice is a copy; the order
// is play-independent (row-major for fresh and rectified boards).
func (b *Board) EmptyCells() []Position {
	return append([]Position(nil), b.emptyCells...)
}

// PlayedPositions returns the played coordinates in play order.
func (b *Board) PlayedPositions() []Position {
	return append([]Position(nil), b.playedPositions...)
}

// PlayedTokens returns the played tokens in play order, parallel to
// PlayedPositions.
func (b *Board) PlayedTokens() []string {
	return append([]string(nil), b.playedTokens...)
}

// Copy returns an independent deep copy: grid, histories and empty cells all
// have their own backing storage.
func (b *Board) Copy() *Board {
	cells := make([][]string, b.numRows)
	for i, row := range b.cells {
		cells[i] = append([]string(nil), row...)
	}
	return &Board{
		numRows:         b.numRows,
		numCols:         b.numCols,
		cells:           cells,
		playedPositions: append([]Position(nil), b.playedPositions...),
		playedTokens:    append([]string(nil), b.playedTokens...),
		emptyCells:      append([]Position(nil), b.emptyCells...),
	}
}

// Equal reports whether both grids hold the same tokens cell for cell. Move
// histories are ignored: two boards that reached the same position in a
// different order are equal.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.numRows != other.numRows || b.numCols != other.numCols {
		return false
	}
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// Cell is one coordinate and its occupant, as produced by Cells.
type Cell struct {
	Row   int
	Col   int
	Token string
}

// Cells iterates the grid in row-major order. Each call starts a fresh pass.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, row := range b.cells {
			for j, token := range row {
				if !yield(Cell{Row: i, Col: j, Token: token}) {
					return
				}
			}
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, row := range b.cells {
		if i > 0 {
			sb.WriteString(strings.Repeat("---+", b.numCols-1))
			sb.WriteString("---\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("|")
			}
			if cell == Empty {
				cell = " "
			}
			fmt.Fprintf(&sb, " %s ", cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
