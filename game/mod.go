package game

import "fmt"

// Position addresses a cell on the board, 0-indexed from the top-left corner.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Strategy produces the next move for a board, or reports false when no move
// is available and the player has to pass.
type Strategy func(*Board) (Position, bool)

// InvalidMoveError reports an attempt to play an already-occupied cell. The
// message shows 1-indexed coordinates, matching what players type at the
// prompt; the Position itself stays 0-indexed.
type InvalidMoveError struct {
	Position Position
}

func (e InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid position: (%d,%d) has already been played!", e.Position.Row+1, e.Position.Col+1)
}
