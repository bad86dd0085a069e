package game

import "fmt"

// Axis selects a reflection axis.
type Axis int

const (
	Horizontal   Axis = iota // top and bottom rows swap
	Vertical                 // left and right columns swap
	MainDiagonal             // transpose: top-left to bottom-right axis
	AntiDiagonal             // top-right to bottom-left axis
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case MainDiagonal:
		return "main diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotate returns a new board turned clockwise by 90, 180 or 270 degrees. The
// new board's histories are rebuilt from the transformed grid, so the
// original play order does not survive; only the occupancy does.
func (b *Board) Rotate(degrees int) (*Board, error) {
	rotated := b.blank()
	n := b.numRows

	switch degrees {
	case 90:
		// Top of the first column becomes the start of the first row.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				rotated.cells[i][j] = b.cells[n-1-j][i]
			}
		}
	case 180:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				rotated.cells[i][j] = b.cells[n-1-i][n-1-j]
			}
		}
	case 270:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				rotated.cells[i][j] = b.cells[j][n-1-i]
			}
		}
	default:
		return nil, fmt.Errorf("rotation must be 90, 180 or 270 degrees: got %d", degrees)
	}

	rotated.rectifyHistory()
	return rotated, nil
}

// Reflect returns a new board mirrored across the given axis, with histories
// rebuilt from the reflected grid as in Rotate.
func (b *Board) Reflect(axis Axis) (*Board, error) {
	reflected := b.blank()
	n := b.numRows

	switch axis {
	case Horizontal:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				reflected.cells[i][j] = b.cells[n-1-i][j]
			}
		}
	case Vertical:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				reflected.cells[i][j] = b.cells[i][n-1-j]
			}
		}
	case MainDiagonal:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				reflected.cells[i][j] = b.cells[j][i]
			}
		}
	case AntiDiagonal:
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				reflected.cells[i][j] = b.cells[n-1-j][n-1-i]
			}
		}
	default:
		return nil, fmt.Errorf("unknown reflection axis: %s", axis)
	}

	reflected.rectifyHistory()
	return reflected, nil
}

// rectifyHistory rebuilds playedPositions, playedTokens and emptyCells from a
// row-major scan of the grid. The original move order is lost; the rebuilt
// lists only promise to contain the right items.
func (b *Board) rectifyHistory() {
	b.playedPositions = nil
	b.playedTokens = nil
	b.emptyCells = nil

	for cell := range b.Cells() {
		pos := Position{Row: cell.Row, Col: cell.Col}
		if cell.Token == Empty {
			b.emptyCells = append(b.emptyCells, pos)
		} else {
			b.playedPositions = append(b.playedPositions, pos)
			b.playedTokens = append(b.playedTokens, cell.Token)
		}
	}
}
