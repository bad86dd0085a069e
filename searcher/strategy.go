package searcher

import (
	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// Baseline strategies, useful as opponents and in tests.

// Sequential returns the first available empty cell.
func Sequential(board *game.Board) (game.Position, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return game.Position{}, false
	}
	return empty[0], true
}

// Random returns a strategy that picks uniformly among the empty cells.
func Random(seed uint64) game.Strategy {
	rng := rand.New(rand.NewSource(seed))
	return func(board *game.Board) (game.Position, bool) {
		empty := board.EmptyCells()
		if len(empty) == 0 {
			return game.Position{}, false
		}
		return empty[rng.Intn(len(empty))], true
	}
}
