package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

func TestSequential(t *testing.T) {
	board := newBoard(t, 3)

	move, ok := Sequential(board)
	require.True(t, ok)
	require.Equal(t, game.Position{Row: 0, Col: 0}, move)

	mustPlay(t, board, 0, 0, "O")
	move, ok = Sequential(board)
	require.True(t, ok)
	require.Equal(t, game.Position{Row: 0, Col: 1}, move)
}

func TestSequentialFullBoard(t *testing.T) {
	board := newBoard(t, 2)
	mustPlay(t, board, 0, 0, "O")
	mustPlay(t, board, 0, 1, "X")
	mustPlay(t, board, 1, 0, "O")
	mustPlay(t, board, 1, 1, "X")

	_, ok := Sequential(board)
	require.False(t, ok)
}

func TestRandom(t *testing.T) {
	strategy := Random(7)
	board := newBoard(t, 3)
	mustPlay(t, board, 1, 1, "O")

	for i := 0; i < 20; i++ {
		move, ok := strategy(board)
		require.True(t, ok)
		require.Contains(t, board.EmptyCells(), move)
	}
}

func TestRandomFullBoard(t *testing.T) {
	board := newBoard(t, 2)
	mustPlay(t, board, 0, 0, "O")
	mustPlay(t, board, 0, 1, "X")
	mustPlay(t, board, 1, 0, "O")
	mustPlay(t, board, 1, 1, "X")

	_, ok := Random(7)(board)
	require.False(t, ok)
}
