package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

func TestNewTreeSearch(t *testing.T) {
	_, err := NewTreeSearch(nil)
	require.Error(t, err)

	_, err = NewTreeSearch([]string{"O", "O"})
	require.Error(t, err)

	search, err := NewTreeSearch([]string{"O", "X"})
	require.NoError(t, err)
	require.NotNil(t, search)
}

func TestTreeSearchGetMove(t *testing.T) {
	search, err := NewTreeSearch([]string{"O", "X"}, WithSeed(1))
	require.NoError(t, err)

	t.Run("empty board yields an in-bounds move", func(t *testing.T) {
		board := newBoard(t, 3)

		move, ok := search.GetMove(board, "O")
		require.True(t, ok)
		require.Contains(t, board.EmptyCells(), move)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 1, 1, "O")
		mustPlay(t, board, 0, 0, "X")
		mustPlay(t, board, 1, 0, "O")
		mustPlay(t, board, 0, 1, "X")

		move, ok := search.GetMove(board, "O")
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 1, Col: 2}, move,
			"completing the middle row wins in every continuation")
	})

	t.Run("single empty cell is returned directly", func(t *testing.T) {
		board := newBoard(t, 3)
		grid := [][]string{
			{"X", "O", "X"},
			{"X", "O", "O"},
			{"O", "X", game.Empty},
		}
		for i, row := range grid {
			for j, token := range row {
				if token != game.Empty {
					mustPlay(t, board, i, j, token)
				}
			}
		}

		move, ok := search.GetMove(board, "X")
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 2, Col: 2}, move)
	})

	t.Run("full board yields no move", func(t *testing.T) {
		board := newBoard(t, 3)
		grid := [][]string{
			{"X", "O", "X"},
			{"X", "O", "O"},
			{"O", "X", "X"},
		}
		for i, row := range grid {
			for j, token := range row {
				mustPlay(t, board, i, j, token)
			}
		}

		_, ok := search.GetMove(board, "O")
		require.False(t, ok)
	})

	t.Run("decided position yields no move", func(t *testing.T) {
		// O already owns the top row; there is nothing left worth playing.
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 0, "O")
		mustPlay(t, board, 0, 1, "O")
		mustPlay(t, board, 0, 2, "O")

		_, ok := search.GetMove(board, "X")
		require.False(t, ok)
	})

	t.Run("strategy closure binds the token", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 1, 1, "O")
		mustPlay(t, board, 0, 0, "X")
		mustPlay(t, board, 1, 0, "O")
		mustPlay(t, board, 0, 1, "X")

		strategy := search.ForToken("O")
		move, ok := strategy(board)
		require.True(t, ok)
		require.Equal(t, game.Position{Row: 1, Col: 2}, move)
	})
}
