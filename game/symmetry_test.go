package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsomorphisms(t *testing.T) {
	t.Run("empty board has only itself", func(t *testing.T) {
		board := newBoard(t, 3)

		isomorphisms := board.Isomorphisms()
		require.Len(t, isomorphisms, 1)
		require.Same(t, board, isomorphisms[0], "the board itself comes first")
	})

	t.Run("center move has only itself", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 1, 1, "O")

		require.Len(t, board.Isomorphisms(), 1)
	})

	t.Run("corner move collapses to four boards", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 0, "O")

		isomorphisms := board.Isomorphisms()
		require.Len(t, isomorphisms, 4, "one per corner")
		require.Same(t, board, isomorphisms[0])

		corners := []Position{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
		for _, isomorphism := range isomorphisms {
			require.Len(t, isomorphism.PlayedPositions(), 1)
			require.Contains(t, corners, isomorphism.PlayedPositions()[0])
		}
	})

	t.Run("asymmetric board keeps all eight", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 0, "O")
		mustPlay(t, board, 0, 1, "X")

		require.Len(t, board.Isomorphisms(), 8)
	})

	t.Run("size is always between one and eight", func(t *testing.T) {
		boards := []*Board{newBoard(t, 3), newBoard(t, 4), newBoard(t, 5)}
		mustPlay(t, boards[1], 1, 2, "X")
		mustPlay(t, boards[2], 0, 4, "O")
		mustPlay(t, boards[2], 2, 2, "X")

		for _, board := range boards {
			n := len(board.Isomorphisms())
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, 8)
		}
	})

	t.Run("no duplicates survive", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 0, "O")
		mustPlay(t, board, 2, 2, "O")

		isomorphisms := board.Isomorphisms()
		for i, a := range isomorphisms {
			for _, b := range isomorphisms[i+1:] {
				require.False(t, a.Equal(b), "isomorphism set should be deduplicated by grid")
			}
		}
	})
}

func TestIsomorphicTo(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 1, "X")

		require.True(t, board.IsomorphicTo(board))
	})

	t.Run("symmetric across corners", func(t *testing.T) {
		a := newBoard(t, 7)
		mustPlay(t, a, 0, 0, "O")

		b := newBoard(t, 7)
		mustPlay(t, b, 0, 6, "O")

		require.True(t, a.IsomorphicTo(b))
		require.True(t, b.IsomorphicTo(a))
	})

	t.Run("distinguishes tokens", func(t *testing.T) {
		a := newBoard(t, 7)
		mustPlay(t, a, 0, 0, "O")

		b := newBoard(t, 7)
		mustPlay(t, b, 0, 6, "X")

		require.False(t, a.IsomorphicTo(b))
		require.False(t, b.IsomorphicTo(a))
	})

	t.Run("distinguishes non-equivalent positions", func(t *testing.T) {
		corner := newBoard(t, 3)
		mustPlay(t, corner, 0, 0, "O")

		edge := newBoard(t, 3)
		mustPlay(t, edge, 0, 1, "O")

		require.False(t, corner.IsomorphicTo(edge))
	})
}
