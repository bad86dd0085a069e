package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

// endgameTree is three moves from the end, so every line of play is short
// and no two distinct nodes share an identity: the walk must cover the whole
// arena.
func endgameTree(t *testing.T) *Tree {
	t.Helper()
	board := newBoard(t, 3)
	grid := [][]string{
		{"O", "O", game.Empty},
		{"X", "X", game.Empty},
		{"O", "X", game.Empty},
	}
	for i, row := range grid {
		for j, token := range row {
			if token != game.Empty {
				mustPlay(t, board, i, j, token)
			}
		}
	}

	tree, err := NewTree(board, []string{"O", "X"})
	require.NoError(t, err)
	return tree
}

func TestWalker(t *testing.T) {
	t.Run("visits the root first, then its first child", func(t *testing.T) {
		tree := endgameTree(t)
		walker := NewWalker(tree, tree.Root())

		first, ok := walker.Next()
		require.True(t, ok)
		require.Equal(t, tree.Root(), first)

		second, ok := walker.Next()
		require.True(t, ok)
		require.Equal(t, tree.Children(tree.Root())[0], second)
	})

	t.Run("visits every node exactly once and terminates", func(t *testing.T) {
		tree := endgameTree(t)
		walker := NewWalker(tree, tree.Root())

		seen := make(map[Handle]bool)
		count := 0
		for h, ok := walker.Next(); ok; h, ok = walker.Next() {
			require.False(t, seen[h], "handle %d visited twice", h)
			seen[h] = true
			count++
		}
		require.Equal(t, tree.Len(), count, "every materialized node should be visited")

		// Exhausted walkers stay exhausted.
		_, ok := walker.Next()
		require.False(t, ok)
	})

	t.Run("walks a subtree only", func(t *testing.T) {
		tree := endgameTree(t)
		child := tree.Children(tree.Root())[0]

		walker := NewWalker(tree, child)
		first, ok := walker.Next()
		require.True(t, ok)
		require.Equal(t, child, first)

		for h, ok := walker.Next(); ok; h, ok = walker.Next() {
			require.NotEqual(t, tree.Root(), h, "the root is outside the subtree")
		}
	})

	t.Run("single terminal node walk", func(t *testing.T) {
		board := newBoard(t, 3)
		mustPlay(t, board, 0, 0, "O")
		mustPlay(t, board, 0, 1, "O")
		mustPlay(t, board, 0, 2, "O")

		tree, err := NewTree(board, []string{"X", "O"})
		require.NoError(t, err)

		walker := NewWalker(tree, tree.Root())
		h, ok := walker.Next()
		require.True(t, ok)
		require.Equal(t, tree.Root(), h)

		_, ok = walker.Next()
		require.False(t, ok)
	})
}
