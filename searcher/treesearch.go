package searcher

import (
	"sync"

	"golang.org/x/exp/rand"

	"tictactoe/game"
	"tictactoe/utils"
)

// TreeSearch answers move queries by growing a pruned game tree from the
// queried position: the root's children are the isomorphism-unique first
// moves, and each child is scored by the mean outcome over every terminal in
// its subtree. Because a pruned sibling's representative move is itself a
// legal move on the queried board, the returned move is always playable.
type TreeSearch struct {
	tokens  []string
	metrics MetricsCollector

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewTreeSearch creates a tree-backed move supplier for the given token play
// order.
func NewTreeSearch(tokens []string, options ...Option) (*TreeSearch, error) {
	if err := validateTokens(tokens); err != nil {
		return nil, err
	}

	cfg := newConfig(options)
	return &TreeSearch{
		tokens:  append([]string(nil), tokens...),
		metrics: cfg.metrics,
		rng:     rand.New(rand.NewSource(cfg.seed)),
	}, nil
}

// GetMove returns the best next move for token on board, or false when no
// move is available.
func (s *TreeSearch) GetMove(board *game.Board, token string) (game.Position, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return game.Position{}, false
	}
	if len(empty) == 1 {
		return empty[0], true
	}

	// Rotate the play order so that token moves first from this position.
	tokens := append([]string(nil), s.tokens...)
	if i := utils.FindIndex(tokens, token); i > 0 {
		tokens = append(tokens[i:], tokens[:i]...)
	}

	tree, err := NewTree(board, tokens, WithMetrics(s.metrics))
	if err != nil {
		panic(err) // tokens were validated at construction
	}

	root := tree.Root()
	children := tree.Children(root)
	if len(children) == 0 {
		// The position is already decided; there is no move worth making.
		return game.Position{}, false
	}

	values := make(map[game.Position][]float64, len(children))
	for _, child := range children {
		move, _ := tree.Move(child)
		walker := NewWalker(tree, child)
		for h, ok := walker.Next(); ok; h, ok = walker.Next() {
			if outcome := tree.Outcome(h); outcome != game.Empty {
				values[move] = append(values[move], score(outcome, token))
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return bestMove(values, s.rng), true
}

// ForToken binds token so the engine can use the search as a plain per-player
// strategy.
func (s *TreeSearch) ForToken(token string) game.Strategy {
	return func(board *game.Board) (game.Position, bool) {
		return s.GetMove(board, token)
	}
}
