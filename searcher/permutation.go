package searcher

import (
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// PermutationSearch classifies every ordering of the remaining moves up
// front, then answers move queries from the resulting outcome table.
//
// There are len(empty cells)! orderings - 9! = 362,880 for an empty 3x3
// board - so this is only tractable for very small boards; a 5x5 board is
// already ~10^25 orderings. The table is built once, on construction, and is
// immutable afterwards.
type permutationOutcome struct {
	moves  []game.Position
	winner string // winning token, or DrawOutcome
}

type PermutationSearch struct {
	tokens     []string
	outcomes   []permutationOutcome
	goroutines int
	metrics    MetricsCollector

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewPermutationSearch builds the outcome table for the board's current
// position, with tokens cycling round-robin in the given play order.
func NewPermutationSearch(board *game.Board, tokens []string, options ...Option) (*PermutationSearch, error) {
	if err := validateTokens(tokens); err != nil {
		return nil, err
	}

	cfg := newConfig(options)
	s := &PermutationSearch{
		tokens:     append([]string(nil), tokens...),
		goroutines: cfg.goroutines,
		metrics:    cfg.metrics,
		rng:        rand.New(rand.NewSource(cfg.seed)),
	}

	s.metrics.Start()
	s.buildTable(board)
	return s, nil
}

func (s *PermutationSearch) buildTable(board *game.Board) {
	perms := permutations(board.EmptyCells())
	log.Info().Int("permutations", len(perms)).Msg("building outcome table")

	s.outcomes = make([]permutationOutcome, len(perms))

	var wg sync.WaitGroup
	chunk := (len(perms) + s.goroutines - 1) / s.goroutines
	for lo := 0; lo < len(perms); lo += chunk {
		hi := min(lo+chunk, len(perms))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				s.outcomes[i] = permutationOutcome{
					moves:  perms[i],
					winner: s.replay(board, perms[i]),
				}
				s.metrics.AddPermutation()
			}
		}(lo, hi)
	}
	wg.Wait()
}

// replay plays moves in order on a private copy of board and returns the
// first winner, or DrawOutcome if the moves run out with no winner.
func (s *PermutationSearch) replay(board *game.Board, moves []game.Position) string {
	replay := board.Copy()
	player := 0
	for _, move := range moves {
		if err := replay.Play(move.Row, move.Col, s.tokens[player]); err != nil {
			panic(err) // moves come from the board's own empty cells
		}
		if winner := replay.Winner(); winner != game.Empty {
			return winner
		}
		player = (player + 1) % len(s.tokens)
	}
	return DrawOutcome
}

// Permutations returns the number of entries in the outcome table.
func (s *PermutationSearch) Permutations() int {
	return len(s.outcomes)
}

// GetMove returns the best next move for token on board, or false when no
// move is available. The table is filtered to permutations whose prefix
// matches the moves played so far, in order; each candidate next move is then
// scored by the mean outcome value over its surviving permutations.
func (s *PermutationSearch) GetMove(board *game.Board, token string) (game.Position, bool) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return game.Position{}, false
	}
	if len(empty) == 1 {
		return empty[0], true
	}

	played := board.PlayedPositions()
	values := make(map[game.Position][]float64)
	for _, entry := range s.outcomes {
		if !hasPrefix(entry.moves, played) {
			continue
		}
		move := entry.moves[len(played)]
		values[move] = append(values[move], score(entry.winner, token))
	}
	if len(values) == 0 {
		// Board is not a continuation of the position the table was built
		// for; there is nothing to recommend.
		return game.Position{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return bestMove(values, s.rng), true
}

// ForToken binds token so the engine can use the search as a plain per-player
// strategy.
func (s *PermutationSearch) ForToken(token string) game.Strategy {
	return func(board *game.Board) (game.Position, bool) {
		return s.GetMove(board, token)
	}
}

func hasPrefix(moves, prefix []game.Position) bool {
	if len(prefix) > len(moves) {
		return false
	}
	for i, move := range prefix {
		if moves[i] != move {
			return false
		}
	}
	return true
}

// permutations returns every ordering of positions (Heap's algorithm). The
// result has len(positions)! entries.
func permutations(positions []game.Position) [][]game.Position {
	if len(positions) == 0 {
		return nil
	}

	work := append([]game.Position(nil), positions...)
	var result [][]game.Position

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			result = append(result, append([]game.Position(nil), work...))
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	generate(len(work))
	return result
}
