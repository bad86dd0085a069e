package searcher

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"tictactoe/game"
)

// Outcome scores for a finished line of play.
const (
	Win  = 100.0
	Draw = 0.0
	Loss = -Win
)

// DrawOutcome labels a terminal position with a full board and no winner.
const DrawOutcome = "Draw"

type config struct {
	goroutines int
	seed       uint64
	metrics    MetricsCollector
}

// Option configures a search at construction time.
type Option func(*config)

// WithGoroutines shards outcome-table construction across n workers. Results
// are identical to the serial build; table entries commute.
func WithGoroutines(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.goroutines = n
		}
	}
}

// WithSeed fixes the tie-break RNG for reproducible play.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithMetrics plugs in a metrics collector; the default collects nothing.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) config {
	cfg := config{
		goroutines: 1,
		seed:       uint64(time.Now().UnixNano()),
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

func validateTokens(tokens []string) error {
	if len(tokens) == 0 {
		return errors.New("need at least one player token")
	}
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if token == game.Empty || strings.TrimSpace(token) == "" {
			return fmt.Errorf("%q is not a valid player token", token)
		}
		if seen[token] {
			return fmt.Errorf("duplicate player token %q", token)
		}
		seen[token] = true
	}
	return nil
}

// score maps a terminal outcome to its value from token's perspective.
func score(outcome, token string) float64 {
	switch outcome {
	case token:
		return Win
	case DrawOutcome:
		return Draw
	default:
		return Loss
	}
}

// bestMove picks the candidate with the highest mean outcome score, breaking
// ties uniformly at random. Deliberately not minimax: averaging over all
// continuations assumes nothing about the opponent, so it can prefer a move
// that leaves a forced loss open, and it has no preference for faster wins.
func bestMove(values map[game.Position][]float64, rng *rand.Rand) game.Position {
	moves := make([]game.Position, 0, len(values))
	for move := range values {
		moves = append(moves, move)
	}
	// Fixed candidate order so a seeded RNG replays identically.
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Row != moves[j].Row {
			return moves[i].Row < moves[j].Row
		}
		return moves[i].Col < moves[j].Col
	})

	maxScore := math.Inf(-1)
	var best []game.Position
	for _, move := range moves {
		mean := stat.Mean(values[move], nil)
		if mean > maxScore {
			maxScore = mean
			best = append(best[:0], move)
		} else if mean == maxScore {
			best = append(best, move)
		}
	}
	return best[rng.Intn(len(best))]
}
