package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"
)

type config struct {
	size       int
	search     string
	humans     string
	goroutines int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg config
	flag.IntVar(&cfg.size, "size", meta.BOARD_SIZE, "board size (rows = columns)")
	flag.StringVar(&cfg.search, "search", "perm", "computer strategy: perm, tree, sequential or random")
	flag.StringVar(&cfg.humans, "humans", "", "comma-separated name:token pairs for human players, e.g. Alice:O")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "goroutines for outcome table construction")
	flag.Parse()

	if err := runGame(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func runGame(cfg config) error {
	board, err := game.NewBoard(cfg.size, cfg.size)
	if err != nil {
		return err
	}

	humans, err := parseHumans(cfg.humans)
	if err != nil {
		return err
	}

	// Humans take the first seats; computers fill the rest so there are
	// always at least two players.
	seats := []struct{ name, token string }{
		{"Alice", meta.TOKEN_1},
		{"Bob", meta.TOKEN_2},
	}
	players := humans
	for _, seat := range seats {
		if len(players) >= len(seats) {
			break
		}
		if tokenTaken(players, seat.token) {
			continue
		}
		players = append(players, engine.NewComputerPlayer(seat.name, seat.token, nil))
	}

	tokens := make([]string, len(players))
	for i, player := range players {
		tokens[i] = player.Token
	}

	collector := searcher.NewMetricsCollector()
	if hasComputer(players) {
		strategyFor, err := buildStrategies(cfg, board, tokens, collector)
		if err != nil {
			return err
		}
		for i, player := range players {
			if player.Kind == engine.Computer {
				players[i].Strategy = strategyFor(player.Token)
			}
		}
	}

	e, err := engine.New(board, players)
	if err != nil {
		return err
	}
	winner, err := e.Run()
	if err != nil {
		return err
	}

	metrics := collector.Complete()
	log.Info().
		Str("winner", winner).
		Int64("permutations", metrics.Permutations).
		Int64("nodes_expanded", metrics.NodesExpanded).
		Int64("pruned_children", metrics.PrunedChildren).
		Dur("search_time", metrics.Duration).
		Msg("finished")
	return nil
}

// buildStrategies returns a per-token strategy factory for the configured
// search engine.
func buildStrategies(cfg config, board *game.Board, tokens []string, collector searcher.MetricsCollector) (func(string) game.Strategy, error) {
	switch cfg.search {
	case "perm":
		search, err := searcher.NewPermutationSearch(board, tokens,
			searcher.WithGoroutines(cfg.goroutines),
			searcher.WithMetrics(collector))
		if err != nil {
			return nil, err
		}
		return search.ForToken, nil
	case "tree":
		search, err := searcher.NewTreeSearch(tokens, searcher.WithMetrics(collector))
		if err != nil {
			return nil, err
		}
		return search.ForToken, nil
	case "sequential":
		return func(string) game.Strategy { return searcher.Sequential }, nil
	case "random":
		random := searcher.Random(uint64(time.Now().UnixNano()))
		return func(string) game.Strategy { return random }, nil
	default:
		return nil, fmt.Errorf("unknown search %q: want perm, tree, sequential or random", cfg.search)
	}
}

func parseHumans(spec string) ([]engine.Player, error) {
	if spec == "" {
		return nil, nil
	}
	var players []engine.Player
	for _, pair := range strings.Split(spec, ",") {
		name, token, ok := strings.Cut(pair, ":")
		if !ok || name == "" || token == "" {
			return nil, fmt.Errorf("invalid human spec %q: want name:token", pair)
		}
		players = append(players, engine.NewHumanPlayer(name, token))
	}
	return players, nil
}

func hasComputer(players []engine.Player) bool {
	for _, player := range players {
		if player.Kind == engine.Computer {
			return true
		}
	}
	return false
}

func tokenTaken(players []engine.Player, token string) bool {
	for _, player := range players {
		if player.Token == token {
			return true
		}
	}
	return false
}
