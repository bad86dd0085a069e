package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tictactoe/game"
)

// Engine runs the interactive turn loop on the live board. It is the sole
// mutator of the shared board; strategies only ever receive it to read.
//
// Human players enter moves as "row col", 1-indexed from the top-left corner;
// the board itself is 0-indexed, so the engine translates. "exit" abandons
// the game and "skip" passes the turn.
type Engine struct {
	board   *game.Board
	players []Player
	round   int
	exited  bool

	in  *bufio.Scanner
	out io.Writer
}

// Option configures the engine's I/O, mainly for tests.
type Option func(*Engine)

func WithInput(r io.Reader) Option {
	return func(e *Engine) {
		e.in = bufio.NewScanner(r)
	}
}

func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// New creates an engine for board with the given players, validating each
// player's token as AddPlayer does.
func New(board *game.Board, players []Player, options ...Option) (*Engine, error) {
	e := &Engine{
		board: board,
		round: 1,
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}
	for _, option := range options {
		option(e)
	}
	for _, player := range players {
		if err := e.AddPlayer(player); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// AddPlayer appends a player, rejecting duplicate or blank tokens and
// computer players without a strategy.
func (e *Engine) AddPlayer(player Player) error {
	if strings.TrimSpace(player.Token) == "" || player.Token == game.Empty {
		return fmt.Errorf("%q is not a valid token: pick another token", player.Token)
	}
	for _, existing := range e.players {
		if existing.Token == player.Token {
			return fmt.Errorf("player with token %q already playing: pick another token", player.Token)
		}
	}
	if player.Kind == Computer && player.Strategy == nil {
		return fmt.Errorf("computer player %q needs a strategy", player.Name)
	}

	e.players = append(e.players, player)
	log.Info().
		Str("player", player.Name).
		Str("token", player.Token).
		Int("number", len(e.players)).
		Msgf("%s joined the game", player.Kind)
	return nil
}

// Winner returns the player owning the board's winning token, if any.
func (e *Engine) Winner() (Player, bool) {
	token := e.board.Winner()
	if token == game.Empty {
		return Player{}, false
	}
	for _, player := range e.players {
		if player.Token == token {
			return player, true
		}
	}
	return Player{}, false
}

// Run plays rounds until a player wins, the board fills, or someone exits.
// It returns the winning token, or game.Empty on a draw or abandoned game.
func (e *Engine) Run() (string, error) {
	if len(e.players) < 1 {
		return game.Empty, fmt.Errorf("need at least one player")
	}

	e.welcome()
	for !e.over() {
		e.playRound()
	}
	e.finish()
	return e.board.Winner(), nil
}

func (e *Engine) over() bool {
	return e.exited || e.board.Winner() != game.Empty || e.board.Full()
}

func (e *Engine) welcome() {
	fmt.Fprintln(e.out, "\nWelcome to Tic-Tac-Toe!")
	fmt.Fprintln(e.out, "The players are:")
	for i, player := range e.players {
		fmt.Fprintf(e.out, "\tPlayer %d: %s (%s) - playing as %s\n", i+1, player.Name, player.Kind, player.Token)
	}
}

// playRound gives each player one turn, in joining order.
func (e *Engine) playRound() {
	fmt.Fprintf(e.out, "%s\nRound %d:\n", strings.Repeat("=", 10), e.round)
	for i, player := range e.players {
		if i > 0 {
			fmt.Fprintln(e.out, strings.Repeat("-", 5))
		}
		e.playTurn(player)
		if e.over() {
			return
		}
	}
	e.round++
}

func (e *Engine) playTurn(player Player) {
	fmt.Fprintf(e.out, "%s to play...\n", player.Name)

	switch player.Kind {
	case Computer:
		move, ok := player.Strategy(e.board)
		if !ok {
			log.Info().Str("player", player.Name).Msg("no moves available: skipping turn")
			fmt.Fprintf(e.out, "%s has no move to make!\n", player.Name)
			return
		}
		if err := e.board.Play(move.Row, move.Col, player.Token); err != nil {
			// A strategy proposing an occupied cell is a bug, not bad input.
			panic(err)
		}
		log.Info().
			Str("player", player.Name).
			Str("token", player.Token).
			Int("row", move.Row+1).
			Int("col", move.Col+1).
			Msg("computer played")
		fmt.Fprintf(e.out, "%s played: (%d, %d)\n\n%s\n", player.Name, move.Row+1, move.Col+1, e.board)
	case Human:
		e.humanTurn(player)
	}
}

func (e *Engine) humanTurn(player Player) {
	fmt.Fprintf(e.out, "\n%s\n", e.board)
	for {
		fmt.Fprintf(e.out, "%s, enter a move: ", player.Name)
		if !e.in.Scan() {
			// Input exhausted counts as walking away.
			e.exited = true
			return
		}

		input := strings.TrimSpace(e.in.Text())
		switch strings.ToLower(input) {
		case "exit":
			fmt.Fprintf(e.out, "%s exited!\n", player.Name)
			e.exited = true
			return
		case "skip":
			fmt.Fprintf(e.out, "%s has skipped their go!\n", player.Name)
			return
		}

		move, err := parseMove(input)
		if err != nil {
			fmt.Fprintf(e.out, "%v. Enter a move as \"row col\", e.g. \"1 1\" for the top-left corner.\n", err)
			continue
		}
		// Players type 1-indexed coordinates; the board is 0-indexed.
		if err := e.board.Play(move.Row-1, move.Col-1, player.Token); err != nil {
			fmt.Fprintf(e.out, "%v Play a different position.\n", err)
			continue
		}

		fmt.Fprintf(e.out, "%s played: (%d, %d)\n\n%s\n", player.Name, move.Row, move.Col, e.board)
		return
	}
}

func parseMove(input string) (game.Position, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return game.Position{}, fmt.Errorf("expected two numbers, got %q", input)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Position{}, fmt.Errorf("%q is not a number", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Position{}, fmt.Errorf("%q is not a number", fields[1])
	}
	return game.Position{Row: row, Col: col}, nil
}

func (e *Engine) finish() {
	fmt.Fprintln(e.out, strings.Repeat("=", 10))
	if winner, ok := e.Winner(); ok {
		log.Info().Str("player", winner.Name).Str("token", winner.Token).Msg("game over")
		fmt.Fprintf(e.out, "%s has won! Congratulations!\n", winner.Name)
	} else {
		if e.board.Full() {
			fmt.Fprintln(e.out, "The board is full!")
		}
		log.Info().Msg("game over: draw")
		fmt.Fprintln(e.out, "The game ends in a draw.")
	}
	fmt.Fprintln(e.out, "Exiting game. Thanks for playing...")
}
