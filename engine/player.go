package engine

import "tictactoe/game"

// PlayerKind tags where a player's moves come from.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "Human"
	case Computer:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Player is a tagged variant: a Human is prompted for moves, a Computer asks
// its strategy. The engine dispatches on Kind.
type Player struct {
	Name     string
	Token    string
	Kind     PlayerKind
	Strategy game.Strategy // nil unless Kind == Computer
}

func NewHumanPlayer(name, token string) Player {
	return Player{Name: name, Token: token, Kind: Human}
}

func NewComputerPlayer(name, token string, strategy game.Strategy) Player {
	return Player{Name: name, Token: token, Kind: Computer, Strategy: strategy}
}
