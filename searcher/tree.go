package searcher

import (
	"fmt"
	"strings"

	"tictactoe/game"
	"tictactoe/utils"
)

// Handle references a node in a Tree's arena. Parent and child links are
// handles into the arena slice rather than pointers, so ownership stays
// acyclic.
type Handle int32

// NoHandle is the parent of the root and the result of a finished walk.
const NoHandle Handle = -1

type nodeState int

const (
	unexpanded nodeState = iota
	expanded
	terminal
)

// node is one turn of the game: a private board copy after the node's move
// was played, plus the token rotation its children will be built with.
type node struct {
	board       *game.Board
	tokens      []string
	move        game.Position
	hasMove     bool
	tokenPlayed string // game.Empty at the moveless root
	parent      Handle
	turn        int
	outcome     string // winning token, DrawOutcome, or game.Empty while undecided
	state       nodeState
	children    []Handle
}

// Tree is a game tree over reachable positions, expanded lazily one node at
// a time. When a node is expanded, candidate children that are isomorphic to
// an already-kept sibling are dropped, which collapses symmetric lines of
// play to a single representative.
type Tree struct {
	nodes   []node
	metrics MetricsCollector
}

// NewTree roots a tree at the given position. tokens[0] is the token the
// root's children will play; the root itself represents turn zero and plays
// nothing.
func NewTree(board *game.Board, tokens []string, options ...Option) (*Tree, error) {
	if err := validateTokens(tokens); err != nil {
		return nil, err
	}

	cfg := newConfig(options)
	t := &Tree{metrics: cfg.metrics}

	root := node{
		board:  board.Copy(),
		tokens: append([]string(nil), tokens...),
		parent: NoHandle,
	}
	root.outcome, root.state = classify(root.board)
	t.nodes = append(t.nodes, root)
	return t, nil
}

func classify(board *game.Board) (string, nodeState) {
	if winner := board.Winner(); winner != game.Empty {
		return winner, terminal
	}
	if board.Full() {
		return DrawOutcome, terminal
	}
	return game.Empty, unexpanded
}

// Root returns the handle of the tree's root node.
func (t *Tree) Root() Handle { return 0 }

// Len returns the number of nodes materialized so far.
func (t *Tree) Len() int { return len(t.nodes) }

// Board returns a copy of the node's board.
func (t *Tree) Board(h Handle) *game.Board { return t.nodes[h].board.Copy() }

// Move returns the move that produced the node, or false for a moveless root.
func (t *Tree) Move(h Handle) (game.Position, bool) {
	return t.nodes[h].move, t.nodes[h].hasMove
}

// TokenPlayed returns the token placed by the node's move, or game.Empty for
// a moveless root.
func (t *Tree) TokenPlayed(h Handle) string { return t.nodes[h].tokenPlayed }

// Parent returns the node's parent handle, or NoHandle for the root.
func (t *Tree) Parent(h Handle) Handle { return t.nodes[h].parent }

// Turn returns the node's turn number: zero at a moveless root, one more
// than the parent everywhere else.
func (t *Tree) Turn(h Handle) int { return t.nodes[h].turn }

// Outcome returns the node's classification: the winning token, DrawOutcome
// for a full board with no winner, or game.Empty while the game is still
// open.
func (t *Tree) Outcome(h Handle) string { return t.nodes[h].outcome }

// Terminal reports whether the node ends the game. Terminal nodes never have
// children.
func (t *Tree) Terminal(h Handle) bool { return t.nodes[h].state == terminal }

// Children returns the node's isomorphism-pruned children, expanding them on
// the first call and returning the cached handles afterwards.
func (t *Tree) Children(h Handle) []Handle {
	switch t.nodes[h].state {
	case terminal:
		return nil
	case unexpanded:
		t.expand(h)
	}
	return t.nodes[h].children
}

func (t *Tree) expand(h Handle) {
	// The moveless root hands its token list to its children as given, so
	// the first child plays tokens[0]. Every other node rotates by one so
	// each child sees the next token first.
	tokens := t.nodes[h].tokens
	if t.nodes[h].parent != NoHandle || t.nodes[h].hasMove {
		tokens = utils.Rotate(tokens)
	}

	var kept []Handle
	for _, move := range t.nodes[h].board.EmptyCells() {
		board := t.nodes[h].board.Copy()
		if err := board.Play(move.Row, move.Col, tokens[0]); err != nil {
			panic(err) // move came from the board's own empty cells
		}

		duplicate := false
		for _, sibling := range kept {
			if board.IsomorphicTo(t.nodes[sibling].board) {
				duplicate = true
				break
			}
		}
		if duplicate {
			t.metrics.AddPruned()
			continue
		}
		kept = append(kept, t.addNode(board, tokens, move, h))
	}

	t.nodes[h].children = kept
	t.nodes[h].state = expanded
	t.metrics.AddExpansion()
}

func (t *Tree) addNode(board *game.Board, tokens []string, move game.Position, parent Handle) Handle {
	n := node{
		board:       board,
		tokens:      append([]string(nil), tokens...),
		move:        move,
		hasMove:     true,
		tokenPlayed: tokens[0],
		parent:      parent,
		turn:        t.nodes[parent].turn + 1,
	}
	n.outcome, n.state = classify(board)

	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

// identity keys a node for traversal de-duplication: the move played, the
// token placed, and the resulting grid. Turn numbers and full histories are
// deliberately excluded - two nodes reached by different routes count as the
// same node if move, token and grid all match.
func (t *Tree) identity(h Handle) string {
	n := t.nodes[h]

	var sb strings.Builder
	if n.hasMove {
		fmt.Fprintf(&sb, "%d,%d\x00%s", n.move.Row, n.move.Col, n.tokenPlayed)
	}
	sb.WriteByte('\x00')
	for cell := range n.board.Cells() {
		sb.WriteString(cell.Token)
		sb.WriteByte('\x00')
	}
	return sb.String()
}
