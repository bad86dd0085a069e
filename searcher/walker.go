package searcher

// Walker traverses a Tree depth-first in pre-order, expanding nodes on
// demand. Every distinct node is yielded exactly once: the visited set is
// keyed by node identity (move, token played, resulting grid), so a position
// that recurs elsewhere in the tree is skipped along with its subtree.
type Walker struct {
	tree    *Tree
	stack   []Handle
	visited map[string]bool
}

// NewWalker starts a traversal of the subtree rooted at start.
func NewWalker(tree *Tree, start Handle) *Walker {
	return &Walker{
		tree:    tree,
		stack:   []Handle{start},
		visited: make(map[string]bool),
	}
}

// Next returns the next unvisited node, or false when the subtree is
// exhausted.
func (w *Walker) Next() (Handle, bool) {
	for len(w.stack) > 0 {
		h := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		key := w.tree.identity(h)
		if w.visited[key] {
			continue
		}
		w.visited[key] = true

		// Push children in reverse so the first child is visited first.
		children := w.tree.Children(h)
		for i := len(children) - 1; i >= 0; i-- {
			w.stack = append(w.stack, children[i])
		}
		return h, true
	}
	return NoHandle, false
}
