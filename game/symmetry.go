package game

// The board's symmetry group is the dihedral group of the square: three
// rotations plus four reflections, on top of the identity. Collapsing states
// that only differ by one of these transforms is what keeps exhaustive tree
// search tractable beyond 3x3 - e.g. all four opening corner moves are one
// state.

var (
	rotationDegrees = []int{90, 180, 270}
	reflectionAxes  = []Axis{Horizontal, Vertical, MainDiagonal, AntiDiagonal}
)

// Isomorphisms returns the boards reachable from b under the symmetry group:
// b itself first, then its unique rotations (90, 180, 270) and reflections
// (horizontal, vertical, main diagonal, anti-diagonal) in that order, with
// any transform equal by grid to an earlier entry discarded. The result has
// between 1 and 8 boards.
func (b *Board) Isomorphisms() []*Board {
	isomorphisms := []*Board{b}

	for _, degrees := range rotationDegrees {
		rotated, err := b.Rotate(degrees)
		if err != nil {
			panic(err) // degrees are the fixed legal set
		}
		if !containsBoard(isomorphisms, rotated) {
			isomorphisms = append(isomorphisms, rotated)
		}
	}
	for _, axis := range reflectionAxes {
		reflected, err := b.Reflect(axis)
		if err != nil {
			panic(err)
		}
		if !containsBoard(isomorphisms, reflected) {
			isomorphisms = append(isomorphisms, reflected)
		}
	}
	return isomorphisms
}

// IsomorphicTo reports whether b appears, by grid equality, in other's
// isomorphism set. The relation is reflexive and symmetric.
func (b *Board) IsomorphicTo(other *Board) bool {
	for _, isomorphism := range other.Isomorphisms() {
		if b.Equal(isomorphism) {
			return true
		}
	}
	return false
}

func containsBoard(boards []*Board, board *Board) bool {
	for _, b := range boards {
		if board.Equal(b) {
			return true
		}
	}
	return false
}
