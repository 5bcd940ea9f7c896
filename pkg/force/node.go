package force

import "github.com/google/uuid"

// Node is a simulated point. Equality is by ID, never by position.
//
// Nodes are rebuilt every simulation step; Ref carries the caller's key
// (typically an element index) so results can be matched back to elements.
type Node struct {
	ID  uuid.UUID
	Pos Point
	Ref int
}

// NewNode creates a node with a fresh identity at (x, y).
func NewNode(ref int, x, y float64) Node {
	return Node{
		ID:  uuid.New(),
		Pos: Point{X: x, Y: y},
		Ref: ref,
	}
}

// Is reports whether n and other share the same identity.
func (n Node) Is(other Node) bool {
	return n.ID == other.ID
}
