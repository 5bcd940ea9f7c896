package graph

import (
	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// =============================================================================
// Graph - Input Serialization
// =============================================================================

// Graph is the input format of the layout command.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges,omitempty"`
}

// Node is one element to lay out.
type Node struct {
	ID     string   `json:"id"`
	Label  string   `json:"label,omitempty"` // Display label (defaults to ID)
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	X      *float64 `json:"x,omitempty"` // Optional starting center
	Y      *float64 `json:"y,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge connects two nodes by ID.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks node identifiers, sizes, starting positions and edge
// endpoints. Errors carry ErrCodeInvalidGraph.
func (g Graph) Validate() error {
	code := apperrors.ErrCodeInvalidGraph
	seen := make(map[string]struct{}, len(g.Nodes))

	for _, n := range g.Nodes {
		if err := apperrors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		if _, dup := seen[n.ID]; dup {
			return apperrors.New(code, "duplicate node id: %s", n.ID)
		}
		seen[n.ID] = struct{}{}

		if err := apperrors.ValidateNonNegative(code, n.ID+".width", n.Width); err != nil {
			return err
		}
		if err := apperrors.ValidateNonNegative(code, n.ID+".height", n.Height); err != nil {
			return err
		}
		if (n.X == nil) != (n.Y == nil) {
			return apperrors.New(code, "node %s: x and y must be set together", n.ID)
		}
		if n.X != nil {
			if err := apperrors.ValidateFinite(code, n.ID+".x", *n.X); err != nil {
				return err
			}
			if err := apperrors.ValidateFinite(code, n.ID+".y", *n.Y); err != nil {
				return err
			}
		}
	}

	for _, e := range g.Edges {
		if _, ok := seen[e.From]; !ok {
			return apperrors.New(code, "edge %s→%s: unknown node %s", e.From, e.To, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return apperrors.New(code, "edge %s→%s: unknown node %s", e.From, e.To, e.To)
		}
	}
	return nil
}

// =============================================================================
// Graph → Pipeline Conversion
// =============================================================================

// Elements converts the nodes into layout elements. The element key of each
// node is its index in Nodes.
func (g Graph) Elements() []pipeline.Element {
	out := make([]pipeline.Element, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = pipeline.Element{
			ID:     n.ID,
			Label:  n.DisplayLabel(),
			Width:  n.Width,
			Height: n.Height,
			X:      n.X,
			Y:      n.Y,
		}
	}
	return out
}
