package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// =============================================================================
// Layout - Positioned Output
// =============================================================================

// Layout is the output format of the layout command and the input of the
// render command.
//
// Node positions are centers in the content frame [0, Width] x [0, Height],
// with y growing downward. Nodes may end up outside the frame; renderers
// should not assume otherwise.
type Layout struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Center force.Point `json:"center"`

	// Run summary
	Steps     int     `json:"steps"`
	Converged bool    `json:"converged"`
	Movement  float64 `json:"movement"`

	Nodes []PositionedNode `json:"nodes"`
	Edges []Edge           `json:"edges,omitempty"`
}

// PositionedNode is a graph node with its final center.
type PositionedNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// NewLayout combines the input graph with the positions of a finished run.
// Nodes keep their input order.
func NewLayout(g Graph, res *pipeline.Result, bounds pipeline.Bounds) Layout {
	l := Layout{
		Width:     bounds.Width,
		Height:    bounds.Height,
		Center:    res.Center,
		Steps:     res.Steps,
		Converged: res.Converged,
		Movement:  res.Movement,
		Nodes:     make([]PositionedNode, len(g.Nodes)),
		Edges:     g.Edges,
	}
	for i, n := range g.Nodes {
		p := res.Positions[i]
		l.Nodes[i] = PositionedNode{
			ID:     n.ID,
			Label:  n.DisplayLabel(),
			X:      p.X,
			Y:      p.Y,
			Width:  n.Width,
			Height: n.Height,
		}
	}
	return l
}

// Node returns the positioned node with the given ID.
func (l *Layout) Node(id string) (PositionedNode, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return PositionedNode{}, false
}

// Validate checks frame dimensions, node identifiers and edge endpoints.
// Errors carry ErrCodeInvalidLayout.
func (l *Layout) Validate() error {
	code := apperrors.ErrCodeInvalidLayout
	if err := apperrors.ValidatePositive(code, "width", l.Width); err != nil {
		return err
	}
	if err := apperrors.ValidatePositive(code, "height", l.Height); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID == "" {
			return apperrors.New(code, "layout node without id")
		}
		if _, dup := seen[n.ID]; dup {
			return apperrors.New(code, "duplicate node id: %s", n.ID)
		}
		seen[n.ID] = struct{}{}
		if err := apperrors.ValidateFinite(code, n.ID+".x", n.X); err != nil {
			return err
		}
		if err := apperrors.ValidateFinite(code, n.ID+".y", n.Y); err != nil {
			return err
		}
	}
	for _, e := range l.Edges {
		_, okFrom := seen[e.From]
		_, okTo := seen[e.To]
		if !okFrom || !okTo {
			return apperrors.New(code, "edge %s→%s references an unknown node", e.From, e.To)
		}
	}
	return nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes and validates JSON bytes.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "unmarshal layout")
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Layout{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "layout file %s", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
