package graph

import (
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

func ptr(v float64) *float64 { return &v }

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantCode apperrors.Code
		check    func(t *testing.T, g Graph)
	}{
		{
			name:  "Minimal",
			input: `{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"}]}`,
			check: func(t *testing.T, g Graph) {
				if len(g.Nodes) != 2 || len(g.Edges) != 1 {
					t.Errorf("got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
				}
			},
		},
		{
			name:  "SizesAndPositions",
			input: `{"nodes":[{"id":"a","label":"Alpha","width":40,"height":20,"x":5,"y":6}]}`,
			check: func(t *testing.T, g Graph) {
				n := g.Nodes[0]
				if n.Width != 40 || n.Height != 20 || *n.X != 5 || *n.Y != 6 {
					t.Errorf("node = %+v", n)
				}
				if n.DisplayLabel() != "Alpha" {
					t.Errorf("DisplayLabel() = %q, want Alpha", n.DisplayLabel())
				}
			},
		},
		{
			name:     "DuplicateID",
			input:    `{"nodes":[{"id":"a"},{"id":"a"}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "EmptyID",
			input:    `{"nodes":[{"id":""}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "UnknownEdgeEndpoint",
			input:    `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"zzz"}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "NegativeWidth",
			input:    `{"nodes":[{"id":"a","width":-1}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "HalfPosition",
			input:    `{"nodes":[{"id":"a","x":1}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "UnknownField",
			input:    `{"nodes":[{"id":"a","weight":3}]}`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "Malformed",
			input:    `{"nodes":`,
			wantErr:  true,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if got := apperrors.GetCode(err); got != tt.wantCode {
					t.Errorf("code = %v, want %v", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadGraph: %v", err)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestGraphFileRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a", Width: 10}, {ID: "b", X: ptr(1), Y: ptr(2)}},
		Edges: []Edge{{From: "a", To: "b"}},
	}
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if len(got.Nodes) != 2 || got.Nodes[0].Width != 10 || *got.Nodes[1].Y != 2 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestElements(t *testing.T) {
	g := Graph{Nodes: []Node{
		{ID: "a", Width: 3, Height: 4},
		{ID: "b", Label: "Bee", X: ptr(7), Y: ptr(8)},
	}}

	els := g.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements", len(els))
	}
	if els[0].Label != "a" || els[0].Width != 3 || els[0].HasPosition() {
		t.Errorf("elements[0] = %+v", els[0])
	}
	if els[1].Label != "Bee" || !els[1].HasPosition() || *els[1].X != 7 {
		t.Errorf("elements[1] = %+v", els[1])
	}
}

func TestNewLayout(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a", Width: 10, Height: 5}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
	}
	res := &pipeline.Result{
		Positions: map[int]force.Point{0: {X: 1, Y: 2}, 1: {X: 3, Y: 4}},
		Center:    force.Point{X: 50, Y: 25},
		Steps:     7,
		Converged: true,
		Movement:  0.1,
	}

	l := NewLayout(g, res, pipeline.Bounds{Width: 100, Height: 50})
	if l.Width != 100 || l.Height != 50 || l.Steps != 7 || !l.Converged {
		t.Errorf("layout = %+v", l)
	}
	b, ok := l.Node("b")
	if !ok || b.X != 3 || b.Y != 4 || b.Label != "b" {
		t.Errorf("Node(b) = %+v, %v", b, ok)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := Layout{
		Width:  100,
		Height: 80,
		Center: force.Point{X: 50, Y: 40},
		Nodes:  []PositionedNode{{ID: "a", Label: "a", X: 10, Y: 20}},
	}
	path := filepath.Join(t.TempDir(), "out.layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if got.Center != l.Center || got.Nodes[0] != l.Nodes[0] {
		t.Errorf("round trip = %+v", got)
	}
}

func TestUnmarshalLayoutRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ZeroWidth", `{"width":0,"height":10,"nodes":[]}`},
		{"DuplicateNode", `{"width":10,"height":10,"nodes":[{"id":"a"},{"id":"a"}]}`},
		{"DanglingEdge", `{"width":10,"height":10,"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"b"}]}`},
		{"NotJSON", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.input))
			if !apperrors.Is(err, apperrors.ErrCodeInvalidLayout) {
				t.Errorf("err = %v, want INVALID_LAYOUT", err)
			}
		})
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "nope.json"))
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
