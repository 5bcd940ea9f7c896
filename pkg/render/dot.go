package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/forcelayout/pkg/graph"
)

// pointsPerInch converts layout units to Graphviz node sizes.
const pointsPerInch = 72.0

// Default node size in points for nodes without an explicit size.
const (
	DefaultNodeWidth  = 54.0
	DefaultNodeHeight = 36.0
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds the final coordinates to node labels.
	Detailed bool

	// Directed draws edges as arrows.
	Directed bool
}

// ToDOT converts a layout to Graphviz DOT with every node pinned at its
// position. Positions are emitted in points (inputscale=72), the same unit
// as node sizes. Render the result with [SVG] or external neato -n tools.
func ToDOT(l graph.Layout, opts Options) string {
	kind, arrow := "graph", "--"
	if opts.Directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, fixedsize=true];\n")
	fmt.Fprintf(&buf, "  bb=\"0,0,%s,%s\";\n", fmtFloat(l.Width), fmtFloat(l.Height))
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		attrs := fmtAttrs(n, l.Height, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	if len(l.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graph.PositionedNode, frameHeight float64, detailed bool) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	if detailed {
		label = fmt.Sprintf("%s\n(%.1f, %.1f)", label, n.X, n.Y)
	}

	width, height := n.Width, n.Height
	if width <= 0 {
		width = DefaultNodeWidth
	}
	if height <= 0 {
		height = DefaultNodeHeight
	}

	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("pos=\"%s,%s!\"", fmtFloat(n.X), fmtFloat(frameHeight-n.Y)),
		"width=" + fmtFloat(width/pointsPerInch),
		"height=" + fmtFloat(height/pointsPerInch),
	}
}

// fmtFloat formats with at most three decimals and no trailing zeros.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
