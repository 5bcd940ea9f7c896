package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/render"
)

// Output formats.
const (
	formatSVG = "svg"
	formatDOT = "dot"
	formatPDF = "pdf"
	formatPNG = "png"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatDOT: true, formatPDF: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "svg", "dot", "pdf", "png"
	detailed bool     // add coordinates to node labels
	directed bool     // draw edges as arrows
	scale    float64  // PNG scale factor
}

// renderCommand creates the render command for drawing a computed layout.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Draw a computed layout",
		Long: `Draw a layout.json file produced by 'layout'.

Nodes are pinned at their computed positions and drawn with Graphviz
(neato). PDF and PNG output require rsvg-convert (librsvg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node coordinates in labels")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "draw edges as arrows")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'dot', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// runRender reads the layout and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	layout, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	dot := render.ToDOT(layout, render.Options{Detailed: opts.detailed, Directed: opts.directed})

	var written []string
	for _, format := range opts.formats {
		prog := newProgress(c.Logger)
		data, err := renderFormat(ctx, dot, format, opts.scale)
		if err != nil {
			printError("Render %s failed", format)
			return fmt.Errorf("render %s: %w", format, err)
		}

		path := outputPath(input, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		prog.done("Rendered " + path)
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	return nil
}

func renderFormat(ctx context.Context, dot, format string, scale float64) ([]byte, error) {
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatPDF:
		return render.PDF(ctx, dot)
	case formatPNG:
		return render.PNG(ctx, dot, scale)
	default:
		return render.SVG(ctx, dot)
	}
}

// outputPath picks the file name for one format. An explicit output is used
// as-is for a single format and as a base path for several.
func outputPath(input, output, format string, multi bool) string {
	if output == "" {
		return defaultOutput(input, "."+format)
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "." + format
}
