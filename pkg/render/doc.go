// Package render draws finished layouts.
//
// # Overview
//
// A [graph.Layout] already carries final node centers, so rendering never
// lays anything out again. [ToDOT] converts a layout to Graphviz DOT with
// every node pinned at its position, and [SVG] renders that DOT in-process
// with the neato engine, which honors pinned positions.
//
//	dot := render.ToDOT(layout, render.Options{})
//	svg, err := render.SVG(ctx, dot)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Coordinates
//
// Layout coordinates are points with y growing downward. Graphviz uses
// y growing upward, so ToDOT flips the y axis around the frame height.
// Node sizes are converted from points to inches (72 points per inch).
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [graph.Layout]: github.com/matzehuels/forcelayout/pkg/graph.Layout
package render
