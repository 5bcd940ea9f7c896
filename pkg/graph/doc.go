// Package graph provides serialization types for input graphs and layouts.
//
// This package defines the JSON formats forcelayout reads and writes: the
// node-link [Graph] handed to the layout command and the positioned [Layout]
// it produces.
//
// # Architecture
//
// The package sits at the serialization boundary between files and the
// layout loop:
//
//   - [Graph], [Layout]: Serialization types (this package)
//   - pkg/pipeline.Element: what the layout loop consumes
//   - pkg/pipeline.Result: what the layout loop produces
//
// Use [Graph.Elements] and [NewLayout] to convert between them.
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format. Sizes and starting positions
// are optional:
//
//	{
//	  "nodes": [{"id": "a", "width": 40, "height": 20}, {"id": "b", "x": 10, "y": 10}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Edges do not take part in the simulation; they are carried into the
// layout so renderers can draw them.
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("graph.json")   // File → Graph (validated)
//	elements := g.Elements()                    // Graph → pipeline input
//	l := graph.NewLayout(g, result, bounds)     // pipeline output → Layout
//	graph.WriteLayoutFile(l, "graph.layout.json")
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
