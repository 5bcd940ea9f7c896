// Package pkg provides the core libraries for forcelayout.
//
// # Overview
//
// Forcelayout positions the nodes of a graph with a force-directed
// simulation: every node is pulled toward the center of the frame by a
// spring and pushed away from every other node by an inverse-square
// repulsion. Each simulation step computes all node forces concurrently
// and the host repeats steps until the total movement settles.
//
// The pkg directory is organized bottom-up:
//
//  1. [task] - Asynchronous units of work with success/failure outcomes,
//     parallel groups and ordered sequences
//  2. [force] - Pure force functions over nodes and points
//  3. [simulation] - One step of the simulation and the speed tracker
//  4. [pipeline] - The convergence loop and its attribute cache
//  5. [graph] - Serialization types for input graphs and layouts
//  6. [render] - DOT/SVG drawing of finished layouts
//  7. [config] - Tunable parameters from file and environment
//
// # Architecture
//
// The typical data flow through forcelayout:
//
//	graph.json
//	     ↓
//	[graph] package (read and validate, convert to elements)
//	     ↓
//	[pipeline] package (place, step until settled)
//	     ↓  one [simulation] step = one [task] group of per-node [force] tasks
//	layout.json
//	     ↓
//	[render] package (pinned DOT → SVG/PDF/PNG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/forcelayout/pkg/graph"
//	    "github.com/matzehuels/forcelayout/pkg/pipeline"
//	)
//
//	g, _ := graph.ReadGraphFile("graph.json")
//	opts := pipeline.Options{StepDelay: -1}
//	result, _ := pipeline.NewRunner(nil, logger).Run(ctx, g.Elements(), opts)
//	layout := graph.NewLayout(g, result, opts.Bounds())
//
// # Error Handling
//
// Library packages return coded errors from [errors]; use errors.Is with a
// code to branch on the failure kind. Task failures keep their cause and
// are reported as TASK_FAILED by the pipeline.
//
// # Observability
//
// Register [observability] hooks at startup to receive run and step
// events without adding a metrics dependency to the libraries.
//
// [task]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/task
// [force]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/force
// [simulation]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/simulation
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/pipeline
// [graph]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/forcelayout/pkg/observability
package pkg
