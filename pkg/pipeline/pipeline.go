// Package pipeline runs a force-directed layout to convergence.
//
// This package is the host side of the simulation: it owns the attribute
// cache that carries element positions from one step to the next, seeds
// unseen elements at random positions inside the content bounds, repeatedly
// calls [simulation.Engine.ComputeNewPositions], and decides when the layout
// has converged.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.NewAttributeCache(), logger)
//	opts := pipeline.Options{Width: 800, Height: 600}
//	result, err := runner.Run(ctx, elements, opts)
//	if err != nil {
//	    return err
//	}
//	for key, pos := range result.Positions {
//	    elements[key] // is now centered at pos
//	}
//
// A Runner delivers a single "layout finished" notification on
// [Runner.Finished] the first time a run converges.
//
// # Convergence
//
// After every step the total movement is compared with
// [Options.MinMovement]. Movement at or below the threshold ends the run.
// Otherwise the runner waits [Options.StepDelay] and steps again, up to
// [Options.MaxSteps]. A run that exhausts MaxSteps returns its positions
// with Converged set to false.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/simulation"
	"github.com/matzehuels/forcelayout/pkg/task"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultWidth is the default content width.
	DefaultWidth = 800.0

	// DefaultHeight is the default content height.
	DefaultHeight = 600.0

	// DefaultSeed is the default random seed for initial placement.
	DefaultSeed = uint64(42)

	// DefaultStepDelay is the pause between consecutive steps.
	DefaultStepDelay = 50 * time.Millisecond

	// DefaultMaxSteps bounds the number of steps of one run.
	DefaultMaxSteps = 1000
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a layout run.
type Options struct {
	// Physics. Zero values take the simulation defaults, so a MinMovement
	// of 0 cannot request convergence only at rest; use a small positive
	// threshold instead.
	Stiffness   float64 `json:"stiffness,omitempty"`
	Charge      float64 `json:"charge,omitempty"`
	MinMovement float64 `json:"min_movement,omitempty"`

	// Loop control. A negative StepDelay disables the pause between steps.
	StepDelay time.Duration `json:"step_delay,omitempty"`
	MaxSteps  int           `json:"max_steps,omitempty"`
	Workers   int           `json:"workers,omitempty"` // 0 = one goroutine per node
	Window    int           `json:"window,omitempty"`  // speed diagnostics window

	// Content bounds and placement
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Seed   uint64  `json:"seed,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger   `json:"-"`
	Executor task.Executor `json:"-"` // overrides Workers

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults applies defaults for zero values and rejects
// unusable parameters. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Stiffness == 0 {
		o.Stiffness = simulation.DefaultStiffness
	}
	if o.Charge == 0 {
		o.Charge = simulation.DefaultCharge
	}
	if o.MinMovement == 0 {
		o.MinMovement = simulation.DefaultMinMovement
	}
	if o.StepDelay == 0 {
		o.StepDelay = DefaultStepDelay
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.Window == 0 {
		o.Window = simulation.DefaultWindow
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	code := apperrors.ErrCodeInvalidInput
	checks := []error{
		apperrors.ValidatePositive(code, "stiffness", o.Stiffness),
		apperrors.ValidatePositive(code, "charge", o.Charge),
		apperrors.ValidateNonNegative(code, "min_movement", o.MinMovement),
		apperrors.ValidatePositive(code, "width", o.Width),
		apperrors.ValidatePositive(code, "height", o.Height),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if o.MaxSteps < 0 {
		return apperrors.New(code, "max_steps must not be negative (got: %d)", o.MaxSteps)
	}
	if o.Workers < 0 {
		return apperrors.New(code, "workers must not be negative (got: %d)", o.Workers)
	}

	o.validated = true
	return nil
}

// Bounds returns the content bounds.
func (o *Options) Bounds() Bounds {
	return Bounds{Width: o.Width, Height: o.Height}
}

// SimulationConfig returns the physical parameters for the engine.
func (o *Options) SimulationConfig() simulation.Config {
	return simulation.Config{Stiffness: o.Stiffness, Charge: o.Charge}
}

// executor resolves the executor per-node tasks run on.
func (o *Options) executor() task.Executor {
	if o.Executor != nil {
		return o.Executor
	}
	if o.Workers > 0 {
		return task.NewPool(o.Workers)
	}
	return task.Go
}

// Bounds is the rectangle [0, Width] x [0, Height] elements are laid out in.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the geometric center, the point of attraction.
func (b Bounds) Center() force.Point {
	return force.Point{X: b.Width / 2, Y: b.Height / 2}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outcome of a layout run.
type Result struct {
	// Positions maps element index to its final center position.
	Positions map[int]force.Point

	// Center is the point of attraction the run used.
	Center force.Point

	// Steps is the number of simulation steps performed.
	Steps int

	// Movement is the total movement of the last step.
	Movement float64

	// AverageSpeed is the mean movement over the diagnostics window.
	AverageSpeed float64

	// Converged reports whether movement fell to MinMovement.
	Converged bool

	// Stats contains timing information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	NodeCount int
	Placed    int // elements given a random initial position
	Duration  time.Duration
}

// String summarizes the result for logs.
func (r *Result) String() string {
	return fmt.Sprintf("%d nodes, %d steps, movement %.3f, converged %t",
		r.Stats.NodeCount, r.Steps, r.Movement, r.Converged)
}
