package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/observability"
	"github.com/matzehuels/forcelayout/pkg/simulation"
)

// Runner runs layouts over an attribute cache it does not own.
//
// Consecutive runs on the same Runner continue from the cached positions,
// which is how a host re-lays out after its elements change.
type Runner struct {
	Cache  *AttributeCache
	Logger *log.Logger

	finished   chan Result
	notifyOnce sync.Once

	// engineOpts are appended to the engine options of every run.
	engineOpts []simulation.Option
}

// NewRunner creates a runner over cache.
// If cache is nil, a fresh AttributeCache is used.
// If logger is nil, log.Default() is used.
func NewRunner(cache *AttributeCache, logger *log.Logger) *Runner {
	if cache == nil {
		cache = NewAttributeCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    cache,
		Logger:   logger,
		finished: make(chan Result, 1),
	}
}

// Finished returns a channel that receives the first converged Result and is
// then closed. Later runs do not notify again.
func (r *Runner) Finished() <-chan Result {
	return r.finished
}

// Run lays out elements until the total movement of a step is at or below
// opts.MinMovement, opts.MaxSteps is reached, or ctx is done.
//
// A failed step aborts the run with a TASK_FAILED error; no partial result
// is returned.
func (r *Runner) Run(ctx context.Context, elements []Element, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	hooks := observability.Simulation()
	start := time.Now()

	if evicted := r.Cache.Evict(len(elements)); evicted > 0 {
		logger.Debug("evicted stale attributes", "count", evicted)
	}
	bounds := opts.Bounds()
	placed := PlaceUnseen(r.Cache, elements, bounds, newRand(opts.Seed))

	engine := simulation.New(opts.SimulationConfig(), append([]simulation.Option{
		simulation.WithExecutor(opts.executor()),
		simulation.WithLogger(logger),
	}, r.engineOpts...)...)
	tracker := simulation.NewSpeedTracker(opts.Window)

	result := &Result{
		Center: bounds.Center(),
		Stats:  Stats{NodeCount: len(elements), Placed: placed},
	}

	hooks.OnRunStart(ctx, len(elements))
	logger.Debug("starting layout",
		"nodes", len(elements),
		"placed", placed,
		"stiffness", opts.Stiffness,
		"charge", opts.Charge)

	for step := 1; step <= opts.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			hooks.OnAbort(ctx, step, err)
			return nil, err
		}

		stepStart := time.Now()
		nodes := r.nodes(len(elements))
		out, movement, err := engine.ComputeNewPositions(result.Center, nodes)
		if err != nil {
			hooks.OnAbort(ctx, step, err)
			logger.Error("layout pass aborted", "step", step, "err", err)
			return nil, apperrors.Wrap(apperrors.ErrCodeTaskFailed, err, "layout step %d", step)
		}
		r.store(out)
		tracker.Record(movement)

		result.Steps = step
		result.Movement = movement
		hooks.OnStepComplete(ctx, step, len(nodes), movement, time.Since(stepStart))
		logger.Debug("step",
			"step", step,
			"movement", movement,
			"avg_speed", tracker.AverageSpeed(),
			"avg_delta", tracker.AverageDelta())

		if movement <= opts.MinMovement {
			result.Converged = true
			break
		}
		if step < opts.MaxSteps {
			if err := r.wait(ctx, opts.StepDelay); err != nil {
				hooks.OnAbort(ctx, step, err)
				return nil, err
			}
		}
	}

	result.Positions = r.positions(len(elements))
	result.AverageSpeed = tracker.AverageSpeed()
	result.Stats.Duration = time.Since(start)

	if !result.Converged {
		logger.Warn("layout did not converge",
			"steps", result.Steps,
			"movement", result.Movement,
			"threshold", opts.MinMovement)
		return result, nil
	}

	hooks.OnConverged(ctx, result.Steps, result.Stats.Duration)
	logger.Info("layout converged",
		"nodes", len(elements),
		"steps", result.Steps,
		"avg_speed", result.AverageSpeed,
		"duration", result.Stats.Duration.Round(time.Millisecond))
	r.notify(*result)
	return result, nil
}

// nodes builds a fresh node per element from the cached positions.
func (r *Runner) nodes(count int) []force.Node {
	nodes := make([]force.Node, 0, count)
	for key := 0; key < count; key++ {
		a, _ := r.Cache.Get(key)
		nodes = append(nodes, force.NewNode(key, a.Position.X, a.Position.Y))
	}
	return nodes
}

// store writes step output back to the cache by Ref.
func (r *Runner) store(nodes []force.Node) {
	for _, n := range nodes {
		r.Cache.SetPosition(n.Ref, n.Pos)
	}
}

func (r *Runner) positions(count int) map[int]force.Point {
	out := make(map[int]force.Point, count)
	for key := 0; key < count; key++ {
		a, _ := r.Cache.Get(key)
		out[key] = a.Position
	}
	return out
}

func (r *Runner) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) notify(res Result) {
	r.notifyOnce.Do(func() {
		r.finished <- res
		close(r.finished)
	})
}
