package simulation

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/task"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultStiffness is the spring constant pulling nodes to the center.
	DefaultStiffness = 0.02

	// DefaultCharge controls pairwise repulsion strength.
	DefaultCharge = 10.0

	// DefaultMinMovement is the total movement at or below which a layout
	// is considered converged.
	DefaultMinMovement = 0.3
)

// =============================================================================
// Engine
// =============================================================================

// Config holds the physical parameters of a simulation.
type Config struct {
	Stiffness float64
	Charge    float64
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{Stiffness: DefaultStiffness, Charge: DefaultCharge}
}

// Engine computes simulation steps. It holds no per-step state, so one Engine
// may serve concurrent callers.
type Engine struct {
	cfg    Config
	exec   task.Executor
	logger *log.Logger
	force  ForceFunc
}

// ForceFunc computes the net force on node for one step. nodes is the full,
// unmodified snapshot of the step and must only be read.
type ForceFunc func(node force.Node, center force.Point, nodes []force.Node) (force.Force, error)

// Option configures an Engine.
type Option func(*Engine)

// WithExecutor sets the executor per-node tasks run on. Default: task.Go.
func WithExecutor(exec task.Executor) Option {
	return func(e *Engine) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithLogger sets the engine logger. Default: discard.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithForceFunc replaces the force model. Default: force.Global with the
// engine's stiffness and charge. An error fails the node's task and with it
// the whole step.
func WithForceFunc(fn ForceFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.force = fn
		}
	}
}

// New creates an Engine. Zero-valued parameters in cfg take their defaults.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.Stiffness == 0 {
		cfg.Stiffness = DefaultStiffness
	}
	if cfg.Charge == 0 {
		cfg.Charge = DefaultCharge
	}
	e := &Engine{
		cfg:    cfg,
		exec:   task.Go,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	e.force = func(n force.Node, center force.Point, nodes []force.Node) (force.Force, error) {
		return force.Global(n, center, nodes, cfg.Stiffness, cfg.Charge), nil
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine parameters.
func (e *Engine) Config() Config { return e.cfg }

// ComputeNewPositions runs one simulation step over nodes and blocks until
// every node has been processed. It returns the displaced nodes in
// unspecified order and the sum of the applied force magnitudes.
//
// Every force is computed against the unmodified input slice, which is only
// read during the step.
func (e *Engine) ComputeNewPositions(center force.Point, nodes []force.Node) ([]force.Node, float64, error) {
	var (
		mu    sync.Mutex
		out   = make([]force.Node, 0, len(nodes))
		total float64
	)

	tasks := make(task.Tasks, 0, len(nodes))
	for _, n := range nodes {
		tasks = append(tasks, task.New(func(c *task.Controller) {
			f, err := e.force(n, center, nodes)
			if err != nil {
				c.Fail(fmt.Errorf("node %d: %w", n.Ref, err))
				return
			}
			moved := force.Apply(n, f)

			mu.Lock()
			out = append(out, moved)
			total += f.Magnitude()
			mu.Unlock()

			c.Succeed()
		}))
	}

	if err := task.Wait(e.exec, tasks.AsGroup()); err != nil {
		e.logger.Error("simulation step failed", "nodes", len(nodes), "err", err)
		return nil, 0, fmt.Errorf("compute positions: %w", err)
	}
	return out, total, nil
}

// Step is the result of one simulation step.
type Step struct {
	Nodes    []force.Node
	Movement float64
}

// Moved reports whether the step moved more than threshold, meaning another
// step should follow.
func (s Step) Moved(threshold float64) bool {
	return s.Movement > threshold
}

// Step runs ComputeNewPositions and wraps the result.
func (e *Engine) Step(center force.Point, nodes []force.Node) (Step, error) {
	out, movement, err := e.ComputeNewPositions(center, nodes)
	if err != nil {
		return Step{}, err
	}
	return Step{Nodes: out, Movement: movement}, nil
}
