// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about layout runs and individual simulation steps.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by library packages.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSimulationHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Simulation().OnStepComplete(ctx, step, nodes, movement, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Simulation Hooks
// =============================================================================

// SimulationHooks receives events from the layout loop.
type SimulationHooks interface {
	// OnRunStart records the start of a layout run over nodeCount elements.
	OnRunStart(ctx context.Context, nodeCount int)

	// OnStepComplete records one finished simulation step.
	OnStepComplete(ctx context.Context, step, nodeCount int, movement float64, duration time.Duration)

	// OnConverged records a run whose movement fell to the threshold.
	OnConverged(ctx context.Context, steps int, duration time.Duration)

	// OnAbort records a run stopped by an error or cancellation.
	OnAbort(ctx context.Context, step int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSimulationHooks is a no-op implementation of SimulationHooks.
type NoopSimulationHooks struct{}

func (NoopSimulationHooks) OnRunStart(context.Context, int)                                  {}
func (NoopSimulationHooks) OnStepComplete(context.Context, int, int, float64, time.Duration) {}
func (NoopSimulationHooks) OnConverged(context.Context, int, time.Duration)                  {}
func (NoopSimulationHooks) OnAbort(context.Context, int, error)                              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	simulationHooks SimulationHooks = NoopSimulationHooks{}
	hooksMu         sync.RWMutex
)

// SetSimulationHooks registers custom simulation hooks.
// This should be called once at application startup before any layout runs.
func SetSimulationHooks(h SimulationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		simulationHooks = h
	}
}

// Simulation returns the registered simulation hooks.
func Simulation() SimulationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return simulationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	simulationHooks = NoopSimulationHooks{}
}
