// Package simulation drives one step of the force-directed layout.
//
// [Engine.ComputeNewPositions] fans out one [task.Task] per node, computes
// each node's [force.Global] against the same unmodified snapshot of all
// nodes, and joins the results under a single short-held lock. The call is
// synchronous: it blocks until the whole group has completed and returns the
// displaced nodes together with the total movement (sum of force magnitudes).
//
// Output order is unspecified. Callers re-associate results with their
// inputs through [force.Node.Ref] or identity, never by index.
//
// Whether to run another step is the caller's decision: compare the returned
// movement against a threshold (see [DefaultMinMovement]).
//
// [SpeedTracker] keeps a short rolling window of per-step movement for
// diagnostics. It never feeds back into the force computation.
package simulation
