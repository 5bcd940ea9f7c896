// Package task provides a small composable unit of asynchronous work.
//
// A [Task] wraps a body that receives a [Controller] and must signal exactly
// one terminal [Outcome]: success or failure with an error. Tasks run on an
// [Executor], and the completion handler passed to [Task.Perform] fires
// exactly once, asynchronously, on that same executor.
//
// # Composition
//
// Tasks compose into parallel groups and ordered sequences, which are Tasks
// themselves and obey the same single-completion contract:
//
//	load := task.Group([]*task.Task{a, b, c}) // all run concurrently
//	pipe := task.Sequence([]*task.Task{x, y}) // y runs only if x succeeds
//	both := a.And(b)                          // Group of two
//	then := a.Then(b)                         // Sequence of two
//
// A group waits for every member to reach a terminal outcome. Member failures
// do not cancel siblings; the group fails with the first error observed. A
// sequence runs members one at a time in list order and stops at the first
// failure. An empty group or sequence succeeds immediately.
//
// # Executors
//
//   - [Go]: one goroutine per submission, no concurrency bound
//   - [NewPool]: at most n bodies running at once
//   - [Inline]: runs submissions on the calling goroutine (tests)
//
// Submission never blocks the caller, so groups nested inside groups cannot
// deadlock a bounded pool.
//
// # Errors
//
// [FromFunc] converts a returned error into a failure outcome. A body that
// panics is recovered and reported as a failure wrapping [ErrPanic]. There is
// no cancellation and no retry; callers resubmit a new Task to retry.
package task
