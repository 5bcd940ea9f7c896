package task

import (
	"slices"
	"sync"
)

// Group returns a Task that starts every member concurrently on the group's
// executor and completes once all members have completed. If any member
// fails, the group fails with the first error to arrive; remaining members
// still run to completion.
func Group(tasks []*Task) *Task {
	members := slices.Clone(tasks)
	return New(func(c *Controller) {
		if len(members) == 0 {
			c.Succeed()
			return
		}

		var (
			mu        sync.Mutex
			firstErr  error
			remaining = len(members)
		)
		for _, m := range members {
			m.Perform(c.exec, func(o Outcome) {
				mu.Lock()
				if o.Err != nil && firstErr == nil {
					firstErr = o.Err
				}
				remaining--
				last, err := remaining == 0, firstErr
				mu.Unlock()

				if !last {
					return
				}
				if err != nil {
					c.Fail(err)
					return
				}
				c.Succeed()
			})
		}
	})
}

// Sequence returns a Task that runs members one at a time in list order on
// the sequence's executor. The first failure skips the remaining members and
// fails the sequence with that error.
func Sequence(tasks []*Task) *Task {
	members := slices.Clone(tasks)
	return New(func(c *Controller) {
		var next func(i int)
		next = func(i int) {
			if i == len(members) {
				c.Succeed()
				return
			}
			members[i].Perform(c.exec, func(o Outcome) {
				if o.Err != nil {
					c.Fail(o.Err)
					return
				}
				next(i + 1)
			})
		}
		next(0)
	})
}
