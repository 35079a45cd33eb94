// Package pool provides a bounded-concurrency task runner over a slice of
// work items. It is the single primitive used wherever the service needs
// parallel I/O with a concurrency cap, such as bulk customer import.
package pool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Result aggregates the outcome of a batch run. Every input item is
// accounted for exactly once: len(Succeeded) + FailedCount equals the
// number of items submitted.
type Result[R any] struct {
	Succeeded   []R
	FailedCount int
}

// Run processes items with at most concurrency tasks in flight and blocks
// until every item has been claimed and finished. Workers share a single
// cursor claimed with an atomic increment, so no item is processed twice.
// Per-item failures (including panics) are counted and never abort the
// batch. Completion order is unspecified. After ctx is cancelled the
// remaining unclaimed items are counted as failed without running the task.
func Run[T, R any](ctx context.Context, items []T, concurrency int, task func(context.Context, T) (R, error)) Result[R] {
	var res Result[R]
	if len(items) == 0 {
		return res
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(items) {
		concurrency = len(items)
	}

	var (
		cursor atomic.Int64
		mu     sync.Mutex
		wg     sync.WaitGroup
	)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(cursor.Add(1)) - 1
				if idx >= len(items) {
					return
				}

				if ctx.Err() != nil {
					mu.Lock()
					res.FailedCount++
					mu.Unlock()
					continue
				}

				out, err := runTask(ctx, items[idx], task)
				mu.Lock()
				if err != nil {
					res.FailedCount++
				} else {
					res.Succeeded = append(res.Succeeded, out)
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return res
}

func runTask[T, R any](ctx context.Context, item T, task func(context.Context, T) (R, error)) (out R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(ctx, item)
}
