package progressor

import (
	"context"

	"github.com/baxromumarov/progressor/pubsub"
)

// Start launches work in its own goroutine and returns a [Task] that
// exposes both the work function's eventual result and a broadcast
// stream of its progress snapshots. Start itself never blocks.
//
// The work function receives exclusive ownership of a fresh
// [Controller] initialized with the given total and must use it to
// report progress. Whatever the work function does, exactly one
// terminal snapshot is published:
//
//   - it calls [Controller.Complete]: a Completed snapshot;
//   - it returns without completing, calls [Controller.Cancel], or
//     panics: a Cancelled snapshot carrying the last-known progress.
//
// ctx is passed through to the work function; Start does not watch it.
// A panic in the work function is recovered and returned from
// [Task.Wait] as a *PanicError.
//
// Start panics if work is nil.
/* Example:
	task := progressor.Start(ctx, 100, func(ctx context.Context, pc *progressor.Controller) (string, error) {
		for i := uint64(0); i <= 100; i++ {
			pc.Update(i)
		}
		pc.Complete()
		return "done", nil
	})
	result, err := task.Wait(ctx)
*/
func Start[T any](
	ctx context.Context,
	total uint64,
	work func(ctx context.Context, pc *Controller) (T, error),
	opts ...Option,
) *Task[T] {
	if work == nil {
		panic("progressor: Start requires a non-nil work function")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := pubsub.New[Update](cfg.capacity)
	pc := newController(total, b)
	t := &Task[T]{b: b, done: make(chan struct{})}

	go func() {
		// LIFO: recover first, then the terminal snapshot, then the
		// completion signal.
		defer close(t.done)
		defer pc.release()
		defer func() {
			if r := recover(); r != nil {
				var zero T
				t.val, t.err = zero, newPanicError(r)
			}
		}()

		t.val, t.err = work(ctx, pc)
	}()

	return t
}
