package progressor

import "context"

// Observe drives the task's completion and a fresh snapshot
// subscription concurrently, invoking fn for each snapshot from the
// calling goroutine. It returns the task's result as soon as the work
// function has finished; snapshots still in flight at that point are
// discarded. If ctx is done first, Observe returns ctx.Err() and the
// operation keeps running.
/* Example:
	result, err := progressor.Observe(ctx, task, func(u progressor.Update) {
		fmt.Printf("\r%3.0f%%", u.CompletedFraction()*100)
	})
*/
func Observe[T any](ctx context.Context, task *Task[T], fn func(Update)) (T, error) {
	updates := task.Updates()
	for {
		select {
		case <-task.Done():
			return task.Wait(ctx)
		case u, ok := <-updates:
			if !ok {
				// Terminal snapshot already delivered; only the
				// completion result is left to wait for.
				updates = nil
				continue
			}
			fn(u)
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
