package progressor

import (
	"context"

	"github.com/baxromumarov/progressor/pubsub"
)

// Task pairs a running operation's eventual outcome with access to its
// stream of progress snapshots. Create one via [Start].
//
// Waiting for the outcome and consuming snapshots are independent: any
// number of goroutines may call [Task.Wait], and every call to
// [Task.Updates] or [Task.Stream] opens its own subscription with its
// own cursor.
type Task[T any] struct {
	b    *pubsub.Broadcaster[Update]
	done chan struct{}

	// val and err are written once by the task goroutine before done is
	// closed; the channel close publishes them to waiters.
	val T
	err error
}

// Wait blocks until the work function returns and yields its result
// unchanged, or until ctx is done, in which case it returns ctx.Err().
// The operation keeps running when Wait gives up early; Wait may be
// called again. A panic in the work function surfaces here as a
// *PanicError.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed once the work function has
// returned and the result is available via [Task.Wait].
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Updates opens a new subscription to the operation's progress
// snapshots and returns its channel. Each call yields an independent
// subscription that starts from "now": snapshots emitted before the
// call are not replayed, with one exception — if the operation has
// already reached a terminal state, the channel yields that terminal
// snapshot so late joiners still learn the outcome.
//
// The channel is closed after a terminal snapshot (Completed or
// Cancelled) has been delivered; it never ends before one. Slow
// consumers may miss intermediate snapshots, never the terminal one.
func (t *Task[T]) Updates() <-chan Update {
	return t.b.Subscribe().C()
}

// Stream opens a new subscription like [Task.Updates] and wraps it in a
// pull-based [Stream].
func (t *Task[T]) Stream() *Stream {
	return &Stream{sub: t.b.Subscribe()}
}
