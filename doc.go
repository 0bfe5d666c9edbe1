// Package progressor lets a long-running operation publish structured
// progress snapshots to any number of concurrent observers, without the
// observers ever slowing the operation down.
//
// # Running an Operation
//
// The entry point is [Start], which launches a work function with a
// fresh [Controller] and returns a [Task] wrapping both the eventual
// result and the snapshot stream:
//
//	task := progressor.Start(ctx, 100, func(ctx context.Context, pc *progressor.Controller) (string, error) {
//	    for i := uint64(0); i <= 100; i++ {
//	        pc.Update(i)
//	    }
//	    pc.Complete()
//	    return "done", nil
//	})
//
// The work function reports progress via [Controller.Update],
// [Controller.UpdateWithMessage], [Controller.Pause],
// [Controller.SetTotal] and [Controller.Complete]. Each call publishes
// an immutable [Update] snapshot carrying the full state, never a
// delta.
//
// # Lifecycle
//
// Snapshots carry a [State]: Working, Paused, Completed or Cancelled.
// Completed and Cancelled are terminal; once either is published the
// controller ignores all further calls. Cancellation is implicit:
// a work function that returns or panics without calling
// [Controller.Complete] ends with exactly one Cancelled snapshot,
// published by a release deferred inside [Start]. No cleanup call is
// required, and none can be forgotten.
//
// # Observing
//
// Each call to [Task.Updates] opens an independent subscription that
// joins from "now" and ends only after a terminal snapshot is
// delivered. [Task.Stream] wraps a subscription in a pull-based
// [Stream] with Next/ForEach/Collect. [Observe] races the snapshot
// stream against the task's completion, invoking a callback per
// snapshot:
//
//	result, err := progressor.Observe(ctx, task, func(u progressor.Update) {
//	    fmt.Printf("%d/%d\n", u.Current, u.Total)
//	})
//
// # Backpressure
//
// Publishing never blocks. Each subscriber buffers a bounded number of
// snapshots ([WithCapacity], default 32); when a subscriber lags,
// intermediate snapshots are dropped for it. The terminal snapshot is
// the exception: it evicts the subscriber's oldest buffered snapshot
// if it must, so every live subscriber (and, via replay, every late
// joiner) still learns how the operation ended.
//
// # Broadcast Primitive
//
// The [github.com/baxromumarov/progressor/pubsub] subpackage provides
// the generic bounded non-blocking broadcaster underneath: one
// publisher, independently-consuming subscribers, drop-new overflow
// for regular values and evict-oldest delivery for final ones.
package progressor
