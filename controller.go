package progressor

import (
	"sync"

	"github.com/baxromumarov/progressor/pubsub"
)

// Controller is the handle a work function uses to report progress. It
// is the sole mutator of the operation's progress state and the only
// component that publishes snapshots.
//
// A Controller is exclusively owned by the work function it was handed
// to; call its methods from that one goroutine. Once the controller
// reaches a terminal state (via [Controller.Complete], [Controller.Cancel],
// or release on return) every further call is a no-op: a Completed or
// Cancelled operation is never resurrected.
//
// Publishing is best-effort and never blocks: if no subscriber is
// listening, or a subscriber's buffer is full, the snapshot is dropped
// for that subscriber. Progress reporting therefore never slows down or
// fails the operation itself.
type Controller struct {
	b *pubsub.Broadcaster[Update]

	mu       sync.Mutex
	state    Update
	terminal bool
}

func newController(total uint64, b *pubsub.Broadcaster[Update]) *Controller {
	return &Controller{
		b:     b,
		state: NewUpdate(total),
	}
}

// Update reports a new progress value. The lifecycle returns to Working
// (resuming a paused operation) and any previous message is cleared.
func (c *Controller) Update(current uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminal {
		return
	}
	c.state.State = Working
	c.state.Current = current
	c.state.Message = ""
	c.b.TryPublish(c.state)
}

// UpdateWithMessage reports a new progress value together with a
// human-readable annotation. The lifecycle returns to Working.
func (c *Controller) UpdateWithMessage(current uint64, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminal {
		return
	}
	c.state.State = Working
	c.state.Current = current
	c.state.Message = message
	c.b.TryPublish(c.state)
}

// Pause signals that the operation is on hold. Current value and message
// are unchanged. Pausing an already-paused operation re-publishes the
// Paused snapshot; any subsequent Update resumes.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminal {
		return
	}
	c.state.State = Paused
	c.b.TryPublish(c.state)
}

// SetTotal replaces the target value and re-publishes the current
// snapshot so observers recompute their fractions.
func (c *Controller) SetTotal(total uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminal {
		return
	}
	c.state.Total = total
	c.b.TryPublish(c.state)
}

// Complete marks the operation as successfully finished and publishes
// the Completed snapshot. After Complete, releasing the controller does
// nothing: exactly one terminal snapshot is ever published.
func (c *Controller) Complete() {
	c.finish(Completed)
}

// Cancel releases the controller, publishing the Cancelled snapshot with
// the last-known current value and message. Calling Cancel is optional:
// a work function that returns (or panics) without calling Complete is
// cancelled automatically.
func (c *Controller) Cancel() {
	c.finish(Cancelled)
}

// Snapshot returns a copy of the current progress state without
// publishing anything.
func (c *Controller) Snapshot() Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// release is the abandonment path, deferred by [Start] so it runs on
// every exit from the work function, including early return and panic
// unwind. A controller that already completed is left untouched.
func (c *Controller) release() {
	c.finish(Cancelled)
}

// finish performs the single permitted transition into a terminal state.
// The terminal snapshot is published with evict-oldest semantics so that
// even a lagging subscriber receives it, and is retained for replay to
// subscribers that join later.
func (c *Controller) finish(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminal {
		return
	}
	c.terminal = true
	c.state.State = s
	c.b.PublishFinal(c.state)
}
