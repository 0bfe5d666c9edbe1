// Package pubsub provides a bounded, non-blocking, multi-subscriber
// broadcast channel: one publisher fans values out to any number of
// independently-consuming subscribers without ever blocking.
//
// Each subscriber owns a buffered channel of fixed capacity. A regular
// [Broadcaster.TryPublish] drops the value for any subscriber whose buffer
// is full. [Broadcaster.PublishFinal] instead evicts that subscriber's
// oldest buffered value to make room, then closes every subscription, so
// a live subscriber always observes the final value even when lagging.
package pubsub

import "sync"

// Broadcaster fans published values out to all current subscribers.
//
// It is safe for one concurrent publisher and any number of concurrent
// subscriber goroutines. Publishing never blocks: backpressure is
// resolved by dropping, never by waiting.
type Broadcaster[T any] struct {
	capacity int

	mu     sync.Mutex
	subs   map[*Subscription[T]]struct{}
	closed bool
	final  *T // retained terminal value, replayed to late subscribers
}

// Subscription is one subscriber's independent cursor into a
// [Broadcaster]. Values are received from [Subscription.C].
type Subscription[T any] struct {
	b    *Broadcaster[T]
	ch   chan T
	once sync.Once
}

// New creates a Broadcaster whose subscribers each buffer up to capacity
// values. It panics if capacity <= 0.
func New[T any](capacity int) *Broadcaster[T] {
	if capacity <= 0 {
		panic("pubsub: New requires capacity > 0")
	}
	return &Broadcaster[T]{
		capacity: capacity,
		subs:     make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its Subscription.
// The subscriber receives only values published after this call.
//
// If the broadcaster has already been closed, the returned subscription
// yields the retained final value (if one was published via
// [Broadcaster.PublishFinal]) and is then immediately exhausted.
func (b *Broadcaster[T]) Subscribe() *Subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		s := &Subscription[T]{b: b, ch: make(chan T, 1)}
		if b.final != nil {
			s.ch <- *b.final
		}
		s.closeChan()
		return s
	}

	s := &Subscription[T]{b: b, ch: make(chan T, b.capacity)}
	b.subs[s] = struct{}{}
	return s
}

// TryPublish delivers v to every subscriber whose buffer has room and
// drops it for the rest. It reports how many subscribers received the
// value. Publishing to a closed broadcaster delivers to no one.
func (b *Broadcaster[T]) TryPublish(v T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}

	var n int
	for s := range b.subs {
		select {
		case s.ch <- v:
			n++
		default:
		}
	}
	return n
}

// PublishFinal delivers v to every subscriber, evicting the oldest
// buffered value of any subscriber whose buffer is full, then closes all
// subscriptions and the broadcaster. The value is retained and replayed
// to subscribers that join afterwards.
//
// PublishFinal is idempotent: only the first call publishes and closes.
func (b *Broadcaster[T]) PublishFinal(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.final = &v

	for s := range b.subs {
		select {
		case s.ch <- v:
		default:
			// Full buffer. The publisher is the only sender, so after
			// evicting one value a slot is guaranteed to be free.
			select {
			case <-s.ch:
			default:
			}
			select {
			case s.ch <- v:
			default:
			}
		}
		s.closeChan()
	}
	b.subs = nil
}

// Close closes the broadcaster and all subscriptions without publishing
// a final value. Subscribers drain whatever is already buffered, then
// see their channel closed. Safe to call multiple times.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for s := range b.subs {
		s.closeChan()
	}
	b.subs = nil
}

// Closed reports whether the broadcaster has been closed.
func (b *Broadcaster[T]) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// C returns the channel values are received from. The channel is closed
// once the broadcaster closes or the subscription itself is closed.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close detaches the subscriber from the broadcaster and closes its
// channel. Buffered values remain receivable. Safe to call multiple
// times, and safe concurrently with publishing.
func (s *Subscription[T]) Close() {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	if s.b.subs != nil {
		delete(s.b.subs, s)
	}
	s.closeChan()
}

// closeChan must be called with the broadcaster lock held so it cannot
// race a publish into the same channel.
func (s *Subscription[T]) closeChan() {
	s.once.Do(func() {
		close(s.ch)
	})
}
