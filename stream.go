package progressor

import (
	"context"
	"io"

	"github.com/baxromumarov/progressor/pubsub"
)

// Stream is a pull-based view of one subscription to a task's progress
// snapshots. Create one via [Task.Stream].
//
// Note: a Stream is single-consumer; do not call Next concurrently.
type Stream struct {
	sub *pubsub.Subscription[Update]
}

// Next returns the next snapshot. It returns io.EOF once the
// subscription is exhausted, which happens only after a terminal
// snapshot has been delivered (or after [Stream.Close]). It returns
// ctx.Err() if ctx is done first; the stream remains usable.
func (s *Stream) Next(ctx context.Context) (Update, error) {
	select {
	case <-ctx.Done():
		return Update{}, ctx.Err()
	case u, ok := <-s.sub.C():
		if !ok {
			return Update{}, io.EOF
		}
		return u, nil
	}
}

// ForEach invokes fn for every remaining snapshot. It returns nil once
// the stream is exhausted, or ctx.Err() if ctx is done first.
func (s *Stream) ForEach(ctx context.Context, fn func(Update)) error {
	for {
		u, err := s.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fn(u)
	}
}

// Collect drains the stream into a slice. On early exit (ctx done) it
// returns the snapshots gathered so far alongside the error, following
// io.Reader conventions.
func (s *Stream) Collect(ctx context.Context) ([]Update, error) {
	var out []Update
	err := s.ForEach(ctx, func(u Update) {
		out = append(out, u)
	})
	return out, err
}

// Close detaches the underlying subscription. Snapshots already
// buffered remain readable via Next; afterwards Next returns io.EOF.
// Safe to call multiple times.
func (s *Stream) Close() {
	s.sub.Close()
}
