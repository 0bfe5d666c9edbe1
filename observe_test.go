package progressor_test

import (
	"context"
	"testing"
	"time"

	"github.com/baxromumarov/progressor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	ctx := context.Background()

	task := progressor.Start(ctx, 3, func(_ context.Context, pc *progressor.Controller) (string, error) {
		pc.Update(1)
		pc.Update(2)
		pc.Update(3)
		pc.Complete()
		return "done", nil
	})

	var seen []progressor.Update
	result, err := progressor.Observe(ctx, task, func(u progressor.Update) {
		seen = append(seen, u)
	})

	require.NoError(t, err)
	assert.Equal(t, "done", result)

	// how many snapshots arrive before the result depends on timing,
	// but whatever arrived is in publish order
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i].Current, seen[i-1].Current)
	}
}

func TestObserveAlreadyCompleted(t *testing.T) {
	ctx := context.Background()

	task := progressor.Start(ctx, 10, func(_ context.Context, pc *progressor.Controller) (int, error) {
		pc.Update(10)
		pc.Complete()
		return 7, nil
	})

	_, err := task.Wait(ctx)
	require.NoError(t, err)

	// observing a finished task still returns its result; at most the
	// replayed terminal snapshot is delivered
	var seen []progressor.Update
	result, err := progressor.Observe(ctx, task, func(u progressor.Update) {
		seen = append(seen, u)
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result)
	for _, u := range seen {
		assert.Equal(t, progressor.Completed, u.State)
	}
}

func TestObserveContextCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	task := progressor.Start(context.Background(), 1, func(_ context.Context, pc *progressor.Controller) (int, error) {
		<-release
		pc.Complete()
		return 0, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := progressor.Observe(ctx, task, func(progressor.Update) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
