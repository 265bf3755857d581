package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	var seen []Progress
	ctx, tracker := WithNewTracker(context.Background(), "run-1", func(p Progress) {
		seen = append(seen, p)
	})
	assert.Equal(t, "run-1", tracker.RunID)

	UpdateCtx(ctx, Delta{Terms: 1, Submissions: 4, Accepted: 2, Invalid: 1, Superseded: 1})
	UpdateCtx(ctx, Delta{Terms: 1, Submissions: 1, Ineligible: 1})

	snapshot, ok := GetSnapshot(ctx)
	assert.True(t, ok)
	assert.Equal(t, 2, snapshot.Terms)
	assert.Equal(t, 5, snapshot.Submissions)
	assert.Equal(t, 2, snapshot.Accepted)
	assert.Equal(t, 3, snapshot.Rejected())

	if assert.Len(t, seen, 2) {
		assert.Equal(t, 4, seen[0].Submissions)
		assert.Equal(t, 5, seen[1].Submissions)
	}
}

func TestTrackerAbsent(t *testing.T) {
	// A context without a tracker is a no-op.
	UpdateCtx(context.Background(), Delta{Terms: 1})
	_, ok := GetSnapshot(context.Background())
	assert.False(t, ok)
}
