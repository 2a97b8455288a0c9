package bus

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/models"
)

func collect(sub *Subscription, n int, timeout time.Duration) []*Envelope {
	var got []*Envelope
	deadline := time.After(timeout)
	for len(got) < n {
		select {
		case env, ok := <-sub.C:
			if !ok {
				return got
			}
			got = append(got, env)
		case <-deadline:
			return got
		}
	}
	return got
}

func TestBus_FIFOPerSubscriber(t *testing.T) {
	b := New()
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	for i := 0; i < 20; i++ {
		b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{
			LogID:  fmt.Sprintf("log-%d", i),
			Action: fmt.Sprintf("step %d", i),
		})
	}

	got := collect(sub, 20, 2*time.Second)
	require.Len(t, got, 20)
	for i, env := range got {
		require.NotNil(t, env.Update)
		assert.Equal(t, fmt.Sprintf("log-%d", i), env.Update.LogID)
		assert.Equal(t, KindUpdate, env.Kind())
	}
}

func TestBus_SequenceNumbersMonotonic(t *testing.T) {
	b := New()
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	b.PublishStatus(ctx, "m1", models.StatusPlanning)
	b.PublishFeedback(ctx, "m1", FeedbackPayload{Type: FeedbackNoteGenerated})
	b.PublishStats(ctx, "m1", StatsPayload{})

	got := collect(sub, 3, 2*time.Second)
	require.Len(t, got, 3)
	assert.Less(t, got[0].Seq, got[1].Seq)
	assert.Less(t, got[1].Seq, got[2].Seq)
}

func TestBus_DropPolicyShedsOldestFeedbackFirst(t *testing.T) {
	// Tiny queue; nothing draining while we flood it.
	b := New(WithQueueCap(4))
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	// Block the pump by not reading; the out channel buffers 16, so use a
	// queue pressure well beyond cap+buffer.
	for i := 0; i < 30; i++ {
		b.PublishFeedback(ctx, "m1", FeedbackPayload{Type: FeedbackToolUsageStatus, Data: map[string]any{"i": i}})
	}
	for i := 0; i < 10; i++ {
		b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{LogID: fmt.Sprintf("log-%d", i)})
	}

	// All updates must survive; feedback may be shed.
	got := collect(sub, 40, 2*time.Second)
	var updates int
	for _, env := range got {
		if env.Update != nil {
			updates++
		}
	}
	assert.Equal(t, 10, updates, "durable updates are never dropped")
	assert.Greater(t, sub.Dropped(), 0, "feedback was shed under pressure")
}

func TestBus_UpdateNeverDroppedWhenQueueFullOfDurables(t *testing.T) {
	b := New(WithQueueCap(2))
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	for i := 0; i < 25; i++ {
		b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{LogID: fmt.Sprintf("log-%d", i)})
	}
	got := collect(sub, 25, 2*time.Second)
	assert.Len(t, got, 25)
}

func TestBus_IncomingFeedbackDroppedWhenNoFeedbackQueued(t *testing.T) {
	b := New(WithQueueCap(1))
	ctx := context.Background()
	sub := b.Subscribe("m1")

	// Saturate with durables beyond the queue cap and the pump's channel
	// buffer so the queue is guaranteed non-empty, then publish feedback.
	for i := 0; i < 20; i++ {
		b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{LogID: fmt.Sprintf("log-%d", i)})
	}
	b.PublishFeedback(ctx, "m1", FeedbackPayload{Type: FeedbackThreadStatus})

	got := collect(sub, 21, 2*time.Second)
	var updates, feedback int
	for _, env := range got {
		if env.Update != nil {
			updates++
		}
		if env.Feedback != nil {
			feedback++
		}
	}
	assert.Equal(t, 20, updates, "every durable update delivered")
	assert.Equal(t, 0, feedback, "feedback into a saturated durable queue is shed")
	assert.Equal(t, 1, sub.Dropped())
	sub.Close()
}

func TestBus_TerminalStatusClosesAfterGrace(t *testing.T) {
	b := New(WithGracePeriod(50 * time.Millisecond))
	ctx := context.Background()
	sub := b.Subscribe("m1")

	b.PublishStatus(ctx, "m1", models.StatusCompleted)

	got := collect(sub, 1, time.Second)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusCompleted, got[0].Status.Status)

	// The channel closes once the grace period elapses.
	select {
	case _, ok := <-sub.C:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed after grace period")
	}
}

func TestBus_ReopenCancelsScheduledClose(t *testing.T) {
	b := New(WithGracePeriod(50 * time.Millisecond))
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	b.PublishStatus(ctx, "m1", models.StatusFailed)
	b.Reopen("m1")
	time.Sleep(120 * time.Millisecond)

	// Still deliverable after the grace period would have fired.
	b.PublishStatus(ctx, "m1", models.StatusRunning)
	got := collect(sub, 2, time.Second)
	assert.Len(t, got, 2)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	ctx := context.Background()
	sub := b.Subscribe("m1")
	sub.Close()

	b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{LogID: "after-close"})
	got := collect(sub, 1, 200*time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 0, b.SubscriberCount("m1"))
}

type capturingPersister struct {
	payloads []map[string]any
}

func (p *capturingPersister) PersistEvent(_ context.Context, _, _ string, payload map[string]any) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestBus_DurableEnvelopesPersisted(t *testing.T) {
	p := &capturingPersister{}
	b := New(WithPersister(p))
	ctx := context.Background()

	b.PublishUpdate(ctx, "m1", &models.ExecutionLogEntry{LogID: "l1"})
	b.PublishFeedback(ctx, "m1", FeedbackPayload{Type: FeedbackNoteGenerated})
	b.PublishStatus(ctx, "m1", models.StatusRunning)
	b.PublishTruncate(ctx, "m1", 2)

	// update, status, truncate persisted; feedback not.
	assert.Len(t, p.payloads, 3)
}
