package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/models"
)

func TestMeter_RecordLLMAccumulates(t *testing.T) {
	b := bus.New()
	m := NewMeter(b, nil)
	ctx := context.Background()

	m.RecordLLM(ctx, "m1", models.UsageRecord{Cost: 0.01, PromptTokens: 100, CompletionTokens: 50, NativeTokens: 150})
	m.RecordLLM(ctx, "m1", models.UsageRecord{Cost: 0.02, PromptTokens: 200, CompletionTokens: 100, NativeTokens: 300})
	m.RecordLLM(ctx, "other", models.UsageRecord{Cost: 9.99})

	totals := m.Totals("m1")
	assert.InDelta(t, 0.03, totals.TotalCost, 1e-9)
	assert.Equal(t, 300, totals.TotalPromptTokens)
	assert.Equal(t, 150, totals.TotalCompletionTokens)
	assert.Equal(t, 450, totals.TotalNativeTokens)
}

func TestMeter_EmitsIncrementsOnBus(t *testing.T) {
	b := bus.New()
	m := NewMeter(b, nil)
	ctx := context.Background()
	sub := b.Subscribe("m1")
	defer sub.Close()

	m.RecordLLM(ctx, "m1", models.UsageRecord{Cost: 0.05, PromptTokens: 10, CompletionTokens: 5})
	m.RecordWebSearch(ctx, "m1")

	var stats []*bus.StatsPayload
	deadline := time.After(time.Second)
	for len(stats) < 2 {
		select {
		case env := <-sub.C:
			if env.Stats != nil {
				stats = append(stats, env.Stats)
			}
		case <-deadline:
			t.Fatal("timed out waiting for stats events")
		}
	}

	require.NotNil(t, stats[0].IncrementCost)
	assert.InDelta(t, 0.05, *stats[0].IncrementCost, 1e-9)
	require.NotNil(t, stats[1].IncrementWebSearchCalls)
	assert.Equal(t, 1, *stats[1].IncrementWebSearchCalls)

	assert.Equal(t, 1, m.Totals("m1").TotalWebSearchCalls)
}

func TestMeter_PublishAbsolute(t *testing.T) {
	b := bus.New()
	m := NewMeter(b, nil)
	ctx := context.Background()

	m.RecordLLM(ctx, "m1", models.UsageRecord{Cost: 0.10, NativeTokens: 42})

	sub := b.Subscribe("m1")
	defer sub.Close()
	m.PublishAbsolute(ctx, "m1")

	select {
	case env := <-sub.C:
		require.NotNil(t, env.Stats)
		require.NotNil(t, env.Stats.TotalCost)
		assert.InDelta(t, 0.10, *env.Stats.TotalCost, 1e-9)
		require.NotNil(t, env.Stats.TotalNativeTokens)
		assert.Equal(t, 42, *env.Stats.TotalNativeTokens)
	case <-time.After(time.Second):
		t.Fatal("no stats event received")
	}
}

func TestMeter_Forget(t *testing.T) {
	m := NewMeter(bus.New(), nil)
	m.RecordLLM(context.Background(), "m1", models.UsageRecord{Cost: 1})
	m.Forget("m1")
	assert.Zero(t, m.Totals("m1").TotalCost)
}
