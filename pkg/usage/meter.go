// Package usage accumulates per-mission cost and token rollups and emits
// stats_update increments on the progress bus. Individual usage records are
// consumed here and discarded; only rollups persist.
package usage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/models"
)

// StatsStore persists rollup deltas to the mission row.
// Implemented by services.MissionService.
type StatsStore interface {
	AddMissionUsage(ctx context.Context, missionID string, delta models.MissionStats) error
}

// Meter aggregates usage per mission.
type Meter struct {
	bus   *bus.Bus
	store StatsStore // nil = in-memory only

	mu     sync.Mutex
	totals map[string]*models.MissionStats
}

// NewMeter creates a usage meter.
func NewMeter(b *bus.Bus, store StatsStore) *Meter {
	return &Meter{
		bus:    b,
		store:  store,
		totals: make(map[string]*models.MissionStats),
	}
}

// RecordLLM consumes a usage record from an LLM call.
func (m *Meter) RecordLLM(ctx context.Context, missionID string, rec models.UsageRecord) {
	delta := models.MissionStats{
		TotalCost:             rec.Cost,
		TotalPromptTokens:     rec.PromptTokens,
		TotalCompletionTokens: rec.CompletionTokens,
		TotalNativeTokens:     rec.NativeTokens,
	}
	m.apply(ctx, missionID, delta)

	m.bus.PublishStats(ctx, missionID, bus.StatsPayload{
		IncrementCost:             &rec.Cost,
		IncrementPromptTokens:     &rec.PromptTokens,
		IncrementCompletionTokens: &rec.CompletionTokens,
		IncrementNativeTokens:     &rec.NativeTokens,
	})
}

// RecordWebSearch consumes a web search tool invocation.
func (m *Meter) RecordWebSearch(ctx context.Context, missionID string) {
	m.apply(ctx, missionID, models.MissionStats{TotalWebSearchCalls: 1})

	one := 1
	m.bus.PublishStats(ctx, missionID, bus.StatsPayload{
		IncrementWebSearchCalls: &one,
	})
}

// Totals returns a copy of the in-memory rollup for a mission.
func (m *Meter) Totals(missionID string) models.MissionStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.totals[missionID]; ok {
		return *t
	}
	return models.MissionStats{}
}

// PublishAbsolute emits the current rollup as an absolute stats_update.
func (m *Meter) PublishAbsolute(ctx context.Context, missionID string) {
	t := m.Totals(missionID)
	m.bus.PublishStats(ctx, missionID, bus.StatsPayload{
		TotalCost:           &t.TotalCost,
		TotalPromptTokens:   &t.TotalPromptTokens,
		TotalNativeTokens:   &t.TotalNativeTokens,
		TotalWebSearchCalls: &t.TotalWebSearchCalls,
	})
}

// Forget drops the in-memory rollup for a finished mission.
func (m *Meter) Forget(missionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.totals, missionID)
}

func (m *Meter) apply(ctx context.Context, missionID string, delta models.MissionStats) {
	m.mu.Lock()
	t, ok := m.totals[missionID]
	if !ok {
		t = &models.MissionStats{}
		m.totals[missionID] = t
	}
	t.TotalCost += delta.TotalCost
	t.TotalPromptTokens += delta.TotalPromptTokens
	t.TotalCompletionTokens += delta.TotalCompletionTokens
	t.TotalNativeTokens += delta.TotalNativeTokens
	t.TotalWebSearchCalls += delta.TotalWebSearchCalls
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.AddMissionUsage(ctx, missionID, delta); err != nil {
			slog.Warn("Failed to persist usage delta",
				"mission_id", missionID, "error", err)
		}
	}
}
