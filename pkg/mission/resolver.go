package mission

import (
	"context"
	"sync"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/models"
)

// resolverRegistry holds the per-mission settings resolver. Rebuilt from
// persisted metadata on resume so mission-pinned parameters survive
// restarts.
type resolverRegistry struct {
	mu        sync.Mutex
	resolvers map[string]*config.Resolver
}

func (r *resolverRegistry) get(missionID string, metadata models.MissionMetadata, defaults config.ResearchParams) *config.Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolvers == nil {
		r.resolvers = make(map[string]*config.Resolver)
	}
	if res, ok := r.resolvers[missionID]; ok {
		return res
	}
	res := config.NewResolver(metadata.ResearchParams, defaults)
	r.resolvers[missionID] = res
	return res
}

func (r *resolverRegistry) drop(missionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resolvers, missionID)
}

// userContextFor rebuilds the user context from the mission's captured
// settings snapshot. Background runs have no live HTTP user; the snapshot
// taken at start time is authoritative.
func userContextFor(mc *MissionContext) *models.UserContext {
	return &models.UserContext{
		UserID:   mc.UserID,
		Settings: mc.Metadata.SettingsSnapshot,
	}
}

// busFeedback adapts the progress bus to the tools.Feedback interface.
type busFeedback struct {
	bus       *bus.Bus
	missionID string
	agentName string
}

// Emit implements tools.Feedback.
func (f busFeedback) Emit(ctx context.Context, feedbackType string, data map[string]any) {
	f.bus.PublishFeedback(ctx, f.missionID, bus.FeedbackPayload{
		Type:      feedbackType,
		AgentName: f.agentName,
		Data:      data,
	})
}
