package mission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-research/scribe/pkg/agents"
	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
)

type optimizerOutput struct {
	StructuredResearchRounds    *int   `json:"structured_research_rounds,omitempty" jsonschema_description:"Override when the request clearly needs more or less depth"`
	MaxResearchCyclesPerSection *int   `json:"max_research_cycles_per_section,omitempty"`
	WritingPasses               *int   `json:"writing_passes,omitempty"`
	Reasoning                   string `json:"reasoning"`
}

// runOptimizer runs the one-shot auto-optimizer: a fast-tier look at the
// request that may override research parameters for this mission. The
// overrides are persisted to metadata before the first structured phase.
// Optimizer failure is a warning; defaults stand.
func (c *Controller) runOptimizer(ctx context.Context, mc *MissionContext, uc *models.UserContext, resolver *config.Resolver) {
	b := c.bundle(mc, uc, 0)

	var out optimizerOutput
	_, err := c.dispatcher.Call(ctx, llm.CallSpec{
		User:          uc,
		MissionID:     mc.MissionID,
		Tier:          config.TierFast,
		MaxConcurrent: b.Params.MaxConcurrentRequests,
	}, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You tune research parameters for a mission based on the request's scope. Only override a parameter when the request clearly warrants it (e.g. a quick factual lookup needs one round; a literature survey needs more). Omit everything else."},
			{Role: llm.RoleUser, Content: mc.UserRequest},
		},
		SchemaName: "parameter_overrides",
		Schema:     llm.GenerateSchema[optimizerOutput](),
	}, &out)
	if err != nil {
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:    mc.MissionID,
			AgentName:    agents.NameOptimizer,
			Action:       "Auto-Optimize Parameters",
			Status:       models.LogStatusWarning,
			ErrorMessage: err.Error(),
		})
		return
	}

	overrides := models.ResearchParamOverrides{
		StructuredResearchRounds:    out.StructuredResearchRounds,
		MaxResearchCyclesPerSection: out.MaxResearchCyclesPerSection,
		WritingPasses:               out.WritingPasses,
	}
	resolver.ApplyOverrides(overrides)

	if err := c.store.UpdateMetadata(ctx, mc.MissionID, func(md *models.MissionMetadata) {
		md.ResearchParams = resolver.MissionOverrides()
		md.OptimizerApplied = true
	}); err != nil {
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:    mc.MissionID,
			AgentName:    agents.NameOptimizer,
			Action:       "Auto-Optimize Parameters",
			Status:       models.LogStatusWarning,
			ErrorMessage: err.Error(),
		})
		return
	}

	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NameOptimizer,
		Action:        "Auto-Optimize Parameters",
		Status:        models.LogStatusSuccess,
		OutputSummary: out.Reasoning,
	})
}

// autoCreateDocumentGroup provisions a sink group for missions that asked
// for one at start time. The ingestion pipeline owns group contents; the
// core only records the reference.
func (c *Controller) autoCreateDocumentGroup(ctx context.Context, mc *MissionContext) {
	groupID := fmt.Sprintf("mission-%s-%s", mc.MissionID[:8], uuid.New().String()[:8])
	if err := c.store.UpdateMetadata(ctx, mc.MissionID, func(md *models.MissionMetadata) {
		md.DocumentGroupID = groupID
	}); err != nil {
		c.log(ctx, models.ExecutionLogEntry{
			MissionID:    mc.MissionID,
			AgentName:    agents.NameOptimizer,
			Action:       "Auto-Create Document Group",
			Status:       models.LogStatusWarning,
			ErrorMessage: err.Error(),
		})
		return
	}
	mc.DocumentGroupID = groupID
	c.log(ctx, models.ExecutionLogEntry{
		MissionID:     mc.MissionID,
		AgentName:     agents.NameOptimizer,
		Action:        "Auto-Create Document Group",
		Status:        models.LogStatusSuccess,
		OutputSummary: groupID,
	})
}
