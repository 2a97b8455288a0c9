package config

import (
	"sync"

	"github.com/scribe-research/scribe/pkg/models"
)

// Resolver answers parameter queries by walking the settings chain:
// mission-specific → user → global defaults. All dynamic configuration
// reads in agents and tools go through a resolver so mid-flight overrides
// take effect on the next read.
//
// Mission-level overrides are captured once at mission start (plus the
// auto-optimizer's additions); the user level is re-read from the
// UserContext on each call, so user-settings edits apply to future reads of
// parameters the mission did not pin.
type Resolver struct {
	mu       sync.RWMutex
	mission  models.ResearchParamOverrides
	defaults ResearchParams
}

// NewResolver creates a resolver with the given mission-level overrides.
func NewResolver(mission models.ResearchParamOverrides, defaults ResearchParams) *Resolver {
	return &Resolver{mission: mission, defaults: defaults}
}

// ApplyOverrides merges additional mission-level overrides (from the
// auto-optimizer). Non-nil incoming fields win over existing ones.
func (r *Resolver) ApplyOverrides(o models.ResearchParamOverrides) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mergeOverrides(&r.mission, o)
}

// MissionOverrides returns the current mission-level overrides.
func (r *Resolver) MissionOverrides() models.ResearchParamOverrides {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mission
}

// Params resolves the full parameter set for the given user context.
func (r *Resolver) Params(uc *models.UserContext) ResearchParams {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.defaults

	var user models.ResearchParamOverrides
	if uc != nil && uc.Settings != nil {
		user = uc.Settings.ResearchParams
	}

	// User level first, mission level last so it wins.
	applyOverrides(&p, user)
	applyOverrides(&p, r.mission)
	return p
}

func applyOverrides(p *ResearchParams, o models.ResearchParamOverrides) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&p.InitialExplorationDocResults, o.InitialExplorationDocResults)
	setInt(&p.InitialExplorationWebResults, o.InitialExplorationWebResults)
	setInt(&p.MainResearchDocResults, o.MainResearchDocResults)
	setInt(&p.MainResearchWebResults, o.MainResearchWebResults)
	setInt(&p.StructuredResearchRounds, o.StructuredResearchRounds)
	setInt(&p.MaxResearchCyclesPerSection, o.MaxResearchCyclesPerSection)
	setInt(&p.WritingPasses, o.WritingPasses)
	setInt(&p.MinNotesPerSectionAssignment, o.MinNotesPerSectionAssignment)
	setInt(&p.MaxNotesPerSectionAssignment, o.MaxNotesPerSectionAssignment)
	setInt(&p.MaxNotesForAssignmentReranking, o.MaxNotesForAssignmentReranking)
	setInt(&p.ThoughtPadContextLimit, o.ThoughtPadContextLimit)
	setInt(&p.WritingPreviousContentPreviewChars, o.WritingPreviousContentPreviewChars)
	setInt(&p.MaxConcurrentRequests, o.MaxConcurrentRequests)
	setBool(&p.SkipFinalReplanning, o.SkipFinalReplanning)
	setBool(&p.AutoOptimizeParams, o.AutoOptimizeParams)
	setBool(&p.AutoCreateDocumentGroup, o.AutoCreateDocumentGroup)
}

func mergeOverrides(dst *models.ResearchParamOverrides, src models.ResearchParamOverrides) {
	if src.InitialExplorationDocResults != nil {
		dst.InitialExplorationDocResults = src.InitialExplorationDocResults
	}
	if src.InitialExplorationWebResults != nil {
		dst.InitialExplorationWebResults = src.InitialExplorationWebResults
	}
	if src.MainResearchDocResults != nil {
		dst.MainResearchDocResults = src.MainResearchDocResults
	}
	if src.MainResearchWebResults != nil {
		dst.MainResearchWebResults = src.MainResearchWebResults
	}
	if src.StructuredResearchRounds != nil {
		dst.StructuredResearchRounds = src.StructuredResearchRounds
	}
	if src.MaxResearchCyclesPerSection != nil {
		dst.MaxResearchCyclesPerSection = src.MaxResearchCyclesPerSection
	}
	if src.WritingPasses != nil {
		dst.WritingPasses = src.WritingPasses
	}
	if src.MinNotesPerSectionAssignment != nil {
		dst.MinNotesPerSectionAssignment = src.MinNotesPerSectionAssignment
	}
	if src.MaxNotesPerSectionAssignment != nil {
		dst.MaxNotesPerSectionAssignment = src.MaxNotesPerSectionAssignment
	}
	if src.MaxNotesForAssignmentReranking != nil {
		dst.MaxNotesForAssignmentReranking = src.MaxNotesForAssignmentReranking
	}
	if src.ThoughtPadContextLimit != nil {
		dst.ThoughtPadContextLimit = src.ThoughtPadContextLimit
	}
	if src.WritingPreviousContentPreviewChars != nil {
		dst.WritingPreviousContentPreviewChars = src.WritingPreviousContentPreviewChars
	}
	if src.MaxConcurrentRequests != nil {
		dst.MaxConcurrentRequests = src.MaxConcurrentRequests
	}
	if src.SkipFinalReplanning != nil {
		dst.SkipFinalReplanning = src.SkipFinalReplanning
	}
	if src.AutoOptimizeParams != nil {
		dst.AutoOptimizeParams = src.AutoOptimizeParams
	}
	if src.AutoCreateDocumentGroup != nil {
		dst.AutoCreateDocumentGroup = src.AutoCreateDocumentGroup
	}
}
