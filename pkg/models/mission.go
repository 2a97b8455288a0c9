package models

import "time"

// Mission status values. Terminal statuses (completed, failed) are sticky:
// only an explicit resume reopens the mission.
const (
	StatusPending   = "pending"
	StatusPlanning  = "planning"
	StatusRunning   = "running"
	StatusStopped   = "stopped"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// IsTerminalStatus reports whether the status is sticky.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// UserContext identifies the requesting user and carries the user-level
// settings snapshot. Every dispatcher and tool call receives one explicitly;
// there is no ambient "current user".
type UserContext struct {
	UserID   string        `json:"user_id"`
	Settings *UserSettings `json:"settings,omitempty"`
}

// UserSettings holds the per-user configuration consulted by the settings
// resolver between mission-specific settings and global defaults.
type UserSettings struct {
	ResearchParams ResearchParamOverrides  `json:"research_params,omitempty"`
	ModelTiers     map[string]TierBinding  `json:"model_tiers,omitempty"`
	Search         *SearchSettings         `json:"search,omitempty"`
	Extra          map[string]any          `json:"extra,omitempty"`
}

// TierBinding binds a logical model tier to a concrete provider + model.
type TierBinding struct {
	Provider string `json:"provider"`
	BaseURL  string `json:"base_url,omitempty"`
	Model    string `json:"model"`
}

// SearchSettings selects and parameterizes the web search provider.
type SearchSettings struct {
	Provider       string   `json:"provider,omitempty"` // "tavily", "linkup", "searxng"
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
}

// ResearchParamOverrides is a partial set of research parameters. Nil fields
// mean "not set at this level" so the resolver can fall through.
type ResearchParamOverrides struct {
	InitialExplorationDocResults       *int  `json:"initial_exploration_doc_results,omitempty"`
	InitialExplorationWebResults       *int  `json:"initial_exploration_web_results,omitempty"`
	MainResearchDocResults             *int  `json:"main_research_doc_results,omitempty"`
	MainResearchWebResults             *int  `json:"main_research_web_results,omitempty"`
	StructuredResearchRounds           *int  `json:"structured_research_rounds,omitempty"`
	MaxResearchCyclesPerSection        *int  `json:"max_research_cycles_per_section,omitempty"`
	WritingPasses                      *int  `json:"writing_passes,omitempty"`
	MinNotesPerSectionAssignment       *int  `json:"min_notes_per_section_assignment,omitempty"`
	MaxNotesPerSectionAssignment       *int  `json:"max_notes_per_section_assignment,omitempty"`
	MaxNotesForAssignmentReranking     *int  `json:"max_notes_for_assignment_reranking,omitempty"`
	ThoughtPadContextLimit             *int  `json:"thought_pad_context_limit,omitempty"`
	WritingPreviousContentPreviewChars *int  `json:"writing_previous_content_preview_chars,omitempty"`
	MaxConcurrentRequests              *int  `json:"max_concurrent_requests,omitempty"`
	SkipFinalReplanning                *bool `json:"skip_final_replanning,omitempty"`
	AutoOptimizeParams                 *bool `json:"auto_optimize_params,omitempty"`
	AutoCreateDocumentGroup            *bool `json:"auto_create_document_group,omitempty"`
}

// MissionMetadata is the typed metadata blob stored on the mission row.
// Known fields are explicit; Extra carries forward-compatible free-form data.
type MissionMetadata struct {
	ToolSelection    ToolSelection          `json:"tool_selection"`
	DocumentGroupID  string                 `json:"document_group_id,omitempty"`
	SettingsSnapshot *UserSettings          `json:"settings_snapshot,omitempty"`
	ResearchParams   ResearchParamOverrides `json:"research_params,omitempty"`
	FinalQuestions   []string               `json:"final_questions,omitempty"`
	OptimizerApplied bool                   `json:"optimizer_applied,omitempty"`
	CurrentPhase     string                 `json:"current_phase,omitempty"`
	CurrentRound     int                    `json:"current_round,omitempty"`
	Extra            map[string]any         `json:"extra,omitempty"`
}

// ToolSelection records which capability families the mission may use.
type ToolSelection struct {
	LocalRAG  bool `json:"local_rag"`
	WebSearch bool `json:"web_search"`
}

// Pads are the mission's ordered scratch areas.
type Pads struct {
	GoalPad     []string          `json:"goal_pad,omitempty"`
	ThoughtPad  []string          `json:"thought_pad,omitempty"`
	Scratchpads map[string]string `json:"agent_scratchpads,omitempty"`
}

// CreateMissionRequest contains fields for creating a new mission.
type CreateMissionRequest struct {
	UserRequest     string                  `json:"user_request"`
	ChatID          string                  `json:"chat_id,omitempty"`
	UseWeb          bool                    `json:"use_web"`
	DocumentGroupID string                  `json:"document_group_id,omitempty"`
	MissionSettings *ResearchParamOverrides `json:"mission_settings,omitempty"`
}

// MissionFilters contains filtering options for listing missions.
type MissionFilters struct {
	Status        string     `json:"status,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	ChatID        string     `json:"chat_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// MissionStats is the usage rollup exposed by the stats endpoint.
type MissionStats struct {
	TotalCost             float64 `json:"total_cost"`
	TotalPromptTokens     int     `json:"total_prompt_tokens"`
	TotalCompletionTokens int     `json:"total_completion_tokens"`
	TotalNativeTokens     int     `json:"total_native_tokens"`
	TotalWebSearchCalls   int     `json:"total_web_search_calls"`
}
