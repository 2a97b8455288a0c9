// Package bus provides the per-mission progress stream: a bounded queue of
// typed events fanned out to any number of subscribers. Durable envelopes
// (update, status, truncate_data) are also persisted for catch-up; agent
// feedback is transient and may be dropped under pressure.
package bus

import (
	"time"

	"github.com/scribe-research/scribe/pkg/models"
)

// Envelope kinds.
const (
	KindUpdate       = "update"
	KindFeedback     = "agent_feedback"
	KindStatsUpdate  = "stats_update"
	KindStatus       = "status"
	KindTruncateData = "truncate_data"
)

// Agent feedback types carried in FeedbackPayload.Type.
const (
	FeedbackFileRead            = "file_read"
	FeedbackWebSearchComplete   = "web_search_complete"
	FeedbackWebSearchError      = "web_search_error"
	FeedbackWebFetchStart       = "web_fetch_start"
	FeedbackWebFetchComplete    = "web_fetch_complete"
	FeedbackNoteGenerated       = "note_generated"
	FeedbackNoteUpdatedFromFull = "note_updated_from_full_content"
	FeedbackToolUsageStatus     = "tool_usage_status"
	FeedbackThreadStatus        = "thread_status"
)

// MissionChannel returns the channel name for a mission's events.
// Format: "mission:{mission_id}"
func MissionChannel(missionID string) string {
	return "mission:" + missionID
}

// Envelope is the tagged union delivered to subscribers. Exactly one of the
// payload pointers is non-nil; Kind reports which.
type Envelope struct {
	MissionID string    `json:"mission_id"`
	Seq       int64     `json:"seq"`
	Timestamp time.Time `json:"timestamp"`

	Update       *models.ExecutionLogEntry `json:"update,omitempty"`
	Feedback     *FeedbackPayload          `json:"agent_feedback,omitempty"`
	Stats        *StatsPayload             `json:"stats_update,omitempty"`
	Status       *StatusPayload            `json:"status,omitempty"`
	TruncateData *TruncatePayload          `json:"truncate_data,omitempty"`
}

// Kind returns the envelope's event type.
func (e *Envelope) Kind() string {
	switch {
	case e.Update != nil:
		return KindUpdate
	case e.Feedback != nil:
		return KindFeedback
	case e.Stats != nil:
		return KindStatsUpdate
	case e.Status != nil:
		return KindStatus
	case e.TruncateData != nil:
		return KindTruncateData
	}
	return ""
}

// Durable reports whether the envelope must never be dropped and is
// persisted for catch-up.
func (e *Envelope) Durable() bool {
	switch e.Kind() {
	case KindUpdate, KindStatus, KindTruncateData:
		return true
	}
	return false
}

// FeedbackPayload wraps transient agent feedback for live UIs.
type FeedbackPayload struct {
	Type      string         `json:"type"`
	AgentName string         `json:"agent_name,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// StatsPayload carries an absolute or incremental usage rollup. Nil fields
// are absent; increments and absolutes may not be mixed in one payload.
type StatsPayload struct {
	TotalCost           *float64 `json:"total_cost,omitempty"`
	TotalPromptTokens   *int     `json:"total_prompt_tokens,omitempty"`
	TotalNativeTokens   *int     `json:"total_native_tokens,omitempty"`
	TotalWebSearchCalls *int     `json:"total_web_search_calls,omitempty"`

	IncrementCost             *float64 `json:"increment_cost,omitempty"`
	IncrementPromptTokens     *int     `json:"increment_prompt_tokens,omitempty"`
	IncrementCompletionTokens *int     `json:"increment_completion_tokens,omitempty"`
	IncrementNativeTokens     *int     `json:"increment_native_tokens,omitempty"`
	IncrementWebSearchCalls   *int     `json:"increment_web_search_calls,omitempty"`
}

// StatusPayload signals a mission-level status change.
type StatusPayload struct {
	Status string `json:"status"`
}

// TruncatePayload tells subscribers to discard artifacts with
// round >= AfterRound before replacement data arrives.
type TruncatePayload struct {
	AfterRound int `json:"after_round"`
}
