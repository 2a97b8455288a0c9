package services

import (
	"encoding/json"
	"fmt"

	"github.com/scribe-research/scribe/ent"
	"github.com/scribe-research/scribe/pkg/models"
)

// toJSONMap round-trips a typed value into the map shape ent JSON fields
// store. Serialization invariants hold because the typed structs only carry
// JSON-representable fields.
func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return m, nil
}

// fromJSONMap decodes an ent JSON map back into a typed value.
func fromJSONMap(m map[string]interface{}, out any) error {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return json.Unmarshal(raw, out)
}

// MetadataOf decodes the mission row's metadata blob.
func MetadataOf(m *ent.Mission) (models.MissionMetadata, error) {
	var md models.MissionMetadata
	if err := fromJSONMap(m.Metadata, &md); err != nil {
		return models.MissionMetadata{}, fmt.Errorf("decode mission metadata: %w", err)
	}
	return md, nil
}

// PlanOf decodes the mission row's plan blob. Returns nil when planning has
// not completed yet.
func PlanOf(m *ent.Mission) (*models.Plan, error) {
	if m.Plan == nil {
		return nil, nil
	}
	var p models.Plan
	if err := fromJSONMap(m.Plan, &p); err != nil {
		return nil, fmt.Errorf("decode mission plan: %w", err)
	}
	return &p, nil
}

// PadsOf decodes the mission row's pads blob.
func PadsOf(m *ent.Mission) (models.Pads, error) {
	var p models.Pads
	if err := fromJSONMap(m.Pads, &p); err != nil {
		return models.Pads{}, fmt.Errorf("decode mission pads: %w", err)
	}
	return p, nil
}

// NoteModel converts an ent note row to the value type.
func NoteModel(n *ent.Note) models.Note {
	return models.Note{
		NoteID:            n.ID,
		MissionID:         n.MissionID,
		Content:           n.Content,
		SourceType:        string(n.SourceType),
		SourceID:          n.SourceID,
		SourceMetadata:    n.SourceMetadata,
		Round:             n.Round,
		SectionID:         n.SectionID,
		PotentialSections: n.PotentialSections,
		IsRelevant:        n.IsRelevant,
		CreatedAt:         n.CreatedAt,
	}
}

// LogEntryModel converts an ent log row to the value type.
func LogEntryModel(e *ent.LogEntry) models.ExecutionLogEntry {
	entry := models.ExecutionLogEntry{
		LogID:         e.ID,
		MissionID:     e.MissionID,
		Timestamp:     e.Timestamp,
		AgentName:     e.AgentName,
		Action:        e.Action,
		Status:        string(e.Status),
		InputSummary:  e.InputSummary,
		OutputSummary: e.OutputSummary,
		FullInput:     e.FullInput,
		FullOutput:    e.FullOutput,
		ModelDetails:  e.ModelDetails,
		Round:         e.Round,
	}
	if e.ErrorMessage != nil {
		entry.ErrorMessage = *e.ErrorMessage
	}
	if e.Cost != nil {
		entry.Cost = *e.Cost
	}
	if e.PromptTokens != nil {
		entry.PromptTokens = *e.PromptTokens
	}
	if e.CompletionTokens != nil {
		entry.CompletionTokens = *e.CompletionTokens
	}
	if e.NativeTokens != nil {
		entry.NativeTokens = *e.NativeTokens
	}
	entry.FileInteractions = e.FileInteractions
	for _, tc := range e.ToolCalls {
		var call models.ToolCallLog
		if err := fromJSONMap(tc, &call); err == nil {
			entry.ToolCalls = append(entry.ToolCalls, call)
		}
	}
	return entry
}
