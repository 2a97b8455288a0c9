package agents

import (
	"context"
	"fmt"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
)

// NoteAssigner distributes gathered notes across outline sections within
// the configured min/max bounds.
type NoteAssigner struct {
	dispatcher *llm.Dispatcher
}

// NewNoteAssigner creates a NoteAssigner.
func NewNoteAssigner(dispatcher *llm.Dispatcher) *NoteAssigner {
	return &NoteAssigner{dispatcher: dispatcher}
}

type assignmentOutput struct {
	Assignments []struct {
		NoteID            string   `json:"note_id"`
		SectionID         string   `json:"section_id" jsonschema_description:"Best-fit section for the note"`
		PotentialSections []string `json:"potential_sections,omitempty"`
		IsRelevant        bool     `json:"is_relevant"`
	} `json:"assignments"`
	ScratchpadUpdate string `json:"scratchpad_update,omitempty"`
}

// AssignNotes maps every note to a section (or marks it irrelevant).
// Assignments referencing unknown notes or sections are dropped; notes the
// model skipped keep their current hints.
func (a *NoteAssigner) AssignNotes(ctx context.Context, b *Bundle) ([]models.NoteAssignment, error) {
	if b.Plan == nil {
		return nil, fmt.Errorf("note assignment requires a plan")
	}

	notes := b.Notes
	if limit := b.Params.MaxNotesForAssignmentReranking; limit > 0 && len(notes) > limit {
		notes = notes[len(notes)-limit:]
	}

	prompt := fmt.Sprintf(
		"Outline:\n%s\nNotes to assign:\n%s",
		outlineSummary(b.Plan),
		notesSummary(notes, 0),
	)

	var out assignmentOutput
	_, err := a.dispatcher.Call(ctx, b.spec(config.TierFast), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf(
				"You assign evidence notes to report sections. Every note gets its best-fit section_id, optional alternates in potential_sections, and is_relevant=false for notes that fit nowhere. Aim for between %d and %d notes per leaf section.",
				b.Params.MinNotesPerSectionAssignment, b.Params.MaxNotesPerSectionAssignment)},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "note_assignments",
		Schema:     llm.GenerateSchema[assignmentOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(notes))
	for _, n := range notes {
		known[n.NoteID] = true
	}

	var assignments []models.NoteAssignment
	for _, raw := range out.Assignments {
		if !known[raw.NoteID] {
			continue
		}
		if raw.SectionID != "" && b.Plan.FindSection(raw.SectionID) == nil {
			continue
		}
		assignments = append(assignments, models.NoteAssignment{
			NoteID:            raw.NoteID,
			SectionID:         raw.SectionID,
			PotentialSections: raw.PotentialSections,
			IsRelevant:        raw.IsRelevant,
		})
	}
	return assignments, nil
}
