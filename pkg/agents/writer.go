package agents

import (
	"context"
	"fmt"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
)

// Writer produces per-section report content from assigned notes.
type Writer struct {
	dispatcher *llm.Dispatcher
}

// NewWriter creates a Writer.
func NewWriter(dispatcher *llm.Dispatcher) *Writer {
	return &Writer{dispatcher: dispatcher}
}

type writerOutput struct {
	Content          string `json:"content" jsonschema_description:"Markdown content for the section, with [note_id] citation markers"`
	ScratchpadUpdate string `json:"scratchpad_update,omitempty"`
}

// WriteSection writes (or on later passes, improves) one section. The
// bundle carries the section, its assigned notes, and the previous pass's
// content preview.
func (w *Writer) WriteSection(ctx context.Context, b *Bundle) (string, error) {
	if b.Section == nil {
		return "", fmt.Errorf("writing requires a section")
	}

	prompt := fmt.Sprintf(
		"Mission goal: %s\n\nSection to write: %s — %s\n\nAssigned evidence notes:\n%s\n",
		b.Plan.MissionGoal,
		b.Section.Title, b.Section.Description,
		notesSummary(b.Notes, b.Params.MaxNotesPerSectionAssignment),
	)
	if b.PreviousContent != "" {
		prompt += fmt.Sprintf("\nPrevious draft (improve, do not merely repeat):\n%s\n", b.PreviousContent)
	}

	var out writerOutput
	_, err := w.dispatcher.Call(ctx, b.spec(config.TierIntelligent), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You write one section of a research report in Markdown. Ground every claim in the provided notes and cite them inline as [note_id]. Do not invent sources. Write prose, not bullet-point fragments, unless the material is inherently enumerable."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "section_content",
		Schema:     llm.GenerateSchema[writerOutput](),
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Content == "" {
		return "", fmt.Errorf("writer returned empty content for section %s", b.Section.SectionID)
	}
	return out.Content, nil
}
