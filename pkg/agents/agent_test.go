package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/models"
)

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions("transformer architectures")
	assert.Len(t, qs, 3)
	for _, q := range qs {
		assert.Contains(t, q, "transformer architectures")
	}
}

func TestBundle_ThoughtContextBounded(t *testing.T) {
	b := &Bundle{
		Pads: models.Pads{
			ThoughtPad: []string{"t1", "t2", "t3", "t4", "t5"},
		},
		Params: config.ResearchParams{ThoughtPadContextLimit: 2},
	}
	ctx := b.thoughtContext()
	assert.Contains(t, ctx, "t4")
	assert.Contains(t, ctx, "t5")
	assert.NotContains(t, ctx, "t1")
}

func TestBundle_ThoughtContextEmpty(t *testing.T) {
	b := &Bundle{}
	assert.Empty(t, b.thoughtContext())
}

func TestOutlineSummary(t *testing.T) {
	plan := &models.Plan{
		ReportOutline: []*models.Section{
			{SectionID: "a", Title: "Alpha", Description: "first"},
			{SectionID: "b", Title: "Beta", Subsections: []*models.Section{
				{SectionID: "b1", Title: "Beta One"},
			}},
		},
	}
	s := outlineSummary(plan)
	assert.Contains(t, s, "[a] Alpha: first")
	assert.Contains(t, s, "  - [b1] Beta One")

	assert.Equal(t, "(no outline yet)", outlineSummary(nil))
}

func TestNotesSummary(t *testing.T) {
	notes := []models.Note{
		{NoteID: "n1", SourceType: "web", Content: "short"},
		{NoteID: "n2", SourceType: "document", Content: "also short"},
	}
	s := notesSummary(notes, 0)
	assert.Contains(t, s, "[note n1 | web] short")
	assert.Contains(t, s, "n2")

	// Cap keeps the most recent notes.
	s = notesSummary(notes, 1)
	assert.NotContains(t, s, "n1")
	assert.Contains(t, s, "n2")

	assert.Equal(t, "(no notes yet)", notesSummary(nil, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc…", truncate("abcdef", 3))
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abc", truncate("abc", 0))
}

func TestConvertSections(t *testing.T) {
	in := []outlineSection{
		{SectionID: "x", Title: "X", Subsections: []outlineSection{
			{SectionID: "y", Title: "Y"},
		}},
	}
	out := convertSections(in)
	assert.Len(t, out, 1)
	assert.Equal(t, "y", out[0].Subsections[0].SectionID)
}
