package mission

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribe-research/scribe/pkg/models"
)

func TestClassifyRunError(t *testing.T) {
	status, info := classifyRunError(context.Canceled)
	assert.Equal(t, models.StatusStopped, status)
	assert.Empty(t, info)

	status, info = classifyRunError(context.DeadlineExceeded)
	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, "mission timed out", info)

	status, info = classifyRunError(errors.New("planner exploded"))
	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, "planner exploded", info)
}

func TestAssembleReport_OrderAndReferences(t *testing.T) {
	mc := &MissionContext{
		Plan: &models.Plan{
			MissionGoal: "State of X",
			ReportOutline: []*models.Section{
				{SectionID: "intro", Title: "Introduction"},
				{SectionID: "body", Title: "Body", Subsections: []*models.Section{
					{SectionID: "detail", Title: "Detail"},
				}},
			},
		},
		SectionContent: map[string]string{
			"intro":  "Intro text [n1].",
			"detail": "Detail text [n2].",
		},
		Notes: []models.Note{
			{NoteID: "n1", SourceType: models.SourceTypeWeb, SourceID: "https://a.example",
				SourceMetadata: map[string]any{"title": "Paper A"}, IsRelevant: true},
			{NoteID: "n2", SourceType: models.SourceTypeDocument, SourceID: "chunk-1", IsRelevant: true},
			{NoteID: "n3", SourceType: models.SourceTypeWeb, SourceID: "https://a.example", IsRelevant: true},
			{NoteID: "n4", SourceType: models.SourceTypeWeb, SourceID: "https://b.example", IsRelevant: false},
		},
	}

	report := assembleReport(mc)
	assert.Contains(t, report, "# State of X")
	assert.Contains(t, report, "## Introduction")
	assert.Contains(t, report, "### Detail")
	assert.Contains(t, report, "Intro text [n1].")

	// Intro precedes detail.
	assert.Less(t,
		strings.Index(report, "Intro text"), strings.Index(report, "Detail text"))

	// One reference: web source deduplicated by URL, irrelevant dropped,
	// document chunks never cited as external references.
	assert.Contains(t, report, "## References")
	assert.Contains(t, report, "Paper A — https://a.example")
	assert.NotContains(t, report, "https://b.example")
	assert.NotContains(t, report, "chunk-1")
}

func TestAssembleReport_EmptyWithoutPlan(t *testing.T) {
	assert.Empty(t, assembleReport(&MissionContext{}))
}

func TestNotesForSection(t *testing.T) {
	notes := []models.Note{
		{NoteID: "a", SectionID: "s1", IsRelevant: true},
		{NoteID: "b", SectionID: "s2", IsRelevant: true},
		{NoteID: "c", SectionID: "s1", IsRelevant: false},
	}
	got := notesForSection(notes, "s1")
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].NoteID)
}

func TestHeadString(t *testing.T) {
	assert.Equal(t, "abc", headString("abcdef", 3))
	assert.Equal(t, "abcdef", headString("abcdef", 0))
	assert.Equal(t, "abcdef", headString("abcdef", 10))
}

func TestWebReferences_StableFirstAppearance(t *testing.T) {
	notes := []models.Note{
		{SourceType: models.SourceTypeWeb, SourceID: "https://z.example", IsRelevant: true},
		{SourceType: models.SourceTypeWeb, SourceID: "https://a.example", IsRelevant: true},
		{SourceType: models.SourceTypeWeb, SourceID: "https://z.example", IsRelevant: true},
	}
	refs := webReferences(notes)
	assert.Equal(t, []string{"https://z.example", "https://a.example"}, refs)
}
