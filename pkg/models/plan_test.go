package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePlan() *Plan {
	return &Plan{
		MissionGoal: "Survey the field",
		ReportOutline: []*Section{
			{SectionID: "intro", Title: "Introduction"},
			{SectionID: "body", Title: "Body", Subsections: []*Section{
				{SectionID: "methods", Title: "Methods"},
				{SectionID: "results", Title: "Results"},
			}},
			{SectionID: "conclusion", Title: "Conclusion"},
		},
		Steps: []PlanStep{
			{StepID: "s1", Description: "research methods", ActionType: "research", TargetSectionID: "methods"},
		},
	}
}

func TestPlan_ValidateOK(t *testing.T) {
	assert.NoError(t, samplePlan().Validate())
}

func TestPlan_ValidateDuplicateSectionID(t *testing.T) {
	p := samplePlan()
	p.ReportOutline = append(p.ReportOutline, &Section{SectionID: "intro", Title: "Again"})
	assert.ErrorContains(t, p.Validate(), "duplicate section_id")
}

func TestPlan_ValidateUnresolvedStepTarget(t *testing.T) {
	p := samplePlan()
	p.Steps = append(p.Steps, PlanStep{StepID: "s2", ActionType: "write", TargetSectionID: "ghost"})
	assert.ErrorContains(t, p.Validate(), "unknown section")
}

func TestPlan_ValidateEmptySectionID(t *testing.T) {
	p := samplePlan()
	p.ReportOutline[0].SectionID = ""
	assert.ErrorContains(t, p.Validate(), "empty section_id")
}

func TestPlan_LeafSections(t *testing.T) {
	leaves := samplePlan().LeafSections()
	ids := make([]string, 0, len(leaves))
	for _, s := range leaves {
		ids = append(ids, s.SectionID)
	}
	assert.Equal(t, []string{"intro", "methods", "results", "conclusion"}, ids)
}

func TestPlan_FindSection(t *testing.T) {
	p := samplePlan()
	assert.Equal(t, "Methods", p.FindSection("methods").Title)
	assert.Nil(t, p.FindSection("nope"))
}
