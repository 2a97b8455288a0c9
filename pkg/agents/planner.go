package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
)

// Planner produces research questions and the report outline.
type Planner struct {
	dispatcher *llm.Dispatcher
}

// NewPlanner creates a Planner.
func NewPlanner(dispatcher *llm.Dispatcher) *Planner {
	return &Planner{dispatcher: dispatcher}
}

type questionsOutput struct {
	Questions        []string `json:"questions" jsonschema_description:"Focused research questions covering the request"`
	ScratchpadUpdate string   `json:"scratchpad_update,omitempty"`
}

// GenerateQuestions derives the initial research questions from the user
// request.
func (p *Planner) GenerateQuestions(ctx context.Context, b *Bundle) ([]string, error) {
	var out questionsOutput
	_, err := p.dispatcher.Call(ctx, b.spec(config.TierIntelligent), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You plan research missions. Produce 3-6 focused research questions that together cover the user's request. Keep the user's language."},
			{Role: llm.RoleUser, Content: b.UserRequest},
		},
		SchemaName: "research_questions",
		Schema:     llm.GenerateSchema[questionsOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// DefaultQuestions derives three fallback questions directly from the user
// request, used when the planner returns nothing usable.
func DefaultQuestions(userRequest string) []string {
	topic := strings.TrimSpace(userRequest)
	return []string{
		fmt.Sprintf("What is the current state of knowledge on: %s?", topic),
		fmt.Sprintf("What are the key findings, debates, and open problems related to: %s?", topic),
		fmt.Sprintf("What practical implications or applications follow from: %s?", topic),
	}
}

type outlineSection struct {
	SectionID        string           `json:"section_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	ResearchStrategy string           `json:"research_strategy,omitempty"`
	Subsections      []outlineSection `json:"subsections,omitempty"`
}

type outlineOutput struct {
	MissionGoal      string           `json:"mission_goal"`
	Sections         []outlineSection `json:"sections"`
	ScratchpadUpdate string           `json:"scratchpad_update,omitempty"`
}

// GenerateOutline produces the report outline from the questions and
// preliminary notes.
func (p *Planner) GenerateOutline(ctx context.Context, b *Bundle) (*models.Plan, error) {
	prompt := fmt.Sprintf(
		"User request: %s\n\nResearch questions:\n- %s\n\nPreliminary evidence:\n%s\n\n%s",
		b.UserRequest,
		strings.Join(b.Questions, "\n- "),
		notesSummary(b.Notes, 30),
		b.thoughtContext(),
	)

	var out outlineOutput
	_, err := p.dispatcher.Call(ctx, b.spec(config.TierIntelligent), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You design report outlines for research missions. Produce a hierarchical outline with unique snake_case section_ids, a one-sentence description per section, and a research_strategy hint for leaf sections. 3-7 top-level sections."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "report_outline",
		Schema:     llm.GenerateSchema[outlineOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		MissionGoal:   out.MissionGoal,
		ReportOutline: convertSections(out.Sections),
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("planner produced invalid outline: %w", err)
	}
	return plan, nil
}

// ReviseOutline merges reflection or user feedback into the current
// outline. Section IDs of surviving sections are preserved so notes stay
// assigned.
func (p *Planner) ReviseOutline(ctx context.Context, b *Bundle, feedback string) (*models.Plan, error) {
	prompt := fmt.Sprintf(
		"Mission goal: %s\n\nCurrent outline:\n%s\nFeedback to incorporate:\n%s\n\nEvidence so far:\n%s",
		b.Plan.MissionGoal,
		outlineSummary(b.Plan),
		feedback,
		notesSummary(b.Notes, 30),
	)

	var out outlineOutput
	_, err := p.dispatcher.Call(ctx, b.spec(config.TierIntelligent), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You revise report outlines. Keep existing section_ids for sections that survive; add new snake_case ids for new sections. Apply the feedback conservatively."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "report_outline",
		Schema:     llm.GenerateSchema[outlineOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{
		MissionGoal:   b.Plan.MissionGoal,
		ReportOutline: convertSections(out.Sections),
	}
	if out.MissionGoal != "" {
		plan.MissionGoal = out.MissionGoal
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("planner produced invalid revised outline: %w", err)
	}
	return plan, nil
}

func convertSections(in []outlineSection) []*models.Section {
	sections := make([]*models.Section, 0, len(in))
	for _, s := range in {
		sections = append(sections, &models.Section{
			SectionID:        s.SectionID,
			Title:            s.Title,
			Description:      s.Description,
			ResearchStrategy: s.ResearchStrategy,
			Subsections:      convertSections(s.Subsections),
		})
	}
	return sections
}
