// Package agents provides the stateless worker units of a mission: planner,
// researcher, reflection, writer, note assigner, and messenger. Each agent
// consumes a context bundle and returns a typed result; LLM access goes
// through the model dispatcher, tool access through the registry.
package agents

import (
	"fmt"
	"strings"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/tools"
)

// Agent names used in execution log entries.
const (
	NameMessenger  = "MessengerAgent"
	NamePlanner    = "PlanningAgent"
	NameResearcher = "ResearchAgent"
	NameReflection = "ReflectionAgent"
	NameWriter     = "WritingAgent"
	NameAssigner   = "NoteAssignmentAgent"
	NameOptimizer  = "AutoOptimizerAgent"
)

// Bundle is the context handed to an agent for one invocation. Agents hold
// no per-mission state; everything they need arrives here.
type Bundle struct {
	MissionID       string
	User            *models.UserContext
	UserRequest     string
	DocumentGroupID string
	Questions   []string
	Plan        *models.Plan
	Notes       []models.Note
	Pads        models.Pads
	Params      config.ResearchParams
	Round       int

	// Section scope for per-section work (research cycles, writing).
	Section *models.Section

	// PreviousContent is the prior writing pass's section text, truncated
	// to the configured preview length.
	PreviousContent string

	Feedback tools.Feedback
}

// spec builds the dispatcher call spec for this bundle.
func (b *Bundle) spec(tier string) llm.CallSpec {
	return llm.CallSpec{
		User:          b.User,
		MissionID:     b.MissionID,
		Tier:          tier,
		MaxConcurrent: b.Params.MaxConcurrentRequests,
	}
}

// thoughtContext renders the bounded thought pad for prompts.
func (b *Bundle) thoughtContext() string {
	if len(b.Pads.ThoughtPad) == 0 {
		return ""
	}
	thoughts := b.Pads.ThoughtPad
	if limit := b.Params.ThoughtPadContextLimit; limit > 0 && len(thoughts) > limit {
		thoughts = thoughts[len(thoughts)-limit:]
	}
	return "Recent thoughts:\n- " + strings.Join(thoughts, "\n- ")
}

// outlineSummary renders the outline tree for prompts.
func outlineSummary(plan *models.Plan) string {
	if plan == nil {
		return "(no outline yet)"
	}
	var sb strings.Builder
	var walk func(sections []*models.Section, depth int)
	walk = func(sections []*models.Section, depth int) {
		for _, s := range sections {
			fmt.Fprintf(&sb, "%s- [%s] %s: %s\n", strings.Repeat("  ", depth), s.SectionID, s.Title, s.Description)
			walk(s.Subsections, depth+1)
		}
	}
	walk(plan.ReportOutline, 0)
	return sb.String()
}

// notesSummary renders notes for prompts, capped to keep context bounded.
func notesSummary(notes []models.Note, maxNotes int) string {
	if len(notes) == 0 {
		return "(no notes yet)"
	}
	if maxNotes > 0 && len(notes) > maxNotes {
		notes = notes[len(notes)-maxNotes:]
	}
	var sb strings.Builder
	for _, n := range notes {
		content := n.Content
		if len(content) > 500 {
			content = content[:500] + "…"
		}
		fmt.Fprintf(&sb, "[note %s | %s] %s\n", n.NoteID, n.SourceType, content)
	}
	return sb.String()
}

// truncate bounds a string to n bytes for summaries.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
