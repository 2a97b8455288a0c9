package agents

import (
	"context"
	"fmt"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
)

// Reflection reviews a finished research round: it produces thoughts for
// the thought pad and, unless replanning is skipped, feedback for an
// outline revision.
type Reflection struct {
	dispatcher *llm.Dispatcher
}

// NewReflection creates a Reflection agent.
func NewReflection(dispatcher *llm.Dispatcher) *Reflection {
	return &Reflection{dispatcher: dispatcher}
}

// ReflectionResult is the inter-round reflection outcome.
type ReflectionResult struct {
	Thoughts        []string
	OutlineFeedback string
	ReviseOutline   bool
}

type reflectionOutput struct {
	Thoughts         []string `json:"thoughts" jsonschema_description:"Short observations about evidence coverage and gaps"`
	OutlineFeedback  string   `json:"outline_feedback,omitempty" jsonschema_description:"Concrete outline changes to make; empty if none"`
	ReviseOutline    bool     `json:"revise_outline" jsonschema_description:"Whether the outline needs revision before the next round"`
	ScratchpadUpdate string   `json:"scratchpad_update,omitempty"`
}

// ReviewRound inspects the round's evidence against the outline.
func (r *Reflection) ReviewRound(ctx context.Context, b *Bundle) (*ReflectionResult, error) {
	prompt := fmt.Sprintf(
		"Round %d finished.\n\nOutline:\n%s\nEvidence gathered so far:\n%s\n%s",
		b.Round,
		outlineSummary(b.Plan),
		notesSummary(b.Notes, 40),
		b.thoughtContext(),
	)

	var out reflectionOutput
	_, err := r.dispatcher.Call(ctx, b.spec(config.TierMid), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You review a research round. Note coverage gaps, contradictions, and sections with thin evidence. Recommend outline revisions only when the evidence clearly demands restructuring."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "round_reflection",
		Schema:     llm.GenerateSchema[reflectionOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}

	return &ReflectionResult{
		Thoughts:        out.Thoughts,
		OutlineFeedback: out.OutlineFeedback,
		ReviseOutline:   out.ReviseOutline && out.OutlineFeedback != "",
	}, nil
}
