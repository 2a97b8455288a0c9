package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
)

// llmStrategist picks expansion techniques with a fast-tier structured call.
type llmStrategist struct {
	dispatcher *llm.Dispatcher
}

// NewLLMStrategist creates the default strategist.
func NewLLMStrategist(dispatcher *llm.Dispatcher) Strategist {
	return &llmStrategist{dispatcher: dispatcher}
}

type strategistOutput struct {
	Techniques []string `json:"techniques" jsonschema_description:"Chosen techniques from: identity, sub_query, step_back, hyde"`
	Reasoning  string   `json:"reasoning"`
}

const strategistSystemPrompt = `You select query expansion techniques for a document retrieval system.
Available techniques:
- identity: use the query as-is (always safe)
- sub_query: decompose a multi-part question into focused sub-queries
- step_back: add a broader background query for narrow questions
- hyde: generate a hypothetical answer passage to embed instead of the question
Pick the smallest useful set. Always include identity unless the query is clearly better served only by rewrites.`

func (s *llmStrategist) DetermineTechniques(ctx context.Context, req Request) ([]string, error) {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Query: %s\n", req.Query)
	if req.ResearchContext != "" {
		fmt.Fprintf(&prompt, "Research context: %s\n", req.ResearchContext)
	}
	if req.AgentContext != "" {
		fmt.Fprintf(&prompt, "Agent context: %s\n", req.AgentContext)
	}

	var out strategistOutput
	_, err := s.dispatcher.Call(ctx, llm.CallSpec{
		User:      req.User,
		MissionID: req.MissionID,
		Tier:      config.TierFast,
	}, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: strategistSystemPrompt},
			{Role: llm.RoleUser, Content: prompt.String()},
		},
		SchemaName: "query_strategy",
		Schema:     llm.GenerateSchema[strategistOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}

	valid := out.Techniques[:0]
	for _, t := range out.Techniques {
		switch t {
		case TechniqueIdentity, TechniqueSubQuery, TechniqueStepBack, TechniqueHyde:
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return []string{TechniqueIdentity}, nil
	}
	return valid, nil
}
