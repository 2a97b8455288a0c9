package retrieval

import (
	"context"
	"fmt"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
)

// llmPreparer materializes prepared queries from chosen techniques.
// The identity technique always yields the original query verbatim; the
// LLM-backed rewrites are instructed to preserve the query's language.
type llmPreparer struct {
	dispatcher *llm.Dispatcher
}

// NewLLMPreparer creates the default preparer.
func NewLLMPreparer(dispatcher *llm.Dispatcher) Preparer {
	return &llmPreparer{dispatcher: dispatcher}
}

type preparedOutput struct {
	Queries []string `json:"queries" jsonschema_description:"Prepared search queries, same language as the input"`
}

const maxSubQueries = 3

func (p *llmPreparer) PrepareQueries(ctx context.Context, req Request, techniques []string) ([]string, error) {
	var queries []string
	appendUnique := func(qs ...string) {
		for _, q := range qs {
			if q == "" {
				continue
			}
			dup := false
			for _, existing := range queries {
				if existing == q {
					dup = true
					break
				}
			}
			if !dup {
				queries = append(queries, q)
			}
		}
	}

	var firstErr error
	for _, technique := range techniques {
		switch technique {
		case TechniqueIdentity:
			appendUnique(req.Query)
		case TechniqueSubQuery:
			qs, err := p.rewrite(ctx, req, fmt.Sprintf(
				"Decompose the query into at most %d focused sub-queries, preserving the query's language.", maxSubQueries))
			if err != nil {
				firstErr = coalesce(firstErr, err)
				continue
			}
			if len(qs) > maxSubQueries {
				qs = qs[:maxSubQueries]
			}
			appendUnique(qs...)
		case TechniqueStepBack:
			qs, err := p.rewrite(ctx, req,
				"Produce one broader step-back query capturing the background topic, in the query's language.")
			if err != nil {
				firstErr = coalesce(firstErr, err)
				continue
			}
			if len(qs) > 1 {
				qs = qs[:1]
			}
			appendUnique(qs...)
		case TechniqueHyde:
			qs, err := p.rewrite(ctx, req,
				"Write one short hypothetical passage that would answer the query, in the query's language. Return it as the single query.")
			if err != nil {
				firstErr = coalesce(firstErr, err)
				continue
			}
			if len(qs) > 1 {
				qs = qs[:1]
			}
			appendUnique(qs...)
		}
	}

	if len(queries) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return []string{req.Query}, nil
	}
	return queries, nil
}

func (p *llmPreparer) rewrite(ctx context.Context, req Request, instruction string) ([]string, error) {
	var out preparedOutput
	_, err := p.dispatcher.Call(ctx, llm.CallSpec{
		User:      req.User,
		MissionID: req.MissionID,
		Tier:      config.TierFast,
	}, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: instruction},
			{Role: llm.RoleUser, Content: req.Query},
		},
		SchemaName: "prepared_queries",
		Schema:     llm.GenerateSchema[preparedOutput](),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Queries, nil
}

func coalesce(a, b error) error {
	if a != nil {
		return a
	}
	return b
}
