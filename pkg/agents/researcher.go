package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/llm"
	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/tools"
)

// Researcher gathers evidence: it formulates queries, runs the search
// tools, and filters results into notes.
type Researcher struct {
	dispatcher *llm.Dispatcher
	registry   *tools.Registry
}

// NewResearcher creates a Researcher.
func NewResearcher(dispatcher *llm.Dispatcher, registry *tools.Registry) *Researcher {
	return &Researcher{dispatcher: dispatcher, registry: registry}
}

// CycleResult is one research cycle's outcome for a section.
type CycleResult struct {
	Notes      []models.CreateNoteRequest
	Thought    string
	Scratchpad string
	ToolCalls  []models.ToolCallLog
	Warnings   []string
}

// ExploreQuestion runs the initial exploration for one question: document
// and (optionally) web searches whose hits become preliminary notes.
func (r *Researcher) ExploreQuestion(ctx context.Context, b *Bundle, question string, useWeb bool) (*CycleResult, error) {
	result := &CycleResult{}

	if b.Params.InitialExplorationDocResults > 0 {
		r.runSearch(ctx, b, result, "document_search", map[string]any{
			"query":             question,
			"n_results":         b.Params.InitialExplorationDocResults,
			"document_group_id": b.DocumentGroupID,
			"use_reranker":      true,
		}, 0)
	}
	if useWeb && b.Params.InitialExplorationWebResults > 0 {
		r.runSearch(ctx, b, result, "web_search", map[string]any{
			"query":       question,
			"max_results": b.Params.InitialExplorationWebResults,
		}, 0)
	}

	return result, nil
}

type cycleQueryOutput struct {
	DocumentQuery    string `json:"document_query" jsonschema_description:"Query for the local document corpus; empty to skip"`
	WebQuery         string `json:"web_query" jsonschema_description:"Query for the web; empty to skip"`
	Reasoning        string `json:"reasoning"`
	ScratchpadUpdate string `json:"scratchpad_update,omitempty"`
}

type relevanceOutput struct {
	RelevantIndices  []int  `json:"relevant_indices" jsonschema_description:"Zero-based indices of results worth keeping as notes"`
	Thought          string `json:"thought" jsonschema_description:"One-sentence reflection on what was learned and what is missing"`
	ScratchpadUpdate string `json:"scratchpad_update,omitempty"`
}

// ResearchCycle runs one search→reflect cycle for the bundle's section.
// Returned notes carry the bundle's round number.
func (r *Researcher) ResearchCycle(ctx context.Context, b *Bundle, useWeb bool) (*CycleResult, error) {
	if b.Section == nil {
		return nil, fmt.Errorf("research cycle requires a section")
	}

	prompt := fmt.Sprintf(
		"Section: %s — %s\nResearch strategy: %s\n\nExisting evidence for this section:\n%s\n%s",
		b.Section.Title, b.Section.Description, b.Section.ResearchStrategy,
		notesSummary(b.Notes, 15),
		b.thoughtContext(),
	)

	var queries cycleQueryOutput
	call, err := r.dispatcher.Call(ctx, b.spec(config.TierMid), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "You drive a research cycle for one report section. Formulate at most one document-corpus query and one web query that close the biggest evidence gap. Leave a query empty when that source has nothing more to offer."},
			{Role: llm.RoleUser, Content: prompt},
		},
		SchemaName: "cycle_queries",
		Schema:     llm.GenerateSchema[cycleQueryOutput](),
	}, &queries)
	if err != nil {
		return nil, err
	}

	result := &CycleResult{Scratchpad: call.ScratchpadUpdate}
	if queries.DocumentQuery != "" {
		r.runSearch(ctx, b, result, "document_search", map[string]any{
			"query":             queries.DocumentQuery,
			"n_results":         b.Params.MainResearchDocResults,
			"document_group_id": b.DocumentGroupID,
			"use_reranker":      true,
		}, b.Round)
	}
	if useWeb && queries.WebQuery != "" {
		r.runSearch(ctx, b, result, "web_search", map[string]any{
			"query":       queries.WebQuery,
			"max_results": b.Params.MainResearchWebResults,
		}, b.Round)
	}

	if len(result.Notes) == 0 {
		result.Thought = fmt.Sprintf("No new evidence found for %q this cycle.", b.Section.Title)
		return result, nil
	}

	// Relevance filter: keep only results the reflection judges useful.
	filtered, thought, err := r.filterRelevant(ctx, b, result.Notes)
	if err != nil {
		// Keep everything on filter failure; a noisy note beats a lost one.
		result.Warnings = append(result.Warnings, fmt.Sprintf("relevance filter failed: %v", err))
		result.Thought = fmt.Sprintf("Collected %d unfiltered results for %q.", len(result.Notes), b.Section.Title)
		return result, nil
	}
	result.Notes = filtered
	result.Thought = thought
	return result, nil
}

// runSearch executes one search tool call and folds its output into the
// cycle result. Tool errors become warnings, never failures.
func (r *Researcher) runSearch(ctx context.Context, b *Bundle, result *CycleResult, toolName string, args map[string]any, round int) {
	raw, err := json.Marshal(args)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: marshal args: %v", toolName, err))
		return
	}

	res, err := r.registry.Execute(ctx, toolName, tools.Call{
		MissionID: b.MissionID,
		User:      b.User,
		Arguments: raw,
		Feedback:  b.Feedback,
	})
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", toolName, err))
		return
	}

	log := models.ToolCallLog{ToolName: toolName, Arguments: string(raw)}
	if res.Error != nil {
		log.Error = res.Error.Message
		result.Warnings = append(result.Warnings, res.Error.Message)
	} else {
		log.Result = truncate(res.Content, 300)
		for _, note := range res.Notes {
			note.Round = round
			if b.Section != nil {
				note.SectionID = b.Section.SectionID
			}
			result.Notes = append(result.Notes, note)
		}
	}
	result.ToolCalls = append(result.ToolCalls, log)
}

// filterRelevant asks the model which candidate notes to keep.
func (r *Researcher) filterRelevant(ctx context.Context, b *Bundle, candidates []models.CreateNoteRequest) ([]models.CreateNoteRequest, string, error) {
	var listing string
	for i, c := range candidates {
		listing += fmt.Sprintf("[%d] (%s) %s\n", i, c.SourceType, truncate(c.Content, 400))
	}

	var out relevanceOutput
	_, err := r.dispatcher.Call(ctx, b.spec(config.TierFast), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf("You filter search results for the report section %q. Keep results that add evidence the section needs; drop duplicates and noise.", b.Section.Title)},
			{Role: llm.RoleUser, Content: listing},
		},
		SchemaName: "relevance_filter",
		Schema:     llm.GenerateSchema[relevanceOutput](),
	}, &out)
	if err != nil {
		return nil, "", err
	}

	var kept []models.CreateNoteRequest
	for _, idx := range out.RelevantIndices {
		if idx >= 0 && idx < len(candidates) {
			kept = append(kept, candidates[idx])
		}
	}
	return kept, out.Thought, nil
}
