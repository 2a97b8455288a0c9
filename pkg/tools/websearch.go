package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/models"
)

// SearchResult is one normalized web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchQuery is the provider-level request.
type SearchQuery struct {
	Query          string
	MaxResults     int
	FromDate       string // YYYY-MM-DD
	ToDate         string // YYYY-MM-DD
	IncludeDomains []string
	ExcludeDomains []string
}

// SearchProvider is the narrow provider interface.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)
}

// RateGate is the cross-mission web search limiter: at most two in-flight
// provider calls, with a minimum spacing between dispatches. One gate is
// shared by every mission in the process.
type RateGate struct {
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewRateGate creates the shared limiter.
func NewRateGate() *RateGate {
	return &RateGate{
		sem:     semaphore.NewWeighted(2),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Acquire blocks until a slot and the pacing window are available.
// The returned release func must be called exactly once.
func (g *RateGate) Acquire(ctx context.Context) (func(), error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	if err := g.limiter.Wait(ctx); err != nil {
		g.sem.Release(1)
		return nil, err
	}
	return func() { g.sem.Release(1) }, nil
}

// UsageCounter counts web search calls. Implemented by usage.Meter.
type UsageCounter interface {
	RecordWebSearch(ctx context.Context, missionID string)
}

// WebSearchArgs is the web search tool's input schema.
type WebSearchArgs struct {
	Query          string   `json:"query" jsonschema_description:"The web search query"`
	MaxResults     int      `json:"max_results,omitempty"`
	FromDate       string   `json:"from_date,omitempty" jsonschema_description:"Start date filter (YYYY-MM-DD)"`
	ToDate         string   `json:"to_date,omitempty" jsonschema_description:"End date filter (YYYY-MM-DD)"`
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
}

// WebSearchTool performs web searches through the configured provider.
// Provider errors are returned as user-friendly strings, never raised: a
// failed search is a warning, not a mission failure.
type WebSearchTool struct {
	provider SearchProvider
	gate     *RateGate
	counter  UsageCounter // nil = no accounting
}

// NewWebSearchTool creates the web search tool.
func NewWebSearchTool(provider SearchProvider, gate *RateGate, counter UsageCounter) *WebSearchTool {
	return &WebSearchTool{provider: provider, gate: gate, counter: counter}
}

// Name implements Tool.
func (t *WebSearchTool) Name() string { return "web_search" }

// Description implements Tool.
func (t *WebSearchTool) Description() string {
	return fmt.Sprintf("Performs a web search using the configured provider (%s) to find up-to-date information.", t.provider.Name())
}

// InputSchema implements Tool.
func (t *WebSearchTool) InputSchema() any { return schemaFor[WebSearchArgs]() }

// Execute implements Tool.
func (t *WebSearchTool) Execute(ctx context.Context, call Call) (*Result, error) {
	var args WebSearchArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid web_search arguments: %v", err)}}, nil
	}
	if args.Query == "" {
		return &Result{Error: &ToolError{Message: "web_search requires a query"}}, nil
	}
	if args.MaxResults <= 0 {
		args.MaxResults = 5
	}

	release, err := t.gate.Acquire(ctx)
	if err != nil {
		return nil, err // context cancellation only
	}

	results, err := t.provider.Search(ctx, SearchQuery{
		Query:          args.Query,
		MaxResults:     args.MaxResults,
		FromDate:       args.FromDate,
		ToDate:         args.ToDate,
		IncludeDomains: args.IncludeDomains,
		ExcludeDomains: args.ExcludeDomains,
	})
	release()

	if t.counter != nil {
		t.counter.RecordWebSearch(ctx, call.MissionID)
	}

	if err != nil {
		msg := friendlySearchError(t.provider.Name(), err)
		call.feedback().Emit(ctx, bus.FeedbackWebSearchError, map[string]any{
			"query": args.Query,
			"error": msg,
		})
		return &Result{Error: &ToolError{Message: msg}}, nil
	}

	call.feedback().Emit(ctx, bus.FeedbackWebSearchComplete, map[string]any{
		"query":       args.Query,
		"num_results": len(results),
	})

	if len(results) == 0 {
		return &Result{Content: "The web search returned no results."}, nil
	}

	var sb strings.Builder
	notes := make([]models.CreateNoteRequest, 0, len(results))
	for i, r := range results {
		fmt.Fprintf(&sb, "[%d] %s\n%s\n%s\n\n", i+1, r.Title, r.URL, r.Snippet)
		notes = append(notes, models.CreateNoteRequest{
			MissionID:  call.MissionID,
			Content:    r.Snippet,
			SourceType: models.SourceTypeWeb,
			SourceID:   r.URL,
			SourceMetadata: map[string]any{
				"url":   r.URL,
				"title": r.Title,
			},
		})
	}
	return &Result{Content: sb.String(), Notes: notes}, nil
}

// friendlySearchError converts provider failures into guidance the agent
// (and user) can act on.
func friendlySearchError(provider string, err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(strings.ToLower(msg), "unauthorized"):
		return fmt.Sprintf("Web search failed: the %s API key appears to be invalid or missing. Research continues with local documents only.", provider)
	case strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota"):
		return fmt.Sprintf("Web search failed: the %s API rate limit or quota was exceeded. Try again later; research continues with local documents only.", provider)
	default:
		return fmt.Sprintf("Web search failed: could not reach the %s API (%v). Research continues with local documents only.", provider, err)
	}
}
