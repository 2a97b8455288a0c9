package tools

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/bus"
)

type fakeProvider struct {
	results []SearchResult
	err     error
	queries []SearchQuery
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Search(_ context.Context, q SearchQuery) ([]SearchResult, error) {
	f.queries = append(f.queries, q)
	return f.results, f.err
}

type recordingFeedback struct {
	mu     sync.Mutex
	events []string
	data   []map[string]any
}

func (r *recordingFeedback) Emit(_ context.Context, feedbackType string, data map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, feedbackType)
	r.data = append(r.data, data)
}

type countingMeter struct{ calls int }

func (c *countingMeter) RecordWebSearch(context.Context, string) { c.calls++ }

func searchCall(t *testing.T, args WebSearchArgs, fb Feedback) Call {
	t.Helper()
	raw, err := json.Marshal(args)
	require.NoError(t, err)
	return Call{MissionID: "m1", Arguments: raw, Feedback: fb}
}

func TestWebSearchTool_SuccessEmitsFeedbackAndNotes(t *testing.T) {
	provider := &fakeProvider{results: []SearchResult{
		{Title: "Result A", URL: "https://a.example", Snippet: "alpha"},
		{Title: "Result B", URL: "https://b.example", Snippet: "beta"},
	}}
	fb := &recordingFeedback{}
	meter := &countingMeter{}
	tool := NewWebSearchTool(provider, NewRateGate(), meter)

	res, err := tool.Execute(context.Background(), searchCall(t, WebSearchArgs{Query: "golang"}, fb))
	require.NoError(t, err)
	require.Nil(t, res.Error)

	assert.Contains(t, res.Content, "Result A")
	require.Len(t, res.Notes, 2)
	assert.Equal(t, "web", res.Notes[0].SourceType)
	assert.Equal(t, "https://a.example", res.Notes[0].SourceID)

	require.Len(t, fb.events, 1)
	assert.Equal(t, bus.FeedbackWebSearchComplete, fb.events[0])
	assert.Equal(t, "golang", fb.data[0]["query"])
	assert.Equal(t, 2, fb.data[0]["num_results"])
	assert.Equal(t, 1, meter.calls)
}

func TestWebSearchTool_AuthErrorBecomesFriendlyWarning(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider returned 401: unauthorized")}
	fb := &recordingFeedback{}
	tool := NewWebSearchTool(provider, NewRateGate(), nil)

	res, err := tool.Execute(context.Background(), searchCall(t, WebSearchArgs{Query: "q"}, fb))
	require.NoError(t, err, "provider failures never throw")
	require.NotNil(t, res.Error)
	assert.Contains(t, res.Error.Message, "API key")
	assert.Contains(t, res.Error.Message, "local documents")

	require.Len(t, fb.events, 1)
	assert.Equal(t, bus.FeedbackWebSearchError, fb.events[0])
}

func TestWebSearchTool_FiltersPassedThrough(t *testing.T) {
	provider := &fakeProvider{}
	tool := NewWebSearchTool(provider, NewRateGate(), nil)

	args := WebSearchArgs{
		Query:          "climate",
		MaxResults:     7,
		FromDate:       "2024-01-01",
		ToDate:         "2024-12-31",
		IncludeDomains: []string{"nature.com"},
		ExcludeDomains: []string{"example.com"},
	}
	_, err := tool.Execute(context.Background(), searchCall(t, args, nil))
	require.NoError(t, err)

	require.Len(t, provider.queries, 1)
	q := provider.queries[0]
	assert.Equal(t, 7, q.MaxResults)
	assert.Equal(t, "2024-01-01", q.FromDate)
	assert.Equal(t, []string{"nature.com"}, q.IncludeDomains)
}

func TestRateGate_EnforcesSpacing(t *testing.T) {
	gate := NewRateGate()
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		release, err := gate.Acquire(ctx)
		require.NoError(t, err)
		release()
	}
	// Three sequential acquisitions with >= 1s spacing: at least ~2s total.
	assert.GreaterOrEqual(t, time.Since(start), 1900*time.Millisecond)
}

func TestRateGate_CancelledContext(t *testing.T) {
	gate := NewRateGate()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gate.Acquire(ctx)
	assert.Error(t, err)
}
