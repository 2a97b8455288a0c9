package retrieval

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-research/scribe/pkg/models"
)

type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]models.Chunk
	err     error
	calls   []string
}

func (f *fakeSearcher) HybridSearch(_ context.Context, query string, nResults int, _ []string, _, _ float64) ([]models.Chunk, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	chunks := f.results[query]
	if len(chunks) > nResults {
		chunks = chunks[:nResults]
	}
	return chunks, nil
}

type fakeStrategist struct {
	techniques []string
	err        error
}

func (f *fakeStrategist) DetermineTechniques(context.Context, Request) ([]string, error) {
	return f.techniques, f.err
}

type fakePreparer struct {
	queries []string
	err     error
}

func (f *fakePreparer) PrepareQueries(_ context.Context, req Request, techniques []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.queries != nil {
		return f.queries, nil
	}
	return []string{req.Query}, nil
}

type fakeReranker struct {
	called bool
}

func (f *fakeReranker) Rerank(_ context.Context, _ string, candidates []models.Chunk, topN int) ([]models.Chunk, error) {
	f.called = true
	// Reverse order to make reranking observable.
	out := make([]models.Chunk, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		out = append(out, candidates[i])
	}
	if len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

func chunk(id, text string) models.Chunk {
	return models.Chunk{ChunkID: id, DocID: "doc-" + id, Text: text}
}

func TestEngine_IdentityNoRerankerIsPassthrough(t *testing.T) {
	// With identity-only preparation and reranking off, retrieval returns
	// exactly the hybrid search's first n results.
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"q": {chunk("a", "alpha"), chunk("b", "beta"), chunk("c", "gamma")},
	}}
	e := NewEngine(nil, nil, searcher, nil, nil)

	got := e.Retrieve(context.Background(), Request{Query: "q", NResults: 2})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ChunkID)
	assert.Equal(t, "b", got[1].ChunkID)
	assert.Equal(t, []string{"q"}, searcher.calls)
}

func TestEngine_AggregationDeduplicatesByChunkID(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"q1": {chunk("a", "alpha"), chunk("b", "beta")},
		"q2": {chunk("b", "beta"), chunk("c", "gamma")},
	}}
	e := NewEngine(
		&fakeStrategist{techniques: []string{TechniqueSubQuery}},
		&fakePreparer{queries: []string{"q1", "q2"}},
		searcher, nil, nil,
	)

	got := e.Retrieve(context.Background(), Request{Query: "orig", NResults: 10})
	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ChunkID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestEngine_DeduplicatesByTextHashWhenChunkIDMissing(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"q1": {{Text: "same text"}, {Text: "other"}},
		"q2": {{Text: "same text"}},
	}}
	e := NewEngine(nil, &fakePreparer{queries: []string{"q1", "q2"}}, searcher, nil, nil)

	got := e.Retrieve(context.Background(), Request{Query: "orig", NResults: 10})
	assert.Len(t, got, 2)
}

func TestEngine_StrategistFailureDegradesToIdentity(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"orig": {chunk("a", "alpha")},
	}}
	e := NewEngine(
		&fakeStrategist{err: errors.New("llm down")},
		&fakePreparer{},
		searcher, nil, nil,
	)

	got := e.Retrieve(context.Background(), Request{Query: "orig", NResults: 5})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"orig"}, searcher.calls)
}

func TestEngine_TotalSearchFailureReturnsEmpty(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("index unavailable")}
	e := NewEngine(nil, nil, searcher, nil, nil)

	got := e.Retrieve(context.Background(), Request{Query: "q", NResults: 5})
	assert.Empty(t, got)
}

func TestEngine_RerankerAppliedAgainstOriginalQuery(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"q": {chunk("a", "alpha"), chunk("b", "beta"), chunk("c", "gamma")},
	}}
	rr := &fakeReranker{}
	e := NewEngine(nil, nil, searcher, rr, nil)

	got := e.Retrieve(context.Background(), Request{Query: "q", NResults: 2, UseReranker: true})
	require.True(t, rr.called)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ChunkID, "reranker order wins")
}

func TestEngine_RerankerDisabledByRequest(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{
		"q": {chunk("a", "alpha"), chunk("b", "beta")},
	}}
	rr := &fakeReranker{}
	e := NewEngine(nil, nil, searcher, rr, nil)

	got := e.Retrieve(context.Background(), Request{Query: "q", NResults: 2, UseReranker: false})
	assert.False(t, rr.called)
	assert.Equal(t, "a", got[0].ChunkID)
}

type fakeGroups struct {
	groups map[string][]string
	asked  []string
}

func (f *fakeGroups) DocIDsForGroup(_ context.Context, groupID string) ([]string, error) {
	f.asked = append(f.asked, groupID)
	ids, ok := f.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s not found", groupID)
	}
	return ids, nil
}

func TestEngine_GroupFilterResolved(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]models.Chunk{"q": {chunk("a", "x")}}}
	groups := &fakeGroups{groups: map[string][]string{"g1": {"d1", "d2"}}}
	e := NewEngine(nil, nil, searcher, nil, groups)

	e.Retrieve(context.Background(), Request{Query: "q", NResults: 5, DocumentGroupID: "g1"})
	assert.Equal(t, []string{"g1"}, groups.asked)
}
