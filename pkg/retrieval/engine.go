// Package retrieval implements the hybrid dense+sparse retrieval fabric:
// query strategy selection, query preparation, concurrent hybrid search,
// aggregation, and reranking over an externally-populated chunk index.
package retrieval

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/scribe-research/scribe/pkg/models"
)

// Query expansion techniques.
const (
	TechniqueIdentity = "identity"
	TechniqueSubQuery = "sub_query"
	TechniqueStepBack = "step_back"
	TechniqueHyde     = "hyde"
)

// maxConcurrentSearches bounds the per-request hybrid search fan-out.
const maxConcurrentSearches = 4

// Request carries one retrieval invocation.
type Request struct {
	Query        string
	NResults     int
	UseReranker  bool
	DenseWeight  float64
	SparseWeight float64

	// Filters, most specific wins: group → id list → single id.
	DocumentGroupID string
	FilterDocIDs    []string
	FilterDocID     string

	// Optional context steering the strategist.
	ResearchContext string
	AgentContext    string

	User      *models.UserContext
	MissionID string
}

// Strategist chooses expansion techniques for a query.
type Strategist interface {
	DetermineTechniques(ctx context.Context, req Request) ([]string, error)
}

// Preparer materializes prepared queries from techniques. Implementations
// preserve the query's language.
type Preparer interface {
	PrepareQueries(ctx context.Context, req Request, techniques []string) ([]string, error)
}

// HybridSearcher executes one hybrid dense+sparse search.
type HybridSearcher interface {
	HybridSearch(ctx context.Context, query string, nResults int, docIDs []string, denseWeight, sparseWeight float64) ([]models.Chunk, error)
}

// Reranker reorders candidates against the original query.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []models.Chunk, topN int) ([]models.Chunk, error)
}

// GroupResolver expands a document group ID into member doc IDs.
type GroupResolver interface {
	DocIDsForGroup(ctx context.Context, groupID string) ([]string, error)
}

// Engine is the retrieval pipeline.
type Engine struct {
	strategist Strategist    // nil = identity only
	preparer   Preparer      // nil = identity only
	searcher   HybridSearcher
	reranker   Reranker      // nil = reranking disabled
	groups     GroupResolver // nil = group filters unresolvable
}

// NewEngine creates a retrieval engine. searcher is required; the other
// collaborators may be nil, degrading the corresponding stage.
func NewEngine(strategist Strategist, preparer Preparer, searcher HybridSearcher, reranker Reranker, groups GroupResolver) *Engine {
	return &Engine{
		strategist: strategist,
		preparer:   preparer,
		searcher:   searcher,
		reranker:   reranker,
		groups:     groups,
	}
}

// Retrieve runs the full pipeline and returns up to NResults chunks.
// Strategy/preparation failures degrade to the identity query; total search
// failure returns an empty list, never an error.
func (e *Engine) Retrieve(ctx context.Context, req Request) []models.Chunk {
	if req.NResults <= 0 {
		req.NResults = 5
	}
	if req.DenseWeight == 0 && req.SparseWeight == 0 {
		req.DenseWeight, req.SparseWeight = 0.5, 0.5
	}

	queries := e.preparedQueries(ctx, req)
	docIDs, err := e.resolveFilter(ctx, req)
	if err != nil {
		slog.Warn("Failed to resolve document filter, searching unfiltered",
			"mission_id", req.MissionID, "error", err)
		docIDs = nil
	}

	aggregated := e.searchAll(ctx, req, queries, docIDs)
	if len(aggregated) == 0 {
		return nil
	}

	if req.UseReranker && e.reranker != nil {
		reranked, err := e.reranker.Rerank(ctx, req.Query, aggregated, req.NResults)
		if err != nil {
			slog.Warn("Reranking failed, returning aggregation order",
				"mission_id", req.MissionID, "error", err)
		} else {
			return reranked
		}
	}

	if len(aggregated) > req.NResults {
		aggregated = aggregated[:req.NResults]
	}
	return aggregated
}

// preparedQueries runs strategist + preparer, degrading to the identity
// query on any failure.
func (e *Engine) preparedQueries(ctx context.Context, req Request) []string {
	techniques := []string{TechniqueIdentity}
	if e.strategist != nil {
		chosen, err := e.strategist.DetermineTechniques(ctx, req)
		if err != nil {
			slog.Warn("Query strategist failed, using identity",
				"mission_id", req.MissionID, "error", err)
		} else if len(chosen) > 0 {
			techniques = chosen
		}
	}

	if e.preparer == nil {
		return []string{req.Query}
	}
	queries, err := e.preparer.PrepareQueries(ctx, req, techniques)
	if err != nil || len(queries) == 0 {
		if err != nil {
			slog.Warn("Query preparation failed, using identity",
				"mission_id", req.MissionID, "error", err)
		}
		return []string{req.Query}
	}
	return queries
}

// resolveFilter builds the doc-id restriction: group → list → single.
func (e *Engine) resolveFilter(ctx context.Context, req Request) ([]string, error) {
	switch {
	case req.DocumentGroupID != "" && e.groups != nil:
		return e.groups.DocIDsForGroup(ctx, req.DocumentGroupID)
	case len(req.FilterDocIDs) > 0:
		return req.FilterDocIDs, nil
	case req.FilterDocID != "":
		return []string{req.FilterDocID}, nil
	}
	return nil, nil
}

// searchAll issues all prepared queries concurrently, unions results, and
// de-duplicates by chunk id (or text hash when absent). Aggregation does
// not rescore; order is first-seen across queries in prepared order.
func (e *Engine) searchAll(ctx context.Context, req Request, queries []string, docIDs []string) []models.Chunk {
	results := make([][]models.Chunk, len(queries))

	g, searchCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	var mu sync.Mutex
	for i, q := range queries {
		g.Go(func() error {
			chunks, err := e.searcher.HybridSearch(searchCtx, q, req.NResults, docIDs, req.DenseWeight, req.SparseWeight)
			if err != nil {
				// Per-query errors are logged and dropped; others proceed.
				slog.Warn("Hybrid search failed for prepared query",
					"mission_id", req.MissionID, "query", q, "error", err)
				return nil
			}
			mu.Lock()
			results[i] = chunks
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	var aggregated []models.Chunk
	for _, chunks := range results {
		for _, c := range chunks {
			key := c.ChunkID
			if key == "" {
				sum := sha256.Sum256([]byte(c.Text))
				key = hex.EncodeToString(sum[:])
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			aggregated = append(aggregated, c)
		}
	}
	return aggregated
}
