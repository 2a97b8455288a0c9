package retrieval

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	retrievalv1 "github.com/scribe-research/scribe/proto"
	"github.com/scribe-research/scribe/pkg/models"
)

// GRPCSearcher implements HybridSearcher against the index sidecar.
// Plaintext transport — the sidecar runs on localhost; upgrade to TLS if it
// ever crosses a network boundary.
type GRPCSearcher struct {
	conn   *grpc.ClientConn
	client retrievalv1.IndexServiceClient
}

// NewGRPCSearcher connects to the index sidecar.
func NewGRPCSearcher(addr string) (*GRPCSearcher, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create index client for %s: %w", addr, err)
	}
	return &GRPCSearcher{
		conn:   conn,
		client: retrievalv1.NewIndexServiceClient(conn),
	}, nil
}

// HybridSearch issues one hybrid query against the index.
func (s *GRPCSearcher) HybridSearch(ctx context.Context, query string, nResults int, docIDs []string, denseWeight, sparseWeight float64) ([]models.Chunk, error) {
	resp, err := s.client.HybridSearch(ctx, &retrievalv1.HybridSearchRequest{
		Query:        query,
		NResults:     int32(nResults),
		DenseWeight:  denseWeight,
		SparseWeight: sparseWeight,
		DocIds:       docIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}
	return chunksFromProto(resp.GetChunks()), nil
}

// Close releases the gRPC connection.
func (s *GRPCSearcher) Close() error {
	return s.conn.Close()
}

// GRPCReranker implements Reranker against the reranker sidecar.
type GRPCReranker struct {
	conn   *grpc.ClientConn
	client retrievalv1.RerankServiceClient
}

// NewGRPCReranker connects to the reranker sidecar.
func NewGRPCReranker(addr string) (*GRPCReranker, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create rerank client for %s: %w", addr, err)
	}
	return &GRPCReranker{
		conn:   conn,
		client: retrievalv1.NewRerankServiceClient(conn),
	}, nil
}

// Rerank reorders candidates against the query, returning the top n by
// reranker score descending (ties keep submission order).
func (r *GRPCReranker) Rerank(ctx context.Context, query string, candidates []models.Chunk, topN int) ([]models.Chunk, error) {
	resp, err := r.client.Rerank(ctx, &retrievalv1.RerankRequest{
		Query:      query,
		Candidates: chunksToProto(candidates),
		TopN:       int32(topN),
	})
	if err != nil {
		return nil, fmt.Errorf("rerank: %w", err)
	}
	return chunksFromProto(resp.GetReranked()), nil
}

// Close releases the gRPC connection.
func (r *GRPCReranker) Close() error {
	return r.conn.Close()
}

// GRPCEmbedder exposes the embedding sidecar for callers that need raw
// dense query vectors.
type GRPCEmbedder struct {
	conn   *grpc.ClientConn
	client retrievalv1.EmbeddingServiceClient
}

// NewGRPCEmbedder connects to the embedding sidecar.
func NewGRPCEmbedder(addr string) (*GRPCEmbedder, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client for %s: %w", addr, err)
	}
	return &GRPCEmbedder{
		conn:   conn,
		client: retrievalv1.NewEmbeddingServiceClient(conn),
	}, nil
}

// EmbedQuery returns the dense vector for a query string.
func (e *GRPCEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.EmbedQuery(ctx, &retrievalv1.EmbedQueryRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return resp.GetVector(), nil
}

// Close releases the gRPC connection.
func (e *GRPCEmbedder) Close() error {
	return e.conn.Close()
}

func chunksFromProto(in []*retrievalv1.ChunkResult) []models.Chunk {
	chunks := make([]models.Chunk, 0, len(in))
	for _, c := range in {
		chunk := models.Chunk{
			ChunkID: c.GetChunkId(),
			DocID:   c.GetDocId(),
			Text:    c.GetText(),
			Score:   c.GetScore(),
		}
		if raw := c.GetMetadataJson(); raw != "" {
			var md map[string]any
			if err := json.Unmarshal([]byte(raw), &md); err == nil {
				chunk.Metadata = md
			}
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

func chunksToProto(in []models.Chunk) []*retrievalv1.ChunkResult {
	out := make([]*retrievalv1.ChunkResult, 0, len(in))
	for _, c := range in {
		pc := &retrievalv1.ChunkResult{
			ChunkId: c.ChunkID,
			DocId:   c.DocID,
			Text:    c.Text,
			Score:   c.Score,
		}
		if c.Metadata != nil {
			if raw, err := json.Marshal(c.Metadata); err == nil {
				pc.MetadataJson = string(raw)
			}
		}
		out = append(out, pc)
	}
	return out
}
