package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/retrieval"
)

// DocumentSearchArgs is the document search tool's input schema.
type DocumentSearchArgs struct {
	Query           string  `json:"query" jsonschema_description:"The search query"`
	NResults        int     `json:"n_results,omitempty" jsonschema_description:"Maximum number of chunks to return"`
	DocumentGroupID string  `json:"document_group_id,omitempty" jsonschema_description:"Restrict to a document group"`
	UseReranker     bool    `json:"use_reranker,omitempty"`
	DenseWeight     float64 `json:"dense_weight,omitempty"`
	SparseWeight    float64 `json:"sparse_weight,omitempty"`
}

// DocumentSearchTool wraps the retrieval engine as an agent capability.
type DocumentSearchTool struct {
	engine *retrieval.Engine
}

// NewDocumentSearchTool creates the document search tool.
func NewDocumentSearchTool(engine *retrieval.Engine) *DocumentSearchTool {
	return &DocumentSearchTool{engine: engine}
}

// Name implements Tool.
func (t *DocumentSearchTool) Name() string { return "document_search" }

// Description implements Tool.
func (t *DocumentSearchTool) Description() string {
	return "Searches the ingested document corpus with hybrid dense+sparse retrieval and returns the most relevant chunks."
}

// InputSchema implements Tool.
func (t *DocumentSearchTool) InputSchema() any { return schemaFor[DocumentSearchArgs]() }

// Execute implements Tool.
func (t *DocumentSearchTool) Execute(ctx context.Context, call Call) (*Result, error) {
	var args DocumentSearchArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid document_search arguments: %v", err)}}, nil
	}
	if args.Query == "" {
		return &Result{Error: &ToolError{Message: "document_search requires a query"}}, nil
	}

	chunks := t.engine.Retrieve(ctx, retrieval.Request{
		Query:           args.Query,
		NResults:        args.NResults,
		UseReranker:     args.UseReranker,
		DenseWeight:     args.DenseWeight,
		SparseWeight:    args.SparseWeight,
		DocumentGroupID: args.DocumentGroupID,
		User:            call.User,
		MissionID:       call.MissionID,
	})

	if len(chunks) == 0 {
		return &Result{Content: "No relevant document chunks found."}, nil
	}

	var sb strings.Builder
	notes := make([]models.CreateNoteRequest, 0, len(chunks))
	for i, c := range chunks {
		fmt.Fprintf(&sb, "[%d] doc=%s chunk=%s\n%s\n\n", i+1, c.DocID, c.ChunkID, c.Text)
		md := map[string]any{"doc_id": c.DocID}
		for k, v := range c.Metadata {
			md[k] = v
		}
		notes = append(notes, models.CreateNoteRequest{
			MissionID:      call.MissionID,
			Content:        c.Text,
			SourceType:     models.SourceTypeDocument,
			SourceID:       c.ChunkID,
			SourceMetadata: md,
		})
	}

	call.feedback().Emit(ctx, "tool_usage_status", map[string]any{
		"tool":        t.Name(),
		"query":       args.Query,
		"num_results": len(chunks),
	})

	return &Result{Content: sb.String(), Notes: notes}, nil
}
