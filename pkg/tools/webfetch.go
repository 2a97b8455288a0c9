package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/models"
)

// fetchTimeout bounds the total HTTP exchange for one page.
const fetchTimeout = 30 * time.Second

// maxFetchBytes caps how much of a response is read.
const maxFetchBytes = 10 << 20 // 10 MiB

// WebFetchArgs is the web page fetcher's input schema.
type WebFetchArgs struct {
	URL string `json:"url" jsonschema_description:"The URL to fetch and extract"`
}

// WebFetchTool retrieves a page, extracts its main text and structured
// metadata, and serves repeats from the on-disk cache within the TTL.
type WebFetchTool struct {
	cache  *WebCache
	client *http.Client
}

// NewWebFetchTool creates the fetcher.
func NewWebFetchTool(cache *WebCache) *WebFetchTool {
	return &WebFetchTool{
		cache:  cache,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Name implements Tool.
func (t *WebFetchTool) Name() string { return "fetch_web_page" }

// Description implements Tool.
func (t *WebFetchTool) Description() string {
	return "Fetches a web page or PDF, extracts the main text content and bibliographic metadata. Responses are cached on disk."
}

// InputSchema implements Tool.
func (t *WebFetchTool) InputSchema() any { return schemaFor[WebFetchArgs]() }

// Execute implements Tool.
func (t *WebFetchTool) Execute(ctx context.Context, call Call) (*Result, error) {
	var args WebFetchArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid fetch_web_page arguments: %v", err)}}, nil
	}
	if args.URL == "" {
		return &Result{Error: &ToolError{Message: "fetch_web_page requires a url"}}, nil
	}

	fb := call.feedback()
	fb.Emit(ctx, bus.FeedbackWebFetchStart, map[string]any{"url": args.URL})

	raw, meta, hit := t.cache.Get(args.URL)
	if !hit {
		var toolErr *ToolError
		raw, meta, toolErr = t.fetch(ctx, args.URL)
		if toolErr != nil {
			return &Result{Error: toolErr}, nil
		}
	}

	title, text, extractErr := extractByContentType(raw, meta.ContentType)
	if extractErr != nil {
		return &Result{Error: &ToolError{
			Message: fmt.Sprintf("Fetched %s but could not extract text: %v", args.URL, extractErr),
		}}, nil
	}
	if title == "" {
		title = meta.Title
	}
	if meta.Title == "" {
		meta.Title = title
	}
	if meta.ExtractedMetadata == nil {
		meta.ExtractedMetadata = ExtractDocumentMetadata(text)
	}

	if !hit {
		// Cache the raw response with the finished sidecar. Failures here
		// only cost a re-fetch next time.
		if err := t.cache.Put(args.URL, raw, *meta); err != nil {
			fb.Emit(ctx, bus.FeedbackToolUsageStatus, map[string]any{
				"tool":  t.Name(),
				"error": fmt.Sprintf("cache write failed: %v", err),
			})
		}
	}

	fb.Emit(ctx, bus.FeedbackWebFetchComplete, map[string]any{
		"url":    args.URL,
		"title":  meta.Title,
		"cached": hit,
		"chars":  len(text),
	})

	sourceMD := map[string]any{
		"url":   args.URL,
		"title": meta.Title,
	}
	for k, v := range meta.ExtractedMetadata {
		sourceMD[k] = v
	}

	return &Result{
		Content: fmt.Sprintf("# %s\n\n%s", meta.Title, text),
		Notes: []models.CreateNoteRequest{{
			MissionID:      call.MissionID,
			Content:        text,
			SourceType:     models.SourceTypeWeb,
			SourceID:       args.URL,
			SourceMetadata: sourceMD,
		}},
	}, nil
}

// fetch performs the network exchange and classifies failures into
// structured tool errors.
func (t *WebFetchTool) fetch(ctx context.Context, rawURL string) ([]byte, *WebCacheMeta, *ToolError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, &ToolError{Message: fmt.Sprintf("invalid URL %s: %v", rawURL, err)}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; scribe-research/1.0)")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, nil, &ToolError{Message: fmt.Sprintf("failed to fetch %s: %v", rawURL, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, nil, &ToolError{
			Message:    fmt.Sprintf("Access denied (403 Forbidden) for URL: %s. This website blocks automated access.", rawURL),
			StatusCode: http.StatusForbidden,
			Suggestion: "This website restricts automated access. Consider using alternative sources or manual research for this content.",
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &ToolError{
			Message:    fmt.Sprintf("fetching %s returned HTTP %d", rawURL, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, nil, &ToolError{Message: fmt.Sprintf("failed to read %s: %v", rawURL, err)}
	}

	return raw, &WebCacheMeta{
		URL:          rawURL,
		ContentType:  resp.Header.Get("Content-Type"),
		FetchTimeUTC: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func extractByContentType(raw []byte, contentType string) (title, text string, err error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		text, err = ExtractPDF(raw)
		return "", text, err
	case strings.Contains(ct, "text/html") || looksLikeHTML(raw):
		return ExtractHTML(raw)
	default:
		return "", collapseWhitespace(string(raw)), nil
	}
}

func looksLikeHTML(raw []byte) bool {
	head := strings.ToLower(string(raw[:min(len(raw), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
