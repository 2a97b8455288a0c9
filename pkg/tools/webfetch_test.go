package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Attention Is All You Need</title></head>
<body>
<nav>Home | About</nav>
<article>
<h1>Attention Is All You Need</h1>
<p>by Vaswani, Shazeer and Parmar</p>
<p>The dominant sequence transduction models are based on complex recurrent networks. DOI: 10.48550/arXiv.1706.03762 (2017).</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func fetchArgs(t *testing.T, url string) Call {
	t.Helper()
	raw, err := json.Marshal(WebFetchArgs{URL: url})
	require.NoError(t, err)
	return Call{MissionID: "m1", Arguments: raw}
}

func TestWebFetchTool_FetchExtractsTitleAndText(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)
	tool := NewWebFetchTool(cache)

	res, err := tool.Execute(context.Background(), fetchArgs(t, srv.URL))
	require.NoError(t, err)
	require.Nil(t, res.Error)

	assert.Contains(t, res.Content, "Attention Is All You Need")
	assert.Contains(t, res.Content, "sequence transduction")
	assert.NotContains(t, res.Content, "Home | About", "navigation is boilerplate")
	require.Len(t, res.Notes, 1)
	assert.Equal(t, "web", res.Notes[0].SourceType)
	assert.Equal(t, srv.URL, res.Notes[0].SourceID)
	assert.Equal(t, int32(1), hits.Load())
}

func TestWebFetchTool_SecondFetchServedFromCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)
	tool := NewWebFetchTool(cache)

	first, err := tool.Execute(context.Background(), fetchArgs(t, srv.URL))
	require.NoError(t, err)
	require.Nil(t, first.Error)

	// Kill the network: subsequent fetches must be pure cache reads.
	srv.Close()

	start := time.Now()
	second, err := tool.Execute(context.Background(), fetchArgs(t, srv.URL))
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.Nil(t, second.Error)

	assert.Equal(t, first.Content, second.Content, "identical text/title tuple from cache")
	assert.Equal(t, int32(1), hits.Load(), "no second network request")
	assert.Less(t, elapsed, 200*time.Millisecond)
}

func TestWebFetchTool_403YieldsStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)
	tool := NewWebFetchTool(cache)

	res, err := tool.Execute(context.Background(), fetchArgs(t, srv.URL))
	require.NoError(t, err, "tool errors never propagate")
	require.NotNil(t, res.Error)
	assert.Equal(t, http.StatusForbidden, res.Error.StatusCode)
	assert.Contains(t, res.Error.Message, "403")
	assert.NotEmpty(t, res.Error.Suggestion)
}

func TestWebFetchTool_MetadataExtraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)
	tool := NewWebFetchTool(cache)

	res, err := tool.Execute(context.Background(), fetchArgs(t, srv.URL))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	require.Len(t, res.Notes, 1)

	md := res.Notes[0].SourceMetadata
	assert.Equal(t, "Attention Is All You Need", md["title"])
	assert.Contains(t, md, "doi")
	assert.Contains(t, md, "year")
}

func TestWebFetchTool_InvalidArguments(t *testing.T) {
	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)
	tool := NewWebFetchTool(cache)

	res, err := tool.Execute(context.Background(), Call{Arguments: json.RawMessage(`{}`)})
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Contains(t, res.Error.Message, "url")
}
