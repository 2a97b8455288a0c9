package tools

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebCache_PutGetRoundTrip(t *testing.T) {
	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)

	meta := WebCacheMeta{
		ContentType:       "text/html",
		Title:             "Example",
		ExtractedMetadata: map[string]any{"year": "2023"},
	}
	require.NoError(t, cache.Put("https://example.com/page", []byte("<html>hi</html>"), meta))

	content, got, ok := cache.Get("https://example.com/page")
	require.True(t, ok)
	assert.Equal(t, []byte("<html>hi</html>"), content)
	assert.Equal(t, "https://example.com/page", got.URL)
	assert.Equal(t, "Example", got.Title)
	assert.Equal(t, "text/html", got.ContentType)
	assert.NotEmpty(t, got.FetchTimeUTC)
}

func TestWebCache_OnDiskLayout(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewWebCache(dir, 7)
	require.NoError(t, err)

	url := "https://example.com/doc.pdf"
	require.NoError(t, cache.Put(url, []byte("raw-bytes"), WebCacheMeta{ContentType: "application/pdf"}))

	sum := sha256.Sum256([]byte(url))
	key := hex.EncodeToString(sum[:])

	raw, err := os.ReadFile(filepath.Join(dir, key+".cache"))
	require.NoError(t, err)
	assert.Equal(t, []byte("raw-bytes"), raw)

	sidecar, err := os.ReadFile(filepath.Join(dir, key+".meta.json"))
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(sidecar, &meta))
	assert.Equal(t, url, meta["url"])
	assert.Equal(t, "application/pdf", meta["content_type"])
	assert.Contains(t, meta, "fetch_time_utc")
}

func TestWebCache_MissOnUnknownURL(t *testing.T) {
	cache, err := NewWebCache(t.TempDir(), 7)
	require.NoError(t, err)

	_, _, ok := cache.Get("https://example.com/nothing")
	assert.False(t, ok)
}

func TestWebCache_MissingSidecarIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewWebCache(dir, 7)
	require.NoError(t, err)

	url := "https://example.com/orphan"
	require.NoError(t, cache.Put(url, []byte("data"), WebCacheMeta{}))

	sum := sha256.Sum256([]byte(url))
	require.NoError(t, os.Remove(filepath.Join(dir, hex.EncodeToString(sum[:])+".meta.json")))

	_, _, ok := cache.Get(url)
	assert.False(t, ok)
}

func TestWebCache_ExpiredEntryIsMiss(t *testing.T) {
	cache, err := NewWebCache(t.TempDir(), 1)
	require.NoError(t, err)

	url := "https://example.com/old"
	meta := WebCacheMeta{
		FetchTimeUTC: time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339),
	}
	require.NoError(t, cache.Put(url, []byte("stale"), meta))

	_, _, ok := cache.Get(url)
	assert.False(t, ok)
}
