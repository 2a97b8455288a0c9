package tools

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WebCacheMeta is the sidecar stored next to each cached response.
// The on-disk layout is stable:
//
//	<cache_dir>/<sha256(url)>.cache      raw response bytes
//	<cache_dir>/<sha256(url)>.meta.json  this structure
type WebCacheMeta struct {
	URL               string         `json:"url"`
	ContentType       string         `json:"content_type"`
	Title             string         `json:"title"`
	FetchTimeUTC      string         `json:"fetch_time_utc"`
	ExtractedMetadata map[string]any `json:"extracted_metadata,omitempty"`
}

// WebCache is the content-addressed on-disk response cache. Entries are
// keyed by SHA-256 of the URL and expire after the configured TTL.
// Multi-writer safe: writes go to a temp file then rename atomically;
// readers treat a missing sidecar as a miss.
type WebCache struct {
	dir string
	ttl time.Duration
}

// NewWebCache creates the cache, ensuring the directory exists.
func NewWebCache(dir string, expirationDays int) (*WebCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &WebCache{
		dir: dir,
		ttl: time.Duration(expirationDays) * 24 * time.Hour,
	}, nil
}

func (c *WebCache) key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

func (c *WebCache) contentPath(url string) string {
	return filepath.Join(c.dir, c.key(url)+".cache")
}

func (c *WebCache) metaPath(url string) string {
	return filepath.Join(c.dir, c.key(url)+".meta.json")
}

// Get returns the cached raw bytes and sidecar for a URL if present and
// unexpired.
func (c *WebCache) Get(url string) ([]byte, *WebCacheMeta, bool) {
	metaRaw, err := os.ReadFile(c.metaPath(url))
	if err != nil {
		return nil, nil, false
	}
	var meta WebCacheMeta
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, nil, false
	}

	fetchedAt, err := time.Parse(time.RFC3339, meta.FetchTimeUTC)
	if err != nil || time.Since(fetchedAt) > c.ttl {
		return nil, nil, false
	}

	content, err := os.ReadFile(c.contentPath(url))
	if err != nil {
		return nil, nil, false
	}
	return content, &meta, true
}

// Put stores raw bytes and the sidecar for a URL. Content first, then the
// sidecar: a reader that sees the sidecar can rely on the content existing.
func (c *WebCache) Put(url string, content []byte, meta WebCacheMeta) error {
	meta.URL = url
	if meta.FetchTimeUTC == "" {
		meta.FetchTimeUTC = time.Now().UTC().Format(time.RFC3339)
	}

	if err := atomicWrite(c.contentPath(url), content); err != nil {
		return fmt.Errorf("write cache content: %w", err)
	}
	metaRaw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal cache meta: %w", err)
	}
	if err := atomicWrite(c.metaPath(url), metaRaw); err != nil {
		return fmt.Errorf("write cache meta: %w", err)
	}
	return nil
}

// atomicWrite writes via temp file + rename so concurrent writers never
// expose partial entries.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
