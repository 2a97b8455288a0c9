package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// providerHTTPTimeout bounds a single provider request.
const providerHTTPTimeout = 20 * time.Second

// TavilyProvider calls the Tavily search API.
type TavilyProvider struct {
	apiKey string
	client *http.Client
}

// NewTavilyProvider creates a Tavily-backed provider.
func NewTavilyProvider(apiKey string) *TavilyProvider {
	return &TavilyProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: providerHTTPTimeout},
	}
}

// Name implements SearchProvider.
func (p *TavilyProvider) Name() string { return "tavily" }

// Search implements SearchProvider.
func (p *TavilyProvider) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	body := map[string]any{
		"api_key":     p.apiKey,
		"query":       q.Query,
		"max_results": q.MaxResults,
	}
	if len(q.IncludeDomains) > 0 {
		body["include_domains"] = q.IncludeDomains
	}
	if len(q.ExcludeDomains) > 0 {
		body["exclude_domains"] = q.ExcludeDomains
	}

	var parsed struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := p.postJSON(ctx, "https://api.tavily.com/search", body, &parsed); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Content})
	}
	return results, nil
}

func (p *TavilyProvider) postJSON(ctx context.Context, endpoint string, body map[string]any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeProviderResponse(resp, out)
}

// LinkupProvider calls the Linkup search API.
type LinkupProvider struct {
	apiKey string
	client *http.Client
}

// NewLinkupProvider creates a Linkup-backed provider.
func NewLinkupProvider(apiKey string) *LinkupProvider {
	return &LinkupProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: providerHTTPTimeout},
	}
}

// Name implements SearchProvider.
func (p *LinkupProvider) Name() string { return "linkup" }

// Search implements SearchProvider.
func (p *LinkupProvider) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	body := map[string]any{
		"q":          q.Query,
		"depth":      "standard",
		"outputType": "searchResults",
	}
	if q.FromDate != "" {
		body["fromDate"] = q.FromDate
	}
	if q.ToDate != "" {
		body["toDate"] = q.ToDate
	}
	if len(q.IncludeDomains) > 0 {
		body["includeDomains"] = q.IncludeDomains
	}
	if len(q.ExcludeDomains) > 0 {
		body["excludeDomains"] = q.ExcludeDomains
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.linkup.so/v1/search", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed struct {
		Results []struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := decodeProviderResponse(resp, &parsed); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, min(len(parsed.Results), q.MaxResults))
	for _, r := range parsed.Results {
		if len(results) >= q.MaxResults {
			break
		}
		results = append(results, SearchResult{Title: r.Name, URL: r.URL, Snippet: r.Content})
	}
	return results, nil
}

// SearxngProvider queries a self-hosted SearXNG instance.
type SearxngProvider struct {
	baseURL    string
	categories string
	client     *http.Client
}

// NewSearxngProvider creates a SearXNG-backed provider.
func NewSearxngProvider(baseURL, categories string) *SearxngProvider {
	if categories == "" {
		categories = "general"
	}
	return &SearxngProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		categories: categories,
		client:     &http.Client{Timeout: providerHTTPTimeout},
	}
}

// Name implements SearchProvider.
func (p *SearxngProvider) Name() string { return "searxng" }

// Search implements SearchProvider.
func (p *SearxngProvider) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("format", "json")
	params.Set("categories", p.categories)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := decodeProviderResponse(resp, &parsed); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, q.MaxResults)
	for _, r := range parsed.Results {
		if len(results) >= q.MaxResults {
			break
		}
		if excluded(r.URL, q.ExcludeDomains) {
			continue
		}
		if len(q.IncludeDomains) > 0 && !included(r.URL, q.IncludeDomains) {
			continue
		}
		results = append(results, SearchResult{Title: r.Title, URL: r.URL, Snippet: r.Content})
	}
	return results, nil
}

func decodeProviderResponse(resp *http.Response, out any) error {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

func excluded(rawURL string, domains []string) bool {
	return matchesDomain(rawURL, domains)
}

func included(rawURL string, domains []string) bool {
	return matchesDomain(rawURL, domains)
}

func matchesDomain(rawURL string, domains []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(d, "www."))
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
