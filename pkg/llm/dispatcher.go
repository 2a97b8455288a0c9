package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/scribe-research/scribe/pkg/config"
	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/usage"
)

// CallSpec identifies who is calling and at which tier.
type CallSpec struct {
	User      *models.UserContext
	MissionID string
	Tier      string

	// MaxConcurrent sizes the caller's per-user semaphore on first use.
	// Resolved by the caller through the settings resolver.
	MaxConcurrent int
}

// CallResult is the dispatcher's reply.
type CallResult struct {
	Content          string
	ToolCalls        []ToolCall
	Usage            models.UsageRecord
	ScratchpadUpdate string
}

// ClientFactory builds provider clients. Swapped in tests.
type ClientFactory func(cfg ClientConfig) (ProviderClient, error)

// Dispatcher routes LLM calls to model tiers with per-user concurrency,
// retries, and usage accounting.
type Dispatcher struct {
	cfg     *config.Config
	meter   *usage.Meter
	factory ClientFactory

	mu      sync.Mutex
	sems    map[string]*semaphore.Weighted
	clients map[string]ProviderClient
}

// NewDispatcher creates a Dispatcher. meter may be nil (no accounting).
func NewDispatcher(cfg *config.Config, meter *usage.Meter) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		meter:   meter,
		factory: NewOpenAIClient,
		sems:    make(map[string]*semaphore.Weighted),
		clients: make(map[string]ProviderClient),
	}
}

// SetClientFactory replaces the provider client constructor (tests).
func (d *Dispatcher) SetClientFactory(f ClientFactory) {
	d.factory = f
}

// Call issues a tiered LLM request. It acquires the user's semaphore for
// the duration of the provider call, retries transient errors with
// exponential backoff, and records usage on success.
//
// When req.SchemaName is set, out (if non-nil) receives the schema-parsed
// response and a top-level "scratchpad_update" string field, if present, is
// surfaced on the result.
func (d *Dispatcher) Call(ctx context.Context, spec CallSpec, req Request, out any) (*CallResult, error) {
	binding, err := d.cfg.TierBindingFor(spec.User, spec.Tier)
	if err != nil {
		return nil, err
	}

	client, err := d.clientFor(binding)
	if err != nil {
		return nil, err
	}

	// The permit covers only the provider exchange. It must be released
	// before any bus publish (the meter publishes stats increments).
	sem := d.semFor(userID(spec.User), spec.MaxConcurrent)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := d.callWithRetry(ctx, client, req)
	duration := time.Since(start)
	sem.Release(1)
	if err != nil {
		return nil, err
	}

	rec := models.UsageRecord{
		Provider:         binding.Provider,
		ModelName:        binding.Model,
		DurationSec:      duration.Seconds(),
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		NativeTokens:     resp.NativeTokens,
		Cost:             d.cost(binding.Model, resp.PromptTokens, resp.CompletionTokens),
	}
	if d.meter != nil && spec.MissionID != "" {
		d.meter.RecordLLM(ctx, spec.MissionID, rec)
	}

	result := &CallResult{
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
		Usage:     rec,
	}

	if req.SchemaName != "" {
		if out != nil {
			if err := json.Unmarshal([]byte(resp.Content), out); err != nil {
				return nil, fmt.Errorf("unmarshal structured response: %w", err)
			}
		}
		result.ScratchpadUpdate = extractScratchpad(resp.Content)
	}

	return result, nil
}

// callWithRetry retries transient provider errors with exponential backoff
// up to the configured attempt count. Non-retryable errors fail fast.
func (d *Dispatcher) callWithRetry(ctx context.Context, client ProviderClient, req Request) (*Response, error) {
	attempts := d.cfg.LLMMaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		callCtx := ctx
		var cancel context.CancelFunc
		if d.cfg.LLMCallTimeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, d.cfg.LLMCallTimeout)
		}
		resp, err := client.Chat(callCtx, req)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			return resp, nil
		}

		classified := Classify(err)
		if !IsRetryable(classified) {
			return nil, classified
		}
		lastErr = classified

		if attempt < attempts {
			slog.Warn("LLM call failed, retrying",
				"model", client.Model(),
				"attempt", attempt,
				"backoff", backoff,
				"error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("exhausted %d attempts: %w", attempts, lastErr)
}

// clientFor returns (caching) the provider client for a tier binding.
func (d *Dispatcher) clientFor(binding models.TierBinding) (ProviderClient, error) {
	key := binding.Provider + "|" + binding.BaseURL + "|" + binding.Model

	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.clients[key]; ok {
		return c, nil
	}

	apiKey := d.cfg.APIKeyFor(binding.Provider)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", config.ErrMissingAPIKey, binding.Provider)
	}
	c, err := d.factory(ClientConfig{
		APIKey:  apiKey,
		BaseURL: binding.BaseURL,
		Model:   binding.Model,
	})
	if err != nil {
		return nil, err
	}
	d.clients[key] = c
	return c, nil
}

// semFor returns the per-user semaphore, created with the given permits on
// first use. Missions of the same user share the semaphore; different users
// never contend.
func (d *Dispatcher) semFor(userID string, permits int) *semaphore.Weighted {
	if permits < 1 {
		permits = 1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.sems[userID]; ok {
		return s
	}
	s := semaphore.NewWeighted(int64(permits))
	d.sems[userID] = s
	return s
}

func (d *Dispatcher) cost(model string, promptTokens, completionTokens int) float64 {
	price, ok := d.cfg.ModelPrices[model]
	if !ok {
		return 0
	}
	return float64(promptTokens)/1e6*price.PromptPerM +
		float64(completionTokens)/1e6*price.CompletionPerM
}

func userID(uc *models.UserContext) string {
	if uc == nil {
		return ""
	}
	return uc.UserID
}

// extractScratchpad pulls a top-level "scratchpad_update" string out of a
// structured response, if the schema included one.
func extractScratchpad(content string) string {
	var probe struct {
		ScratchpadUpdate string `json:"scratchpad_update"`
	}
	if err := json.Unmarshal([]byte(content), &probe); err != nil {
		return ""
	}
	return probe.ScratchpadUpdate
}
