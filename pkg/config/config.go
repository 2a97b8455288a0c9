// Package config provides environment-driven configuration for scribe:
// model tier bindings, research parameter defaults, cache settings, and the
// settings resolver used for all dynamic parameter reads.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/scribe-research/scribe/pkg/models"
)

// Logical model tiers. Each tier is bound per-user to (provider, model);
// these are the global fallbacks.
const (
	TierFast        = "fast"
	TierMid         = "mid"
	TierIntelligent = "intelligent"
	TierVerifier    = "verifier"
)

// Config is the process-wide configuration loaded from the environment.
type Config struct {
	// Default model tier bindings (overridable per user).
	ModelTiers map[string]models.TierBinding

	// LLM provider credentials keyed by provider name.
	ProviderAPIKeys map[string]string

	// Per-tier LLM call timeout.
	LLMCallTimeout time.Duration

	// Max attempts for transient LLM errors.
	LLMMaxAttempts int

	// Price table: model name → USD per 1M prompt/completion tokens.
	ModelPrices map[string]ModelPrice

	// Retrieval sidecar endpoints (gRPC).
	IndexServiceAddr  string
	RerankServiceAddr string
	RerankerEnabled   bool

	// Web search.
	WebSearchProvider string
	TavilyAPIKey      string
	LinkupAPIKey      string
	SearxngBaseURL    string

	// Web fetch cache.
	WebCacheDir            string
	WebCacheExpirationDays int

	// File reader confinement root.
	AllowedFileBasePath string

	// Research parameter defaults.
	Defaults ResearchParams

	// Mission pool.
	Pool PoolConfig
}

// ModelPrice is USD per 1M tokens.
type ModelPrice struct {
	PromptPerM     float64
	CompletionPerM float64
}

// PoolConfig controls the mission worker pool.
type PoolConfig struct {
	WorkerCount             int
	MaxConcurrentMissions   int
	QueueSize               int
	MissionTimeout          time.Duration
	GracefulShutdownTimeout time.Duration
}

// DefaultPoolConfig returns the built-in pool defaults.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		WorkerCount:             3,
		MaxConcurrentMissions:   3,
		QueueSize:               64,
		MissionTimeout:          2 * time.Hour,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// Load reads configuration from the environment. godotenv loading happens
// in main before this is called.
func Load() (*Config, error) {
	cfg := &Config{
		ModelTiers: map[string]models.TierBinding{
			TierFast:        tierFromEnv("FAST", "openai", "gpt-4o-mini"),
			TierMid:         tierFromEnv("MID", "openai", "gpt-4o"),
			TierIntelligent: tierFromEnv("INTELLIGENT", "openai", "gpt-4o"),
			TierVerifier:    tierFromEnv("VERIFIER", "openai", "gpt-4o-mini"),
		},
		ProviderAPIKeys: map[string]string{
			"openai":     os.Getenv("OPENAI_API_KEY"),
			"openrouter": os.Getenv("OPENROUTER_API_KEY"),
			"local":      os.Getenv("LOCAL_LLM_API_KEY"),
		},
		LLMCallTimeout:         envDuration("LLM_CALL_TIMEOUT", 120*time.Second),
		LLMMaxAttempts:         envInt("LLM_MAX_ATTEMPTS", 3),
		ModelPrices:            defaultModelPrices(),
		IndexServiceAddr:       envOrDefault("INDEX_SERVICE_ADDR", "localhost:50061"),
		RerankServiceAddr:      envOrDefault("RERANK_SERVICE_ADDR", "localhost:50062"),
		RerankerEnabled:        envBool("RERANKER_ENABLED", true),
		WebSearchProvider:      envOrDefault("WEB_SEARCH_PROVIDER", "searxng"),
		TavilyAPIKey:           os.Getenv("TAVILY_API_KEY"),
		LinkupAPIKey:           os.Getenv("LINKUP_API_KEY"),
		SearxngBaseURL:         os.Getenv("SEARXNG_BASE_URL"),
		WebCacheDir:            envOrDefault("WEB_CACHE_DIR", ".cache/web"),
		WebCacheExpirationDays: envInt("WEB_CACHE_EXPIRATION_DAYS", 7),
		AllowedFileBasePath:    envOrDefault("ALLOWED_FILE_BASE_PATH", "./data"),
		Defaults:               defaultsFromEnv(),
		Pool:                   poolFromEnv(),
	}
	return cfg, nil
}

// tierFromEnv reads MODEL_TIER_<NAME>_PROVIDER / _MODEL / _BASE_URL.
func tierFromEnv(name, defProvider, defModel string) models.TierBinding {
	return models.TierBinding{
		Provider: envOrDefault("MODEL_TIER_"+name+"_PROVIDER", defProvider),
		Model:    envOrDefault("MODEL_TIER_"+name+"_MODEL", defModel),
		BaseURL:  os.Getenv("MODEL_TIER_" + name + "_BASE_URL"),
	}
}

func defaultsFromEnv() ResearchParams {
	p := DefaultResearchParams()
	p.StructuredResearchRounds = envInt("STRUCTURED_RESEARCH_ROUNDS", p.StructuredResearchRounds)
	p.WritingPasses = envInt("WRITING_PASSES", p.WritingPasses)
	p.MaxConcurrentRequests = envInt("MAX_CONCURRENT_REQUESTS", p.MaxConcurrentRequests)
	p.MaxResearchCyclesPerSection = envInt("MAX_RESEARCH_CYCLES_PER_SECTION", p.MaxResearchCyclesPerSection)
	return p
}

func poolFromEnv() PoolConfig {
	p := DefaultPoolConfig()
	p.WorkerCount = envInt("MISSION_WORKER_COUNT", p.WorkerCount)
	p.MaxConcurrentMissions = envInt("MAX_CONCURRENT_MISSIONS", p.MaxConcurrentMissions)
	p.MissionTimeout = envDuration("MISSION_TIMEOUT", p.MissionTimeout)
	return p
}

func defaultModelPrices() map[string]ModelPrice {
	return map[string]ModelPrice{
		"gpt-4o":      {PromptPerM: 2.50, CompletionPerM: 10.00},
		"gpt-4o-mini": {PromptPerM: 0.15, CompletionPerM: 0.60},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// TierBindingFor resolves the tier binding for a user: user settings first,
// then the global default. Returns an error for unknown tiers.
func (c *Config) TierBindingFor(uc *models.UserContext, tier string) (models.TierBinding, error) {
	if uc != nil && uc.Settings != nil {
		if b, ok := uc.Settings.ModelTiers[tier]; ok {
			return b, nil
		}
	}
	if b, ok := c.ModelTiers[tier]; ok {
		return b, nil
	}
	return models.TierBinding{}, fmt.Errorf("%w: %s", ErrUnknownTier, tier)
}

// APIKeyFor returns the API key for a provider, or empty if unset.
func (c *Config) APIKeyFor(provider string) string {
	return c.ProviderAPIKeys[provider]
}
