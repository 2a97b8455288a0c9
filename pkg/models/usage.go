package models

// UsageRecord captures the cost of a single LLM or tool call. Records are
// consumed by the usage meter and discarded; only rollups persist.
type UsageRecord struct {
	Provider         string  `json:"provider"`
	ModelName        string  `json:"model_name"`
	DurationSec      float64 `json:"duration_sec"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	NativeTokens     int     `json:"native_tokens"`
	Cost             float64 `json:"cost"`
}

// Add accumulates another record's counters into this one.
func (u *UsageRecord) Add(other UsageRecord) {
	u.DurationSec += other.DurationSec
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.NativeTokens += other.NativeTokens
	u.Cost += other.Cost
}
