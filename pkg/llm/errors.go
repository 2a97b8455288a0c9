package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
)

var (
	// ErrProviderAuth indicates the provider rejected our credentials.
	ErrProviderAuth = errors.New("provider authentication failed")

	// ErrProviderQuota indicates a rate or quota limit (retryable).
	ErrProviderQuota = errors.New("provider quota exceeded")

	// ErrProviderNetwork indicates a network or server-side failure
	// (retryable).
	ErrProviderNetwork = errors.New("provider network error")

	// ErrBadRequest indicates a non-retryable client error.
	ErrBadRequest = errors.New("provider rejected request")
)

// Classify maps a provider error onto the taxonomy. Returns nil for nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return errors.Join(ErrProviderAuth, err)
		case apiErr.StatusCode == 429:
			return errors.Join(ErrProviderQuota, err)
		case apiErr.StatusCode >= 500:
			return errors.Join(ErrProviderNetwork, err)
		default:
			return errors.Join(ErrBadRequest, err)
		}
	}

	// No API response at all — treat as network trouble.
	return errors.Join(ErrProviderNetwork, err)
}

// IsRetryable reports whether a classified error is worth retrying.
// Cancellation is never retryable; 429 and 5xx/network are.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrProviderQuota) || errors.Is(err, ErrProviderNetwork)
}
