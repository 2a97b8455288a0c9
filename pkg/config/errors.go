package config

import "errors"

var (
	// ErrUnknownTier indicates a model tier name outside the known set.
	ErrUnknownTier = errors.New("unknown model tier")

	// ErrMissingAPIKey indicates the resolved provider has no credential.
	ErrMissingAPIKey = errors.New("missing API key for provider")
)
