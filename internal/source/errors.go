// Package source holds the error types shared by the external catalog
// fetchers.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ConfigError marks a sync attempt that failed before any network call
// because a required credential or collection identifier was missing.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Field)
}

// ProviderError carries a non-success response from an external API. Message
// is the provider's own error text, surfaced verbatim to the administrator.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
}

// googleErrorEnvelope is the error body Google APIs return on non-2xx
// responses.
type googleErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FromResponse builds a ProviderError from a non-success HTTP response,
// preferring the provider's own error message over the status text.
func FromResponse(provider string, resp *http.Response) *ProviderError {
	msg := resp.Status
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		var envelope googleErrorEnvelope
		if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
	}
	return &ProviderError{
		Provider:   provider,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
