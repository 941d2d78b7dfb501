package api

import "github.com/ssargent/curdle/pkg/store"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AdjustRequest is the body of a score adjustment request. The delta
// is decoded as int64 so out-of-range values are rejected cleanly
// instead of wrapping during JSON decoding.
type AdjustRequest struct {
	Delta int64 `json:"delta"`
}

// ServerConfig holds API server configuration
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// ScoreAdjuster is the store surface the API consumes
type ScoreAdjuster interface {
	Adjust(player string, delta int32) error
	Stats() (*store.StoreStats, error)
}
