package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// the auth middleware (local development).
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is the TTL for cached ordered listings. Zero
	// disables the listing cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}

// CacheTTL returns the configured listing-cache TTL as a duration.
// Non-positive values disable caching.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
