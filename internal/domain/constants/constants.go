// Package constants holds configuration values shared across packages.
package constants

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Cache provider names accepted in config.
const (
	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"
)
