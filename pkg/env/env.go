package env

import "os"

// Prefix matches the envconfig prefix used by pkg/config, so ad hoc lookups
// outside the Config struct resolve the same variable names.
const Prefix = "VELORA_"

// Get returns the value of the environment variable, preferring the
// VELORA_-prefixed name over the bare one, or the fallback when both are
// unset.
func Get(key, fallback string) string {
	if val := os.Getenv(Prefix + key); val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
