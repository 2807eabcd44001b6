// Package storage provides the small key/value persistence used for
// client-local state such as the session registry.
package storage

// Store is a minimal get/set key/value capability. Implementations must
// be safe for use from multiple goroutines.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
