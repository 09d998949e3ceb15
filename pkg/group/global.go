package group

import "sync"

// The process-wide registry serves callers that register groups once at
// startup and consult them from anywhere. Library callers can ignore it and
// pass their own Registry around.
var (
	defaultRegistry   *Registry
	defaultRegistryMu sync.Mutex
)

func init() {
	defaultRegistry = NewRegistry()
}

// Default returns the process-wide registry.
func Default() *Registry {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	return defaultRegistry
}

// AppendGroup registers a group on the process-wide registry.
func AppendGroup(patterns ...string) error {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	return defaultRegistry.Append(patterns...)
}

// ResetDefault replaces the process-wide registry with an empty one.
// Intended for tests.
func ResetDefault() {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	defaultRegistry = NewRegistry()
}
