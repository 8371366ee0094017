package backend

import "sync"

// Factory creates a new backend instance.
type Factory func() RenderBackend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)

	// defaultOrder is the fallback preference chain used when a
	// preferred backend is unavailable or unspecified.
	defaultOrder = []string{BackendCanvas, BackendSVG, BackendWGPU}
)

// Register registers a backend factory under a name. Typically called
// from init() in backend packages. Re-registering a name replaces the
// previous factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a new backend instance by name, or nil when the name is
// not registered.
func Get(name string) RenderBackend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Lookup returns a new backend instance by name, or ErrNotRegistered.
func Lookup(name string) (RenderBackend, error) {
	if b := Get(name); b != nil {
		return b, nil
	}
	return nil, ErrNotRegistered
}
