// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"sort"
	"sync"
)

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered rasterization backends.
//
// The registry enables third-party backends to register themselves without
// requiring changes to the core library.
//
// Example registration:
//
//	func init() {
//	    backend.Register("freetype", 80, &freetypeBackend{})
//	}
//
// Example usage:
//
//	b, err := backend.ByName("freetype")
//	// or auto-select the highest-priority backend:
//	b, err := backend.Default()
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	backend  Backend
	priority int
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register, ByName and Default.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a backend to the global registry.
//
// Priority determines auto-selection order (higher = preferred). Standard
// priorities: 100 for the default backend, 50 for opt-in alternatives.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, b Backend) {
	globalRegistry.Register(name, priority, b)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// ByName returns the named backend from the global registry.
func ByName(name string) (Backend, error) {
	return globalRegistry.ByName(name)
}

// Default returns the highest-priority backend from the global registry.
func Default() (Backend, error) {
	return globalRegistry.Default()
}

// Names returns all registered backend names sorted by priority
// (highest first).
func Names() []string {
	return globalRegistry.Names()
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]entry)
	}
	r.entries[name] = entry{backend: b, priority: priority}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// ByName returns the named backend.
func (r *Registry) ByName(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return e.backend, nil
}

// Default returns the highest-priority backend.
func (r *Registry) Default() (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.sortedNames()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	return r.entries[names[0]].backend, nil
}

// Names returns all registered backend names sorted by priority.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// sortedNames returns backend names sorted by priority (highest first).
// Must be called with the lock held.
func (r *Registry) sortedNames() []string {
	if len(r.entries) == 0 {
		return nil
	}

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := r.entries[names[i]].priority, r.entries[names[j]].priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}
