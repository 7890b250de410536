// Copyright © 2026 Strata contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Name-to-factory registry for built-in apps.
// Usage: Binaries register the apps they compile in and resolve the
// configured default by name.

package registry

import (
	"sort"
	"sync"

	"github.com/framegrace/strata/core"
)

// AppFactory creates a new app instance.
type AppFactory func() core.App

// Registry manages the collection of available applications.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]AppFactory
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]AppFactory)}
}

// Register adds a factory under the given name, replacing any previous
// registration.
func (r *Registry) Register(name string, factory AppFactory) {
	if name == "" || factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates the named app, or returns false when the name is
// unknown.
func (r *Registry) Create(name string) (core.App, bool) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Names returns the registered app names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
