// Package registry provides the process-wide registry of destination
// descriptors, keyed by qualified reference ("namespace.Name" or bare
// "Name"). It is populated once at startup, when the navigation graph is
// constructed, and read-only afterwards.
package registry

import (
	"slices"
	"strings"
	"sync"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Registry stores destination descriptors by qualified reference.
// It provides thread-safe access; the route codec itself never locks, since
// it only reads descriptors handed to it.
type Registry struct {
	descs map[string]*descriptor.Desc // key: Desc.Ref()
	mu    sync.RWMutex
}

// New creates a new empty Registry.
func New() *Registry {
	return &Registry{
		descs: make(map[string]*descriptor.Desc),
	}
}

// Register validates and adds a destination descriptor.
// Returns a schema error if the descriptor is malformed or a destination
// with the same reference already exists.
func (r *Registry) Register(d *descriptor.Desc) error {
	if d == nil {
		return wferr.New(wferr.ErrSchemaInvalid, "descriptor cannot be nil")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	key := d.Ref()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descs[key]; exists {
		return wferr.New(wferr.ErrSchemaDuplicate, "destination already registered").
			WithDestination(d.Namespace, d.Name)
	}

	r.descs[key] = d
	return nil
}

// Get retrieves a descriptor by qualified reference.
// Returns the descriptor and true if found, nil and false otherwise.
func (r *Registry) Get(ref string) (*descriptor.Desc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descs[ref]
	return d, ok
}

// GetByRef retrieves a descriptor by qualified reference, with a
// closest-match suggestion when the reference is unknown.
func (r *Registry) GetByRef(ref string) (*descriptor.Desc, error) {
	if d, ok := r.Get(ref); ok {
		return d, nil
	}

	err := wferr.New(wferr.ErrSchemaNotFound, "destination not found").
		With("ref", ref)
	return nil, wferr.SuggestName(err, ref, r.Refs())
}

// Refs returns the sorted list of registered references.
func (r *Registry) Refs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]string, 0, len(r.descs))
	for ref := range r.descs {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs
}

// All returns all registered descriptors sorted by reference, safe to
// iterate without holding locks.
func (r *Registry) All() []*descriptor.Desc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*descriptor.Desc, 0, len(r.descs))
	for _, d := range r.descs {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *descriptor.Desc) int {
		return strings.Compare(a.Ref(), b.Ref())
	})
	return out
}

// Namespaces returns a sorted list of all registered namespaces.
// Top-level destinations contribute the empty namespace.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nsSet := make(map[string]struct{})
	for _, d := range r.descs {
		nsSet[d.Namespace] = struct{}{}
	}

	out := make([]string, 0, len(nsSet))
	for ns := range nsSet {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// Count returns the number of registered destinations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.descs)
}

// Clear removes all destinations from the registry.
// This is primarily useful for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.descs = make(map[string]*descriptor.Desc)
}
