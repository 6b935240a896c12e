// Package imageable implements the open-set polymorphic attachment registry.
// A picture references its target by a (type-name, id) pair; the registry
// maps each registered type name to an existence probe. Unlike the closed
// entryable set, any entity type may register as an attachment target and no
// behavior dispatch is needed beyond existence checking.
package imageable

import (
	"context"
	"sort"
	"sync"

	"relstore/internal/shared/errors"
)

// ExistsFunc reports whether the row with the given id exists for the
// registered type.
type ExistsFunc func(ctx context.Context, id uint) (bool, error)

// Registry maps imageable type names to existence probes.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]ExistsFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{probes: make(map[string]ExistsFunc)}
}

// Register adds a type name to the registry. Re-registering a name replaces
// the previous probe.
func (r *Registry) Register(typeName string, probe ExistsFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[typeName] = probe
}

// TypeNames returns the registered names in sorted order.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.probes))
	for name := range r.probes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check verifies that (typeName, id) resolves to exactly one existing row.
// An unregistered name yields UnknownType; a registered name whose row is
// absent yields DanglingReference.
func (r *Registry) Check(ctx context.Context, typeName string, id uint) error {
	r.mu.RLock()
	probe, ok := r.probes[typeName]
	r.mu.RUnlock()

	if !ok {
		return errors.NewUnknownTypeError("imageable type is not registered", typeName)
	}

	exists, err := probe(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewDanglingReferenceError("imageable target does not exist", typeName)
	}
	return nil
}
