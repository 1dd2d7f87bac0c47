package bypass

import (
	"sort"
	"sync"
)

// Registry is a thread-safe set of suppressed handler identities. All
// operations are total: adding an existing identity or clearing a missing
// one is a no-op.
//
// A Registry is scoped to one execution context. Concurrent execution
// contexts must each construct their own; the mutex guards against misuse,
// not against a shared-across-contexts design.
type Registry struct {
	mu         sync.RWMutex
	suppressed map[string]struct{}
}

// New creates an empty bypass registry.
func New() *Registry {
	return &Registry{
		suppressed: make(map[string]struct{}),
	}
}

// Bypass adds an identity to the suppressed set. Idempotent.
func (r *Registry) Bypass(identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppressed[identity] = struct{}{}
}

// ClearBypass removes an identity from the suppressed set if present.
func (r *Registry) ClearBypass(identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.suppressed, identity)
}

// IsBypassed reports whether an identity is currently suppressed.
func (r *Registry) IsBypassed(identity string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.suppressed[identity]
	return ok
}

// ClearAllBypasses empties the suppressed set.
func (r *Registry) ClearAllBypasses() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppressed = make(map[string]struct{})
}

// Bypassed returns the suppressed identities in sorted order.
func (r *Registry) Bypassed() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identities := make([]string, 0, len(r.suppressed))
	for identity := range r.suppressed {
		identities = append(identities, identity)
	}

	sort.Strings(identities)
	return identities
}

// Count returns the number of suppressed identities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.suppressed)
}
