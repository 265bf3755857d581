package resolver

import (
	"sort"
	"sync"
)

// Registry is the process-lifetime set of person ids that have already won
// an allocation, as applicant or partner, in any term processed so far. It
// grows monotonically and never shrinks within a run. The resolver reads the
// registry as it stood before the term began; the runtime adds the term's
// accepted ids only after the term's rows are final.
type Registry struct {
	mux sync.RWMutex
	ids map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: map[string]struct{}{}}
}

// Contains reports whether id already holds an allocation.
func (r *Registry) Contains(id string) bool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	_, ok := r.ids[id]
	return ok
}

// Add records the supplied person ids. Empty ids are ignored.
func (r *Registry) Add(ids ...string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		r.ids[id] = struct{}{}
	}
}

// Size returns the number of registered ids.
func (r *Registry) Size() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.ids)
}

// Snapshot returns the registered ids in lexical order.
func (r *Registry) Snapshot() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
