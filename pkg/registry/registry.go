// Package registry holds the process-wide bookkeeping that makes chart
// instances independently refreshable: pending-invalidation sets per
// instance, the ordered list of base instances, a container-to-instance
// index, and the active theme chain.
package registry

import (
	"sync"
)

// Instance is the narrow view of a chart instance the registry tracks.
type Instance interface {
	// UID returns the instance's process-unique identifier.
	UID() string
}

// InvalidationKind selects one of the three pending-work sets kept per
// registered instance.
type InvalidationKind int

const (
	// InvalidVisual marks pending visual (repaint) work.
	InvalidVisual InvalidationKind = iota
	// InvalidPosition marks pending position work.
	InvalidPosition
	// InvalidLayout marks pending layout work.
	InvalidLayout
)

func (k InvalidationKind) String() string {
	switch k {
	case InvalidPosition:
		return "position"
	case InvalidLayout:
		return "layout"
	default:
		return "visual"
	}
}

// Registry is the shared registration state. It is mutated only from the
// main execution context; the mutex guards against accidental cross-
// goroutine use rather than implementing a concurrency contract.
type Registry struct {
	mu sync.Mutex

	invalid [3]map[string]map[string]struct{}

	baseInstances   []Instance
	baseByContainer map[string]Instance

	themes []Theme
}

// New creates an empty registry. Most callers want Default instead; tests
// construct their own to stay isolated.
func New() *Registry {
	r := &Registry{
		baseByContainer: make(map[string]Instance),
	}
	for i := range r.invalid {
		r.invalid[i] = make(map[string]map[string]struct{})
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, initialized on first use and
// never torn down. Entries are removed individually on instance disposal.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register allocates empty invalidation sets for the instance under all
// three kinds. An instance id is present in the three maps iff the instance
// is live; absence means not yet created or already disposed.
func (r *Registry) Register(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invalid {
		if _, ok := r.invalid[i][uid]; !ok {
			r.invalid[i][uid] = make(map[string]struct{})
		}
	}
}

// Deregister removes the instance's invalidation sets. Safe to call for an
// unknown or already-deregistered id.
func (r *Registry) Deregister(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.invalid {
		delete(r.invalid[i], uid)
	}
}

// IsRegistered reports whether the instance is currently live.
func (r *Registry) IsRegistered(uid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.invalid[InvalidVisual][uid]
	return ok
}

// Invalidate adds a pending token to the instance's set of the given kind.
// Unregistered instances are ignored: invalidation on a disposed instance
// must not resurrect its entry.
func (r *Registry) Invalidate(kind InvalidationKind, uid, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.invalid[kind][uid]
	if !ok {
		return
	}
	set[token] = struct{}{}
}

// Pending returns the pending tokens of the given kind for the instance,
// or nil if the instance is not registered. A registered instance with no
// pending work yields an empty, non-nil slice.
func (r *Registry) Pending(kind InvalidationKind, uid string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.invalid[kind][uid]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for token := range set {
		out = append(out, token)
	}
	return out
}

// Drain removes and returns the pending tokens of the given kind. The
// layout algorithm consuming the registry calls this once per pass.
func (r *Registry) Drain(kind InvalidationKind, uid string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.invalid[kind][uid]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for token := range set {
		out = append(out, token)
	}
	r.invalid[kind][uid] = make(map[string]struct{})
	return out
}

// AddBaseInstance appends the instance to the ordered base-instance list.
func (r *Registry) AddBaseInstance(inst Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseInstances = append(r.baseInstances, inst)
}

// RemoveBaseInstance removes the instance from the base-instance list.
// No-op if absent; removing twice is safe.
func (r *Registry) RemoveBaseInstance(inst Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.baseInstances {
		if existing.UID() == inst.UID() {
			r.baseInstances = append(r.baseInstances[:i], r.baseInstances[i+1:]...)
			return
		}
	}
}

// BaseInstances returns the base instances in registration order.
func (r *Registry) BaseInstances() []Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Instance, len(r.baseInstances))
	copy(out, r.baseInstances)
	return out
}

// MapBaseInstance indexes the instance by its root container id.
func (r *Registry) MapBaseInstance(containerID string, inst Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseByContainer[containerID] = inst
}

// UnmapBaseInstance clears the container-id index entry. No-op if absent.
func (r *Registry) UnmapBaseInstance(containerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.baseByContainer, containerID)
}

// BaseInstanceForContainer looks up the base instance owning the given root
// container, or nil.
func (r *Registry) BaseInstanceForContainer(containerID string) Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.baseByContainer[containerID]
}
