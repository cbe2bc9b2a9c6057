package chart

import (
	"sync"

	"github.com/go-chartkit/chartkit/pkg/container"
	"github.com/go-chartkit/chartkit/pkg/errors"
)

// Type constructs the concrete component of a chart instance. Concrete
// chart kinds (XY, pie, map) register themselves; the bootstrap only needs
// this narrow contract.
type Type interface {
	// Kind returns the component class name used for theming and lookup.
	Kind() string
	// New builds the component's container subtree under parent and
	// returns its root node.
	New(parent *container.Container) *container.Container
}

// genericType is the fallback component: a bare container. Used when a
// requested class name cannot be resolved, so construction can still
// produce something to render and then report what went wrong.
type genericType struct{}

func (genericType) Kind() string { return "Container" }

func (genericType) New(parent *container.Container) *container.Container {
	c := container.New(parent.Surface())
	parent.AddChild(c)
	return c
}

// Generic is the fallback component type.
var Generic Type = genericType{}

var (
	classesMu sync.RWMutex
	classes   = map[string]Type{}
)

// RegisterClass makes a component type resolvable by name. Registering the
// same name again replaces the previous entry.
func RegisterClass(name string, t Type) {
	classesMu.Lock()
	defer classesMu.Unlock()
	classes[name] = t
}

// LookupClass resolves a registered component type by name.
func LookupClass(name string) (Type, bool) {
	classesMu.RLock()
	defer classesMu.RUnlock()
	t, ok := classes[name]
	return t, ok
}

// Ref identifies a component type either by a concrete Type or by its
// registered name. The ambiguity of string-or-type input stays at this
// boundary; everything past resolve works with a concrete Type.
type Ref struct {
	typ    Type
	name   string
	byName bool
}

// ByType references a concrete component type.
func ByType(t Type) Ref {
	return Ref{typ: t}
}

// ByName references a component type by its registered class name.
func ByName(name string) Ref {
	return Ref{name: name, byName: true}
}

// IsZero reports whether the ref identifies nothing.
func (r Ref) IsZero() bool {
	return !r.byName && r.typ == nil
}

// resolve returns the concrete type for the ref. An unresolved name or an
// empty ref yields the Generic fallback together with a recoverable error
// for the constructed instance's reporting channel.
func (r Ref) resolve() (Type, *errors.ChartError) {
	if r.byName {
		if t, ok := LookupClass(r.name); ok {
			return t, nil
		}
		return Generic, errors.Newf("chart.Create", errors.KindResolve,
			"component class %q is not registered; rendering a generic container instead", r.name)
	}
	if r.typ != nil {
		return r.typ, nil
	}
	return Generic, errors.Newf("chart.Create", errors.KindResolve,
		"no component type given; rendering a generic container instead")
}
