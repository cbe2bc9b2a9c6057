// Package chart bootstraps chart instances: it binds a drawing surface to a
// host element, composes the container hierarchy, registers the instance in
// the process-wide registry, and applies cross-cutting presentation policy
// (themes, tooltip, preloader, branding).
package chart

import (
	"github.com/google/uuid"

	"github.com/go-chartkit/chartkit/pkg/config"
	"github.com/go-chartkit/chartkit/pkg/container"
	"github.com/go-chartkit/chartkit/pkg/errors"
	"github.com/go-chartkit/chartkit/pkg/registry"
)

// Instance is the top-level component returned to the caller, distinguished
// from nested child components by IsBase. It owns exactly one drawing-
// surface-bound root container and deregisters itself from the registry
// when that container is disposed.
type Instance struct {
	uid    string
	kind   string
	isBase bool

	root      *container.Container
	component *container.Container

	tooltip   *Tooltip
	preloader *Preloader
	branding  *Branding

	reg *registry.Registry

	// props is the themed property bag. Themes mutate it during init.
	props map[string]any

	// cfg is the remaining declarative config attached by
	// CreateFromConfig; the instance's own config-application logic
	// consumes it.
	cfg config.Object

	criticalErrors  []*errors.ChartError
	numberFormatter *NumberFormatter
}

func newInstance(reg *registry.Registry, kind string, root, component *container.Container) *Instance {
	return &Instance{
		uid:       uuid.NewString(),
		kind:      kind,
		root:      root,
		component: component,
		reg:       reg,
		props:     map[string]any{},
	}
}

// UID returns the instance's process-unique identifier.
func (i *Instance) UID() string { return i.uid }

// Kind returns the component class name the instance was created as.
func (i *Instance) Kind() string { return i.kind }

// IsBase reports whether this is a base (root) instance.
func (i *Instance) IsBase() bool { return i.isBase }

// Root returns the drawing-surface-bound root container the instance owns.
func (i *Instance) Root() *container.Container { return i.root }

// Component returns the requested component's container, a child of the
// content container.
func (i *Instance) Component() *container.Container { return i.component }

// Tooltip returns the instance's tooltip object.
func (i *Instance) Tooltip() *Tooltip { return i.tooltip }

// Preloader returns the instance's loading indicator.
func (i *Instance) Preloader() *Preloader { return i.preloader }

// Branding returns the branding element, or nil when licensing disables it.
func (i *Instance) Branding() *Branding { return i.branding }

// Props returns the themed property bag.
func (i *Instance) Props() map[string]any { return i.props }

// SetConfig attaches the declarative config remainder for the instance's
// own config-application logic. The bootstrap never applies these values.
func (i *Instance) SetConfig(cfg config.Object) { i.cfg = cfg }

// Config returns the attached config object, or nil.
func (i *Instance) Config() config.Object { return i.cfg }

// NumberFormatter returns the instance's numeric-formatting helper,
// created lazily on first access.
func (i *Instance) NumberFormatter() *NumberFormatter {
	if i.numberFormatter == nil {
		i.numberFormatter = newNumberFormatter()
	}
	return i.numberFormatter
}

// RaiseCriticalError surfaces a recoverable error on the instance. The
// error is recorded for inspection and reported through the global handler;
// it is never thrown to the factory's caller.
func (i *Instance) RaiseCriticalError(err *errors.ChartError) {
	if err == nil {
		return
	}
	i.criticalErrors = append(i.criticalErrors, err)
	errors.Report(err)
}

// CriticalErrors returns the errors raised on the instance so far.
func (i *Instance) CriticalErrors() []*errors.ChartError {
	return i.criticalErrors
}

// Invalidate marks the instance as having pending visual work.
func (i *Instance) Invalidate() {
	i.reg.Invalidate(registry.InvalidVisual, i.uid, i.uid)
}

// InvalidatePosition marks the instance as having pending position work.
func (i *Instance) InvalidatePosition() {
	i.reg.Invalidate(registry.InvalidPosition, i.uid, i.uid)
}

// InvalidateLayout marks the instance as having pending layout work.
func (i *Instance) InvalidateLayout() {
	i.reg.Invalidate(registry.InvalidLayout, i.uid, i.uid)
}

// applyThemes runs the active theme chain over the instance's property bag
// in registration order. Later themes see the effects of earlier ones.
func (i *Instance) applyThemes() {
	for _, t := range i.reg.Themes() {
		t.Apply(i.props, i.kind)
	}
}

// Dispose destroys the instance by disposing its root container, which
// triggers the deregistration disposers wired at creation. Disposing twice
// is a no-op.
func (i *Instance) Dispose() {
	i.root.Dispose()
}

// IsDisposed reports whether the instance has been disposed.
func (i *Instance) IsDisposed() bool {
	return i.root.IsDisposed()
}
