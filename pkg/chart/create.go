package chart

import (
	"sync"

	"github.com/go-chartkit/chartkit/pkg/container"
	"github.com/go-chartkit/chartkit/pkg/geom"
	"github.com/go-chartkit/chartkit/pkg/registry"
	"github.com/go-chartkit/chartkit/pkg/surface"
)

var (
	rendererMu      sync.RWMutex
	currentRenderer surface.Renderer = surface.NewRecorder()
)

// SetRenderer configures the drawing-surface renderer used by Create. The
// default is an in-memory recorder, which keeps headless use and tests
// working without a paint backend.
func SetRenderer(r surface.Renderer) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if r != nil {
		currentRenderer = r
	}
}

func renderer() surface.Renderer {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	return currentRenderer
}

// Create bootstraps a chart instance in the host element identified by
// hostRef (a surface.Host or its string id), instantiating the component
// the ref identifies.
//
// Host resolution failure is fatal and panics with a structured error; it
// is the only failure that prevents construction. An unresolvable component
// name falls back to a generic container and the error is raised on the
// returned instance instead of being thrown.
func Create(hostRef any, ref Ref) *Instance {
	return create(registry.Default(), hostRef, ref)
}

func create(reg *registry.Registry, hostRef any, ref Ref) *Instance {
	typ, resolveErr := ref.resolve()

	binding := surface.Bind(hostRef, renderer())
	s := binding.Surface

	// Root container: full size, invisible background, relative factors
	// forced to 1.0 since it has no parent container to derive them from.
	root := container.New(s)
	root.SetSize(geom.Percent(100), geom.Percent(100))
	root.SetFillOpacity(0)
	root.SetRelativeFactors(1, 1)
	root.SetBaseBounds(binding.Host.Bounds())

	// Paint order is root-first.
	s.AppendGroup(root.Group())

	// Content container, clipped to its own bounds. Clipping here rather
	// than at the root lets tooltips anchored to content overflow it.
	content := container.New(s)
	root.AddChild(content)
	content.SetSize(geom.Percent(100), geom.Percent(100))
	content.ClipToBounds()

	component := typ.New(content)

	inst := newInstance(reg, typ.Kind(), root, component)
	inst.isBase = true

	reg.Register(inst.uid)
	reg.MapBaseInstance(root.ID(), inst)
	reg.AddBaseInstance(inst)

	// Every registration above must be reversed on disposal; the registry
	// must not accumulate entries for dead instances.
	root.OnDispose(func() {
		reg.RemoveBaseInstance(inst)
		reg.UnmapBaseInstance(root.ID())
		reg.Deregister(inst.uid)
	})

	// Tooltip layer: sibling of content, excluded from measurement so it
	// never contributes to parent auto-sizing.
	tooltipLayer := container.New(s)
	root.AddChild(tooltipLayer)
	tooltipLayer.SetSize(geom.Percent(100), geom.Percent(100))
	tooltipLayer.SetMeasured(false)

	inst.tooltip = newTooltip(tooltipLayer)

	inst.preloader = newPreloader(content)

	if !Licensed() {
		inst.branding = newBranding(tooltipLayer)
	}

	content.SetStandalone(true)

	inst.applyThemes()

	if resolveErr != nil {
		inst.RaiseCriticalError(resolveErr)
	}

	return inst
}
