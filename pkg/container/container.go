// Package container provides the sizable, nestable composition node used to
// assemble chart instances. Containers do not paint content; they position
// and clip children and carry a back-reference to the drawing surface they
// paint into.
package container

import (
	"github.com/google/uuid"

	"github.com/go-chartkit/chartkit/pkg/geom"
	"github.com/go-chartkit/chartkit/pkg/surface"
)

// Anchor identifies the corner of the parent a container pins to.
type Anchor int

const (
	// AnchorTopLeft pins to the parent's top-left corner.
	AnchorTopLeft Anchor = iota
	// AnchorTopRight pins to the parent's top-right corner.
	AnchorTopRight
	// AnchorBottomLeft pins to the parent's bottom-left corner.
	AnchorBottomLeft
	// AnchorBottomRight pins to the parent's bottom-right corner.
	AnchorBottomRight
)

func (a Anchor) String() string {
	switch a {
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	default:
		return "top-left"
	}
}

// Container is a composition node. Every container except the document-bound
// root has exactly one parent; the root uses relative factors of 1.0 in
// place of a parent-derived size.
type Container struct {
	id    string
	group *surface.Group

	width          geom.Measure
	height         geom.Measure
	relativeWidth  float64
	relativeHeight float64
	fillOpacity    float64

	mask     *Container
	surface  surface.Surface
	parent   *Container
	children []*Container

	// baseBounds is the host-derived size the root resolves against when
	// there is no parent container.
	baseBounds geom.Rect

	maxWidth  float64
	maxHeight float64

	anchor Anchor

	measured   bool
	standalone bool
	disposed   bool

	maxSizeListeners map[int]*maxSizeListener
	nextListenerID   int
	disposers        []func()
}

type maxSizeListener struct {
	fn       func(width, height float64)
	once     bool
	disabled bool
}

// New creates a container bound to the given drawing surface.
func New(s surface.Surface) *Container {
	id := uuid.NewString()
	return &Container{
		id:          id,
		group:       surface.NewGroup(id),
		surface:     s,
		width:       geom.Percent(100),
		height:      geom.Percent(100),
		fillOpacity: 1,
		measured:    true,
	}
}

// ID returns the container's unique identifier.
func (c *Container) ID() string { return c.id }

// Group returns the container's visual group on the surface.
func (c *Container) Group() *surface.Group { return c.group }

// Surface returns the drawing surface this container paints into.
func (c *Container) Surface() surface.Surface { return c.surface }

// Parent returns the parent container, or nil for the document-bound root.
func (c *Container) Parent() *Container { return c.parent }

// Children returns the child containers in append order.
func (c *Container) Children() []*Container { return c.children }

// AddChild appends child to this container, detaching it from any previous
// parent first so the single-parent invariant holds.
func (c *Container) AddChild(child *Container) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = c
	c.children = append(c.children, child)
}

func (c *Container) removeChild(child *Container) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// SetSize sets the container's width and height measures.
func (c *Container) SetSize(width, height geom.Measure) {
	c.width = width
	c.height = height
}

// Width returns the width measure.
func (c *Container) Width() geom.Measure { return c.width }

// Height returns the height measure.
func (c *Container) Height() geom.Measure { return c.height }

// SetRelativeFactors sets the factors used to resolve percent sizes when no
// parent container exists.
func (c *Container) SetRelativeFactors(width, height float64) {
	c.relativeWidth = width
	c.relativeHeight = height
}

// RelativeFactors returns the relative width and height factors.
func (c *Container) RelativeFactors() (width, height float64) {
	return c.relativeWidth, c.relativeHeight
}

// SetFillOpacity sets the background fill opacity. Zero keeps the container
// invisible while still participating in hit testing and bounds.
func (c *Container) SetFillOpacity(opacity float64) {
	c.fillOpacity = opacity
}

// FillOpacity returns the background fill opacity.
func (c *Container) FillOpacity() float64 { return c.fillOpacity }

// SetBaseBounds sets the host-derived bounds the root resolves against.
func (c *Container) SetBaseBounds(bounds geom.Rect) {
	c.baseBounds = bounds
}

// ResolvedWidth resolves the width measure to pixels against the parent, or
// against the base bounds scaled by the relative factor for a root.
func (c *Container) ResolvedWidth() float64 {
	if c.parent != nil {
		return c.width.Resolve(c.parent.ResolvedWidth())
	}
	return c.width.Resolve(c.baseBounds.Width() * c.relativeWidth)
}

// ResolvedHeight resolves the height measure to pixels against the parent,
// or against the base bounds scaled by the relative factor for a root.
func (c *Container) ResolvedHeight() float64 {
	if c.parent != nil {
		return c.height.Resolve(c.parent.ResolvedHeight())
	}
	return c.height.Resolve(c.baseBounds.Height() * c.relativeHeight)
}

// SetMask sets the container whose bounds clip this one.
func (c *Container) SetMask(mask *Container) {
	c.mask = mask
	if mask != nil {
		c.group.SetMask(mask.group)
	} else {
		c.group.SetMask(nil)
	}
}

// ClipToBounds masks the container with itself: content is clipped to the
// container's own bounds. Clipping at this level, rather than at the root,
// lets siblings anchored to this container overflow it.
func (c *Container) ClipToBounds() {
	c.SetMask(c)
}

// Mask returns the current mask container, or nil.
func (c *Container) Mask() *Container { return c.mask }

// SetAnchor pins the container to a corner of its parent.
func (c *Container) SetAnchor(a Anchor) {
	c.anchor = a
}

// Anchor returns the corner of the parent the container is pinned to.
func (c *Container) Anchor() Anchor { return c.anchor }

// SetMeasured controls whether the container's size contributes to parent
// auto-sizing. The tooltip layer opts out.
func (c *Container) SetMeasured(measured bool) {
	c.measured = measured
}

// IsMeasured reports whether the container participates in measurement.
func (c *Container) IsMeasured() bool { return c.measured }

// SetStandalone marks the container as a self-contained root instance.
// Peer subsystems (preloader, export) consult this flag.
func (c *Container) SetStandalone(standalone bool) {
	c.standalone = standalone
}

// IsStandalone reports whether the container is a self-contained root.
func (c *Container) IsStandalone() bool { return c.standalone }
