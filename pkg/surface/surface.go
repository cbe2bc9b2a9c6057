// Package surface binds host document elements to vector drawing surfaces.
//
// The renderer itself (paint, geometry) lives outside the core; this package
// only defines the narrow contract the bootstrap consumes and keeps the
// process-wide bookkeeping of active surfaces.
package surface

import "github.com/go-chartkit/chartkit/pkg/geom"

// Renderer creates drawing surfaces. One renderer serves the whole process.
type Renderer interface {
	// NewSurface creates a fresh surface with the given unique name.
	NewSurface(name string) Surface
}

// Surface is a vector drawing surface bound one-to-one with a host element.
type Surface interface {
	// Name returns the process-unique surface name.
	Name() string
	// AppendGroup appends a visual group to the surface. Paint order
	// follows append order.
	AppendGroup(group *Group)
	// SetBounds sets the drawable bounds of the surface.
	SetBounds(bounds geom.Rect)
}

// Group is a visual group node on a surface. Groups do not paint content
// themselves; containers own one group each and use it for paint order and
// clipping.
type Group struct {
	Name string

	mask *Group
}

// NewGroup creates a named visual group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// SetMask sets the group whose bounds clip this group. A group may be its
// own mask, which clips it to its own bounds.
func (g *Group) SetMask(mask *Group) {
	g.mask = mask
}

// Mask returns the current mask group, or nil.
func (g *Group) Mask() *Group {
	return g.mask
}
