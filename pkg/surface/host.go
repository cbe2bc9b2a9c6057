package surface

import (
	"sync"

	"github.com/go-chartkit/chartkit/pkg/geom"
)

// Host is the document element a chart instance renders into.
type Host interface {
	// ID returns the document-level identifier of the element.
	ID() string
	// Bounds returns the element's current bounds.
	Bounds() geom.Rect
	// ClearChildren removes all content from the element. Must be
	// idempotent; binding clears the host before attaching a surface.
	ClearChildren()
	// AppendChild attaches content to the element.
	AppendChild(child any)
}

// Element is a plain in-memory Host. Real embeddings supply their own Host
// implementation; Element covers tests and headless use.
type Element struct {
	id       string
	bounds   geom.Rect
	children []any
}

// NewElement creates a host element with the given id and size.
func NewElement(id string, width, height float64) *Element {
	return &Element{
		id:     id,
		bounds: geom.RectFromLTWH(0, 0, width, height),
	}
}

func (e *Element) ID() string { return e.id }

func (e *Element) Bounds() geom.Rect { return e.bounds }

func (e *Element) ClearChildren() { e.children = nil }

func (e *Element) AppendChild(child any) {
	e.children = append(e.children, child)
}

// Children returns the currently attached content.
func (e *Element) Children() []any { return e.children }

var (
	hostsMu sync.RWMutex
	hosts   = map[string]Host{}
)

// RegisterHost makes a host element resolvable by its id.
func RegisterHost(h Host) {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	hosts[h.ID()] = h
}

// UnregisterHost removes a host element from the resolver.
func UnregisterHost(id string) {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	delete(hosts, id)
}

// LookupHost resolves a host element by id. Returns nil if unknown.
func LookupHost(id string) Host {
	hostsMu.RLock()
	defer hostsMu.RUnlock()
	return hosts[id]
}
