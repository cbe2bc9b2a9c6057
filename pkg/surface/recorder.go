package surface

import (
	"sync"

	"github.com/go-chartkit/chartkit/pkg/geom"
)

// Op records a single operation applied to a recorded surface.
type Op struct {
	// Kind is the operation name ("appendGroup", "setBounds").
	Kind string
	// Target is the name of the group involved, if any.
	Target string
	// Bounds carries the rectangle for bounds operations.
	Bounds geom.Rect
}

// Recorder is an in-memory Renderer that records every surface operation.
// Tests use it to assert composition order without a real paint backend.
type Recorder struct {
	mu       sync.Mutex
	surfaces []*RecordedSurface
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewSurface creates a recorded surface with the given name.
func (r *Recorder) NewSurface(name string) Surface {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &RecordedSurface{name: name}
	r.surfaces = append(r.surfaces, s)
	return s
}

// Surfaces returns all surfaces created through this recorder.
func (r *Recorder) Surfaces() []*RecordedSurface {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*RecordedSurface, len(r.surfaces))
	copy(out, r.surfaces)
	return out
}

// RecordedSurface implements Surface and keeps an op log.
type RecordedSurface struct {
	name   string
	ops    []Op
	groups []*Group
}

func (s *RecordedSurface) Name() string { return s.name }

func (s *RecordedSurface) AppendGroup(group *Group) {
	s.groups = append(s.groups, group)
	s.ops = append(s.ops, Op{Kind: "appendGroup", Target: group.Name})
}

func (s *RecordedSurface) SetBounds(bounds geom.Rect) {
	s.ops = append(s.ops, Op{Kind: "setBounds", Bounds: bounds})
}

// Ops returns the recorded operation log in order.
func (s *RecordedSurface) Ops() []Op { return s.ops }

// Groups returns appended groups in paint order.
func (s *RecordedSurface) Groups() []*Group { return s.groups }
