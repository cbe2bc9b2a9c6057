package surface

import (
	"fmt"
	"sync"

	"github.com/go-chartkit/chartkit/pkg/errors"
)

// Binding associates one host element with one drawing surface.
type Binding struct {
	Host    Host
	Surface Surface
}

var (
	activeMu sync.Mutex
	active   []Surface
)

// Active returns the process-wide list of surfaces created so far. The list
// only grows; disposed surfaces keep their slot so names stay unique.
// Compacting the list is a collaborator's concern, not the bootstrap's.
func Active() []Surface {
	activeMu.Lock()
	defer activeMu.Unlock()
	out := make([]Surface, len(active))
	copy(out, active)
	return out
}

// ResolveHost resolves a host reference, which may be a Host or its string
// identifier, to a concrete host element.
func ResolveHost(ref any) (Host, error) {
	switch v := ref.(type) {
	case Host:
		return v, nil
	case string:
		if h := LookupHost(v); h != nil {
			return h, nil
		}
		return nil, fmt.Errorf("no host element with id %q", v)
	default:
		return nil, fmt.Errorf("unsupported host reference type %T", ref)
	}
}

// Bind resolves the host reference, clears the host's existing content, and
// attaches a fresh drawing surface to it. The previous surface's content is
// discarded; binding the same host twice is safe.
//
// Host resolution failure is fatal: it is logged and raised as an
// unrecoverable error, since bootstrap cannot proceed without a host.
func Bind(ref any, renderer Renderer) *Binding {
	host, err := ResolveHost(ref)
	if err != nil {
		cerr := errors.New("surface.Bind", errors.KindHost, err)
		if id, ok := ref.(string); ok {
			cerr.Host = id
		}
		errors.Fatal(cerr)
	}

	host.ClearChildren()

	activeMu.Lock()
	name := fmt.Sprintf("chartkit-%d", len(active)+1)
	s := renderer.NewSurface(name)
	active = append(active, s)
	activeMu.Unlock()

	s.SetBounds(host.Bounds())
	host.AppendChild(s)

	return &Binding{Host: host, Surface: s}
}
