package surface

import (
	"strings"
	"testing"

	"github.com/go-chartkit/chartkit/pkg/errors"
)

type silentHandler struct{}

func (silentHandler) HandleError(err *errors.ChartError) {}
func (silentHandler) HandlePanic(err *errors.PanicError) {}

func TestResolveHost_ByReferenceAndByID(t *testing.T) {
	el := NewElement("chartdiv", 800, 600)
	RegisterHost(el)
	defer UnregisterHost("chartdiv")

	h, err := ResolveHost(el)
	if err != nil || h != Host(el) {
		t.Fatalf("ResolveHost(el) = %v, %v", h, err)
	}

	h, err = ResolveHost("chartdiv")
	if err != nil || h != Host(el) {
		t.Fatalf("ResolveHost(id) = %v, %v", h, err)
	}
}

func TestResolveHost_UnknownID(t *testing.T) {
	if _, err := ResolveHost("missing"); err == nil {
		t.Fatal("expected an error for an unknown host id")
	}
}

func TestBind_FatalOnUnresolvedHost(t *testing.T) {
	errors.SetHandler(silentHandler{})
	defer errors.SetHandler(nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Bind to panic on unresolved host")
		}
		cerr, ok := r.(*errors.ChartError)
		if !ok {
			t.Fatalf("panic value = %T, want *errors.ChartError", r)
		}
		if cerr.Kind != errors.KindHost {
			t.Errorf("kind = %v, want host", cerr.Kind)
		}
	}()
	Bind("definitely-missing", NewRecorder())
}

func TestBind_ClearsHostAndAttachesSurface(t *testing.T) {
	el := NewElement("bind-test", 400, 300)
	el.AppendChild("stale content")

	b := Bind(el, NewRecorder())
	if b.Host != Host(el) {
		t.Fatal("binding host mismatch")
	}

	children := el.Children()
	if len(children) != 1 {
		t.Fatalf("host has %d children, want 1 (the surface)", len(children))
	}
	if children[0] != b.Surface {
		t.Error("expected the fresh surface to be the host's only child")
	}
}

func TestBind_SurfaceNamesUnique(t *testing.T) {
	r := NewRecorder()
	a := Bind(NewElement("u1", 10, 10), r)
	b := Bind(NewElement("u2", 10, 10), r)

	if a.Surface.Name() == b.Surface.Name() {
		t.Errorf("surface names collide: %q", a.Surface.Name())
	}
	if !strings.HasPrefix(a.Surface.Name(), "chartkit-") {
		t.Errorf("surface name = %q, want chartkit- prefix", a.Surface.Name())
	}
}

func TestBind_ActiveListGrows(t *testing.T) {
	before := len(Active())
	Bind(NewElement("grow", 10, 10), NewRecorder())
	if got := len(Active()); got != before+1 {
		t.Errorf("active surfaces = %d, want %d", got, before+1)
	}
}
