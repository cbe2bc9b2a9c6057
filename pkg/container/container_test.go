package container

import (
	"testing"

	"github.com/go-chartkit/chartkit/pkg/geom"
	"github.com/go-chartkit/chartkit/pkg/surface"
)

func newTestSurface() surface.Surface {
	return surface.NewRecorder().NewSurface("test")
}

func TestContainer_AddChild_SingleParent(t *testing.T) {
	s := newTestSurface()
	a := New(s)
	b := New(s)
	child := New(s)

	a.AddChild(child)
	if child.Parent() != a {
		t.Fatal("expected child to be parented to a")
	}

	b.AddChild(child)
	if child.Parent() != b {
		t.Fatal("expected child to be reparented to b")
	}
	if len(a.Children()) != 0 {
		t.Errorf("a still has %d children, want 0", len(a.Children()))
	}
}

func TestContainer_ClipToBounds_SelfMask(t *testing.T) {
	s := newTestSurface()
	c := New(s)
	c.ClipToBounds()

	if c.Mask() != c {
		t.Error("expected container to be masked by itself")
	}
	if c.Group().Mask() != c.Group() {
		t.Error("expected the surface group to carry the self-mask")
	}
}

func TestContainer_ResolvedSize_RootUsesRelativeFactors(t *testing.T) {
	s := newTestSurface()
	root := New(s)
	root.SetSize(geom.Percent(100), geom.Percent(100))
	root.SetRelativeFactors(1, 1)
	root.SetBaseBounds(geom.RectFromLTWH(0, 0, 800, 600))

	if got := root.ResolvedWidth(); got != 800 {
		t.Errorf("ResolvedWidth = %v, want 800", got)
	}
	if got := root.ResolvedHeight(); got != 600 {
		t.Errorf("ResolvedHeight = %v, want 600", got)
	}

	child := New(s)
	root.AddChild(child)
	child.SetSize(geom.Percent(50), geom.Percent(100))
	if got := child.ResolvedWidth(); got != 400 {
		t.Errorf("child ResolvedWidth = %v, want 400", got)
	}
}

func TestContainer_MaxSizeListener_Persistent(t *testing.T) {
	s := newTestSurface()
	c := New(s)

	var calls int
	c.OnMaxSizeChanged(func(w, h float64) { calls++ })

	c.SetMaxSize(100, 50)
	c.SetMaxSize(100, 50) // unchanged, must not fire
	c.SetMaxSize(200, 100)

	if calls != 2 {
		t.Errorf("listener fired %d times, want 2", calls)
	}
}

func TestContainer_MaxSizeListener_OneShot(t *testing.T) {
	s := newTestSurface()
	c := New(s)

	var calls int
	c.OnMaxSizeChangedOnce(func(w, h float64) { calls++ })

	c.SetMaxSize(100, 50)
	c.SetMaxSize(200, 100)

	if calls != 1 {
		t.Errorf("one-shot listener fired %d times, want 1", calls)
	}
}

func TestContainer_MaxSizeListener_Unsubscribe(t *testing.T) {
	s := newTestSurface()
	c := New(s)

	var calls int
	unsubscribe := c.OnMaxSizeChanged(func(w, h float64) { calls++ })
	unsubscribe()

	c.SetMaxSize(100, 50)
	if calls != 0 {
		t.Errorf("listener fired %d times after unsubscribe, want 0", calls)
	}
}

func TestContainer_Dispose_RunsDisposersOnce(t *testing.T) {
	s := newTestSurface()
	c := New(s)

	var calls int
	c.OnDispose(func() { calls++ })

	c.Dispose()
	c.Dispose()

	if calls != 1 {
		t.Errorf("disposer ran %d times, want 1", calls)
	}
	if !c.IsDisposed() {
		t.Error("expected container to report disposed")
	}
}

func TestContainer_Dispose_CascadesToChildren(t *testing.T) {
	s := newTestSurface()
	parent := New(s)
	child := New(s)
	parent.AddChild(child)

	var childDisposed bool
	child.OnDispose(func() { childDisposed = true })

	parent.Dispose()
	if !childDisposed {
		t.Error("expected child disposer to run when parent is disposed")
	}
}

func TestContainer_Dispose_CascadesToAllSiblings(t *testing.T) {
	s := newTestSurface()
	parent := New(s)

	var disposed []string
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		child := New(s)
		parent.AddChild(child)
		child.OnDispose(func() { disposed = append(disposed, name) })
	}

	parent.Dispose()

	if len(disposed) != 4 {
		t.Fatalf("disposers ran for %v, want all of [a b c d]", disposed)
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if disposed[i] != want {
			t.Errorf("disposed[%d] = %q, want %q", i, disposed[i], want)
		}
	}
}

func TestContainer_Dispose_DetachesFromParent(t *testing.T) {
	s := newTestSurface()
	parent := New(s)
	child := New(s)
	parent.AddChild(child)

	child.Dispose()
	if len(parent.Children()) != 0 {
		t.Errorf("parent still has %d children, want 0", len(parent.Children()))
	}
}
