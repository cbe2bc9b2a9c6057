package chart

import (
	"github.com/go-chartkit/chartkit/pkg/container"
)

// Preloader is the loading indicator owned by the content container. The
// indicator's animation is a collaborator concern; the bootstrap tracks
// its progress value and disables it once initialization completes.
type Preloader struct {
	owner    *container.Container
	progress float64
	disabled bool

	initedListeners []*initedListener
}

type initedListener struct {
	fn       func()
	once     bool
	disabled bool
}

// newPreloader creates a preloader owned by the given container. It
// subscribes once to its own init-complete event: after the first firing
// the preloader marks itself disabled and never re-enables.
func newPreloader(owner *container.Container) *Preloader {
	p := &Preloader{owner: owner}
	p.onInitedOnce(func() {
		p.disabled = true
	})
	return p
}

// Owner returns the container the preloader is attached to.
func (p *Preloader) Owner() *container.Container { return p.owner }

// SetProgress updates the load progress in [0, 1]. Ignored once disabled.
func (p *Preloader) SetProgress(v float64) {
	if p.disabled {
		return
	}
	p.progress = v
}

// Progress returns the current load progress.
func (p *Preloader) Progress() float64 { return p.progress }

// Disabled reports whether the preloader has been disabled.
func (p *Preloader) Disabled() bool { return p.disabled }

// onInitedOnce registers a one-shot listener for the init-complete event.
// One-shot listeners are disabled after the first firing rather than
// removed.
func (p *Preloader) onInitedOnce(fn func()) {
	p.initedListeners = append(p.initedListeners, &initedListener{fn: fn, once: true})
}

// NotifyInited reports that the indicator finished its own initialization.
func (p *Preloader) NotifyInited() {
	for _, l := range p.initedListeners {
		if l.disabled {
			continue
		}
		if l.once {
			l.disabled = true
		}
		l.fn()
	}
}
