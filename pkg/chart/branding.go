package chart

import (
	"sync"

	"github.com/go-chartkit/chartkit/pkg/animation"
	"github.com/go-chartkit/chartkit/pkg/container"
)

// Branding thresholds: below either one the element hides so it never
// crowds a small chart.
const (
	brandingMinWidth  = 100
	brandingMinHeight = 50
)

var (
	licensedMu sync.RWMutex
	licensed   bool
)

// SetLicensed sets the process-wide licensing flag. Licensed processes do
// not get a branding element on new instances.
func SetLicensed(v bool) {
	licensedMu.Lock()
	defer licensedMu.Unlock()
	licensed = v
}

// Licensed reports the process-wide licensing flag.
func Licensed() bool {
	licensedMu.RLock()
	defer licensedMu.RUnlock()
	return licensed
}

// Branding is the branding element anchored bottom-left in the tooltip
// container on unlicensed instances.
type Branding struct {
	layer      *container.Container
	node       *container.Container
	visibility *animation.Visibility
}

// newBranding creates the branding element as a child of the tooltip layer,
// pinned to its bottom-left corner, and wires its visibility to the layer's
// resize events: hidden below the minimum thresholds, shown otherwise. The
// show path only fires when the element was hidden or mid-hide, so repeated
// resizes above the threshold issue a single show.
func newBranding(layer *container.Container) *Branding {
	node := container.New(layer.Surface())
	layer.AddChild(node)
	node.SetAnchor(container.AnchorBottomLeft)
	node.SetMeasured(false)

	b := &Branding{
		layer:      layer,
		node:       node,
		visibility: animation.NewVisibility(animation.Shown),
	}
	layer.OnMaxSizeChanged(b.handleResize)
	return b
}

func (b *Branding) handleResize(width, height float64) {
	if width <= brandingMinWidth || height <= brandingMinHeight {
		b.visibility.Hide(0)
		return
	}
	if b.visibility.IsHidden() || b.visibility.IsHiding() {
		b.visibility.Show(0)
	}
}

// Layer returns the tooltip container the branding element lives in.
func (b *Branding) Layer() *container.Container { return b.layer }

// Node returns the branding element's container node.
func (b *Branding) Node() *container.Container { return b.node }

// Visibility returns the branding element's visibility state machine.
func (b *Branding) Visibility() *animation.Visibility { return b.visibility }
