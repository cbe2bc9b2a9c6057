package chart

import (
	"github.com/go-chartkit/chartkit/pkg/animation"
	"github.com/go-chartkit/chartkit/pkg/container"
	"github.com/go-chartkit/chartkit/pkg/geom"
)

// Tooltip is the instance-owned tooltip object. Rendering is a collaborator
// concern; the bootstrap only manages visibility and the clipping bounds
// tooltips may move within.
type Tooltip struct {
	layer      *container.Container
	visibility *animation.Visibility
	clipBounds geom.Rect
}

// newTooltip creates a tooltip anchored to the given tooltip layer,
// initially hidden with a zero-duration transition, and keeps its clipping
// bounds synchronized with the layer's maximum size for the lifetime of the
// layer.
func newTooltip(layer *container.Container) *Tooltip {
	t := &Tooltip{
		layer:      layer,
		visibility: animation.NewVisibility(animation.Shown),
	}
	t.visibility.Hide(0)

	w, h := layer.MaxSize()
	t.syncClipBounds(w, h)
	layer.OnMaxSizeChanged(t.syncClipBounds)

	return t
}

func (t *Tooltip) syncClipBounds(width, height float64) {
	t.clipBounds = geom.RectFromLTWH(0, 0, width, height)
}

// Layer returns the tooltip container the tooltip lives in.
func (t *Tooltip) Layer() *container.Container { return t.layer }

// Visibility returns the tooltip's visibility state machine.
func (t *Tooltip) Visibility() *animation.Visibility { return t.visibility }

// ClipBounds returns the bounds tooltips are confined to. Because clipping
// is applied at the content container, not the root, tooltips anchored to
// content may still visually overflow it up to these bounds.
func (t *Tooltip) ClipBounds() geom.Rect { return t.clipBounds }
