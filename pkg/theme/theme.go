// Package theme provides built-in themes and a helper for defining new
// ones. A theme is an opaque transformation applied to every newly
// constructed object's property bag, in registration order; the chain
// itself lives in the registry.
package theme

import (
	"image/color"

	"github.com/go-chartkit/chartkit/pkg/registry"
)

type themeFunc struct {
	name  string
	apply func(obj map[string]any, kind string)
}

func (t *themeFunc) Name() string { return t.name }

func (t *themeFunc) Apply(obj map[string]any, kind string) {
	if t.apply != nil {
		t.apply(obj, kind)
	}
}

// New defines a theme from a name and an apply function. The returned value
// is a stable reference: UnuseTheme removes by reference identity.
func New(name string, apply func(obj map[string]any, kind string)) registry.Theme {
	return &themeFunc{name: name, apply: apply}
}

// setColor stores a color under key unless the object already carries an
// explicit value for it.
func setColor(obj map[string]any, key string, c color.RGBA) {
	if _, ok := obj[key]; ok {
		return
	}
	obj[key] = c
}
