package theme

import (
	"golang.org/x/image/colornames"

	"github.com/go-chartkit/chartkit/pkg/registry"
)

// Dark returns the built-in dark theme: light strokes and labels on a
// near-black background.
func Dark() registry.Theme {
	return &themeFunc{
		name: "dark",
		apply: func(obj map[string]any, kind string) {
			switch kind {
			case "chart", "container":
				setColor(obj, "background", colornames.Black)
				setColor(obj, "stroke", colornames.Whitesmoke)
			case "tooltip":
				setColor(obj, "background", colornames.Dimgray)
				setColor(obj, "label", colornames.White)
			case "label":
				setColor(obj, "fill", colornames.Whitesmoke)
			}
		},
	}
}

// Frozen returns the built-in cool-palette theme.
func Frozen() registry.Theme {
	return &themeFunc{
		name: "frozen",
		apply: func(obj map[string]any, kind string) {
			switch kind {
			case "chart", "container":
				setColor(obj, "stroke", colornames.Steelblue)
				setColor(obj, "fill", colornames.Lightsteelblue)
			case "tooltip":
				setColor(obj, "background", colornames.Slategray)
			}
		},
	}
}
