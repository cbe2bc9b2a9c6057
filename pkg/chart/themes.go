package chart

import "github.com/go-chartkit/chartkit/pkg/registry"

// UseTheme appends a theme to the process-wide active chain. Every
// subsequently created instance applies it during initialization.
func UseTheme(t registry.Theme) {
	registry.Default().UseTheme(t)
}

// UnuseTheme removes a specific theme reference from the chain. No-op if
// the theme is not in the chain.
func UnuseTheme(t registry.Theme) {
	registry.Default().UnuseTheme(t)
}

// UnuseAllThemes clears the active theme chain.
func UnuseAllThemes() {
	registry.Default().UnuseAllThemes()
}
