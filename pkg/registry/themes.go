package registry

// Theme transforms newly constructed objects' default properties. Themes
// are applied by each instance's own initialization in registration order;
// later themes see the effects of earlier ones. Theme content is opaque to
// the registry.
type Theme interface {
	// Name identifies the theme for diagnostics.
	Name() string
	// Apply mutates the object's property bag. Kind names the class of
	// the object being themed.
	Apply(obj map[string]any, kind string)
}

// UseTheme appends a theme to the active chain. Duplicates are allowed and
// order is preserved.
func (r *Registry) UseTheme(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = append(r.themes, t)
}

// UnuseTheme removes the first occurrence of the given theme reference from
// the chain. No-op if absent.
func (r *Registry) UnuseTheme(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.themes {
		if existing == t {
			r.themes = append(r.themes[:i], r.themes[i+1:]...)
			return
		}
	}
}

// UnuseAllThemes clears the chain entirely. Themes added afterwards start
// from empty, not from prior history.
func (r *Registry) UnuseAllThemes() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = nil
}

// Themes returns the active chain in application order.
func (r *Registry) Themes() []Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Theme, len(r.themes))
	copy(out, r.themes)
	return out
}
