package config

import (
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-chartkit/chartkit/pkg/errors"
)

// GeoDataPrefix is the naming convention for externally supplied geo data:
// a registered global named GeoDataPrefix + <name> resolves geo data
// references given as plain strings.
const GeoDataPrefix = "chartkit_geodata_"

var (
	globalsMu sync.RWMutex
	globals   = map[string]any{}
)

// RegisterGlobal publishes a named value for string-reference resolution.
func RegisterGlobal(name string, value any) {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	globals[name] = value
}

// UnregisterGlobal removes a published value.
func UnregisterGlobal(name string) {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	delete(globals, name)
}

// LookupGlobal resolves a published value by name.
func LookupGlobal(name string) (any, bool) {
	globalsMu.RLock()
	defer globalsMu.RUnlock()
	v, ok := globals[name]
	return v, ok
}

// ResolveGeoData resolves a geo-data config value. Non-string values pass
// through untouched. Strings first try the global naming convention, then
// parse as structured data; if both fail a recoverable parse error is
// returned for the instance's reporting channel, never thrown.
func ResolveGeoData(value any) (any, *errors.ChartError) {
	name, ok := value.(string)
	if !ok {
		return value, nil
	}

	if v, ok := LookupGlobal(GeoDataPrefix + name); ok {
		return v, nil
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(name), &parsed); err == nil {
		// A bare unresolvable word parses as a YAML scalar equal to the
		// input; that is not geo data.
		if s, isScalar := parsed.(string); !isScalar || s != name {
			return parsed, nil
		}
	}

	return nil, errors.Newf("config.ResolveGeoData", errors.KindParse,
		"geo data %q: no registered global %s%s and value does not parse as structured data",
		name, GeoDataPrefix, name)
}
