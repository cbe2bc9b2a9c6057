// Package config supports declarative chart construction. Configs are open
// property bags: the factory extracts the fields it owns and forwards the
// remainder verbatim to the instance's own config-application logic.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Object is a declarative chart configuration.
type Object map[string]any

// Decode parses a YAML or JSON document into an Object. YAML is a superset
// of JSON, so both config flavors go through the same path.
func Decode(data []byte) (Object, error) {
	var obj Object
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return obj, nil
}

// ExtractString removes key from the object and returns its string value.
// Returns "" and false when the key is absent or not a string; a non-string
// value is left in place for the instance's own config logic.
func (o Object) ExtractString(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	delete(o, key)
	return s, true
}

// Extract removes key from the object and returns its raw value.
func (o Object) Extract(key string) (any, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	delete(o, key)
	return v, true
}

// Clone returns a shallow copy of the object.
func (o Object) Clone() Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
