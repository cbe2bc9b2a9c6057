package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_YAML(t *testing.T) {
	obj, err := Decode([]byte("type: XYChart\ncontainer: chartdiv\nseries:\n  - kind: line\n"))
	require.NoError(t, err)
	assert.Equal(t, "XYChart", obj["type"])
	assert.Equal(t, "chartdiv", obj["container"])
	assert.Len(t, obj["series"], 1)
}

func TestDecode_JSON(t *testing.T) {
	obj, err := Decode([]byte(`{"type": "PieChart", "radius": 80}`))
	require.NoError(t, err)
	assert.Equal(t, "PieChart", obj["type"])
	assert.Equal(t, 80, obj["radius"])
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte("{broken"))
	assert.Error(t, err)
}

func TestObject_ExtractString(t *testing.T) {
	obj := Object{"type": "XYChart", "radius": 80}

	v, ok := obj.ExtractString("type")
	assert.True(t, ok)
	assert.Equal(t, "XYChart", v)
	assert.NotContains(t, obj, "type")

	// Absent key.
	_, ok = obj.ExtractString("missing")
	assert.False(t, ok)

	// Non-string values are left in place.
	_, ok = obj.ExtractString("radius")
	assert.False(t, ok)
	assert.Contains(t, obj, "radius")
}

func TestObject_Clone(t *testing.T) {
	obj := Object{"a": 1}
	clone := obj.Clone()
	clone["a"] = 2
	assert.Equal(t, 1, obj["a"])
}
