package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chartkit/chartkit/pkg/errors"
)

func TestResolveGeoData_NonStringPassesThrough(t *testing.T) {
	data := map[string]any{"features": []any{}}
	got, cerr := ResolveGeoData(data)
	require.Nil(t, cerr)
	assert.Equal(t, data, got)
}

func TestResolveGeoData_GlobalConvention(t *testing.T) {
	payload := []any{"a", "b"}
	RegisterGlobal(GeoDataPrefix+"usaLow", payload)
	t.Cleanup(func() { UnregisterGlobal(GeoDataPrefix + "usaLow") })

	got, cerr := ResolveGeoData("usaLow")
	require.Nil(t, cerr)
	assert.Equal(t, payload, got)
}

func TestResolveGeoData_ParsesStructuredString(t *testing.T) {
	got, cerr := ResolveGeoData(`{"features": [{"id": "DE"}]}`)
	require.Nil(t, cerr)
	parsed, ok := got.(map[string]any)
	require.True(t, ok, "got %T", got)
	assert.Contains(t, parsed, "features")
}

func TestResolveGeoData_UnresolvableString(t *testing.T) {
	got, cerr := ResolveGeoData("definitelyNotRegistered")
	assert.Nil(t, got)
	require.NotNil(t, cerr)
	assert.Equal(t, errors.KindParse, cerr.Kind)
}
