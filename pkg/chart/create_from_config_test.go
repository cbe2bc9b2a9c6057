package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chartkit/chartkit/pkg/config"
	"github.com/go-chartkit/chartkit/pkg/errors"
)

func TestCreateFromConfig_StripsTypeAndContainer(t *testing.T) {
	RegisterClass("StripChart", Generic)
	host := newTestHost(t)

	cfg := config.Object{
		"type":      "StripChart",
		"container": host.ID(),
		"other":     1,
	}

	inst := CreateFromConfig(cfg, nil, Ref{})
	t.Cleanup(inst.Dispose)

	require.NotNil(t, inst.Config())
	assert.Equal(t, config.Object{"other": 1}, inst.Config())
}

func TestCreateFromConfig_ExplicitArgumentsWin(t *testing.T) {
	silenceErrors(t)
	host := newTestHost(t)

	cfg := config.Object{
		"type":      "IgnoredType",
		"container": "ignored-host",
	}

	inst := CreateFromConfig(cfg, host, ByType(Generic))
	t.Cleanup(inst.Dispose)

	// The config's unresolvable type was never consulted, and the surface
	// was bound to the explicit host, not the config's container id.
	assert.Empty(t, inst.CriticalErrors())
	require.Len(t, host.Children(), 1)
	assert.Equal(t, host.Children()[0], inst.Root().Surface())

	// Stripping happens even when the fields are overridden.
	assert.NotContains(t, inst.Config(), "type")
	assert.NotContains(t, inst.Config(), "container")
}

func TestCreateFromConfig_UnresolvedTypeName_FallsBack(t *testing.T) {
	silenceErrors(t)
	host := newTestHost(t)

	cfg := config.Object{"type": "NotRegisteredAnywhere"}
	inst := CreateFromConfig(cfg, host, Ref{})
	t.Cleanup(inst.Dispose)

	assert.Equal(t, "Container", inst.Kind())
	require.Len(t, inst.CriticalErrors(), 1)
	assert.Equal(t, errors.KindResolve, inst.CriticalErrors()[0].Kind)
}

func TestCreateFromConfig_GeoDataFromGlobal(t *testing.T) {
	regions := map[string]any{"regions": []any{"north", "south"}}
	config.RegisterGlobal(config.GeoDataPrefix+"worldLow", regions)
	t.Cleanup(func() { config.UnregisterGlobal(config.GeoDataPrefix + "worldLow") })

	host := newTestHost(t)
	cfg := config.Object{"geoData": "worldLow"}

	inst := CreateFromConfig(cfg, host, ByType(Generic))
	t.Cleanup(inst.Dispose)

	assert.Equal(t, regions, inst.Config()["geoData"])
	assert.Empty(t, inst.CriticalErrors())
}

func TestCreateFromConfig_GeoDataParsedFromString(t *testing.T) {
	host := newTestHost(t)
	cfg := config.Object{"geoData": `{"features": []}`}

	inst := CreateFromConfig(cfg, host, ByType(Generic))
	t.Cleanup(inst.Dispose)

	assert.Equal(t, map[string]any{"features": []any{}}, inst.Config()["geoData"])
	assert.Empty(t, inst.CriticalErrors())
}

func TestCreateFromConfig_GeoDataUnresolvable_RaisesOnInstance(t *testing.T) {
	silenceErrors(t)
	host := newTestHost(t)
	cfg := config.Object{"geoData": "neverRegistered"}

	inst := CreateFromConfig(cfg, host, ByType(Generic))
	t.Cleanup(inst.Dispose)

	require.Len(t, inst.CriticalErrors(), 1)
	assert.Equal(t, errors.KindParse, inst.CriticalErrors()[0].Kind)
}

func TestCreateFromConfig_NonStringGeoDataPassesThrough(t *testing.T) {
	host := newTestHost(t)
	data := []any{1, 2, 3}
	cfg := config.Object{"geoData": data}

	inst := CreateFromConfig(cfg, host, ByType(Generic))
	t.Cleanup(inst.Dispose)

	assert.Equal(t, data, inst.Config()["geoData"])
	assert.Empty(t, inst.CriticalErrors())
}
