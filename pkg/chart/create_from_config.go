package chart

import (
	"github.com/go-chartkit/chartkit/pkg/config"
	"github.com/go-chartkit/chartkit/pkg/errors"
)

// CreateFromConfig bootstraps a chart instance from a declarative config
// object. Explicit hostRef and ref arguments win; otherwise the "container"
// and "type" fields are pulled out of the config. Both fields are always
// stripped so they are not later misinterpreted as component properties.
//
// A string "geoData" field is resolved through the process-wide global
// naming convention, then parsed as structured data; if both fail the
// error is raised on the constructed instance rather than thrown.
//
// The remaining config object is attached verbatim to the instance for its
// own config-application logic; this function applies no property values.
func CreateFromConfig(cfg config.Object, hostRef any, ref Ref) *Instance {
	return createFromConfig(cfg, hostRef, ref)
}

func createFromConfig(cfg config.Object, hostRef any, ref Ref) *Instance {
	typeName, hasType := cfg.ExtractString("type")
	containerID, hasContainer := cfg.ExtractString("container")

	if hostRef == nil && hasContainer {
		hostRef = containerID
	}
	if ref.IsZero() && hasType {
		ref = ByName(typeName)
	}

	var geoErr *errors.ChartError
	if raw, ok := cfg["geoData"]; ok {
		if resolved, err := config.ResolveGeoData(raw); err != nil {
			geoErr = err
		} else {
			cfg["geoData"] = resolved
		}
	}

	inst := Create(hostRef, ref)
	inst.SetConfig(cfg)
	if geoErr != nil {
		inst.RaiseCriticalError(geoErr)
	}
	return inst
}
