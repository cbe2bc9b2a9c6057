package geom

import (
	"fmt"
	"math"
)

// MeasureUnit identifies how a Measure value is interpreted.
type MeasureUnit int

const (
	// UnitPixels means the value is an absolute pixel dimension.
	UnitPixels MeasureUnit = iota
	// UnitPercent means the value is a percentage of the parent dimension.
	UnitPercent
)

func (u MeasureUnit) String() string {
	switch u {
	case UnitPercent:
		return "percent"
	default:
		return "pixels"
	}
}

// Measure is a dimension expressed either in absolute pixels or as a
// percentage of a parent dimension. Containers use percent measures so
// they can track their parent without explicit resize propagation.
type Measure struct {
	Value float64
	Unit  MeasureUnit
}

// Pixels creates an absolute pixel measure.
func Pixels(v float64) Measure {
	return Measure{Value: v, Unit: UnitPixels}
}

// Percent creates a percent-of-parent measure. 100 means full parent size.
func Percent(v float64) Measure {
	return Measure{Value: v, Unit: UnitPercent}
}

// Resolve converts the measure to pixels against the given parent dimension.
// Pixel measures ignore the parent.
func (m Measure) Resolve(parent float64) float64 {
	if m.Unit == UnitPercent {
		return parent * m.Value / 100
	}
	return m.Value
}

// IsPercent reports whether the measure is parent-relative.
func (m Measure) IsPercent() bool {
	return m.Unit == UnitPercent
}

// Equals compares two measures with floating-point tolerance.
func (m Measure) Equals(other Measure) bool {
	return m.Unit == other.Unit && math.Abs(m.Value-other.Value) < epsilon
}

func (m Measure) String() string {
	if m.Unit == UnitPercent {
		return fmt.Sprintf("%g%%", m.Value)
	}
	return fmt.Sprintf("%gpx", m.Value)
}
