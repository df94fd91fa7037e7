// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Units is the measurement unit of a file's coordinates
type Units string

const (
	UnitsMM      Units = "mm"
	UnitsInch    Units = "inch"
	UnitsUnknown Units = "unknown"
)

// String returns the string representation of the units
func (u Units) String() string {
	return string(u)
}

// MMPerInch converts inch coordinates to millimeters
const MMPerInch = 25.4

// Layer is the role of a file in the board stack-up, inferred from its name
type Layer string

const (
	LayerTopCopper    Layer = "Top Copper"
	LayerBottomCopper Layer = "Bottom Copper"
	LayerInnerCopper  Layer = "Inner Copper"
	LayerOutline      Layer = "Board Outline"
	LayerOther        Layer = "Other"
)

// String returns the string representation of the layer
func (l Layer) String() string {
	return string(l)
}

// IsCopper reports whether the layer is a conductive layer
func (l Layer) IsCopper() bool {
	switch l {
	case LayerTopCopper, LayerBottomCopper, LayerInnerCopper:
		return true
	default:
		return false
	}
}
