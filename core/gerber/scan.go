package gerber

import "gerber-estimate/core/types"

// Scan is everything read from one file's text
type Scan struct {
	DeclaredUnits types.Units
	Decimals      int
	Bounds        Bounds
}

// ScanText detects units and format, then extracts the coordinate extent
func ScanText(text string) Scan {
	decimals := DecimalsFor(text)
	b, _ := ExtractBounds(text, decimals)
	return Scan{
		DeclaredUnits: DetectUnits(text),
		Decimals:      decimals,
		Bounds:        b,
	}
}

// Dimensions returns the outline size in millimeters, or false when the
// file had no usable coordinates
func (s Scan) Dimensions() (types.Dimensions, bool) {
	if !s.Bounds.Valid() {
		return types.Dimensions{}, false
	}
	return Resolve(s.Bounds, s.DeclaredUnits), true
}
