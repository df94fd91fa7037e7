package gerber

import "gerber-estimate/core/types"

// Plausible raw extents for an undeclared file. Prototype boards are a few
// inches or tens of millimeters across; the ranges separate those two scales
// and misclassify unusually small or large boards.
const (
	inchPlausibleMin = 0.4
	inchPlausibleMax = 40.0
	mmPlausibleMin   = 10.0
	mmPlausibleMax   = 1000.0
)

// Resolve converts bounds to millimeters. Unknown units are inferred from the
// raw extent: when exactly one of inch or millimeter is plausible it is
// adopted, otherwise millimeters are assumed.
func Resolve(b Bounds, units types.Units) types.Dimensions {
	w, h := b.Width(), b.Height()

	switch units {
	case types.UnitsMM:
		return types.Dimensions{WidthMM: w, HeightMM: h, Units: types.UnitsMM}
	case types.UnitsInch:
		return types.Dimensions{WidthMM: w * types.MMPerInch, HeightMM: h * types.MMPerInch, Units: types.UnitsInch}
	}

	if InferUnits(w, h) == types.UnitsInch {
		return Resolve(b, types.UnitsInch)
	}
	return Resolve(b, types.UnitsMM)
}

// InferUnits applies the plausible-size heuristic to a raw width and height
func InferUnits(w, h float64) types.Units {
	inch := within(w, inchPlausibleMin, inchPlausibleMax) && within(h, inchPlausibleMin, inchPlausibleMax)
	mm := within(w, mmPlausibleMin, mmPlausibleMax) && within(h, mmPlausibleMin, mmPlausibleMax)
	if inch && !mm {
		return types.UnitsInch
	}
	return types.UnitsMM
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
