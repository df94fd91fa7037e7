package gerber

import (
	"regexp"

	"gerber-estimate/core/types"
)

var (
	unitsMMPattern   = regexp.MustCompile(`(?i)%MOMM\*%`)
	unitsInchPattern = regexp.MustCompile(`(?i)%MOIN\*%`)
)

// DetectUnits returns the units declared by a mode-of-units directive.
// Millimeters take precedence when a file declares both.
func DetectUnits(text string) types.Units {
	if unitsMMPattern.MatchString(text) {
		return types.UnitsMM
	}
	if unitsInchPattern.MatchString(text) {
		return types.UnitsInch
	}
	return types.UnitsUnknown
}
