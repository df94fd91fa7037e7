package gerber

import (
	"regexp"
	"strconv"
)

// DefaultDecimals applies when a file has no format specification
const DefaultDecimals = 4

// Format is a coordinate format specification: integer and decimal digit
// counts per axis
type Format struct {
	XInteger  int
	XDecimals int
	YInteger  int
	YDecimals int
}

// Decimals returns the scaling exponent for implicit-decimal coordinates
func (f Format) Decimals() int {
	return max(f.XDecimals, f.YDecimals)
}

// Accepted spellings, tried in order: the extended-parameter form with
// optional zero-omission and notation letters, then the bare legacy form.
var formatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)%FS[LTD]?[AI]?X(\d)(\d)Y(\d)(\d)\*%`),
	regexp.MustCompile(`(?i)\bFS[LTD]?[AI]?X(\d)(\d)Y(\d)(\d)`),
}

// DetectFormat returns the first format specification found in text
func DetectFormat(text string) (Format, bool) {
	for _, pattern := range formatPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := make([]int, 4)
		for i := range digits {
			// single \d groups always parse
			digits[i], _ = strconv.Atoi(m[i+1])
		}
		return Format{
			XInteger:  digits[0],
			XDecimals: digits[1],
			YInteger:  digits[2],
			YDecimals: digits[3],
		}, true
	}
	return Format{}, false
}

// DecimalsFor returns the decimal-digit count to scale text's coordinates by
func DecimalsFor(text string) int {
	if f, ok := DetectFormat(text); ok {
		return f.Decimals()
	}
	return DefaultDecimals
}
