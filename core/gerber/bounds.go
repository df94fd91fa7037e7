package gerber

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bounds is the running extent of every resolved coordinate pair
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`

	// Points is the number of pairs folded in
	Points int `json:"points"`
}

// Width returns the X extent
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the Y extent
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Valid reports whether at least one finite pair was seen
func (b Bounds) Valid() bool {
	return b.Points > 0
}

func (b *Bounds) include(x, y float64) {
	if b.Points == 0 {
		b.MinX, b.MaxX, b.MinY, b.MaxY = x, x, y, y
	} else {
		b.MinX = math.Min(b.MinX, x)
		b.MaxX = math.Max(b.MaxX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxY = math.Max(b.MaxY, y)
	}
	b.Points++
}

var (
	// extended parameter blocks (%FS..*%, %AD..*%, %AM..*%) carry digits
	// that look like coordinates
	extendedBlockPattern = regexp.MustCompile(`%[^%]*%`)
	commentPattern       = regexp.MustCompile(`G04[^*\r\n]*`)

	xWordPattern = regexp.MustCompile(`X([+-]?[0-9.]+)`)
	yWordPattern = regexp.MustCompile(`Y([+-]?[0-9.]+)`)
)

// ExtractBounds scans text for X/Y coordinate words and returns their extent.
// An axis omitted from a block keeps its previous value. Blocks whose
// coordinates do not parse are skipped. The second return is false when no
// pair was ever resolved.
func ExtractBounds(text string, decimals int) (Bounds, bool) {
	text = extendedBlockPattern.ReplaceAllString(text, "")
	text = commentPattern.ReplaceAllString(text, "")

	blocks := strings.FieldsFunc(text, func(r rune) bool {
		return r == '*' || r == '\n' || r == '\r'
	})

	var (
		b            Bounds
		lastX, lastY float64
		haveX, haveY bool
	)
	for _, block := range blocks {
		x, hasX, okX := coordinateWord(xWordPattern, block, decimals)
		y, hasY, okY := coordinateWord(yWordPattern, block, decimals)
		if !hasX && !hasY {
			continue
		}
		if (hasX && !okX) || (hasY && !okY) {
			continue
		}
		if hasX {
			lastX, haveX = x, true
		}
		if hasY {
			lastY, haveY = y, true
		}
		if haveX && haveY {
			b.include(lastX, lastY)
		}
	}

	return b, b.Valid()
}

// coordinateWord returns the value of the first word matching pattern, whether
// the word is present, and whether it parsed to a finite number
func coordinateWord(pattern *regexp.Regexp, block string, decimals int) (float64, bool, bool) {
	m := pattern.FindStringSubmatch(block)
	if m == nil {
		return 0, false, false
	}
	v, ok := ParseCoordinate(m[1], decimals)
	return v, true, ok
}

// ParseCoordinate converts one coordinate token. Tokens with a decimal point
// are literal; integers are implicit-decimal and scaled by 10^decimals.
func ParseCoordinate(token string, decimals int) (float64, bool) {
	var v float64
	if strings.Contains(token, ".") {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
		v = f
	} else {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, false
		}
		v = float64(n) / math.Pow10(decimals)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
