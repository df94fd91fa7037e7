package gerber

import (
	"math"
	"testing"

	"gerber-estimate/core/types"
)

const mmOutline = `G04 Board outline, KiCad style*
%FSLAX46Y46*%
%MOMM*%
%ADD10C,0.100000*%
D10*
X0Y0D02*
X100000000Y0D01*
Y80000000D01*
X0D01*
Y0D01*
M02*
`

const inchOutline = `%FSLAX24Y24*%
%MOIN*%
%ADD10C,0.0040*%
D10*
X0Y0D02*
X39370Y0D01*
Y31500D01*
X0D01*
Y0D01*
M02*
`

const undeclaredOutline = `D10*
X0Y0D02*
X40000Y0D01*
Y30000D01*
X0D01*
Y0D01*
M02*
`

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDetectUnits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Units
	}{
		{"millimeters", "%MOMM*%\nX0Y0D02*", types.UnitsMM},
		{"inches", "%MOIN*%\nX0Y0D02*", types.UnitsInch},
		{"lower case directive", "%momm*%", types.UnitsMM},
		{"millimeters win when both present", "%MOIN*%\n%MOMM*%", types.UnitsMM},
		{"no directive", "X0Y0D02*", types.UnitsUnknown},
		{"directive without delimiters is ignored", "MOMM", types.UnitsUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectUnits(tt.text); got != tt.want {
				t.Errorf("DetectUnits() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		found    bool
		decimals int
	}{
		{"leading zeros absolute", "%FSLAX46Y46*%", true, 6},
		{"trailing zeros", "%FSTAX23Y24*%", true, 4},
		{"no zero omission letter", "%FSAX33Y33*%", true, 3},
		{"larger X decimals", "%FSLAX25Y24*%", true, 5},
		{"bare legacy spelling", "M48\nFSLAX25Y25\n", true, 5},
		{"absent", "X0Y0D02*", false, DefaultDecimals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := DetectFormat(tt.text)
			if ok != tt.found {
				t.Fatalf("DetectFormat() found = %v, want %v", ok, tt.found)
			}
			if got := DecimalsFor(tt.text); got != tt.decimals {
				t.Errorf("DecimalsFor() = %d, want %d", got, tt.decimals)
			}
			if ok && f.Decimals() != tt.decimals {
				t.Errorf("Format.Decimals() = %d, want %d", f.Decimals(), tt.decimals)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		token    string
		decimals int
		want     float64
		ok       bool
	}{
		{"100000000", 6, 100, true},
		{"-25400", 4, -2.54, true},
		{"+15", 1, 1.5, true},
		{"12.5", 6, 12.5, true},
		{"-.5", 4, -0.5, true},
		{"1.2.3", 4, 0, false},
		{".", 4, 0, false},
		{"99999999999999999999", 4, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCoordinate(tt.token, tt.decimals)
		if ok != tt.ok {
			t.Errorf("ParseCoordinate(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			continue
		}
		if ok && !approx(got, tt.want, 1e-9) {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestExtractBounds(t *testing.T) {
	t.Run("omitted axis keeps previous value", func(t *testing.T) {
		b, ok := ExtractBounds(mmOutline, 6)
		if !ok {
			t.Fatal("expected bounds")
		}
		if b.MinX != 0 || b.MaxX != 100 || b.MinY != 0 || b.MaxY != 80 {
			t.Errorf("unexpected bounds %+v", b)
		}
		if b.Points != 5 {
			t.Errorf("expected 5 points, got %d", b.Points)
		}
	})

	t.Run("pairs wait until both axes are known", func(t *testing.T) {
		b, ok := ExtractBounds("Y100D01*\nX200D01*\n", 2)
		if !ok {
			t.Fatal("expected bounds")
		}
		if b.Points != 1 || b.MinX != 2 || b.MinY != 1 {
			t.Errorf("unexpected bounds %+v", b)
		}
	})

	t.Run("malformed blocks are skipped", func(t *testing.T) {
		b, ok := ExtractBounds("X1.2.3Y4D01*\nX10Y20D01*\nX30Y40D01*\n", 0)
		if !ok {
			t.Fatal("expected bounds")
		}
		if b.Points != 2 || b.Width() != 20 || b.Height() != 20 {
			t.Errorf("unexpected bounds %+v", b)
		}
	})

	t.Run("extended blocks and comments are not coordinates", func(t *testing.T) {
		text := "G04 X999Y999 not a point*\n%FSLAX26Y26*%\n%ADD11R,X1.0X2.0*%\n"
		if _, ok := ExtractBounds(text, 6); ok {
			t.Error("expected no bounds")
		}
	})

	t.Run("excellon drill hits", func(t *testing.T) {
		text := "M48\nMETRIC,TZ\nT1C0.800\n%\nT1\nX5.0Y5.0\nX45.5Y35.25\nM30\n"
		b, ok := ExtractBounds(text, 4)
		if !ok {
			t.Fatal("expected bounds")
		}
		if !approx(b.Width(), 40.5, 1e-9) || !approx(b.Height(), 30.25, 1e-9) {
			t.Errorf("unexpected bounds %+v", b)
		}
	})

	t.Run("plain text", func(t *testing.T) {
		if _, ok := ExtractBounds("Fabrication notes\nUse 1.6mm FR4.\n", 4); ok {
			t.Error("expected no bounds")
		}
	})
}

func TestResolve(t *testing.T) {
	square := func(w, h float64) Bounds {
		return Bounds{MaxX: w, MaxY: h, Points: 2}
	}

	tests := []struct {
		name     string
		bounds   Bounds
		units    types.Units
		wantW    float64
		wantH    float64
		wantUnit types.Units
	}{
		{"declared millimeters", square(100, 80), types.UnitsMM, 100, 80, types.UnitsMM},
		{"declared inches", square(4, 3), types.UnitsInch, 101.6, 76.2, types.UnitsInch},
		{"inch plausible only", square(4, 3), types.UnitsUnknown, 101.6, 76.2, types.UnitsInch},
		{"millimeter plausible only", square(100, 80), types.UnitsUnknown, 100, 80, types.UnitsMM},
		{"both plausible defaults to millimeters", square(20, 20), types.UnitsUnknown, 20, 20, types.UnitsMM},
		{"neither plausible defaults to millimeters", square(0.1, 0.1), types.UnitsUnknown, 0.1, 0.1, types.UnitsMM},
		{"degenerate line defaults to millimeters", square(3, 0), types.UnitsUnknown, 3, 0, types.UnitsMM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(tt.bounds, tt.units)
			if !approx(d.WidthMM, tt.wantW, 1e-9) || !approx(d.HeightMM, tt.wantH, 1e-9) {
				t.Errorf("Resolve() = %vx%v, want %vx%v", d.WidthMM, d.HeightMM, tt.wantW, tt.wantH)
			}
			if d.Units != tt.wantUnit {
				t.Errorf("Resolve() units = %s, want %s", d.Units, tt.wantUnit)
			}
		})
	}
}

func TestScanTextDimensions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantW    float64
		wantH    float64
		wantUnit types.Units
	}{
		{"millimeter outline", mmOutline, 100, 80, types.UnitsMM},
		{"inch outline", inchOutline, 100, 80, types.UnitsInch},
		{"undeclared inch-sized outline", undeclaredOutline, 101.6, 76.2, types.UnitsInch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ScanText(tt.text).Dimensions()
			if !ok {
				t.Fatal("expected dimensions")
			}
			if !approx(d.WidthMM, tt.wantW, 0.05) || !approx(d.HeightMM, tt.wantH, 0.05) {
				t.Errorf("got %vx%v mm, want %vx%v", d.WidthMM, d.HeightMM, tt.wantW, tt.wantH)
			}
			if d.Units != tt.wantUnit {
				t.Errorf("units = %s, want %s", d.Units, tt.wantUnit)
			}
		})
	}

	if _, ok := ScanText("readme").Dimensions(); ok {
		t.Error("plain text must not yield dimensions")
	}
}
