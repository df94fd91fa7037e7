package types

import "github.com/shopspring/decimal"

// Dimensions is the board outline size
type Dimensions struct {
	WidthMM  float64 `json:"widthMM" yaml:"widthMM"`
	HeightMM float64 `json:"heightMM" yaml:"heightMM"`

	// Units is the unit the source coordinates were resolved as
	Units Units `json:"units" yaml:"units"`
}

// AreaCM2 returns the outline area in square centimeters, rounded to two places
func (d Dimensions) AreaCM2() decimal.Decimal {
	w := decimal.NewFromFloat(d.WidthMM)
	h := decimal.NewFromFloat(d.HeightMM)
	return w.Mul(h).Div(decimal.NewFromInt(100)).Round(2)
}

// AnalysisResult is what the quote form consumes
type AnalysisResult struct {
	// Dimensions is nil when no file yielded a bounding box
	Dimensions *Dimensions `json:"dimensions" yaml:"dimensions"`

	// LayerCount is the number of copper layers
	LayerCount int `json:"layerCount" yaml:"layerCount"`
}

// FileReport describes how one input file was interpreted
type FileReport struct {
	Name           string `json:"name" yaml:"name"`
	Layer          Layer  `json:"layer" yaml:"layer"`
	DeclaredUnits  Units  `json:"declaredUnits" yaml:"declaredUnits"`
	HasCoordinates bool   `json:"hasCoordinates" yaml:"hasCoordinates"`
}

// Report is an AnalysisResult plus the per-file detail behind it
type Report struct {
	AnalysisResult `yaml:",inline"`

	// AreaCM2 is derived from Dimensions; empty when Dimensions is nil
	AreaCM2 string `json:"areaCM2,omitempty" yaml:"areaCM2,omitempty"`

	// DimensionSource is the file the outline was measured from
	DimensionSource string `json:"dimensionSource,omitempty" yaml:"dimensionSource,omitempty"`

	Files []FileReport `json:"files" yaml:"files"`
}

// Result returns the plain analysis result
func (r *Report) Result() AnalysisResult {
	return r.AnalysisResult
}
