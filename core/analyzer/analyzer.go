// Package analyzer estimates board outline size and copper layer count from a
// set of uploaded manufacturing files.
package analyzer

import (
	"context"

	"go.uber.org/zap"

	"gerber-estimate/core/gerber"
	"gerber-estimate/core/input"
	"gerber-estimate/core/layers"
	"gerber-estimate/core/types"
	"gerber-estimate/internal/errors"
)

// Analyzer holds no per-call state; one instance may serve concurrent calls.
type Analyzer struct {
	logger *zap.Logger
}

// New creates an analyzer. A nil logger disables logging.
func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Analyze expands uploads and estimates dimensions and layer count. Only an
// empty upload list or an unreadable archive fail; files without usable data
// just leave Dimensions nil.
func (a *Analyzer) Analyze(ctx context.Context, uploads []types.Upload) (*types.Report, error) {
	if len(uploads) == 0 {
		return nil, errors.Input("at least one file is required")
	}

	files, err := input.Expand(ctx, uploads)
	if err != nil {
		return nil, err
	}

	report := &types.Report{Files: make([]types.FileReport, len(files))}
	classified := make([]types.Layer, len(files))
	scans := make([]gerber.Scan, len(files))

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		classified[i] = layers.Classify(f.Name)
		scans[i] = gerber.ScanText(f.Content)
		report.Files[i] = types.FileReport{
			Name:           f.Name,
			Layer:          classified[i],
			DeclaredUnits:  scans[i].DeclaredUnits,
			HasCoordinates: scans[i].Bounds.Valid(),
		}
		a.logger.Debug("classified file",
			zap.String("file", f.Name),
			zap.String("layer", classified[i].String()),
			zap.String("declared_units", scans[i].DeclaredUnits.String()),
			zap.Int("decimals", scans[i].Decimals),
			zap.Int("points", scans[i].Bounds.Points),
		)
	}

	detected := layers.Count(classified)
	report.LayerCount = layers.NormalizeCount(detected, len(uploads))

	if idx, dims, ok := selectDimensions(files, scans); ok {
		report.Dimensions = &dims
		report.DimensionSource = files[idx].Name
		report.AreaCM2 = dims.AreaCM2().StringFixed(2)
	}

	a.logger.Debug("analysis complete",
		zap.Int("files", len(files)),
		zap.Int("detected_layers", detected),
		zap.Int("layer_count", report.LayerCount),
		zap.String("dimension_source", report.DimensionSource),
	)

	return report, nil
}

// selectDimensions prefers outline-named files, then falls back to every file
// in input order; the first valid bounding box wins
func selectDimensions(files []types.InputFile, scans []gerber.Scan) (int, types.Dimensions, bool) {
	for i, f := range files {
		if !layers.IsOutline(f.Name) {
			continue
		}
		if d, ok := scans[i].Dimensions(); ok {
			return i, d, true
		}
	}
	for i := range files {
		if d, ok := scans[i].Dimensions(); ok {
			return i, d, true
		}
	}
	return -1, types.Dimensions{}, false
}
