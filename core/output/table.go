package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"gerber-estimate/core/types"
)

// TableFormatter renders a boxed summary for terminals
type TableFormatter struct{}

// Format returns FormatCLI
func (f *TableFormatter) Format() Format { return FormatCLI }

// Render writes the summary table
func (f *TableFormatter) Render(w io.Writer, report *types.Report, detail bool) error {
	p := &printer{w: w}

	p.line("┌──────────────────────────────────────────────────────────────┐")
	p.line("│                     BOARD ANALYSIS SUMMARY                   │")
	p.line("├──────────────────────────────────────────────────────────────┤")

	if d := report.Dimensions; d != nil {
		p.row("Width", mm(d.WidthMM))
		p.row("Height", mm(d.HeightMM))
		p.row("Source units", string(d.Units))
		if report.AreaCM2 != "" {
			p.row("Area", report.AreaCM2+" cm²")
		}
	} else {
		p.row("Dimensions", "not detected, enter manually")
	}
	p.row("Copper layers", fmt.Sprintf("%d", report.LayerCount))

	if detail && len(report.Files) > 0 {
		p.line("├──────────────────────────────────────────────────────────────┤")
		for _, file := range report.Files {
			marker := " "
			if file.Name == report.DimensionSource {
				marker = "*"
			}
			p.row(marker+" "+truncate(file.Name, 34), string(file.Layer))
		}
	}

	p.line("└──────────────────────────────────────────────────────────────┘")
	return p.err
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) row(label, value string) {
	p.line(fmt.Sprintf("│ %-38s %21s │", label, value))
}

func mm(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + " mm"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
