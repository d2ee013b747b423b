package ui

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sirenlab/modserve/internal/feature"
	"github.com/sirenlab/modserve/internal/model"
)

const (
	chartWidth    = 640
	chartGutter   = 190
	barHeight     = 18
	barGap        = 8
	positiveColor = "#d62728"
	negativeColor = "#1f77b4"
)

// AttributionSVG renders ranked feature contributions as a horizontal
// bar chart. Bars grow right for risk-increasing contributions and
// left for risk-decreasing ones.
func AttributionSVG(contributions []model.Contribution) template.HTML {
	var maxAbs float64
	for _, c := range contributions {
		v := c.Value
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
		}
	}

	axisX := float64(chartGutter + (chartWidth-chartGutter)/2)
	halfSpan := float64(chartWidth-chartGutter)/2 - 10
	scale := 0.0
	if maxAbs > 0 {
		scale = halfSpan / maxAbs
	}

	height := len(contributions)*(barHeight+barGap) + barGap
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif" font-size="12">`, chartWidth, height)
	fmt.Fprintf(&b, `<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#999" stroke-width="1"/>`, axisX, axisX, height)

	for i, c := range contributions {
		y := barGap + i*(barHeight+barGap)
		label := c.Feature
		if f, ok := feature.Lookup(c.Feature); ok {
			label = f.Label
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" dominant-baseline="middle">%s</text>`,
			chartGutter-8, y+barHeight/2, template.HTMLEscapeString(label))

		width := c.Value * scale
		if width < 0 {
			width = -width
		}
		x := axisX
		color := positiveColor
		if c.Value < 0 {
			x = axisX - width
			color = negativeColor
		}
		fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"/>`, x, y, width, barHeight, color)

		textX := axisX + width + 4
		anchor := "start"
		if c.Value < 0 {
			textX = axisX - width - 4
			anchor = "end"
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="%s" dominant-baseline="middle" fill="#555">%.3f</text>`,
			textX, y+barHeight/2, anchor, c.Value)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
