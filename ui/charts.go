package ui

import (
	"fmt"
	"html/template"
	"strings"

	"churnboard/domain/churn"
)

// Chart geometry shared by all SVG builders.
const (
	chartW   = 600.0
	chartH   = 300.0
	chartPad = 40.0
)

// seriesColors keeps chart colors consistent across runs for the known
// category values; unlisted values fall back to the palette.
var seriesColors = map[string]string{
	"Fiber optic":    "#e74c3c",
	"DSL":            "#f39c12",
	"No":             "#00B894",
	"Month-to-month": "#3498db",
	"One year":       "#9b59b6",
	"Two year":       "#1abc9c",
}

var fallbackPalette = []string{"#16a085", "#8e44ad", "#d35400", "#2c3e50"}

func seriesColor(key string, i int) string {
	if c, ok := seriesColors[key]; ok {
		return c
	}
	return fallbackPalette[i%len(fallbackPalette)]
}

// churnBarSVG renders a vertical bar chart of per-group churn rates, one sky
// blue bar per group with the percentage printed above it.
func churnBarSVG(groups []churn.ChurnGroup) template.HTML {
	if len(groups) == 0 {
		return emptyChart()
	}
	maxRate := 0.0
	for _, g := range groups {
		if g.Rate > maxRate {
			maxRate = g.Rate
		}
	}
	if maxRate == 0 {
		maxRate = 1
	}
	// Headroom so the tallest label is not clipped.
	maxRate *= 1.2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`, chartW, chartH)
	plotW := chartW - 2*chartPad
	plotH := chartH - 2*chartPad
	slot := plotW / float64(len(groups))
	barW := slot * 0.5

	for i, g := range groups {
		h := g.Rate / maxRate * plotH
		x := chartPad + float64(i)*slot + (slot-barW)/2
		y := chartH - chartPad - h
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#87CEEB"/>`, x, y, barW, h)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12">%s</text>`,
			x+barW/2, y-6, pct(g.Rate))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" fill="#6c757d">%s</text>`,
			x+barW/2, chartH-chartPad+18, template.HTMLEscapeString(g.Label))
	}
	fmt.Fprintf(&b, `<line x1="%.0f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ccc"/>`,
		chartPad, chartH-chartPad, chartW-chartPad, chartH-chartPad)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// tenureHistSVG renders grouped churned-vs-stayed bars per tenure bin with a
// legend.
func tenureHistSVG(buckets []churn.TenureBucket) template.HTML {
	if len(buckets) == 0 {
		return emptyChart()
	}
	maxCount := 1
	for _, bucket := range buckets {
		if bucket.Churned > maxCount {
			maxCount = bucket.Churned
		}
		if bucket.Stayed > maxCount {
			maxCount = bucket.Stayed
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`, chartW, chartH)
	plotW := chartW - 2*chartPad
	plotH := chartH - 2*chartPad
	slot := plotW / float64(len(buckets))
	barW := slot * 0.35

	for i, bucket := range buckets {
		base := chartPad + float64(i)*slot
		hc := float64(bucket.Churned) / float64(maxCount) * plotH
		hs := float64(bucket.Stayed) / float64(maxCount) * plotH
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#e74c3c"/>`,
			base+slot/2-barW, chartH-chartPad-hc, barW, hc)
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#0072B2"/>`,
			base+slot/2, chartH-chartPad-hs, barW, hs)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" fill="#6c757d">%s</text>`,
			base+slot/2, chartH-chartPad+18, bucket.Band)
	}
	fmt.Fprintf(&b, `<line x1="%.0f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ccc"/>`,
		chartPad, chartH-chartPad, chartW-chartPad, chartH-chartPad)
	legend(&b, []legendEntry{{"Churned", "#e74c3c"}, {"Stayed", "#0072B2"}})
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// ltvLineSVG renders one polyline per series across the fixed tenure bands.
// Bands missing from a series simply have no point, so a short series draws
// a shorter line instead of dipping to zero.
func ltvLineSVG(series []churn.LTVSeries) template.HTML {
	if len(series) == 0 {
		return emptyChart()
	}
	maxVal := 0.0
	for _, s := range series {
		for _, p := range s.Points {
			if p.Value > maxVal {
				maxVal = p.Value
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	maxVal *= 1.1

	bandX := make(map[string]float64, len(churn.LTVBands))
	plotW := chartW - 2*chartPad
	plotH := chartH - 2*chartPad
	for i, band := range churn.LTVBands {
		bandX[band.Label] = chartPad + float64(i)/float64(len(churn.LTVBands)-1)*plotW
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`, chartW, chartH)
	for _, band := range churn.LTVBands {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" fill="#6c757d">%s</text>`,
			bandX[band.Label], chartH-chartPad+18, band.Label)
	}

	var entries []legendEntry
	for i, s := range series {
		color := seriesColor(s.Key, i)
		entries = append(entries, legendEntry{s.Key, color})
		var pts []string
		for _, p := range s.Points {
			y := chartH - chartPad - p.Value/maxVal*plotH
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", bandX[p.Band], y))
		}
		if len(pts) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
			strings.Join(pts, " "), color)
		for _, pt := range pts {
			xy := strings.Split(pt, ",")
			fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="3" fill="%s"/>`, xy[0], xy[1], color)
		}
	}
	fmt.Fprintf(&b, `<line x1="%.0f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ccc"/>`,
		chartPad, chartH-chartPad, chartW-chartPad, chartH-chartPad)
	legend(&b, entries)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

type legendEntry struct {
	Label string
	Color string
}

func legend(b *strings.Builder, entries []legendEntry) {
	x := chartPad
	for _, e := range entries {
		fmt.Fprintf(b, `<rect x="%.1f" y="8" width="10" height="10" fill="%s"/>`, x, e.Color)
		fmt.Fprintf(b, `<text x="%.1f" y="17" font-size="12" fill="#2c3e50">%s</text>`,
			x+14, template.HTMLEscapeString(e.Label))
		x += 14 + float64(len(e.Label))*7 + 20
	}
}

func emptyChart() template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg viewBox="0 0 %.0f %.0f"><text x="%.0f" y="%.0f" text-anchor="middle" fill="#6c757d">No matching customers</text></svg>`,
		chartW, chartH, chartW/2, chartH/2))
}
