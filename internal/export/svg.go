package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
)

// GridSVG renders one generation as an SVG with a square per live cell.
func GridSVG(g *life.Grid, scale float64) string {
	if g == nil || g.Size() == 0 {
		return ""
	}
	if scale <= 0 {
		scale = 8
	}

	width := float64(g.Cols()) * scale
	height := float64(g.Rows()) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	size := scale * 0.9
	g.Each(func(i, j int, alive bool) {
		if !alive {
			return
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(j)*scale, float64(i)*scale, size, size))
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrajectorySVG draws the center of mass path over the grid area. Frames
// with no live cells break the path.
func TrajectorySVG(rep *analysis.Report, width, height int, strokeColor string) string {
	if rep == nil || rep.Rows == 0 || rep.Cols == 0 {
		return ""
	}

	sx := float64(width) / float64(rep.Cols)
	sy := float64(height) / float64(rep.Rows)

	var path strings.Builder
	pen := false
	points := 0
	for k := 0; k < rep.Frames; k++ {
		r, c := rep.CenterRow[k], rep.CenterCol[k]
		if math.IsNaN(r) || math.IsNaN(c) {
			pen = false
			continue
		}
		x, y := c*sx, r*sy
		if pen {
			path.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		} else {
			if points > 0 {
				path.WriteString(" ")
			}
			path.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			pen = true
		}
		points++
	}
	if points < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
</svg>`, width, height, width, height, strokeColor, path.String()))
	return sb.String()
}
