package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/storage"
)

// palette cycles when a run records more bodies than colors.
var palette = []string{
	"#B5B5B5", "#E8CDA2", "#2E86AB", "#C1440E",
	"#C88B3A", "#E3B778", "#7FDBDA", "#3E66F9",
}

// OrbitSVG renders a recorded run as a top-down orbit map: one polyline per
// body, sun at the center, dark background. The viewBox is sized from the
// run's recorded half extent so the image matches what the viewport showed.
func OrbitSVG(meta *storage.RunMetadata, frames []storage.Frame, size int) string {
	if len(frames) == 0 || size <= 0 {
		return ""
	}

	half := meta.HalfExtentM
	if half <= 0 {
		// Fall back to the widest recorded excursion.
		for _, f := range frames {
			for _, p := range f.Positions {
				if v := abs(p.X); v > half {
					half = v
				}
				if v := abs(p.Y); v > half {
					half = v
				}
			}
		}
		if half == 0 {
			return ""
		}
	}

	scale := float64(size) / 2 / half
	center := float64(size) / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
<circle cx="%.1f" cy="%.1f" r="3" fill="#FDB813"/>
`, size, size, size, size, center, center))

	for i, name := range meta.Bodies {
		color := palette[i%len(palette)]
		points := make([]string, len(frames))
		for j, f := range frames {
			p := f.Positions[i]
			// SVG y grows downward.
			points[j] = fmt.Sprintf("%.1f,%.1f", center+p.X*scale, center-p.Y*scale)
		}
		sb.WriteString(fmt.Sprintf("<polyline fill=\"none\" stroke=\"%s\" stroke-width=\"1\" points=\"%s\"><title>%s</title></polyline>\n",
			color, strings.Join(points, " "), name))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
