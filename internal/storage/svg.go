package storage

import (
	"fmt"
	"strings"
)

var svgPalette = []string{
	"#4fc3f7", "#ff8a65", "#aed581", "#ba68c8", "#ffd54f",
	"#4db6ac", "#f06292", "#90a4ae",
}

// TrailSVG renders every body's sampled trail as a polyline in the xy plane,
// all bodies sharing one coordinate frame.
func TrailSVG(samples []Sample, width, height int) string {
	if len(samples) < 2 || len(samples[0].Positions) == 0 {
		return ""
	}

	minX, maxX := samples[0].Positions[0].X, samples[0].Positions[0].X
	minY, maxY := samples[0].Positions[0].Y, samples[0].Positions[0].Y
	for _, s := range samples {
		for _, p := range s.Positions {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	numBodies := len(samples[0].Positions)
	for b := 0; b < numBodies; b++ {
		color := svgPalette[b%len(svgPalette)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M`, color))

		for i, s := range samples {
			if b >= len(s.Positions) {
				break
			}
			p := s.Positions[b]
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
