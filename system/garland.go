package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

// GarlandRow describes one hanging string of lights
type GarlandRow struct {
	Y       float64 // fraction of height
	Spread  float64 // fraction of width spanned
	Sag     float64 // px at midpoint
	Divisor float64 // width / Divisor lights before clamping
}

// GarlandRows are top, middle and bottom strings, wider and saggier toward the base
var GarlandRows = [3]GarlandRow{
	{Y: 0.30, Spread: 0.42, Sag: 10, Divisor: 30},
	{Y: 0.50, Spread: 0.54, Sag: 12, Divisor: 26},
	{Y: 0.70, Spread: 0.66, Sag: 14, Divisor: 24},
}

// GarlandSystem strings lights along sagging arcs across the tree
type GarlandSystem struct {
	surface render.Surface
	rng     *vmath.Rand
}

func NewGarlandSystem(surface render.Surface, rng *vmath.Rand) *GarlandSystem {
	return &GarlandSystem{
		surface: surface,
		rng:     rng,
	}
}

// Name returns system's name
func (s *GarlandSystem) Name() string {
	return "garland"
}

// Layout clears the garland region and regenerates every light, returns how many were placed
func (s *GarlandSystem) Layout() int {
	if !s.surface.ClearRegion(render.RegionGarland) {
		return 0
	}

	width, height, _ := s.surface.Measure(render.RegionGarland)
	if width <= 0 {
		width = constant.GarlandFallbackW
	}
	if height <= 0 {
		height = constant.GarlandFallbackH
	}

	placed := 0
	for _, m := range PlaceGarland(width, height, s.rng) {
		if _, ok := s.surface.AddMarker(render.RegionGarland, m); ok {
			placed++
		}
	}
	return placed
}

// GarlandCount returns the clamped light count for a row at the given width
func GarlandCount(row GarlandRow, width float64) int {
	return vmath.ClampInt(vmath.RoundHalfUp(width/row.Divisor), constant.GarlandMin, constant.GarlandMax)
}

// PlaceGarland computes light positions for every row
func PlaceGarland(width, height float64, rng *vmath.Rand) []render.Marker {
	var markers []render.Marker
	cx := width / 2

	for idx, row := range GarlandRows {
		half := width * row.Spread / 2
		yBase := height*row.Y + float64(idx)*constant.GarlandRowOffset
		n := GarlandCount(row, width)
		tag := fmt.Sprintf("row%d", idx+1)

		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			x := vmath.Lerp(cx-half, cx+half, t)
			// Zero at both ends, deepest at the midpoint
			y := yBase + math.Sin(t*math.Pi)*row.Sag

			markers = append(markers, render.Marker{
				Kind:    render.KindLight,
				Glyph:   constant.GarlandGlyph,
				X:       x + rng.Range(-constant.GarlandJitter, constant.GarlandJitter),
				Y:       y + rng.Range(-constant.GarlandJitter, constant.GarlandJitter),
				Opacity: 1,
				Phase:   float64(i) / float64(n),
				Tags:    []string{tag},
			})
		}
	}
	return markers
}
