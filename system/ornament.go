package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

// ornamentBands split the tree height into tip, middle and base so ornaments spread evenly
var ornamentBands = [3][2]float64{
	{0.12, 0.35},
	{0.35, 0.62},
	{0.62, 0.90},
}

// OrnamentSystem lays ornaments out inside the tree's triangular silhouette
type OrnamentSystem struct {
	surface render.Surface
	rng     *vmath.Rand
}

func NewOrnamentSystem(surface render.Surface, rng *vmath.Rand) *OrnamentSystem {
	return &OrnamentSystem{
		surface: surface,
		rng:     rng,
	}
}

// Name returns system's name
func (s *OrnamentSystem) Name() string {
	return "ornament"
}

// Layout clears the ornament region and regenerates every ornament, returns how many were placed
func (s *OrnamentSystem) Layout() int {
	if !s.surface.ClearRegion(render.RegionOrnaments) {
		return 0
	}

	width, height, _ := s.surface.Measure(render.RegionOrnaments)
	if width <= 0 {
		width = constant.OrnamentFallbackW
	}
	if height <= 0 {
		height = constant.OrnamentFallbackH
	}

	placed := 0
	for _, m := range PlaceOrnaments(width, height, s.rng) {
		if _, ok := s.surface.AddMarker(render.RegionOrnaments, m); ok {
			placed++
		}
	}
	return placed
}

// OrnamentCount scales ornament density with area, clamped to a readable range
func OrnamentCount(width, height float64) int {
	base := vmath.RoundHalfUp(width * height / constant.OrnamentAreaPerItem)
	return vmath.ClampInt(base, constant.OrnamentMin, constant.OrnamentMax)
}

// OrnamentTags derives the variant classes for index i
func OrnamentTags(i int) []string {
	tags := make([]string, 0, 3)
	if i%3 == 0 {
		tags = append(tags, "blue")
	}
	if i%5 == 0 {
		tags = append(tags, "gold")
	}
	return append(tags, fmt.Sprintf("d%d", i%constant.OrnamentStyleVariants+1))
}

// PlaceOrnaments computes ornament positions for a width x height tree
func PlaceOrnaments(width, height float64, rng *vmath.Rand) []render.Marker {
	count := OrnamentCount(width, height)
	markers := make([]render.Marker, 0, count)

	edgePadding := math.Max(10, width*0.06)
	maxHalf := width/2 - edgePadding
	waveAmp := math.Max(6, width*0.02)

	for i := 0; i < count; i++ {
		band := ornamentBands[i%3]
		y := rng.Range(band[0], band[1]) * height

		// Silhouette widens linearly from tip to base
		t := y / height
		halfAtY := math.Max(12, maxHalf*t)

		// Per-index wave breaks up vertical seams
		wave := math.Sin(y/16+float64(i)) * waveAmp
		x := width/2 + rng.Range(-halfAtY, halfAtY)*constant.OrnamentSpread + wave

		markers = append(markers, render.Marker{
			Kind:    render.KindOrnament,
			Glyph:   constant.OrnamentGlyph,
			X:       x,
			Y:       y,
			Opacity: 1,
			Tags:    OrnamentTags(i),
		})
	}
	return markers
}
