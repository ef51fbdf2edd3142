package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB palette for the night scene
var (
	RgbSky        = tcell.NewRGBColor(10, 14, 32)    // Deep night blue
	RgbBackLayer  = tcell.NewRGBColor(58, 70, 104)   // Distant range, hazy
	RgbMidLayer   = tcell.NewRGBColor(34, 44, 70)    // Nearer range, darker
	RgbSnowCap    = tcell.NewRGBColor(200, 210, 230) // Ridge highlight
	RgbTreeDark   = tcell.NewRGBColor(16, 92, 48)    // Needles in shade
	RgbTreeLight  = tcell.NewRGBColor(34, 139, 34)   // Needles lit
	RgbTrunk      = tcell.NewRGBColor(101, 67, 33)   // Dark brown
	RgbStar       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbStarDim    = tcell.NewRGBColor(160, 130, 40)  // Unlit star
	RgbOrnamentRd = tcell.NewRGBColor(220, 40, 50)   // Default bauble
	RgbOrnamentBl = tcell.NewRGBColor(70, 130, 255)  // "blue" tag
	RgbOrnamentGd = tcell.NewRGBColor(255, 200, 40)  // "gold" tag
	RgbLightOff   = tcell.NewRGBColor(70, 70, 80)    // Unlit bulb
	RgbStatusText = tcell.NewRGBColor(180, 180, 190) // Footer text
	RgbCountdown  = tcell.NewRGBColor(255, 255, 255) // Header digits
	RgbAccent     = tcell.NewRGBColor(255, 120, 120) // Header label
)

// toTcell converts a colorful color, clamping out-of-gamut values
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// LightColor cycles bulb hue over time; phase staggers neighbours around the wheel
func LightColor(phase, seconds float64) tcell.Color {
	hue := math.Mod((phase+seconds*0.25)*360, 360)
	return toTcell(colorful.Hsv(hue, 0.75, 1))
}

// SparkleColor fades from white through gold to the sky as age goes 0 -> 1
func SparkleColor(age float64) tcell.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	gold, _ := colorful.Hex("#ffd700")
	sky, _ := colorful.Hex("#0a0e20")
	if age < 0.5 {
		return toTcell(white.BlendLab(gold, age*2))
	}
	return toTcell(gold.BlendLab(sky, (age-0.5)*2))
}

// SnowColor maps flake opacity onto the sky
func SnowColor(opacity float64) tcell.Color {
	sky, _ := colorful.Hex("#0a0e20")
	white := colorful.Color{R: 0.95, G: 0.97, B: 1}
	return toTcell(sky.BlendRgb(white, opacity))
}

// OrnamentColor picks the bauble color from its variant tags
func OrnamentColor(m *Marker, lit bool) tcell.Color {
	var c tcell.Color
	switch {
	case m.HasTag("gold"):
		c = RgbOrnamentGd
	case m.HasTag("blue"):
		c = RgbOrnamentBl
	default:
		c = RgbOrnamentRd
	}
	if lit {
		return c
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r*3/4, g*3/4, b*3/4)
}
