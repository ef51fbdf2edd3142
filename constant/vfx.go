package constant

import "time"

// Snow
const (
	SnowInterval    = 500 * time.Millisecond
	SnowBurst       = 3
	SnowSizeMin     = 8.0
	SnowSizeMax     = 16.0
	SnowDurationMin = 6.0 // seconds
	SnowDurationMax = 12.0
	SnowSwayMin     = 3.0 // seconds
	SnowSwayMax     = 6.0
	SnowOpacityMin  = 0.6
	SnowOpacityMax  = 1.0
	// SnowRemovalSlack keeps a flake alive past its fall so it never clips mid-screen
	SnowRemovalSlack = time.Second
)

// SnowGlyphs are the flake shapes picked uniformly per flake
var SnowGlyphs = []rune{'❄', '✻', '✼', '•'}

// Sparkles
const (
	SparkleInterval   = 1200 * time.Millisecond
	SparkleLifetime   = time.Second
	SparkleSpreadX    = 30.0 // +/- px around anchor center
	SparkleOffsetYMin = 10.0
	SparkleOffsetYMax = 40.0
	SparkleGlyph      = '✦'
)

// Ornaments
const (
	OrnamentAreaPerItem   = 1800.0
	OrnamentMin           = 18
	OrnamentMax           = 36
	OrnamentFallbackW     = 320.0
	OrnamentFallbackH     = 300.0
	OrnamentStyleVariants = 8
	OrnamentSpread        = 0.92
	OrnamentGlyph         = 'o'
)

// Garland
const (
	GarlandFallbackW = 350.0
	GarlandFallbackH = 320.0
	GarlandMin       = 8
	GarlandMax       = 18
	GarlandJitter    = 1.5
	GarlandRowOffset = 2.0 // px per row index, keeps rows from overlapping exactly
	GarlandGlyph     = '•'
)

// Parallax
const (
	ParallaxBackFactor = 0.08
	ParallaxMidFactor  = 0.14
)

// Countdown
const (
	CountdownInterval = time.Second
	CountdownMonth    = time.December
	CountdownDay      = 25
)

// Scene classes
const (
	ClassLightsOn = "lights-on"
)
