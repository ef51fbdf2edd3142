package render

import "time"

// Region is a container the core writes markers into
type Region int

const (
	RegionSnow Region = iota
	RegionOrnaments
	RegionGarland
	RegionAnchor // tree top, sparkles gather here
)

func (r Region) String() string {
	switch r {
	case RegionSnow:
		return "snow"
	case RegionOrnaments:
		return "ornaments"
	case RegionGarland:
		return "garland"
	case RegionAnchor:
		return "anchor"
	default:
		return "unknown"
	}
}

// Element is a single styled node: parallax layers, countdown fields, the scene root
type Element int

const (
	ElementScene Element = iota
	ElementBackLayer
	ElementMidLayer
	ElementDays
	ElementHours
	ElementMins
	ElementSecs
)

// Kind tags what a marker represents so the host knows how to draw it
type Kind uint8

const (
	KindSnowflake Kind = iota
	KindSparkle
	KindOrnament
	KindLight
)

// MarkerID identifies a marker within its surface; zero is never assigned
type MarkerID uint64

// Marker is one positioned visual unit
// X, Y are pixels relative to the region origin, except snowflakes whose X is percent of viewport width
type Marker struct {
	ID      MarkerID
	Kind    Kind
	Glyph   rune
	X, Y    float64
	Size    float64
	Opacity float64
	Tags    []string
	Phase   float64 // [0, 1) offset for twinkle cycles

	// Animated particles only
	Duration  time.Duration
	Sway      time.Duration
	CreatedAt time.Time
}

// HasTag reports whether tag is present
func (m *Marker) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Style carries the visual offsets the core writes to elements
type Style struct {
	TranslateY float64
}

// Surface is the capability set the effects core needs from a rendering host
// Every method reports false when the region or element does not exist; callers treat that as a silent skip
type Surface interface {
	HasRegion(r Region) bool
	HasElement(e Element) bool

	Measure(r Region) (width, height float64, ok bool)
	AddMarker(r Region, m Marker) (MarkerID, bool)
	RemoveMarker(r Region, id MarkerID) bool
	ClearRegion(r Region) bool
	Markers(r Region) []Marker

	SetStyle(e Element, s Style) bool
	SetText(e Element, text string) bool
	SetClass(e Element, class string, on bool) bool
}
