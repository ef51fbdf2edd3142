package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestOrnamentColorTags(t *testing.T) {
	tests := []struct {
		tags []string
		want tcell.Color
	}{
		{[]string{"d2"}, RgbOrnamentRd},
		{[]string{"blue", "d1"}, RgbOrnamentBl},
		{[]string{"blue", "gold", "d1"}, RgbOrnamentGd},
	}
	for _, tt := range tests {
		m := Marker{Tags: tt.tags}
		if got := OrnamentColor(&m, true); got != tt.want {
			t.Errorf("OrnamentColor(%v) = %v, want %v", tt.tags, got, tt.want)
		}
	}

	m := Marker{Tags: []string{"d1"}}
	if OrnamentColor(&m, false) == RgbOrnamentRd {
		t.Error("Unlit ornament should be dimmed")
	}
}

func TestLightColorCycles(t *testing.T) {
	a := LightColor(0, 0)
	b := LightColor(0.5, 0)
	if a == b {
		t.Error("Opposite phases should differ in hue")
	}
	if LightColor(0, 4) != a {
		t.Error("Hue should complete a cycle every 4 seconds")
	}
}

func TestSnowColorOpacity(t *testing.T) {
	faint, _, _ := SnowColor(0.6).RGB()
	bright, _, _ := SnowColor(1).RGB()
	if faint >= bright {
		t.Errorf("Lower opacity should be darker: %d >= %d", faint, bright)
	}
}
