package system

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/yuletide/render"
)

func TestOrnamentCountClamp(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          int
	}{
		{"tiny", 10, 10, 18},
		{"fallback", 320, 300, 36},
		{"medium", 200, 200, 22},
		{"half rounds up", 180, 255, 26}, // 45900/1800 = 25.5
		{"huge", 4000, 4000, 36},
		{"zero", 0, 0, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrnamentCount(tt.width, tt.height); got != tt.want {
				t.Errorf("OrnamentCount(%v, %v) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestOrnamentCountGrowsWithArea(t *testing.T) {
	prev := OrnamentCount(0, 0)
	for side := 10.0; side <= 400; side += 5 {
		got := OrnamentCount(side, side)
		if got < prev {
			t.Fatalf("Count decreased at side %v: %d -> %d", side, prev, got)
		}
		if got < 18 || got > 36 {
			t.Fatalf("Count %d outside [18,36] at side %v", got, side)
		}
		prev = got
	}
	if OrnamentCount(190, 190) <= OrnamentCount(180, 180) {
		t.Error("Expected strictly more ornaments for a larger unclamped area")
	}
}

func TestOrnamentTags(t *testing.T) {
	tests := []struct {
		i    int
		want []string
	}{
		{0, []string{"blue", "gold", "d1"}},
		{1, []string{"d2"}},
		{3, []string{"blue", "d4"}},
		{5, []string{"gold", "d6"}},
		{7, []string{"d8"}},
		{8, []string{"d1"}},
		{15, []string{"blue", "gold", "d8"}},
	}
	for _, tt := range tests {
		if got := OrnamentTags(tt.i); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("OrnamentTags(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestOrnamentBands(t *testing.T) {
	const w, h = 320.0, 300.0
	for run := 0; run < 20; run++ {
		markers := PlaceOrnaments(w, h, seeded())
		for i, m := range markers {
			band := ornamentBands[i%3]
			if m.Y < band[0]*h || m.Y > band[1]*h {
				t.Fatalf("Ornament %d y=%v outside band [%v, %v]", i, m.Y, band[0]*h, band[1]*h)
			}
		}
	}
}

func TestOrnamentHorizontalBound(t *testing.T) {
	const w, h = 320.0, 300.0
	markers := PlaceOrnaments(w, h, seeded())

	maxHalf := w/2 - 19.2 // edgePadding = max(10, 320*0.06)
	wave := 6.4           // max(6, 320*0.02)
	for i, m := range markers {
		halfAtY := maxHalf * m.Y / h
		if halfAtY < 12 {
			halfAtY = 12
		}
		limit := halfAtY*0.92 + wave + 1e-9
		if dx := m.X - w/2; dx < -limit || dx > limit {
			t.Errorf("Ornament %d x offset %v exceeds %v at y=%v", i, dx, limit, m.Y)
		}
	}
}

func TestOrnamentLayoutReplacesMarkers(t *testing.T) {
	env := newTestEnv()
	ornaments := NewOrnamentSystem(env.surface, seeded())

	first := ornaments.Layout()
	if first != 36 {
		t.Fatalf("Expected 36 ornaments for 320x300, got %d", first)
	}
	before := env.surface.Markers(render.RegionOrnaments)

	env.surface.AddRegion(render.RegionOrnaments, 100, 100)
	second := ornaments.Layout()
	if second != 18 {
		t.Fatalf("Expected 18 ornaments after shrink, got %d", second)
	}

	after := env.surface.Markers(render.RegionOrnaments)
	if len(after) != second {
		t.Fatalf("Stale markers survived relayout: %d markers for %d placed", len(after), second)
	}
	if after[0].ID == before[0].ID {
		t.Error("Relayout should not preserve marker identity")
	}
}

func TestOrnamentLayoutFallbackSize(t *testing.T) {
	env := newTestEnv()
	env.surface.AddRegion(render.RegionOrnaments, 0, 0)
	ornaments := NewOrnamentSystem(env.surface, seeded())

	if got := ornaments.Layout(); got != OrnamentCount(320, 300) {
		t.Errorf("Expected fallback 320x300 count, got %d", got)
	}
	for _, m := range env.surface.Markers(render.RegionOrnaments) {
		if m.Y < 0.12*300 || m.Y > 0.90*300 {
			t.Errorf("Fallback ornament y=%v outside fallback height", m.Y)
		}
	}
}

func TestOrnamentLayoutMissingRegion(t *testing.T) {
	env := newTestEnv()
	env.surface.DropRegion(render.RegionOrnaments)
	ornaments := NewOrnamentSystem(env.surface, seeded())

	if got := ornaments.Layout(); got != 0 {
		t.Errorf("Expected silent skip, placed %d", got)
	}
}
