package system

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

func TestGarlandCounts(t *testing.T) {
	tests := []struct {
		width float64
		want  [3]int
	}{
		{320, [3]int{11, 12, 13}},
		{100, [3]int{8, 8, 8}},
		{1000, [3]int{18, 18, 18}},
	}
	for _, tt := range tests {
		for i, row := range GarlandRows {
			if got := GarlandCount(row, tt.width); got != tt.want[i] {
				t.Errorf("width %v row %d: got %d lights, want %d", tt.width, i+1, got, tt.want[i])
			}
		}
	}
}

func TestGarlandBounds(t *testing.T) {
	for _, size := range [][2]float64{{350, 320}, {120, 200}, {900, 600}} {
		w, h := size[0], size[1]
		markers := PlaceGarland(w, h, seeded())
		cx := w / 2

		for idx, row := range GarlandRows {
			half := w * row.Spread / 2
			tag := fmt.Sprintf("row%d", idx+1)
			yBase := h*row.Y + float64(idx)*2

			n := 0
			for _, m := range markers {
				if !m.HasTag(tag) {
					continue
				}
				n++
				if m.X < cx-half-1.5 || m.X > cx+half+1.5 {
					t.Errorf("%vx%v %s: x=%v outside [%v, %v]", w, h, tag, m.X, cx-half-1.5, cx+half+1.5)
				}
				if m.Y < yBase-1.5 || m.Y > yBase+row.Sag+1.5 {
					t.Errorf("%vx%v %s: y=%v outside sag band", w, h, tag, m.Y)
				}
			}
			if n != GarlandCount(row, w) {
				t.Errorf("%vx%v %s: %d lights, want %d", w, h, tag, n, GarlandCount(row, w))
			}
		}
	}
}

func TestGarlandSagShape(t *testing.T) {
	// Source 0.5 zeroes the jitter
	rng := vmath.NewRandFromSource(fixedSource(0.5))
	const w, h = 320.0, 300.0
	markers := PlaceGarland(w, h, rng)

	row := GarlandRows[0]
	n := GarlandCount(row, w) // 11, odd so a light sits at the midpoint
	first, mid, last := markers[0], markers[n/2], markers[n-1]
	yBase := h * row.Y

	if !approxEqual(first.Y, yBase) || !approxEqual(last.Y, yBase) {
		t.Errorf("Ends should sit at base y %v, got %v and %v", yBase, first.Y, last.Y)
	}
	if !approxEqual(mid.Y, yBase+row.Sag) {
		t.Errorf("Midpoint should sag to %v, got %v", yBase+row.Sag, mid.Y)
	}
	half := w * row.Spread / 2
	if !approxEqual(first.X, w/2-half) || !approxEqual(last.X, w/2+half) {
		t.Errorf("Ends should span [%v, %v], got %v..%v", w/2-half, w/2+half, first.X, last.X)
	}
}

func TestGarlandLayout(t *testing.T) {
	env := newTestEnv()
	env.surface.AddRegion(render.RegionGarland, 0, 0)
	garland := NewGarlandSystem(env.surface, seeded())

	want := 0
	for _, row := range GarlandRows {
		want += GarlandCount(row, 350)
	}

	if got := garland.Layout(); got != want {
		t.Fatalf("Expected %d lights with fallback width, got %d", want, got)
	}
	if got := garland.Layout(); got != want || env.surface.Count(render.RegionGarland) != want {
		t.Errorf("Relayout should replace, not append: placed %d, live %d", got, env.surface.Count(render.RegionGarland))
	}

	env.surface.DropRegion(render.RegionGarland)
	if got := garland.Layout(); got != 0 {
		t.Errorf("Expected silent skip without region, placed %d", got)
	}
}
