package system

import (
	"testing"

	"github.com/lixenwraith/yuletide/render"
)

func TestParallaxOffsets(t *testing.T) {
	env := newTestEnv()
	p := NewParallaxSystem(env.surface, env.frames)

	p.OnScroll(100)
	if back, _ := env.surface.Style(render.ElementBackLayer); back.TranslateY != 0 {
		t.Fatal("Offsets should wait for the animation frame")
	}

	env.frames.Flush()
	back, _ := env.surface.Style(render.ElementBackLayer)
	mid, _ := env.surface.Style(render.ElementMidLayer)
	if !approxEqual(back.TranslateY, 8.0) {
		t.Errorf("Back layer offset = %v, want 8.0", back.TranslateY)
	}
	if !approxEqual(mid.TranslateY, 14.0) {
		t.Errorf("Mid layer offset = %v, want 14.0", mid.TranslateY)
	}
}

func TestParallaxDropsEventsWhilePending(t *testing.T) {
	env := newTestEnv()
	p := NewParallaxSystem(env.surface, env.frames)

	p.OnScroll(10)
	p.OnScroll(20)
	p.OnScroll(50)
	if env.frames.Pending() != 1 {
		t.Fatalf("Expected one frame request, got %d", env.frames.Pending())
	}
	if !p.Pending() {
		t.Error("Busy flag should be set")
	}

	env.frames.Flush()
	if p.Pending() {
		t.Error("Busy flag should clear after the frame")
	}
	back, _ := env.surface.Style(render.ElementBackLayer)
	if !approxEqual(back.TranslateY, 4.0) {
		t.Errorf("Frame should apply the latest offset, got %v", back.TranslateY)
	}

	p.OnScroll(0)
	if env.frames.Pending() != 1 {
		t.Error("A new scroll after the frame should request another frame")
	}
}

func TestParallaxMissingLayer(t *testing.T) {
	env := newTestEnv()
	env.surface.DropElement(render.ElementBackLayer)
	p := NewParallaxSystem(env.surface, env.frames)

	p.OnScroll(100)
	env.frames.Flush()

	mid, _ := env.surface.Style(render.ElementMidLayer)
	if !approxEqual(mid.TranslateY, 14.0) {
		t.Errorf("Mid layer should still update, got %v", mid.TranslateY)
	}
}
