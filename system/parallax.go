package system

import (
	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
)

// ParallaxSystem shifts the mountain layers by a fraction of the scroll offset
// Farther layers use the smaller factor and appear to move less
type ParallaxSystem struct {
	surface render.Surface
	frames  *engine.FrameQueue

	scrollY float64
	ticking bool
}

func NewParallaxSystem(surface render.Surface, frames *engine.FrameQueue) *ParallaxSystem {
	return &ParallaxSystem{
		surface: surface,
		frames:  frames,
	}
}

// Name returns system's name
func (s *ParallaxSystem) Name() string {
	return "parallax"
}

// OnScroll records the scroll offset and requests at most one frame
// Events arriving while a frame is pending are not queued; the frame applies the latest offset
func (s *ParallaxSystem) OnScroll(y float64) {
	s.scrollY = y
	if s.ticking {
		return
	}
	s.ticking = true
	s.frames.Request(func() {
		s.Apply(s.scrollY)
		s.ticking = false
	})
}

// Pending reports whether a frame is waiting to apply offsets
func (s *ParallaxSystem) Pending() bool {
	return s.ticking
}

// Apply writes layer offsets for scroll y, skipping absent layers
func (s *ParallaxSystem) Apply(y float64) {
	s.surface.SetStyle(render.ElementBackLayer, render.Style{TranslateY: y * constant.ParallaxBackFactor})
	s.surface.SetStyle(render.ElementMidLayer, render.Style{TranslateY: y * constant.ParallaxMidFactor})
}
