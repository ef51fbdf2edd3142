package system

import (
	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

// SparkleSystem twinkles short-lived glints below the tree top
type SparkleSystem struct {
	surface render.Surface
	sched   *engine.Scheduler
	rng     *vmath.Rand

	interval engine.TaskID
}

func NewSparkleSystem(surface render.Surface, sched *engine.Scheduler, rng *vmath.Rand) *SparkleSystem {
	return &SparkleSystem{
		surface: surface,
		sched:   sched,
		rng:     rng,
	}
}

// Name returns system's name
func (s *SparkleSystem) Name() string {
	return "sparkle"
}

// Start begins spawning; no-op while running
func (s *SparkleSystem) Start() {
	if s.interval != 0 {
		return
	}
	s.interval = s.sched.Every(constant.SparkleInterval, func() {
		s.CreateSparkle()
	})
}

// Stop cancels spawning; live sparkles still expire
func (s *SparkleSystem) Stop() {
	if s.interval == 0 {
		return
	}
	s.sched.Cancel(s.interval)
	s.interval = 0
}

// Running reports whether spawning is active
func (s *SparkleSystem) Running() bool {
	return s.interval != 0
}

// CreateSparkle places one sparkle around the anchor center, skipped when the anchor is absent
func (s *SparkleSystem) CreateSparkle() (render.MarkerID, bool) {
	width, _, ok := s.surface.Measure(render.RegionAnchor)
	if !ok {
		return 0, false
	}

	dx := s.rng.Range(-constant.SparkleSpreadX, constant.SparkleSpreadX)
	dy := s.rng.Range(constant.SparkleOffsetYMin, constant.SparkleOffsetYMax)

	id, ok := s.surface.AddMarker(render.RegionAnchor, render.Marker{
		Kind:      render.KindSparkle,
		Glyph:     constant.SparkleGlyph,
		X:         width/2 + dx,
		Y:         dy,
		Opacity:   1,
		Duration:  constant.SparkleLifetime,
		CreatedAt: s.sched.Now(),
	})
	if !ok {
		return 0, false
	}

	s.sched.After(constant.SparkleLifetime, func() {
		s.surface.RemoveMarker(render.RegionAnchor, id)
	})
	return id, true
}
