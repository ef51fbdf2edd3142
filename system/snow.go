package system

import (
	"time"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

// SnowSystem spawns bursts of falling flakes while running
// Flakes remove themselves; Stop only halts spawning
type SnowSystem struct {
	surface render.Surface
	sched   *engine.Scheduler
	rng     *vmath.Rand

	interval engine.TaskID
}

func NewSnowSystem(surface render.Surface, sched *engine.Scheduler, rng *vmath.Rand) *SnowSystem {
	return &SnowSystem{
		surface: surface,
		sched:   sched,
		rng:     rng,
	}
}

// Name returns system's name
func (s *SnowSystem) Name() string {
	return "snow"
}

// Start begins spawning; no-op while running
func (s *SnowSystem) Start() {
	if s.interval != 0 {
		return
	}
	s.interval = s.sched.Every(constant.SnowInterval, func() {
		for i := 0; i < constant.SnowBurst; i++ {
			s.CreateSnowflake()
		}
	})
}

// Stop cancels spawning; no-op while stopped
func (s *SnowSystem) Stop() {
	if s.interval == 0 {
		return
	}
	s.sched.Cancel(s.interval)
	s.interval = 0
}

// Running reports whether spawning is active
func (s *SnowSystem) Running() bool {
	return s.interval != 0
}

// CreateSnowflake adds one flake and schedules its removal
func (s *SnowSystem) CreateSnowflake() (render.MarkerID, bool) {
	glyph := constant.SnowGlyphs[s.rng.Intn(len(constant.SnowGlyphs))]
	size := s.rng.Range(constant.SnowSizeMin, constant.SnowSizeMax)
	duration := s.rng.Range(constant.SnowDurationMin, constant.SnowDurationMax)
	left := s.rng.Range(0, 100)
	sway := s.rng.Range(constant.SnowSwayMin, constant.SnowSwayMax)
	opacity := s.rng.Range(constant.SnowOpacityMin, constant.SnowOpacityMax)

	fall := secondsToDuration(duration)
	id, ok := s.surface.AddMarker(render.RegionSnow, render.Marker{
		Kind:      render.KindSnowflake,
		Glyph:     glyph,
		X:         left,
		Size:      size,
		Opacity:   opacity,
		Duration:  fall,
		Sway:      secondsToDuration(sway),
		CreatedAt: s.sched.Now(),
	})
	if !ok {
		return 0, false
	}

	s.sched.After(fall+constant.SnowRemovalSlack, func() {
		s.surface.RemoveMarker(render.RegionSnow, id)
	})
	return id, true
}

// secondsToDuration truncates to whole milliseconds, the resolution timers are specified in
func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec*1000) * time.Millisecond
}
