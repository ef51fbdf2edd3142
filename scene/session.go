// Package scene wires user toggles and host lifecycle notifications to the effect systems
package scene

import (
	"time"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/system"
	"github.com/lixenwraith/yuletide/vmath"
)

// Sounds is optionally supplied to give toggles audible feedback
type Sounds interface {
	PlayChime()
	PlayHush()
}

// Options configures initial toggle state and the countdown date
type Options struct {
	LightsOn    bool
	SnowOn      bool
	TargetMonth time.Month
	TargetDay   int
	Sounds      Sounds
}

// DefaultOptions matches the scene as first shown: lights off, snow falling, Christmas countdown
func DefaultOptions() Options {
	return Options{
		LightsOn:    false,
		SnowOn:      true,
		TargetMonth: constant.CountdownMonth,
		TargetDay:   constant.CountdownDay,
	}
}

// Session owns all scene state for one run
// Every method must be called from the host loop goroutine
type Session struct {
	surface render.Surface
	sched   *engine.Scheduler
	frames  *engine.FrameQueue

	snow      *system.SnowSystem
	sparkles  *system.SparkleSystem
	ornaments *system.OrnamentSystem
	garland   *system.GarlandSystem
	countdown *system.CountdownSystem
	parallax  *system.ParallaxSystem

	relayout *engine.Coalescer
	sounds   Sounds

	lightsOn bool
	snowOn   bool
	hidden   bool
	started  bool
}

// New builds the systems on top of surface; nothing runs until Start
func New(surface render.Surface, clock engine.Clock, rng *vmath.Rand, opts Options) *Session {
	sched := engine.NewScheduler(clock)
	frames := engine.NewFrameQueue()

	return &Session{
		surface:   surface,
		sched:     sched,
		frames:    frames,
		snow:      system.NewSnowSystem(surface, sched, rng),
		sparkles:  system.NewSparkleSystem(surface, sched, rng),
		ornaments: system.NewOrnamentSystem(surface, rng),
		garland:   system.NewGarlandSystem(surface, rng),
		countdown: system.NewCountdownSystem(surface, sched, opts.TargetMonth, opts.TargetDay),
		parallax:  system.NewParallaxSystem(surface, frames),
		relayout:  engine.NewCoalescer(frames),
		sounds:    opts.Sounds,
		lightsOn:  opts.LightsOn,
		snowOn:    opts.SnowOn,
	}
}

// Start performs the initial layout and starts the timers
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true

	s.surface.SetClass(render.ElementScene, constant.ClassLightsOn, s.lightsOn)
	s.layout()
	if s.snowOn {
		s.snow.Start()
	}
	if !s.hidden {
		s.sparkles.Start()
	}
	s.countdown.Start()
}

// Stop cancels every recurring timer; pending removals still run on later frames
func (s *Session) Stop() {
	s.snow.Stop()
	s.sparkles.Stop()
	s.countdown.Stop()
	s.started = false
}

// Frame runs one host turn: due timers first, then animation frame callbacks
func (s *Session) Frame() {
	s.sched.RunDue()
	s.frames.Flush()
}

// ToggleLights flips the lights display flag
func (s *Session) ToggleLights() {
	s.lightsOn = !s.lightsOn
	s.surface.SetClass(render.ElementScene, constant.ClassLightsOn, s.lightsOn)
	s.feedback(s.lightsOn)
}

// ToggleSnow flips snowfall; existing flakes finish their fall
func (s *Session) ToggleSnow() {
	s.snowOn = !s.snowOn
	if s.snowOn {
		s.snow.Start()
	} else {
		s.snow.Stop()
	}
	s.feedback(s.snowOn)
}

// OnResize schedules a relayout on the next frame, superseding any pending one
func (s *Session) OnResize() {
	s.relayout.Request(s.layout)
}

// OnScroll forwards the scroll offset to the parallax layers
func (s *Session) OnScroll(y float64) {
	s.parallax.OnScroll(y)
}

// OnVisibility suspends sparkles while hidden and resumes them when shown
func (s *Session) OnVisibility(hidden bool) {
	s.hidden = hidden
	if hidden {
		s.sparkles.Stop()
		return
	}
	if s.started {
		s.sparkles.Start()
	}
}

func (s *Session) layout() {
	s.ornaments.Layout()
	s.garland.Layout()
}

func (s *Session) feedback(on bool) {
	if s.sounds == nil {
		return
	}
	if on {
		s.sounds.PlayChime()
	} else {
		s.sounds.PlayHush()
	}
}

// LightsOn reports the lights flag
func (s *Session) LightsOn() bool {
	return s.lightsOn
}

// SnowOn reports whether snowfall is enabled
func (s *Session) SnowOn() bool {
	return s.snowOn
}

// SnowRunning reports whether the snow generator is active
func (s *Session) SnowRunning() bool {
	return s.snow.Running()
}

// SparklesRunning reports whether the sparkle generator is active
func (s *Session) SparklesRunning() bool {
	return s.sparkles.Running()
}

// RelayoutPending reports whether a coalesced relayout waits for the next frame
func (s *Session) RelayoutPending() bool {
	return s.relayout.Pending()
}

// Remaining returns the countdown's current value
func (s *Session) Remaining() system.Remaining {
	return s.countdown.Remaining()
}
