package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
)

// Remaining is a non-negative countdown split into display units
type Remaining struct {
	Days, Hours, Mins, Secs int
}

// Fields renders each unit zero-padded to at least two digits
func (r Remaining) Fields() (days, hours, mins, secs string) {
	return pad2(r.Days), pad2(r.Hours), pad2(r.Mins), pad2(r.Secs)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// CountdownSystem ticks the days/hours/mins/secs display toward the next annual target date
type CountdownSystem struct {
	surface render.Surface
	sched   *engine.Scheduler

	month  time.Month
	day    int
	target time.Time

	interval engine.TaskID
}

// NewCountdownSystem targets month/day at local midnight; invalid dates fall back to December 25
func NewCountdownSystem(surface render.Surface, sched *engine.Scheduler, month time.Month, day int) *CountdownSystem {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		month, day = constant.CountdownMonth, constant.CountdownDay
	}
	s := &CountdownSystem{
		surface: surface,
		sched:   sched,
		month:   month,
		day:     day,
	}
	s.target = NextTarget(sched.Now(), month, day)
	return s
}

// Name returns system's name
func (s *CountdownSystem) Name() string {
	return "countdown"
}

// NextTarget returns this year's occurrence of month/day, or next year's once that whole day has passed
// The target day itself keeps this year's date so the display holds at zero for the day
func NextTarget(now time.Time, month time.Month, day int) time.Time {
	target := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if !now.Before(target.AddDate(0, 0, 1)) {
		target = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, now.Location())
	}
	return target
}

// Target returns the cached target, refreshing it once passed
func (s *CountdownSystem) Target() time.Time {
	now := s.sched.Now()
	if now.After(s.target) {
		s.target = NextTarget(now, s.month, s.day)
	}
	return s.target
}

// Remaining computes the clamped time left until the target
func (s *CountdownSystem) Remaining() Remaining {
	target := s.Target()
	return RemainingUntil(s.sched.Now(), target)
}

// RemainingUntil splits target-now into whole units, zero at or after target
func RemainingUntil(now, target time.Time) Remaining {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	total := int64(diff / time.Second)
	return Remaining{
		Days:  int(total / 86400),
		Hours: int(total % 86400 / 3600),
		Mins:  int(total % 3600 / 60),
		Secs:  int(total % 60),
	}
}

// countdownFields are written together; the display is skipped unless all exist
var countdownFields = [4]render.Element{
	render.ElementDays,
	render.ElementHours,
	render.ElementMins,
	render.ElementSecs,
}

// Update writes the current remaining time to the four display fields
func (s *CountdownSystem) Update() bool {
	for _, el := range countdownFields {
		if !s.surface.HasElement(el) {
			return false
		}
	}

	days, hours, mins, secs := s.Remaining().Fields()
	for i, text := range [4]string{days, hours, mins, secs} {
		s.surface.SetText(countdownFields[i], text)
	}
	return true
}

// Start renders immediately then once per second; no-op while running
func (s *CountdownSystem) Start() {
	if s.interval != 0 {
		return
	}
	s.Update()
	s.interval = s.sched.Every(constant.CountdownInterval, func() {
		s.Update()
	})
}

// Stop cancels the tick
func (s *CountdownSystem) Stop() {
	if s.interval == 0 {
		return
	}
	s.sched.Cancel(s.interval)
	s.interval = 0
}
