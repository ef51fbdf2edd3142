package system

import (
	"math"
	"time"

	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/vmath"
)

// fixedSource always yields the same value, pinning every Range to a known point
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

var testEpoch = time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	surface *render.Memory
	clock   *engine.MockTimeProvider
	sched   *engine.Scheduler
	frames  *engine.FrameQueue
}

func newTestEnv() *testEnv {
	clock := engine.NewMockTimeProvider(testEpoch)
	return &testEnv{
		surface: render.NewMemoryScene(320, 300),
		clock:   clock,
		sched:   engine.NewScheduler(clock),
		frames:  engine.NewFrameQueue(),
	}
}

// step advances the mock clock and runs whatever became due
func (e *testEnv) step(d time.Duration) {
	e.clock.Advance(d)
	e.sched.RunDue()
}

func seeded() *vmath.Rand {
	return vmath.NewRand(1234)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
