package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// decay shapes a stream with a short linear attack and an exponential bell tail
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	tau      float64 // samples per e-fold
}

func newDecay(s beep.Streamer, attack, halfLife time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		tau:      float64(rate.N(halfLife)) / math.Ln2,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-float64(d.position) / d.tau)
		if d.position < d.attack && d.attack > 0 {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// bell is a sine fundamental plus a quieter inharmonic partial, the usual tubular bell recipe
func bell(rate beep.SampleRate, freq float64, length time.Duration) (beep.Streamer, error) {
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	partial, err := generators.SineTone(rate, freq*2.76)
	if err != nil {
		return nil, err
	}

	n := rate.N(length)
	mixed := beep.Mix(
		newVolume(newDecay(beep.Take(n, fund), 5*time.Millisecond, 180*time.Millisecond, rate), 0.7),
		newVolume(newDecay(beep.Take(n, partial), 5*time.Millisecond, 60*time.Millisecond, rate), 0.25),
	)
	return mixed, nil
}

// NewChime plays a rising three-note sleigh-bell arpeggio
func NewChime(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := []float64{1318.51, 1567.98, 2093.0} // E6 G6 C7
	return arpeggio(rate, notes, volume)
}

// NewHush plays the same bells falling, softer
func NewHush(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := []float64{1567.98, 1046.50} // G6 C6
	return arpeggio(rate, notes, volume*0.6)
}

func arpeggio(rate beep.SampleRate, notes []float64, volume float64) (beep.Streamer, error) {
	const step = 90 * time.Millisecond
	const ring = 600 * time.Millisecond

	voices := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		b, err := bell(rate, f, ring)
		if err != nil {
			return nil, err
		}
		// Delay each note by prefixing silence
		voices = append(voices, beep.Seq(beep.Silence(rate.N(time.Duration(i)*step)), b))
	}
	return newVolume(beep.Mix(voices...), volume), nil
}
