package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType is an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator is a finite, fixed-frequency wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays freq for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with the given attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or negative volume is silent since
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one step of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.dur, n.wave, rate)
	return NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/2, rate)
}

func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return beep.Seq(parts...)
}

// bell mixes a sine fundamental with its octave for a short ding.
func bell(rate beep.SampleRate, freq float64, dur time.Duration) beep.Streamer {
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewEnvelope(NewOscillator(freq, dur, WaveSine, rate), dur, 2*time.Millisecond, dur, rate)
	}
	fundShaped := NewEnvelope(beep.Take(rate.N(dur), fund), dur, 2*time.Millisecond, dur, rate)

	over := NewOscillator(freq*2, dur, WaveSine, rate)
	overShaped := NewEnvelope(over, dur, 2*time.Millisecond, dur/2, rate)

	return beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
}

// Build synthesizes cue at the given linear volume.
func Build(cue Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var s beep.Streamer
	switch cue {
	case CueJump:
		s = sequence(rate,
			note{392, ms(40), WaveSquare},
			note{523.25, ms(60), WaveSquare},
		)
	case CueDoubleJump:
		s = sequence(rate,
			note{523.25, ms(35), WaveSquare},
			note{783.99, ms(55), WaveSquare},
		)
	case CueCollect:
		s = bell(rate, 880, ms(180))
	case CueStomp:
		s = sequence(rate,
			note{196, ms(50), WaveTriangle},
			note{987.77, ms(90), WaveSquare},
		)
	case CuePowerup:
		s = sequence(rate,
			note{523.25, ms(60), WaveSine},
			note{659.25, ms(60), WaveSine},
			note{783.99, ms(60), WaveSine},
			note{1046.5, ms(140), WaveSine},
		)
	case CueLevelUp:
		s = sequence(rate,
			note{659.25, ms(90), WaveSquare},
			note{783.99, ms(90), WaveSquare},
			note{1318.51, ms(220), WaveSquare},
		)
	case CueGameOver:
		s = sequence(rate,
			note{392, ms(150), WaveSaw},
			note{311.13, ms(150), WaveSaw},
			note{196, ms(350), WaveSaw},
		)
	default:
		return nil
	}
	return newVolume(s, volume*cueGain)
}

// cueGain keeps full-scale square and saw waves from clipping in the mixer.
const cueGain = 0.35
