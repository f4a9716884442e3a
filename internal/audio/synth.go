// Package audio synthesises the game's cues and plays them through the
// system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Cue parameters.
const (
	MoveFreq      = 440.0
	MoveDuration  = 100 * time.Millisecond
	SolveFreq     = 523.0
	SolveDuration = 500 * time.Millisecond
	DroneBase     = 110.0
	DronePerSize  = 20.0
	droneLevel    = 0.25
	cueAttack     = 5 * time.Millisecond
	cueRelease    = 40 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
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

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is silent instead.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// MoveBlip is the short square tone played for every move.
func MoveBlip(vol float64) beep.Streamer {
	osc := NewOscillator(MoveFreq, MoveDuration, WaveSquare, sampleRate)
	return newVolume(NewEnvelope(osc, MoveDuration, cueAttack, cueRelease, sampleRate), vol)
}

// SolveChime is the softer triangle tone played on a solve.
func SolveChime(vol float64) beep.Streamer {
	osc := NewOscillator(SolveFreq, SolveDuration, WaveTriangle, sampleRate)
	return newVolume(NewEnvelope(osc, SolveDuration, cueAttack, 4*cueRelease, sampleRate), vol)
}

// DroneFreq is the background pitch for a cube size.
func DroneFreq(size int) float64 {
	return DroneBase + DronePerSize*float64(size)
}

// Drone is an endless sine whose pitch can be changed while it plays.
type Drone struct {
	mu    sync.Mutex
	freq  float64
	phase float64
	rate  beep.SampleRate
}

// NewDrone creates a drone at freq.
func NewDrone(freq float64) *Drone {
	return &Drone{freq: freq, rate: sampleRate}
}

// SetFreq changes the pitch from the next sample.
func (d *Drone) SetFreq(freq float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.freq = freq
}

// Freq returns the current pitch.
func (d *Drone) Freq() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freq
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	step := d.freq / float64(d.rate)
	for i := range samples {
		val := math.Sin(2 * math.Pi * d.phase)
		samples[i][0] = val
		samples[i][1] = val
		d.phase += step
		d.phase -= math.Floor(d.phase)
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
