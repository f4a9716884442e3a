package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube/internal/game"
)

// Player mixes cues and the drone. Without a working speaker it keeps
// mixing into nothing so the game runs unchanged.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	drone       *Drone
	droneVolume *effects.Volume
	volume      float64
	muted       bool
	live        bool
	logger      logrus.FieldLogger
}

// NewPlayer creates a silent player at the given master volume.
func NewPlayer(volume float64, logger logrus.FieldLogger) *Player {
	if logger == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		logger = quiet
	}
	drone := NewDrone(DroneFreq(game.StartSize))
	p := &Player{
		mixer:  &beep.Mixer{},
		drone:  drone,
		volume: volume,
		logger: logger,
	}
	p.droneVolume = newVolume(drone, volume*droneLevel)
	p.mixer.Add(p.droneVolume)
	return p
}

// Open connects the player to the speaker. Failure leaves it silent and is
// returned for logging.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.WithError(err).Warn("audio unavailable")
		return err
	}

	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.live = false
}

// withMixer runs fn holding the speaker lock when the speaker is running.
func (p *Player) withMixer(fn func()) {
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	p.withMixer(func() { p.mixer.Add(s) })
}

// PlayMove plays the move blip.
func (p *Player) PlayMove() {
	p.add(MoveBlip(p.Volume()))
}

// PlaySolve plays the solve chime.
func (p *Player) PlaySolve() {
	p.add(SolveChime(p.Volume()))
}

// SetSize retunes the drone for a cube size.
func (p *Player) SetSize(size int) {
	p.drone.SetFreq(DroneFreq(size))
}

// SetVolume changes the master volume; muting silences cues and drone.
func (p *Player) SetVolume(volume float64, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
	p.muted = muted
	p.withMixer(func() {
		level := volume * droneLevel
		p.droneVolume.Silent = muted || level <= 0
		if level > 0 {
			p.droneVolume.Volume = math.Log2(level)
		}
	})
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Pending returns the number of streams in the mix, the drone included.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	var n int
	p.withMixer(func() { n = p.mixer.Len() })
	return n
}

// Handle maps session events to cues. Pass it to Session.Subscribe.
func (p *Player) Handle(e game.Event) {
	switch e.Type {
	case game.EventMoveApplied:
		p.PlayMove()
	case game.EventSolved:
		p.PlaySolve()
	case game.EventReset, game.EventPrestiged:
		p.SetSize(e.Size)
	}
}
