package smartcube

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
)

// Rotator is the session surface a physical cube drives.
type Rotator interface {
	Rotate(m neoncube.Move) (bool, error)
	Size() int
}

// Bridge turns cube notifications into session moves. Physical turns map
// to the outer layers whatever the game cube's size.
type Bridge struct {
	ctrl   Rotator
	logger logrus.FieldLogger

	mu       sync.Mutex
	battery  int
	moves    int
	cubeType string
}

// NewBridge creates a bridge into ctrl.
func NewBridge(ctrl Rotator, logger logrus.FieldLogger) *Bridge {
	if logger == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		logger = quiet
	}
	return &Bridge{ctrl: ctrl, logger: logger, battery: -1}
}

// HandleMessage is the Client message callback.
func (b *Bridge) HandleMessage(msg *Message) {
	switch msg.Type {
	case MsgTypeRotation:
		rotations, err := DecodeRotation(msg.Payload)
		if err != nil {
			b.logger.WithError(err).WithField("raw", msg.RawBase64).Warn("undecodable rotation")
			return
		}
		for _, rot := range rotations {
			b.apply(rot)
		}
	case MsgTypeBattery:
		level, err := DecodeBattery(msg.Payload)
		if err != nil {
			b.logger.WithError(err).Warn("undecodable battery level")
			return
		}
		b.mu.Lock()
		b.battery = level
		b.mu.Unlock()
		b.logger.WithField("battery", level).Info("cube battery")
	case MsgTypeCubeType:
		name, err := DecodeCubeType(msg.Payload)
		if err != nil {
			b.logger.WithError(err).Warn("undecodable cube type")
			return
		}
		b.mu.Lock()
		b.cubeType = name
		b.mu.Unlock()
		b.logger.WithField("type", name).Info("cube model")
	case MsgTypeOfflineStats:
		stats, err := DecodeOfflineStats(msg.Payload)
		if err != nil {
			b.logger.WithError(err).Warn("undecodable offline stats")
			return
		}
		b.logger.WithFields(logrus.Fields{
			"moves":   stats.Moves,
			"seconds": stats.Seconds,
			"solves":  stats.Solves,
		}).Info("cube offline stats")
	default:
		b.logger.WithField("type", MessageTypeName(msg.Type)).Debug("ignoring cube message")
	}
}

func (b *Bridge) apply(rot Rotation) {
	m := rot.Move(b.ctrl.Size())
	solved, err := b.ctrl.Rotate(m)
	if err != nil {
		b.logger.WithError(err).WithField("move", m.Notation()).Warn("cube move rejected")
		return
	}

	b.mu.Lock()
	b.moves++
	b.mu.Unlock()

	fields := logrus.Fields{"color": rot.Color, "move": m.Notation()}
	if solved {
		b.logger.WithFields(fields).Info("solved from the physical cube")
		return
	}
	b.logger.WithFields(fields).Debug("cube move")
}

// Battery returns the last reported level, or -1.
func (b *Bridge) Battery() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.battery
}

// CubeType returns the reported cube model, or "" before it arrives.
func (b *Bridge) CubeType() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cubeType
}

// Moves returns how many physical turns were applied.
func (b *Bridge) Moves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.moves
}
