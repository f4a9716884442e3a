package neoncube

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	rand        *rand.Rand
	logger      logrus.FieldLogger
}

func defaultConfig() *config {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return &config{
		moveHistory: true,
		logger:      quiet,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), user moves are stored and accessible via Moves().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used for scrambles. Tests pass a seeded
// source to get reproducible sequences.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithLogger sets where rejected moves are reported. The default discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
