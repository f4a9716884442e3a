package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	journal Journal
	rand    *rand.Rand
	logger  logrus.FieldLogger
	now     func() time.Time
	theme   neoncube.Theme
	mode    Mode
}

func defaultConfig() *config {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return &config{
		logger: quiet,
		now:    time.Now,
		theme:  neoncube.ThemeNeon,
		mode:   ModeStandard,
	}
}

// WithJournal records solves and achievements as they happen.
func WithJournal(j Journal) Option {
	return func(c *config) {
		c.journal = j
	}
}

// WithRand sets the source for scrambles, upgrade offers and hints.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithLogger sets the session logger. The default discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides time.Now for event and journal timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithTheme sets the starting theme.
func WithTheme(t neoncube.Theme) Option {
	return func(c *config) {
		c.theme = t
	}
}

// WithMode sets the starting mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}
