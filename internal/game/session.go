package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
)

// Progression constants.
const (
	StartSize    = 3
	MaxSize      = 5
	TimedLimit   = 60 * time.Second
	HintCost     = 50
	HintDuration = 2 * time.Second
	SolveBonus   = 100
)

type subscriber struct {
	id int
	fn func(Event)
}

// Session owns every piece of game state for one player. All mutation goes
// through its methods; it is safe for concurrent use, and events are
// delivered synchronously once the change that produced them is complete.
type Session struct {
	cfg *config
	id  string

	mu            sync.RWMutex
	state         State
	tracker       *neoncube.Tracker
	size          int
	theme         neoncube.Theme
	mode          Mode
	moveCount     float64
	points        float64
	prestige      int
	pointsPerMove float64
	upgrades      Upgrades
	rotationSpeed float64
	timeLeft      time.Duration
	unlocked      map[string]bool
	offer         UpgradeKind
	canPrestige   bool
	vision        bool
	hintCell      int
	hintLeft      time.Duration
	scramble      []neoncube.Move
	startedAt     time.Time

	pending []Event
	subs    []subscriber
	nextSub int
}

// NewSession creates an idle session. Call Start to build and scramble the
// first cube.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = neoncube.NewRand()
	}

	return &Session{
		cfg:           cfg,
		id:            uuid.New().String(),
		state:         StateIdle,
		size:          StartSize,
		theme:         cfg.theme,
		mode:          cfg.mode,
		prestige:      1,
		pointsPerMove: 1,
		rotationSpeed: 1,
		unlocked:      make(map[string]bool),
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Subscribe registers fn for every future event and returns a function that
// removes it. Subscribers run on the goroutine that caused the event and may
// call back into the session.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// update runs fn under the write lock, then delivers whatever events it
// queued.
func (s *Session) update(fn func() error) error {
	s.mu.Lock()
	err := fn()
	events := s.pending
	s.pending = nil
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, e := range events {
		for _, sub := range subs {
			sub.fn(e)
		}
	}
	return err
}

func (s *Session) emit(e Event) {
	e.Time = s.cfg.now()
	if e.Size == 0 {
		e.Size = s.size
	}
	e.Points = s.points
	s.pending = append(s.pending, e)
}

// Start builds the first cube and scrambles it.
func (s *Session) Start() error {
	return s.update(func() error {
		if s.state != StateIdle {
			return ErrAlreadyStarted
		}
		return s.rebuild()
	})
}

// rebuild replaces the cube with a fresh one at the current size and theme,
// scrambles it and re-arms the countdown.
func (s *Session) rebuild() error {
	cube, err := neoncube.NewCube(s.size, s.theme)
	if err != nil {
		return fmt.Errorf("failed to build cube: %w", err)
	}

	if s.tracker == nil {
		s.tracker = neoncube.NewTracker(cube,
			neoncube.WithRand(s.cfg.rand),
			neoncube.WithLogger(s.cfg.logger),
		)
	} else {
		s.tracker.Reset(cube)
	}

	s.scramble = s.tracker.Scramble(s.scrambleLength())
	s.moveCount = 0
	s.state = StateScrambled
	s.vision = s.upgrades.Vision > 0
	s.hintLeft = 0
	s.startedAt = s.cfg.now()
	if s.mode == ModeTimed {
		s.timeLeft = TimedLimit
	} else {
		s.timeLeft = 0
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"size":     s.size,
		"mode":     s.mode,
		"scramble": neoncube.FormatMoves(s.scramble),
	}).Debug("cube scrambled")

	s.emit(Event{Type: EventReset})
	return nil
}

func (s *Session) scrambleLength() int {
	if s.mode == ModeChallenge {
		return neoncube.ChallengeScrambleMoves
	}
	return neoncube.ScrambleMoves
}

// Rotate applies a user move. Rejected moves leave every counter alone. A
// move that solves the cube awards the bonus, checks achievements, grows
// the cube and rescrambles before Rotate returns.
func (s *Session) Rotate(m neoncube.Move) (solved bool, err error) {
	err = s.update(func() error {
		if s.state == StateIdle {
			return ErrNotStarted
		}

		m.Speed = s.rotationSpeed
		if m.Time.IsZero() {
			m.Time = s.cfg.now()
		}

		ok, err := s.tracker.ApplyMove(m)
		if err != nil {
			return err
		}

		s.moveCount += s.upgrades.MoveCost()
		s.points += s.pointsPerMove * float64(s.prestige)
		s.emit(Event{Type: EventMoveApplied, Move: &m, Moves: s.displayMoves()})

		if ok {
			solved = true
			return s.handleSolve()
		}
		return nil
	})
	return solved, err
}

func (s *Session) handleSolve() error {
	s.state = StateSolved
	solvedSize := s.size
	now := s.cfg.now()

	s.points += SolveBonus * float64(s.prestige)
	s.checkAchievements(solveFacts{
		moves:    s.moveCount,
		prestige: s.prestige,
		size:     solvedSize,
		mode:     s.mode,
	}, now)

	rec := SolveRecord{
		SessionID: s.id,
		Size:      solvedSize,
		Mode:      s.mode,
		Theme:     s.theme.Name,
		Moves:     s.displayMoves(),
		Points:    s.points,
		Prestige:  s.prestige,
		Scramble:  neoncube.FormatMoves(s.scramble),
		Solution:  append([]neoncube.Move(nil), s.tracker.Moves()...),
		Duration:  now.Sub(s.startedAt),
		SolvedAt:  now,
	}
	if s.cfg.journal != nil {
		if err := s.cfg.journal.RecordSolve(rec); err != nil {
			s.cfg.logger.WithError(err).Warn("failed to record solve")
		}
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"size":   solvedSize,
		"moves":  rec.Moves,
		"points": s.points,
	}).Info("cube solved")
	s.emit(Event{Type: EventSolved, Size: solvedSize, Moves: rec.Moves, Prestige: s.prestige})

	if s.size < MaxSize {
		s.size++
	} else {
		s.canPrestige = true
	}

	s.offer = randomUpgrade(s.cfg.rand)
	s.emit(Event{Type: EventUpgradeOffered, Upgrade: s.offer})

	return s.rebuild()
}

func (s *Session) checkAchievements(f solveFacts, at time.Time) {
	for _, a := range Achievements {
		if s.unlocked[a.Key] || !f.earned(a.Key) {
			continue
		}
		s.unlocked[a.Key] = true
		if s.cfg.journal != nil {
			if err := s.cfg.journal.RecordAchievement(s.id, a.Key, at); err != nil {
				s.cfg.logger.WithError(err).Warn("failed to record achievement")
			}
		}
		s.emit(Event{Type: EventAchievementUnlocked, Achievement: a.Key})
	}
}

// Tick advances session time: hint highlights fade and, in timed mode, the
// countdown runs. When it reaches zero the cube is rebuilt and rescrambled
// whether or not it was close to solved.
func (s *Session) Tick(d time.Duration) error {
	return s.update(func() error {
		if s.hintLeft > 0 {
			s.hintLeft -= d
			if s.hintLeft < 0 {
				s.hintLeft = 0
			}
		}

		if s.mode != ModeTimed || s.state != StateScrambled {
			return nil
		}

		s.timeLeft -= d
		if s.timeLeft > 0 {
			return nil
		}

		s.cfg.logger.WithField("size", s.size).Info("time up")
		s.emit(Event{Type: EventTimeUp})
		return s.rebuild()
	})
}

// Hint spends HintCost points to highlight a random visible cell for
// HintDuration. The highlight is cosmetic only.
func (s *Session) Hint() (cellID int, err error) {
	err = s.update(func() error {
		if s.state == StateIdle {
			return ErrNotStarted
		}
		if s.points < HintCost {
			return fmt.Errorf("%w: have %g, need %d", ErrInsufficientPoints, s.points, HintCost)
		}

		var outer []*neoncube.Cell
		for _, cell := range s.tracker.Cube().Cells() {
			if cell.IsOuter(s.size) {
				outer = append(outer, cell)
			}
		}
		pick := outer[s.cfg.rand.Intn(len(outer))]

		s.points -= HintCost
		s.hintCell = pick.ID()
		s.hintLeft = HintDuration
		cellID = pick.ID()

		s.emit(Event{Type: EventHintShown, CellID: cellID})
		return nil
	})
	return cellID, err
}

// OfferUpgrade draws a random upgrade if none is pending and returns the
// offer.
func (s *Session) OfferUpgrade() UpgradeKind {
	var offer UpgradeKind
	s.update(func() error {
		if s.offer == "" {
			s.offer = randomUpgrade(s.cfg.rand)
			s.emit(Event{Type: EventUpgradeOffered, Upgrade: s.offer})
		}
		offer = s.offer
		return nil
	})
	return offer
}

// AcceptUpgrade applies the pending offer.
func (s *Session) AcceptUpgrade() (UpgradeKind, error) {
	var applied UpgradeKind
	err := s.update(func() error {
		if s.offer == "" {
			return ErrNoUpgradeOffer
		}
		applied = s.offer
		s.upgrades.apply(applied)
		s.rotationSpeed = s.upgrades.RotationSpeed()
		s.offer = ""

		s.cfg.logger.WithField("upgrade", applied).Info("upgrade applied")
		s.emit(Event{Type: EventUpgradeApplied, Upgrade: applied})
		return nil
	})
	return applied, err
}

// Prestige trades the run for a higher multiplier. It is only available
// after solving the largest cube.
func (s *Session) Prestige() error {
	return s.update(func() error {
		if !s.canPrestige {
			return ErrPrestigeUnavailable
		}

		s.prestige++
		s.size = StartSize
		s.points = 0
		s.pointsPerMove = 1 + 0.5*float64(s.prestige)
		s.upgrades = Upgrades{}
		s.rotationSpeed = s.upgrades.RotationSpeed()
		s.canPrestige = false
		s.offer = ""

		s.cfg.logger.WithField("prestige", s.prestige).Info("prestiged")
		s.emit(Event{Type: EventPrestiged, Prestige: s.prestige})
		return s.rebuild()
	})
}

// SetTheme switches to a built-in theme and starts a fresh cube.
func (s *Session) SetTheme(name string) error {
	theme, err := neoncube.ThemeByName(name)
	if err != nil {
		return err
	}
	return s.update(func() error {
		s.theme = theme
		s.emit(Event{Type: EventThemeChanged, Theme: theme.Name})
		if s.state == StateIdle {
			return nil
		}
		return s.rebuild()
	})
}

// SetMode switches mode and starts a fresh cube.
func (s *Session) SetMode(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	return s.update(func() error {
		s.mode = m
		s.emit(Event{Type: EventModeChanged, Mode: m})
		if s.state == StateIdle {
			return nil
		}
		return s.rebuild()
	})
}

func (s *Session) displayMoves() int {
	return int(math.Floor(s.moveCount + 1e-9))
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Size returns the current cube size.
func (s *Session) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Points returns the current score.
func (s *Session) Points() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points
}

// MoveCount returns the displayed move count, the fractional counter
// floored.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayMoves()
}

// TimeLeft returns the countdown remaining in timed mode.
func (s *Session) TimeLeft() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeLeft
}

// RotationSpeed returns the animation speed multiplier.
func (s *Session) RotationSpeed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rotationSpeed
}

// LayerOffsets returns the valid layer coordinates of the current cube.
func (s *Session) LayerOffsets() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tracker == nil {
		return nil
	}
	return s.tracker.Cube().LayerOffsets()
}

// Scramble returns the sequence that scrambled the current cube.
func (s *Session) Scramble() []neoncube.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]neoncube.Move, len(s.scramble))
	copy(out, s.scramble)
	return out
}
