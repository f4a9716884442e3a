package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/audio"
	"github.com/SeamusWaldron/neoncube/internal/feed"
	"github.com/SeamusWaldron/neoncube/internal/game"
	"github.com/SeamusWaldron/neoncube/internal/storage"
)

// Flags shared by the interactive commands.
var (
	gameTheme string
	gameMode  string
	gameServe string
	gameMute  bool
	gameSeed  int64
)

// arcade is a started session with its journal, audio and optional feed.
type arcade struct {
	session  *game.Session
	settings *game.Settings
	db       *storage.DB
	audio    *audio.Player
	logger   *logrus.Logger
	logFile  io.Closer
	cancel   context.CancelFunc
}

func newArcade() (*arcade, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(true)
	if err != nil {
		return nil, err
	}

	db, err := openDB(settings)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	prefs := settings.Preferences()
	themeName := prefs.Theme
	if gameTheme != "" {
		themeName = gameTheme
	}
	theme, err := neoncube.ThemeByName(themeName)
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, err
	}

	modeName := string(prefs.Mode)
	if gameMode != "" {
		modeName = gameMode
	}
	mode, err := game.ParseMode(modeName)
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, err
	}

	opts := []game.Option{
		game.WithJournal(storage.NewJournal(db)),
		game.WithLogger(logger),
		game.WithTheme(theme),
		game.WithMode(mode),
	}
	if gameSeed != 0 {
		opts = append(opts, game.WithRand(rand.New(rand.NewSource(gameSeed))))
	}
	session := game.NewSession(opts...)

	player := audio.NewPlayer(prefs.Volume, logger)
	player.SetVolume(prefs.Volume, prefs.Muted || gameMute)
	if !gameMute {
		// Failure is logged by the player; the game runs silent.
		player.Open()
	}
	session.Subscribe(player.Handle)

	ctx, cancel := context.WithCancel(context.Background())
	a := &arcade{
		session:  session,
		settings: settings,
		db:       db,
		audio:    player,
		logger:   logger,
		logFile:  logFile,
		cancel:   cancel,
	}

	if gameServe != "" {
		hub := feed.NewHub(session, logger)
		session.Subscribe(hub.Handle)
		go func() {
			if err := hub.ListenAndServe(ctx, gameServe); err != nil {
				logger.WithError(err).Error("renderer feed stopped")
			}
		}()
	}

	if err := session.Start(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	if err := settings.SetLastSession(session.ID()); err != nil {
		logger.WithError(err).Warn("failed to save settings")
	}

	logger.WithFields(logrus.Fields{
		"session": session.ID(),
		"theme":   theme.Name,
		"mode":    mode,
	}).Info("session started")

	return a, nil
}

// Close stops the feed and releases the audio device, database and log.
func (a *arcade) Close() {
	a.cancel()
	a.audio.Close()
	a.db.Close()
	a.logFile.Close()
}
