// Package cli implements the command-line interface for neoncube.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/neoncube/internal/game"
	"github.com/SeamusWaldron/neoncube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath       string
	settingsPath string
	verbose      bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "neoncube",
	Short: "Neon Rubik's cube arcade",
	Long: `neoncube - an NxNxN Rubik's cube arcade game for the terminal.

Solve scrambled cubes that grow from 3x3 to 5x5, earn points and upgrades,
prestige for a bigger multiplier, and keep a journal of every solve.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.neoncube/neoncube.db)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Settings file path (default: ~/.neoncube/settings.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so they log to a file instead of stderr.
func newLogger(toFile bool) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if !toFile {
		logger.SetOutput(os.Stderr)
		return logger, io.NopCloser(nil), nil
	}

	dir, err := game.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "neoncube.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, f, nil
}

func loadSettings() (*game.Settings, error) {
	var (
		s   *game.Settings
		err error
	)
	if settingsPath != "" {
		s, err = game.NewSettings(settingsPath)
	} else {
		s, err = game.NewDefaultSettings()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

// openDB opens the journal at the flag path, the settings path or the
// default location, in that order.
func openDB(settings *game.Settings) (*storage.DB, error) {
	path := dbPath
	if path == "" && settings != nil {
		path = settings.Preferences().DBPath
	}

	var (
		db  *storage.DB
		err error
	)
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
