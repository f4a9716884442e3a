package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Preferences are the user choices kept between runs. Game progress is not
// stored here.
type Preferences struct {
	DBPath         string  `json:"db_path,omitempty"`
	Theme          string  `json:"theme,omitempty"`
	Mode           Mode    `json:"mode,omitempty"`
	Volume         float64 `json:"volume"`
	Muted          bool    `json:"muted,omitempty"`
	LastSessionID  string  `json:"last_session_id,omitempty"`
	LastDeviceID   string  `json:"last_device_id,omitempty"`
	LastDeviceName string  `json:"last_device_name,omitempty"`
}

// Settings manages the preferences file.
type Settings struct {
	path  string
	prefs Preferences
}

// DefaultDir returns ~/.neoncube, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".neoncube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// DefaultSettingsPath returns the default settings file path.
func DefaultSettingsPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// NewSettings loads the settings at path. A missing file yields defaults.
func NewSettings(path string) (*Settings, error) {
	s := &Settings{
		path: path,
		prefs: Preferences{
			Theme:  "neon",
			Mode:   ModeStandard,
			Volume: 0.2,
		},
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// NewDefaultSettings loads settings from the default path.
func NewDefaultSettings() (*Settings, error) {
	path, err := DefaultSettingsPath()
	if err != nil {
		return nil, err
	}
	return NewSettings(path)
}

// Load reads the settings from disk.
func (s *Settings) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &s.prefs); err != nil {
		return fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	return nil
}

// Save writes the settings to disk.
func (s *Settings) Save() error {
	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Path returns the file location.
func (s *Settings) Path() string {
	return s.path
}

// Preferences returns the current values.
func (s *Settings) Preferences() Preferences {
	return s.prefs
}

// SetTheme records the chosen theme.
func (s *Settings) SetTheme(name string) error {
	s.prefs.Theme = name
	return s.Save()
}

// SetMode records the chosen mode.
func (s *Settings) SetMode(m Mode) error {
	s.prefs.Mode = m
	return s.Save()
}

// SetVolume records the audio level.
func (s *Settings) SetVolume(volume float64, muted bool) error {
	s.prefs.Volume = volume
	s.prefs.Muted = muted
	return s.Save()
}

// SetLastSession records the ID of the most recent session.
func (s *Settings) SetLastSession(id string) error {
	s.prefs.LastSessionID = id
	return s.Save()
}

// SetLastDevice records the last connected smart cube.
func (s *Settings) SetLastDevice(deviceID, deviceName string) error {
	s.prefs.LastDeviceID = deviceID
	s.prefs.LastDeviceName = deviceName
	return s.Save()
}

// SetDBPath records the journal location.
func (s *Settings) SetDBPath(path string) error {
	s.prefs.DBPath = path
	return s.Save()
}
