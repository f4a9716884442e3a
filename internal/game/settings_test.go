package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	s, err := NewSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	p := s.Preferences()
	if p.Theme != "neon" || p.Mode != ModeStandard || p.Volume != 0.2 {
		t.Errorf("defaults = %+v", p)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetTheme("tron"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMode(ModeTimed); err != nil {
		t.Fatal(err)
	}
	if err := s.SetVolume(0.5, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLastDevice("AA:BB", "GoCube_1"); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	p := loaded.Preferences()
	if p.Theme != "tron" || p.Mode != ModeTimed || p.Volume != 0.5 || !p.Muted || p.LastDeviceName != "GoCube_1" {
		t.Errorf("loaded = %+v", p)
	}
}

func TestSettingsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSettings(path); err == nil {
		t.Error("expected an error for a corrupt settings file")
	}
}
