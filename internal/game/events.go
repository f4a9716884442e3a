package game

import (
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// EventType identifies what happened in a session.
type EventType string

const (
	EventMoveApplied         EventType = "moveApplied"
	EventSolved              EventType = "solved"
	EventPrestiged           EventType = "prestiged"
	EventThemeChanged        EventType = "themeChanged"
	EventModeChanged         EventType = "modeChanged"
	EventTimeUp              EventType = "timeUp"
	EventUpgradeOffered      EventType = "upgradeOffered"
	EventUpgradeApplied      EventType = "upgradeApplied"
	EventAchievementUnlocked EventType = "achievementUnlocked"
	EventHintShown           EventType = "hintShown"
	EventReset               EventType = "reset"
)

// Event is delivered to subscribers after the state change it describes
// has been applied. Only the fields relevant to Type are set.
type Event struct {
	Type        EventType      `json:"type"`
	Time        time.Time      `json:"time"`
	Size        int            `json:"size"`
	Points      float64        `json:"points"`
	Move        *neoncube.Move `json:"move,omitempty"`
	Moves       int            `json:"moves,omitempty"`
	Upgrade     UpgradeKind    `json:"upgrade,omitempty"`
	Achievement string         `json:"achievement,omitempty"`
	Theme       string         `json:"theme,omitempty"`
	Mode        Mode           `json:"mode,omitempty"`
	CellID      int            `json:"cell_id,omitempty"`
	Prestige    int            `json:"prestige,omitempty"`
}
