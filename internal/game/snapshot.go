package game

import (
	"github.com/SeamusWaldron/neoncube"
)

// CellView is one cell as a renderer sees it.
type CellView struct {
	ID        int                 `json:"id"`
	Position  [3]float64          `json:"position"`
	Colors    [6]neoncube.ColorID `json:"colors"`
	Rendered  [6]string           `json:"rendered"`
	Highlight float64             `json:"highlight,omitempty"`
}

// Snapshot is a read-only copy of the session for renderers and the HUD.
type Snapshot struct {
	SessionID         string              `json:"session_id"`
	State             string              `json:"state"`
	Size              int                 `json:"size"`
	Theme             string              `json:"theme"`
	Mode              Mode                `json:"mode"`
	Moves             int                 `json:"moves"`
	Points            float64             `json:"points"`
	Prestige          int                 `json:"prestige"`
	PointsPerMove     float64             `json:"points_per_move"`
	RotationSpeed     float64             `json:"rotation_speed"`
	Upgrades          Upgrades            `json:"upgrades"`
	TimeLeftMs        int64               `json:"time_left_ms,omitempty"`
	PrestigeAvailable bool                `json:"prestige_available"`
	Offer             UpgradeKind         `json:"offer,omitempty"`
	Achievements      []AchievementStatus `json:"achievements"`
	Cells             []CellView          `json:"cells"`

	// Cube is a private copy for local renderers; Highlights is keyed by
	// cell ID.
	Cube       *neoncube.Cube  `json:"-"`
	Highlights map[int]float64 `json:"-"`
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		SessionID:         s.id,
		State:             s.state.String(),
		Size:              s.size,
		Theme:             s.theme.Name,
		Mode:              s.mode,
		Moves:             s.displayMoves(),
		Points:            s.points,
		Prestige:          s.prestige,
		PointsPerMove:     s.pointsPerMove,
		RotationSpeed:     s.rotationSpeed,
		Upgrades:          s.upgrades,
		TimeLeftMs:        s.timeLeft.Milliseconds(),
		PrestigeAvailable: s.canPrestige,
		Offer:             s.offer,
		Highlights:        make(map[int]float64),
	}

	for _, a := range Achievements {
		snap.Achievements = append(snap.Achievements, AchievementStatus{
			Achievement: a,
			Achieved:    s.unlocked[a.Key],
		})
	}

	if s.tracker == nil {
		return snap
	}

	cube := s.tracker.Cube()
	snap.Cube = cube.Clone()
	for _, cell := range cube.Cells() {
		h := s.highlight(cell)
		view := CellView{
			ID:        cell.ID(),
			Position:  cell.Position(),
			Colors:    cell.Colors(),
			Highlight: h,
		}
		for i, id := range view.Colors {
			view.Rendered[i] = s.theme.Hex(id, h)
		}
		if h != 0 {
			snap.Highlights[cell.ID()] = h
		}
		snap.Cells = append(snap.Cells, view)
	}

	return snap
}

// highlight is the cosmetic brightening for a cell. It never touches the
// logical colours.
func (s *Session) highlight(cell *neoncube.Cell) float64 {
	var h float64
	if s.vision && cell.IsEdge(s.size) {
		h += VisionHighlight
	}
	if s.hintLeft > 0 && cell.ID() == s.hintCell {
		h += HintHighlight
	}
	return h
}
