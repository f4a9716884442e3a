// Package analysis derives statistics from the journaled moves of a solve.
package analysis

import (
	"time"

	"github.com/SeamusWaldron/neoncube"
)

// PauseThresholdMs is the gap between two moves counted as a pause.
const PauseThresholdMs = 1500

// SolveSummary contains statistics for a single solve.
type SolveSummary struct {
	DurationMs         int64   `json:"duration_ms"`
	TotalMoves         int     `json:"total_moves"`
	OptimizedMoves     int     `json:"optimized_moves"`
	Cancellations      int     `json:"cancellations"`
	Efficiency         float64 `json:"efficiency"`
	TPSOverall         float64 `json:"tps_overall"`
	LongestPauseMs     int64   `json:"longest_pause_ms"`
	PauseCountOver1500 int     `json:"pause_count_over_1500ms"`
	AvgMoveDurationMs  float64 `json:"avg_move_duration_ms"`
}

// PauseInfo represents a pause during solving.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
}

// Summarize builds the summary of a solve that took duration.
func Summarize(moves []neoncube.Move, duration time.Duration) *SolveSummary {
	durationMs := duration.Milliseconds()
	optimized := len(Optimize(moves))

	s := &SolveSummary{
		DurationMs:         durationMs,
		TotalMoves:         len(moves),
		OptimizedMoves:     optimized,
		Cancellations:      len(moves) - optimized,
		Efficiency:         1,
		TPSOverall:         CalculateTPS(moves, durationMs),
		LongestPauseMs:     FindLongestPause(moves),
		PauseCountOver1500: CountPausesOver(moves, PauseThresholdMs),
		AvgMoveDurationMs:  CalculateAvgMoveDuration(moves),
	}
	if len(moves) > 0 {
		s.Efficiency = float64(optimized) / float64(len(moves))
	}
	return s
}

// gapMs is the time between two moves, or 0 when either is untimed.
func gapMs(a, b neoncube.Move) int64 {
	if a.Time.IsZero() || b.Time.IsZero() {
		return 0
	}
	return b.Time.Sub(a.Time).Milliseconds()
}

// AnalyzePauses finds all pauses of at least thresholdMs.
func AnalyzePauses(moves []neoncube.Move, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(moves); i++ {
		gap := gapMs(moves[i-1], moves[i])
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second for a move sequence.
func CalculateTPS(moves []neoncube.Move, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(moves)) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []neoncube.Move) float64 {
	if len(moves) < 2 {
		return 0
	}
	return float64(gapMs(moves[0], moves[len(moves)-1])) / float64(len(moves)-1)
}

// FindLongestPause finds the longest gap in a move sequence.
func FindLongestPause(moves []neoncube.Move) int64 {
	var longest int64
	for i := 1; i < len(moves); i++ {
		if gap := gapMs(moves[i-1], moves[i]); gap > longest {
			longest = gap
		}
	}
	return longest
}

// CountPausesOver counts gaps longer than thresholdMs.
func CountPausesOver(moves []neoncube.Move, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		if gapMs(moves[i-1], moves[i]) > thresholdMs {
			count++
		}
	}
	return count
}

type turnGroup struct {
	axis  neoncube.Axis
	layer float64
	net   int // quarter turns CCW, mod 4
	first neoncube.Move
}

// Optimize merges consecutive turns of the same layer. A turn followed by
// its inverse disappears, three quarter turns become one the other way, and
// a cancelled group lets its neighbours merge in turn.
func Optimize(moves []neoncube.Move) []neoncube.Move {
	var stack []turnGroup

	for _, m := range moves {
		if n := len(stack); n > 0 && stack[n-1].axis == m.Axis && stack[n-1].layer == m.Layer {
			top := &stack[n-1]
			top.net = ((top.net+int(m.Turn))%4 + 4) % 4
			if top.net == 0 {
				stack = stack[:n-1]
			}
			continue
		}
		stack = append(stack, turnGroup{
			axis:  m.Axis,
			layer: m.Layer,
			net:   (int(m.Turn) + 4) % 4,
			first: m,
		})
	}

	var out []neoncube.Move
	for _, g := range stack {
		m := g.first
		switch g.net {
		case 1:
			m.Turn = neoncube.CCW
			out = append(out, m)
		case 3:
			m.Turn = neoncube.CW
			out = append(out, m)
		case 2:
			out = append(out, m, m)
		}
	}
	return out
}

// MovementProfile analyzes which axes and layers a solve turned.
type MovementProfile struct {
	AxisCounts    map[neoncube.Axis]int `json:"axis_counts"`
	TurnCounts    map[neoncube.Turn]int `json:"turn_counts"`
	LayerCounts   map[string]int        `json:"layer_counts"`   // e.g. "x+1" -> count
	AxisSequences map[string]int        `json:"axis_sequences"` // e.g. "xy" -> count
	MostUsedAxis  neoncube.Axis         `json:"most_used_axis"`
	MostUsedLayer string                `json:"most_used_layer"`
}

// AnalyzeMovementProfile counts axis, direction and layer usage.
func AnalyzeMovementProfile(moves []neoncube.Move) *MovementProfile {
	profile := &MovementProfile{
		AxisCounts:    make(map[neoncube.Axis]int),
		TurnCounts:    make(map[neoncube.Turn]int),
		LayerCounts:   make(map[string]int),
		AxisSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.AxisCounts[m.Axis]++
		profile.TurnCounts[m.Turn]++
		profile.LayerCounts[layerKey(m)]++

		if i > 0 {
			profile.AxisSequences[moves[i-1].Axis.String()+m.Axis.String()]++
		}
	}

	maxAxis := 0
	for _, axis := range []neoncube.Axis{neoncube.AxisX, neoncube.AxisY, neoncube.AxisZ} {
		if profile.AxisCounts[axis] > maxAxis {
			maxAxis = profile.AxisCounts[axis]
			profile.MostUsedAxis = axis
		}
	}

	maxLayer := 0
	for layer, count := range profile.LayerCounts {
		if count > maxLayer || (count == maxLayer && layer < profile.MostUsedLayer) {
			maxLayer = count
			profile.MostUsedLayer = layer
		}
	}

	return profile
}

// layerKey is the notation of m without its direction.
func layerKey(m neoncube.Move) string {
	m.Turn = neoncube.CCW
	return m.Notation()
}
