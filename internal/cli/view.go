package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/game"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const cellGlyph = "██"

// renderNet draws the unfolded cube with each sticker in its rendered theme
// colour, highlights included.
func renderNet(snap game.Snapshot) string {
	cube := snap.Cube
	if cube == nil {
		return ""
	}
	n := cube.Size()
	theme := cube.Theme()
	pad := strings.Repeat("  ", n)

	var grids [6][][]*neoncube.Cell
	for _, face := range neoncube.Slots {
		grids[face] = cube.FaceCells(face)
	}

	var b strings.Builder
	writeRow := func(face neoncube.Slot, row int) {
		for _, cell := range grids[face][row] {
			hex := theme.Hex(cell.Color(face), snap.Highlights[cell.ID()])
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(cellGlyph))
		}
	}

	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(neoncube.SlotPosY, row)
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		for _, face := range []neoncube.Slot{neoncube.SlotNegX, neoncube.SlotPosZ, neoncube.SlotPosX, neoncube.SlotNegZ} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < n; row++ {
		b.WriteString(pad)
		writeRow(neoncube.SlotNegY, row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderHUD is the score panel.
func renderHUD(snap game.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Size: %dx%dx%d   Mode: %s   Theme: %s\n", snap.Size, snap.Size, snap.Size, snap.Mode, snap.Theme)
	fmt.Fprintf(&b, "Moves: %d   Points: %.1f   Prestige: x%d\n", snap.Moves, snap.Points, snap.Prestige)
	if snap.Mode == game.ModeTimed {
		fmt.Fprintf(&b, "Time left: %.1fs\n", float64(snap.TimeLeftMs)/1000)
	}
	fmt.Fprintf(&b, "Upgrades: efficiency %d  vision %d  speed %d\n",
		snap.Upgrades.Efficiency, snap.Upgrades.Vision, snap.Upgrades.Speed)
	return hudStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderAchievements(snap game.Snapshot) string {
	var parts []string
	for _, a := range snap.Achievements {
		mark := "[ ]"
		if a.Achieved {
			mark = "[x]"
		}
		parts = append(parts, fmt.Sprintf("%s %s", mark, a.Name))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

// progressBar draws a fixed-width bar for t in [0, 1].
func progressBar(t float64, width int) string {
	filled := int(t*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
