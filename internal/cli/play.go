package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/anim"
	"github.com/SeamusWaldron/neoncube/internal/audio"
	"github.com/SeamusWaldron/neoncube/internal/game"
	"github.com/SeamusWaldron/neoncube/internal/smartcube"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the arcade in an interactive terminal UI.

Keyboard shortcuts:
  Up/Down     - Turn the selected layer about x
  Left/Right  - Turn the selected layer about y
  q/e         - Turn the selected layer about z
  Tab/S-Tab   - Select the next/previous layer (starts in the middle)
  h           - Hint (costs 50 points)
  u           - Accept the offered upgrade
  p           - Prestige (after solving the largest cube)
  t           - Next theme
  m           - Next mode
  +/-         - Volume up/down
  x           - Mute
  Esc/Ctrl+C  - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	addGameFlags(playCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gameTheme, "theme", "", "Theme (neon, tron, matrix)")
	cmd.Flags().StringVar(&gameMode, "mode", "", "Mode (standard, timed, challenge)")
	cmd.Flags().StringVar(&gameServe, "serve", "", "Serve the renderer feed on this address (e.g. :8080)")
	cmd.Flags().BoolVar(&gameMute, "mute", false, "Disable audio")
	cmd.Flags().Int64Var(&gameSeed, "seed", 0, "Random seed for reproducible scrambles")
}

const (
	tickInterval = 50 * time.Millisecond
	volumeStep   = 0.1
)

// Messages
type tickMsg time.Time
type eventMsg game.Event

// Model
type playModel struct {
	session  *game.Session
	settings *game.Settings
	audio    *audio.Player
	logger   logrus.FieldLogger

	events   chan game.Event
	player   anim.Player
	lastTick time.Time

	// Smart cube, when connected
	bridge *smartcube.Bridge
	device string

	layer    int // selected layer index
	muted    bool
	status   string
	err      error
	quitting bool
}

func newPlayModel(a *arcade) *playModel {
	m := &playModel{
		session:  a.session,
		settings: a.settings,
		audio:    a.audio,
		logger:   a.logger,
		events:   make(chan game.Event, 256),
		muted:    a.settings.Preferences().Muted || gameMute,
	}
	m.layer = a.session.Size() / 2

	a.session.Subscribe(func(e game.Event) {
		select {
		case m.events <- e:
		default:
			// Channel full, drop event
		}
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tea.Batch(m.tickCmd(), m.listenForEvents())
}

func (m *playModel) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-m.events)
	}
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tickMsg:
		now := time.Time(msg)
		d := now.Sub(m.lastTick)
		m.lastTick = now
		if err := m.session.Tick(d); err != nil {
			m.err = err
		}
		m.player.Advance(d)
		return m, m.tickCmd()

	case eventMsg:
		m.handleEvent(game.Event(msg))
		return m, m.listenForEvents()
	}

	return m, nil
}

func (m *playModel) handleKey(key string) tea.Cmd {
	m.err = nil

	switch key {
	case "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "up":
		m.rotate(neoncube.AxisX, neoncube.CCW)
	case "down":
		m.rotate(neoncube.AxisX, neoncube.CW)
	case "left":
		m.rotate(neoncube.AxisY, neoncube.CCW)
	case "right":
		m.rotate(neoncube.AxisY, neoncube.CW)
	case "q":
		m.rotate(neoncube.AxisZ, neoncube.CCW)
	case "e":
		m.rotate(neoncube.AxisZ, neoncube.CW)

	case "tab", "]":
		m.layer = (m.layer + 1) % m.session.Size()
	case "shift+tab", "[":
		size := m.session.Size()
		m.layer = (m.layer + size - 1) % size

	case "h":
		if _, err := m.session.Hint(); err != nil {
			m.err = err
		}
	case "u":
		if _, err := m.session.AcceptUpgrade(); err != nil {
			m.err = err
		}
	case "p":
		if err := m.session.Prestige(); err != nil {
			m.err = err
		}
	case "t":
		m.nextTheme()
	case "m":
		mode := m.session.Mode().Next()
		if err := m.session.SetMode(mode); err != nil {
			m.err = err
		} else if err := m.settings.SetMode(mode); err != nil {
			m.logger.WithError(err).Warn("failed to save settings")
		}

	case "+", "=":
		m.setVolume(m.audio.Volume()+volumeStep, m.muted)
	case "-":
		m.setVolume(m.audio.Volume()-volumeStep, m.muted)
	case "x":
		m.setVolume(m.audio.Volume(), !m.muted)
	}
	return nil
}

// rotate turns the selected layer. Size changes between key presses can
// leave the selection out of range, so it is clamped first.
func (m *playModel) rotate(axis neoncube.Axis, turn neoncube.Turn) {
	size := m.session.Size()
	if m.layer >= size {
		m.layer = size - 1
	}
	move := neoncube.Move{Axis: axis, Layer: neoncube.LayerOffset(size, m.layer), Turn: turn}
	if _, err := m.session.Rotate(move); err != nil {
		m.err = err
	}
}

func (m *playModel) nextTheme() {
	names := neoncube.ThemeNames()
	current := m.session.Snapshot().Theme
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := m.session.SetTheme(next); err != nil {
		m.err = err
		return
	}
	if err := m.settings.SetTheme(next); err != nil {
		m.logger.WithError(err).Warn("failed to save settings")
	}
}

func (m *playModel) setVolume(volume float64, muted bool) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	m.muted = muted
	m.audio.SetVolume(volume, muted)
	if err := m.settings.SetVolume(volume, muted); err != nil {
		m.logger.WithError(err).Warn("failed to save settings")
	}
}

func (m *playModel) handleEvent(e game.Event) {
	switch e.Type {
	case game.EventMoveApplied:
		if e.Move != nil {
			m.player.Start(m.session.Snapshot().Cube, *e.Move)
		}
	case game.EventSolved:
		m.status = fmt.Sprintf("Solved the %dx%dx%d in %d moves!", e.Size, e.Size, e.Size, e.Moves)
	case game.EventAchievementUnlocked:
		name := e.Achievement
		for _, a := range game.Achievements {
			if a.Key == e.Achievement {
				name = a.Name
			}
		}
		m.status = fmt.Sprintf("Achievement unlocked: %s", name)
	case game.EventTimeUp:
		m.status = "Time up! New cube."
	case game.EventPrestiged:
		m.status = fmt.Sprintf("Prestige x%d", e.Prestige)
	case game.EventUpgradeApplied:
		m.status = fmt.Sprintf("Upgrade applied: %s", e.Upgrade)
	case game.EventReset:
		m.player.Reset()
		m.layer = e.Size / 2
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("NEON CUBE"))
	b.WriteString("\n")
	if m.bridge != nil {
		status := fmt.Sprintf("Connected: %s", m.device)
		if battery := m.bridge.Battery(); battery >= 0 {
			status += fmt.Sprintf(" (Battery: %d%%)", battery)
		}
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderNet(snap))
	b.WriteString("\n")
	b.WriteString(renderHUD(snap))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Layer: %d/%d (offset %+g)", m.layer+1, snap.Size, neoncube.LayerOffset(snap.Size, min(m.layer, snap.Size-1)))
	if rot := m.player.Current(); rot != nil {
		fmt.Fprintf(&b, "   %s %s", moveStyle.Render(rot.Move().Notation()), progressBar(rot.Progress(), 10))
	}
	b.WriteString("\n")

	if snap.Offer != "" {
		b.WriteString(moveStyle.Render(fmt.Sprintf("Upgrade offered: %s (%s) - press u", snap.Offer, snap.Offer.Description())))
		b.WriteString("\n")
	}
	if snap.PrestigeAvailable {
		b.WriteString(moveStyle.Render("Prestige available - press p"))
		b.WriteString("\n")
	}
	b.WriteString(renderAchievements(snap))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(moveStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	volume := fmt.Sprintf("vol %.0f%%", m.audio.Volume()*100)
	if m.muted {
		volume = "muted"
	}
	b.WriteString(helpStyle.Render("arrows/q/e=turn tab=layer h=hint u=upgrade p=prestige t=theme m=mode +/-/x=" + volume + " esc=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newArcade()
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(newPlayModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
