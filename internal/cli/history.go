package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/analysis"
	"github.com/SeamusWaldron/neoncube/internal/game"
	"github.com/SeamusWaldron/neoncube/internal/storage"
)

var (
	historyLimit       int
	historySession     string
	historyLastSession bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled solves",
	Long: `Display recent solves from the journal.

Use --session to list one session's solves in order, or --last to list
the solves of the most recent session.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <solve-id>",
	Short: "Show one solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-size statistics and achievements",
	RunE:  runHistoryStats,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a solve from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
	historyCmd.Flags().StringVar(&historySession, "session", "", "Only list solves from this session")
	historyCmd.Flags().BoolVar(&historyLastSession, "last", false, "Only list solves from the last session played")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

func openJournal() (*storage.DB, *game.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	db, err := openDB(settings)
	if err != nil {
		return nil, nil, err
	}
	return db, settings, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, settings, err := openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID := historySession
	if historyLastSession {
		sessionID = settings.Preferences().LastSessionID
		if sessionID == "" {
			return fmt.Errorf("no session has been played yet")
		}
	}

	repo := storage.NewSolveRepository(db)
	var solves []storage.Solve
	if sessionID != "" {
		solves, err = repo.ListBySession(sessionID)
	} else {
		solves, err = repo.List(historyLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet")
		fmt.Fprintln(out, "Start playing with: neoncube play")
		return nil
	}

	fmt.Fprintf(out, "Solves (showing %d):\n\n", len(solves))
	fmt.Fprintf(out, "%-36s  %-20s  %-5s  %-9s  %-6s  %-10s  %s\n", "ID", "Solved", "Size", "Mode", "Moves", "Time", "Points")
	fmt.Fprintln(out, "------------------------------------  --------------------  -----  ---------  ------  ----------  ------")
	for _, s := range solves {
		fmt.Fprintf(out, "%-36s  %-20s  %-5s  %-9s  %-6d  %-10s  %.1f\n",
			s.SolveID,
			s.SolvedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%dx%d", s.Size, s.Size),
			s.Mode,
			s.Moves,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
			s.Points,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, _, err := openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := storage.NewSolveRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Solve Details")
	fmt.Fprintln(out, "=============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:       %s\n", solve.SolveID)
	fmt.Fprintf(out, "Session:  %s\n", solve.SessionID)
	fmt.Fprintf(out, "Solved:   %s\n", solve.SolvedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Cube:     %dx%dx%d (%s, %s)\n", solve.Size, solve.Size, solve.Size, solve.Mode, solve.Theme)
	fmt.Fprintf(out, "Moves:    %d\n", solve.Moves)
	fmt.Fprintf(out, "Time:     %s\n", formatDuration(time.Duration(solve.DurationMs)*time.Millisecond))
	fmt.Fprintf(out, "Points:   %.1f (prestige x%d)\n", solve.Points, solve.Prestige)
	if solve.ScrambleText != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *solve.ScrambleText)
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}
	if len(moves) > 0 {
		printAnalysis(out, moves, time.Duration(solve.DurationMs)*time.Millisecond)
	}
	return nil
}

func printAnalysis(out io.Writer, moves []neoncube.Move, duration time.Duration) {
	summary := analysis.Summarize(moves, duration)
	profile := analysis.AnalyzeMovementProfile(moves)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Analysis")
	fmt.Fprintln(out, "--------")
	fmt.Fprintf(out, "Solution:    %s\n", neoncube.FormatMoves(moves))
	fmt.Fprintf(out, "Turns:       %d (%d after merging, %d cancelled)\n",
		summary.TotalMoves, summary.OptimizedMoves, summary.Cancellations)
	fmt.Fprintf(out, "Efficiency:  %.0f%%\n", summary.Efficiency*100)
	fmt.Fprintf(out, "TPS:         %.2f\n", summary.TPSOverall)
	fmt.Fprintf(out, "Pauses:      %d over %.1fs, longest %s\n",
		summary.PauseCountOver1500, float64(analysis.PauseThresholdMs)/1000,
		formatDuration(time.Duration(summary.LongestPauseMs)*time.Millisecond))
	fmt.Fprintf(out, "Busiest:     axis %s, layer %s\n", profile.MostUsedAxis, profile.MostUsedLayer)

	report := analysis.MineNGrams(moves, 3, 6, 1)
	for n := 6; n >= 3; n-- {
		top, ok := report.TopNGrams[n]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "Repeated:    %s (x%d)\n", strings.Join(top[0].Sequence, " "), top[0].Count)
		break
	}
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	db, _, err := openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := storage.NewSolveRepository(db).StatsBySize()
	if err != nil {
		return err
	}
	unlocks, err := storage.NewAchievementRepository(db).FirstUnlocks()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Statistics")
	fmt.Fprintln(out, "----------")
	if len(stats) == 0 {
		fmt.Fprintln(out, "No solves recorded yet")
	}
	for _, st := range stats {
		fmt.Fprintf(out, "%dx%dx%d: %d solves, best %d moves, avg %.1f moves, fastest %s\n",
			st.Size, st.Size, st.Size, st.Count, st.BestMoves, st.AvgMoves,
			formatDuration(time.Duration(st.BestTimeMs)*time.Millisecond))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Achievements")
	fmt.Fprintln(out, "------------")
	first := make(map[string]time.Time)
	for _, u := range unlocks {
		first[u.Key] = u.UnlockedAt
	}
	for _, a := range game.Achievements {
		if at, ok := first[a.Key]; ok {
			fmt.Fprintf(out, "[x] %-14s %s (first %s)\n", a.Name, a.Description, at.Local().Format("2006-01-02"))
		} else {
			fmt.Fprintf(out, "[ ] %-14s %s\n", a.Name, a.Description)
		}
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, _, err := openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSolveRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted solve %s\n", args[0])
	return nil
}
