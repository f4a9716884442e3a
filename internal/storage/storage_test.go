package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/neoncube"
	"github.com/SeamusWaldron/neoncube/internal/game"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func record(session string, size, moves int, at time.Time) game.SolveRecord {
	return game.SolveRecord{
		SessionID: session,
		Size:      size,
		Mode:      game.ModeStandard,
		Theme:     "neon",
		Moves:     moves,
		Points:    float64(moves + 100),
		Prestige:  1,
		Scramble:  "x0 y+1'",
		Duration:  time.Duration(moves) * time.Second,
		SolvedAt:  at,
	}
}

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := db.CurrentVersion()
	if err != nil || v != 1 {
		t.Errorf("CurrentVersion() = %d, %v", v, err)
	}
	db.Close()

	// Reopening must not reapply migrations.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if db.Path() != path {
		t.Errorf("Path() = %q", db.Path())
	}
}

func TestSolveRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := repo.Create(record("s1", 3, 25, base))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(record("s1", 4, 40, base.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(record("s2", 3, 15, base.Add(2*time.Minute))); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(id)
	if err != nil || got == nil {
		t.Fatalf("Get: %v %v", got, err)
	}
	if got.Size != 3 || got.Moves != 25 || got.DurationMs != 25000 || !got.SolvedAt.Equal(base) {
		t.Errorf("Get() = %+v", got)
	}
	if got.ScrambleText == nil || *got.ScrambleText != "x0 y+1'" {
		t.Errorf("scramble = %v", got.ScrambleText)
	}

	missing, err := repo.Get("nope")
	if err != nil || missing != nil {
		t.Errorf("missing solve: %v %v", missing, err)
	}

	recent, err := repo.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].SessionID != "s2" {
		t.Errorf("List(2) = %+v", recent)
	}

	s1, err := repo.ListBySession("s1")
	if err != nil || len(s1) != 2 || s1[0].Size != 3 {
		t.Errorf("ListBySession = %+v, %v", s1, err)
	}

	stats, err := repo.StatsBySize()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats[0].Size != 3 || stats[0].Count != 2 || stats[0].BestMoves != 15 || stats[0].AvgMoves != 20 {
		t.Errorf("size 3 stats = %+v", stats[0])
	}

	var count int
	db.QueryRow("SELECT solve_count FROM sessions WHERE session_id = 's1'").Scan(&count)
	if count != 2 {
		t.Errorf("session solve_count = %d", count)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.Get(id); got != nil {
		t.Error("solve should be deleted")
	}
}

func TestMoveRepository(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := record("s1", 3, 2, base)
	rec.Solution = []neoncube.Move{
		{Axis: neoncube.AxisY, Layer: 1, Turn: neoncube.CCW, Time: base.Add(-2 * time.Second)},
		{Axis: neoncube.AxisX, Layer: 0, Turn: neoncube.CW, Time: base.Add(-500 * time.Millisecond)},
	}
	id, err := solves.Create(rec)
	if err != nil {
		t.Fatal(err)
	}

	records, err := moves.GetBySolve(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Notation != "y+1" || records[1].Notation != "x0'" {
		t.Fatalf("GetBySolve() = %+v", records)
	}

	got, err := ToMoves(records)
	if err != nil {
		t.Fatal(err)
	}
	if got[1].Axis != neoncube.AxisX || got[1].Turn != neoncube.CW || !got[1].Time.Equal(base.Add(-500*time.Millisecond)) {
		t.Errorf("ToMoves()[1] = %+v", got[1])
	}

	if _, err := ToMoves([]MoveRecord{{Notation: "w9"}}); err == nil {
		t.Error("ToMoves should reject bad notation")
	}

	if err := solves.Delete(id); err != nil {
		t.Fatal(err)
	}
	if n, err := moves.Count(id); err != nil || n != 0 {
		t.Errorf("moves after delete = %d, %v", n, err)
	}
}

func TestAchievementRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewAchievementRepository(db)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := repo.Create("s1", game.AchievementQuickSolve, at); err != nil {
		t.Fatal(err)
	}
	// Repeats are ignored.
	if err := repo.Create("s1", game.AchievementQuickSolve, at.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create("s2", game.AchievementQuickSolve, at.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create("s2", game.AchievementFlawless, at); err != nil {
		t.Fatal(err)
	}

	s1, err := repo.ListBySession("s1")
	if err != nil || len(s1) != 1 || !s1[0].UnlockedAt.Equal(at) {
		t.Errorf("ListBySession(s1) = %+v, %v", s1, err)
	}

	first, err := repo.FirstUnlocks()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 2 || first[0].Key != game.AchievementQuickSolve || !first[0].UnlockedAt.Equal(at.Add(-time.Hour)) {
		t.Errorf("FirstUnlocks() = %+v", first)
	}
}

func TestJournalWithSession(t *testing.T) {
	db := openTestDB(t)
	j := NewJournal(db)

	s := game.NewSession(game.WithJournal(j), game.WithMode(game.ModeChallenge))
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	for _, m := range neoncube.InvertMoves(s.Scramble()) {
		solved, err := s.Rotate(m)
		if err != nil {
			t.Fatal(err)
		}
		if solved {
			break
		}
	}

	solves, err := j.Solves.ListBySession(s.ID())
	if err != nil || len(solves) != 1 {
		t.Fatalf("journaled solves = %+v, %v", solves, err)
	}
	if solves[0].Mode != "challenge" || solves[0].Size != 3 {
		t.Errorf("solve = %+v", solves[0])
	}
	n, err := NewMoveRepository(db).Count(solves[0].SolveID)
	if err != nil || n != solves[0].Moves {
		t.Errorf("journaled moves = %d, %v; want %d", n, err, solves[0].Moves)
	}
	unlocks, err := j.Achievements.ListBySession(s.ID())
	if err != nil || len(unlocks) != 1 || unlocks[0].Key != game.AchievementQuickSolve {
		t.Errorf("unlocks = %+v, %v", unlocks, err)
	}
}
