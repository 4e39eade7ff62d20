package daily

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/numguess/internal/db"
	"github.com/robalobadob/numguess/internal/secret"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	tm := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(tm); got != "2026-03-01" {
		t.Errorf("DateKey = %s, want 2026-03-01", got)
	}
}

func TestTargetDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	a := Target(day, "salt", secret.Min, secret.Max)
	if b := Target(later, "salt", secret.Min, secret.Max); a != b {
		t.Errorf("same day gave %d and %d", a, b)
	}
	for i := 0; i < 365; i++ {
		d := day.AddDate(0, 0, i)
		v := Target(d, "salt", secret.Min, secret.Max)
		if v < secret.Min || v > secret.Max {
			t.Fatalf("Target(%s) = %d out of range", DateKey(d), v)
		}
	}
	var src secret.Source = Source{Date: day, Salt: "salt"}
	if got, err := secret.Draw(src); err != nil || got != a {
		t.Errorf("Source draw = %d, %v, want %d", got, err, a)
	}
}

func TestTargetDegenerate(t *testing.T) {
	if got := Target(time.Now(), "x", 4, 4); got != 4 {
		t.Errorf("Target over [4,4] = %d", got)
	}
}

func TestStore(t *testing.T) {
	sqlDB, err := db.OpenAndMigrate(filepath.Join(t.TempDir(), "daily.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()
	ctx := context.Background()
	st := NewStore(sqlDB)

	played, err := st.AlreadyPlayed(ctx, "u1", "2026-10-19")
	if err != nil || played {
		t.Fatalf("AlreadyPlayed before insert = %v, %v", played, err)
	}

	results := []Result{
		{UserID: "u1", Date: "2026-10-19", Target: 40, Attempts: 5, ElapsedMs: 1000},
		{UserID: "u2", Date: "2026-10-19", Target: 40, Attempts: 3, ElapsedMs: 9000},
		{UserID: "u3", Date: "2026-10-19", Target: 40, Attempts: 3, ElapsedMs: 2000},
		{UserID: "u1", Date: "2026-10-19", Target: 40, Attempts: 1, ElapsedMs: 1},
		{UserID: "u4", Date: "2026-10-18", Target: 12, Attempts: 1, ElapsedMs: 1},
	}
	for i, r := range results {
		inserted, err := st.InsertResult(ctx, r)
		if err != nil {
			t.Fatalf("InsertResult(%+v): %v", r, err)
		}
		// the fourth result repeats u1 on the same day
		if wantNew := i != 3; inserted != wantNew {
			t.Errorf("InsertResult(%+v) inserted = %v, want %v", r, inserted, wantNew)
		}
	}

	played, err = st.AlreadyPlayed(ctx, "u1", "2026-10-19")
	if err != nil || !played {
		t.Errorf("AlreadyPlayed after insert = %v, %v", played, err)
	}

	rows, err := st.Leaderboard(ctx, "2026-10-19", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"u3", "u2", "u1"}
	if len(rows) != len(want) {
		t.Fatalf("leaderboard = %+v", rows)
	}
	for i, id := range want {
		if rows[i].UserID != id || rows[i].Rank != i+1 {
			t.Errorf("row %d = %+v, want %s at rank %d", i, rows[i], id, i+1)
		}
	}
	if rows[2].Attempts != 5 {
		t.Errorf("duplicate insert overwrote first result: %+v", rows[2])
	}
}
