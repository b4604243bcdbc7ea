package preferences

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func (s *SQLiteStore) setRaw(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO preferences(key, value, updated_at) VALUES(?,?,?)`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != (Preferences{}) {
		t.Errorf("Load() = %+v, want zero preferences", got)
	}
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := Preferences{DarkMode: true, FavoriteCity: "Lisboa"}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSQLiteStore_SaveIsIdempotentOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	steps := []Preferences{
		{DarkMode: true, FavoriteCity: "Lisboa"},
		{DarkMode: true, FavoriteCity: "Lisboa"},
		{DarkMode: false, FavoriteCity: "Porto"},
		{DarkMode: false},
	}

	for _, step := range steps {
		if err := s.Save(ctx, step); err != nil {
			t.Fatalf("Save(%+v) failed: %v", step, err)
		}
		got, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != step {
			t.Errorf("after Save(%+v) Load() = %+v", step, got)
		}
	}
}

func TestSQLiteStore_UnparseableDarkMode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.setRaw(ctx, KeyDarkMode, "yes please"); err != nil {
		t.Fatalf("setRaw failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.DarkMode {
		t.Errorf("DarkMode = true, want false for unparseable value")
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	if err := s.Save(ctx, Preferences{DarkMode: true, FavoriteCity: "Recife"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_ = s.Close()

	s, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite (reopen) failed: %v", err)
	}
	defer func() {
		_ = s.Close()
	}()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.FavoriteCity != "Recife" || !got.DarkMode {
		t.Errorf("Load() after reopen = %+v", got)
	}
}
