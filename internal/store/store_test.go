package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/tuimul/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tuimul.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestLoadPreferencesEmpty(t *testing.T) {
	st := openTestStore(t)
	_, ok, err := st.LoadPreferences(context.Background())
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	if ok {
		t.Fatalf("expected no stored preferences")
	}
}

func TestSaveAndLoadPreferences(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SavePreferences(ctx, model.Preferences{Table: 4, Questions: "10"}); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	if err := st.SavePreferences(ctx, model.Preferences{Table: 9, Questions: "All"}); err != nil {
		t.Fatalf("overwrite preferences: %v", err)
	}

	prefs, ok, err := st.LoadPreferences(ctx)
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored preferences")
	}
	if prefs.Table != 9 || prefs.Questions != "All" {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
}

func TestReopenKeepsPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuimul.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.SavePreferences(context.Background(), model.Preferences{Table: 2, Questions: "5"}); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()
	prefs, ok, err := st.LoadPreferences(context.Background())
	if err != nil || !ok {
		t.Fatalf("load after reopen: ok=%v err=%v", ok, err)
	}
	if prefs.Table != 2 || prefs.Questions != "5" {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
}
