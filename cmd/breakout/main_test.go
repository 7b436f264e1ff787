package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--log-level", "error")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"breakout", "breakout_endless", "Breakout (Endless)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output should contain %q:\n%s", want, out)
		}
	}
}

func TestLevelsCommandBuiltin(t *testing.T) {
	out, err := execute(t, "levels", "--log-level", "error")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	if !strings.Contains(out, "01-classic") || !strings.Contains(out, "05-fortress") {
		t.Errorf("levels output should list the built-in pack:\n%s", out)
	}
}

func TestLevelsCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.level"), []byte("##.\n.#\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "levels", dir, "--log-level", "error")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	if !strings.Contains(out, "3x2") {
		t.Errorf("levels output should report a 3x2 grid:\n%s", out)
	}
	if !strings.Contains(out, "Play order: a\n") {
		t.Errorf("levels output should end with the play order:\n%s", out)
	}

	if err := os.WriteFile(filepath.Join(dir, "b.level"), []byte("...\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "levels", dir, "--log-level", "error"); err == nil {
		t.Error("a level without blocks should fail validation")
	}
}

func TestLevelsCommandSingleFile(t *testing.T) {
	dir := t.TempDir()
	for name, grid := range map[string]string{"a.level": "##.\n.#\n", "b.level": "#\n"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(grid), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	out, err := execute(t, "levels", filepath.Join(dir, "a.level"), "--log-level", "error")
	if err != nil {
		t.Fatalf("levels error = %v", err)
	}
	if !strings.Contains(out, "3x2") || !strings.Contains(out, "Play order: a\n") {
		t.Errorf("levels output should describe only a.level:\n%s", out)
	}

	if _, err := execute(t, "levels", filepath.Join(dir, "missing.level"), "--log-level", "error"); err == nil {
		t.Error("a missing level file should fail")
	}
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "breakout", Player: "alice", Score: 70, Level: 3}); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}
	store.Close()

	out, err := execute(t, "scores", "--db", db, "--log-level", "error")
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "Best: 70") {
		t.Errorf("scores output should list alice's run:\n%s", out)
	}

	if _, err := execute(t, "scores", "clear", "breakout", "--db", db, "--log-level", "error"); err != nil {
		t.Fatalf("scores clear error = %v", err)
	}
	out, err = execute(t, "scores", "--db", db, "--log-level", "error")
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("scores should be empty after clear:\n%s", out)
	}
}

func TestScoresUnknownGame(t *testing.T) {
	if _, err := execute(t, "scores", "pong", "--log-level", "error"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}
