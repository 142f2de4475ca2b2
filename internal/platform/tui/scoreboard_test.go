package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{Player: "alice", Score: 120, MaxSpeed: 8.5, Difficulty: "normal"},
		{Player: "bob", Score: 300, MaxSpeed: 9.0, Difficulty: "hard"},
		{Player: "carol", Score: 50, MaxSpeed: 8.0, Difficulty: "easy"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestRunRows(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := runRows([]storage.Run{
		{Player: "alice", Score: 321, MaxSpeed: 9.5, Difficulty: "hard", CreatedAt: at},
		{Score: 12, MaxSpeed: 8},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []string{"#1", "alice", "321", "9.5", "hard", "Mar 05 14:30"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 column %d = %q, expected %q", i, cell, want[i])
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "-" || rows[1][4] != "custom" {
		t.Errorf("row 1 = %v, expected rank #2 with placeholder player and mode", rows[1])
	}
}

func TestScoreboardTopAndRecent(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)

	tests := []struct {
		name    string
		players []string
	}{
		{"top", []string{"bob", "alice", "carol"}},
		{"recent", []string{"carol", "bob", "alice"}},
		{"top again", []string{"bob", "alice", "carol"}},
	}

	for i, tt := range tests {
		if i > 0 {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
			m = next.(ScoreboardModel)
		}
		rows := m.table.Rows()
		if len(rows) != len(tt.players) {
			t.Fatalf("%s: expected %d rows, got %d", tt.name, len(tt.players), len(rows))
		}
		for j, p := range tt.players {
			if rows[j][1] != p {
				t.Errorf("%s: row %d player = %q, expected %q", tt.name, j, rows[j][1], p)
			}
		}
	}
}

func TestScoreboardView(t *testing.T) {
	out := NewScoreboardModel(seededStore(t), 100, 30).View()

	for _, want := range []string{"3 runs", "best 300", "bob", "alice"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestScoreboardMessages(t *testing.T) {
	off := NewScoreboardModel(nil, 80, 24).View()
	if !strings.Contains(off, "Run history is off") {
		t.Errorf("nil store should explain history is off:\n%s", off)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty := NewScoreboardModel(store, 80, 24).View()
	if !strings.Contains(empty, "No runs recorded yet") {
		t.Errorf("empty store should say so:\n%s", empty)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
