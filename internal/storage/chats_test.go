package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/claude/fitcoach/internal/models"
)

func newTestChatStore(t *testing.T) *ChatStore {
	t.Helper()
	s := NewChatStore(filepath.Join(t.TempDir(), "chat_data.json"))
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

// TestAppendExchangeKeepsEvenLength verifies that turns are appended in pairs.
func TestAppendExchangeKeepsEvenLength(t *testing.T) {
	s := newTestChatStore(t)
	if err := s.AppendExchange("Zach", "How many sets?", "Three."); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendExchange("Zach", "Rest?", "60 seconds."); err != nil {
		t.Fatalf("append: %v", err)
	}
	got := s.Transcript("Zach")
	want := models.Transcript{"How many sets?", "Three.", "Rest?", "60 seconds."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transcript = %v, want %v", got, want)
	}
}

// TestClearTranscript verifies that clearing one user's transcript empties it,
// persists the empty sequence, and leaves other users untouched.
func TestClearTranscript(t *testing.T) {
	s := newTestChatStore(t)
	if err := s.AppendExchange("Zach", "q1", "a1"); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendExchange("Mal", "q2", "a2"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear("Zach"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := s.Transcript("Zach"); len(got) != 0 {
		t.Errorf("Zach transcript = %v, want empty", got)
	}
	if got := s.Transcript("Mal"); len(got) != 2 {
		t.Errorf("Mal transcript = %v, want 2 turns", got)
	}

	reloaded := NewChatStore(s.Path())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	zach := reloaded.Transcript("Zach")
	if zach == nil || len(zach) != 0 {
		t.Errorf("reloaded Zach transcript = %#v, want empty", zach)
	}
	if got := reloaded.Transcript("Mal"); !reflect.DeepEqual(got, models.Transcript{"q2", "a2"}) {
		t.Errorf("reloaded Mal transcript = %v", got)
	}
}

// TestTranscriptUnknownUser verifies that a user without history gets an empty transcript.
func TestTranscriptUnknownUser(t *testing.T) {
	s := newTestChatStore(t)
	got := s.Transcript("nobody")
	if got == nil || len(got) != 0 {
		t.Errorf("transcript = %#v, want empty non-nil", got)
	}
}
