package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"github.com/claude/fitcoach/internal/models"
)

// ChatStore holds coach transcripts keyed by username and mirrors them to a
// JSON file, rewritten wholesale on every exchange and on clear.
type ChatStore struct {
	path  string
	mu    sync.Mutex
	chats map[string]models.Transcript
}

// NewChatStore creates an empty store for path.
func NewChatStore(path string) *ChatStore {
	return &ChatStore{path: path, chats: make(map[string]models.Transcript)}
}

// Path returns the transcript file location.
func (s *ChatStore) Path() string { return s.path }

// Load replaces the in-memory transcripts with the file contents. A missing
// file is written out empty.
func (s *ChatStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw map[string]models.Transcript
	err := readJSON(s.path, &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return s.saveLocked()
	}
	if err != nil {
		return fmt.Errorf("loading chats: %w", err)
	}

	chats := make(map[string]models.Transcript, len(raw))
	for name, t := range raw {
		if t == nil {
			t = models.Transcript{}
		}
		chats[name] = t
	}
	s.chats = chats
	return nil
}

// Save writes all transcripts to disk.
func (s *ChatStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *ChatStore) saveLocked() error {
	if err := writeJSON(s.path, s.chats); err != nil {
		return fmt.Errorf("saving chats: %w", err)
	}
	return nil
}

// Transcript returns a copy of the user's transcript (empty if none).
func (s *ChatStore) Transcript(username string) models.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := slices.Clone(s.chats[username])
	if t == nil {
		t = models.Transcript{}
	}
	return t
}

// AppendExchange appends one user turn and its coach reply together, so the
// transcript length stays even.
func (s *ChatStore) AppendExchange(username, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[username] = append(s.chats[username], question, answer)
	return s.saveLocked()
}

// Clear empties the user's transcript. Other users are untouched.
func (s *ChatStore) Clear(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[username] = models.Transcript{}
	return s.saveLocked()
}
