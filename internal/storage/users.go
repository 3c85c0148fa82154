package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"github.com/claude/fitcoach/internal/models"
)

// ErrUserNotFound is returned when an operation names an unknown username.
var ErrUserNotFound = errors.New("user not found")

// UserStore is the user registry: credentials plus each user's saved workouts.
// The in-memory map is authoritative while the process runs; the JSON file is
// its snapshot and is rewritten wholesale on every mutation.
//
// The mutex serialises access within this process only. Two processes sharing
// the same file still race and the later write wins.
type UserStore struct {
	path  string
	mu    sync.Mutex
	users map[string]models.User
}

// NewUserStore creates a store for path holding seed until Load is called.
func NewUserStore(path string, seed map[string]models.User) *UserStore {
	users := make(map[string]models.User, len(seed))
	for name, u := range seed {
		users[name] = normalizeUser(name, u)
	}
	return &UserStore{path: path, users: users}
}

// Path returns the registry file location.
func (s *UserStore) Path() string { return s.path }

// Load replaces the in-memory registry with the file contents. A missing file
// is treated as first run: the current (seed) registry is written out.
// On any other fault the in-memory registry is left untouched.
func (s *UserStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw map[string]models.User
	err := readJSON(s.path, &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return s.saveLocked()
	}
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	users := make(map[string]models.User, len(raw))
	for name, u := range raw {
		users[name] = normalizeUser(name, u)
	}
	s.users = users
	return nil
}

// Save writes the whole registry to disk.
func (s *UserStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *UserStore) saveLocked() error {
	if err := writeJSON(s.path, s.users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

// Get returns a copy of the named user.
func (s *UserStore) Get(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return models.User{}, false
	}
	u.Workouts = slices.Clone(u.Workouts)
	return u, true
}

// Usernames returns all registered usernames, sorted.
func (s *UserStore) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.users))
}

// AppendWorkout appends w to the user's history and rewrites the registry file.
// If the write fails the workout stays in memory and the error is returned.
func (s *UserStore) AppendWorkout(username string, w models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	u.Workouts = append(u.Workouts, w)
	s.users[username] = u
	return s.saveLocked()
}

func normalizeUser(name string, u models.User) models.User {
	u.Username = name
	if u.Workouts == nil {
		u.Workouts = []models.Workout{}
	}
	return u
}
