// Package session tracks per-client navigation state.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/fitcoach/internal/models"
)

// Page is a navigation state.
type Page string

const (
	PageLogin    Page = "login"
	PageHome     Page = "home"
	PageGenerate Page = "generate_workout"
	PageHistory  Page = "workout_history"
	PageCoach    Page = "fitness_coach"
)

// AppPages are the pages reachable by navigation once logged in, in menu order.
var AppPages = []Page{PageHome, PageGenerate, PageHistory, PageCoach}

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownPage      = errors.New("unknown page")
)

// ParsePage validates a navigation target. Only AppPages are accepted.
func ParsePage(s string) (Page, error) {
	for _, p := range AppPages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", ErrUnknownPage
}

// NoticeKind styles a one-shot message shown on the next render.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// Pending is the most recent generated plan that has not been discarded.
type Pending struct {
	Spec        models.WorkoutSpec
	GeneratedAt time.Time
	SavedID     string
}

// Session is one client's state. Callers hold Lock for the duration of an
// action so a single user's actions apply in submission order.
type Session struct {
	ID string

	mu         sync.Mutex
	loggedIn   bool
	username   string
	page       Page
	pending    *Pending
	notice     *Notice
	loginError string
	lastSeen   time.Time
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:       uuid.New().String(),
		page:     PageLogin,
		lastSeen: now,
	}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) LoggedIn() bool   { return s.loggedIn }
func (s *Session) Username() string { return s.username }
func (s *Session) Page() Page       { return s.page }
func (s *Session) Pending() *Pending {
	return s.pending
}

// Login records a successful credential check: login → home.
func (s *Session) Login(username string) {
	s.loggedIn = true
	s.username = username
	s.page = PageHome
	s.loginError = ""
}

// FailLogin records a rejected credential check. State stays at login.
func (s *Session) FailLogin(msg string) {
	s.loginError = msg
}

// Navigate moves an authenticated session to p.
func (s *Session) Navigate(p Page) error {
	if !s.loggedIn {
		return ErrNotAuthenticated
	}
	if _, err := ParsePage(string(p)); err != nil {
		return err
	}
	s.page = p
	return nil
}

// Logout returns to login and drops the identity, the pending plan and any
// queued messages.
func (s *Session) Logout() {
	s.loggedIn = false
	s.username = ""
	s.page = PageLogin
	s.pending = nil
	s.notice = nil
	s.loginError = ""
}

// SetPending replaces the pending plan.
func (s *Session) SetPending(spec models.WorkoutSpec, at time.Time) {
	s.pending = &Pending{Spec: spec, GeneratedAt: at}
}

// ClearPending drops the pending plan.
func (s *Session) ClearPending() { s.pending = nil }

// MarkPendingSaved records the id the pending plan was saved under.
func (s *Session) MarkPendingSaved(id string) {
	if s.pending != nil {
		s.pending.SavedID = id
	}
}

// Flash queues a notice for the next render.
func (s *Session) Flash(kind NoticeKind, text string) {
	s.notice = &Notice{Kind: kind, Text: text}
}

// TakeNotice returns and clears the queued notice.
func (s *Session) TakeNotice() *Notice {
	n := s.notice
	s.notice = nil
	return n
}

// TakeLoginError returns and clears the last login failure message.
func (s *Session) TakeLoginError() string {
	msg := s.loginError
	s.loginError = ""
	return msg
}
