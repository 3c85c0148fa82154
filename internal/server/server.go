// Package server serves the dashboard pages and the optional MCP endpoint.
package server

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/claude/fitcoach/internal/auth"
	"github.com/claude/fitcoach/internal/models"
	"github.com/claude/fitcoach/internal/session"
	"github.com/claude/fitcoach/internal/storage"
)

// Trainer produces workout plans and coach replies.
type Trainer interface {
	GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (models.WorkoutSpec, error)
	Ask(ctx context.Context, transcript models.Transcript, question string) (string, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	users    *storage.UserStore
	chats    *storage.ChatStore
	auth     auth.Authenticator
	trainer  Trainer
	sessions *session.Manager
	log      *slog.Logger
	apiKey   string
	router   chi.Router
	views    *template.Template
	warnings []string
	now      func() time.Time
}

// New creates a new Server with all routes configured.
func New(users *storage.UserStore, chats *storage.ChatStore, authn auth.Authenticator, trainer Trainer, sessions *session.Manager, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		users:    users,
		chats:    chats,
		auth:     authn,
		trainer:  trainer,
		sessions: sessions,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
		views:    parseViews(),
		now:      time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/healthz", s.handleHealth)

	// Dashboard (session cookie)
	s.router.Group(func(r chi.Router) {
		r.Use(SessionCookie(s.sessions))
		r.Get("/", s.handleIndex)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(RequireLogin)
			r.Post("/logout", s.handleLogout)
			r.Post("/nav/{page}", s.handleNavigate)
			r.Post("/workouts/generate", s.handleGenerate)
			r.Post("/workouts/save", s.handleSave)
			r.Get("/generated/export/{format}", s.handleExportGenerated)
			r.Get("/history/{id}/export/{format}", s.handleExportSaved)
			r.Post("/coach/ask", s.handleAsk)
			r.Post("/coach/clear", s.handleClearChat)
		})
	})
}

// SetWarnings sets the messages shown as a banner on every page, such as a
// missing AI credential or a store that failed to load.
func (s *Server) SetWarnings(warnings []string) {
	s.warnings = warnings
}

// SetMCP mounts an MCP handler at /mcp behind API key auth.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Group(func(r chi.Router) {
		r.Use(CORS)
		r.Use(APIKeyAuth(s.apiKey))
		r.Handle("/mcp", h)
	})
}
