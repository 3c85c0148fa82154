package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/fitcoach/internal/models"
	"github.com/claude/fitcoach/internal/render"
	"github.com/claude/fitcoach/internal/session"
	"github.com/claude/fitcoach/internal/storage"
)

// LoginFailedMessage is shown on the login page after rejected credentials.
const LoginFailedMessage = "Invalid username or password"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, s.pageData(sessionFrom(r)))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	username := r.PostFormValue("username")
	if s.auth.Authenticate(username, r.PostFormValue("password")) {
		sess.Login(username)
		s.log.Info("login", "username", username)
	} else {
		sess.FailLogin(LoginFailedMessage)
		s.log.Warn("login failed", "username", username)
	}
	redirectHome(w, r)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	s.log.Info("logout", "username", sess.Username())
	sess.Logout()
	redirectHome(w, r)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	page, err := session.ParsePage(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := sessionFrom(r).Navigate(page); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	req, err := parseWorkoutRequest(r)
	if err != nil {
		sess.Flash(session.NoticeError, "Invalid workout request: "+err.Error())
		redirectHome(w, r)
		return
	}

	spec, err := s.trainer.GenerateWorkout(r.Context(), req)
	if err != nil {
		sess.ClearPending()
		sess.Flash(session.NoticeError, "Error generating workout: "+err.Error())
		redirectHome(w, r)
		return
	}
	sess.SetPending(spec, s.now())
	redirectHome(w, r)
}

func parseWorkoutRequest(r *http.Request) (models.WorkoutRequest, error) {
	if err := r.ParseForm(); err != nil {
		return models.WorkoutRequest{}, err
	}
	req := models.WorkoutRequest{
		WorkoutType:  r.PostFormValue("workout_type"),
		MuscleGroups: r.PostForm["muscle_group"],
		Notes:        r.PostFormValue("notes"),
	}
	if !models.IsWorkoutType(req.WorkoutType) {
		return req, fmt.Errorf("unknown workout type %q", req.WorkoutType)
	}
	for _, g := range req.MuscleGroups {
		if !models.IsMuscleGroup(g) {
			return req, fmt.Errorf("unknown muscle group %q", g)
		}
	}
	d, err := strconv.Atoi(r.PostFormValue("duration"))
	if err != nil || !models.ValidDuration(d) {
		return req, fmt.Errorf("duration must be %d-%d minutes in steps of %d",
			models.MinDuration, models.MaxDuration, models.DurationStep)
	}
	req.Duration = d
	return req, nil
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	p := sess.Pending()
	switch {
	case p == nil:
		sess.Flash(session.NoticeError, "Generate a workout before saving.")
	case p.SavedID != "":
		sess.Flash(session.NoticeInfo, "Workout already saved. ID: "+shortID(p.SavedID))
	default:
		workout := models.NewWorkout(p.Spec, s.now())
		err := s.users.AppendWorkout(sess.Username(), workout)
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			s.log.Error("save workout", "username", sess.Username(), "error", err)
			sess.Flash(session.NoticeError, "Error saving workout: "+err.Error())
		case err != nil:
			// The workout is in the in-memory history even though the file write failed.
			sess.MarkPendingSaved(workout.ID)
			s.log.Error("save workout", "username", sess.Username(), "error", err)
			sess.Flash(session.NoticeError, "Error saving workout: "+err.Error())
		default:
			sess.MarkPendingSaved(workout.ID)
			s.log.Info("workout saved", "username", sess.Username(), "id", workout.ID)
			sess.Flash(session.NoticeSuccess, "Workout saved to your history! ID: "+workout.ShortID())
		}
	}
	redirectHome(w, r)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	question := r.PostFormValue("question")
	if strings.TrimSpace(question) == "" {
		redirectHome(w, r)
		return
	}

	username := sess.Username()
	reply, err := s.trainer.Ask(r.Context(), s.chats.Transcript(username), question)
	if err != nil {
		sess.Flash(session.NoticeError, "Error communicating with fitness coach: "+err.Error())
		redirectHome(w, r)
		return
	}
	if err := s.chats.AppendExchange(username, question, reply); err != nil {
		s.log.Error("save chat", "username", username, "error", err)
		sess.Flash(session.NoticeError, "Error saving chat history: "+err.Error())
	}
	redirectHome(w, r)
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.chats.Clear(sess.Username()); err != nil {
		s.log.Error("clear chat", "username", sess.Username(), "error", err)
		sess.Flash(session.NoticeError, "Error clearing chat history: "+err.Error())
	} else {
		sess.Flash(session.NoticeInfo, "Chat history cleared.")
	}
	redirectHome(w, r)
}

func (s *Server) handleExportGenerated(w http.ResponseWriter, r *http.Request) {
	p := sessionFrom(r).Pending()
	if p == nil {
		http.Error(w, "no generated workout", http.StatusNotFound)
		return
	}
	name := "workout_" + p.GeneratedAt.Format("20060102_150405")
	s.export(w, r, p.Spec, p.GeneratedAt, name)
}

func (s *Server) handleExportSaved(w http.ResponseWriter, r *http.Request) {
	user, _ := s.users.Get(sessionFrom(r).Username())
	workout, ok := user.FindWorkout(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	at, err := time.ParseInLocation(models.TimestampLayout, workout.Timestamp, time.Local)
	if err != nil {
		at = s.now()
	}
	s.export(w, r, workout.Data, at, "workout_"+workout.ShortID())
}

// export writes spec in the format named by the {format} URL param as a
// download called name plus the format extension.
func (s *Server) export(w http.ResponseWriter, r *http.Request, spec models.WorkoutSpec, at time.Time, name string) {
	format := chi.URLParam(r, "format")

	var (
		body        []byte
		contentType string
		err         error
	)
	switch format {
	case "pdf":
		body, err = render.PDF(spec, at)
		contentType = "application/pdf"
	case "txt":
		body = render.PlainText(spec)
		contentType = "text/plain; charset=utf-8"
	case "json":
		body, err = json.MarshalIndent(spec, "", "  ")
		contentType = "application/json"
	default:
		http.Error(w, "unknown export format", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("export failed", "format", format, "error", err)
		http.Error(w, "Error creating "+strings.ToUpper(format)+" download", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
