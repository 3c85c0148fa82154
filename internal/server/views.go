package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/claude/fitcoach/internal/models"
	"github.com/claude/fitcoach/internal/render"
	"github.com/claude/fitcoach/internal/session"
	"github.com/claude/fitcoach/internal/trainer"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer turns generated Markdown into HTML. Raw HTML in the input is
// escaped because WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func markdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func parseViews() *template.Template {
	funcs := template.FuncMap{
		"markdown":     markdown,
		"muscleGroups": models.MuscleGroupText,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

type navItem struct {
	Page   string
	Label  string
	Active bool
}

var navLabels = map[session.Page]string{
	session.PageHome:     "Home",
	session.PageGenerate: "Generate Workout",
	session.PageHistory:  "Workout History",
	session.PageCoach:    "Fitness Coach",
}

type muscleOption struct {
	Name     string
	Selected bool
}

// workoutForm is the generate form, prefilled from the pending plan if any.
type workoutForm struct {
	Types       []string
	Type        string
	Muscles     []muscleOption
	Duration    int
	MinDuration int
	MaxDuration int
	Step        int
	Notes       string
}

// pageData is everything the layout and page templates read.
type pageData struct {
	Page       string
	Product    string
	Username   string
	Nav        []navItem
	Warnings   []string
	Notice     *session.Notice
	LoginError string

	WorkoutCount int
	LastWorkout  string

	Form    workoutForm
	Pending *session.Pending

	Workouts []models.Workout

	CoachName string
	Turns     []models.Turn
}

func (s *Server) pageData(sess *session.Session) pageData {
	data := pageData{
		Page:     string(sess.Page()),
		Product:  render.ProductName,
		Warnings: s.warnings,
		Notice:   sess.TakeNotice(),
	}
	if !sess.LoggedIn() {
		data.Page = string(session.PageLogin)
		data.LoginError = sess.TakeLoginError()
		return data
	}

	data.Username = sess.Username()
	for _, p := range session.AppPages {
		data.Nav = append(data.Nav, navItem{Page: string(p), Label: navLabels[p], Active: p == sess.Page()})
	}

	user, ok := s.users.Get(data.Username)
	if !ok {
		s.log.Warn("session user missing from registry", "username", data.Username)
	}

	switch sess.Page() {
	case session.PageHome:
		data.WorkoutCount = len(user.Workouts)
		if last, ok := user.LastWorkout(); ok {
			data.LastWorkout = last.Timestamp
		}
	case session.PageGenerate:
		data.Pending = sess.Pending()
		data.Form = newWorkoutForm(data.Pending)
	case session.PageHistory:
		data.Workouts = slices.Clone(user.Workouts)
		slices.Reverse(data.Workouts)
	case session.PageCoach:
		data.CoachName = trainer.CoachName
		data.Turns = s.chats.Transcript(data.Username).Turns()
	}
	return data
}

func newWorkoutForm(p *session.Pending) workoutForm {
	f := workoutForm{
		Types:       models.WorkoutTypes,
		Type:        models.WorkoutTypes[0],
		Duration:    models.DefaultDuration,
		MinDuration: models.MinDuration,
		MaxDuration: models.MaxDuration,
		Step:        models.DurationStep,
		Notes:       models.DefaultNotes,
	}
	var selected []string
	if p != nil {
		f.Type = p.Spec.WorkoutType
		f.Duration = p.Spec.Duration
		f.Notes = p.Spec.Notes
		selected = p.Spec.MuscleGroup
	}
	for _, g := range models.MuscleGroups {
		f.Muscles = append(f.Muscles, muscleOption{Name: g, Selected: slices.Contains(selected, g)})
	}
	return f
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := s.views.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.log.Error("render failed", "page", data.Page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
