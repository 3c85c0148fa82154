package trainer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/fitcoach/internal/llm"
	"github.com/claude/fitcoach/internal/models"
)

type stubClient struct {
	reply  string
	err    error
	prompt string
}

func (s *stubClient) Generate(_ context.Context, messages []llm.Message) (llm.Response, error) {
	if len(messages) > 0 {
		s.prompt = messages[0].Content
	}
	if s.err != nil {
		return llm.Response{}, s.err
	}
	return llm.Response{Content: s.reply}, nil
}

// TestWorkoutPromptDefaultsMuscleGroup verifies that an empty selection is sent as "Full Body".
func TestWorkoutPromptDefaultsMuscleGroup(t *testing.T) {
	p := WorkoutPrompt(models.WorkoutRequest{WorkoutType: "Yoga", Duration: 45, Notes: "beginner"})
	for _, want := range []string{
		"- Workout Type: Yoga",
		"- Target Muscle Group: Full Body",
		"- Duration: 45 minutes",
		"- Additional Notes: beginner",
		"A brief warm-up",
		"- Exercise Name: [name]",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

// TestWorkoutPromptJoinsGroups verifies that selected groups are comma-joined.
func TestWorkoutPromptJoinsGroups(t *testing.T) {
	p := WorkoutPrompt(models.WorkoutRequest{WorkoutType: "HIIT", MuscleGroups: []string{"Core", "Arms"}, Duration: 20})
	if !strings.Contains(p, "- Target Muscle Group: Core, Arms") {
		t.Errorf("prompt = %s", p)
	}
}

// TestFormatHistory verifies the alternating User/Coach formatting.
func TestFormatHistory(t *testing.T) {
	got := FormatHistory(models.Transcript{"hi", "hello", "sets?", "three"})
	want := "User: hi\nCoach: hello\nUser: sets?\nCoach: three"
	if got != want {
		t.Errorf("FormatHistory = %q, want %q", got, want)
	}
	if FormatHistory(nil) != "" {
		t.Error("empty transcript should format to empty string")
	}
}

// TestCoachPrompt verifies persona, safety guidance, history and question.
func TestCoachPrompt(t *testing.T) {
	p := CoachPrompt(models.Transcript{"q1", "a1"}, "How do I squat?")
	for _, want := range []string{
		"fitness coach named Coach Alex",
		"User: q1\nCoach: a1",
		"User's new question: How do I squat?",
		"admit it",
		"consulting a healthcare provider",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

// TestGenerateWorkout verifies that the completion becomes the spec content verbatim.
func TestGenerateWorkout(t *testing.T) {
	stub := &stubClient{reply: "# Warm-Up\n- Jog 5 min"}
	s := New(stub, slog.Default())

	spec, err := s.GenerateWorkout(context.Background(), models.WorkoutRequest{
		WorkoutType:  "Cardio",
		MuscleGroups: []string{"Core"},
		Duration:     30,
		Notes:        "no equipment",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Content != "# Warm-Up\n- Jog 5 min" {
		t.Errorf("content = %q", spec.Content)
	}
	if spec.WorkoutType != "Cardio" || spec.Duration != 30 || spec.Notes != "no equipment" {
		t.Errorf("spec = %+v", spec)
	}
	if !strings.Contains(stub.prompt, "Target Muscle Group: Core") {
		t.Errorf("prompt = %s", stub.prompt)
	}
}

// TestGenerateWorkoutError verifies that a gateway fault is returned as an error
// and never as content.
func TestGenerateWorkoutError(t *testing.T) {
	s := New(&stubClient{err: errors.New("quota exceeded")}, slog.Default())
	spec, err := s.GenerateWorkout(context.Background(), models.WorkoutRequest{WorkoutType: "Cardio"})
	if err == nil {
		t.Fatal("expected error")
	}
	if spec.Content != "" {
		t.Errorf("content = %q, want empty", spec.Content)
	}
}

// TestAsk verifies the coach reply is returned and the transcript reaches the prompt.
func TestAsk(t *testing.T) {
	stub := &stubClient{reply: "Keep your back straight."}
	s := New(stub, slog.Default())

	got, err := s.Ask(context.Background(), models.Transcript{"hi", "hello"}, "Deadlift tips?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Keep your back straight." {
		t.Errorf("reply = %q", got)
	}
	if !strings.Contains(stub.prompt, "User: hi\nCoach: hello") {
		t.Errorf("prompt missing history: %s", stub.prompt)
	}
}
