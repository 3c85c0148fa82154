// Package trainer turns form input and chat questions into prompts and
// sends them through the LLM gateway.
package trainer

import (
	"context"
	"log/slog"
	"time"

	"github.com/claude/fitcoach/internal/llm"
	"github.com/claude/fitcoach/internal/models"
)

// Service generates workout plans and coach replies.
type Service struct {
	client llm.Client
	log    *slog.Logger
}

// New creates a Service that sends prompts through client.
func New(client llm.Client, log *slog.Logger) *Service {
	return &Service{client: client, log: log}
}

// GenerateWorkout asks the model for a plan and returns it as a WorkoutSpec
// whose Content is the completion text verbatim. On failure no spec is
// returned, so an error can never be mistaken for a plan.
func (s *Service) GenerateWorkout(ctx context.Context, req models.WorkoutRequest) (models.WorkoutSpec, error) {
	start := time.Now()
	content, err := llm.Complete(ctx, s.client, WorkoutPrompt(req))
	if err != nil {
		s.log.Error("workout generation failed", "type", req.WorkoutType, "error", err)
		return models.WorkoutSpec{}, err
	}
	s.log.Info("workout generated",
		"type", req.WorkoutType,
		"duration_min", req.Duration,
		"chars", len(content),
		"took", time.Since(start).String(),
	)

	groups := req.MuscleGroups
	if groups == nil {
		groups = []string{}
	}
	return models.WorkoutSpec{
		WorkoutType: req.WorkoutType,
		MuscleGroup: groups,
		Duration:    req.Duration,
		Notes:       req.Notes,
		Content:     content,
	}, nil
}

// Ask sends question with the prior transcript as context and returns the
// coach reply.
func (s *Service) Ask(ctx context.Context, transcript models.Transcript, question string) (string, error) {
	reply, err := llm.Complete(ctx, s.client, CoachPrompt(transcript, question))
	if err != nil {
		s.log.Error("coach reply failed", "turns", len(transcript), "error", err)
		return "", err
	}
	return reply, nil
}
