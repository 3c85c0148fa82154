package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/fitcoach/internal/models"
)

// WorkoutSummary is a saved workout without its generated content.
type WorkoutSummary struct {
	ID          string   `json:"id"`
	Timestamp   string   `json:"timestamp"`
	WorkoutType string   `json:"workout_type"`
	MuscleGroup []string `json:"muscle_group"`
	Duration    int      `json:"duration"`
}

// --- Tool definitions ---

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List a user's saved workout plans, newest first. Returns id, timestamp, type, muscle groups and duration."),
	mcp.WithString("username", mcp.Required(), mcp.Description("Username (case-sensitive)")),
	mcp.WithString("type", mcp.Description("Filter by workout type (e.g. 'Cardio', 'Strength Training')")),
	mcp.WithNumber("limit", mcp.Description("Maximum number of workouts to return. Defaults to 20.")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Get one saved workout plan including its full generated Markdown content."),
	mcp.WithString("username", mcp.Required(), mcp.Description("Username (case-sensitive)")),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id, or its first 8 characters")),
)

var toolGetChatTranscript = mcp.NewTool("get_chat_transcript",
	mcp.WithDescription("Get a user's conversation with Coach Alex as alternating user/coach turns."),
	mcp.WithString("username", mcp.Required(), mcp.Description("Username (case-sensitive)")),
)

// --- Tool handlers ---

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}
	user, ok := h.workouts.Get(username)
	if !ok {
		return mcp.NewToolResultError("unknown user: " + username), nil
	}

	typeFilter := req.GetString("type", "")
	limit := req.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	out := make([]WorkoutSummary, 0, min(limit, len(user.Workouts)))
	for i := len(user.Workouts) - 1; i >= 0 && len(out) < limit; i-- {
		w := user.Workouts[i]
		if typeFilter != "" && !strings.EqualFold(w.Data.WorkoutType, typeFilter) {
			continue
		}
		out = append(out, summarize(w))
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	user, ok := h.workouts.Get(username)
	if !ok {
		return mcp.NewToolResultError("unknown user: " + username), nil
	}

	w, ok := findWorkout(user, id)
	if !ok {
		return mcp.NewToolResultError("workout not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(w)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getChatTranscript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return mcp.NewToolResultError("username parameter is required"), nil
	}
	if _, ok := h.workouts.Get(username); !ok {
		return mcp.NewToolResultError("unknown user: " + username), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"username": username,
		"turns":    h.chats.Transcript(username).Turns(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func summarize(w models.Workout) WorkoutSummary {
	return WorkoutSummary{
		ID:          w.ID,
		Timestamp:   w.Timestamp,
		WorkoutType: w.Data.WorkoutType,
		MuscleGroup: w.Data.MuscleGroup,
		Duration:    w.Data.Duration,
	}
}

// findWorkout matches a full id first, then a unique short-id prefix.
func findWorkout(user models.User, id string) (models.Workout, bool) {
	if w, ok := user.FindWorkout(id); ok {
		return w, true
	}
	var match models.Workout
	n := 0
	for _, w := range user.Workouts {
		if strings.HasPrefix(w.ID, id) {
			match = w
			n++
		}
	}
	return match, n == 1
}
