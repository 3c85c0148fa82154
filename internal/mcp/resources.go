package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) users(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type userEntry struct {
		Username     string `json:"username"`
		WorkoutCount int    `json:"workout_count"`
		LastWorkout  string `json:"last_workout,omitempty"`
		ChatTurns    int    `json:"chat_turns"`
	}

	var entries []userEntry
	for _, name := range h.workouts.Usernames() {
		u, ok := h.workouts.Get(name)
		if !ok {
			continue
		}
		e := userEntry{
			Username:     name,
			WorkoutCount: len(u.Workouts),
			ChatTurns:    len(h.chats.Transcript(name)),
		}
		if last, ok := u.LastWorkout(); ok {
			e.LastWorkout = last.Timestamp
		}
		entries = append(entries, e)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
