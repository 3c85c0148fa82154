package mcp

import (
	"github.com/claude/fitcoach/internal/models"
	"github.com/claude/fitcoach/internal/storage"
)

// WorkoutSource is the read side of the user registry.
type WorkoutSource interface {
	Usernames() []string
	Get(username string) (models.User, bool)
}

// TranscriptSource is the read side of the chat registry.
type TranscriptSource interface {
	Transcript(username string) models.Transcript
}

// Compile-time checks: the file stores satisfy the sources.
var (
	_ WorkoutSource    = (*storage.UserStore)(nil)
	_ TranscriptSource = (*storage.ChatStore)(nil)
)
