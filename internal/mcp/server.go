// Package mcp exposes saved workouts and coach transcripts to MCP clients.
// All tools are read-only.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(workouts WorkoutSource, chats TranscriptSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("AI Fitness Trainer", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("AI Fitness Trainer data server. Read saved AI-generated workout plans and fitness coach conversations per user."),
	)

	h := &handlers{workouts: workouts, chats: chats, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolGetChatTranscript, Handler: h.getChatTranscript},
	)

	s.AddResources(
		server.ServerResource{Resource: resUsers, Handler: h.users},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	workouts WorkoutSource
	chats    TranscriptSource
	log      *slog.Logger
}

var resUsers = mcp.NewResource(
	"fitcoach://users",
	"Users",
	mcp.WithResourceDescription("Registered users with their saved workout count and last workout time"),
	mcp.WithMIMEType("application/json"),
)
