package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"

	"github.com/claude/fitcoach/internal/auth"
	"github.com/claude/fitcoach/internal/config"
	"github.com/claude/fitcoach/internal/llm"
	fitmcp "github.com/claude/fitcoach/internal/mcp"
	"github.com/claude/fitcoach/internal/models"
	"github.com/claude/fitcoach/internal/server"
	"github.com/claude/fitcoach/internal/session"
	"github.com/claude/fitcoach/internal/storage"
	"github.com/claude/fitcoach/internal/trainer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// sessionIdleTTL bounds how long an unused browser session is kept.
const sessionIdleTTL = 12 * time.Hour

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	envFile := flag.String("env-file", ".env", "path to .env file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("fitcoach starting", "version", Version)

	if err := godotenv.Load(*envFile); err != nil {
		log.Warn("no .env file loaded", "path", *envFile, "error", err)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	warnings := cfg.Warnings()
	for _, w := range warnings {
		log.Warn(w)
	}

	// Load stores. A fault keeps the in-memory defaults and is shown on every page.
	users := storage.NewUserStore(cfg.Storage.UsersFile, models.DefaultUsers())
	if err := users.Load(); err != nil {
		log.Error("failed to load user data", "path", users.Path(), "error", err)
		warnings = append(warnings, "Error loading user data: "+err.Error())
	}
	chats := storage.NewChatStore(cfg.Storage.ChatsFile)
	if err := chats.Load(); err != nil {
		log.Error("failed to load chat data", "path", chats.Path(), "error", err)
		warnings = append(warnings, "Error loading chat history: "+err.Error())
	}
	log.Info("stores loaded", "users", users.Path(), "chats", chats.Path())

	client := llm.NewOpenAI(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	coach := trainer.New(client, log)

	// Create server
	srv := server.New(users, chats, auth.NewPlaintext(users), coach, session.NewManager(sessionIdleTTL), cfg.Auth.APIKey, log)
	srv.SetWarnings(warnings)

	if cfg.Auth.APIKey != "" {
		mcpSrv := fitmcp.New(users, chats, Version, log)
		srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcpSrv))
		log.Info("mcp endpoint enabled", "path", "/mcp")
	}

	// Start server: tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr)
	}

	// No write timeout: page actions block on the model call.
	httpSrv := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
