/*
Package main is the entry point of the game tracker API server.

It loads an optional .env file and the environment configuration, initializes the global
logger, selects the PostgreSQL store when DATABASE_URL is set (the in-memory store
otherwise), selects the chatbot responder, and serves HTTP until SIGINT or SIGTERM, then
shuts down gracefully.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gametracker/internal/app/chatbot"
	"gametracker/internal/app/db"
	"gametracker/internal/app/tracker"
	"gametracker/internal/configs"
	"gametracker/internal/handler"
	"gametracker/internal/pkg/logx"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: failed to read .env file: %v\n", err)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Bool("postgres", cfg.DatabaseDSN != "").
		Bool("llm_chatbot", cfg.ArkAPIKey != "" && cfg.ArkModel != "").
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	deps := &handler.AppDeps{
		Config: cfg,
		Store:  store,
		Bot:    newResponder(ctx, cfg),
	}

	router, stopRouter := handler.Router(deps)
	defer stopRouter()

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Game Tracker API starting on http://localhost%s/api", serverAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}

func openStore(ctx context.Context, cfg *configs.AppConfig) (tracker.Store, func()) {
	if cfg.DatabaseDSN == "" {
		logx.Warn("DATABASE_URL not set, using the in-memory store; data is lost on restart")
		return tracker.NewMemoryStore(), func() {}
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to connect to the database")
	}

	store := db.NewStore(pool)
	return store, store.Close
}

func newResponder(ctx context.Context, cfg *configs.AppConfig) chatbot.Responder {
	canned := chatbot.NewCanned(nil)

	arkCfg := chatbot.ArkConfig{
		APIKey:  cfg.ArkAPIKey,
		Model:   cfg.ArkModel,
		BaseURL: cfg.ArkBaseURL,
		Region:  cfg.ArkRegion,
	}
	if !arkCfg.Enabled() {
		return canned
	}

	llm, err := chatbot.NewArk(ctx, arkCfg, canned)
	if err != nil {
		logx.Error(err, "Failed to initialize the LLM chatbot, using canned answers")
		return canned
	}
	logx.Info("LLM chatbot enabled", "model", cfg.ArkModel)
	return llm
}
