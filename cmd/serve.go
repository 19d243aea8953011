package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/champion-league/config"
	"github.com/Dosada05/champion-league/db"
	"github.com/Dosada05/champion-league/feed"
	"github.com/Dosada05/champion-league/handlers"
	"github.com/Dosada05/champion-league/leaderboard"
	"github.com/Dosada05/champion-league/repositories"
	api "github.com/Dosada05/champion-league/routes"
	"github.com/Dosada05/champion-league/services"
	"github.com/Dosada05/champion-league/storage"
	"github.com/Dosada05/champion-league/summary"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func runServe(migrateFirst bool) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(dbConn, logger)

	if migrateFirst {
		result, err := db.Migrate(dbConn, db.MigrateUp)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Uint64("version", uint64(result.Version)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	summarizer, err := newSummarizer(cfg.Summary, logger)
	if err != nil {
		return err
	}

	// Хаб живёт до отмены ctx.
	hub := feed.NewHub(logger)
	go hub.Run(ctx)
	logger.Info("match feed hub started")

	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	franchiseRepo := repositories.NewPostgresFranchiseRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	membershipRepo := repositories.NewPostgresMembershipRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	galleryRepo := repositories.NewPostgresGalleryRepository(dbConn)
	dashboardRepo := repositories.NewPostgresDashboardRepository(dbConn)
	leaderboardSource := repositories.NewPostgresLeaderboardSource(dbConn)

	resolver := services.NewWinnerResolver(franchiseRepo, teamRepo)
	fixtureService := services.NewFixtureService(matchRepo, resolver)
	gameService := services.NewGameService(gameRepo, store, cfg.DefaultWinPoints, logger)
	franchiseService := services.NewFranchiseService(franchiseRepo, store, logger)
	playerService := services.NewPlayerService(playerRepo, store, logger)
	teamService := services.NewTeamService(teamRepo, store, logger)
	membershipService := services.NewMembershipService(membershipRepo, teamRepo)
	matchService := services.NewMatchService(services.MatchServiceDeps{
		MatchRepo:       matchRepo,
		ParticipantRepo: participantRepo,
		Resolver:        resolver,
		Fixtures:        fixtureService,
		Summarizer:      summarizer,
		SummaryTimeout:  cfg.Summary.Timeout,
		Publisher:       hub,
		Logger:          logger,
	})
	participantService := services.NewParticipantService(participantRepo, fixtureService, hub, logger)
	galleryService := services.NewGalleryService(galleryRepo, store, logger)
	leaderboardService := services.NewLeaderboardService(leaderboard.NewAggregator(leaderboardSource), gameRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	logger.Info("services initialized")

	router := chi.NewRouter()
	opts := api.Options{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRequests:  cfg.RateLimitRequests,
		RateLimitWindow:    cfg.RateLimitWindow,
	}
	if local, ok := store.(*storage.LocalStore); ok {
		opts.LocalImageDir = local.Root()
	}
	api.SetupRoutes(router, api.Handlers{
		Game:        handlers.NewGameHandler(gameService),
		Franchise:   handlers.NewFranchiseHandler(franchiseService),
		Player:      handlers.NewPlayerHandler(playerService),
		Team:        handlers.NewTeamHandler(teamService, membershipService),
		Membership:  handlers.NewMembershipHandler(membershipService),
		Match:       handlers.NewMatchHandler(matchService, fixtureService),
		Participant: handlers.NewParticipantHandler(participantService),
		Gallery:     handlers.NewGalleryHandler(galleryService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		WebSocket:   handlers.NewWebSocketHandler(hub, matchService, gameService, cfg.CORSAllowedOrigins),
	}, opts)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped")
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
	if err := server.Shutdown(shutdownCtx); err != nil {
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("failed to force close server", slog.Any("error", closeErr))
		}
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}

// newSummarizer возвращает nil, если ключ API не задан: обогащение заметок выключено.
func newSummarizer(cfg config.SummaryConfig, logger *slog.Logger) (summary.Summarizer, error) {
	if !cfg.Enabled() {
		logger.Info("match note summaries disabled")
		return nil, nil
	}
	s, err := summary.NewOpenAISummarizer(summary.OpenAIConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("match note summaries enabled", slog.String("model", cfg.Model))
	return s, nil
}
