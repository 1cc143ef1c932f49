package app

import (
	"log/slog"
	"time"

	"github.com/focusquest/platform/internal/auth"
	"github.com/focusquest/platform/internal/catalog"
	"github.com/focusquest/platform/internal/engine"
	"github.com/focusquest/platform/internal/guard"
	"github.com/focusquest/platform/internal/handler"
	"github.com/focusquest/platform/internal/infra"
	"github.com/focusquest/platform/internal/repository"
	"github.com/focusquest/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool           *pgxpool.Pool
	JWTMgr         *auth.JWTManager
	Logger         *slog.Logger
	Metrics        *infra.Metrics
	CORSOrigins    string
	EventRateLimit int
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	jwtMgr := deps.JWTMgr
	logger := deps.Logger

	// Repositories
	stateRepo := repository.NewGameStateRepository()
	featureRepo := repository.NewFeatureRepository()
	creatureRepo := repository.NewCreatureRepository()
	rewardRepo := repository.NewRewardRepository()
	questRepo := repository.NewQuestRepository()
	outboxRepo := repository.NewOutboxRepository()
	authUserRepo := repository.NewAuthUserRepository()

	// Engine over the static catalogs.
	orch := engine.NewOrchestrator(
		catalog.Features(),
		catalog.Creatures(),
		catalog.RewardEffects(),
		engine.NewRNG(),
	)

	// Services
	gameSvc := service.NewGamificationService(pool, orch, catalog.Creatures(),
		stateRepo, featureRepo, creatureRepo, rewardRepo, outboxRepo)
	questSvc := service.NewQuestService(pool, catalog.QuestTemplates(),
		questRepo, stateRepo, outboxRepo, gameSvc)
	authSvc := service.NewAuthService(pool, authUserRepo, stateRepo, featureRepo, outboxRepo, jwtMgr)

	// Guards
	eventLimiter := guard.NewRateLimiter(deps.EventRateLimit, time.Minute)
	idemGuard := guard.NewIdempotencyGuard()

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	eventsHandler := handler.NewEventsHandler(gameSvc, idemGuard, eventLimiter, deps.Metrics)
	stateHandler := handler.NewStateHandler(gameSvc)
	questHandler := handler.NewQuestHandler(questSvc)
	adminHandler := handler.NewAdminHandler(gameSvc)

	// Router
	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.Metrics(deps.Metrics))
	r.Use(handler.CORSWithOrigins(deps.CORSOrigins))
	r.Use(handler.JSONContentType)

	// Health and metrics (no auth)
	r.Get("/health", handler.HealthHandler(pool))
	r.Handle("/metrics", deps.Metrics.Handler())

	// Auth routes (no auth)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Player-authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthenticatePlayer(jwtMgr))

		r.Route("/game", func(r chi.Router) {
			r.Post("/events", eventsHandler.Post)
			r.Get("/state", stateHandler.GetState)
			r.Get("/creatures", stateHandler.GetCreatures)
			r.Get("/rewards", stateHandler.GetRewards)
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/today", questHandler.GetToday)
			r.Post("/{questID}/progress", questHandler.PostProgress)
		})
	})

	// Admin-authenticated routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.AuthenticateAdmin(jwtMgr))

		r.Get("/stats", adminHandler.GetStats)
		r.Get("/leaderboard", adminHandler.GetLeaderboard)

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/state", adminHandler.GetPlayerState)
			r.With(auth.RequireRole(auth.WriteRoles()...)).
				Post("/shields", adminHandler.PostGrantShields)
		})
	})

	return r
}
