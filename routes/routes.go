package routes

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Dosada05/champion-league/docs"
	"github.com/Dosada05/champion-league/handlers"
	"github.com/Dosada05/champion-league/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers собирает все HTTP-обработчики API.
type Handlers struct {
	Game        *handlers.GameHandler
	Franchise   *handlers.FranchiseHandler
	Player      *handlers.PlayerHandler
	Team        *handlers.TeamHandler
	Membership  *handlers.MembershipHandler
	Match       *handlers.MatchHandler
	Participant *handlers.ParticipantHandler
	Gallery     *handlers.GalleryHandler
	Leaderboard *handlers.LeaderboardHandler
	Dashboard   *handlers.DashboardHandler
	WebSocket   *handlers.WebSocketHandler
}

type Options struct {
	Logger             *slog.Logger
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	// LocalImageDir задаётся только для локального хранилища: файлы отдаются по /images/*.
	LocalImageDir string
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if opts.RateLimitEnabled {
		router.Use(middleware.RateLimit(opts.RateLimitRequests, opts.RateLimitWindow))
	}

	router.Get("/", handlers.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.LocalImageDir != "" {
		fs := http.StripPrefix("/images/", http.FileServer(http.Dir(opts.LocalImageDir)))
		router.Handle("/images/*", fs)
	}

	router.Route("/ws", func(r chi.Router) {
		r.Get("/matches/{matchID}", h.WebSocket.ServeMatch)
		r.Get("/games/{gameID}", h.WebSocket.ServeGame)
	})

	router.Route("/api/v1", func(r chi.Router) {
		// Маршруты доступны и с завершающим слэшем, и без него.
		r.Use(chiMiddleware.StripSlashes)
		r.Route("/games", func(r chi.Router) {
			r.Post("/", h.Game.CreateGame)
			r.Get("/", h.Game.ListGames)
			r.Route("/{gameID}", func(r chi.Router) {
				r.Get("/", h.Game.GetGame)
				r.Put("/", h.Game.UpdateGame)
				r.Delete("/", h.Game.DeleteGame)
				r.Post("/image", h.Game.UploadGameImage)
			})
		})

		r.Route("/franchises", func(r chi.Router) {
			r.Post("/", h.Franchise.CreateFranchise)
			r.Get("/", h.Franchise.ListFranchises)
			r.Route("/{franchiseID}", func(r chi.Router) {
				r.Get("/", h.Franchise.GetFranchise)
				r.Put("/", h.Franchise.UpdateFranchise)
				r.Delete("/", h.Franchise.DeleteFranchise)
				r.Post("/logo", h.Franchise.UploadFranchiseLogo)
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.Player.CreatePlayer)
			r.Get("/", h.Player.ListPlayers)
			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", h.Player.GetPlayer)
				r.Put("/", h.Player.UpdatePlayer)
				r.Delete("/", h.Player.DeletePlayer)
				r.Get("/teams", h.Player.GetPlayerTeams)
				r.Post("/image", h.Player.UploadPlayerImage)
			})
		})

		r.Get("/teams-with-details", h.Team.ListTeamsWithDetails)
		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.Team.CreateTeam)
			r.Get("/", h.Team.ListTeams)
			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/", h.Team.GetTeam)
				r.Put("/", h.Team.UpdateTeam)
				r.Delete("/", h.Team.DeleteTeam)
				r.Get("/players", h.Team.GetTeamPlayers)
				r.Delete("/players/{playerID}", h.Team.RemoveTeamPlayer)
				r.Post("/logo", h.Team.UploadTeamLogo)
			})
		})

		r.Route("/team-players", func(r chi.Router) {
			r.Post("/", h.Membership.AddMember)
			r.Get("/", h.Membership.ListMemberships)
			r.Route("/{membershipID}", func(r chi.Router) {
				r.Get("/", h.Membership.GetMembership)
				r.Put("/", h.Membership.UpdateMembership)
				r.Delete("/", h.Membership.DeleteMembership)
			})
		})

		r.Get("/fixtures", h.Match.ListFixtures)
		r.Route("/matches", func(r chi.Router) {
			r.Post("/", h.Match.CreateMatch)
			r.Get("/", h.Match.ListMatches)
			r.Route("/{matchID}", func(r chi.Router) {
				r.Get("/", h.Match.GetMatch)
				r.Put("/", h.Match.UpdateMatch)
				r.Delete("/", h.Match.DeleteMatch)
				r.Get("/details", h.Match.GetMatchDetails)
				r.Get("/players", h.Match.GetMatchPlayers)
			})
		})

		r.Route("/match-players", func(r chi.Router) {
			r.Post("/", h.Participant.AddParticipant)
			r.Get("/", h.Participant.ListParticipants)
			r.Route("/{participantID}", func(r chi.Router) {
				r.Get("/", h.Participant.GetParticipant)
				r.Put("/", h.Participant.UpdateParticipant)
				r.Delete("/", h.Participant.DeleteParticipant)
			})
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Post("/", h.Gallery.UploadItem)
			r.Get("/", h.Gallery.ListItems)
			r.Get("/{galleryID}", h.Gallery.GetItem)
			r.Delete("/{galleryID}", h.Gallery.DeleteItem)
		})
		r.Get("/s3-gallery", h.Gallery.ListStoredImages)

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", h.Leaderboard.GetLeaderboard)
			r.Get("/players", h.Leaderboard.GetPlayers)
			r.Get("/franchises", h.Leaderboard.GetFranchises)
			r.Get("/teams", h.Leaderboard.GetTeams)
		})

		r.Get("/dashboard/stats", h.Dashboard.Stats)
	})
}
