package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"gametracker/internal/pkg/auth/jwt"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/limiter"
	"gametracker/internal/pkg/logx"
	"gametracker/internal/pkg/resp"
)

// Router builds the HTTP routing table: global middleware, CORS, the health check and
// the /api tree. Login, registration and the chatbot are rate limited per IP; every
// other /api route requires a bearer token. The returned stop func ends the limiters'
// background sweepers.
func Router(deps *AppDeps) (http.Handler, func()) {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(deps.Config.AuthRate), deps.Config.AuthBurst)
	chatLimiter := limiter.NewIPRateLimiter(rate.Limit(deps.Config.AuthRate), deps.Config.AuthBurst)
	stop := func() {
		authLimiter.Stop()
		chatLimiter.Stop()
	}

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	// Forwarding headers are client-controlled unless a proxy rewrites them.
	if deps.Config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		resp.RespondError(w, r, errs.NewError(errs.ErrNotFound))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "Game Tracker API",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.With(authLimiter.Middleware).Post("/register", HandleRegister(deps))
			auth.With(authLimiter.Middleware).Post("/login", HandleLogin(deps))
			auth.With(jwt.RequireAuth).Get("/me", HandleMe(deps))
		})

		api.Group(func(private chi.Router) {
			private.Use(jwt.RequireAuth)

			private.Route("/games", func(games chi.Router) {
				games.Get("/", HandleListGames(deps))
				games.Post("/", HandleCreateGame(deps))
				games.Get("/{id}", HandleGetGame(deps))
				games.Put("/{id}", HandleUpdateGame(deps))
				games.Delete("/{id}", HandleDeleteGame(deps))
			})

			// GET /achievements/{id} lists by game id; PUT and DELETE address one achievement.
			private.Route("/achievements", func(ach chi.Router) {
				ach.Post("/", HandleCreateAchievement(deps))
				ach.Get("/achievement/{id}", HandleGetAchievement(deps))
				ach.Get("/search/{gameId}", HandleSearchAchievements(deps))
				ach.Get("/{id}", HandleListAchievements(deps))
				ach.Put("/{id}", HandleUpdateAchievement(deps))
				ach.Delete("/{id}", HandleDeleteAchievement(deps))
			})

			private.With(chatLimiter.Middleware).Post("/chatbot", HandleAsk(deps))
		})
	})

	return r, stop
}
