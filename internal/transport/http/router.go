package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hun-meta/api-base-template/internal/application/user"
	"github.com/hun-meta/api-base-template/internal/config"
	"github.com/hun-meta/api-base-template/internal/domain"
	"github.com/hun-meta/api-base-template/internal/infrastructure/dynamo"
	jwtinfra "github.com/hun-meta/api-base-template/internal/infrastructure/jwt"
	"github.com/hun-meta/api-base-template/internal/transport/http/handler"
	"github.com/hun-meta/api-base-template/internal/transport/http/middleware"
	"github.com/hun-meta/api-base-template/internal/transport/http/respond"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router. The middleware order
// matters: RequestID must run before Logger and Recover so both the request
// log and any error envelope carry the correlation ID.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := middleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := middleware.NewRateLimiter(rate.Limit(5), 10)

	var signer user.JWTSigner
	if deps.JWTProvider != nil {
		signer = deps.JWTProvider
	}
	userSvc := user.NewService(deps.UserRepo, signer)

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc)
	authH := handler.NewAuthHandler(userSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", respond.Handler(healthH.Ping))
		r.Get("/test", respond.Handler(healthH.Test))
		r.With(sensitiveRL.Limit).Post("/auth/login", respond.Handler(authH.Login))
		r.With(sensitiveRL.Limit).Post("/users", respond.Handler(userH.Register))

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/{id}", respond.Handler(userH.Get))
			r.Put("/users/{id}", respond.Handler(userH.Update))
			r.Delete("/users/{id}", respond.Handler(userH.Delete))

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))

				r.Get("/users", respond.Handler(userH.List))
			})
		})
	})

	return r
}
