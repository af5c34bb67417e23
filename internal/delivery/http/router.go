package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddinginvite/internal/delivery/http/controllers"
	"weddinginvite/internal/delivery/http/middleware"
	"weddinginvite/internal/domain"
	"weddinginvite/internal/ratelimit"
)

// RouterConfig carries everything the router needs to wire routes,
// rate limiting, and the admin gate.
type RouterConfig struct {
	Logger         *slog.Logger
	Invitations    *controllers.InvitationController
	Guestbook      *controllers.GuestbookController
	Reviews        *controllers.ReviewController
	Admin          *controllers.AdminController
	Limiter        *ratelimit.Limiter
	TokenVerifier  domain.TokenVerifier
	CronKey        string
	MediaRoot      string
	AllowedOrigins []string
}

// NewRouter initializes the HTTP handler with all application routes,
// wrapped in logging and CORS middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	limited := func(action string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.RateLimit(cfg.Limiter, action)(h)
	}
	admin := middleware.RequireAdmin(cfg.TokenVerifier, cfg.CronKey, cfg.Logger)

	// Invitations
	mux.HandleFunc("POST /invitations", limited(ratelimit.ActionCreateInvitation, cfg.Invitations.Create))
	mux.HandleFunc("POST /invitations/lookup", limited(ratelimit.ActionLookupInvitation, cfg.Invitations.Lookup))
	mux.HandleFunc("GET /invitations/{slug}", cfg.Invitations.Get)
	mux.HandleFunc("PUT /invitations/{slug}", limited(ratelimit.ActionUpdateInvitation, cfg.Invitations.Update))
	mux.HandleFunc("DELETE /invitations/{slug}", limited(ratelimit.ActionDeleteInvitation, cfg.Invitations.Delete))
	mux.HandleFunc("POST /invitations/{slug}/auth", limited(ratelimit.ActionAuthInvitation, cfg.Invitations.Authenticate))

	// Guestbook
	mux.HandleFunc("GET /invitations/{slug}/guestbook", cfg.Guestbook.List)
	mux.HandleFunc("POST /invitations/{slug}/guestbook", limited(ratelimit.ActionCreateGuestbook, cfg.Guestbook.Create))
	mux.HandleFunc("PUT /guestbook/{entryID}", cfg.Guestbook.Update)
	mux.HandleFunc("DELETE /guestbook/{entryID}", cfg.Guestbook.Delete)

	// Reviews
	mux.HandleFunc("GET /reviews", cfg.Reviews.List)
	mux.HandleFunc("POST /reviews", limited(ratelimit.ActionCreateReview, cfg.Reviews.Create))
	mux.HandleFunc("PUT /reviews/{reviewID}", cfg.Reviews.Update)
	mux.HandleFunc("DELETE /reviews/{reviewID}", cfg.Reviews.Delete)

	// Admin
	mux.HandleFunc("POST /admin/login", cfg.Admin.Login)
	mux.HandleFunc("POST /admin/retention/sweep", admin(cfg.Admin.Sweep))

	// Stored media
	mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaRoot))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
