package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/config"
	"retreat-backoffice/internal/handler"
	"retreat-backoffice/internal/middleware"
	"retreat-backoffice/internal/model"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Post        *handler.PostHandler
	Program     *handler.ProgramHandler
	Testimonial *handler.TestimonialHandler
	Reservation *handler.ReservationHandler
	Message     *handler.MessageHandler
	Setting     *handler.SettingHandler
	User        *handler.UserHandler
}

func New(cfg *config.Config, guard *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimit.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/verify", h.Auth.Verify)
			auth.Delete("/logout", h.Auth.Logout)
			auth.With(guard.RequireAuth).Get("/me", h.Auth.Me)
		})

		// Public site endpoints: no token required.
		api.Get("/posts", h.Post.ListPublished)
		api.Get("/posts/{slug}", h.Post.GetBySlug)
		api.Get("/programs", h.Program.ListActive)
		api.Get("/testimonials", h.Testimonial.ListApproved)
		api.Get("/settings", h.Setting.List)
		api.Get("/settings/{key}", h.Setting.Get)
		api.Post("/messages", h.Message.Create)
		api.Post("/reservations", h.Reservation.Create)

		// Back-office endpoints: every operation is enforced here by the
		// access guard, never by the client.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(guard.RequireAuth)

			admin.With(guard.RequireRole(model.RoleEditor)).Get("/posts", h.Post.ListAll)
			admin.With(guard.RequireRole(model.RoleEditor)).Post("/posts", h.Post.Create)
			admin.With(guard.RequireRole(model.RoleEditor)).Put("/posts/{id}", h.Post.Update)
			admin.With(guard.RequireRole(model.RoleEditor)).Delete("/posts/{id}", h.Post.Delete)

			admin.With(guard.RequireRole(model.RoleModerator)).Get("/programs", h.Program.ListAll)
			admin.With(guard.RequireRole(model.RoleModerator)).Post("/programs", h.Program.Create)
			admin.With(guard.RequireRole(model.RoleModerator)).Put("/programs/{id}", h.Program.Update)
			admin.With(guard.RequireRole(model.RoleModerator)).Delete("/programs/{id}", h.Program.Delete)

			admin.With(guard.RequireRole(model.RoleModerator)).Get("/testimonials", h.Testimonial.ListAll)
			admin.With(guard.RequireRole(model.RoleModerator)).Post("/testimonials", h.Testimonial.Create)
			admin.With(guard.RequireRole(model.RoleModerator)).Put("/testimonials/{id}", h.Testimonial.Update)
			admin.With(guard.RequireRole(model.RoleModerator)).Delete("/testimonials/{id}", h.Testimonial.Delete)

			admin.With(guard.RequireRole(model.RoleModerator)).Get("/reservations", h.Reservation.List)
			admin.With(guard.RequireRole(model.RoleModerator)).Put("/reservations/{id}", h.Reservation.UpdateStatus)
			admin.With(guard.RequireAdmin).Delete("/reservations/{id}", h.Reservation.Delete)

			admin.With(guard.RequireRole(model.RoleModerator)).Get("/messages", h.Message.List)
			admin.With(guard.RequireRole(model.RoleModerator)).Put("/messages/{id}/read", h.Message.MarkRead)
			admin.With(guard.RequireAdmin).Delete("/messages/{id}", h.Message.Delete)

			// Highest-privilege surface: strict guard re-checks the admin
			// predicate at the database.
			admin.With(guard.RequireAdmin).Put("/settings/{key}", h.Setting.Set)
			admin.With(guard.RequireAdmin).Get("/users", h.User.List)
			admin.With(guard.RequireAdmin).Post("/users", h.User.Create)
			admin.With(guard.RequireAdmin).Put("/users/{id}", h.User.Update)
			admin.With(guard.RequireAdmin).Delete("/users/{id}", h.User.Delete)
		})
	})

	return r
}
