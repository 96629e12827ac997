package router

import (
	"net/http"

	"quick-bite/internal/auth"
	"quick-bite/internal/handler"
	"quick-bite/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	userHandler *handler.UserHandler,
	cartHandler *handler.CartHandler,
	foodHandler *handler.FoodHandler,
	orderHandler *handler.OrderHandler,
	tokens *auth.TokenManager,
	uploadDir string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	requireAuth := middleware.RequireAuth(tokens, logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("API Working"))
	})

	// Public routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/food/list", foodHandler.List)
	r.Post("/api/order/verify", orderHandler.Verify)

	// Authenticated routes; admin checks happen in the services, after
	// authentication.
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/api/cart/add", cartHandler.Add)
		r.Post("/api/cart/remove", cartHandler.Remove)
		r.Post("/api/cart/get", cartHandler.Get)

		r.Post("/api/order/place", orderHandler.Place)
		r.Post("/api/order/userorders", orderHandler.UserOrders)
		r.Post("/api/order/list", orderHandler.List)
		r.Post("/api/order/status", orderHandler.UpdateStatus)

		r.Post("/api/food/add", foodHandler.Add)
		r.Post("/api/food/remove", foodHandler.Remove)
	})

	// Catalogue images
	fileServer := http.FileServer(http.Dir(uploadDir))
	r.Handle("/images/*", http.StripPrefix("/images/", fileServer))

	return r
}
