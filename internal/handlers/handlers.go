package handlers

import (
	"CheckNotes/internal/config"
	"CheckNotes/internal/middleware"
	"CheckNotes/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler собирает роутер сервера синхронизации.
func NewHandler(
	userService *service.UserService,
	storageService *service.StorageService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)
	storageHandler := NewStorageHandler(storageService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Storage routes
	r.Route("/api/storage", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/{key}", storageHandler.Get)
		r.Put("/{key}", storageHandler.Put)
		r.Delete("/{key}", storageHandler.Delete)
	})

	return &Handler{Router: r}
}
