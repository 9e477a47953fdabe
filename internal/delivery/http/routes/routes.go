package routes

import (
	"log"

	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
