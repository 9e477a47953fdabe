package handler

import (
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// CacheAdminHandler exposes cache invalidation for operators. Offers are
// loaded by out-of-band imports, so stale search results need a manual kick.
type CacheAdminHandler struct {
	cache *cache.Redis
}

func NewCacheAdminHandler(c *cache.Redis) *CacheAdminHandler {
	return &CacheAdminHandler{cache: c}
}

func (h *CacheAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/admin")
	grp.Post("/cache/invalidate", h.Invalidate)
}

func (h *CacheAdminHandler) Invalidate(c fiber.Ctx) error {
	if err := h.cache.InvalidateOfferCaches(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
