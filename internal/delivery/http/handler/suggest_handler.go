package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SuggestHandler struct {
	uc usecase.SuggestUsecase
}

func NewSuggestHandler(uc usecase.SuggestUsecase) *SuggestHandler {
	return &SuggestHandler{uc: uc}
}

func (h *SuggestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/offers")
	grp.Get("/suggest", h.Suggest)
}

func (h *SuggestHandler) Suggest(c fiber.Ctx) error {
	query := c.Query("q")

	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	suggestions, err := h.uc.Suggest(c.Context(), query, limit)
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SuggestResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}
