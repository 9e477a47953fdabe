package handler

import (
	"context"
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OfferSearchHandler struct {
	uc usecase.OfferSearchUsecase
}

func NewOfferSearchHandler(uc usecase.OfferSearchUsecase) *OfferSearchHandler {
	return &OfferSearchHandler{uc: uc}
}

func (h *OfferSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/offers")
	grp.Get("/search", h.Search)
}

func (h *OfferSearchHandler) Search(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	threshold, err := parseQueryFloat(c, "threshold", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	params := usecase.OfferSearchParams{
		Query:     c.Query("q"),
		Threshold: threshold,
		Limit:     limit,
		Offset:    offset,
	}

	items, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	out := dto.OfferSearchResponse{
		Query:     params.Query,
		Threshold: params.Threshold,
		Count:     len(items),
		Items:     items,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapSearchUsecaseError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(s, 64)
}
