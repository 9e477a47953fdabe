package v1

import (
	"log"

	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/fuzzy"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	offerRepo := repository.NewPostgresOfferRepository(deps.DB)
	offerSkillRepo := repository.NewPostgresOfferSkillRepository(deps.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(deps.DB)

	matcher := fuzzy.NewMatcher()

	matchUC := usecase.NewMatchUsecase(offerRepo, offerSkillRepo, candidateRepo)
	recommendUC := usecase.NewRecommendationUsecase(offerRepo, offerSkillRepo, candidateRepo)
	searchUC := usecase.NewOfferSearchUsecase(offerRepo, matcher, deps.Cache, deps.Logger)
	suggestUC := usecase.NewSuggestUsecase(offerRepo, matcher, deps.Cache, deps.Logger)

	handler.NewMatchHandler(matchUC).RegisterRoutes(r)
	handler.NewRecommendationHandler(recommendUC).RegisterRoutes(r)
	handler.NewOfferSearchHandler(searchUC).RegisterRoutes(r)
	handler.NewSuggestHandler(suggestUC).RegisterRoutes(r)
	handler.NewCacheAdminHandler(deps.Cache).RegisterRoutes(r)
}
