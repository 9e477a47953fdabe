package usecase

import (
	"context"
	"errors"
	"sort"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// How many offers a single recommendation pass considers.
const recommendationPoolSize = 500

type RecommendationItem struct {
	Offer  repository.Offer
	Result matching.Result
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, candidateID uuid.UUID, limit int) ([]RecommendationItem, error)
}

type Recommendation struct {
	offers      repository.OfferRepository
	offerSkills repository.OfferSkillRepository
	candidates  repository.CandidateRepository
}

func NewRecommendationUsecase(offers repository.OfferRepository, offerSkills repository.OfferSkillRepository, candidates repository.CandidateRepository) *Recommendation {
	return &Recommendation{offers: offers, offerSkills: offerSkills, candidates: candidates}
}

// Recommend matches the candidate against every listed offer and returns
// the best fits first. The loop polls ctx so an abandoned request stops
// early instead of scoring the rest of the pool.
func (u *Recommendation) Recommend(ctx context.Context, candidateID uuid.UUID, limit int) ([]RecommendationItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	profileRow, err := u.candidates.FindProfileByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}
	profile := buildProfile(profileRow)

	offerRows, err := u.offers.ListOffers(ctx, recommendationPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(offerRows))
	for _, row := range offerRows {
		ids = append(ids, row.ID)
	}
	reqsByOffer, err := u.offerSkills.FindByOfferIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	items := make([]RecommendationItem, 0, len(offerRows))
	for _, row := range offerRows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := matching.Calculate(profile, buildOffer(row, reqsByOffer[row.ID]))
		if err != nil {
			return nil, ErrInternal
		}
		items = append(items, RecommendationItem{Offer: row, Result: res})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Result.OverallScore > items[j].Result.OverallScore
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
