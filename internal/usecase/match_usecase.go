package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type MatchUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, offerID uuid.UUID) (matching.Result, error)
}

type Match struct {
	offers      repository.OfferRepository
	offerSkills repository.OfferSkillRepository
	candidates  repository.CandidateRepository
}

func NewMatchUsecase(offers repository.OfferRepository, offerSkills repository.OfferSkillRepository, candidates repository.CandidateRepository) *Match {
	return &Match{offers: offers, offerSkills: offerSkills, candidates: candidates}
}

func (u *Match) CalculateMatch(ctx context.Context, candidateID, offerID uuid.UUID) (matching.Result, error) {
	if candidateID == uuid.Nil || offerID == uuid.Nil {
		return matching.Result{}, ErrInvalidInput
	}

	offerRow, err := u.offers.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return matching.Result{}, ErrOfferNotFound
		}
		return matching.Result{}, ErrInternal
	}

	reqs, err := u.offerSkills.FindByOfferID(ctx, offerID)
	if err != nil {
		return matching.Result{}, ErrInternal
	}

	profileRow, err := u.candidates.FindProfileByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return matching.Result{}, ErrCandidateNotFound
		}
		return matching.Result{}, ErrInternal
	}

	res, err := matching.Calculate(buildProfile(profileRow), buildOffer(offerRow, reqs))
	if err != nil {
		return matching.Result{}, ErrInternal
	}
	return res, nil
}
