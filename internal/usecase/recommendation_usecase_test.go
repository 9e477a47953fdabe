package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func TestRecommendation_OrdersByScore(t *testing.T) {
	candidateID := uuid.New()
	strong := uuid.New()
	weak := uuid.New()

	uc := NewRecommendationUsecase(
		mockOfferRepo{offers: []repository.Offer{
			{ID: weak, Title: "Accountant", Location: "Sfax", ContractType: "cdd"},
			{ID: strong, Title: "Go Developer", Location: "Tunis", ContractType: "cdi"},
		}},
		mockOfferSkillRepo{byOffer: map[uuid.UUID][]repository.OfferSkillRequirement{
			strong: {{OfferID: strong, SkillName: "Go", RequiredLevel: "intermediate"}},
			weak:   {{OfferID: weak, SkillName: "Excel", RequiredLevel: "advanced"}},
		}},
		mockCandidateRepo{profile: repository.CandidateProfile{
			ID:       candidateID,
			Location: "Tunis",
			Skills:   []repository.CandidateSkill{{SkillName: "Go", Level: "advanced"}},
		}},
	)

	items, err := uc.Recommend(context.Background(), candidateID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Offer.ID != strong {
		t.Fatalf("expected strong offer first, got %v", items[0].Offer.Title)
	}
	if items[0].Result.OverallScore < items[1].Result.OverallScore {
		t.Fatalf("scores not descending: %v then %v",
			items[0].Result.OverallScore, items[1].Result.OverallScore)
	}
}

func TestRecommendation_LimitTruncates(t *testing.T) {
	candidateID := uuid.New()
	offers := make([]repository.Offer, 5)
	for i := range offers {
		offers[i] = repository.Offer{ID: uuid.New(), Title: "Offer"}
	}

	uc := NewRecommendationUsecase(
		mockOfferRepo{offers: offers},
		mockOfferSkillRepo{},
		mockCandidateRepo{profile: repository.CandidateProfile{ID: candidateID}},
	)

	items, err := uc.Recommend(context.Background(), candidateID, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected limit to cap results at 3, got %d", len(items))
	}
}

func TestRecommendation_UnknownCandidate(t *testing.T) {
	uc := NewRecommendationUsecase(mockOfferRepo{}, mockOfferSkillRepo{}, mockCandidateRepo{})
	_, err := uc.Recommend(context.Background(), uuid.New(), 10)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestRecommendation_Cancellation(t *testing.T) {
	candidateID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	repo := mockOfferRepo{offers: []repository.Offer{{ID: uuid.New(), Title: "Offer"}}}
	uc := NewRecommendationUsecase(repo, mockOfferSkillRepo{},
		mockCandidateRepo{profile: repository.CandidateProfile{ID: candidateID}})

	cancel()
	_, err := uc.Recommend(ctx, candidateID, 10)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
