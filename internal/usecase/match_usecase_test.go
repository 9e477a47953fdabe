package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func TestMatchUsecase_NilIDs(t *testing.T) {
	uc := NewMatchUsecase(mockOfferRepo{}, mockOfferSkillRepo{}, mockCandidateRepo{})

	_, err := uc.CalculateMatch(context.Background(), uuid.Nil, uuid.New())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = uc.CalculateMatch(context.Background(), uuid.New(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchUsecase_OfferNotFound(t *testing.T) {
	uc := NewMatchUsecase(mockOfferRepo{}, mockOfferSkillRepo{}, mockCandidateRepo{})
	_, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestMatchUsecase_CandidateNotFound(t *testing.T) {
	offerID := uuid.New()
	uc := NewMatchUsecase(
		mockOfferRepo{offers: []repository.Offer{{ID: offerID, Title: "Backend Developer"}}},
		mockOfferSkillRepo{},
		mockCandidateRepo{},
	)
	_, err := uc.CalculateMatch(context.Background(), uuid.New(), offerID)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestMatchUsecase_Success(t *testing.T) {
	offerID := uuid.New()
	candidateID := uuid.New()

	uc := NewMatchUsecase(
		mockOfferRepo{offers: []repository.Offer{{
			ID:           offerID,
			Title:        "Backend Developer",
			Location:     "Tunis",
			ContractType: "cdi",
		}}},
		mockOfferSkillRepo{byOffer: map[uuid.UUID][]repository.OfferSkillRequirement{offerID: {
			{OfferID: offerID, SkillName: "Java", RequiredLevel: "intermediate"},
			{OfferID: offerID, SkillName: "Python", RequiredLevel: "beginner"},
		}}},
		mockCandidateRepo{profile: repository.CandidateProfile{
			ID:       candidateID,
			Location: "Tunis",
			Skills: []repository.CandidateSkill{
				{SkillName: "Java", Level: "advanced"},
			},
		}},
	)

	res, err := uc.CalculateMatch(context.Background(), candidateID, offerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkillsScore != 50.0 {
		t.Fatalf("skills score: %v, want 50.0", res.SkillsScore)
	}
	if len(res.MatchingSkills) != 1 || res.MatchingSkills[0] != "Java" {
		t.Fatalf("matching skills: %v", res.MatchingSkills)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "Python" {
		t.Fatalf("missing skills: %v", res.MissingSkills)
	}
	// Empty preference set keeps the candidate open to any contract.
	if res.ContractTypeScore != 100.0 {
		t.Fatalf("contract score: %v, want 100", res.ContractTypeScore)
	}
}

func TestMatchUsecase_RepoFailure(t *testing.T) {
	uc := NewMatchUsecase(mockOfferRepo{err: errors.New("db down")}, mockOfferSkillRepo{}, mockCandidateRepo{})
	_, err := uc.CalculateMatch(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
