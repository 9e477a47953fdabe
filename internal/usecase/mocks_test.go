package usecase

import (
	"context"
	"encoding/json"
	"time"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockOfferRepo struct {
	offers []repository.Offer
	titles []string
	err    error
}

func (m mockOfferRepo) FindByID(_ context.Context, offerID uuid.UUID) (repository.Offer, error) {
	if m.err != nil {
		return repository.Offer{}, m.err
	}
	for _, o := range m.offers {
		if o.ID == offerID {
			return o, nil
		}
	}
	return repository.Offer{}, repository.ErrOfferNotFound
}

func (m mockOfferRepo) ListOffers(context.Context, int, int) ([]repository.Offer, error) {
	return m.offers, m.err
}

func (m mockOfferRepo) ListTitles(context.Context, int) ([]string, error) {
	return m.titles, m.err
}

type mockOfferSkillRepo struct {
	byOffer map[uuid.UUID][]repository.OfferSkillRequirement
	err     error
}

func (m mockOfferSkillRepo) FindByOfferID(_ context.Context, offerID uuid.UUID) ([]repository.OfferSkillRequirement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byOffer[offerID], nil
}

func (m mockOfferSkillRepo) FindByOfferIDs(context.Context, []uuid.UUID) (map[uuid.UUID][]repository.OfferSkillRequirement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byOffer, nil
}

type mockCandidateRepo struct {
	profile repository.CandidateProfile
	err     error
}

func (m mockCandidateRepo) FindProfileByID(_ context.Context, candidateID uuid.UUID) (repository.CandidateProfile, error) {
	if m.err != nil {
		return repository.CandidateProfile{}, m.err
	}
	if m.profile.ID != candidateID {
		return repository.CandidateProfile{}, repository.ErrCandidateNotFound
	}
	return m.profile, nil
}

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}
