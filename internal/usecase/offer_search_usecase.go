package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"talent-match/internal/fuzzy"
	"talent-match/internal/repository"
	"talent-match/internal/search"

	"github.com/google/uuid"
)

const (
	defaultSearchThreshold = 0.6
	searchPoolSize         = 500
	searchCacheTTL         = 5 * time.Minute
)

type OfferSearchParams struct {
	Query     string
	Threshold float64
	Limit     int
	Offset    int
}

type OfferSearchItem struct {
	OfferID            uuid.UUID  `json:"offer_id"`
	Title              string     `json:"title"`
	Company            string     `json:"company"`
	Location           string     `json:"location"`
	Description        string     `json:"description"`
	ContractType       string     `json:"contract_type"`
	MinExperienceYears int        `json:"min_experience_years"`
	PostedAt           *time.Time `json:"posted_at,omitempty"`
}

type OfferSearchUsecase interface {
	Search(ctx context.Context, params OfferSearchParams) ([]OfferSearchItem, error)
}

type OfferSearch struct {
	offers  repository.OfferRepository
	matcher *fuzzy.Matcher
	cache   SearchCache
	logger  *log.Logger
}

func NewOfferSearchUsecase(offers repository.OfferRepository, matcher *fuzzy.Matcher, cache SearchCache, logger *log.Logger) *OfferSearch {
	if matcher == nil {
		matcher = fuzzy.NewMatcher()
	}
	return &OfferSearch{offers: offers, matcher: matcher, cache: cache, logger: logger}
}

// Search ranks the offer pool against the free-text query. The whole pool
// is ranked before paging so page boundaries follow relevance order, and
// the ranked page is cached per normalized query.
func (u *OfferSearch) Search(ctx context.Context, params OfferSearchParams) ([]OfferSearchItem, error) {
	if params.Limit == 0 {
		params.Limit = 20
	}
	if params.Limit < 0 || params.Limit > 50 {
		return nil, ErrInvalidInput
	}
	if params.Offset < 0 {
		return nil, ErrInvalidInput
	}
	if params.Threshold == 0 {
		params.Threshold = defaultSearchThreshold
	}
	if params.Threshold < 0 || params.Threshold > 1 {
		return nil, ErrInvalidInput
	}
	params.Query = strings.TrimSpace(params.Query)

	key := OffersSearchCacheKey(params)
	if u.cache != nil {
		var cached []OfferSearchItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.offers.ListOffers(ctx, searchPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}

	ranked, err := search.Rank(ctx, u.matcher, params.Query, rows, offerSearchFields, params.Threshold)
	if err != nil {
		// Cancellation of a superseded search propagates as-is.
		return nil, err
	}

	if params.Offset >= len(ranked) {
		ranked = nil
	} else {
		ranked = ranked[params.Offset:]
	}
	if len(ranked) > params.Limit {
		ranked = ranked[:params.Limit]
	}

	items := make([]OfferSearchItem, 0, len(ranked))
	for _, row := range ranked {
		items = append(items, OfferSearchItem{
			OfferID:            row.ID,
			Title:              row.Title,
			Company:            row.Company,
			Location:           row.Location,
			Description:        row.Description,
			ContractType:       row.ContractType,
			MinExperienceYears: row.MinExperienceYears,
			PostedAt:           row.PostedAt,
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, searchCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Search] cache write failed key=%s err=%v", key, err)
		}
	}
	return items, nil
}

func offerSearchFields(row repository.Offer) []string {
	return []string{row.Title, row.Company, row.Location, row.Description}
}
