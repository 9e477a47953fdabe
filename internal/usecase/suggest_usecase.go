package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"talent-match/internal/fuzzy"
	"talent-match/internal/repository"
)

const (
	suggestPoolSize = 1000
	suggestCacheTTL = 10 * time.Minute
)

type SuggestUsecase interface {
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

type Suggest struct {
	offers  repository.OfferRepository
	matcher *fuzzy.Matcher
	cache   SearchCache
	logger  *log.Logger
}

func NewSuggestUsecase(offers repository.OfferRepository, matcher *fuzzy.Matcher, cache SearchCache, logger *log.Logger) *Suggest {
	if matcher == nil {
		matcher = fuzzy.NewMatcher()
	}
	return &Suggest{offers: offers, matcher: matcher, cache: cache, logger: logger}
}

// Suggest proposes offer titles close to a partial or misspelled query.
func (u *Suggest) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	key := SuggestCacheKey(query, limit)
	if u.cache != nil {
		var cached []string
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	titles, err := u.offers.ListTitles(ctx, suggestPoolSize)
	if err != nil {
		return nil, ErrInternal
	}

	out := u.matcher.Suggestions(query, titles, limit)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, suggestCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Suggest] cache write failed key=%s err=%v", key, err)
		}
	}
	return out, nil
}
