package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

type offerSearchCacheKeyInput struct {
	Query     string  `json:"query"`
	Threshold float64 `json:"threshold"`
	Limit     int     `json:"limit"`
	Offset    int     `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func OffersSearchCacheKey(params OfferSearchParams) string {
	in := offerSearchCacheKeyInput{
		Query:     normalizeSearchValue(params.Query),
		Threshold: params.Threshold,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "offers:search:" + hex.EncodeToString(sum[:])
}

func SuggestCacheKey(query string, limit int) string {
	raw := normalizeSearchValue(query) + "|" + strconv.Itoa(limit)
	sum := sha256.Sum256([]byte(raw))
	return "offers:suggest:" + hex.EncodeToString(sum[:])
}
