package dto

import "talent-match/internal/usecase"

type OfferSearchResponse struct {
	Query     string                    `json:"query"`
	Threshold float64                   `json:"threshold"`
	Count     int                       `json:"count"`
	Items     []usecase.OfferSearchItem `json:"items"`
}

type SuggestResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
