package dto

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

type MatchResponse struct {
	CandidateID       uuid.UUID `json:"candidate_id"`
	OfferID           uuid.UUID `json:"offer_id"`
	OverallScore      float64   `json:"overall_score"`
	SkillsScore       float64   `json:"skills_score"`
	LocationScore     float64   `json:"location_score"`
	ContractTypeScore float64   `json:"contract_type_score"`
	ExperienceScore   float64   `json:"experience_score"`
	MatchingSkills    []string  `json:"matching_skills"`
	PartialSkills     []string  `json:"partial_skills"`
	MissingSkills     []string  `json:"missing_skills"`
	MatchLevel        string    `json:"match_level"`
	Explanation       string    `json:"explanation"`
	Formula           string    `json:"formula"`
}

func NewMatchResponse(candidateID, offerID uuid.UUID, res matching.Result) MatchResponse {
	return MatchResponse{
		CandidateID:       candidateID,
		OfferID:           offerID,
		OverallScore:      res.OverallScore,
		SkillsScore:       res.SkillsScore,
		LocationScore:     res.LocationScore,
		ContractTypeScore: res.ContractTypeScore,
		ExperienceScore:   res.ExperienceScore,
		MatchingSkills:    res.MatchingSkills,
		PartialSkills:     res.PartialSkills,
		MissingSkills:     res.MissingSkills,
		MatchLevel:        res.MatchLevel.String(),
		Explanation:       res.Explanation,
		Formula:           res.Formula,
	}
}

type RecommendationResponse struct {
	OfferID      uuid.UUID `json:"offer_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	OverallScore float64   `json:"overall_score"`
	MatchLevel   string    `json:"match_level"`
	Explanation  string    `json:"explanation"`
}

func NewRecommendationResponse(item usecase.RecommendationItem) RecommendationResponse {
	return RecommendationResponse{
		OfferID:      item.Offer.ID,
		Title:        item.Offer.Title,
		Company:      item.Offer.Company,
		Location:     item.Offer.Location,
		ContractType: item.Offer.ContractType,
		OverallScore: item.Result.OverallScore,
		MatchLevel:   item.Result.MatchLevel.String(),
		Explanation:  item.Result.Explanation,
	}
}
