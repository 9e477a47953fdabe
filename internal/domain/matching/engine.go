package matching

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/offer"
	"talent-match/internal/domain/skill"
	"talent-match/internal/fuzzy"
)

// Component weights. Skill fit dominates hireability; the split is a fixed
// design constant, not user-configurable.
const (
	weightSkills     = 0.5
	weightLocation   = 0.2
	weightContract   = 0.15
	weightExperience = 0.15
)

// Formula is surfaced verbatim in every Result so the UI can show how the
// overall score was derived.
const Formula = "overall = 0.5*skills + 0.2*location + 0.15*contract + 0.15*experience"

// Location scoring rule: folded exact match scores 100, substring
// containment in either direction ("Tunis" vs "Grand Tunis") scores the
// partial value, and a side with no location set is neutral.
const (
	locationPartialScore = 60.0
	locationNeutralScore = 50.0
)

type MatchLevel int

const (
	MatchWeak MatchLevel = iota
	MatchModerate
	MatchGood
	MatchExcellent
)

func (l MatchLevel) String() string {
	switch l {
	case MatchExcellent:
		return "excellent"
	case MatchGood:
		return "good"
	case MatchModerate:
		return "moderate"
	default:
		return "weak"
	}
}

// Result is a value object created fresh on every Calculate call. Every
// required skill lands in exactly one of Matching/Partial/Missing, and all
// scores sit in [0,100].
type Result struct {
	OverallScore      float64
	SkillsScore       float64
	LocationScore     float64
	ContractTypeScore float64
	ExperienceScore   float64
	MatchingSkills    []string
	PartialSkills     []string
	MissingSkills     []string
	MatchLevel        MatchLevel
	Explanation       string
	Formula           string
}

var (
	ErrNilProfile = errors.New("nil candidate profile")
	ErrNilOffer   = errors.New("nil job offer")
)

// Calculate scores how well profile fits o across skills, location,
// contract type and experience. Pure and deterministic: identical inputs
// always produce identical results. A nil profile or offer is a programmer
// error and fails fast; every other degenerate input (empty skills, empty
// preferences, no location) degrades to a neutral or zero score instead.
func Calculate(profile *candidate.Profile, o *offer.Offer) (Result, error) {
	if profile == nil {
		return Result{}, ErrNilProfile
	}
	if o == nil {
		return Result{}, ErrNilOffer
	}

	held := make(map[string]skill.Level, len(profile.Skills))
	for _, s := range profile.Skills {
		name := strings.ToLower(strings.TrimSpace(s.SkillName))
		if name == "" {
			continue
		}
		held[name] = s.Level // duplicate names: last write wins
	}

	matchingSkills := make([]string, 0, len(o.RequiredSkills))
	partialSkills := make([]string, 0)
	missingSkills := make([]string, 0)

	for _, req := range o.RequiredSkills {
		name := strings.ToLower(strings.TrimSpace(req.SkillName))
		have, ok := held[name]
		switch {
		case !ok:
			missingSkills = append(missingSkills, req.SkillName)
		case skill.Compare(have, req.LevelRequired) == skill.RelationBelow:
			partialSkills = append(partialSkills, req.SkillName)
		default:
			matchingSkills = append(matchingSkills, req.SkillName)
		}
	}

	// An offer with no stated requirements carries no skill penalty.
	skillsScore := 100.0
	if total := len(o.RequiredSkills); total > 0 {
		credit := float64(len(matchingSkills)) + 0.5*float64(len(partialSkills))
		skillsScore = 100 * credit / float64(total)
	}

	locationScore := scoreLocation(profile.Location, o.Location)
	contractScore := scoreContract(profile.PreferredContractTypes, o.ContractType)
	experienceScore := scoreExperience(profile.YearsOfExperience, o.MinExperienceYears)

	overall := weightSkills*skillsScore +
		weightLocation*locationScore +
		weightContract*contractScore +
		weightExperience*experienceScore
	overall = math.Round(overall*10) / 10

	res := Result{
		OverallScore:      overall,
		SkillsScore:       skillsScore,
		LocationScore:     locationScore,
		ContractTypeScore: contractScore,
		ExperienceScore:   experienceScore,
		MatchingSkills:    matchingSkills,
		PartialSkills:     partialSkills,
		MissingSkills:     missingSkills,
		MatchLevel:        classify(overall),
		Formula:           Formula,
	}
	res.Explanation = explain(res)
	return res, nil
}

func scoreLocation(candidateLoc, offerLoc string) float64 {
	cand := fuzzy.Fold(candidateLoc)
	off := fuzzy.Fold(offerLoc)

	// Absence of a location is "no information", not a mismatch.
	if cand == "" || off == "" {
		return locationNeutralScore
	}
	if cand == off {
		return 100
	}
	if strings.Contains(off, cand) || strings.Contains(cand, off) {
		return locationPartialScore
	}
	return 0
}

func scoreContract(preferred map[offer.ContractType]struct{}, offered offer.ContractType) float64 {
	// An empty preference set means open to anything.
	if len(preferred) == 0 {
		return 100
	}
	if _, ok := preferred[offered]; ok {
		return 100
	}
	return 0
}

func scoreExperience(years, minYears int) float64 {
	if minYears <= 0 {
		return 100
	}
	if years < 0 {
		years = 0
	}
	if years >= minYears {
		return 100
	}
	shortfall := float64(minYears - years)
	score := 100 - 100*shortfall/float64(minYears)
	if score < 0 {
		return 0
	}
	return score
}

func classify(overall float64) MatchLevel {
	switch {
	case overall >= 85:
		return MatchExcellent
	case overall >= 70:
		return MatchGood
	case overall >= 50:
		return MatchModerate
	default:
		return MatchWeak
	}
}

// explain names the strongest and weakest components. Ties resolve to the
// first component in the fixed order skills, location, contract type,
// experience, keeping the text deterministic.
func explain(r Result) string {
	type component struct {
		name  string
		score float64
	}
	comps := []component{
		{"skills", r.SkillsScore},
		{"location", r.LocationScore},
		{"contract type", r.ContractTypeScore},
		{"experience", r.ExperienceScore},
	}

	best := comps[0]
	worst := comps[0]
	for _, c := range comps[1:] {
		if c.score > best.score {
			best = c
		}
		if c.score < worst.score {
			worst = c
		}
	}

	var head string
	switch r.MatchLevel {
	case MatchExcellent:
		head = "Excellent match"
	case MatchGood:
		head = "Good match"
	case MatchModerate:
		head = "Moderate match"
	default:
		head = "Weak match"
	}
	return fmt.Sprintf("%s: strongest on %s (%.1f), weakest on %s (%.1f)",
		head, best.name, best.score, worst.name, worst.score)
}
