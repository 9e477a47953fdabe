package usecase

import (
	"talent-match/internal/domain/candidate"
	"talent-match/internal/domain/offer"
	"talent-match/internal/domain/skill"
	"talent-match/internal/repository"
)

func buildProfile(row repository.CandidateProfile) *candidate.Profile {
	prefs := make(map[offer.ContractType]struct{}, len(row.PreferredContractTypes))
	for _, raw := range row.PreferredContractTypes {
		ct := offer.ParseContractType(raw)
		if ct == offer.ContractUnknown {
			continue
		}
		prefs[ct] = struct{}{}
	}

	skills := make([]candidate.Skill, 0, len(row.Skills))
	for _, s := range row.Skills {
		skills = append(skills, candidate.Skill{
			SkillName: s.SkillName,
			Level:     skill.ParseLevel(s.Level),
		})
	}

	return &candidate.Profile{
		ID:                     row.ID,
		FullName:               row.FullName,
		Location:               row.Location,
		PreferredContractTypes: prefs,
		YearsOfExperience:      row.YearsOfExperience,
		Skills:                 skills,
	}
}

func buildOffer(row repository.Offer, reqs []repository.OfferSkillRequirement) *offer.Offer {
	required := make([]offer.SkillRequirement, 0, len(reqs))
	for _, r := range reqs {
		required = append(required, offer.SkillRequirement{
			SkillName:     r.SkillName,
			LevelRequired: skill.ParseLevel(r.RequiredLevel),
		})
	}

	return &offer.Offer{
		ID:                 row.ID,
		Title:              row.Title,
		Company:            row.Company,
		Location:           row.Location,
		Description:        row.Description,
		ContractType:       offer.ParseContractType(row.ContractType),
		MinExperienceYears: row.MinExperienceYears,
		RequiredSkills:     required,
		PostedAt:           row.PostedAt,
	}
}
