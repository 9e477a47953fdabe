package candidate

import (
	"talent-match/internal/domain/offer"
	"talent-match/internal/domain/skill"

	"github.com/google/uuid"
)

// Skill is a proficiency the candidate declares. Unique by name; when the
// same name appears twice the last entry wins.
type Skill struct {
	SkillName string
	Level     skill.Level
}

// Profile is an externally owned snapshot of a candidate. The matching
// engine never retains a reference to it across calls.
type Profile struct {
	ID                     uuid.UUID
	FullName               string
	Location               string
	PreferredContractTypes map[offer.ContractType]struct{}
	YearsOfExperience      int
	Skills                 []Skill
}
