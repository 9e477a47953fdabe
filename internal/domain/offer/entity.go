package offer

import (
	"strings"
	"time"

	"talent-match/internal/domain/skill"

	"github.com/google/uuid"
)

// ContractType enumerates the contract kinds an offer can carry.
type ContractType int

const (
	ContractUnknown ContractType = iota
	ContractCDI
	ContractCDD
	ContractStage
	ContractFreelance
	ContractAlternance
)

func ParseContractType(s string) ContractType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cdi":
		return ContractCDI
	case "cdd":
		return ContractCDD
	case "stage":
		return ContractStage
	case "freelance":
		return ContractFreelance
	case "alternance":
		return ContractAlternance
	default:
		return ContractUnknown
	}
}

func (c ContractType) String() string {
	switch c {
	case ContractCDI:
		return "cdi"
	case ContractCDD:
		return "cdd"
	case ContractStage:
		return "stage"
	case ContractFreelance:
		return "freelance"
	case ContractAlternance:
		return "alternance"
	default:
		return "unknown"
	}
}

// SkillRequirement is a single skill an offer asks for, with the minimum
// proficiency expected. Immutable once read by the matching engine.
type SkillRequirement struct {
	SkillName     string
	LevelRequired skill.Level
}

type Offer struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Location           string
	Description        string
	ContractType       ContractType
	MinExperienceYears int
	RequiredSkills     []SkillRequirement
	PostedAt           *time.Time
}
