package skill

import "strings"

// Level is an ordinal proficiency tier attached to a skill name.
type Level int

const (
	LevelUnknown      Level = 0
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return LevelBeginner
	case "intermediate":
		return LevelIntermediate
	case "advanced":
		return LevelAdvanced
	default:
		return LevelUnknown
	}
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Relation describes how a held proficiency compares to a required one.
type Relation int

const (
	RelationBelow Relation = iota
	RelationMeets
	RelationExceeds
)

func Compare(have, need Level) Relation {
	switch {
	case have > need:
		return RelationExceeds
	case have == need:
		return RelationMeets
	default:
		return RelationBelow
	}
}
