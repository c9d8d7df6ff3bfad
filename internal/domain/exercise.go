package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BodyPart classifies an exercise for aggregation purposes.
type BodyPart string

const (
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartLegs      BodyPart = "legs"
	BodyPartArms      BodyPart = "arms"
	BodyPartCore      BodyPart = "core"
	BodyPartFullBody  BodyPart = "full-body"
)

// AllBodyParts lists every valid BodyPart value.
var AllBodyParts = []BodyPart{
	BodyPartChest,
	BodyPartBack,
	BodyPartShoulders,
	BodyPartLegs,
	BodyPartArms,
	BodyPartCore,
	BodyPartFullBody,
}

// IsValid reports whether b is one of the known body parts.
func (b BodyPart) IsValid() bool {
	for _, bp := range AllBodyParts {
		if b == bp {
			return true
		}
	}
	return false
}

// Difficulty grades an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is one of the known difficulty levels.
func (d Difficulty) IsValid() bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

// Recommendation defaults applied when a new exercise omits them.
const (
	DefaultRecommendedSets = 3
	DefaultRecommendedReps = 12
)

// Exercise is a single entry in the exercise library. Names are unique
// across the whole catalog, regardless of body part.
type Exercise struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	BodyPart        BodyPart           `bson:"bodyPart" json:"bodyPart"`
	Difficulty      Difficulty         `bson:"difficulty" json:"difficulty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	RecommendedSets int                `bson:"recommendedSets" json:"recommendedSets"`
	RecommendedReps int                `bson:"recommendedReps" json:"recommendedReps"`
	IsDefault       bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
