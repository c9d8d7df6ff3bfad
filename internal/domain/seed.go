package domain

// DefaultExercises returns the builtin exercise catalog used to seed an
// empty library. Callers get a fresh slice on every call so seeded copies
// can be stamped with ids and timestamps independently.
func DefaultExercises() []Exercise {
	return []Exercise{
		{Name: "Bench Press", BodyPart: BodyPartChest, Difficulty: DifficultyIntermediate, Description: "Barbell press from a flat bench.", RecommendedSets: 4, RecommendedReps: 8, IsDefault: true},
		{Name: "Push-Up", BodyPart: BodyPartChest, Difficulty: DifficultyBeginner, Description: "Bodyweight press from the floor.", RecommendedSets: 3, RecommendedReps: 15, IsDefault: true},
		{Name: "Incline Dumbbell Press", BodyPart: BodyPartChest, Difficulty: DifficultyIntermediate, RecommendedSets: 3, RecommendedReps: 10, IsDefault: true},
		{Name: "Pull-Up", BodyPart: BodyPartBack, Difficulty: DifficultyIntermediate, Description: "Bodyweight vertical pull.", RecommendedSets: 3, RecommendedReps: 8, IsDefault: true},
		{Name: "Barbell Row", BodyPart: BodyPartBack, Difficulty: DifficultyIntermediate, RecommendedSets: 4, RecommendedReps: 10, IsDefault: true},
		{Name: "Deadlift", BodyPart: BodyPartBack, Difficulty: DifficultyAdvanced, Description: "Barbell hip hinge from the floor.", RecommendedSets: 3, RecommendedReps: 5, IsDefault: true},
		{Name: "Overhead Press", BodyPart: BodyPartShoulders, Difficulty: DifficultyIntermediate, RecommendedSets: 4, RecommendedReps: 8, IsDefault: true},
		{Name: "Lateral Raise", BodyPart: BodyPartShoulders, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 15, IsDefault: true},
		{Name: "Squat", BodyPart: BodyPartLegs, Difficulty: DifficultyIntermediate, Description: "Barbell back squat.", RecommendedSets: 4, RecommendedReps: 8, IsDefault: true},
		{Name: "Lunge", BodyPart: BodyPartLegs, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Leg Press", BodyPart: BodyPartLegs, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Romanian Deadlift", BodyPart: BodyPartLegs, Difficulty: DifficultyIntermediate, RecommendedSets: 3, RecommendedReps: 10, IsDefault: true},
		{Name: "Biceps Curl", BodyPart: BodyPartArms, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Triceps Pushdown", BodyPart: BodyPartArms, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Hammer Curl", BodyPart: BodyPartArms, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Plank", BodyPart: BodyPartCore, Difficulty: DifficultyBeginner, Description: "Static hold; log duration seconds as reps.", RecommendedSets: 3, RecommendedReps: 60, IsDefault: true},
		{Name: "Hanging Leg Raise", BodyPart: BodyPartCore, Difficulty: DifficultyIntermediate, RecommendedSets: 3, RecommendedReps: 12, IsDefault: true},
		{Name: "Russian Twist", BodyPart: BodyPartCore, Difficulty: DifficultyBeginner, RecommendedSets: 3, RecommendedReps: 20, IsDefault: true},
		{Name: "Burpee", BodyPart: BodyPartFullBody, Difficulty: DifficultyIntermediate, RecommendedSets: 3, RecommendedReps: 15, IsDefault: true},
		{Name: "Kettlebell Swing", BodyPart: BodyPartFullBody, Difficulty: DifficultyIntermediate, RecommendedSets: 4, RecommendedReps: 15, IsDefault: true},
		{Name: "Clean and Press", BodyPart: BodyPartFullBody, Difficulty: DifficultyAdvanced, RecommendedSets: 3, RecommendedReps: 6, IsDefault: true},
	}
}
