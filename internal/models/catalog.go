package models

import "slices"

// WorkoutTypes lists the selectable workout types in display order.
var WorkoutTypes = []string{
	"Strength Training",
	"Cardio",
	"HIIT",
	"Yoga",
	"Calisthenics",
	"Pilates",
	"Circuit Training",
}

// MuscleGroups lists the selectable target muscle groups in display order.
var MuscleGroups = []string{
	"Full Body",
	"Upper Body",
	"Lower Body",
	"Core",
	"Back",
	"Chest",
	"Arms",
	"Shoulders",
	"Legs",
	"Glutes",
}

// Duration slider bounds, in minutes.
const (
	MinDuration     = 10
	MaxDuration     = 120
	DurationStep    = 5
	DefaultDuration = 30
)

// DefaultNotes pre-fills the notes field of the generate form.
const DefaultNotes = "Include any injuries, equipment available, fitness level, or goals."

// IsWorkoutType reports whether t is one of WorkoutTypes.
func IsWorkoutType(t string) bool {
	return slices.Contains(WorkoutTypes, t)
}

// IsMuscleGroup reports whether g is one of MuscleGroups.
func IsMuscleGroup(g string) bool {
	return slices.Contains(MuscleGroups, g)
}

// ValidDuration reports whether minutes is within the slider range and on a step.
func ValidDuration(minutes int) bool {
	return minutes >= MinDuration && minutes <= MaxDuration && (minutes-MinDuration)%DurationStep == 0
}
