package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the second-precision layout used for Workout.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultMuscleGroup is used in prompts and documents when no group was selected.
const DefaultMuscleGroup = "Full Body"

// WorkoutRequest is the structured input of the generate form.
type WorkoutRequest struct {
	WorkoutType  string
	MuscleGroups []string
	Duration     int
	Notes        string
}

// WorkoutSpec holds the parameters and the generated text of one workout plan.
type WorkoutSpec struct {
	WorkoutType string   `json:"workout_type"`
	MuscleGroup []string `json:"muscle_group"`
	Duration    int      `json:"duration"`
	Notes       string   `json:"notes"`
	Content     string   `json:"content"`
}

// Workout is a saved WorkoutSpec. It is never mutated after creation.
type Workout struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Data      WorkoutSpec `json:"data"`
}

// NewWorkout stamps spec with a fresh UUID and the formatted creation time.
func NewWorkout(spec WorkoutSpec, now time.Time) Workout {
	return Workout{
		ID:        uuid.New().String(),
		Timestamp: now.Format(TimestampLayout),
		Data:      spec,
	}
}

// ShortID returns the first 8 characters of the workout ID.
func (w Workout) ShortID() string {
	if len(w.ID) <= 8 {
		return w.ID
	}
	return w.ID[:8]
}

// MuscleGroupText joins the selected groups with ", ", defaulting to "Full Body".
func MuscleGroupText(groups []string) string {
	if len(groups) == 0 {
		return DefaultMuscleGroup
	}
	return strings.Join(groups, ", ")
}
