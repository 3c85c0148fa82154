package models

import (
	"testing"
	"time"
)

// TestMuscleGroupTextDefault verifies that an empty selection falls back to "Full Body".
func TestMuscleGroupTextDefault(t *testing.T) {
	if got := MuscleGroupText(nil); got != "Full Body" {
		t.Errorf("MuscleGroupText(nil) = %q, want %q", got, "Full Body")
	}
	if got := MuscleGroupText([]string{}); got != "Full Body" {
		t.Errorf("MuscleGroupText(empty) = %q, want %q", got, "Full Body")
	}
}

// TestMuscleGroupTextJoin verifies that selected groups are joined with a comma.
func TestMuscleGroupTextJoin(t *testing.T) {
	if got := MuscleGroupText([]string{"Core", "Legs"}); got != "Core, Legs" {
		t.Errorf("MuscleGroupText = %q, want %q", got, "Core, Legs")
	}
}

// TestNewWorkout verifies id generation, timestamp formatting and that ids are unique.
func TestNewWorkout(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	spec := WorkoutSpec{WorkoutType: "Cardio", Content: "# Warm-Up"}

	a := NewWorkout(spec, now)
	b := NewWorkout(spec, now)

	if a.Timestamp != "2025-03-04 05:06:07" {
		t.Errorf("timestamp = %q, want %q", a.Timestamp, "2025-03-04 05:06:07")
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("ids not unique: %q, %q", a.ID, b.ID)
	}
	if a.Data.Content != "# Warm-Up" {
		t.Errorf("content = %q", a.Data.Content)
	}
	if len(a.ShortID()) != 8 {
		t.Errorf("ShortID length = %d, want 8", len(a.ShortID()))
	}
}

// TestValidDuration verifies slider bounds and step.
func TestValidDuration(t *testing.T) {
	for _, d := range []int{10, 30, 120} {
		if !ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = false, want true", d)
		}
	}
	for _, d := range []int{0, 5, 33, 125} {
		if ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = true, want false", d)
		}
	}
}

// TestTranscriptTurns verifies alternating role assignment.
func TestTranscriptTurns(t *testing.T) {
	turns := Transcript{"hi", "hello", "how?", "like this"}.Turns()
	if len(turns) != 4 {
		t.Fatalf("len = %d, want 4", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleCoach || turns[2].Role != RoleUser {
		t.Errorf("unexpected roles: %+v", turns)
	}
}

// TestUserLastWorkout verifies that an empty history has no last workout.
func TestUserLastWorkout(t *testing.T) {
	u := User{Username: "Zach"}
	if _, ok := u.LastWorkout(); ok {
		t.Error("expected no last workout for empty history")
	}
	u.Workouts = []Workout{{ID: "a", Timestamp: "t1"}, {ID: "b", Timestamp: "t2"}}
	last, ok := u.LastWorkout()
	if !ok || last.ID != "b" {
		t.Errorf("LastWorkout = %+v, %v", last, ok)
	}
	if _, ok := u.FindWorkout("a"); !ok {
		t.Error("FindWorkout(a) not found")
	}
}
