package models

// User is a registered account. Username is the registry key and is not
// serialised inside the record itself.
type User struct {
	Username string    `json:"-"`
	Password string    `json:"password"`
	Workouts []Workout `json:"workouts"`
}

// LastWorkout returns the most recently saved workout, if any.
func (u User) LastWorkout() (Workout, bool) {
	if len(u.Workouts) == 0 {
		return Workout{}, false
	}
	return u.Workouts[len(u.Workouts)-1], true
}

// FindWorkout returns the workout with the given ID.
func (u User) FindWorkout(id string) (Workout, bool) {
	for _, w := range u.Workouts {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}

// DefaultUsers returns the seed registry written on first run.
func DefaultUsers() map[string]User {
	return map[string]User{
		"Zach": {Username: "Zach", Password: "ZML", Workouts: []Workout{}},
		"Mal":  {Username: "Mal", Password: "MMM", Workouts: []Workout{}},
	}
}
