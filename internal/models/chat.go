package models

// Role identifies the speaker of a transcript turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// Transcript is a per-user chat history. Even indices are user turns and odd
// indices coach turns; a completed exchange always leaves an even length.
type Transcript []string

// Turn is one transcript entry with its role resolved.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// RoleAt returns the role of the turn at index i.
func RoleAt(i int) Role {
	if i%2 == 0 {
		return RoleUser
	}
	return RoleCoach
}

// Turns resolves the role of every entry.
func (t Transcript) Turns() []Turn {
	out := make([]Turn, 0, len(t))
	for i, text := range t {
		out = append(out, Turn{Role: RoleAt(i), Text: text})
	}
	return out
}
