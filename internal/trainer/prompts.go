package trainer

import (
	"fmt"
	"strings"

	"github.com/claude/fitcoach/internal/models"
)

// CoachName is the persona the chat prompt establishes.
const CoachName = "Coach Alex"

const workoutPromptTemplate = `
Act as a professional fitness trainer. Generate a detailed workout plan with the following specifications:
- Workout Type: %s
- Target Muscle Group: %s
- Duration: %d minutes
- Additional Notes: %s

Structure the workout with:
1. A brief warm-up (2-5 minutes)
2. Main workout section with specific exercises (sets, reps, rest periods)
3. Cool down/stretching (2-3 minutes)

Format each exercise as:
- Exercise Name: [name]
- Sets: [number]
- Reps: [number] or Duration: [time]
- Rest: [time]
- Notes: [form tips, intensity recommendations]

Include information on proper form and provide modifications for different fitness levels.
`

const coachPromptTemplate = `
You are a knowledgeable and supportive fitness coach named %s.
You provide scientifically accurate fitness and nutrition advice while being encouraging and motivating.

Previous conversation:
%s

User's new question: %s

Respond in a friendly, professional manner. Include relevant scientific information when appropriate,
but explain concepts in accessible language. If you don't know something, admit it rather than providing
potentially harmful advice. If asked about specific medical conditions, recommend consulting a healthcare provider.
`

// WorkoutPrompt builds the workout-generation instruction. An empty muscle
// group selection becomes "Full Body".
func WorkoutPrompt(req models.WorkoutRequest) string {
	return fmt.Sprintf(workoutPromptTemplate,
		req.WorkoutType,
		models.MuscleGroupText(req.MuscleGroups),
		req.Duration,
		req.Notes,
	)
}

// FormatHistory renders a transcript as alternating "User:" / "Coach:" lines.
func FormatHistory(transcript models.Transcript) string {
	lines := make([]string, 0, len(transcript))
	for i, msg := range transcript {
		speaker := "User"
		if models.RoleAt(i) == models.RoleCoach {
			speaker = "Coach"
		}
		lines = append(lines, speaker+": "+msg)
	}
	return strings.Join(lines, "\n")
}

// CoachPrompt builds the coaching-chat instruction from the prior transcript
// and the new question.
func CoachPrompt(transcript models.Transcript, question string) string {
	return fmt.Sprintf(coachPromptTemplate, CoachName, FormatHistory(transcript), question)
}
