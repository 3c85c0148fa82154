package render

import (
	"testing"
	"time"

	"github.com/claude/fitcoach/internal/models"
)

// TestClassify verifies the prefix precedence table and its edge cases.
func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		text string
	}{
		{"# Warm-Up", KindHeading1, "Warm-Up"},
		{"## Main Workout", KindHeading2, "Main Workout"},
		{"### Round 1", KindHeading3, "Round 1"},
		{"**Rest 30s**", KindEmphasis, "Rest 30s"},
		{"****", KindEmphasis, ""},
		{"**", KindEmphasis, ""},
		{"***", KindEmphasis, ""},
		{"- Push-ups: 3x10", KindBullet, "Push-ups: 3x10"},
		{"* Squats: 3x12", KindBullet, "Squats: 3x12"},
		{"- ", KindBullet, ""},
		{"* ", KindBullet, ""},
		{"Just a sentence.", KindBody, "Just a sentence."},
		{"#hashtag", KindBody, "#hashtag"},
		{"#### Deep", KindBody, "#### Deep"},
		{"**bold start only", KindBody, "**bold start only"},
		{"-no space", KindBody, "-no space"},
		{"", KindBlank, ""},
		{"    ", KindBlank, ""},
		{"\t", KindBlank, ""},
		{"# Cool Down\r", KindHeading1, "Cool Down"},
		{"\r", KindBlank, ""},
	}
	for _, c := range cases {
		got := Classify(c.in)
		if got.Kind != c.kind || got.Text != c.text {
			t.Errorf("Classify(%q) = {%s %q}, want {%s %q}", c.in, got.Kind, got.Text, c.kind, c.text)
		}
	}
}

// TestClassifyContent verifies that content is classified line by line.
func TestClassifyContent(t *testing.T) {
	got := ClassifyContent("# Warm-Up\n- Jog 5 min\n\nStay hydrated.")
	want := []Line{
		{Kind: KindHeading1, Text: "Warm-Up"},
		{Kind: KindBullet, Text: "Jog 5 min"},
		{Kind: KindBlank},
		{Kind: KindBody, Text: "Stay hydrated."},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestLayoutHeaderAndFooter verifies the fixed header block before the content
// and the centered footer after it.
func TestLayoutHeaderAndFooter(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	lines := Layout(models.WorkoutSpec{
		WorkoutType: "Cardio",
		MuscleGroup: nil,
		Duration:    30,
		Notes:       "no equipment",
		Content:     "# Warm-Up",
	}, at)

	wantHead := []Line{
		{Kind: KindTitle, Text: DocumentTitle},
		{Kind: KindRule},
		{Kind: KindMeta, Text: "Type: Cardio"},
		{Kind: KindMeta, Text: "Muscle Groups: Full Body"},
		{Kind: KindMeta, Text: "Duration: 30 minutes"},
		{Kind: KindLabel, Text: "Notes"},
		{Kind: KindBody, Text: "no equipment"},
		{Kind: KindBlank},
		{Kind: KindHeading1, Text: "Warm-Up"},
	}
	for i, want := range wantHead {
		if lines[i] != want {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want)
		}
	}

	n := len(lines)
	if lines[n-2] != (Line{Kind: KindFooter, Text: "Generated on 2025-06-01 08:30:00"}) {
		t.Errorf("footer timestamp = %+v", lines[n-2])
	}
	if lines[n-1] != (Line{Kind: KindFooter, Text: ProductName}) {
		t.Errorf("footer product = %+v", lines[n-1])
	}
}

// TestLayoutJoinsMuscleGroups verifies the metadata separator.
func TestLayoutJoinsMuscleGroups(t *testing.T) {
	lines := Layout(models.WorkoutSpec{MuscleGroup: []string{"Core", "Back"}}, time.Now())
	if lines[3].Text != "Muscle Groups: Core, Back" {
		t.Errorf("muscle groups line = %q", lines[3].Text)
	}
}
