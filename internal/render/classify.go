// Package render lays out a generated workout plan as a styled document.
//
// The content classifier is a line-local prefix matcher, not a Markdown
// parser: no nesting, no multi-line spans, no escaping.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/claude/fitcoach/internal/models"
)

// Kind is the style class of one logical line.
type Kind int

const (
	KindBlank Kind = iota
	KindBody
	KindHeading1
	KindHeading2
	KindHeading3
	KindEmphasis
	KindBullet
	KindTitle
	KindRule
	KindMeta
	KindLabel
	KindFooter
)

var kindNames = map[Kind]string{
	KindBlank:    "blank",
	KindBody:     "body",
	KindHeading1: "heading1",
	KindHeading2: "heading2",
	KindHeading3: "heading3",
	KindEmphasis: "emphasis",
	KindBullet:   "bullet",
	KindTitle:    "title",
	KindRule:     "rule",
	KindMeta:     "meta",
	KindLabel:    "label",
	KindFooter:   "footer",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Line is a classified line: its style and the text that reaches the layout.
type Line struct {
	Kind Kind
	Text string
}

// Title, product name and footer format of every exported document.
const (
	DocumentTitle = "Your Personalized Workout"
	ProductName   = "AI Fitness Trainer"
)

// Classify assigns a style to one line of generated content. Prefixes are
// tested in order and the first match wins; a line that matches nothing is
// body text when it has non-space characters and blank otherwise.
func Classify(line string) Line {
	line = strings.TrimSuffix(line, "\r")

	switch {
	case strings.HasPrefix(line, "# "):
		return Line{Kind: KindHeading1, Text: strings.TrimSpace(line[2:])}
	case strings.HasPrefix(line, "## "):
		return Line{Kind: KindHeading2, Text: strings.TrimSpace(line[3:])}
	case strings.HasPrefix(line, "### "):
		return Line{Kind: KindHeading3, Text: strings.TrimSpace(line[4:])}
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		// "**" and "***" overlap their own delimiters.
		if len(line) < 4 {
			return Line{Kind: KindEmphasis}
		}
		return Line{Kind: KindEmphasis, Text: line[2 : len(line)-2]}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Line{Kind: KindBullet, Text: strings.TrimSpace(line[2:])}
	case strings.TrimSpace(line) != "":
		return Line{Kind: KindBody, Text: line}
	default:
		return Line{Kind: KindBlank}
	}
}

// ClassifyContent splits content into lines and classifies each one.
func ClassifyContent(content string) []Line {
	raw := strings.Split(content, "\n")
	out := make([]Line, 0, len(raw))
	for _, l := range raw {
		out = append(out, Classify(l))
	}
	return out
}

// Layout returns every logical line of the exported document for spec: the
// header block, the classified content and the footer.
func Layout(spec models.WorkoutSpec, generatedAt time.Time) []Line {
	lines := []Line{
		{Kind: KindTitle, Text: DocumentTitle},
		{Kind: KindRule},
		{Kind: KindMeta, Text: "Type: " + spec.WorkoutType},
		{Kind: KindMeta, Text: "Muscle Groups: " + models.MuscleGroupText(spec.MuscleGroup)},
		{Kind: KindMeta, Text: "Duration: " + strconv.Itoa(spec.Duration) + " minutes"},
		{Kind: KindLabel, Text: "Notes"},
		{Kind: KindBody, Text: spec.Notes},
		{Kind: KindBlank},
	}
	lines = append(lines, ClassifyContent(spec.Content)...)
	lines = append(lines,
		Line{Kind: KindBlank},
		Line{Kind: KindFooter, Text: "Generated on " + generatedAt.Format(models.TimestampLayout)},
		Line{Kind: KindFooter, Text: ProductName},
	)
	return lines
}

// PlainText returns the text download of spec: the generated content verbatim.
func PlainText(spec models.WorkoutSpec) []byte {
	return []byte(spec.Content)
}
