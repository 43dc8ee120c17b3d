package structured

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/SayaAndy/saya-today-article-schema/internal/markdown"
)

const (
	MinFAQs           = 2
	MinSteps          = 3
	MinAnswerLength   = 20
	MaxAnswerLength   = 300
	MaxStepTextLength = 200

	// boundaryLevel is the deepest heading level that ends a section.
	boundaryLevel = 3
)

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HowToStep struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

var (
	questionPattern  = regexp.MustCompile(`(?i)^(what|why|how|when|where|which|can|do|is|are|should)\s`)
	stepPattern      = regexp.MustCompile(`(?i)^step\s+\d+\s*[:\-–]\s*(.*)$`)
	paragraphPattern = regexp.MustCompile(`\n[ \t]*\n`)
)

// DetectFAQs extracts question headings and their answers. It returns nil
// unless at least MinFAQs answers survive filtering.
func DetectFAQs(content string) []FAQ {
	var faqs []FAQ

	for _, section := range candidateSections(content) {
		if !questionPattern.MatchString(section.Heading.Text) {
			continue
		}

		answer := strings.TrimSpace(markdown.Strip(section.Body, markdown.AnswerRules...))
		if utf8.RuneCountInString(answer) <= MinAnswerLength {
			continue
		}

		faqs = append(faqs, FAQ{
			Question: normalizeQuestion(section.Heading.Text),
			Answer:   truncate(answer, MaxAnswerLength),
		})
	}

	if len(faqs) < MinFAQs {
		return nil
	}
	return faqs
}

// DetectHowTo extracts "Step N: title" headings and the first paragraph
// under each. It returns nil unless at least MinSteps steps survive.
func DetectHowTo(content string) []HowToStep {
	var steps []HowToStep

	for _, section := range candidateSections(content) {
		m := stepPattern.FindStringSubmatch(section.Heading.Text)
		if m == nil {
			continue
		}

		name := strings.TrimSpace(m[1])
		text := firstParagraph(markdown.Strip(section.Body, markdown.StepRules...))
		if name == "" || text == "" {
			continue
		}

		steps = append(steps, HowToStep{
			Name: name,
			Text: truncate(text, MaxStepTextLength),
		})
	}

	if len(steps) < MinSteps {
		return nil
	}
	return steps
}

func candidateSections(content string) []markdown.Section {
	var out []markdown.Section
	for _, section := range markdown.Sections(content, boundaryLevel) {
		if section.Heading.Level == 2 || section.Heading.Level == 3 {
			out = append(out, section)
		}
	}
	return out
}

func normalizeQuestion(heading string) string {
	return strings.TrimRight(strings.TrimSpace(heading), "?") + "?"
}

func firstParagraph(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.TrimSpace(paragraphPattern.Split(text, 2)[0])
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
