package markdown

import (
	"regexp"
	"strings"
)

// Heading is an ATX heading found outside fenced code.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-indexed
}

// Section is a heading and the raw text that follows it up to the next
// boundary heading.
type Section struct {
	Heading Heading
	Body    string
}

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	fencePattern   = regexp.MustCompile("^```")
)

// Headings returns every heading in content in document order.
func Headings(content string) []Heading {
	headings, _ := scanHeadings(content)
	return headings
}

// Sections splits content into one section per heading of level maxLevel or
// shallower. A section body ends at the next such heading or at the end of
// content; deeper headings are kept inside the body. Text before the first
// boundary heading belongs to no section.
func Sections(content string, maxLevel int) []Section {
	headings, lines := scanHeadings(content)

	var bounds []Heading
	for _, h := range headings {
		if h.Level <= maxLevel {
			bounds = append(bounds, h)
		}
	}

	sections := make([]Section, 0, len(bounds))
	for i, h := range bounds {
		end := len(lines)
		if i+1 < len(bounds) {
			end = bounds[i+1].Line - 1
		}
		sections = append(sections, Section{
			Heading: h,
			Body:    strings.Join(lines[h.Line:end], "\n"),
		})
	}

	return sections
}

func scanHeadings(content string) ([]Heading, []string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var headings []Heading
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if fencePattern.MatchString(trimmed) {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" {
			continue
		}

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			headings = append(headings, Heading{
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
				Line:  i + 1,
			})
		}
	}

	return headings, lines
}
