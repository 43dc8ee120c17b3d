package markdown

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// Rule is a single best-effort text transformation. Rules never fail: input
// they cannot make sense of is returned as-is.
type Rule interface {
	Name() string
	Apply(text string) string
}

type regexRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

func newRegexRule(name, pattern, replacement string) Rule {
	return regexRule{name: name, pattern: regexp.MustCompile(pattern), replacement: replacement}
}

func (r regexRule) Name() string { return r.name }

func (r regexRule) Apply(text string) string {
	return r.pattern.ReplaceAllString(text, r.replacement)
}

const backrefMatchTimeout = 2 * time.Second

// backrefRule runs on regexp2 for patterns that need backreferences, which
// the standard library engine does not support.
type backrefRule struct {
	name        string
	pattern     *regexp2.Regexp
	replacement string
}

func newBackrefRule(name, pattern, replacement string) Rule {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = backrefMatchTimeout
	return backrefRule{name: name, pattern: re, replacement: replacement}
}

func (r backrefRule) Name() string { return r.name }

func (r backrefRule) Apply(text string) string {
	out, err := r.pattern.Replace(text, r.replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

var (
	// Frontmatter removes a leading --- delimited metadata block.
	Frontmatter = newRegexRule("frontmatter", `^---[\s\S]*?---\n?`, "")
	// CodeFences removes fenced code blocks, including their contents.
	CodeFences = newRegexRule("code-fences", "```[\\s\\S]*?```", "")
	// InlineCode removes inline code spans.
	InlineCode = newRegexRule("inline-code", "`[^`]+`", "")
	// Images removes image references entirely, alt text included.
	Images = newRegexRule("images", `!\[.*?\]\(.*?\)`, "")
	// Links keeps only the visible text of a link.
	Links = newRegexRule("links", `\[([^\]]+)\]\(.*?\)`, "${1}")
	// HTMLTags removes HTML and MDX component tags, keeping the text between them.
	HTMLTags = newRegexRule("html-tags", `<[^>]+>`, "")
	// HeadingMarkers removes the leading # run of ATX headings.
	HeadingMarkers = newRegexRule("heading-markers", `(?m)^#{1,6}\s+`, "")
	// Emphasis replaces bold and italic spans with their inner text.
	Emphasis = newBackrefRule("emphasis", `(\*{1,3}|_{1,3})(.*?)\1`, "$2")
	// HorizontalRules removes thematic break lines.
	HorizontalRules = newRegexRule("horizontal-rules", `(?m)^[-*_]{3,}\s*$`, "")
	// Blockquotes removes the quote marker and keeps the quoted text.
	Blockquotes = newRegexRule("blockquotes", `(?m)^>\s+`, "")
	// Imports removes MDX import lines.
	Imports = newRegexRule("imports", `(?m)^import\s+.*$`, "")
	// ListMarkers removes bullet markers at line start.
	ListMarkers = newRegexRule("list-markers", `(?m)^[-*]\s+`, "")
)

// ReadingRules is the order used to reduce an article to countable prose.
var ReadingRules = []Rule{
	Frontmatter,
	CodeFences,
	InlineCode,
	Images,
	Links,
	HTMLTags,
	HeadingMarkers,
	Emphasis,
	HorizontalRules,
	Blockquotes,
	Imports,
}

// AnswerRules cleans the body of a question section.
var AnswerRules = []Rule{
	CodeFences,
	Images,
	Links,
	HTMLTags,
	Emphasis,
	ListMarkers,
}

// StepRules cleans the body of an instruction step.
var StepRules = []Rule{
	CodeFences,
	HTMLTags,
	Emphasis,
}

// Strip applies rules to text in the given order.
func Strip(text string, rules ...Rule) string {
	for _, rule := range rules {
		text = rule.Apply(text)
	}
	return text
}
