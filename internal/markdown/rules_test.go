package markdown

import (
	"strings"
	"testing"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		input string
		want  string
	}{
		{"frontmatter", Frontmatter, "---\ntitle: x\n---\nbody", "body"},
		{"frontmatter only at start", Frontmatter, "body\n---\na\n---\n", "body\n---\na\n---\n"},
		{"code fence", CodeFences, "a\n```go\nx := 1\n```\nb", "a\n\nb"},
		{"inline code", InlineCode, "use `go test` now", "use  now"},
		{"image", Images, "see ![alt](a.png) here", "see  here"},
		{"link", Links, "read [the post](https://x.y) today", "read the post today"},
		{"html tag", HTMLTags, "a <strong>b</strong> <Callout kind=\"x\" />", "a b "},
		{"heading marker", HeadingMarkers, "## Title\ntext", "Title\ntext"},
		{"bold", Emphasis, "a **b** c", "a b c"},
		{"italic underscore", Emphasis, "a _b_ c", "a b c"},
		{"bold italic", Emphasis, "***both*** x", "both x"},
		{"unclosed italic", Emphasis, "a *b c", "a *b c"},
		{"horizontal rule", HorizontalRules, "a\n---\nb", "a\n\nb"},
		{"blockquote", Blockquotes, "> quoted\ntext", "quoted\ntext"},
		{"import", Imports, "import X from './x';\nbody", "\nbody"},
		{"list marker", ListMarkers, "- one\n* two", "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Apply(tt.input)
			if got != tt.want {
				t.Errorf("%s.Apply(%q) = %q, want %q", tt.rule.Name(), tt.input, got, tt.want)
			}
		})
	}
}

func TestStripAppliesInOrder(t *testing.T) {
	got := Strip("**[bold link](https://x.y)**", Links, Emphasis)
	if got != "bold link" {
		t.Errorf("Strip() = %q, want %q", got, "bold link")
	}
}

func TestStripNoRules(t *testing.T) {
	if got := Strip("unchanged"); got != "unchanged" {
		t.Errorf("Strip() = %q, want input unchanged", got)
	}
}

func TestReadingRulesOnMalformedInput(t *testing.T) {
	input := "## What is **malformed?\n\nThis has unclosed **bold and [link"
	got := Strip(input, ReadingRules...)
	if !strings.Contains(got, "unclosed") || !strings.Contains(got, "[link") {
		t.Errorf("Strip(ReadingRules) = %q, want malformed text kept", got)
	}
}
