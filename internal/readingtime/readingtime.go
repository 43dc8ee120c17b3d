package readingtime

import (
	"fmt"
	"strings"

	"github.com/SayaAndy/saya-today-article-schema/internal/markdown"
)

const WordsPerMinute = 200

type Result struct {
	Minutes   int    `json:"minutes"`
	Duration  string `json:"duration"`
	WordCount int    `json:"wordCount"`
}

// Estimate counts the prose words of a markdown/MDX article and converts
// them to whole minutes of reading. The result is never below one minute.
func Estimate(content string) Result {
	text := strings.TrimSpace(markdown.Strip(content, markdown.ReadingRules...))
	wordCount := len(strings.Fields(text))

	minutes := (wordCount + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return Result{
		Minutes:   minutes,
		Duration:  fmt.Sprintf("PT%dM", minutes),
		WordCount: wordCount,
	}
}
