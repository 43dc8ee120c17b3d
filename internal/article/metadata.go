package article

import (
	"strconv"
	"time"

	"github.com/SayaAndy/saya-today-article-schema/internal/readingtime"
	"github.com/SayaAndy/saya-today-article-schema/internal/seo"
	"github.com/SayaAndy/saya-today-article-schema/internal/structured"
)

// Metadata is everything derived from one article.
type Metadata struct {
	Path         string                 `json:"path"`
	SourceSHA1   string                 `json:"sourceSha1"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	Pillar       string                 `json:"pillar"`
	Slug         string                 `json:"slug"`
	PublishedAt  time.Time              `json:"publishedAt"`
	UpdatedAt    *time.Time             `json:"updatedAt,omitempty"`
	Keywords     []string               `json:"keywords,omitempty"`
	CanonicalURL string                 `json:"canonicalUrl"`
	OgImage      string                 `json:"ogImage"`
	ReadingTime  readingtime.Result     `json:"readingTime"`
	FAQs         []structured.FAQ       `json:"faqs,omitempty"`
	HowTo        []structured.HowToStep `json:"howTo,omitempty"`
	Schema       seo.Graph              `json:"-"`
}

func (m *Metadata) PublishedDate() any { return m.PublishedAt }

// Attributes flattens the metadata into string key/values for object
// stores that only carry string headers.
func (m *Metadata) Attributes() map[string]string {
	attrs := map[string]string{
		"source-sha1":  m.SourceSHA1,
		"title":        m.Title,
		"pillar":       m.Pillar,
		"slug":         m.Slug,
		"published-at": m.PublishedAt.Format(time.RFC3339),
		"reading-time": m.ReadingTime.Duration,
		"word-count":   strconv.Itoa(m.ReadingTime.WordCount),
		"faq-count":    strconv.Itoa(len(m.FAQs)),
		"howto-steps":  strconv.Itoa(len(m.HowTo)),
	}
	if keywords, ok := seo.FormatKeywords(m.Keywords); ok {
		attrs["keywords"] = keywords
	}
	return attrs
}

// Entry is the archive view of an article.
type Entry struct {
	Title          string    `json:"title"`
	Pillar         string    `json:"pillar"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"publishedAt"`
	ReadingMinutes int       `json:"readingMinutes"`
}

func (e Entry) PublishedDate() any { return e.PublishedAt }

func (m *Metadata) Entry() Entry {
	return Entry{
		Title:          m.Title,
		Pillar:         m.Pillar,
		URL:            m.CanonicalURL,
		PublishedAt:    m.PublishedAt,
		ReadingMinutes: m.ReadingTime.Minutes,
	}
}
