package pipeline

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/SayaAndy/saya-today-article-schema/internal/article"
	"github.com/SayaAndy/saya-today-article-schema/internal/frontmatter"
	"github.com/SayaAndy/saya-today-article-schema/internal/posts"
	"github.com/SayaAndy/saya-today-article-schema/internal/readingtime"
	"github.com/SayaAndy/saya-today-article-schema/internal/seo"
	"github.com/SayaAndy/saya-today-article-schema/internal/storage"
	"github.com/SayaAndy/saya-today-article-schema/internal/structured"
)

// ErrNoFrontmatter is returned for files without a frontmatter block.
var ErrNoFrontmatter = errors.New("file has no frontmatter")

// Processor derives article metadata and JSON-LD for a single site.
type Processor struct {
	siteURL  string
	identity seo.Identity
}

func NewProcessor(siteURL string, identity seo.Identity) *Processor {
	return &Processor{
		siteURL:  strings.TrimRight(siteURL, "/") + "/",
		identity: identity,
	}
}

func (p *Processor) ProcessFile(filePath string, content []byte) (*article.Metadata, error) {
	fm, body, err := frontmatter.ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}
	if fm == nil {
		return nil, ErrNoFrontmatter
	}
	if err := fm.Validate(); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	publishedAt, _ := posts.ParseDate(fm.PublishedAt)
	slug := fm.Slug
	if slug == "" {
		slug = slugFromPath(filePath)
	}

	text := string(body)
	pathname := "/" + fm.Pillar + "/" + slug + "/"
	metadata := &article.Metadata{
		Path:         filePath,
		SourceSHA1:   storage.SHA1(content),
		Title:        fm.Title,
		Description:  fm.Description,
		Pillar:       fm.Pillar,
		Slug:         slug,
		PublishedAt:  publishedAt,
		Keywords:     fm.Topics,
		CanonicalURL: p.siteURL + strings.TrimPrefix(pathname, "/"),
		OgImage:      seo.ResolveOgImage(p.siteURL, fm.OgImage, fm.Pillar, slug),
		ReadingTime:  readingtime.Estimate(text),
		FAQs:         structured.DetectFAQs(text),
		HowTo:        structured.DetectHowTo(text),
	}

	opts := seo.ArticleOptions{
		Title:        metadata.Title,
		Description:  metadata.Description,
		CanonicalURL: metadata.CanonicalURL,
		PublishedAt:  publishedAt.Format(time.RFC3339),
		SiteURL:      p.siteURL,
		Pillar:       metadata.Pillar,
		Keywords:     metadata.Keywords,
		WordCount:    metadata.ReadingTime.WordCount,
		ReadingTime:  metadata.ReadingTime.Duration,
		OgImageURL:   metadata.OgImage,
	}
	if updatedAt, ok := posts.ParseDate(fm.UpdatedAt); ok {
		metadata.UpdatedAt = &updatedAt
		opts.UpdatedAt = updatedAt.Format(time.RFC3339)
	}

	var additional []seo.Node
	if metadata.FAQs != nil {
		additional = append(additional, seo.GenerateFAQSchema(metadata.FAQs))
	}
	if metadata.HowTo != nil {
		additional = append(additional, seo.GenerateHowToSchema(metadata.HowTo, metadata.Title))
	}

	metadata.Schema = p.identity.Graph(
		p.siteURL,
		seo.GenerateBreadcrumbSchema(pathname, p.siteURL),
		seo.GenerateArticleSchema(opts),
		additional...,
	)

	return metadata, nil
}

// slugFromPath uses the file name, or the directory name for index files.
func slugFromPath(filePath string) string {
	base := path.Base(filePath)
	name := strings.TrimSuffix(base, path.Ext(base))
	if strings.EqualFold(name, "index") {
		if dir := path.Base(path.Dir(filePath)); dir != "." && dir != "/" {
			return dir
		}
	}
	return name
}
