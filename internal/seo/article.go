package seo

const (
	ArticleLanguage = "en-US"
	OgImageWidth    = 1200
	OgImageHeight   = 630
)

type ArticleOptions struct {
	Title        string
	Description  string
	CanonicalURL string
	PublishedAt  string
	UpdatedAt    string
	SiteURL      string
	Pillar       string
	Keywords     []string
	WordCount    int
	ReadingTime  string
	OgImageURL   string
}

func authorID(siteURL string) string {
	return siteURL + "#author"
}

// GenerateArticleSchema builds the Article node for a post. Optional
// properties are only present when their source value is set.
func GenerateArticleSchema(opts ArticleOptions) Node {
	article := Node{
		"@type":            TypeArticle,
		"@id":              opts.CanonicalURL,
		"headline":         opts.Title,
		"datePublished":    opts.PublishedAt,
		"author":           ref(authorID(opts.SiteURL)),
		"publisher":        ref(authorID(opts.SiteURL)),
		"mainEntityOfPage": opts.CanonicalURL,
		"inLanguage":       ArticleLanguage,
		"image": Node{
			"@type":  TypeImageObject,
			"url":    opts.OgImageURL,
			"width":  OgImageWidth,
			"height": OgImageHeight,
		},
	}

	article.set("description", opts.Description, opts.Description != "")
	article.set("dateModified", opts.UpdatedAt, opts.UpdatedAt != "")
	article.set("articleSection", opts.Pillar, opts.Pillar != "")
	article.set("keywords", opts.Keywords, len(opts.Keywords) > 0)
	article.set("wordCount", opts.WordCount, opts.WordCount > 0)
	article.set("timeRequired", opts.ReadingTime, opts.ReadingTime != "")

	return article
}
