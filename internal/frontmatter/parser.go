package frontmatter

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SayaAndy/saya-today-article-schema/internal/posts"
)

// Metadata is the frontmatter of a post.
type Metadata struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Pillar      string   `yaml:"pillar" validate:"required,oneof=build invest thrive"`
	Format      string   `yaml:"format"`
	Topics      []string `yaml:"topics"`
	PublishedAt string   `yaml:"publishedAt" validate:"required"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Slug        string   `yaml:"slug"`
	OgImage     string   `yaml:"ogImage" validate:"omitempty,url"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var validate = validator.New(validator.WithRequiredStructEnabled())

func ParseFrontmatter(content []byte) (metadata *Metadata, markdown []byte, err error) {
	if !bytes.HasPrefix(content, []byte("---")) {
		return nil, content, nil
	}

	metadata = &Metadata{}
	markdown, err = frontmatter.Parse(bytes.NewReader(content), metadata, yamlFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}

	return metadata, markdown, nil
}

func (m *Metadata) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	if _, ok := posts.ParseDate(m.PublishedAt); !ok {
		return fmt.Errorf("invalid publishedAt %q", m.PublishedAt)
	}
	if m.UpdatedAt != "" {
		if _, ok := posts.ParseDate(m.UpdatedAt); !ok {
			return fmt.Errorf("invalid updatedAt %q", m.UpdatedAt)
		}
	}
	return nil
}

func (m *Metadata) PublishedDate() any { return m.PublishedAt }
