package frontmatter

import (
	"strings"
	"testing"
)

const post = `---
title: "Index Funds, Explained"
description: What they are and why they work.
pillar: invest
format: guide
topics:
  - investing
  - index funds
publishedAt: 2025-01-15
slug: index-funds
---
## What is an index fund?
`

func TestParseFrontmatter(t *testing.T) {
	metadata, body, err := ParseFrontmatter([]byte(post))
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if metadata == nil {
		t.Fatal("expected metadata")
	}

	if metadata.Title != "Index Funds, Explained" {
		t.Errorf("Title = %q", metadata.Title)
	}
	if metadata.Pillar != "invest" {
		t.Errorf("Pillar = %q", metadata.Pillar)
	}
	if metadata.PublishedAt != "2025-01-15" {
		t.Errorf("PublishedAt = %q, want raw date string", metadata.PublishedAt)
	}
	if len(metadata.Topics) != 2 || metadata.Topics[1] != "index funds" {
		t.Errorf("Topics = %v", metadata.Topics)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "## What is an index fund?") {
		t.Errorf("body = %q", body)
	}
	if err := metadata.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseFrontmatterWithoutBlock(t *testing.T) {
	content := []byte("# Just markdown\n")
	metadata, body, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if metadata != nil {
		t.Errorf("expected nil metadata, got %+v", metadata)
	}
	if string(body) != string(content) {
		t.Errorf("body = %q, want content unchanged", body)
	}
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	_, _, err := ParseFrontmatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	if err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	valid := Metadata{Title: "T", Pillar: "build", PublishedAt: "2025-01-15"}

	tests := []struct {
		name    string
		mutate  func(m *Metadata)
		wantErr bool
	}{
		{"valid", func(m *Metadata) {}, false},
		{"missing title", func(m *Metadata) { m.Title = "" }, true},
		{"unknown pillar", func(m *Metadata) { m.Pillar = "relax" }, true},
		{"missing publishedAt", func(m *Metadata) { m.PublishedAt = "" }, true},
		{"unparseable publishedAt", func(m *Metadata) { m.PublishedAt = "someday" }, true},
		{"unparseable updatedAt", func(m *Metadata) { m.UpdatedAt = "later" }, true},
		{"bad og image", func(m *Metadata) { m.OgImage = "not a url" }, true},
		{"og image url", func(m *Metadata) { m.OgImage = "https://cdn.example.com/a.png" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
