package storage

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/SayaAndy/saya-today-article-schema/config"
	"github.com/SayaAndy/saya-today-article-schema/internal/article"
	"github.com/SayaAndy/saya-today-article-schema/internal/seo"
)

func newLocal(t *testing.T, files map[string]string) (*LocalStorageClient, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	client, err := NewStorageClientMap["local"](&config.StorageConfig{
		Type:   "local",
		Config: &config.LocalConfig{Root: root},
	})
	if err != nil {
		t.Fatalf("NewLocalStorageClient() error = %v", err)
	}
	return client.(*LocalStorageClient), root
}

func TestLocalScan(t *testing.T) {
	client, _ := newLocal(t, map[string]string{
		"build/first.md":          "a",
		"invest/second/index.mdx": "b",
		"build/first.meta.json":   "{}",
		"notes.txt":               "c",
		"README.MD":               "d",
	})

	got, err := client.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	slices.Sort(got)

	want := []string{"README.MD", "build/first.md", "invest/second/index.mdx"}
	if !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestLocalGetReader(t *testing.T) {
	client, _ := newLocal(t, map[string]string{"a.md": "hello"})

	reader, sz, err := client.GetReader(context.Background(), "a.md")
	if err != nil {
		t.Fatalf("GetReader() error = %v", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "hello" || sz != 5 {
		t.Errorf("GetReader() = %q (%d), want %q (5)", content, sz, "hello")
	}

	if _, _, err := client.GetReader(context.Background(), "missing.md"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLocalWriteMetadataAndChangeDetection(t *testing.T) {
	content := "---\ntitle: x\n---\nbody\n"
	client, root := newLocal(t, map[string]string{"build/post.mdx": content})
	ctx := context.Background()

	if !client.FileHasChanged(ctx, "build/post.mdx") {
		t.Error("expected an unprocessed file to count as changed")
	}

	metadata := &article.Metadata{
		Path:       "build/post.mdx",
		SourceSHA1: SHA1([]byte(content)),
		Title:      "x",
		Schema:     seo.Graph{Context: seo.SchemaContext, Nodes: []seo.Node{{"@type": seo.TypeArticle}}},
	}
	if err := client.WriteMetadata(ctx, "build/post.mdx", metadata); err != nil {
		t.Fatalf("WriteMetadata() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, "build", "post.schema.json"))
	if err != nil {
		t.Fatalf("schema sidecar missing: %v", err)
	}
	var graph map[string]any
	if err := json.Unmarshal(raw, &graph); err != nil {
		t.Fatal(err)
	}
	if graph["@context"] != seo.SchemaContext {
		t.Errorf("@context = %v", graph["@context"])
	}
	if _, err := os.Stat(filepath.Join(root, "build", "post.meta.json")); err != nil {
		t.Errorf("meta sidecar missing: %v", err)
	}

	if client.FileHasChanged(ctx, "build/post.mdx") {
		t.Error("expected file to be unchanged after writing metadata")
	}

	if err := os.WriteFile(filepath.Join(root, "build", "post.mdx"), []byte(content+"more\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !client.FileHasChanged(ctx, "build/post.mdx") {
		t.Error("expected edited file to count as changed")
	}
}

func TestLocalWriteIndex(t *testing.T) {
	client, root := newLocal(t, nil)

	if err := client.WriteIndex(context.Background(), "archive.json", []byte("[]")); err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "archive.json"))
	if err != nil || string(got) != "[]" {
		t.Errorf("archive.json = %q, %v", got, err)
	}
}

func TestNewLocalStorageClientErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  *config.StorageConfig
	}{
		{"wrong type", &config.StorageConfig{Type: "b2", Config: &config.LocalConfig{Root: t.TempDir()}}},
		{"missing root", &config.StorageConfig{Type: "local", Config: &config.LocalConfig{Root: filepath.Join(file, "nope")}}},
		{"root is a file", &config.StorageConfig{Type: "local", Config: &config.LocalConfig{Root: file}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLocalStorageClient(tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSidecar(t *testing.T) {
	if got := sidecar("a/b.post.mdx", metaSuffix); got != "a/b.post.meta.json" {
		t.Errorf("sidecar() = %q", got)
	}
}
