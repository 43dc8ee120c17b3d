package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/SayaAndy/saya-today-article-schema/config"
	"github.com/SayaAndy/saya-today-article-schema/internal/article"
)

type StorageClient interface {
	Scan(ctx context.Context) (paths []string, err error)
	GetReader(ctx context.Context, path string) (reader io.ReadCloser, sz int64, err error)
	WriteMetadata(ctx context.Context, path string, metadata *article.Metadata) error
	WriteIndex(ctx context.Context, name string, data []byte) error
	FileHasChanged(ctx context.Context, path string) bool
}

var NewStorageClientMap = map[string]func(cfg *config.StorageConfig) (StorageClient, error){
	"b2":    NewB2StorageClient,
	"local": NewLocalStorageClient,
}

const (
	metaSuffix   = ".meta.json"
	schemaSuffix = ".schema.json"
)

func isArticle(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}

func sidecar(name, suffix string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + suffix
}
