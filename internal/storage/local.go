package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SayaAndy/saya-today-article-schema/config"
	"github.com/SayaAndy/saya-today-article-schema/internal/article"
)

var _ StorageClient = &LocalStorageClient{}

// LocalStorageClient keeps articles and their sidecars in a directory tree.
type LocalStorageClient struct {
	root string
}

func NewLocalStorageClient(cfg *config.StorageConfig) (StorageClient, error) {
	if cfg.Type != "local" {
		return nil, fmt.Errorf("invalid storage type for LocalStorageClient")
	}
	localCfg := cfg.Config.(*config.LocalConfig)

	info, err := os.Stat(localCfg.Root)
	if err != nil {
		return nil, fmt.Errorf("stat storage root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage root %q is not a directory", localCfg.Root)
	}

	return &LocalStorageClient{root: localCfg.Root}, nil
}

func (sc *LocalStorageClient) Scan(ctx context.Context) ([]string, error) {
	filePaths := []string{}

	err := filepath.WalkDir(sc.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isArticle(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(sc.root, p)
		if err != nil {
			return err
		}
		filePaths = append(filePaths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk storage root: %w", err)
	}

	return filePaths, nil
}

func (sc *LocalStorageClient) GetReader(_ context.Context, path string) (io.ReadCloser, int64, error) {
	f, err := os.Open(sc.abs(path))
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("error getting attributes of a file: %w", err)
	}
	return f, info.Size(), nil
}

func (sc *LocalStorageClient) WriteMetadata(_ context.Context, path string, metadata *article.Metadata) error {
	meta, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	schema, err := json.MarshalIndent(metadata.Schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.WriteFile(sc.abs(sidecar(path, schemaSuffix)), schema, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	// The meta sidecar carries the source hash, so it goes last.
	if err := os.WriteFile(sc.abs(sidecar(path, metaSuffix)), meta, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

func (sc *LocalStorageClient) WriteIndex(_ context.Context, name string, data []byte) error {
	return os.WriteFile(sc.abs(name), data, 0o644)
}

func (sc *LocalStorageClient) FileHasChanged(_ context.Context, path string) bool {
	content, err := os.ReadFile(sc.abs(path))
	if err != nil {
		return true
	}

	raw, err := os.ReadFile(sc.abs(sidecar(path, metaSuffix)))
	if err != nil {
		return true
	}
	var stored struct {
		SourceSHA1 string `json:"sourceSha1"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return true
	}

	return stored.SourceSHA1 != SHA1(content)
}

func (sc *LocalStorageClient) abs(path string) string {
	return filepath.Join(sc.root, filepath.FromSlash(path))
}

// SHA1 returns the hex digest B2 reports for an object with this content.
func SHA1(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])
}
