package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Backblaze/blazer/b2"

	"github.com/SayaAndy/saya-today-article-schema/config"
	"github.com/SayaAndy/saya-today-article-schema/internal/article"
)

var _ StorageClient = &B2StorageClient{}

type B2StorageClient struct {
	prefix string
	bucket *b2.Bucket
	b2cl   *b2.Client
}

func NewB2StorageClient(cfg *config.StorageConfig) (StorageClient, error) {
	if cfg.Type != "b2" {
		return nil, fmt.Errorf("invalid storage type for B2StorageClient")
	}
	b2cfg := cfg.Config.(*config.B2Config)

	b2cl, err := b2.NewClient(context.Background(), b2cfg.KeyID, b2cfg.ApplicationKey)
	if err != nil {
		return nil, err
	}

	bucket, err := b2cl.Bucket(context.Background(), b2cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &B2StorageClient{b2cl: b2cl, bucket: bucket, prefix: b2cfg.Prefix}, nil
}

func (sc *B2StorageClient) Scan(ctx context.Context) ([]string, error) {
	filePaths := []string{}

	iter := sc.bucket.List(ctx, b2.ListPrefix(sc.prefix))

	for iter.Next() {
		obj := iter.Object()
		if obj == nil {
			return nil, fmt.Errorf("failed to reference object in B2 bucket")
		}

		name := obj.Name()
		if !isArticle(name) {
			continue
		}

		attrs, err := obj.Attrs(ctx)
		if err != nil {
			return nil, fmt.Errorf("get attributes for object: %w", err)
		}
		if attrs.Status != b2.Uploaded {
			continue
		}

		filePaths = append(filePaths, strings.TrimPrefix(name, sc.prefix))
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterate over B2 objects: %w", err)
	}

	return filePaths, nil
}

func (sc *B2StorageClient) GetReader(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	obj := sc.bucket.Object(sc.prefix + path)
	if obj == nil {
		return nil, 0, fmt.Errorf("failed to reference object in B2 bucket")
	}
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting attributes of an object: %w", err)
	}

	return obj.NewReader(ctx), attrs.Size, nil
}

// WriteMetadata stores the JSON-LD graph and the derived metadata as sidecar
// objects. The metadata object also carries the flattened fields as file info.
func (sc *B2StorageClient) WriteMetadata(ctx context.Context, path string, metadata *article.Metadata) error {
	schema, err := json.Marshal(metadata.Schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := sc.put(ctx, sidecar(path, schemaSuffix), schema, &b2.Attrs{ContentType: "application/ld+json"}); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	meta, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	attrs := &b2.Attrs{ContentType: "application/json", Info: metadata.Attributes()}
	if err := sc.put(ctx, sidecar(path, metaSuffix), meta, attrs); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	return nil
}

func (sc *B2StorageClient) WriteIndex(ctx context.Context, name string, data []byte) error {
	return sc.put(ctx, name, data, &b2.Attrs{ContentType: "application/json"})
}

func (sc *B2StorageClient) put(ctx context.Context, name string, data []byte, attrs *b2.Attrs) error {
	writer := sc.bucket.Object(sc.prefix+name).NewWriter(ctx, b2.WithAttrsOption(attrs))
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

func (sc *B2StorageClient) FileHasChanged(ctx context.Context, path string) bool {
	attrs, err := sc.bucket.Object(sc.prefix + path).Attrs(ctx)
	if err != nil {
		return true
	}

	metaAttrs, err := sc.bucket.Object(sc.prefix + sidecar(path, metaSuffix)).Attrs(ctx)
	if err != nil {
		return true
	}

	lastUpdateSha1, ok := metaAttrs.Info["source-sha1"]
	if !ok {
		return true
	}

	return attrs.SHA1 != lastUpdateSha1
}
