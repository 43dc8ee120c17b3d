package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/SayaAndy/saya-today-article-schema/internal/article"
	"github.com/SayaAndy/saya-today-article-schema/internal/posts"
	"github.com/SayaAndy/saya-today-article-schema/internal/storage"
)

type Options struct {
	MaxConcurrentJobs int
	ArchiveName       string
	DryRun            bool
	Logger            *slog.Logger
}

type Summary struct {
	Scanned     int
	Processed   int
	Unchanged   int
	Skipped     int
	Failed      int
	FAQPages    int
	HowToPages  int
	ArchiveName string
	DryRun      bool
	Years       []posts.YearGroup[article.Entry]
}

type Runner struct {
	processor *Processor
	storage   storage.StorageClient
	opts      Options
}

func NewRunner(processor *Processor, client storage.StorageClient, opts Options) *Runner {
	if opts.MaxConcurrentJobs < 1 {
		opts.MaxConcurrentJobs = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{processor: processor, storage: client, opts: opts}
}

// Run processes every article in storage and writes the year-grouped
// archive. Per-file failures are logged and counted, never returned.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	logger := r.opts.Logger
	summary := &Summary{ArchiveName: r.opts.ArchiveName, DryRun: r.opts.DryRun}

	files, err := r.storage.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan input files: %w", err)
	}
	slices.Sort(files)
	summary.Scanned = len(files)
	logger.Info("scanned files", slog.Int("file_count", len(files)))

	results := make([]*article.Metadata, len(files))
	var mu sync.Mutex
	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}

	semaphore := make(chan struct{}, r.opts.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for i, file := range files {
		if ctx.Err() != nil {
			break
		}
		semaphore <- struct{}{}
		wg.Add(1)
		go func(index int, file string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			fileLogger := logger.With(slog.String("file", file))

			metadata, changed, err := r.processOne(ctx, file)
			switch {
			case errors.Is(err, ErrNoFrontmatter):
				fileLogger.Info("skip a file due to it not having metadata")
				count(&summary.Skipped)
				return
			case err != nil:
				fileLogger.Warn("fail to process a file", slog.String("error", err.Error()))
				count(&summary.Failed)
				return
			}
			results[index] = metadata

			if !changed {
				fileLogger.Debug("skipped writing metadata because the file has not changed since last parse")
				count(&summary.Unchanged)
				return
			}
			if !r.opts.DryRun {
				if err := r.storage.WriteMetadata(ctx, file, metadata); err != nil {
					fileLogger.Warn("fail to write metadata for a file", slog.String("error", err.Error()))
					count(&summary.Failed)
					return
				}
			}
			fileLogger.Debug("processed a file",
				slog.Int("word_count", metadata.ReadingTime.WordCount),
				slog.Int("faq_count", len(metadata.FAQs)),
				slog.Int("howto_steps", len(metadata.HowTo)))
			count(&summary.Processed)
		}(i, file)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	var entries []article.Entry
	for _, metadata := range results {
		if metadata == nil {
			continue
		}
		entries = append(entries, metadata.Entry())
		if metadata.FAQs != nil {
			summary.FAQPages++
		}
		if metadata.HowTo != nil {
			summary.HowToPages++
		}
	}
	summary.Years = posts.GroupByYear(posts.SortByDate(entries, nil), nil)

	if r.opts.DryRun {
		return summary, nil
	}

	data, err := json.MarshalIndent(summary.Years, "", "  ")
	if err != nil {
		return summary, fmt.Errorf("marshal archive: %w", err)
	}
	if err := r.storage.WriteIndex(ctx, r.opts.ArchiveName, data); err != nil {
		return summary, fmt.Errorf("write archive: %w", err)
	}
	logger.Info("wrote archive", slog.String("name", r.opts.ArchiveName), slog.Int("post_count", len(entries)))

	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, file string) (*article.Metadata, bool, error) {
	changed := r.storage.FileHasChanged(ctx, file)

	reader, _, err := r.storage.GetReader(ctx, file)
	if err != nil {
		return nil, false, fmt.Errorf("get reader: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, false, fmt.Errorf("read content: %w", err)
	}

	metadata, err := r.processor.ProcessFile(file, content)
	if err != nil {
		return nil, false, err
	}
	return metadata, changed, nil
}
