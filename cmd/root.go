package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SayaAndy/saya-today-article-schema/config"
	"github.com/SayaAndy/saya-today-article-schema/internal/pipeline"
	"github.com/SayaAndy/saya-today-article-schema/internal/report"
	"github.com/SayaAndy/saya-today-article-schema/internal/storage"
	"github.com/SayaAndy/saya-today-article-schema/internal/version"
)

var configPath string
var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "article-schema",
	Short: "Derive reading time, FAQ/HowTo data and JSON-LD for site articles",
	Long: `article-schema scans the article store, parses each post's frontmatter and body,
and writes reading time, detected FAQ and HowTo data and the schema.org JSON-LD graph
next to every article, plus a year-grouped archive index.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitConfig(configPath)
		if err != nil {
			return fmt.Errorf("fail to load configuration: %w", err)
		}

		slog.SetLogLoggerLevel(cfg.LogLevel)
		slog.Info("starting article schema generator...")

		newClient, ok := storage.NewStorageClientMap[cfg.Storage.Type]
		if !ok {
			return fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
		}
		storageClient, err := newClient(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("fail to initialize storage client: %w", err)
		}

		generalLogger := slog.With(
			slog.String("storage_type", cfg.Storage.Type),
		)
		generalLogger.Info("initialized storage client")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		runner := pipeline.NewRunner(
			pipeline.NewProcessor(cfg.Site.URL, cfg.Identity()),
			storageClient,
			pipeline.Options{
				MaxConcurrentJobs: cfg.MaxConcurrentJobs,
				ArchiveName:       cfg.ArchiveName,
				DryRun:            dryRun,
				Logger:            generalLogger,
			},
		)

		summary, err := runner.Run(ctx)
		if summary != nil {
			report.Summary(cmd.OutOrStdout(), summary)
		}
		return err
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("article-schema %s\n", version.String()))

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.json", "Path to the configuration file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and report without writing anything")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
