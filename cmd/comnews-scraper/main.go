package main

import (
	"fmt"
	"log"
	"os"

	"comnews-scraper/internal/app"
	"comnews-scraper/internal/config"
	"comnews-scraper/internal/crawler"
	"comnews-scraper/internal/extractor"
	"comnews-scraper/internal/fetcher"
	"comnews-scraper/internal/normalize"
	"comnews-scraper/internal/observability"
	"comnews-scraper/internal/storage"
	"comnews-scraper/internal/storage/fs"
	"comnews-scraper/internal/storage/mssql"
)

func main() {
	configPath := "configs/scraper_config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)
	defer func() { _ = logger.Sync() }()

	selectors, err := extractor.LoadSelectors(cfg.SelectorsFile)
	if err != nil {
		log.Fatalf("Failed to load selectors: %v", err)
	}

	f := fetcher.NewFetcher(cfg, logger)
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("Failed to close fetcher", "error", err.Error())
		}
	}()

	repo, err := buildRepository(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err.Error())
		}
	}()

	c := crawler.New(cfg, f, selectors, logger)
	e := extractor.New(f, selectors, logger)
	orchestrator := app.NewOrchestrator(logger, c, e, repo)

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	logger.Info("Starting run",
		"seeds", len(cfg.GetSeedURLs()),
		"target", cfg.GetNumArticles(),
		"headless", cfg.GetHeadlessMode(),
		"storage", cfg.Storage.Driver,
	)

	stats, err := orchestrator.Run(ctx)
	if err != nil {
		logger.Error("Run aborted", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Run completed",
		"discovered", stats.Discovered,
		"saved", stats.Saved,
		"skipped", stats.Skipped,
	)
}

func buildRepository(cfg *config.Config, logger *observability.Logger) (storage.Repository, error) {
	switch cfg.Storage.Driver {
	case "fs":
		normalizer := normalize.New(cfg.Storage.MaxPreviewChars)
		return fs.NewWriter(cfg.Storage.AssetsPath, normalizer, logger)
	case "mssql":
		return mssql.NewRepository(cfg.Storage.DSN, cfg.GetCommandTimeout(), logger)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
