package app

import (
	"context"

	"comnews-scraper/internal/article"
	"comnews-scraper/internal/observability"
	"comnews-scraper/internal/storage"
)

type Discoverer interface {
	Discover(ctx context.Context) ([]string, error)
}

type Extractor interface {
	Extract(ctx context.Context, url string, id int) (*article.Article, error)
}

// Orchestrator гонит пайплайн: обход стартовых страниц, затем извлечение
// и сохранение каждой найденной статьи по порядку.
type Orchestrator struct {
	logger    *observability.Logger
	crawler   Discoverer
	extractor Extractor
	repo      storage.Repository
}

func NewOrchestrator(
	logger *observability.Logger,
	crawler Discoverer,
	extractor Extractor,
	repo storage.Repository,
) *Orchestrator {
	return &Orchestrator{
		logger:    logger,
		crawler:   crawler,
		extractor: extractor,
		repo:      repo,
	}
}

type RunStats struct {
	Discovered int
	Saved      int
	Skipped    int
}

// Run выполняет один прогон. Ошибка на отдельной статье логируется и не
// останавливает обработку остальных; порядковые номера начинаются с 1 и
// следуют порядку обнаружения.
func (o *Orchestrator) Run(ctx context.Context) (*RunStats, error) {
	urls, err := o.crawler.Discover(ctx)
	if err != nil {
		return &RunStats{Discovered: len(urls)}, err
	}

	stats := &RunStats{Discovered: len(urls)}

	o.logger.Info("Discovery finished", "urls", len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		id := i + 1
		art, err := o.extractor.Extract(ctx, url, id)
		if err != nil {
			o.logger.Error("Extraction failed, skipping article",
				"url", url,
				"id", id,
				"error", err.Error(),
			)
			stats.Skipped++
			continue
		}

		if err := o.repo.Save(ctx, art); err != nil {
			o.logger.Error("Save failed, skipping article",
				"url", url,
				"id", id,
				"error", err.Error(),
			)
			stats.Skipped++
			continue
		}

		stats.Saved++
	}

	return stats, nil
}
