package storage

import (
	"context"

	"comnews-scraper/internal/article"
)

// Repository принимает извлечённые записи. Записи приходят по одной, в
// порядке обнаружения URL.
type Repository interface {
	Save(ctx context.Context, art *article.Article) error
	Close() error
}
