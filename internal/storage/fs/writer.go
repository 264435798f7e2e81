package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"comnews-scraper/internal/article"
	"comnews-scraper/internal/checksum"
	"comnews-scraper/internal/normalize"
	"comnews-scraper/internal/observability"
)

// Writer складывает записи в каталог ассетов: <id>_raw.txt с текстом и
// <id>_meta.json с метаданными.
type Writer struct {
	dir        string
	normalizer *normalize.Normalizer
	checksum   *checksum.Generator
	logger     *observability.Logger
}

func NewWriter(dir string, normalizer *normalize.Normalizer, logger *observability.Logger) (*Writer, error) {
	if err := PrepareEnvironment(dir); err != nil {
		return nil, err
	}

	return &Writer{
		dir:        dir,
		normalizer: normalizer,
		checksum:   checksum.NewGenerator(),
		logger:     logger,
	}, nil
}

// PrepareEnvironment гарантирует, что каталог существует и пуст от файлов
// прошлых запусков.
func PrepareEnvironment(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create assets dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read assets dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("remove stale file %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func (w *Writer) Save(_ context.Context, art *article.Article) error {
	if err := article.ToRaw(w.dir, art); err != nil {
		return err
	}

	preview := w.normalizer.Preview(art.Text)
	sum := w.checksum.Content(art)
	if err := article.ToMeta(w.dir, art, preview, sum); err != nil {
		return err
	}

	w.logger.Debug("Article saved",
		"id", art.ID,
		"raw", article.RawPath(w.dir, art.ID),
		"meta", article.MetaPath(w.dir, art.ID),
	)

	return nil
}

func (w *Writer) Close() error {
	return nil
}
