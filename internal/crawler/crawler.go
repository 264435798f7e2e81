package crawler

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"comnews-scraper/internal/config"
	"comnews-scraper/internal/extractor"
	"comnews-scraper/internal/fetcher"
	"comnews-scraper/internal/observability"
)

// Fetcher — то, что краулеру нужно от HTTP-слоя.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Response, error)
}

// Crawler набирает уникальные URL статей, обходя стартовые страницы.
// Единственный владелец списка найденных URL.
type Crawler struct {
	cfg       *config.Config
	fetcher   Fetcher
	selectors *extractor.Selectors
	logger    *observability.Logger

	urls []string
	seen map[string]struct{}
}

func New(cfg *config.Config, f Fetcher, selectors *extractor.Selectors, logger *observability.Logger) *Crawler {
	return &Crawler{
		cfg:       cfg,
		fetcher:   f,
		selectors: selectors,
		logger:    logger,
		seen:      make(map[string]struct{}),
	}
}

// Discover обходит стартовые страницы в порядке конфига, пока не наберёт
// целевое число уникальных URL. Ошибка загрузки стартовой страницы не
// прерывает обход (continue-on-seed-failure). Полный проход по всем
// стартовым страницам без единого нового URL завершает обход с тем, что
// уже собрано.
func (c *Crawler) Discover(ctx context.Context) ([]string, error) {
	target := c.cfg.GetNumArticles()

	for len(c.urls) < target {
		if err := ctx.Err(); err != nil {
			return c.urls, err
		}

		progressed := false
		for _, seedURL := range c.cfg.GetSeedURLs() {
			resp, err := c.fetcher.Fetch(ctx, seedURL)
			if err != nil {
				c.logger.Warn("Seed fetch failed, skipping",
					"seed_url", seedURL,
					"error", err.Error(),
				)
				continue
			}
			if !resp.OK() {
				c.logger.Warn("Seed fetch unsuccessful, skipping",
					"seed_url", seedURL,
					"status", resp.StatusCode,
				)
				continue
			}

			articleURL := c.extractURL(resp.Body)
			if articleURL == "" {
				continue
			}

			c.urls = append(c.urls, articleURL)
			c.seen[articleURL] = struct{}{}
			progressed = true

			c.logger.Debug("Discovered article URL",
				"url", articleURL,
				"count", len(c.urls),
			)

			if len(c.urls) >= target {
				return c.urls, nil
			}
		}

		if !progressed {
			c.logger.Info("Discovery stagnant, stopping early",
				"discovered", len(c.urls),
				"target", target,
			)
			break
		}
	}

	return c.urls, nil
}

// extractURL возвращает абсолютный URL первой ещё не виденной ссылки на
// статью в основном контейнере страницы, либо "".
func (c *Crawler) extractURL(page []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var found string
	doc.Find(c.selectors.ContentRegion).Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists || !strings.HasPrefix(href, c.cfg.Site.ArticlePathPrefix) {
			return true
		}

		absolute := strings.TrimSuffix(c.cfg.Site.BaseURL, "/") + href
		if _, ok := c.seen[absolute]; ok {
			return true
		}

		found = absolute
		return false
	})

	return found
}
