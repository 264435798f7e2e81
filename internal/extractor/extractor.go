package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"comnews-scraper/internal/article"
	"comnews-scraper/internal/fetcher"
	"comnews-scraper/internal/observability"
)

// Страница без заголовка — не статья; кривая дата — испорченная статья.
// Обе ошибки отдаются вызывающему, он решает, пропускать или падать.
var (
	ErrNoTitle    = errors.New("article page has no title heading")
	ErrDateFormat = errors.New("unexpected date format")
)

// Формат даты на сайте: "04.03.2024".
const dateLayout = "02.01.2006"

type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Response, error)
}

// Extractor выкачивает одну статью и собирает из её HTML структурированную
// запись.
type Extractor struct {
	fetcher   Fetcher
	selectors *Selectors
	logger    *observability.Logger
}

func New(f Fetcher, selectors *Selectors, logger *observability.Logger) *Extractor {
	return &Extractor{
		fetcher:   f,
		selectors: selectors,
		logger:    logger,
	}
}

// Extract возвращает запись по URL. Неудачная загрузка не считается
// ошибкой: запись возвращается вырожденной, только с url и id
// (degrade-on-article-failure).
func (e *Extractor) Extract(ctx context.Context, urlStr string, id int) (*article.Article, error) {
	art := article.New(urlStr, id)

	resp, err := e.fetcher.Fetch(ctx, urlStr)
	if err != nil || !resp.OK() {
		e.logger.Warn("Article fetch unsuccessful, producing empty record",
			"url", urlStr,
			"id", id,
		)
		return art, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return art, fmt.Errorf("parse article HTML: %w", err)
	}

	e.fillText(doc, art)
	if err := e.fillMeta(doc, art); err != nil {
		return art, err
	}

	return art, nil
}

// fillText склеивает текст всех элементов тела статьи в порядке документа,
// без разделителей.
func (e *Extractor) fillText(doc *goquery.Document, art *article.Article) {
	var sb strings.Builder
	doc.Find(e.selectors.Body).Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	art.Text = sb.String()
}

func (e *Extractor) fillMeta(doc *goquery.Document, art *article.Article) error {
	heading := doc.Find(e.selectors.Title).First()
	if heading.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrNoTitle, art.URL)
	}
	art.Title = strings.TrimSpace(heading.Text())

	dateNode := doc.Find(e.selectors.Date).First()
	if dateNode.Length() > 0 {
		raw := strings.TrimSpace(dateNode.Text())
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrDateFormat, raw)
		}
		art.Date = parsed
	}

	doc.Find(e.selectors.Topics).Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a").First()
		if link.Length() > 0 {
			art.Topics = append(art.Topics, strings.TrimSpace(link.Text()))
		}
	})
	if len(art.Topics) == 0 {
		art.Topics = []string{article.NotFound}
	}

	doc.Find(e.selectors.Authors).Each(func(_ int, sel *goquery.Selection) {
		name := sel.Find("span").First().Text()
		tokens := strings.Fields(name)
		if len(tokens) > 0 {
			// Последний токен имени считаем фамилией
			art.Authors = append(art.Authors, tokens[len(tokens)-1])
		}
	})
	if len(art.Authors) == 0 {
		art.Authors = []string{article.NotFound}
	}

	return nil
}
