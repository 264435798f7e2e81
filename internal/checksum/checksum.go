package checksum

import (
	"crypto/sha256"
	"fmt"

	"comnews-scraper/internal/article"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Content считает SHA256(url|title|text|date_iso) записи. Для записи без
// даты сегмент даты пустой.
func (g *Generator) Content(art *article.Article) string {
	dateISO := ""
	if art.HasDate() {
		dateISO = art.Date.UTC().Format("2006-01-02")
	}

	payload := fmt.Sprintf("%s|%s|%s|%s", art.URL, art.Title, art.Text, dateISO)
	hash := sha256.Sum256([]byte(payload))

	return fmt.Sprintf("%x", hash)
}

// Verify проверяет соответствие хеша записи.
func (g *Generator) Verify(expected string, art *article.Article) bool {
	return g.Content(art) == expected
}
