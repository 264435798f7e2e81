package normalize

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// Normalizer готовит текст статьи к показу в метаданных. Сам текст записи
// не трогает — в raw-файл уходит то, что извлечено.
type Normalizer struct {
	maxPreviewChars int
}

func New(maxPreviewChars int) *Normalizer {
	return &Normalizer{maxPreviewChars: maxPreviewChars}
}

// CleanText заменяет NBSP обычными пробелами и схлопывает пробельные серии.
func (n *Normalizer) CleanText(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Preview возвращает очищенный текст, обрезанный по границе слова.
func (n *Normalizer) Preview(text string) string {
	text = n.CleanText(text)
	if n.maxPreviewChars <= 0 || len(text) <= n.maxPreviewChars {
		return text
	}

	truncated := text[:n.maxPreviewChars]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return text[:lastSpace] + "…"
	}
	return truncated + "…"
}
