package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors описывает CSS-селекторы конкретного сайта. Загружаются из YAML
// файла либо берутся по умолчанию для comnews.ru.
type Selectors struct {
	ContentRegion string `yaml:"content_region"`
	Title         string `yaml:"title"`
	Body          string `yaml:"body"`
	Date          string `yaml:"date"`
	Topics        string `yaml:"topics"`
	Authors       string `yaml:"authors"`
}

// DefaultSelectors возвращает селекторы comnews.ru.
func DefaultSelectors() *Selectors {
	return &Selectors{
		ContentRegion: "div.region.region-content",
		Title:         "h1",
		Body:          ".field.field-text.full-html.field-name-body",
		Date:          ".field.field-text.field-name-date",
		Topics:        ".tags",
		Authors:       ".field.field-text.field-multiple.person.field-name-authors",
	}
}

// LoadSelectors загружает селекторы сайта из YAML файла. Пустой путь
// означает селекторы по умолчанию.
func LoadSelectors(filePath string) (*Selectors, error) {
	if filePath == "" {
		return DefaultSelectors(), nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	var selectors Selectors
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(&selectors); err != nil {
		return nil, err
	}

	return &selectors, nil
}

func validateSelectors(s *Selectors) error {
	if s.ContentRegion == "" {
		return fmt.Errorf("content_region is required")
	}
	if s.Title == "" {
		return fmt.Errorf("title is required")
	}
	if s.Body == "" {
		return fmt.Errorf("body is required")
	}
	if s.Date == "" {
		return fmt.Errorf("date is required")
	}
	if s.Topics == "" {
		return fmt.Errorf("topics is required")
	}
	if s.Authors == "" {
		return fmt.Errorf("authors is required")
	}
	return nil
}
