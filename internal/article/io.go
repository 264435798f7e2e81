package article

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Meta — сериализуемая форма записи для <id>_meta.json.
type Meta struct {
	ID       int      `json:"id"`
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Date     string   `json:"date,omitempty"`
	Authors  []string `json:"author"`
	Topics   []string `json:"topics"`
	Preview  string   `json:"preview,omitempty"`
	Checksum string   `json:"checksum,omitempty"`
}

func RawPath(dir string, id int) string {
	return filepath.Join(dir, fmt.Sprintf("%d_raw.txt", id))
}

func MetaPath(dir string, id int) string {
	return filepath.Join(dir, fmt.Sprintf("%d_meta.json", id))
}

// ToRaw пишет текст статьи в <id>_raw.txt.
func ToRaw(dir string, art *Article) error {
	if err := os.WriteFile(RawPath(dir, art.ID), []byte(art.Text), 0o644); err != nil {
		return fmt.Errorf("write raw file: %w", err)
	}
	return nil
}

// ToMeta пишет метаданные статьи в <id>_meta.json. Preview и checksum
// считает вызывающий.
func ToMeta(dir string, art *Article, preview, checksum string) error {
	meta := Meta{
		ID:       art.ID,
		URL:      art.URL,
		Title:    art.Title,
		Authors:  art.Authors,
		Topics:   art.Topics,
		Preview:  preview,
		Checksum: checksum,
	}
	if art.HasDate() {
		meta.Date = art.Date.Format("2006-01-02")
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	if err := os.WriteFile(MetaPath(dir, art.ID), data, 0o644); err != nil {
		return fmt.Errorf("write meta file: %w", err)
	}
	return nil
}
