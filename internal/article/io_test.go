package article

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func sampleArticle() *Article {
	return &Article{
		URL:     "https://www.comnews.ru/content/test-story",
		ID:      5,
		Title:   "Заголовок",
		Text:    "Текст статьи.",
		Date:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Topics:  []string{"Телеком"},
		Authors: []string{"Петров"},
	}
}

func TestToRaw(t *testing.T) {
	dir := t.TempDir()
	art := sampleArticle()

	if err := ToRaw(dir, art); err != nil {
		t.Fatalf("ToRaw failed: %v", err)
	}

	data, err := os.ReadFile(RawPath(dir, 5))
	if err != nil {
		t.Fatalf("raw file not written: %v", err)
	}
	if string(data) != art.Text {
		t.Errorf("raw content = %q, want %q", data, art.Text)
	}
}

func TestToMeta(t *testing.T) {
	dir := t.TempDir()
	art := sampleArticle()

	if err := ToMeta(dir, art, "превью", "deadbeef"); err != nil {
		t.Fatalf("ToMeta failed: %v", err)
	}

	data, err := os.ReadFile(MetaPath(dir, 5))
	if err != nil {
		t.Fatalf("meta file not written: %v", err)
	}

	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("meta is not valid JSON: %v", err)
	}

	if meta.ID != 5 || meta.URL != art.URL || meta.Title != art.Title {
		t.Errorf("meta identity mangled: %+v", meta)
	}
	if meta.Date != "2024-03-04" {
		t.Errorf("meta date = %q, want 2024-03-04", meta.Date)
	}
	if meta.Preview != "превью" || meta.Checksum != "deadbeef" {
		t.Errorf("meta extras mangled: %+v", meta)
	}
}

func TestToMetaWithoutDate(t *testing.T) {
	dir := t.TempDir()
	art := sampleArticle()
	art.Date = time.Time{}

	if err := ToMeta(dir, art, "", ""); err != nil {
		t.Fatalf("ToMeta failed: %v", err)
	}

	data, err := os.ReadFile(MetaPath(dir, 5))
	if err != nil {
		t.Fatalf("meta file not written: %v", err)
	}

	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("meta is not valid JSON: %v", err)
	}
	if meta.Date != "" {
		t.Errorf("meta date should be omitted, got %q", meta.Date)
	}
}
