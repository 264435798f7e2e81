package extractor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSelectors(t *testing.T) {
	yaml := `
content_region: "div.region.region-content"
title: "h1"
body: ".field.field-name-body"
date: ".field.field-name-date"
topics: ".tags"
authors: ".field.field-name-authors"
`
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write selectors file: %v", err)
	}

	selectors, err := LoadSelectors(path)
	if err != nil {
		t.Fatalf("LoadSelectors failed: %v", err)
	}

	if selectors.ContentRegion != "div.region.region-content" {
		t.Errorf("content_region = %q", selectors.ContentRegion)
	}
	if selectors.Title != "h1" {
		t.Errorf("title = %q", selectors.Title)
	}
}

func TestLoadSelectorsEmptyPathFallsBackToDefaults(t *testing.T) {
	selectors, err := LoadSelectors("")
	if err != nil {
		t.Fatalf("LoadSelectors failed: %v", err)
	}

	want := DefaultSelectors()
	if *selectors != *want {
		t.Errorf("selectors = %+v, want defaults %+v", selectors, want)
	}
}

func TestLoadSelectorsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte(`title: "h1"`), 0o644); err != nil {
		t.Fatalf("write selectors file: %v", err)
	}

	if _, err := LoadSelectors(path); err == nil {
		t.Error("incomplete selectors file should fail validation")
	}
}
