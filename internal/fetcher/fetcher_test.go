package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"comnews-scraper/internal/config"
	"comnews-scraper/internal/observability"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	doc := map[string]any{
		"seed_urls":                        []any{"https://www.comnews.ru/"},
		"total_articles_to_find_and_parse": 3,
		"headers":                          map[string]any{"User-Agent": "test-agent", "X-Check": "fetcher"},
		"encoding":                         "utf-8",
		"timeout":                          5,
		"should_verify_certificate":        true,
		"headless_mode":                    false,
		"site": map[string]any{
			"base_url":            "https://www.comnews.ru",
			"article_path_prefix": "/content/",
		},
		"storage":       map[string]any{"driver": "fs", "assets_path": t.TempDir()},
		"observability": map[string]any{"log_path": "logs/test.log", "log_level": "debug"},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestPolitenessDelayBounds(t *testing.T) {
	d := newPolitenessDelay()

	for i := 0; i < 100; i++ {
		pause := d.next()
		if pause < 0 || pause >= 3*time.Second {
			t.Fatalf("politeness delay out of [0s, 3s): %v", pause)
		}
		if pause%time.Second != 0 {
			t.Fatalf("politeness delay not whole seconds: %v", pause)
		}
	}
}

func TestFetchAppliesHeaders(t *testing.T) {
	var gotAgent, gotCheck string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		gotAgent = r.Header.Get("User-Agent")
		gotCheck = r.Header.Get("X-Check")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	f := NewFetcher(testConfig(t), observability.NewNop())
	f.delay.maxSeconds = 1 // нулевая пауза в тестах

	resp, err := f.Fetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !resp.OK() {
		t.Errorf("status = %d, want 2xx", resp.StatusCode)
	}
	if string(resp.Body) != "<html>ok</html>" {
		t.Errorf("body = %q", resp.Body)
	}
	if gotAgent != "test-agent" || gotCheck != "fetcher" {
		t.Errorf("configured headers not applied: agent=%q check=%q", gotAgent, gotCheck)
	}
}

func TestFetchReturnsErrorStatusToCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(testConfig(t), observability.NewNop())
	f.delay.maxSeconds = 1

	// 5xx — не ошибка уровня фетчера, решает вызывающий
	resp, err := f.Fetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if resp.OK() {
		t.Errorf("status = %d should not be OK", resp.StatusCode)
	}
}

func TestFetchHonorsRobots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	f := NewFetcher(testConfig(t), observability.NewNop())
	f.delay.maxSeconds = 1

	if _, err := f.Fetch(context.Background(), server.URL+"/private/doc"); err == nil {
		t.Error("disallowed URL should fail")
	} else if !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := f.Fetch(context.Background(), server.URL+"/public/doc"); err != nil {
		t.Errorf("allowed URL should succeed: %v", err)
	}
}

func TestWaitCancelled(t *testing.T) {
	d := newPolitenessDelay()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Отменённый контекст прерывает паузу сразу
	start := time.Now()
	err := d.Wait(ctx)
	if time.Since(start) > 500*time.Millisecond {
		t.Error("Wait did not honor cancelled context")
	}
	if err == nil {
		t.Error("Wait should surface context error")
	}
}
