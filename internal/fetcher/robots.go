package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

const maxRobotsBodyBytes = 512 * 1024

// RobotsCache проверяет robots.txt с кешированием по хосту. Отсутствующий
// или недоступный robots.txt трактуется как разрешение.
type RobotsCache struct {
	client    *http.Client
	userAgent string
	ttl       time.Duration
	cache     map[string]*robotsEntry
	mu        sync.RWMutex
}

type robotsEntry struct {
	data      *robotstxt.RobotsData
	expiresAt time.Time
}

func NewRobotsCache(client *http.Client, userAgent string, ttl time.Duration) *RobotsCache {
	if userAgent == "" {
		userAgent = "comnews-scraper"
	}
	return &RobotsCache{
		client:    client,
		userAgent: userAgent,
		ttl:       ttl,
		cache:     make(map[string]*robotsEntry),
	}
}

func (rc *RobotsCache) IsAllowed(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("invalid URL: %w", err)
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		return false, fmt.Errorf("empty host in URL %q", rawURL)
	}

	rc.mu.RLock()
	entry, exists := rc.cache[host]
	rc.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		entry = rc.fetchEntry(ctx, parsed.Scheme, host)
		rc.mu.Lock()
		rc.cache[host] = entry
		rc.mu.Unlock()
	}

	return entry.data.TestAgent(parsed.Path, rc.userAgent), nil
}

func (rc *RobotsCache) fetchEntry(ctx context.Context, scheme, host string) *robotsEntry {
	allowData, _ := robotstxt.FromStatusAndBytes(http.StatusNotFound, nil)
	allowAll := &robotsEntry{
		data:      allowData,
		expiresAt: time.Now().Add(rc.ttl),
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return allowAll
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.client.Do(req)
	if err != nil {
		// Network error: assume allowed
		return allowAll
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBodyBytes))
	if err != nil {
		return allowAll
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return allowAll
	}

	return &robotsEntry{
		data:      data,
		expiresAt: time.Now().Add(rc.ttl),
	}
}
