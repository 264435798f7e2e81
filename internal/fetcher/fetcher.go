package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"comnews-scraper/internal/config"
	"comnews-scraper/internal/observability"
)

type Fetcher struct {
	client *http.Client
	cfg    *config.Config
	logger *observability.Logger
	robots *RobotsCache
	delay  *politenessDelay

	browserOnce sync.Once
	browser     *Browser
	browserErr  error
}

type Response struct {
	StatusCode int
	Body       []byte
	URL        string
}

// OK сообщает, что ответ успешный (2xx).
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func NewFetcher(cfg *config.Config, logger *observability.Logger) *Fetcher {
	client := &http.Client{
		Timeout: cfg.GetTimeout(),
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: !cfg.GetVerifyCertificate(),
			},
		},
	}

	return &Fetcher{
		client: client,
		cfg:    cfg,
		logger: logger,
		robots: NewRobotsCache(client, cfg.GetHeaders()["User-Agent"], 12*time.Hour),
		delay:  newPolitenessDelay(),
	}
}

// Fetch выдерживает паузу вежливости и выполняет один GET с настроенными
// заголовками, таймаутом и проверкой сертификата. Без ретраев; статус не
// интерпретируется — это дело вызывающего.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*Response, error) {
	allowed, err := f.robots.IsAllowed(ctx, urlStr)
	if err != nil {
		return nil, fmt.Errorf("robots.txt check failed: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("URL disallowed by robots.txt: %s", urlStr)
	}

	if err := f.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if f.cfg.GetHeadlessMode() {
		return f.fetchHeadless(ctx, urlStr)
	}
	return f.fetchHTTP(ctx, urlStr)
}

func (f *Fetcher) fetchHTTP(ctx context.Context, urlStr string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	for key, value := range f.cfg.GetHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", urlStr, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.Warn("Failed to close response body", "error", err.Error())
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", urlStr, err)
	}

	f.logger.Debug("Fetched",
		"url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		URL:        resp.Request.URL.String(),
	}, nil
}

func (f *Fetcher) fetchHeadless(ctx context.Context, urlStr string) (*Response, error) {
	f.browserOnce.Do(func() {
		f.browser, f.browserErr = newBrowser(f.cfg.Browser.ChromePath, f.cfg.GetPageTimeout())
	})
	if f.browserErr != nil {
		return nil, fmt.Errorf("launch browser: %w", f.browserErr)
	}

	html, err := f.browser.HTML(ctx, urlStr)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", urlStr, err)
	}

	f.logger.Debug("Fetched via browser", "url", urlStr, "bytes", len(html))

	return &Response{
		StatusCode: http.StatusOK,
		Body:       []byte(html),
		URL:        urlStr,
	}, nil
}

// Close освобождает браузер, если он был запущен.
func (f *Fetcher) Close() error {
	if f.browser != nil {
		return f.browser.Close()
	}
	return nil
}
