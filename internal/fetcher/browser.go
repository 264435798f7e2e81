package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser получает HTML страницы через headless Chrome. Запускается один
// раз при первом обращении в headless-режиме.
type Browser struct {
	browser     *rod.Browser
	pageTimeout time.Duration
}

func newBrowser(chromePath string, pageTimeout time.Duration) (*Browser, error) {
	l := launcher.New().Headless(true)
	if chromePath != "" {
		l = l.Bin(chromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	return &Browser{
		browser:     browser,
		pageTimeout: pageTimeout,
	}, nil
}

func (b *Browser) HTML(ctx context.Context, urlStr string) (string, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: urlStr})
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(b.pageTimeout)

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait page load: %w", err)
	}

	return page.HTML()
}

func (b *Browser) Close() error {
	return b.browser.Close()
}
