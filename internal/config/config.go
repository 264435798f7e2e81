package config

import (
	"fmt"
	"time"
)

type Config struct {
	seedURLs    []string
	numArticles int
	headers     map[string]string
	encoding    string
	timeoutS    int
	verifyCert  bool
	headless    bool

	Site          SiteConfig
	SelectorsFile string
	Storage       StorageConfig
	Observability ObservabilityConfig
	Browser       BrowserConfig
}

type SiteConfig struct {
	BaseURL           string `yaml:"base_url"`
	ArticlePathPrefix string `yaml:"article_path_prefix"`
}

type StorageConfig struct {
	Driver           string `yaml:"driver"`
	AssetsPath       string `yaml:"assets_path"`
	DSN              string `yaml:"dsn"`
	CommandTimeoutMS int    `yaml:"command_timeout_ms"`
	MaxPreviewChars  int    `yaml:"max_preview_chars"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

type BrowserConfig struct {
	ChromePath   string `yaml:"chrome_path"`
	PageTimeoutS int    `yaml:"page_timeout_s"`
}

// Getters

// GetSeedURLs возвращает список стартовых страниц в порядке конфига.
func (c *Config) GetSeedURLs() []string {
	return c.seedURLs
}

// GetNumArticles возвращает целевое число статей.
func (c *Config) GetNumArticles() int {
	return c.numArticles
}

func (c *Config) GetHeaders() map[string]string {
	return c.headers
}

func (c *Config) GetEncoding() string {
	return c.encoding
}

func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.timeoutS) * time.Second
}

func (c *Config) GetVerifyCertificate() bool {
	return c.verifyCert
}

func (c *Config) GetHeadlessMode() bool {
	return c.headless
}

func (c *Config) GetCommandTimeout() time.Duration {
	return time.Duration(c.Storage.CommandTimeoutMS) * time.Millisecond
}

func (c *Config) GetPageTimeout() time.Duration {
	return time.Duration(c.Browser.PageTimeoutS) * time.Second
}

// validateSections проверяет служебные секции конфига. Правила по основным
// полям документа живут в loader.go рядом с распаковкой.
func (c *Config) validateSections() error {
	if c.Storage.Driver != "fs" && c.Storage.Driver != "mssql" {
		return fmt.Errorf("storage.driver must be 'fs' or 'mssql'")
	}
	if c.Storage.Driver == "fs" && c.Storage.AssetsPath == "" {
		return fmt.Errorf("storage.assets_path is required for the fs driver")
	}
	if c.Storage.Driver == "mssql" {
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the mssql driver")
		}
		if c.Storage.CommandTimeoutMS <= 0 {
			return fmt.Errorf("storage.command_timeout_ms must be > 0")
		}
	}
	if c.Storage.MaxPreviewChars < 0 {
		return fmt.Errorf("storage.max_preview_chars must be >= 0")
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	if c.headless && c.Browser.PageTimeoutS <= 0 {
		return fmt.Errorf("browser.page_timeout_s must be > 0 when headless_mode is on")
	}
	return nil
}
