package config

import "errors"

// Ошибки валидации конфига: по одной на нарушенное правило.
var (
	ErrIncorrectSeedURL       = errors.New("seed_urls must be a non-empty list of http(s) urls")
	ErrIncorrectArticleCount  = errors.New("total_articles_to_find_and_parse must be a positive integer")
	ErrArticleCountOutOfRange = errors.New("total_articles_to_find_and_parse must be in range (1, 150]")
	ErrIncorrectHeaders       = errors.New("headers must be a string-to-string mapping")
	ErrIncorrectEncoding      = errors.New("encoding must be a string")
	ErrIncorrectTimeout       = errors.New("timeout must be an integer in range (0, 60)")
	ErrIncorrectVerifyFlag    = errors.New("should_verify_certificate and headless_mode must be booleans")
	ErrIncorrectBaseURL       = errors.New("site.base_url must be an http(s) url")
	ErrIncorrectPathPrefix    = errors.New("site.article_path_prefix must start with '/'")
)
