package config

import (
	"fmt"
	"log"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var seedURLPattern = regexp.MustCompile(`^https?://(www\.)?[\w-]+(\.[\w-]+)+`)

// rawDocument держит основные поля документа нетипизированными, чтобы
// нарушение типа у каждого поля давало свою ошибку, а не общий сбой декодера.
type rawDocument struct {
	SeedURLs      any                 `yaml:"seed_urls"`
	TotalArticles any                 `yaml:"total_articles_to_find_and_parse"`
	Headers       any                 `yaml:"headers"`
	Encoding      any                 `yaml:"encoding"`
	Timeout       any                 `yaml:"timeout"`
	VerifyCert    any                 `yaml:"should_verify_certificate"`
	HeadlessMode  any                 `yaml:"headless_mode"`
	Site          SiteConfig          `yaml:"site"`
	SelectorsFile string              `yaml:"selectors_file"`
	Storage       StorageConfig       `yaml:"storage"`
	Observability ObservabilityConfig `yaml:"observability"`
	Browser       BrowserConfig       `yaml:"browser"`
}

// LoadConfig читает и валидирует конфигурационный документ. Документ — JSON,
// декодируется yaml.v3 (YAML — надмножество JSON). Частично заполненный
// конфиг никогда не возвращается.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close config file: %v", closeErr)
		}
	}()

	var raw rawDocument
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg, err := raw.validate()
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}

// validate применяет правила в фиксированном порядке и прерывается на первом
// нарушении. Значения по умолчанию не подставляются.
func (raw *rawDocument) validate() (*Config, error) {
	seeds, err := validateSeedURLs(raw.SeedURLs)
	if err != nil {
		return nil, err
	}

	numArticles, ok := raw.TotalArticles.(int)
	if !ok || numArticles <= 0 {
		return nil, ErrIncorrectArticleCount
	}
	if numArticles <= 1 || numArticles > 150 {
		return nil, ErrArticleCountOutOfRange
	}

	headers, err := validateHeaders(raw.Headers)
	if err != nil {
		return nil, err
	}

	encoding, ok := raw.Encoding.(string)
	if !ok {
		return nil, ErrIncorrectEncoding
	}

	timeout, ok := raw.Timeout.(int)
	if !ok || timeout <= 0 || timeout >= 60 {
		return nil, ErrIncorrectTimeout
	}

	verifyCert, ok := raw.VerifyCert.(bool)
	if !ok {
		return nil, ErrIncorrectVerifyFlag
	}
	headless, ok := raw.HeadlessMode.(bool)
	if !ok {
		return nil, ErrIncorrectVerifyFlag
	}

	if !seedURLPattern.MatchString(raw.Site.BaseURL) {
		return nil, ErrIncorrectBaseURL
	}
	if raw.Site.ArticlePathPrefix == "" || raw.Site.ArticlePathPrefix[0] != '/' {
		return nil, ErrIncorrectPathPrefix
	}

	cfg := &Config{
		seedURLs:      seeds,
		numArticles:   numArticles,
		headers:       headers,
		encoding:      encoding,
		timeoutS:      timeout,
		verifyCert:    verifyCert,
		headless:      headless,
		Site:          raw.Site,
		SelectorsFile: raw.SelectorsFile,
		Storage:       raw.Storage,
		Observability: raw.Observability,
		Browser:       raw.Browser,
	}

	if err := cfg.validateSections(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateSeedURLs(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, ErrIncorrectSeedURL
	}

	seeds := make([]string, 0, len(list))
	for _, item := range list {
		seed, ok := item.(string)
		if !ok || !seedURLPattern.MatchString(seed) {
			return nil, ErrIncorrectSeedURL
		}
		seeds = append(seeds, seed)
	}

	return seeds, nil
}

func validateHeaders(v any) (map[string]string, error) {
	mapping, ok := v.(map[string]any)
	if !ok {
		return nil, ErrIncorrectHeaders
	}

	headers := make(map[string]string, len(mapping))
	for key, value := range mapping {
		s, ok := value.(string)
		if !ok {
			return nil, ErrIncorrectHeaders
		}
		headers[key] = s
	}

	return headers, nil
}
