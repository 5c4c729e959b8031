package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"seolink/internal/application"
	"seolink/internal/domain"
)

// Environment variables read by Load
const (
	EnvConfig      = "SEOLINK_CONFIG"
	EnvContentRoot = "SEOLINK_CONTENT_ROOT"
	EnvAnalytics   = "SEOLINK_ANALYTICS"
	EnvReport      = "SEOLINK_REPORT"
	EnvDB          = "SEOLINK_DB"
	EnvDebug       = "SEOLINK_DEBUG"
)

// DefaultConfigFile is looked up in the working directory when no file is named
const DefaultConfigFile = "seolink.yaml"

// Config holds every tunable of the linking engine
type Config struct {
	ContentRoot   string `yaml:"content_root"`
	AnalyticsPath string `yaml:"analytics"`
	ReportPath    string `yaml:"report"`
	DBPath        string `yaml:"db"` // empty means the per-site default under XDG_DATA_HOME
	Debug         bool   `yaml:"debug"`
	ReportLimit   int    `yaml:"report_limit"`

	Scan        ScanConfig      `yaml:"scan"`
	Markup      MarkupConfig    `yaml:"markup"`
	Authority   AuthorityConfig `yaml:"authority"`
	Ranking     RankingConfig   `yaml:"ranking"`
	LegacySlugs []string        `yaml:"legacy_slugs"`
	StopWords   []string        `yaml:"stop_words"`
}

// ScanConfig selects page sources under the content root
type ScanConfig struct {
	Extensions    []string `yaml:"extensions"`
	ExcludedFiles []string `yaml:"excluded_files"`
	ExcludedDirs  []string `yaml:"excluded_dirs"`
}

// MarkupConfig names the structures the extractors look for
type MarkupConfig struct {
	MetaTag    string `yaml:"meta_tag"`
	ClosingTag string `yaml:"closing_tag"`
}

// AuthorityConfig holds classification thresholds
type AuthorityConfig struct {
	HighMaxPosition    float64 `yaml:"high_max_position"`
	HighMinImpressions int     `yaml:"high_min_impressions"`
	LowMinPosition     float64 `yaml:"low_min_position"`
	LowMaxImpressions  int     `yaml:"low_max_impressions"`
	StarvedBelow       int     `yaml:"starved_below"`
}

// RankingConfig holds suggestion limits
type RankingConfig struct {
	MinSimilarity   float64 `yaml:"min_similarity"`
	MaxPerTarget    int     `yaml:"max_per_target"`
	AnchorMaxLength int     `yaml:"anchor_max_length"`
	MaxKeywords     int     `yaml:"max_keywords"`
}

// Default returns the built-in configuration
func Default() *Config {
	auth := domain.DefaultAuthorityPolicy()
	rank := domain.DefaultRankPolicy()

	return &Config{
		ContentRoot:   "src/pages",
		AnalyticsPath: "data/search-console-pages.csv",
		ReportPath:    "internal-links-report.json",
		ReportLimit:   100,
		Scan: ScanConfig{
			Extensions:    []string{".tsx", ".jsx", ".html"},
			ExcludedFiles: []string{"_app", "_document", "_template", "template", "404"},
			ExcludedDirs:  []string{"components", "utils", "hooks", "lib", "data", "styles", "__tests__"},
		},
		Markup: MarkupConfig{MetaTag: "SEO", ClosingTag: "main"},
		Authority: AuthorityConfig{
			HighMaxPosition:    auth.HighMaxPosition,
			HighMinImpressions: auth.HighMinImpressions,
			LowMinPosition:     auth.LowMinPosition,
			LowMaxImpressions:  auth.LowMaxImpressions,
			StarvedBelow:       auth.StarvedBelow,
		},
		Ranking: RankingConfig{
			MinSimilarity:   rank.MinSimilarity,
			MaxPerTarget:    rank.MaxPerTarget,
			AnchorMaxLength: rank.AnchorMaxLength,
			MaxKeywords:     domain.DefaultMaxKeywords,
		},
		LegacySlugs: append([]string{}, domain.DefaultLegacySlugs...),
		StopWords:   append([]string{}, domain.DefaultStopWords...),
	}
}

// LoadOptions points Load at explicit files
type LoadOptions struct {
	ConfigFile string // YAML file; falls back to SEOLINK_CONFIG then ./seolink.yaml
	EnvFile    string // dotenv file; defaults to ./.env
}

// Load layers defaults, .env, the YAML file and environment variables
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	envFiles := []string{}
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}
	// A missing .env is normal
	_ = godotenv.Load(envFiles...)

	path, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultConfigFile
		}
	}

	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ContentRoot = getEnvString(EnvContentRoot, c.ContentRoot)
	c.AnalyticsPath = getEnvString(EnvAnalytics, c.AnalyticsPath)
	c.ReportPath = getEnvString(EnvReport, c.ReportPath)
	c.DBPath = getEnvString(EnvDB, c.DBPath)
	c.Debug = getEnvBool(EnvDebug, c.Debug)
}

// Validate rejects configurations the engine cannot run with
func (c *Config) Validate() error {
	checks := []error{
		application.ValidateRequired("contentRoot", c.ContentRoot),
		application.ValidateRequired("reportPath", c.ReportPath),
		application.ValidateNonEmpty("extensions", c.Scan.Extensions),
		application.ValidatePositive("maxKeywords", float64(c.Ranking.MaxKeywords)),
		application.ValidatePositive("maxPerTarget", float64(c.Ranking.MaxPerTarget)),
		application.ValidatePositive("anchorMaxLength", float64(c.Ranking.AnchorMaxLength)),
		application.ValidateFraction("minSimilarity", c.Ranking.MinSimilarity),
		application.ValidatePositive("starvedBelow", float64(c.Authority.StarvedBelow)),
		application.ValidatePositive("highMaxPosition", c.Authority.HighMaxPosition),
		application.ValidatePositive("lowMinPosition", c.Authority.LowMinPosition),
		application.ValidatePositive("reportLimit", float64(c.ReportLimit)),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	for _, ext := range c.Scan.Extensions {
		if ext = strings.TrimSpace(ext); ext != "" && !strings.HasPrefix(ext, ".") {
			return &application.ValidationError{
				Field:   "extensions",
				Message: fmt.Sprintf("extension must start with a dot, got: %s", ext),
			}
		}
	}
	return nil
}

// AuthorityPolicy returns the classification thresholds
func (c *Config) AuthorityPolicy() domain.AuthorityPolicy {
	return domain.AuthorityPolicy{
		HighMaxPosition:    c.Authority.HighMaxPosition,
		HighMinImpressions: c.Authority.HighMinImpressions,
		LowMinPosition:     c.Authority.LowMinPosition,
		LowMaxImpressions:  c.Authority.LowMaxImpressions,
		StarvedBelow:       c.Authority.StarvedBelow,
	}
}

// RankPolicy returns the suggestion limits
func (c *Config) RankPolicy() domain.RankPolicy {
	return domain.RankPolicy{
		MinSimilarity:   c.Ranking.MinSimilarity,
		MaxPerTarget:    c.Ranking.MaxPerTarget,
		AnchorMaxLength: c.Ranking.AnchorMaxLength,
	}
}

func getEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
