// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/card-price-tracker/pkg/logger"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
	"github.com/donaldgifford/card-price-tracker/pkg/valuation"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	PriceCharting PriceChartingConfig `yaml:"pricecharting"`
	Valuation     ValuationConfig     `yaml:"valuation"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings and the searches ingestion runs.
type EbayConfig struct {
	AppID       string          `yaml:"app_id"`
	CertID      string          `yaml:"cert_id"`
	TokenURL    string          `yaml:"token_url"`
	BrowseURL   string          `yaml:"browse_url"`
	Marketplace string          `yaml:"marketplace"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`

	// DetailMinPrice skips the per-item detail call for cheaper listings.
	DetailMinPrice decimal.Decimal `yaml:"detail_min_price"`
	// ItemCacheTTL keeps fetched item details for reuse across searches.
	ItemCacheTTL time.Duration `yaml:"item_cache_ttl"`

	Searches []SearchConfig `yaml:"searches"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SearchConfig is one marketplace query ingestion runs every cycle.
type SearchConfig struct {
	Name       string `yaml:"name"`
	Query      string `yaml:"query"`
	CategoryID string `yaml:"category_id"`
	Limit      int    `yaml:"limit"`
}

// PriceChartingConfig defines the reference CSV source.
type PriceChartingConfig struct {
	CSVURL  string        `yaml:"csv_url"`
	Timeout time.Duration `yaml:"timeout"`
	// ConsoleFilter keeps only rows whose console name contains it.
	ConsoleFilter string `yaml:"console_filter"`
	// KeepSnapshots is how many daily snapshots to retain. Negative keeps
	// every snapshot.
	KeepSnapshots int `yaml:"keep_snapshots"`
	// ExtraColumns maps CSV headers outside the standard export to
	// reference columns, e.g. "cgc-10-pristine-price: cgc_10_pristine".
	ExtraColumns map[string]string `yaml:"extra_columns"`
}

// ColumnHeaders returns ExtraColumns as typed reference columns.
func (p *PriceChartingConfig) ColumnHeaders() (map[string]domain.Column, error) {
	if len(p.ExtraColumns) == 0 {
		return nil, nil
	}
	out := make(map[string]domain.Column, len(p.ExtraColumns))
	var errs []error
	for header, name := range p.ExtraColumns {
		col := domain.Column(name)
		switch {
		case header == "":
			errs = append(errs, errors.New("pricecharting.extra_columns has an empty header"))
		case !col.Valid():
			errs = append(errs, fmt.Errorf("pricecharting.extra_columns[%s]: unknown column %q", header, name))
		default:
			out[header] = col
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// ValuationConfig overrides the built-in calibration. Omitted entries keep
// their defaults.
type ValuationConfig struct {
	CompanyMultipliers   map[string]decimal.Decimal `yaml:"company_multipliers"`
	ConditionMultipliers map[string]decimal.Decimal `yaml:"condition_multipliers"`
	SpecialRules         []SpecialRuleConfig        `yaml:"special_rules"`
	UnknownGradeColumn   string                     `yaml:"unknown_grade_column"`
	Concurrency          int                        `yaml:"concurrency"`
}

// SpecialRuleConfig prices one company grade from a named column.
type SpecialRuleConfig struct {
	Company    string          `yaml:"company"`
	Grade      string          `yaml:"grade"`
	Column     string          `yaml:"column"`
	Multiplier decimal.Decimal `yaml:"multiplier"`
}

// Calibration merges the overrides into the default calibration.
func (v *ValuationConfig) Calibration() (valuation.Calibration, error) {
	cal := valuation.DefaultCalibration()
	var errs []error

	for company, m := range v.CompanyMultipliers {
		cal.CompanyMultipliers[domain.Company(company)] = m
	}
	for cond, m := range v.ConditionMultipliers {
		cal.ConditionMultipliers[domain.Condition(cond)] = m
	}
	if len(v.SpecialRules) > 0 {
		cal.SpecialRules = cal.SpecialRules[:0]
		for i, r := range v.SpecialRules {
			tier, ok := domain.ParseTier(r.Grade)
			if !ok {
				errs = append(errs, fmt.Errorf("valuation.special_rules[%d].grade %q is not a grade", i, r.Grade))
				continue
			}
			cal.SpecialRules = append(cal.SpecialRules, valuation.SpecialRule{
				Company:    domain.Company(r.Company),
				Tier:       tier,
				Column:     domain.Column(r.Column),
				Multiplier: r.Multiplier,
			})
		}
	}
	if v.UnknownGradeColumn != "" {
		cal.UnknownGradeColumn = domain.Column(v.UnknownGradeColumn)
	}

	if err := cal.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return valuation.Calibration{}, err
	}
	return cal, nil
}

// ScheduleConfig defines cron intervals. A zero interval disables a job.
type ScheduleConfig struct {
	IngestionInterval   time.Duration `yaml:"ingestion_interval"`
	ImportInterval      time.Duration `yaml:"import_interval"`
	RevaluationInterval time.Duration `yaml:"revaluation_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyPriceChartingDefaults(&cfg.PriceCharting)
	applyValuationDefaults(&cfg.Valuation)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	// Manual job triggers hold the response until the job finishes.
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 70 * time.Minute
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.BrowseURL == "" {
		e.BrowseURL = "https://api.ebay.com/buy/browse/v1"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.ItemCacheTTL == 0 {
		e.ItemCacheTTL = 6 * time.Hour
	}
	if e.RateLimit.PerSecond == 0 {
		e.RateLimit.PerSecond = 5.0
	}
	if e.RateLimit.Burst == 0 {
		e.RateLimit.Burst = 10
	}
	if e.RateLimit.DailyLimit == 0 {
		e.RateLimit.DailyLimit = 5000
	}
	for i := range e.Searches {
		if e.Searches[i].Limit == 0 {
			e.Searches[i].Limit = 50
		}
		if e.Searches[i].Name == "" {
			e.Searches[i].Name = e.Searches[i].Query
		}
	}
}

func applyPriceChartingDefaults(p *PriceChartingConfig) {
	if p.Timeout == 0 {
		p.Timeout = 5 * time.Minute
	}
	if p.KeepSnapshots == 0 {
		p.KeepSnapshots = 60
	}
}

func applyValuationDefaults(v *ValuationConfig) {
	if v.Concurrency == 0 {
		v.Concurrency = 8
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.IngestionInterval == 0 {
		s.IngestionInterval = 15 * time.Minute
	}
	if s.ImportInterval == 0 {
		s.ImportInterval = 24 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	if len(cfg.Ebay.Searches) > 0 && (cfg.Ebay.AppID == "" || cfg.Ebay.CertID == "") {
		errs = append(errs, errors.New("ebay.app_id and ebay.cert_id are required when searches are configured"))
	}
	for i, s := range cfg.Ebay.Searches {
		if s.Query == "" {
			errs = append(errs, fmt.Errorf("ebay.searches[%d].query is required", i))
		}
		if s.Limit < 1 || s.Limit > 200 {
			errs = append(errs, fmt.Errorf("ebay.searches[%d].limit must be 1..200 (got %d)", i, s.Limit))
		}
	}
	if cfg.Ebay.DetailMinPrice.IsNegative() {
		errs = append(errs, errors.New("ebay.detail_min_price must not be negative"))
	}

	if _, err := cfg.PriceCharting.ColumnHeaders(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Valuation.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("valuation.concurrency must be positive (got %d)", cfg.Valuation.Concurrency))
	}
	if _, err := cfg.Valuation.Calibration(); err != nil {
		errs = append(errs, fmt.Errorf("valuation: %w", err))
	}

	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
