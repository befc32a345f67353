package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Source formats
const (
	FormatAuto   = "auto"
	FormatCSV    = "csv"
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

// DefaultDataPath is where the season export is expected when nothing else is configured.
const DefaultDataPath = "mlb_season_data.csv"

// EnvPrefix prefixes every environment override, e.g. BALLSTATS_DATA_PATH.
const EnvPrefix = "BALLSTATS"

// Config represents the ballstats configuration
type Config struct {
	DataPath        string `yaml:"data_path" envconfig:"DATA_PATH" validate:"required"`
	Format          string `yaml:"format" envconfig:"FORMAT" validate:"oneof=auto csv xlsx sqlite"`
	Sheet           string `yaml:"sheet,omitempty" envconfig:"SHEET"`                            // xlsx only
	TopCount        int    `yaml:"top_count" envconfig:"TOP_COUNT" validate:"min=1"`
	RankPolicy      string `yaml:"rank_policy" envconfig:"RANK_POLICY" validate:"oneof=strict clamp"` // "strict" or "clamp"
	DiagnosticLimit int    `yaml:"diagnostic_limit" envconfig:"DIAGNOSTIC_LIMIT" validate:"min=1"`
	LogLevel        string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataPath:        DefaultDataPath,
		Format:          FormatAuto,
		TopCount:        10,
		RankPolicy:      "strict",
		DiagnosticLimit: 5,
		LogLevel:        "warn",
	}
}

// ConfigPath returns the location of the config file for dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ".ballstats", "config.yaml")
}

// LoadConfig resolves configuration for the specified directory.
// Resolution order: defaults, then .ballstats/config.yaml in dir (if present),
// then BALLSTATS_* environment variables. The result is validated.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath(dir))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configDir := filepath.Dir(ConfigPath(dir))
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create .ballstats dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", f.Field(), f.Tag(), f.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResolveFormat returns the concrete format, inferring it from the data
// path extension when Format is auto.
func (c *Config) ResolveFormat() (string, error) {
	if c.Format != "" && c.Format != FormatAuto {
		return c.Format, nil
	}

	switch ext := filepath.Ext(c.DataPath); ext {
	case ".csv", ".CSV":
		return FormatCSV, nil
	case ".xlsx", ".XLSX":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q; set format to csv, xlsx or sqlite", c.DataPath)
	}
}
