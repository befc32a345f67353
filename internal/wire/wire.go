// Package wire provides dependency injection for the ballstats application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/ballstats/internal/adapters/cli"
	"github.com/example/ballstats/internal/adapters/csvfile"
	"github.com/example/ballstats/internal/adapters/sqlite"
	"github.com/example/ballstats/internal/adapters/xlsx"
	"github.com/example/ballstats/internal/app"
	"github.com/example/ballstats/internal/config"
	"github.com/example/ballstats/internal/core/ranking"
	"github.com/example/ballstats/internal/logging"
	"github.com/example/ballstats/internal/ports/primary"
	"github.com/example/ballstats/internal/ports/secondary"
)

// Overrides carries command-line flags that take precedence over config.
// Empty fields leave the configured value alone.
type Overrides struct {
	DataPath string
	Format   string
}

var (
	overrides    Overrides
	cfg          *config.Config
	statsService primary.StatsService
	once         sync.Once
)

// SetOverrides records flag values. It must be called before the first
// service is requested.
func SetOverrides(o Overrides) {
	overrides = o
}

// Config returns the resolved configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = ResolveConfig(wd, overrides)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	source, err := NewSeasonSource(cfg)
	if err != nil {
		log.Fatalf("failed to create season source: %v", err)
	}

	policy, err := ranking.ParsePolicy(cfg.RankPolicy)
	if err != nil {
		log.Fatalf("failed to parse rank policy: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	statsService = app.NewStatsService(source, app.StatsOptions{
		DefaultCount:    cfg.TopCount,
		Policy:          policy,
		DiagnosticLimit: cfg.DiagnosticLimit,
	}, logger)
}

// ResolveConfig loads configuration for dir and applies flag overrides.
func ResolveConfig(dir string, o Overrides) (*config.Config, error) {
	c, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewSeasonSource picks the season source adapter for the configured format.
func NewSeasonSource(c *config.Config) (secondary.SeasonSource, error) {
	format, err := c.ResolveFormat()
	if err != nil {
		return nil, err
	}

	switch format {
	case config.FormatCSV:
		return csvfile.NewSource(c.DataPath), nil
	case config.FormatXLSX:
		return xlsx.NewSource(c.DataPath, c.Sheet), nil
	case config.FormatSQLite:
		return sqlite.NewSeasonSource(c.DataPath), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(statsService, out)
}
