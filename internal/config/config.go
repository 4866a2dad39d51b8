package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Synergy holds all configuration for the synergy scanner.
type Synergy struct {
	LogLevel string `yaml:"log_level" env:"SYNERGY_LOG_LEVEL"` // debug|info|warn|error

	// Pattern catalog directory; empty uses the catalog embedded in the binary.
	CatalogDir string `yaml:"catalog_dir" env:"SYNERGY_CATALOG_DIR"`

	// Points granted to every active pattern per tick before acceleration.
	PointsPerTick float64 `yaml:"points_per_tick" env:"SYNERGY_POINTS_PER_TICK"`

	// Feed candidates that already earned points to grouping first.
	PreferEarnedPoints bool `yaml:"prefer_earned_points" env:"SYNERGY_PREFER_EARNED_POINTS"`

	// Stencil journal persistence
	PersistStencils bool           `yaml:"persist_stencils" env:"SYNERGY_PERSIST_STENCILS"`
	Database        DatabaseConfig `yaml:"database" envPrefix:"SYNERGY_DB_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSynergy returns Synergy config with sensible defaults.
func DefaultSynergy() Synergy {
	return Synergy{
		LogLevel:      "info",
		PointsPerTick: 1.0,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "synergy",
			Password: "synergy",
			DBName:   "synergy",
			SSLMode:  "disable",
		},
	}
}

// LoadSynergy loads config from a YAML file, then applies SYNERGY_* environment
// overrides. If the file doesn't exist, defaults are used.
func LoadSynergy(path string) (Synergy, error) {
	cfg := DefaultSynergy()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	return cfg, nil
}
