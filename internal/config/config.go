// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
	// For future Turso support
	URL       string `yaml:"url,omitempty"`
	AuthToken string `yaml:"-"` // Loaded from environment
}

type SchedulerConfig struct {
	// MatchSweepSchedule is a standard five-field cron expression for the
	// stale-match finalization sweep.
	MatchSweepSchedule string `yaml:"match_sweep_schedule"`
	// MatchStaleAfterHours controls how long after its scheduled start an
	// in-progress match is considered abandoned.
	MatchStaleAfterHours int `yaml:"match_stale_after_hours"`
}

type RotationConfig struct {
	// DefaultStrategy seeds new match rotation queues: "pair" or "role_groups".
	DefaultStrategy string `yaml:"default_strategy"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		SecretKey   string `yaml:"-"` // Loaded from environment
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Scheduler SchedulerConfig `yaml:"scheduler"`

	Rotation RotationConfig `yaml:"rotation"`

	Features struct {
		EnableDebug bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.SecretKey = os.Getenv("APP_SECRET_KEY")
	cfg.Database.AuthToken = os.Getenv("DATABASE_AUTH_TOKEN")

	applyDefaults(&cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Scheduler.MatchSweepSchedule == "" {
		cfg.Scheduler.MatchSweepSchedule = "*/15 * * * *"
	}
	if cfg.Scheduler.MatchStaleAfterHours == 0 {
		cfg.Scheduler.MatchStaleAfterHours = 12
	}
	if cfg.Rotation.DefaultStrategy == "" {
		cfg.Rotation.DefaultStrategy = "pair"
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	// Validate based on database driver
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	case "turso":
		if c.Database.URL == "" {
			return fmt.Errorf("database URL is required for turso")
		}
		if c.Database.AuthToken == "" {
			return fmt.Errorf("database auth token is required for turso")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if _, err := cron.ParseStandard(c.Scheduler.MatchSweepSchedule); err != nil {
		return fmt.Errorf("invalid match sweep schedule %q: %w", c.Scheduler.MatchSweepSchedule, err)
	}
	if c.Scheduler.MatchStaleAfterHours < 0 {
		return fmt.Errorf("match stale threshold must not be negative")
	}

	switch c.Rotation.DefaultStrategy {
	case "pair", "role_groups":
	default:
		return fmt.Errorf("unsupported rotation strategy: %s", c.Rotation.DefaultStrategy)
	}

	return nil
}
