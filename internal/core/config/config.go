package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Partition PartitionConfig `koanf:"partition"`
	Database  DatabaseConfig  `koanf:"database"`
	Query     QueryConfig     `koanf:"query"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type PartitionConfig struct {
	DefaultGroups int  `koanf:"default_groups"`
	MaxGroups     int  `koanf:"max_groups"`
	Cache         bool `koanf:"cache"`
}

// DatabaseConfig is optional. An empty DSN disables key scans.
type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
}

type QueryConfig struct {
	FoldCase     bool `koanf:"fold_case"`
	DefaultLimit int  `koanf:"default_limit"`
	MaxLimit     int  `koanf:"max_limit"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return strings.TrimSpace(c.DSN) != ""
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if c.Partition.DefaultGroups < 1 {
		return fmt.Errorf("partition.default_groups must be >= 1")
	}
	if c.Partition.MaxGroups < c.Partition.DefaultGroups {
		return fmt.Errorf("partition.max_groups %d must be >= partition.default_groups %d",
			c.Partition.MaxGroups, c.Partition.DefaultGroups)
	}

	if c.Database.Enabled() {
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	}

	if c.Query.DefaultLimit <= 0 {
		return fmt.Errorf("query.default_limit must be > 0")
	}
	if c.Query.MaxLimit < c.Query.DefaultLimit {
		return fmt.Errorf("query.max_limit %d must be >= query.default_limit %d",
			c.Query.MaxLimit, c.Query.DefaultLimit)
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and HASHSPLIT_ env vars, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.mode":              "release",
		"partition.default_groups": 16,
		"partition.max_groups":     65536,
		"partition.cache":          false,
		"database.dsn":             "",
		"database.max_open_conns":  10,
		"database.max_idle_conns":  10,
		"query.fold_case":          true,
		"query.default_limit":      1000,
		"query.max_limit":          10000,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("HASHSPLIT_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "HASHSPLIT_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
