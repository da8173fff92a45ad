package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultAPIBase        = "http://127.0.0.1:14242"
	defaultTimeoutSeconds = 30
)

type Config struct {
	APIBase        string `toml:"api_base"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func Load() (*Config, error) {
	cfg := &Config{
		APIBase:        defaultAPIBase,
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgPath := filepath.Join(home, ".config", "cwimport", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// environment beats file for ad-hoc runs
	cfg.APIBase = envStr("NOWLEDGE_MEM_URL", cfg.APIBase)
	cfg.TimeoutSeconds = envInt("CWIMPORT_TIMEOUT_SECONDS", cfg.TimeoutSeconds)

	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	return cfg, nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
