package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version int          `yaml:"version"`
	Notion  NotionConfig `yaml:"notion"`
	Store   StoreConfig  `yaml:"store"`
	Proxy   ProxyConfig  `yaml:"proxy"`
}

type NotionConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIVersion string `yaml:"api_version"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type ProxyConfig struct {
	Listen string `yaml:"listen"`
	Prefix string `yaml:"prefix"`
}

// Defaults applied for fields the file leaves empty.
const (
	DefaultBaseURL     = "https://api.notion.com/v1"
	DefaultAPIVersion  = "2022-06-28"
	DefaultProxyListen = "127.0.0.1:8700"
	DefaultProxyPrefix = "/api/notion"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Notion.BaseURL == "" {
		cfg.Notion.BaseURL = DefaultBaseURL
	}
	if cfg.Notion.APIVersion == "" {
		cfg.Notion.APIVersion = DefaultAPIVersion
	}
	if cfg.Proxy.Listen == "" {
		cfg.Proxy.Listen = DefaultProxyListen
	}
	if cfg.Proxy.Prefix == "" {
		cfg.Proxy.Prefix = DefaultProxyPrefix
	}
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	switch cfg.Store.Driver {
	case "sqlite", "postgres":
	case "":
		return fmt.Errorf("store driver is required")
	default:
		return fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if strings.TrimSpace(cfg.Store.DSN) == "" {
		return fmt.Errorf("store dsn is required")
	}
	if cfg.Store.Driver == "sqlite" && !strings.HasPrefix(cfg.Store.DSN, "sqlite://") {
		return fmt.Errorf("sqlite dsn must use the sqlite:// scheme")
	}

	if !strings.HasPrefix(cfg.Proxy.Prefix, "/") {
		return fmt.Errorf("proxy prefix must start with /")
	}

	return nil
}
