package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string
	LogLevel    string
	APIKey      string
	TokenSecret string
	Engine      EngineConfig
	Redis       RedisConfig
	Ingest      IngestConfig
}

type EngineConfig struct {
	BaseURL             string `yaml:"base_url"`
	APIKey              string `yaml:"-"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	MaxIdleConns        int    `yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int    `yaml:"max_idle_conns_per_host"`
}

type RedisConfig struct {
	Addr     string
	Password string
	Stream   string
	Group    string
	Consumer string
}

type IngestConfig struct {
	InputDir   string   `yaml:"input_dir"`
	Extensions []string `yaml:"extensions"`
}

// overlay is the YAML-configurable subset: structured tuning that is
// awkward as flat environment variables. Secrets stay env-only.
type overlay struct {
	Engine EngineConfig `yaml:"engine"`
	Ingest IngestConfig `yaml:"ingest"`
}

// Load reads configuration from the environment, then applies the
// optional YAML overlay file. A missing overlay file is not an error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("GATEWAY_PORT", "9621"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APIKey:      os.Getenv("LIGHTRAG_API_KEY"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
		Engine: EngineConfig{
			BaseURL:        getEnv("ENGINE_URL", "http://localhost:9622"),
			APIKey:         os.Getenv("ENGINE_API_KEY"),
			TimeoutSeconds: getEnvInt("ENGINE_TIMEOUT_SECONDS", 300),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Stream:   getEnv("DOC_STREAM", "doc-jobs"),
			Group:    getEnv("DOC_GROUP", "doc-workers"),
			Consumer: getEnv("HOSTNAME", "worker-1"),
		},
		Ingest: IngestConfig{
			InputDir: os.Getenv("INPUT_DIR"),
		},
	}

	if err := applyOverlay(cfg, getEnv("GATEWAY_CONFIG_PATH", "configs/gateway.yaml")); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if o.Engine.BaseURL != "" {
		cfg.Engine.BaseURL = o.Engine.BaseURL
	}
	if o.Engine.TimeoutSeconds != 0 {
		cfg.Engine.TimeoutSeconds = o.Engine.TimeoutSeconds
	}
	if o.Engine.MaxIdleConns != 0 {
		cfg.Engine.MaxIdleConns = o.Engine.MaxIdleConns
	}
	if o.Engine.MaxIdleConnsPerHost != 0 {
		cfg.Engine.MaxIdleConnsPerHost = o.Engine.MaxIdleConnsPerHost
	}
	if o.Ingest.InputDir != "" {
		cfg.Ingest.InputDir = o.Ingest.InputDir
	}
	if len(o.Ingest.Extensions) > 0 {
		cfg.Ingest.Extensions = o.Ingest.Extensions
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Engine.MaxIdleConns == 0 {
		cfg.Engine.MaxIdleConns = 100
	}
	if cfg.Engine.MaxIdleConnsPerHost == 0 {
		cfg.Engine.MaxIdleConnsPerHost = 10
	}
	if len(cfg.Ingest.Extensions) == 0 {
		cfg.Ingest.Extensions = []string{".pdf", ".docx", ".pptx", ".xlsx", ".txt", ".md", ".jpg", ".png"}
	}
}

func (c *Config) Validate() error {
	if c.Engine.TimeoutSeconds < 0 {
		return fmt.Errorf("engine timeout must not be negative: %d", c.Engine.TimeoutSeconds)
	}
	for _, ext := range c.Ingest.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("ingest extension must start with a dot: %q", ext)
		}
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
