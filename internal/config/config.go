package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port      string          `yaml:"port"`
	DBPath    string          `yaml:"db_path"`
	JWTSecret string          `yaml:"jwt_secret"`
	StatsBomb StatsBombConfig `yaml:"statsbomb"`
	Heatmap   HeatmapConfig   `yaml:"heatmap"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Selection SelectionConfig `yaml:"selection"`
}

// StatsBombConfig 数据源配置
type StatsBombConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// HeatmapConfig 热力图配置
type HeatmapConfig struct {
	Normalization string  `yaml:"normalization"` // "max" or "fixed"
	FixedScale    float64 `yaml:"fixed_scale"`   // divisor for "fixed"
	GridSize      int     `yaml:"grid_size"`     // cells per side for imports and fallback
	Fallback      bool    `yaml:"fallback"`      // synthesize when nothing is stored
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// SelectionConfig 选择会话配置
type SelectionConfig struct {
	TicketTTL   time.Duration `yaml:"ticket_ttl"`
	SessionIdle time.Duration `yaml:"session_idle"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Port:      ":8080",
		DBPath:    "./data/futbol/futbol.db",
		JWTSecret: "your-secret-key-change-in-production",
		StatsBomb: StatsBombConfig{
			BaseURL: "https://raw.githubusercontent.com/statsbomb/open-data/master/data",
			Timeout: 30 * time.Second,
		},
		Heatmap: HeatmapConfig{
			Normalization: "max",
			FixedScale:    50,
			GridSize:      10,
			Fallback:      true,
		},
		RateLimit: RateLimitConfig{
			Requests: 120,
			Window:   time.Minute,
		},
		Selection: SelectionConfig{
			TicketTTL:   time.Hour,
			SessionIdle: 30 * time.Minute,
		},
	}
}

// Load 加载配置: defaults, then the optional YAML file, then environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if baseURL := os.Getenv("STATSBOMB_BASE_URL"); baseURL != "" {
		cfg.StatsBomb.BaseURL = baseURL
	}
	if mode := os.Getenv("HEATMAP_NORMALIZATION"); mode != "" {
		cfg.Heatmap.Normalization = mode
	}
	if v := os.Getenv("HEATMAP_FIXED_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid HEATMAP_FIXED_SCALE: %w", err)
		}
		cfg.Heatmap.FixedScale = scale
	}
	if v := os.Getenv("HEATMAP_GRID_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HEATMAP_GRID_SIZE: %w", err)
		}
		cfg.Heatmap.GridSize = size
	}
	return nil
}
