package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"web/frontkit/internal/viewport"
)

// ViewportConfig содержит точки перелома и режим сравнения границ.
type ViewportConfig struct {
	Breakpoints viewport.Breakpoints `yaml:",inline"`
	Inclusive   bool                 `yaml:"inclusive"`
}

// RateLimiterConfig содержит интервалы оберток debounce/throttle.
// Delays задает кастомные интервалы для оберток по имени.
type RateLimiterConfig struct {
	DefaultDelayStr string                   `yaml:"default_delay"`
	DefaultDelay    time.Duration            `yaml:"-"`
	DelaysStr       map[string]string        `yaml:"delays"`
	Delays          map[string]time.Duration `yaml:"-"`
}

// LandmarksConfig задает разрешенные роли. Отсутствующий ключ означает
// список по умолчанию, пустой список запрещает все роли.
type LandmarksConfig struct {
	AllowedRoles *[]string `yaml:"allowed_roles"`
}

// Config представляет основную конфигурацию приложения.
// Загружается из YAML файла, может переопределяться переменными окружения.
type Config struct {
	LogLevel    string            `yaml:"log_level"`
	Viewport    ViewportConfig    `yaml:"viewport"`
	RateLimiter RateLimiterConfig `yaml:"rate_limiter"`
	Landmarks   LandmarksConfig   `yaml:"landmarks"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Viewport: ViewportConfig{
			Breakpoints: viewport.DefaultBreakpoints(),
			Inclusive:   true,
		},
		RateLimiter: RateLimiterConfig{
			DefaultDelayStr: "250ms",
			DelaysStr:       map[string]string{},
		},
	}
}

// LoadConfig загружает конфигурацию из указанного файла YAML.
// Применяет значения по умолчанию, переопределяет их значениями из файла,
// а затем значениями из переменных окружения (если они установлены).
// Отсутствующий файл не является ошибкой; файл, который не удалось разобрать, - является.
// Также выполняет парсинг строковых значений времени в time.Duration и валидацию.
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := Default()

	if configPath != "" {
		fileData, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(fileData, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %q: %w", configPath, err)
			}
			logger.Info("loaded configuration", zap.String("path", configPath))
		case os.IsNotExist(err):
			logger.Info("config file not found, using defaults", zap.String("path", configPath))
		default:
			return nil, fmt.Errorf("read config file %q: %w", configPath, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv("FRONTKIT_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if raw := os.Getenv("FRONTKIT_INCLUSIVE"); raw != "" {
		inclusive, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("FRONTKIT_INCLUSIVE: %w", err)
		}
		c.Viewport.Inclusive = inclusive
	}
	return nil
}

func (c *Config) parseDurations() error {
	var err error
	c.RateLimiter.DefaultDelay, err = time.ParseDuration(c.RateLimiter.DefaultDelayStr)
	if err != nil {
		return fmt.Errorf("invalid rate_limiter.default_delay %q: %w", c.RateLimiter.DefaultDelayStr, err)
	}

	c.RateLimiter.Delays = make(map[string]time.Duration, len(c.RateLimiter.DelaysStr))
	for name, raw := range c.RateLimiter.DelaysStr {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid rate_limiter.delays.%s %q: %w", name, raw, err)
		}
		c.RateLimiter.Delays[name] = d
	}
	return nil
}

// Validate проверяет значения после разбора.
func (c *Config) Validate() error {
	if c.RateLimiter.DefaultDelay <= 0 {
		return fmt.Errorf("rate_limiter.default_delay must be positive")
	}
	for name, d := range c.RateLimiter.Delays {
		if d <= 0 {
			return fmt.Errorf("rate_limiter.delays.%s must be positive", name)
		}
	}
	if err := c.Viewport.Breakpoints.Validate(); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	return nil
}

// ViewportOptions возвращает параметры для viewport.NewWindowSize.
func (c *Config) ViewportOptions() viewport.Options {
	return viewport.Options{
		Breakpoints: c.Viewport.Breakpoints,
		Inclusive:   c.Viewport.Inclusive,
	}
}

// AllowedRoles возвращает разрешенные роли или nil, если ключ allowed_roles не задан
// и используется список по умолчанию. Явно пустой список возвращается как пустой срез.
func (c *Config) AllowedRoles() []string {
	if c.Landmarks.AllowedRoles == nil {
		return nil
	}
	if *c.Landmarks.AllowedRoles == nil {
		return []string{}
	}
	return *c.Landmarks.AllowedRoles
}

// GetDelay реализует ratelimiter.DelayProvider.
func (c *Config) GetDelay(name string) (time.Duration, bool) {
	d, ok := c.RateLimiter.Delays[name]
	return d, ok
}
