package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAPIBaseURL     = "https://api.themoviedb.org/3"
	DefaultCacheTTL       = 5 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"

	envPrefix = "MOVIEDASH"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	DBPath         string        `mapstructure:"db_path"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	APIKey         string        `mapstructure:"api_key"`
	APIToken       string        `mapstructure:"api_token"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogPath        string        `mapstructure:"log_path"`
	LogLevel       string        `mapstructure:"log_level"`
}

var (
	configDir  string
	configFile string
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".moviedash")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	// MOVIEDASH_API_KEY, MOVIEDASH_CACHE_TTL, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := GetDefaultConfig()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("api_base_url", defaults.APIBaseURL)
	v.SetDefault("api_key", defaults.APIKey)
	v.SetDefault("api_token", defaults.APIToken)
	v.SetDefault("cache_ttl", defaults.CacheTTL)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("log_path", defaults.LogPath)
	v.SetDefault("log_level", defaults.LogLevel)

	return v
}

// loads config from file, env overrides included
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("db_path", cfg.DBPath)
	v.Set("api_base_url", cfg.APIBaseURL)
	v.Set("api_key", cfg.APIKey)
	v.Set("api_token", cfg.APIToken)
	v.Set("cache_ttl", cfg.CacheTTL.String())
	v.Set("request_timeout", cfg.RequestTimeout.String())
	v.Set("log_path", cfg.LogPath)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		DBPath:         filepath.Join(configDir, "moviedash.db"),
		APIBaseURL:     DefaultAPIBaseURL,
		CacheTTL:       DefaultCacheTTL,
		RequestTimeout: DefaultRequestTimeout,
		LogPath:        filepath.Join(configDir, "moviedash.log"),
		LogLevel:       DefaultLogLevel,
	}
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: api_base_url cannot be empty", ErrInvalidConfig)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: cache_ttl must be positive, got %s", ErrInvalidConfig, c.CacheTTL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request_timeout must be positive, got %s", ErrInvalidConfig, c.RequestTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// HasCredentials reports whether either auth method is configured.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" || c.APIToken != ""
}
