package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go-query-cache/internal/mockapi"
	"go-query-cache/internal/models"
)

// Config represents the main configuration structure
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Query      QueryConfig      `yaml:"query"`
	MockAPI    mockapi.Config   `yaml:"mock_api"`
	L1         L1Config         `yaml:"l1"`
	L2         L2Config         `yaml:"l2"`
	MultiCache MultiCacheConfig `yaml:"multi_cache"`
	Drafts     DraftsConfig     `yaml:"drafts"`
	ListView   ListViewConfig   `yaml:"list_view"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the zap preset
type LogConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
}

// QueryConfig holds request cache client settings. Per-query lifecycle lives in the rules file.
type QueryConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// L1Config represents in-memory draft tier configuration
type L1Config struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"` // MB
}

// L2Config represents KeyDB draft tier configuration
type L2Config struct {
	Enabled    bool             `yaml:"enabled"`
	Connection ConnectionConfig `yaml:"connection"`
	Keepalive  KeepaliveConfig  `yaml:"keepalive"`
	Cache      CacheConfig      `yaml:"cache"`
}

// ConnectionConfig holds KeyDB timeouts in milliseconds
type ConnectionConfig struct {
	ConnectTimeout int `yaml:"connect_timeout"`
	SendTimeout    int `yaml:"send_timeout"`
	ReadTimeout    int `yaml:"read_timeout"`
}

// KeepaliveConfig holds KeyDB pool settings
type KeepaliveConfig struct {
	PoolSize       int `yaml:"pool_size"`
	MaxIdleTimeout int `yaml:"max_idle_timeout"` // ms
}

// CacheConfig holds KeyDB TTL bounds in seconds
type CacheConfig struct {
	DefaultTTL int `yaml:"default_ttl"`
	MaxTTL     int `yaml:"max_ttl"`
}

// MultiCacheConfig controls tier ordering and backfill
type MultiCacheConfig struct {
	EnablePropagation bool                `yaml:"enable_propagation"`
	Levels            []models.CacheLevel `yaml:"levels"`
}

// DraftsConfig controls draft persistence
type DraftsConfig struct {
	TTL       time.Duration `yaml:"ttl"`
	KeyPrefix string        `yaml:"key_prefix"`
}

// ListViewConfig holds the virtual list and board dimensions
type ListViewConfig struct {
	ItemCount int `yaml:"item_count"`
	ItemSize  int `yaml:"item_size"`
	Overscan  int `yaml:"overscan"`
	BoardSize int `yaml:"board_size"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Server.MetricsAddr == "" {
		c.Server.MetricsAddr = ":9090"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Query.SweepInterval == 0 {
		c.Query.SweepInterval = time.Minute
	}

	// An absent section gets the demo latency; any explicit value is kept as is
	if c.MockAPI == (mockapi.Config{}) {
		c.MockAPI = mockapi.DefaultConfig()
	}

	if c.L1.Size == 0 {
		c.L1.Size = 100
	}

	if c.L2.Connection.ConnectTimeout == 0 {
		c.L2.Connection.ConnectTimeout = 1000
	}
	if c.L2.Connection.SendTimeout == 0 {
		c.L2.Connection.SendTimeout = 1000
	}
	if c.L2.Connection.ReadTimeout == 0 {
		c.L2.Connection.ReadTimeout = 1000
	}
	if c.L2.Keepalive.PoolSize == 0 {
		c.L2.Keepalive.PoolSize = 10
	}
	if c.L2.Keepalive.MaxIdleTimeout == 0 {
		c.L2.Keepalive.MaxIdleTimeout = 10000
	}
	if c.L2.Cache.DefaultTTL == 0 {
		c.L2.Cache.DefaultTTL = 3600
	}
	if c.L2.Cache.MaxTTL == 0 {
		c.L2.Cache.MaxTTL = 86400
	}

	if len(c.MultiCache.Levels) == 0 {
		c.MultiCache.Levels = []models.CacheLevel{models.CacheLevelL1, models.CacheLevelL2}
	}

	if c.Drafts.TTL == 0 {
		c.Drafts.TTL = 24 * time.Hour
	}
	if c.Drafts.KeyPrefix == "" {
		c.Drafts.KeyPrefix = "draft:"
	}

	if c.ListView.ItemCount == 0 {
		c.ListView.ItemCount = 100000
	}
	if c.ListView.ItemSize == 0 {
		c.ListView.ItemSize = 120
	}
	if c.ListView.Overscan == 0 {
		c.ListView.Overscan = 5
	}
	if c.ListView.BoardSize == 0 {
		c.ListView.BoardSize = 10
	}
}

// GetConnectTimeout returns connect timeout as time.Duration
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.L2.Connection.ConnectTimeout) * time.Millisecond
}

// GetSendTimeout returns send timeout as time.Duration
func (c *Config) GetSendTimeout() time.Duration {
	return time.Duration(c.L2.Connection.SendTimeout) * time.Millisecond
}

// GetReadTimeout returns read timeout as time.Duration
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.L2.Connection.ReadTimeout) * time.Millisecond
}

// GetMaxIdleTimeout returns max idle timeout as time.Duration
func (c *Config) GetMaxIdleTimeout() time.Duration {
	return time.Duration(c.L2.Keepalive.MaxIdleTimeout) * time.Millisecond
}

// GetDefaultTTL returns default TTL as time.Duration
func (c *Config) GetDefaultTTL() time.Duration {
	return time.Duration(c.L2.Cache.DefaultTTL) * time.Second
}

// GetMaxTTL returns max TTL as time.Duration
func (c *Config) GetMaxTTL() time.Duration {
	return time.Duration(c.L2.Cache.MaxTTL) * time.Second
}
