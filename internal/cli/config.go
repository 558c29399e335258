package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk CLI configuration, read from
// ~/.config/mazeforge/config.toml (or $XDG_CONFIG_HOME/mazeforge/config.toml).
//
// All sections are optional:
//
//	[cache]
//	dir = "/var/cache/mazeforge"   # overrides the XDG default
//	disabled = false
//	redis_addr = "localhost:6379"  # use Redis instead of the filesystem
//
//	[store]
//	backend = "mongo"              # "mongo" or "memory"
//	uri = "mongodb://localhost:27017"
//	database = "mazeforge"
//
//	[server]
//	addr = ":8080"
//
//	[generate]
//	width = 12
//	height = 8
type Config struct {
	Cache    CacheConfig    `toml:"cache"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
	Generate GenerateConfig `toml:"generate"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	Dir           string `toml:"dir"`
	Disabled      bool   `toml:"disabled"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects and configures the run archive backend.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// GenerateConfig holds default maze dimensions for the generate command.
type GenerateConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// configPath returns the config file location using the XDG standard.
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName, "config.toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads the config file. A missing or unreadable file yields
// the zero config; bad TOML is reported on stderr but does not abort.
func LoadConfig() *Config {
	return loadConfigFile(configPath())
}

func loadConfigFile(path string) *Config {
	cfg := &Config{}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		printWarning("ignoring config %s: %v", path, err)
		return &Config{}
	}
	return cfg
}
