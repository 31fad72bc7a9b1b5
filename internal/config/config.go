package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Game      GameConfig      `yaml:"game"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TransportConfig struct {
	// Mode selects how the server speaks MCP: "stdio" or "http".
	Mode string `yaml:"mode"`
}

type GameConfig struct {
	// ProximityMeters is the distance threshold for landmark discovery.
	ProximityMeters float64 `yaml:"proximity_meters"`
	// CatalogPath optionally points at a YAML session catalog; empty
	// means the embedded catalog.
	CatalogPath string `yaml:"catalog_path"`
	// OriginLatitude and OriginLongitude anchor session placement.
	OriginLatitude  float64 `yaml:"origin_latitude"`
	OriginLongitude float64 `yaml:"origin_longitude"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "wanderlust.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Game: GameConfig{
			ProximityMeters: 10,
			OriginLatitude:  45.0703,
			OriginLongitude: 7.6869,
		},
	}

	if path := os.Getenv("WANDERLUST_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("WANDERLUST_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("WANDERLUST_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WANDERLUST_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("WANDERLUST_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("WANDERLUST_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if mode := os.Getenv("WANDERLUST_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if catalogPath := os.Getenv("WANDERLUST_CATALOG_PATH"); catalogPath != "" {
		cfg.Game.CatalogPath = catalogPath
	}

	if cfg.Transport.Mode != "stdio" && cfg.Transport.Mode != "http" {
		return Config{}, fmt.Errorf("invalid transport mode %q (want stdio or http)", cfg.Transport.Mode)
	}
	if cfg.Game.ProximityMeters <= 0 {
		return Config{}, fmt.Errorf("proximity_meters must be positive, got %v", cfg.Game.ProximityMeters)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
