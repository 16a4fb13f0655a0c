package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Storage    StorageConfig    `yaml:"storage"`
	Thumbnail  ThumbnailConfig  `yaml:"thumbnail"`
	Pagination PaginationConfig `yaml:"pagination"`
	Invite     InviteConfig     `yaml:"invite"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	LogLevel   string           `yaml:"log_level"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type StorageConfig struct {
	BasePath          string   `yaml:"base_path"`
	MaxFileSize       int64    `yaml:"max_file_size"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

type ThumbnailConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Quality int    `yaml:"quality"`
	Prefix  string `yaml:"prefix"`
}

type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

type InviteConfig struct {
	CodeLength    int `yaml:"code_length"`
	MaxExpireDays int `yaml:"max_expire_days"`
}

type RateLimitConfig struct {
	Enabled       bool `yaml:"enabled"`
	UploadsPerMin int  `yaml:"uploads_per_min"`
}

var AppConfig *Config

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./data"
	}
	if cfg.Storage.MaxFileSize == 0 {
		cfg.Storage.MaxFileSize = 50 * 1024 * 1024
	}
	if len(cfg.Storage.AllowedExtensions) == 0 {
		cfg.Storage.AllowedExtensions = []string{"jpeg", "jpg", "png", "gif", "mp4", "mov", "avi", "webm"}
	}
	if cfg.Thumbnail.Width == 0 {
		cfg.Thumbnail.Width = 300
	}
	if cfg.Thumbnail.Height == 0 {
		cfg.Thumbnail.Height = 300
	}
	if cfg.Thumbnail.Quality == 0 {
		cfg.Thumbnail.Quality = 80
	}
	if cfg.Thumbnail.Prefix == "" {
		cfg.Thumbnail.Prefix = "thumb_"
	}
	if cfg.Pagination.DefaultPageSize == 0 {
		cfg.Pagination.DefaultPageSize = 20
	}
	if cfg.Pagination.MaxPageSize == 0 {
		cfg.Pagination.MaxPageSize = 100
	}
	if cfg.JWT.ExpireHours == 0 {
		cfg.JWT.ExpireHours = 168
	}
	if cfg.Invite.CodeLength == 0 {
		cfg.Invite.CodeLength = 12
	}
	if cfg.Invite.MaxExpireDays == 0 {
		cfg.Invite.MaxExpireDays = 365
	}
	if cfg.RateLimit.UploadsPerMin == 0 {
		cfg.RateLimit.UploadsPerMin = 30
	}
}

// Secrets may come from the environment so config.yaml can be committed without them.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}
