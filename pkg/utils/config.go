package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Token    TokenConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver      string // "mongo" or "memory"
	URI         string
	Host        string
	User        string
	Password    string
	Name        string
	MaxPoolSize uint64
	Timeout     time.Duration
}

type TokenConfig struct {
	Secret      string
	ExpiryHours int
}

type AuthConfig struct {
	// StrictWrites puts every menu and user mutation behind the admin check.
	StrictWrites bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ConnectionURI returns DB_URI when set, otherwise builds an Atlas SRV URI from
// DB_USER/DB_PASS/DB_HOST, falling back to a local mongod.
func (c DatabaseConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	if c.Host == "" {
		return "mongodb://localhost:27017"
	}
	if c.User == "" {
		return fmt.Sprintf("mongodb+srv://%s/?retryWrites=true&w=majority", c.Host)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host)
}

// LoadConfig reads the optional env file at path, then the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "bistro-boss")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_DRIVER", "mongo")
	v.SetDefault("DB_NAME", "bistroBossDB")
	v.SetDefault("DB_MAX_POOL_SIZE", 20)
	v.SetDefault("DB_TIMEOUT_SECONDS", 10)
	v.SetDefault("ACCESS_TOKEN_EXPIRY_HOURS", 2)
	v.SetDefault("AUTH_STRICT_WRITES", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			URI:         v.GetString("DB_URI"),
			Host:        v.GetString("DB_HOST"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			Name:        v.GetString("DB_NAME"),
			MaxPoolSize: v.GetUint64("DB_MAX_POOL_SIZE"),
			Timeout:     time.Duration(v.GetInt("DB_TIMEOUT_SECONDS")) * time.Second,
		},
		Token: TokenConfig{
			Secret:      v.GetString("ACCESS_TOKEN_SECRET"),
			ExpiryHours: v.GetInt("ACCESS_TOKEN_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			StrictWrites: v.GetBool("AUTH_STRICT_WRITES"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
