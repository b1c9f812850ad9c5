package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is built once in main and handed to every constructor.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Amadeus  AmadeusConfig  `toml:"amadeus"`
	Gemini   GeminiConfig   `toml:"gemini"`
	Database DatabaseConfig `toml:"database"`
	Cache    CacheConfig    `toml:"cache"`
	Search   SearchConfig   `toml:"search"`
}

type ServerConfig struct {
	Port           string   `toml:"port"`
	GinMode        string   `toml:"gin_mode"`
	AllowedOrigins []string `toml:"allowed_origins"`
	StaticDir      string   `toml:"static_dir"`
	TemplatesDir   string   `toml:"templates_dir"`
	SecretKey      string   `toml:"-"` // checked by Missing only
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type AmadeusConfig struct {
	ClientID       string  `toml:"-"`
	ClientSecret   string  `toml:"-"`
	Env            string  `toml:"env"`
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RatePerSecond  float64 `toml:"rate_per_second"`
	RateBurst      int     `toml:"rate_burst"`
}

type GeminiConfig struct {
	APIKey         string `toml:"-"`
	Model          string `toml:"model"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type DatabaseConfig struct {
	URL  string `toml:"url"`
	Path string `toml:"path"`
}

type CacheConfig struct {
	TTLMinutes    int    `toml:"ttl_minutes"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"-"`
	RedisDB       int    `toml:"redis_db"`
}

type SearchConfig struct {
	// USD to INR rate applied to live hotel offers.
	ExchangeRateINR float64 `toml:"exchange_rate_inr"`
	MinPriceDays    int     `toml:"min_price_days"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "5000",
			AllowedOrigins: []string{"http://localhost:5000", "http://localhost:3000"},
			StaticDir:      "static",
			TemplatesDir:   "templates",
		},
		Log: LogConfig{Level: "info", Format: "console"},
		Amadeus: AmadeusConfig{
			Env:            "test",
			TimeoutSeconds: 30,
			RatePerSecond:  10,
			RateBurst:      1,
		},
		Gemini: GeminiConfig{
			Model:          "gemini-1.5-flash-latest",
			BaseURL:        "https://generativelanguage.googleapis.com",
			TimeoutSeconds: 60,
		},
		Database: DatabaseConfig{Path: "travel_planner.db"},
		Cache:    CacheConfig{TTLMinutes: 24 * 60},
		Search: SearchConfig{
			ExchangeRateINR: 83.21,
			MinPriceDays:    30,
		},
	}
}

// Load reads the optional TOML file at path, then .env and the process
// environment on top of it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// .env is optional; production sets variables directly
	_ = godotenv.Load()

	cfg.applyEnv()

	if cfg.Amadeus.BaseURL == "" {
		cfg.Amadeus.BaseURL = amadeusBaseURL(cfg.Amadeus.Env)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Amadeus.ClientID = os.Getenv("AMADEUS_CLIENT_ID")
	c.Amadeus.ClientSecret = os.Getenv("AMADEUS_CLIENT_SECRET")
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	c.Server.SecretKey = os.Getenv("SECRET_KEY")
	c.Cache.RedisPassword = os.Getenv("REDIS_PASSWORD")

	setString(&c.Amadeus.Env, "AMADEUS_ENV")
	setString(&c.Amadeus.BaseURL, "AMADEUS_BASE_URL")
	setString(&c.Gemini.Model, "GEMINI_MODEL")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Path, "DATABASE_PATH")
	setString(&c.Cache.RedisAddr, "REDIS_ADDR")
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.GinMode, "GIN_MODE")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.TTLMinutes = n
		}
	}

	// FRONTEND_URL may hold several comma-separated origins
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		for _, u := range strings.Split(v, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, u)
			}
		}
	}
}

// Missing lists the credentials that are not set. None of them stop startup.
func (c *Config) Missing() []string {
	var missing []string
	if c.Amadeus.ClientID == "" {
		missing = append(missing, "AMADEUS_CLIENT_ID")
	}
	if c.Amadeus.ClientSecret == "" {
		missing = append(missing, "AMADEUS_CLIENT_SECRET")
	}
	if c.Gemini.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Server.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	return missing
}

func (a AmadeusConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func amadeusBaseURL(env string) string {
	if env == "production" {
		return "https://api.amadeus.com"
	}
	return "https://test.api.amadeus.com"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
