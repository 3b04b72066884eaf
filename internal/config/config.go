package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Terminal TerminalConfig
	App      AppConfig
	Batch    BatchConfig
	API      APIConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// TerminalConfig points at the biometric terminal vendor database the
// importer reads punch rows from (MS SQL Server).
type TerminalConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Table    string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// BatchConfig tunes the attendance computation batch.
type BatchConfig struct {
	// DaysBack is how many days back from today get (re)processed.
	DaysBack int
	// Workers bounds employee fan-out within one date.
	Workers int
	// UnitTimeout caps a single employee-day unit.
	UnitTimeout time.Duration
	// Interval is how often the in-process scheduler re-runs the batch.
	Interval time.Duration
	// CacheTTL bounds the attendance listing cache.
	CacheTTL time.Duration
}

type APIConfig struct {
	JWTSecret string
}

func Load() (*Config, error) {
	// .env is optional; deployments may inject the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "biotrack_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Terminal (MS SQL Server) configuration
	terminalPort, err := strconv.Atoi(getEnv("TERMINAL_DB_PORT", "1433"))
	if err != nil {
		return nil, fmt.Errorf("invalid TERMINAL_DB_PORT: %w", err)
	}

	config.Terminal = TerminalConfig{
		Host:     getEnv("TERMINAL_DB_HOST", ""),
		Port:     terminalPort,
		User:     getEnv("TERMINAL_DB_USER", ""),
		Password: getEnv("TERMINAL_DB_PASSWORD", ""),
		Name:     getEnv("TERMINAL_DB_NAME", "eBioServerNew"),
		Table:    getEnv("TERMINAL_DB_TABLE", "dbo.GISLOGS"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Asia/Kolkata"),
	}

	// Batch configuration
	daysBack, err := strconv.Atoi(getEnv("BATCH_DAYS_BACK", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_DAYS_BACK: %w", err)
	}
	workers, err := strconv.Atoi(getEnv("BATCH_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_WORKERS: %w", err)
	}
	unitTimeout, err := time.ParseDuration(getEnv("BATCH_UNIT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_UNIT_TIMEOUT: %w", err)
	}
	interval, err := time.ParseDuration(getEnv("BATCH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_INTERVAL: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("ATTENDANCE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_CACHE_TTL: %w", err)
	}

	config.Batch = BatchConfig{
		DaysBack:    daysBack,
		Workers:     workers,
		UnitTimeout: unitTimeout,
		Interval:    interval,
		CacheTTL:    cacheTTL,
	}

	config.API = APIConfig{
		JWTSecret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Batch.DaysBack < 1 {
		return fmt.Errorf("BATCH_DAYS_BACK must be at least 1")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("BATCH_WORKERS must be at least 1")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// TerminalURL returns the MS SQL Server connection string for the importer.
func (c *Config) TerminalURL() string {
	return fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s",
		c.Terminal.User,
		c.Terminal.Password,
		c.Terminal.Host,
		c.Terminal.Port,
		c.Terminal.Name,
	)
}

// Location resolves the process-wide timezone. Validate guarantees it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
