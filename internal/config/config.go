package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Classifier ClassifierConfig
	Security   SecurityConfig
	Log        LogConfig

	// InvalidEnv lists variables that were set but could not be parsed; their defaults were used
	InvalidEnv []string
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
	SeedsPath       string
	AutoMigrate     bool
	SeedDatabase    bool
	ReadyAttempts   int
	ReadyInterval   time.Duration
}

// ClassifierConfig tunes the match engine and region handling
type ClassifierConfig struct {
	MinKeywordMatches    int
	RegionDetection      bool
	LoadSenderIndicators bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	MaxBodyBytes       string
}

// LogConfig is the logging default; the --log-level and --log-format flags override it
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	env := &envReader{}
	environment := env.str("APP_ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:             env.str("SERVER_PORT", "8080"),
			Host:             env.str("SERVER_HOST", "localhost"),
			Environment:      environment,
			ReadTimeout:      env.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     env.duration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:  env.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSAllowOrigins: env.list("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:            env.str("DB_HOST", "localhost"),
			Port:            env.str("DB_PORT", "5432"),
			User:            env.str("DB_USER", "msme_user"),
			Password:        env.str("DB_PASSWORD", "msme_password"),
			Name:            env.str("DB_NAME", "msme_carbon"),
			SSLMode:         env.str("DB_SSL_MODE", "disable"),
			MaxConnections:  env.integer("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    env.integer("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: env.duration("DB_CONN_MAX_LIFETIME", time.Hour),
			MigrationsPath:  env.str("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       env.str("SEEDS_PATH", "db/seeds"),
			AutoMigrate:     env.boolean("AUTO_MIGRATE", false),
			SeedDatabase:    env.boolean("SEED_DATABASE", false),
			ReadyAttempts:   env.integer("DB_READY_ATTEMPTS", 30),
			ReadyInterval:   env.duration("DB_READY_INTERVAL", 2*time.Second),
		},
		Classifier: ClassifierConfig{
			MinKeywordMatches:    env.integer("KEYWORD_MIN_MATCHES", 1),
			RegionDetection:      env.boolean("REGION_DETECTION", true),
			LoadSenderIndicators: env.boolean("LOAD_SENDER_INDICATORS", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: env.integer("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     env.integer("RATE_LIMIT_BURST", 100),
			MaxBodyBytes:       env.str("MAX_BODY_BYTES", "64K"),
		},
		Log: LogConfig{
			Level:  env.str("LOG_LEVEL", "info"),
			Format: env.str("LOG_FORMAT", ""),
		},
		InvalidEnv: env.invalid,
	}

	for _, key := range cfg.InvalidEnv {
		slog.Warn("ignoring unparsable environment variable, using default", "key", key)
	}
	if cfg.IsProduction() && os.Getenv("CORS_ALLOW_ORIGINS") == "" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
	}

	return cfg
}

// Validate reports settings that would leave the service unusable
func (c *Config) Validate() error {
	if c.Classifier.MinKeywordMatches < 1 {
		return fmt.Errorf("KEYWORD_MIN_MATCHES must be at least 1, got %d", c.Classifier.MinKeywordMatches)
	}
	if c.Security.RateLimitPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %d", c.Security.RateLimitPerSecond)
	}
	if c.Database.ReadyAttempts < 1 {
		return fmt.Errorf("DB_READY_ATTEMPTS must be at least 1, got %d", c.Database.ReadyAttempts)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// envReader reads typed variables and remembers which ones failed to parse
type envReader struct {
	invalid []string
}

func (e *envReader) str(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

func (e *envReader) integer(key string, def int) int {
	return parseEnv(e, key, def, strconv.Atoi)
}

func (e *envReader) boolean(key string, def bool) bool {
	return parseEnv(e, key, def, strconv.ParseBool)
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	return parseEnv(e, key, def, time.ParseDuration)
}

// list splits a comma separated variable, dropping blank entries
func (e *envReader) list(key string, def []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func parseEnv[T any](e *envReader, key string, def T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := parse(value)
	if err != nil {
		e.invalid = append(e.invalid, key)
		return def
	}
	return parsed
}
