package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DataDir              string
	PublicDir            string
	UploadDir            string
	SessionSecret        string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	AdminUsername        string
	AdminPassword        string
	ShutdownTimeout      time.Duration
	MaxUploadSize        int64
	AllowedOrigins       []string
	LogLevel             slog.Level
}

const (
	defaultRunAddress           = ":3000"
	defaultDataDir              = "."
	defaultPublicDir            = "public"
	defaultUploadDir            = "public/uploads"
	defaultSessionSecret        = "change-me-in-production"
	defaultSessionTTL           = 24 * time.Hour
	defaultSessionSweepInterval = time.Minute
	defaultAdminUsername        = "admin"
	defaultAdminPassword        = "admin123"
	defaultShutdownTimeout      = 10 * time.Second
	defaultMaxUploadSize        = 10 << 20
	defaultLogLevel             = "info"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	runAddress := defaultRunAddress
	if port, ok := lookup("PORT"); ok && port != "" {
		runAddress = ":" + port
	}

	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", runAddress),
		DataDir:              getString(lookup, "DATA_DIR", defaultDataDir),
		PublicDir:            getString(lookup, "PUBLIC_DIR", defaultPublicDir),
		UploadDir:            getString(lookup, "UPLOAD_DIR", defaultUploadDir),
		SessionSecret:        getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SessionSweepInterval: getDuration(lookup, "SESSION_SWEEP_INTERVAL", defaultSessionSweepInterval),
		AdminUsername:        getString(lookup, "ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:        getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxUploadSize:        getInt64(lookup, "MAX_UPLOAD_SIZE", defaultMaxUploadSize),
	}

	flags := flag.NewFlagSet("bakery", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		sweepIntervalStr   = cfg.SessionSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		originsStr         = getString(lookup, "CORS_ORIGINS", "")
		logLevelStr        = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DataDir, "d", cfg.DataDir, "Directory holding products.json and orders.json")
	flags.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "Directory for uploaded product images")
	flags.StringVar(&cfg.PublicDir, "public-dir", cfg.PublicDir, "Directory served as static storefront")
	flags.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	flags.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of admin sessions")
	flags.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between expired session sweeps")
	flags.StringVar(&cfg.AdminUsername, "admin-user", cfg.AdminUsername, "Admin login")
	flags.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Admin password")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.Int64Var(&cfg.MaxUploadSize, "max-upload-size", cfg.MaxUploadSize, "Maximum image size in bytes")
	flags.StringVar(&originsStr, "cors-origins", originsStr, "Comma separated list of allowed CORS origins")
	flags.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SessionSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	cfg.AllowedOrigins = splitList(originsStr)

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.SessionSweepInterval <= 0 {
		cfg.SessionSweepInterval = defaultSessionSweepInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret must be provided")
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
