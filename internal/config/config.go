package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

type Config struct {
	ListenPort      string        // ex: "127.0.0.1:9610"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir       string // badger database directory
	QuickLinkFile string // optional YAML file overriding the default quick-link table

	// Content surface
	Headless       bool          // run the embedded Chrome headless
	NavigateWait   time.Duration // max wait for a navigation to settle
	CaptureQuality int           // JPEG quality for tab captures (1-100)

	// Remote sync (only used while syncEnabled is set in the store)
	SyncInterval  time.Duration // interval between sync pushes
	RedisAddr     string        // ex: "localhost:6379", empty = sync disabled
	RedisUser     string        // optional
	RedisPassword string        // optional
	RedisDB       int           // Redis DB number
	RedisDT       time.Duration // Redis dial timeout
	RedisRT       time.Duration // Redis read timeout
	RedisWT       time.Duration // Redis write timeout

	// OAuth token capture
	OAuthClientID    string // required to start the provider flow, no default
	OAuthRedirectURI string // loopback redirect target
	OAuthTimeout     time.Duration
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("GLASSD_LISTEN_PORT", "127.0.0.1:9610"),
		ShutdownTimeout: mustDuration("GLASSD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("GLASSD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("GLASSD_PRETTY_LOG", true),

		// Storage
		DataDir:       getenv("GLASSD_DATA_DIR", defaultDataDir()),
		QuickLinkFile: getenv("GLASSD_QUICKLINK_FILE", ""),

		// Content surface
		Headless:       mustBool("GLASSD_HEADLESS", false),
		NavigateWait:   mustDuration("GLASSD_NAVIGATE_WAIT", 30*time.Second),
		CaptureQuality: getenvInt("GLASSD_CAPTURE_QUALITY", 80),

		// Sync
		SyncInterval:  mustDuration("GLASSD_SYNC_INTERVAL", 5*time.Minute),
		RedisAddr:     getenv("GLASSD_REDIS_ADDR", ""),
		RedisUser:     getenv("GLASSD_REDIS_USERNAME", "default"),
		RedisPassword: getenv("GLASSD_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("GLASSD_REDIS_DB", 0),
		RedisDT:       mustDuration("GLASSD_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:       mustDuration("GLASSD_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:       mustDuration("GLASSD_REDIS_WRITE_TIMEOUT", 3*time.Second),

		// OAuth
		OAuthClientID:    getenv("GLASSD_OAUTH_CLIENT_ID", ""),
		OAuthRedirectURI: getenv("GLASSD_OAUTH_REDIRECT_URI", "http://127.0.0.1:9611/callback"),
		OAuthTimeout:     mustDuration("GLASSD_OAUTH_TIMEOUT", 2*time.Minute),
	}

	if cfg.CaptureQuality < 1 || cfg.CaptureQuality > 100 {
		panic(fmt.Sprintf("❌ FATAL: GLASSD_CAPTURE_QUALITY must be in 1..100, got %d", cfg.CaptureQuality))
	}

	return cfg
}

func defaultDataDir() string {
	return filepath.Join(xdg.DataHome, "glassd", "db")
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid boolean value for %s: %s", key, v))
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid duration value for %s: %s", key, v))
	}
	return d
}
