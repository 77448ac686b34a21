package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backends understood by the client.
const (
	StorageLocal = "local"
	StorageFile  = "file"
	StorageRedis = "redis"
	StorageSync  = "sync"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	QuotaBytes  int    `env:"QUOTA_BYTES"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	Debug       bool   `env:"DEBUG"`

	// Client-side settings
	ServerURL     string `env:"-"`
	Storage       string `env:"STORAGE"`
	StorageKey    string `env:"STORAGE_KEY"`
	ClientDBPath  string `env:"CLIENT_DB_PATH"`
	ClientDataDir string `env:"CLIENT_DATA_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	RedisPrefix   string `env:"REDIS_PREFIX"`
	Version       bool   `env:"-"` // flag only
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.IntVar(&cfg.QuotaBytes, "quota", cfg.QuotaBytes, "max size in bytes of a single stored value")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the sync server as host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "use https scheme for the sync server")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	// Client flags
	flag.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: local|file|redis|sync")
	flag.StringVar(&cfg.StorageKey, "key", cfg.StorageKey, "storage key holding the note list")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB (local storage)")
	flag.StringVar(&cfg.ClientDataDir, "data-dir", cfg.ClientDataDir, "directory for file storage and auth token")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "redis address host:port (redis storage)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.QuotaBytes <= 0 {
		cfg.QuotaBytes = 8192
	}
	// BaseURL: только "address:port" без схемы и пути, иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	switch cfg.Storage {
	case StorageLocal, StorageFile, StorageRedis, StorageSync:
	default:
		cfg.Storage = StorageLocal
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = "checkNotes"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.RedisPrefix == "" {
		cfg.RedisPrefix = "checknotes:"
	}

	home, _ := os.UserHomeDir()
	if cfg.ClientDataDir == "" {
		cfg.ClientDataDir = filepath.Join(home, ".checknotes")
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(cfg.ClientDataDir, "notes.sqlite")
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "checknotes-server.db"
	}
}
