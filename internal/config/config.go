package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Source kinds a catalog can be loaded from.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourceHTTP     = "http"
)

// Config captures everything vidly reads from config.toml and the environment.
type Config struct {
	Source       string
	CatalogPath  string
	DatabasePath string
	APIURL       string

	PageSize int

	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath   = "~/.config/vidly/config.toml"
	defaultDatabasePath = "~/.local/share/vidly/vidly.db"
	defaultLogFile      = "~/.local/share/vidly/vidly.log"
	defaultAPIURL       = "127.0.0.1:3900"
	defaultLogLevel     = "info"
	defaultPageSize     = 4
)

// Environment variables that override config.toml.
const (
	EnvSource   = "VIDLY_SOURCE"
	EnvCatalog  = "VIDLY_CATALOG"
	EnvDatabase = "VIDLY_DATABASE"
	EnvAPIURL   = "VIDLY_API_URL"
	EnvPageSize = "VIDLY_PAGE_SIZE"
	EnvLogFile  = "VIDLY_LOG_FILE"
	EnvLogLevel = "VIDLY_LOG_LEVEL"
)

type rawConfig struct {
	Catalog struct {
		Source   string `toml:"source"`
		Path     string `toml:"path"`
		Database string `toml:"database"`
		APIURL   string `toml:"api_url"`
	} `toml:"catalog"`
	View struct {
		PageSize int `toml:"page_size"`
	} `toml:"view"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Source:       SourceEmbedded,
		DatabasePath: mustExpand(defaultDatabasePath),
		APIURL:       defaultAPIURL,
		PageSize:     defaultPageSize,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error; existing variables win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads config.toml at path (or the default location), falling back to
// defaults when the file is missing, then applies VIDLY_* overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	raw, err := readRaw(resolved)
	if err != nil {
		return Config{}, err
	}
	if raw != nil {
		cfg.merge(*raw)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Source {
	case SourceEmbedded, SourceHTTP, SourceSQLite:
	case SourceFile:
		if strings.TrimSpace(c.CatalogPath) == "" {
			return fmt.Errorf("catalog source %q requires a catalog path", c.Source)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Source)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}

func readRaw(path string) (*rawConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &raw, nil
}

func (c *Config) merge(raw rawConfig) {
	if v := strings.ToLower(strings.TrimSpace(raw.Catalog.Source)); v != "" {
		c.Source = v
	}
	if v := strings.TrimSpace(raw.Catalog.Path); v != "" {
		c.CatalogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Catalog.Database); v != "" {
		c.DatabasePath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Catalog.APIURL); v != "" {
		c.APIURL = v
	}
	if raw.View.PageSize != 0 {
		c.PageSize = raw.View.PageSize
	}
	if v := strings.TrimSpace(raw.Log.File); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Log.Level); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get(EnvSource); ok {
		c.Source = strings.ToLower(v)
	}
	if v, ok := get(EnvCatalog); ok {
		c.CatalogPath = mustExpand(v)
	}
	if v, ok := get(EnvDatabase); ok {
		c.DatabasePath = mustExpand(v)
	}
	if v, ok := get(EnvAPIURL); ok {
		c.APIURL = v
	}
	if v, ok := get(EnvPageSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvPageSize, err)
		}
		c.PageSize = n
	}
	if v, ok := get(EnvLogFile); ok {
		c.LogFile = mustExpand(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
