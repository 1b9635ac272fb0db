package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything launchtrack reads from config.toml.
type Config struct {
	APIBase     string
	Timeout     time.Duration
	RecentLimit int
	SearchLimit int
	LogDir      string
	LogLevel    string
}

const (
	defaultConfigPath  = "~/.config/launchtrack/config.toml"
	defaultLogDir      = "~/.local/share/launchtrack"
	defaultAPIBase     = "https://api.spacexdata.com/v5"
	defaultTimeout     = 15 * time.Second
	defaultRecentLimit = 20
	defaultSearchLimit = 50
	defaultLogLevel    = "info"
	logFileName        = "launchtrack.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:     defaultAPIBase,
		Timeout:     defaultTimeout,
		RecentLimit: defaultRecentLimit,
		SearchLimit: defaultSearchLimit,
		LogDir:      mustExpand(defaultLogDir),
		LogLevel:    defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase        string `toml:"api_base"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		RecentLimit    int    `toml:"recent_limit"`
		SearchLimit    int    `toml:"search_limit"`
		LogDir         string `toml:"log_dir"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.RecentLimit > 0 {
		cfg.RecentLimit = raw.RecentLimit
	}
	if raw.SearchLimit > 0 {
		cfg.SearchLimit = raw.SearchLimit
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return cfg, nil
}

// LogPath returns the diagnostics log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

// ExpandPath resolves "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
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
