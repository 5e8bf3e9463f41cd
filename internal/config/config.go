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

// Config holds the settings breeds reads from config.toml.
type Config struct {
	APIBaseURL      string
	RandomCount     int
	RequestTimeout  time.Duration
	DataDir         string
	DownloadDir     string
	LogFile         string
	DownloadWorkers int
	RecoverCorrupt  bool
}

const (
	defaultConfigPath      = "~/.config/breeds/config.toml"
	defaultAPIBaseURL      = "https://dog.ceo/api"
	defaultRandomCount     = 10
	defaultRequestTimeout  = 10 * time.Second
	defaultDataDir         = "~/.local/share/breeds"
	defaultDownloadDir     = "~/Downloads/breeds"
	defaultLogName         = "breeds.log"
	defaultDownloadWorkers = 4
)

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		APIBaseURL:      defaultAPIBaseURL,
		RandomCount:     defaultRandomCount,
		RequestTimeout:  defaultRequestTimeout,
		DataDir:         dataDir,
		DownloadDir:     mustExpand(defaultDownloadDir),
		LogFile:         filepath.Join(dataDir, defaultLogName),
		DownloadWorkers: defaultDownloadWorkers,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(bytes)
}

// Parse decodes TOML config bytes. Blank or missing fields take their defaults.
func Parse(data []byte) (Config, error) {
	var raw struct {
		APIBaseURL      string `toml:"api_base_url"`
		RandomCount     int    `toml:"random_count"`
		RequestTimeout  string `toml:"request_timeout"`
		DataDir         string `toml:"data_dir"`
		DownloadDir     string `toml:"download_dir"`
		LogFile         string `toml:"log_file"`
		DownloadWorkers int    `toml:"download_workers"`
		Favorites       struct {
			RecoverCorrupt bool `toml:"recover_corrupt"`
		} `toml:"favorites"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if raw.RandomCount < 0 {
		return Config{}, fmt.Errorf("random_count must not be negative, got %d", raw.RandomCount)
	}
	if raw.RandomCount > 0 {
		cfg.RandomCount = raw.RandomCount
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("request_timeout must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
		cfg.LogFile = filepath.Join(cfg.DataDir, defaultLogName)
	}
	if v := strings.TrimSpace(raw.DownloadDir); v != "" {
		cfg.DownloadDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if raw.DownloadWorkers > 0 {
		cfg.DownloadWorkers = raw.DownloadWorkers
	}
	cfg.RecoverCorrupt = raw.Favorites.RecoverCorrupt

	return cfg, nil
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
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
