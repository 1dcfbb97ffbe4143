package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mavolk/reviewkit/internal/boterr"
)

const (
	DefaultGiteaURL      = "https://gitea.mavolk.de/api/v1/repos/max/python-rq-encoding"
	DefaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel         = "z-ai/glm-4.7"

	GiteaTokenEnv      = "GITEA_TOKEN"
	OpenRouterTokenEnv = "OPENROUTER_TOKEN"
)

// Config represents the review bot configuration.
type Config struct {
	GiteaURL      string `json:"giteaURL"`
	OpenRouterURL string `json:"openRouterURL"`
	Model         string `json:"model"`
}

// Credentials holds the two API tokens. They are never written to disk.
type Credentials struct {
	GiteaToken      string
	OpenRouterToken string
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		GiteaURL:      DefaultGiteaURL,
		OpenRouterURL: DefaultOpenRouterURL,
		Model:         DefaultModel,
	}
}

// ConfigDir returns the platform-appropriate config directory for reviewbot.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reviewbot"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "reviewbot"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "reviewbot"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "reviewbot"), nil
	default:
		return filepath.Join(home, ".config", "reviewbot"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv reads a .env file from the working directory if present.
// Variables already set in the process environment are left alone.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	cfg.GiteaURL = strings.TrimRight(cfg.GiteaURL, "/")
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.GiteaURL != "" {
		dst.GiteaURL = src.GiteaURL
	}
	if src.OpenRouterURL != "" {
		dst.OpenRouterURL = src.OpenRouterURL
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVIEWBOT_GITEA_URL"); v != "" {
		cfg.GiteaURL = v
	}
	if v := os.Getenv("REVIEWBOT_OPENROUTER_URL"); v != "" {
		cfg.OpenRouterURL = v
	}
	if v := os.Getenv("REVIEWBOT_MODEL"); v != "" {
		cfg.Model = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["giteaURL"]; ok && v != "" {
		cfg.GiteaURL = v
	}
	if v, ok := overrides["openRouterURL"]; ok && v != "" {
		cfg.OpenRouterURL = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
}

// RequireEnv returns the value of the named variable, or a
// *boterr.ConfigError when it is unset or empty.
func RequireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", &boterr.ConfigError{Name: name}
	}
	return v, nil
}

// LoadCredentials reads GITEA_TOKEN and OPENROUTER_TOKEN, in that order.
func LoadCredentials() (Credentials, error) {
	gitea, err := RequireEnv(GiteaTokenEnv)
	if err != nil {
		return Credentials{}, err
	}
	openrouter, err := RequireEnv(OpenRouterTokenEnv)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{GiteaToken: gitea, OpenRouterToken: openrouter}, nil
}
