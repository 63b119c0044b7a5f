package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// OutputPath is the default merge output when -o is not given.
	OutputPath string `yaml:"output_path"`
	// NamespaceOffset is the id spacing used to separate the two inputs
	// before deduplication. Must exceed either input's mood+tag count.
	NamespaceOffset int64 `yaml:"namespace_offset"`
	// SupportedVersion is the backup schema version merges are written
	// against; other versions produce a warning.
	SupportedVersion int64 `yaml:"supported_version"`
}

// Load loads configuration from multiple sources with precedence:
// 1. Environment variables (MOODCTL_*)
// 2. ./.env.local (dotenv) - walks up parent directories to find it
// 3. ~/.config/moodctl/config.yaml (YAML)
func Load() (*Config, error) {
	cfg := &Config{
		OutputPath:       "out.daylio",
		NamespaceOffset:  1000,
		SupportedVersion: 15,
	}

	// Load .env.local if it exists (walking up parent directories)
	if envPath := findEnvLocal(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// Load ~/.config/moodctl/config.yaml if it exists; it is optional.
	_ = loadYAMLConfig(cfg)

	// Override with environment variables
	if out := os.Getenv("MOODCTL_OUTPUT"); out != "" {
		cfg.OutputPath = out
	}
	if offset := os.Getenv("MOODCTL_NAMESPACE_OFFSET"); offset != "" {
		parsed, err := strconv.ParseInt(offset, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid MOODCTL_NAMESPACE_OFFSET %q", offset)
		}
		cfg.NamespaceOffset = parsed
	}
	if version := os.Getenv("MOODCTL_SUPPORTED_VERSION"); version != "" {
		parsed, err := strconv.ParseInt(version, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid MOODCTL_SUPPORTED_VERSION %q", version)
		}
		cfg.SupportedVersion = parsed
	}

	return cfg, nil
}

// loadYAMLConfig loads configuration from ~/.config/moodctl/config.yaml
func loadYAMLConfig(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, ".config", "moodctl", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// findEnvLocal searches for .env.local starting from cwd and walking up
// parent directories. Stops at the user's home directory.
// Returns the path to .env.local if found, empty string otherwise.
func findEnvLocal() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// If we can't get home dir, just check cwd
		if _, err := os.Stat(".env.local"); err == nil {
			return ".env.local"
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Clean paths for reliable comparison
	homeDir = filepath.Clean(homeDir)
	dir := filepath.Clean(cwd)

	for {
		envPath := filepath.Join(dir, ".env.local")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		// Stop if we've reached home directory or filesystem root
		if dir == homeDir || dir == filepath.Dir(dir) {
			return ""
		}

		dir = filepath.Dir(dir)
	}
}
