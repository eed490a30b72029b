package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/pushchain/push-testnet/testnet/types"
)

const (
	configSubdir   = "config"
	configFileName = "ethtestnet_config.json"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	// Validate log level
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "log level must be between 0 and 5")
	}

	// Validate log format
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return errorsmod.Wrap(types.ErrInvalidConfig, "log format must be 'json' or 'console'")
	}

	// Set defaults for the defaults source
	if cfg.DefaultsURL == "" {
		defaultCfg, err := LoadDefaultConfig()
		if err != nil {
			return err
		}
		cfg.DefaultsURL = defaultCfg.DefaultsURL
	}
	u, err := url.Parse(cfg.DefaultsURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errorsmod.Wrapf(types.ErrInvalidConfig, "defaults url must be an absolute http(s) url, got %q", cfg.DefaultsURL)
	}
	if cfg.FetchTimeoutSeconds < 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "fetch timeout cannot be negative")
	}
	if cfg.FetchTimeoutSeconds == 0 {
		cfg.FetchTimeoutSeconds = 30
	}

	// Set defaults for output layout
	if cfg.HomeDirName == "" {
		cfg.HomeDirName = types.DefaultHomeDirName
	}
	if cfg.VarsFile == "" {
		cfg.VarsFile = types.DefaultVarsFile
	}
	names := []struct {
		name  string
		value string
	}{
		{"home dir name", cfg.HomeDirName},
		{"vars file", cfg.VarsFile},
	}
	for _, n := range names {
		if strings.ContainsRune(n.value, os.PathSeparator) || n.value == "." || n.value == ".." {
			return errorsmod.Wrapf(types.ErrInvalidConfig, "%s must be a plain name, got %q", n.name, n.value)
		}
	}
	if cfg.StagingFile != "" && cfg.StagingFile == cfg.VarsFile {
		return errorsmod.Wrap(types.ErrInvalidConfig, "staging file must differ from vars file")
	}

	return nil
}

// Validate checks cfg and fills in defaults for unset fields.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

// Save writes the given config to <basePath>/config/ethtestnet_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, configSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, configFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads and returns the config from <basePath>/config/ethtestnet_config.json.
func Load(basePath string) (Config, error) {
	configFile := filepath.Join(basePath, configSubdir, configFileName)
	data, err := os.ReadFile(filepath.Clean(configFile))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to the embedded defaults when no
// config file has been saved yet.
func LoadOrDefault(basePath string) (Config, error) {
	cfg, err := Load(basePath)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	def, err := LoadDefaultConfig()
	if err != nil {
		return Config{}, err
	}
	return *def, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

// Path returns where Save writes the config for basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, configSubdir, configFileName)
}
