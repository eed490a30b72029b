package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/push-testnet/testnet/types"
)

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valid config with all fields",
			config: &Config{
				LogLevel:            2,
				LogFormat:           "json",
				DefaultsURL:         "https://example.org/vars.env",
				FetchTimeoutSeconds: 5,
				HomeDirName:         "testnet",
				VarsFile:            "vars.env",
				StagingFile:         "vars.env.remote",
			},
			expectError: false,
		},
		{
			name: "Invalid log level (negative)",
			config: &Config{
				LogLevel:  -1,
				LogFormat: "json",
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log level (too high)",
			config: &Config{
				LogLevel:  6,
				LogFormat: "json",
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log format",
			config: &Config{
				LogLevel:  2,
				LogFormat: "xml",
			},
			expectError: true,
			errorMsg:    "log format must be 'json' or 'console'",
		},
		{
			name: "Relative defaults url",
			config: &Config{
				LogFormat:   "json",
				DefaultsURL: "vars.env",
			},
			expectError: true,
			errorMsg:    "defaults url must be an absolute http(s) url",
		},
		{
			name: "Unsupported scheme",
			config: &Config{
				LogFormat:   "json",
				DefaultsURL: "ftp://example.org/vars.env",
			},
			expectError: true,
			errorMsg:    "defaults url must be an absolute http(s) url",
		},
		{
			name: "Negative timeout",
			config: &Config{
				LogFormat:           "json",
				FetchTimeoutSeconds: -1,
			},
			expectError: true,
			errorMsg:    "fetch timeout cannot be negative",
		},
		{
			name: "Vars file with a path separator",
			config: &Config{
				LogFormat: "json",
				VarsFile:  "nested/vars.env",
			},
			expectError: true,
			errorMsg:    "vars file must be a plain name",
		},
		{
			name: "Both names invalid reports home dir first",
			config: &Config{
				LogFormat:   "json",
				HomeDirName: "a/b",
				VarsFile:    "..",
			},
			expectError: true,
			errorMsg:    "home dir name must be a plain name",
		},
		{
			name: "Staging file same as vars file",
			config: &Config{
				LogFormat:   "json",
				StagingFile: "vars.env",
			},
			expectError: true,
			errorMsg:    "staging file must differ from vars file",
		},
		{
			name: "Config with defaults applied",
			config: &Config{
				LogLevel: 1,
			},
			expectError: false,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "console", cfg.LogFormat)
				assert.Equal(t, "https://raw.githubusercontent.com/sigp/lighthouse/unstable/scripts/local_testnet/vars.env", cfg.DefaultsURL)
				assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
				assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
				assert.Equal(t, "lighthouse", cfg.HomeDirName)
				assert.Equal(t, "vars.env", cfg.VarsFile)
				assert.Empty(t, cfg.StagingFile)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.config)

			if tc.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, types.ErrInvalidConfig))
				if tc.errorMsg != "" {
					assert.Contains(t, err.Error(), tc.errorMsg)
				}
			} else {
				require.NoError(t, err)
				if tc.validate != nil {
					tc.validate(t, tc.config)
				}
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.LogSampler)
	assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
	assert.Equal(t, "lighthouse", cfg.HomeDirName)
	assert.Equal(t, "vars.env", cfg.VarsFile)
	assert.NoError(t, validateConfig(cfg))
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Save and load valid config", func(t *testing.T) {
		cfg := &Config{
			LogLevel:            0,
			LogFormat:           "json",
			DefaultsURL:         "http://127.0.0.1:8000/vars.env",
			FetchTimeoutSeconds: 3,
			HomeDirName:         "lh",
			VarsFile:            "testnet.env",
		}

		require.NoError(t, Save(cfg, tempDir))

		configFile := filepath.Join(tempDir, configSubdir, configFileName)
		assert.Equal(t, configFile, Path(tempDir))
		_, err := os.Stat(configFile)
		require.NoError(t, err)

		loaded, err := Load(tempDir)
		require.NoError(t, err)
		assert.Equal(t, *cfg, loaded)
	})

	t.Run("Save invalid config", func(t *testing.T) {
		cfg := &Config{LogLevel: 9, LogFormat: "json"}

		err := Save(cfg, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Load missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("Load malformed JSON", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, configSubdir), 0o750))
		require.NoError(t, os.WriteFile(Path(dir), []byte("{not json"), 0o600))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal config")
	})

	t.Run("Load fills defaults for partial file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, configSubdir), 0o750))
		data, err := json.Marshal(map[string]any{"log_level": 2})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(Path(dir), data, 0o600))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.LogLevel)
		assert.Equal(t, "vars.env", cfg.VarsFile)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("falls back to embedded defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(t.TempDir())
		require.NoError(t, err)

		def, err := LoadDefaultConfig()
		require.NoError(t, err)
		assert.Equal(t, *def, cfg)
	})

	t.Run("prefers saved file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Save(&Config{LogFormat: "json", VarsFile: "other.env"}, dir))

		cfg, err := LoadOrDefault(dir)
		require.NoError(t, err)
		assert.Equal(t, "other.env", cfg.VarsFile)
	})

	t.Run("surfaces invalid file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, configSubdir), 0o750))
		require.NoError(t, os.WriteFile(Path(dir), []byte(`{"log_format":"xml"}`), 0o600))

		_, err := LoadOrDefault(dir)
		require.Error(t, err)
	})
}
