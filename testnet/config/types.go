package config

import "time"

type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level"`   // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format"`  // "json" or "console"
	LogSampler bool   `json:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// Defaults source
	DefaultsURL         string `json:"defaults_url"`          // Remote KEY=VALUE defaults (default: lighthouse local_testnet vars.env)
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds"` // HTTP client timeout (default: 30)

	// Output layout
	HomeDirName string `json:"home_dir_name"` // Testnet home created under the setup root (default: lighthouse)
	VarsFile    string `json:"vars_file"`     // Merged variables file name (default: vars.env)
	StagingFile string `json:"staging_file"`  // If set, raw defaults are also saved under this name
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
