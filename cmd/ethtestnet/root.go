package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ETHTESTNET"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ethtestnet",
		Short: "Prepare a local beacon-chain testnet environment",
		Long: `
ethtestnet fetches the default variables of the local testnet scripts,
overrides the testnet sizing and timing keys, and writes the vars.env file
the launch scripts source.

Every flag can also be set through the environment, prefixed with ETHTESTNET_
(for example ETHTESTNET_VALIDATORS=64).
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, defaultHome(), "Directory holding config/ethtestnet_config.json")
	rootCmd.PersistentFlags().Int(flagLogLevel, 1, "Log level (0=debug ... 5=panic)")
	rootCmd.PersistentFlags().String(flagLogFormat, "console", "Log format: console|json")

	InitRootCmd(rootCmd) // add subcommands like `setup` and `version`

	return rootCmd
}

// newViper binds the flags of cmd, inherited ones included, and the
// ETHTESTNET_ environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ethtestnet"
	}
	return filepath.Join(home, ".ethtestnet")
}
