package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pushchain/push-testnet/testnet/config"
	"github.com/pushchain/push-testnet/testnet/envfile"
	"github.com/pushchain/push-testnet/testnet/logger"
	"github.com/pushchain/push-testnet/testnet/setup"
	"github.com/pushchain/push-testnet/testnet/types"
)

const (
	flagHome        = "home"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagDefaultsURL = "defaults-url"
	flagRoot        = "root"

	flagValidators          = "validators"
	flagBeaconNodes         = "beacon-nodes"
	flagValidatorClients    = "validator-clients"
	flagDataDir             = "data-dir"
	flagSecondsPerSlot      = "seconds-per-slot"
	flagSecondsPerEth1Block = "seconds-per-eth1-block"
)

// Populated at build time through -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

func InitRootCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(setupCmd())
	rootCmd.AddCommand(varsCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())
}

func setupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the testnet home under --root and write its vars.env",
		Long: `
Creates <root>/lighthouse (unless it already exists), enters it, downloads the
default variables and writes vars.env with the testnet parameters applied.

Examples:
  ethtestnet setup --root ~/testnets --validators 64 --beacon-nodes 4
  ethtestnet setup --root . --validators 16 --beacon-nodes 2 --seconds-per-slot 6
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			runner, log, err := newRunner(cmd, v)
			if err != nil {
				return err
			}
			p, err := paramsFromViper(v)
			if err != nil {
				return err
			}
			root := v.GetString(flagRoot)
			if root == "" {
				return fmt.Errorf("--%s is required", flagRoot)
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			res, err := runner.Setup(ctx, root, p)
			if err != nil {
				return err
			}
			log.Info().Str("vars", res.VarsPath).Msg("testnet environment prepared")
			fmt.Fprintln(cmd.OutOrStdout(), res.VarsPath)
			return nil
		},
	}
	cmd.Flags().String(flagRoot, "", "Directory the testnet home is created in (must exist)")
	addParamFlags(cmd)
	return cmd
}

func varsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Write vars.env in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			runner, _, err := newRunner(cmd, v)
			if err != nil {
				return err
			}
			p, err := paramsFromViper(v)
			if err != nil {
				return err
			}
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			res, err := runner.CreateVarsEnv(ctx, wd, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.VarsPath)
			return nil
		},
	}
	addParamFlags(cmd)
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the merged variables without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			runner, _, err := newRunner(cmd, v)
			if err != nil {
				return err
			}
			p, err := paramsFromViper(v)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			out, err := runner.Render(ctx, p)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	addParamFlags(cmd)
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print a vars file as dotenv readers see it (default ./vars.env)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := types.DefaultVarsFile
			if len(args) == 1 {
				path = args[0]
			}
			vars, err := envfile.Load(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, vars[k])
			}
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to <home>/config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			home := v.GetString(flagHome)
			cfg, err := config.LoadDefaultConfig()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, home); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", config.Path(home))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ethtestnet version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version:    %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit:     %s\n", Commit)
		},
	}
}

func addParamFlags(cmd *cobra.Command) {
	d := types.DefaultParams()
	cmd.Flags().Int(flagValidators, 0, "Number of validators (required)")
	cmd.Flags().Int(flagBeaconNodes, 0, "Number of beacon nodes (required)")
	cmd.Flags().Int(flagValidatorClients, d.ValidatorClientsCount, "Number of validator clients")
	cmd.Flags().String(flagDataDir, d.DataDir, "Node data directory written as DATADIR")
	cmd.Flags().Int(flagSecondsPerSlot, d.SecondsPerSlot, "Seconds per slot")
	cmd.Flags().Int(flagSecondsPerEth1Block, d.SecondsPerEth1Block, "Seconds per eth1 block")
	cmd.Flags().String(flagDefaultsURL, "", "Override the URL the default variables are fetched from")
}

// paramsFromViper builds the parameter set from flags and environment.
// Validator and beacon node counts have no default and must be given.
func paramsFromViper(v *viper.Viper) (types.Params, error) {
	for _, required := range []string{flagValidators, flagBeaconNodes} {
		if !v.IsSet(required) {
			return types.Params{}, fmt.Errorf("--%s is required", required)
		}
	}
	p := types.Params{
		DataDir:               v.GetString(flagDataDir),
		BeaconNodesCount:      v.GetInt(flagBeaconNodes),
		ValidatorsCount:       v.GetInt(flagValidators),
		ValidatorClientsCount: v.GetInt(flagValidatorClients),
		SecondsPerSlot:        v.GetInt(flagSecondsPerSlot),
		SecondsPerEth1Block:   v.GetInt(flagSecondsPerEth1Block),
	}
	return p, p.Validate()
}

// loadConfig reads <home>/config and applies flag/env overrides on top.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.LoadOrDefault(v.GetString(flagHome))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if v.IsSet(flagLogLevel) {
		cfg.LogLevel = v.GetInt(flagLogLevel)
	}
	if v.IsSet(flagLogFormat) {
		cfg.LogFormat = v.GetString(flagLogFormat)
	}
	if v.IsSet(flagDefaultsURL) {
		cfg.DefaultsURL = v.GetString(flagDefaultsURL)
	}
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newRunner logs to stderr so render output on stdout stays clean.
func newRunner(cmd *cobra.Command, v *viper.Viper) (*setup.Runner, zerolog.Logger, error) {
	cfg, err := loadConfig(v)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
	return setup.New(cfg, nil, log), log, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
