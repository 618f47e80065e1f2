package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/cryptowords/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write the default configuration to the --config path, or to
.cryptowords/config.yaml when none is given.

With --force an existing file is reset to the defaults; its comments and
any keys cryptowords does not know about are kept.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := cfgFile
		if path == "" {
			path = config.LocalConfigPath
		}

		_, err := os.Stat(path)
		switch {
		case os.IsNotExist(err):
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("checking %s: %w", path, err)
		case !configForce:
			return fmt.Errorf("%s already exists (use --force to reset it)", path)
		default:
			if err := config.Save(path, config.Defaults()); err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if cfgUsed != "" {
			if _, err := fmt.Fprintf(out, "# %s\n", cfgUsed); err != nil {
				return err
			}
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "reset an existing config file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
