package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsearch/internal/config"
	"github.com/arcanaland/cardsearch/internal/logging"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardsearch configuration file",
	Long:  `Commands for creating and inspecting the cardsearch configuration file.`,
}

// configInitCmd writes the config file if it does not exist yet
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The root pre-run already created the file when it was missing
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		if err := toml.NewEncoder(out).Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		return nil
	},
}

// configSetCmd updates one key in the config file
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set updates one key in the configuration file.

Keys: endpoint, listen, user_agent, timeout, log_level`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "endpoint":
			cfg.Endpoint = value
		case "listen":
			cfg.Listen = value
		case "user_agent":
			cfg.UserAgent = value
		case "timeout":
			cfg.Timeout = value
			if _, err := cfg.RequestTimeout(); err != nil {
				return err
			}
		case "log_level":
			if _, err := logging.ParseLevel(value); err != nil {
				return err
			}
			cfg.LogLevel = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
