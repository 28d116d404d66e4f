package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-mirror/pm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted provider settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: fmt.Sprintf("Set a config value (keys: %s)", strings.Join(config.ValidKeys, ", ")),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current config (API key masked)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := config.List()
		if err != nil {
			return err
		}
		for _, key := range config.ValidKeys {
			fmt.Printf("%-9s %s\n", key, values[key])
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Reset(); err != nil {
			return err
		}
		fmt.Println("Config reset")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configResetCmd)
}
