package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-mirror/pm/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the bundled example prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := preset.All()
		if err != nil {
			return err
		}
		for i, p := range presets {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s (%s)\n", p.Label, p.ID)
			fmt.Printf("  rough:    %s\n", p.Rough)
			fmt.Println("  polished:")
			for _, line := range strings.Split(p.Polished, "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
		return nil
	},
}
