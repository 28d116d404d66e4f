package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prompt-mirror/pm/internal/export"
	"github.com/prompt-mirror/pm/internal/pipeline"
)

var (
	rewriteJSON bool
	rewriteOut  string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Rewrite a prompt into a structured brief",
	Long: `Rewrite reads a prompt from a file (or stdin), analyzes it, and
prints a rewritten version with explicit role, task, inputs, constraints,
output format, steps, success criteria, and refusal boundaries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		capability, err := buildCapability()
		if err != nil {
			return err
		}

		result := pipeline.Run(cmd.Context(), text, capability)
		for _, notice := range result.Notices {
			fmt.Fprintln(os.Stderr, "Notice:", notice)
		}

		if rewriteOut != "" {
			if err := os.WriteFile(rewriteOut, export.ToTxt(result.Rewrite), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", rewriteOut, err)
			}
			fmt.Println("Wrote", rewriteOut)
			return nil
		}
		if rewriteJSON {
			return printJSON(result)
		}
		fmt.Println(result.Rewrite)
		return nil
	},
}

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteJSON, "json", false, "print the full result as JSON")
	rewriteCmd.Flags().StringVar(&rewriteOut, "out", "", "write the rewrite to a file instead of stdout")
}
