package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-mirror/pm/internal/pipeline"
	"github.com/prompt-mirror/pm/internal/schema"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a prompt's structure and list what it is missing",
	Long: `Analyze reads a prompt from a file (or stdin) and reports which
structural elements it contains, which ambiguous or vague wording it uses,
and a 0-100 clarity score.`,
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

		if analyzeJSON {
			return printJSON(result.Analysis)
		}
		printReport(result.Analysis, result.UsedRemote, result.Trimmed)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full analysis as JSON")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printReport(a *schema.PromptAnalysis, usedRemote, trimmed bool) {
	fmt.Printf("Score: %d/100\n", a.Score)
	if usedRemote {
		fmt.Println("(analysis provided by remote model)")
	}
	if trimmed {
		fmt.Printf("(input trimmed to %d characters)\n", pipeline.MaxInputChars)
	}

	fmt.Println("\nChecks:")
	for _, row := range []struct {
		label string
		ok    bool
	}{
		{"role", a.Checks.HasRole},
		{"task", a.Checks.HasTask},
		{"inputs", a.Checks.HasInputs},
		{"constraints", a.Checks.HasConstraints},
		{"format", a.Checks.HasFormat},
		{"examples", a.Checks.HasExamples},
		{"steps", a.Checks.HasSteps},
		{"success criteria", a.Checks.HasSuccessCriteria},
	} {
		mark := "miss"
		if row.ok {
			mark = "ok"
		}
		fmt.Printf("  %-16s %s\n", row.label, mark)
	}

	if len(a.Flags.AmbiguousTerms) > 0 {
		fmt.Printf("\nAmbiguous terms: %s\n", strings.Join(a.Flags.AmbiguousTerms, ", "))
	}
	if len(a.Flags.VagueQuantifiers) > 0 {
		fmt.Printf("Vague quantifiers: %s\n", strings.Join(a.Flags.VagueQuantifiers, ", "))
	}
	if a.Flags.DanglingPronouns > 0 {
		fmt.Printf("Dangling pronouns: %d\n", a.Flags.DanglingPronouns)
	}

	fmt.Println("\nNotes:")
	for _, note := range a.Notes {
		fmt.Println("  -", note)
	}
}
