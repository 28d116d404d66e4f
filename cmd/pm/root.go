package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prompt-mirror/pm/internal/config"
	"github.com/prompt-mirror/pm/internal/provider"
	"github.com/prompt-mirror/pm/internal/remote"
)

var rootCmd = &cobra.Command{
	Use:   "pm",
	Short: "Analyze prompts for structural clarity and rewrite them",
	Long: `Prompt Mirror inspects a free-text prompt for the structure a good
prompt needs (role, task, inputs, constraints, format, examples, steps,
success criteria), flags ambiguous wording, scores the result, and rewrites
the prompt into a structured brief.

Analysis and rewriting are fully local and deterministic. With --remote and
a configured provider, a language model is consulted first and its output is
validated before use; any remote failure falls back to the local result.`,
	SilenceUsage: true,
}

// Remote flags shared by analyze and rewrite.
var (
	flagRemote   bool
	flagProvider string
	flagModel    string
	flagAPIKey   string
	flagBaseURL  string
)

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, rewriteCmd, serveCmd} {
		cmd.Flags().BoolVar(&flagRemote, "remote", false, "consult the configured remote model")
		cmd.Flags().StringVar(&flagProvider, "provider", "", "remote provider (anthropic, openai)")
		cmd.Flags().StringVar(&flagModel, "model", "", "remote model name")
		cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "remote API key")
		cmd.Flags().StringVar(&flagBaseURL, "base-url", "", "remote API base URL")
	}

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}

// readInput returns the prompt text from a file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// buildCapability resolves provider settings and wraps them as a remote
// capability. Returns nil when --remote was not given.
func buildCapability() (remote.Capability, error) {
	if !flagRemote {
		return nil, nil
	}
	resolved, err := config.Resolve(flagProvider, flagModel, flagAPIKey, flagBaseURL)
	if err != nil {
		return nil, err
	}
	p, err := provider.New(resolved)
	if err != nil {
		return nil, err
	}
	return remote.NewLLM(p), nil
}
