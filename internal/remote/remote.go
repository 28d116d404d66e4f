// Package remote delegates analysis and rewriting to an optional
// text-generation service. Every result is advisory: callers must be
// prepared for nothing to come back and fall back to local computation.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prompt-mirror/pm/internal/provider"
	"github.com/prompt-mirror/pm/internal/schema"
)

// MaxInputChars caps the prompt text sent to the remote service.
const MaxInputChars = 1200

// Capability is the injected remote-service hook. Analyze returns nil bytes
// and Rewrite returns the empty string to signal "no result, use local". A
// nil Capability behaves identically to one that always returns nothing.
type Capability interface {
	Analyze(ctx context.Context, text string) ([]byte, error)
	Rewrite(ctx context.Context, analysis *schema.PromptAnalysis, text string) (string, error)
}

// LLM implements Capability on top of a generation provider.
type LLM struct {
	Provider provider.Provider
}

// NewLLM wraps a provider as a remote capability.
func NewLLM(p provider.Provider) *LLM {
	return &LLM{Provider: p}
}

// Analyze asks the remote model for a candidate analysis object. The raw
// JSON bytes are returned unvalidated; the caller gates them against the
// local result.
func (l *LLM) Analyze(ctx context.Context, text string) ([]byte, error) {
	resp, err := l.Provider.Generate(ctx, provider.GenerateRequest{
		SystemPrompt: analyzeSystemPrompt,
		UserMessage:  fmt.Sprintf("PROMPT:\n%s\n%s", trim(text), analyzeInstructions),
		MaxTokens:    600,
		Temperature:  0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("remote analyze: %w", err)
	}
	content := stripFences(resp.Content)
	if content == "" {
		return nil, nil
	}
	return []byte(content), nil
}

// Rewrite asks the remote model for a replacement rewrite, giving it the
// full analysis JSON to fill gaps with.
func (l *LLM) Rewrite(ctx context.Context, analysis *schema.PromptAnalysis, text string) (string, error) {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return "", fmt.Errorf("encoding analysis: %w", err)
	}
	resp, err := l.Provider.Generate(ctx, provider.GenerateRequest{
		SystemPrompt: rewriteSystemPrompt,
		UserMessage: fmt.Sprintf("PROMPT:\n%s\n\nANALYSIS_JSON:\n%s\n\n%s",
			trim(text), analysisJSON, rewriteInstructions),
		MaxTokens:   700,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("remote rewrite: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}

func trim(text string) string {
	runes := []rune(text)
	if len(runes) > MaxInputChars {
		return string(runes[:MaxInputChars])
	}
	return text
}

// stripFences removes a surrounding markdown code fence, which chat models
// like to wrap JSON in despite instructions.
func stripFences(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
