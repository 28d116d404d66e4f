// Package provider implements the remote text-generation backends the
// optional analysis and rewrite delegation runs against.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/prompt-mirror/pm/internal/config"
)

// Provider is a remote text-generation backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest describes a single generation call.
type GenerateRequest struct {
	Model        string
	SystemPrompt string
	UserMessage  string
	MaxTokens    int
	Temperature  float64
}

// GenerateResponse is the provider-neutral result of a generation call.
type GenerateResponse struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
}

const (
	defaultAnthropicURL = "https://api.anthropic.com"
	defaultOpenAIURL    = "https://api.openai.com"
)

// New constructs a provider from resolved settings. The provider defaults
// to openai when unset, matching the service this tool grew up against.
func New(r *config.Resolved) (Provider, error) {
	name := strings.ToLower(r.Provider)
	if name == "" {
		name = "openai"
	}
	if r.APIKey == "" {
		return nil, fmt.Errorf("API key required for provider %q", name)
	}

	switch name {
	case "anthropic":
		baseURL := r.BaseURL
		if baseURL == "" {
			baseURL = defaultAnthropicURL
		}
		return &Anthropic{apiKey: r.APIKey, model: r.Model, baseURL: baseURL}, nil
	case "openai":
		baseURL := r.BaseURL
		if baseURL == "" {
			baseURL = defaultOpenAIURL
		}
		return &OpenAI{apiKey: r.APIKey, model: r.Model, baseURL: baseURL}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (valid: anthropic, openai)", name)
	}
}
