// Package pipeline runs a prompt through the full mirror flow: local
// analysis, optional remote analysis behind a validation gate, and the
// rewrite, with every remote failure downgraded to a notice.
package pipeline

import (
	"context"
	"fmt"

	"github.com/prompt-mirror/pm/internal/analyze"
	"github.com/prompt-mirror/pm/internal/remote"
	"github.com/prompt-mirror/pm/internal/rewrite"
	"github.com/prompt-mirror/pm/internal/schema"
)

// MaxInputChars caps raw input before it reaches the analyzer.
const MaxInputChars = 2000

// Result is everything a single run produces.
type Result struct {
	Analysis   *schema.PromptAnalysis `json:"analysis"`
	Rewrite    string                 `json:"rewrite"`
	UsedRemote bool                   `json:"used_remote"`
	Trimmed    bool                   `json:"trimmed"`
	Notices    []string               `json:"notices,omitempty"`
}

// Run analyzes and rewrites the prompt. The capability may be nil, meaning
// no remote service is configured. Run always produces a Result: remote
// errors become notices and the local computation carries the request.
func Run(ctx context.Context, text string, capability remote.Capability) *Result {
	res := &Result{}

	runes := []rune(text)
	if len(runes) > MaxInputChars {
		text = string(runes[:MaxInputChars])
		res.Trimmed = true
	}

	local := analyze.Analyze(text)
	res.Analysis = local

	if capability != nil {
		candidate, err := capability.Analyze(ctx, text)
		if err != nil {
			res.Notices = append(res.Notices, fmt.Sprintf("remote analysis unavailable: %v", err))
		} else if candidate != nil {
			validated, ok := schema.ValidateOrFallback(candidate, local)
			if ok {
				res.Analysis = validated
				res.UsedRemote = true
			}
		}
	}

	if res.UsedRemote {
		replacement, err := capability.Rewrite(ctx, res.Analysis, text)
		if err != nil {
			res.Notices = append(res.Notices, fmt.Sprintf("remote rewrite unavailable: %v", err))
		} else if replacement != "" {
			res.Rewrite = replacement
		}
	}

	if res.Rewrite == "" {
		// The local analysis always exists here, so Rewrite cannot fail.
		rewritten, err := rewrite.Rewrite(res.Analysis, text)
		if err != nil {
			res.Notices = append(res.Notices, fmt.Sprintf("rewrite failed: %v", err))
			return res
		}
		res.Rewrite = rewritten
	}

	return res
}
