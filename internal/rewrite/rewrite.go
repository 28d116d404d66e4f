// Package rewrite turns an analyzed prompt into a structured template:
// fixed sections filled from keywords extracted out of the raw text.
package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/prompt-mirror/pm/internal/schema"
	"github.com/prompt-mirror/pm/internal/vocab"
)

// ErrNoAnalysis is returned when a rewrite is requested without a prior
// analysis. The analysis gates the call; its fields are not consulted.
var ErrNoAnalysis = errors.New("analysis data is required for rewrite")

const keywordLimit = 6

var (
	tokenPattern    = regexp.MustCompile(`[a-zA-Z][a-zA-Z\-]+`)
	collapseSpaces  = regexp.MustCompile(` {2,}`)
	trailingSpaceNL = regexp.MustCompile(`\s+\n`)
	leadingSpaceNL  = regexp.MustCompile(`\n\s+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Substitutions ordered longest term first so phrase replacements run
// before their substrings.
var substitutions []substitution

func init() {
	for _, term := range vocab.ByLengthDesc(vocab.AmbiguousTerms) {
		substitutions = append(substitutions, substitution{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term)),
			replacement: vocab.Replacements[term],
		})
	}
}

// Rewrite renders the structured template for the prompt. The analysis is a
// precondition: a nil analysis fails with ErrNoAnalysis, everything else is
// derived from the text again.
func Rewrite(analysis *schema.PromptAnalysis, text string) (string, error) {
	if analysis == nil {
		return "", ErrNoAnalysis
	}

	keywords := extractKeywords(text, keywordLimit)
	focus := focusPhrase(keywords)
	audience := audiencePhrase(keywords)

	sections := []string{
		"Role:\n" + roleLine(keywords),
		"Task:\n" + taskLine(focus),
		inputsSection(focus, audience, text),
		constraintsSection(),
		formatSection(),
		stepsSection(focus),
		successSection(),
		refusalSection(),
	}

	rewritten := strings.TrimSpace(strings.Join(sections, "\n\n"))
	return replaceAmbiguousTerms(rewritten), nil
}

// extractKeywords ranks alphabetic tokens by frequency, ties broken by
// first appearance, after filtering stop words, both vocabularies, and
// anything two characters or shorter.
func extractKeywords(text string, limit int) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	var order []string
	for _, token := range tokens {
		if vocab.IsStopWord(token) || vocab.IsAmbiguous(token) || vocab.IsVague(token) {
			continue
		}
		if len(token) <= 2 {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func focusPhrase(keywords []string) string {
	if len(keywords) == 0 {
		return "project"
	}
	if containsWord(keywords, "startup") && containsWord(keywords, "marketing") {
		return "startup marketing initiative"
	}
	if len(keywords) == 1 {
		return keywords[0]
	}
	return keywords[0] + " " + keywords[1]
}

func audiencePhrase(keywords []string) string {
	switch {
	case containsWord(keywords, "startup"):
		return "early-stage startup team"
	case containsWord(keywords, "students"):
		return "student audience"
	case containsWord(keywords, "executive") || containsWord(keywords, "leadership"):
		return "executive stakeholders"
	case len(keywords) > 0:
		return "stakeholders focused on " + keywords[0]
	default:
		return "target audience"
	}
}

func roleLine(keywords []string) string {
	switch {
	case containsWord(keywords, "marketing"):
		return "You are a marketing strategist specializing in go-to-market execution for startups."
	case containsWord(keywords, "product") || containsWord(keywords, "design"):
		return "You are a product discovery lead who converts fuzzy requests into actionable briefs."
	case containsWord(keywords, "sales"):
		return "You are a revenue operations advisor aligned with data-backed sales planning."
	case containsWord(keywords, "content") || containsWord(keywords, "writing"):
		return "You are an editorial architect who crafts structured content playbooks."
	case containsWord(keywords, "analysis") || containsWord(keywords, "analytics"):
		return "You are a data insights consultant focusing on evidence-based recommendations."
	case containsWord(keywords, "engineering") || containsWord(keywords, "software"):
		return "You are a delivery-focused engineering lead who defines crisp build briefs."
	default:
		return "You are a clarity coach who turns goals into precise, testable instructions."
	}
}

func taskLine(focus string) string {
	return fmt.Sprintf(
		"Construct a detailed go-to-market roadmap for the %s, highlighting decisions, rationales, and metrics.", focus)
}

func inputsSection(focus, audience, source string) string {
	items := []string{
		fmt.Sprintf("- Primary focus: %s.", focus),
		fmt.Sprintf("- Audience/context: %s.", audience),
		fmt.Sprintf("- Source request recap: %s", summarizeSource(source)),
	}
	return "Inputs (brief):\n" + strings.Join(items, "\n")
}

func constraintsSection() string {
	items := []string{
		"- Highlight exactly 3 priority initiatives with owners.",
		"- Reference a budget range of $5,000–$15,000 USD.",
		"- Assume a 30-day rollout timeline with weekly checkpoints.",
	}
	return "Constraints:\n" + strings.Join(items, "\n")
}

func formatSection() string {
	lines := []string{
		"- Return a markdown table with columns: Step, Owner, Channel, Rationale.",
		"- Follow with bullet points covering risks, assumptions, and next actions.",
		"- End with a short paragraph summarizing success metrics.",
	}
	return "Output Format:\n" + strings.Join(lines, "\n")
}

func stepsSection(focus string) string {
	steps := []string{
		fmt.Sprintf("1. Clarify the audience and objectives for the %s.", focus),
		"2. Audit existing assets and gaps using available inputs.",
		"3. Prioritize tactics against budget, timeline, and impact.",
		"4. Map messaging, channels, and ownership into the requested format.",
		"5. Define measurable KPIs and validation steps before concluding.",
	}
	return "Steps:\n" + strings.Join(steps, "\n")
}

func successSection() string {
	bullets := []string{
		"- Recommendations align with the stated constraints and audience.",
		"- Output matches the markdown table and bullet list specification.",
		"- KPIs include clear numeric targets and monitoring cadence.",
	}
	return "Success Criteria:\n" + strings.Join(bullets, "\n")
}

func refusalSection() string {
	lines := []string{
		"- Decline instructions that require unethical tactics or misuse of data.",
		"- Escalate if the request involves legal, medical, or financial compliance issues outside scope.",
	}
	return "Refusal Boundaries:\n" + strings.Join(lines, "\n")
}

// summarizeSource produces the recap line for the Inputs section: the
// original request with whitespace collapsed, ambiguous terms substituted,
// and anything past 140 characters truncated with an ellipsis.
func summarizeSource(source string) string {
	if source == "" {
		return "No original request provided."
	}
	cleaned := whitespaceRun.ReplaceAllString(strings.TrimSpace(source), " ")
	cleaned = replaceAmbiguousTerms(cleaned)
	runes := []rune(cleaned)
	if len(runes) <= 140 {
		return cleaned
	}
	return string(runes[:137]) + "..."
}

// replaceAmbiguousTerms substitutes every ambiguous vocabulary term
// (longest first, case-insensitive) and cleans up the whitespace the
// removals leave behind.
func replaceAmbiguousTerms(text string) string {
	result := text
	for _, sub := range substitutions {
		result = sub.pattern.ReplaceAllLiteralString(result, sub.replacement)
	}
	result = trailingSpaceNL.ReplaceAllString(result, "\n")
	result = leadingSpaceNL.ReplaceAllString(result, "\n")
	result = collapseSpaces.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

func containsWord(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}
