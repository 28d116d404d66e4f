// Package analyze implements the rule-based structural analysis of a prompt.
package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/prompt-mirror/pm/internal/schema"
	"github.com/prompt-mirror/pm/internal/vocab"
)

// Structural detectors. Each one answers a single question about the prompt.
var (
	rolePattern = regexp.MustCompile(`(?i)\b(?:you are|act as)\b`)
	taskPattern = regexp.MustCompile(
		`(?i)^\s*(?:write|draft|plan|create|design|develop|compare|summarize|analyze|build|outline|generate|evaluate|produce|compose|audit|assess)\b`)
	inputPattern = regexp.MustCompile(
		`(?i)\b(?:given|using|with (?:this|the)|based on|provided|attached|from)\b`)
	constraintPattern = regexp.MustCompile(
		`(?i)(?:constraints?|assume|exclude|limit|deadline|budget|must|exactly|at least|no more than)`)
	numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	formatPattern = regexp.MustCompile(
		`(?is)\b(?:output|return|respond|deliver|format|present|provide)\b.*\b(?:json|table|markdown|bullets?|list|outline|chart)\b`)
	examplePattern = regexp.MustCompile(`(?i)\b(?:example|for instance|eg:|e\.g\.)`)
	stepsPattern   = regexp.MustCompile(
		`(?i)\b(?:step\s*\d+|steps|process|first|second|third|then|next|finally)\b`)
	successPattern = regexp.MustCompile(
		`(?i)\b(?:success(?: criteria| when)?|acceptance|definition of done|done when|complete when)\b`)
	danglingPattern = regexp.MustCompile(
		`(?i)\b(?:it|this|that|they)\s+(?:is|are|was|were|should|must|can|will|need|needs)\b`)
)

type missingNote struct {
	missing func(schema.Checks) bool
	message string
}

// One note per failed check, emitted in check-declaration order.
var missingNotes = []missingNote{
	{func(c schema.Checks) bool { return !c.HasRole },
		"Add a clear role statement such as 'You are a specific type of expert.'"},
	{func(c schema.Checks) bool { return !c.HasTask },
		"Start with an imperative task that describes the expected action."},
	{func(c schema.Checks) bool { return !c.HasInputs },
		"Reference the inputs or source material the assistant should rely on."},
	{func(c schema.Checks) bool { return !c.HasConstraints },
		"List numeric or explicit constraints to narrow the solution space."},
	{func(c schema.Checks) bool { return !c.HasFormat },
		"Specify the output format (tables, bullets, JSON, etc.)."},
	{func(c schema.Checks) bool { return !c.HasExamples },
		"Provide concrete examples to anchor expectations."},
	{func(c schema.Checks) bool { return !c.HasSteps },
		"Describe the process or steps the assistant should follow."},
	{func(c schema.Checks) bool { return !c.HasSuccessCriteria },
		"Define what success looks like or how the result will be evaluated."},
}

// Analyze scans the prompt text and returns structural checks, lexical
// flags, a 0-100 score, and human-readable notes. It never fails: the empty
// string is simply a prompt with nothing in it.
func Analyze(text string) *schema.PromptAnalysis {
	checks := schema.Checks{
		HasRole:            rolePattern.MatchString(text),
		HasTask:            taskPattern.MatchString(text),
		HasInputs:          inputPattern.MatchString(text),
		HasConstraints:     hasConstraints(text),
		HasFormat:          formatPattern.MatchString(text),
		HasExamples:        examplePattern.MatchString(text),
		HasSteps:           stepsPattern.MatchString(text),
		HasSuccessCriteria: successPattern.MatchString(text),
	}

	ambiguous := normalizeTerms(findTerms(text, vocab.AmbiguousTerms))
	vague := findTerms(text, vocab.VagueQuantifiers)
	dangling := len(danglingPattern.FindAllString(text, -1))

	return &schema.PromptAnalysis{
		Checks: checks,
		Flags: schema.Flags{
			AmbiguousTerms:   ambiguous,
			VagueQuantifiers: vague,
			DanglingPronouns: dangling,
		},
		Score: score(checks, len(ambiguous), len(vague), dangling),
		Notes: buildNotes(checks, ambiguous, vague, dangling),
	}
}

// hasConstraints treats any numeral as an implicit constraint.
func hasConstraints(text string) bool {
	return numberPattern.MatchString(text) || constraintPattern.MatchString(text)
}

// findTerms scans the vocabulary longest-first so a phrase match suppresses
// reporting of any shorter term it contains, then returns the matches
// sorted. Containment is checked by substring, not by match position.
func findTerms(text string, terms []string) []string {
	lowered := strings.ToLower(text)
	found := []string{}
	for _, term := range vocab.ByLengthDesc(terms) {
		if !strings.Contains(lowered, term) {
			continue
		}
		contained := false
		for _, existing := range found {
			if strings.Contains(existing, term) {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		found = append(found, term)
	}
	sort.Strings(found)
	return found
}

// normalizeTerms renames "help me with" to plain "help" for reporting and
// drops the duplicate that rename can introduce.
func normalizeTerms(terms []string) []string {
	normalized := []string{}
	for _, term := range terms {
		if term == "help me with" {
			term = "help"
		}
		seen := false
		for _, existing := range normalized {
			if existing == term {
				seen = true
				break
			}
		}
		if !seen {
			normalized = append(normalized, term)
		}
	}
	return normalized
}

func score(checks schema.Checks, ambiguous, vague, dangling int) int {
	s := checks.TrueCount()*10 - (5*ambiguous + 2*vague + 3*dangling)
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func buildNotes(checks schema.Checks, ambiguous, vague []string, dangling int) []string {
	notes := []string{}
	for _, n := range missingNotes {
		if n.missing(checks) {
			notes = append(notes, n.message)
		}
	}
	if len(ambiguous) > 0 {
		notes = append(notes, fmt.Sprintf(
			"Clarify or replace ambiguous terms: %s.", joinSorted(ambiguous)))
	}
	if len(vague) > 0 {
		notes = append(notes, fmt.Sprintf(
			"Quantify vague language (specify counts, ranges, or timeframes) for: %s.", joinSorted(vague)))
	}
	if dangling > 0 {
		notes = append(notes, "Resolve dangling pronouns (it/this/that/they) by naming the referent.")
	}
	if len(notes) == 0 {
		notes = append(notes, "Prompt already covers the fundamentals; refine tone or examples as needed.")
	}
	return notes
}

func joinSorted(terms []string) string {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
