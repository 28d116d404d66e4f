package schema

import "encoding/json"

// PromptAnalysis is the normalized analysis every component exchanges,
// whether it came from the local analyzer or a remote model.
type PromptAnalysis struct {
	Checks Checks   `json:"checks"`
	Flags  Flags    `json:"flags"`
	Score  int      `json:"score"`
	Notes  []string `json:"notes"`
}

// Checks records which structural elements the prompt already has.
type Checks struct {
	HasRole            bool `json:"has_role"`
	HasTask            bool `json:"has_task"`
	HasInputs          bool `json:"has_inputs"`
	HasConstraints     bool `json:"has_constraints"`
	HasFormat          bool `json:"has_format"`
	HasExamples        bool `json:"has_examples"`
	HasSteps           bool `json:"has_steps"`
	HasSuccessCriteria bool `json:"has_success_criteria"`
}

// Flags records lexical problems found in the prompt.
type Flags struct {
	AmbiguousTerms   []string `json:"ambiguous_terms"`
	VagueQuantifiers []string `json:"vague_quantifiers"`
	DanglingPronouns int      `json:"dangling_pronouns"`
}

// TrueCount returns how many checks passed.
func (c Checks) TrueCount() int {
	n := 0
	for _, v := range []bool{
		c.HasRole, c.HasTask, c.HasInputs, c.HasConstraints,
		c.HasFormat, c.HasExamples, c.HasSteps, c.HasSuccessCriteria,
	} {
		if v {
			n++
		}
	}
	return n
}

var checkKeys = []string{
	"has_role", "has_task", "has_inputs", "has_constraints",
	"has_format", "has_examples", "has_steps", "has_success_criteria",
}

// ValidateOrFallback decodes a candidate analysis produced by a remote
// model and verifies its structure: every required field present with the
// right primitive type. On any mismatch the known-good fallback is returned
// unchanged. The second return reports whether the candidate was accepted.
func ValidateOrFallback(candidate []byte, fallback *PromptAnalysis) (*PromptAnalysis, bool) {
	if len(candidate) == 0 {
		return fallback, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &raw); err != nil {
		return fallback, false
	}
	if !validChecks(raw["checks"]) || !validFlags(raw["flags"]) {
		return fallback, false
	}
	if !isInt(raw["score"]) || !isStringList(raw["notes"]) {
		return fallback, false
	}

	var out PromptAnalysis
	if err := json.Unmarshal(candidate, &out); err != nil {
		return fallback, false
	}
	if out.Flags.AmbiguousTerms == nil {
		out.Flags.AmbiguousTerms = []string{}
	}
	if out.Flags.VagueQuantifiers == nil {
		out.Flags.VagueQuantifiers = []string{}
	}
	if out.Notes == nil {
		out.Notes = []string{}
	}
	return &out, true
}

func validChecks(data json.RawMessage) bool {
	var m map[string]json.RawMessage
	if data == nil || json.Unmarshal(data, &m) != nil {
		return false
	}
	for _, key := range checkKeys {
		var b bool
		v, ok := m[key]
		if !ok || json.Unmarshal(v, &b) != nil {
			return false
		}
	}
	return true
}

func validFlags(data json.RawMessage) bool {
	var m map[string]json.RawMessage
	if data == nil || json.Unmarshal(data, &m) != nil {
		return false
	}
	return isStringList(m["ambiguous_terms"]) &&
		isStringList(m["vague_quantifiers"]) &&
		isInt(m["dangling_pronouns"])
}

func isInt(data json.RawMessage) bool {
	var n int
	return data != nil && json.Unmarshal(data, &n) == nil
}

func isStringList(data json.RawMessage) bool {
	var s []string
	return data != nil && json.Unmarshal(data, &s) == nil
}
