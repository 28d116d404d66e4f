// Package vocab holds the fixed lexical watch-lists the analyzer and
// rewriter share. All tables are read-only after package init.
package vocab

import "sort"

// AmbiguousTerms are phrases that leave the requested action underspecified.
// "help me with" precedes "help" so that longest-first matching captures the
// full phrase before its substring.
var AmbiguousTerms = []string{
	"help me with",
	"help",
	"assist",
	"optimize",
	"improve",
	"better",
	"robust",
	"flexible",
	"scalable",
	"easy",
	"efficient",
	"modern",
	"as needed",
	"user friendly",
	"marketing plan",
	"strategy",
	"nice",
}

// VagueQuantifiers are words that name an amount or cadence without a number.
var VagueQuantifiers = []string{
	"some",
	"many",
	"several",
	"few",
	"often",
	"quickly",
	"regularly",
	"usually",
	"sometimes",
	"various",
	"numerous",
	"couple",
	"handful",
	"soon",
	"asap",
}

// Replacements maps ambiguous terms to concrete substitutes. Terms with no
// entry are removed outright during substitution.
var Replacements = map[string]string{
	"help me with":   "create",
	"help":           "deliver",
	"assist":         "provide",
	"optimize":       "fine-tune",
	"improve":        "strengthen",
	"better":         "enhance",
	"marketing plan": "go-to-market roadmap",
	"strategy":       "action blueprint",
	"user friendly":  "accessible for end users",
	"modern":         "contemporary",
}

// StopWords are filtered out before keyword ranking.
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "for": {},
	"with": {}, "within": {}, "on": {}, "in": {}, "to": {}, "into": {},
	"me": {}, "my": {}, "our": {}, "your": {}, "their": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "about": {}, "at": {}, "by": {},
	"from": {}, "as": {}, "it": {}, "is": {}, "are": {}, "be": {},
	"need": {}, "needs": {}, "needed": {}, "please": {}, "would": {},
	"could": {}, "should": {}, "can": {}, "we": {}, "i": {},
}

var (
	ambiguousSet = make(map[string]struct{}, len(AmbiguousTerms))
	vagueSet     = make(map[string]struct{}, len(VagueQuantifiers))
)

func init() {
	for _, t := range AmbiguousTerms {
		ambiguousSet[t] = struct{}{}
	}
	for _, t := range VagueQuantifiers {
		vagueSet[t] = struct{}{}
	}
}

// IsAmbiguous reports whether the lowercased token is an ambiguous term.
func IsAmbiguous(token string) bool {
	_, ok := ambiguousSet[token]
	return ok
}

// IsVague reports whether the lowercased token is a vague quantifier.
func IsVague(token string) bool {
	_, ok := vagueSet[token]
	return ok
}

// IsStopWord reports whether the lowercased token is a stop word.
func IsStopWord(token string) bool {
	_, ok := StopWords[token]
	return ok
}

// ByLengthDesc returns a copy of terms sorted longest first, so that phrase
// matches win over their substrings.
func ByLengthDesc(terms []string) []string {
	out := make([]string, len(terms))
	copy(out, terms)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
