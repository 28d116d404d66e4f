package vocab

import (
	"strings"
	"testing"
)

func TestByLengthDesc(t *testing.T) {
	got := ByLengthDesc([]string{"ab", "abcd", "abc"})
	want := []string{"abcd", "abc", "ab"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ByLengthDesc = %v, want %v", got, want)
		}
	}
}

func TestByLengthDesc_DoesNotMutate(t *testing.T) {
	in := []string{"a", "abc"}
	ByLengthDesc(in)
	if in[0] != "a" || in[1] != "abc" {
		t.Errorf("input mutated: %v", in)
	}
}

func TestMembership(t *testing.T) {
	if !IsAmbiguous("help me with") {
		t.Error("IsAmbiguous(help me with) = false, want true")
	}
	if !IsVague("asap") {
		t.Error("IsVague(asap) = false, want true")
	}
	if !IsStopWord("the") {
		t.Error("IsStopWord(the) = false, want true")
	}
	if IsAmbiguous("budget") || IsVague("budget") || IsStopWord("budget") {
		t.Error("budget should not match any table")
	}
}

func TestEveryAmbiguousTermHasDeterministicReplacement(t *testing.T) {
	// Replacements may be absent (the term is removed), but any present
	// replacement must not itself contain a vocabulary term, or
	// substitution would not be stable across repeated passes.
	for term, repl := range Replacements {
		if repl == "" {
			continue
		}
		for _, other := range AmbiguousTerms {
			if term == other {
				continue
			}
			if strings.Contains(repl, other) {
				t.Errorf("replacement %q for %q contains term %q", repl, term, other)
			}
		}
	}
}
