package analyze

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_RoleDetection(t *testing.T) {
	a := Analyze("You are a teacher")
	if !a.Checks.HasRole {
		t.Error("HasRole = false, want true")
	}

	a = Analyze("Act as a reviewer for this code")
	if !a.Checks.HasRole {
		t.Error("HasRole = false for 'act as', want true")
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := Analyze("")

	if a.Checks.TrueCount() != 0 {
		t.Errorf("TrueCount = %d, want 0", a.Checks.TrueCount())
	}
	if a.Score != 0 {
		t.Errorf("Score = %d, want 0", a.Score)
	}
	if len(a.Notes) != 8 {
		t.Fatalf("got %d notes, want exactly the 8 missing-check messages: %v", len(a.Notes), a.Notes)
	}
	if !strings.Contains(a.Notes[0], "role statement") {
		t.Errorf("Notes[0] = %q, want the role message first", a.Notes[0])
	}
	if !strings.Contains(a.Notes[7], "success") {
		t.Errorf("Notes[7] = %q, want the success-criteria message last", a.Notes[7])
	}
	if len(a.Flags.AmbiguousTerms) != 0 || len(a.Flags.VagueQuantifiers) != 0 || a.Flags.DanglingPronouns != 0 {
		t.Errorf("flags should be empty, got %+v", a.Flags)
	}
}

func TestAnalyze_ScoreFormula(t *testing.T) {
	// 5 true checks (role, task, inputs, constraints, format),
	// 2 ambiguous terms (easy, flexible), 1 vague quantifier (some),
	// 0 dangling pronouns: 50 - (10 + 2 + 0) = 38.
	text := "Write a product brief based on the attached notes. You are a marketing strategist. " +
		"Respond with a markdown table. Include exactly 3 channels. " +
		"Keep the tone easy and flexible for some readers."

	a := Analyze(text)

	if got := a.Checks.TrueCount(); got != 5 {
		t.Fatalf("TrueCount = %d, want 5 (checks: %+v)", got, a.Checks)
	}
	if !reflect.DeepEqual(a.Flags.AmbiguousTerms, []string{"easy", "flexible"}) {
		t.Fatalf("AmbiguousTerms = %v, want [easy flexible]", a.Flags.AmbiguousTerms)
	}
	if !reflect.DeepEqual(a.Flags.VagueQuantifiers, []string{"some"}) {
		t.Fatalf("VagueQuantifiers = %v, want [some]", a.Flags.VagueQuantifiers)
	}
	if a.Flags.DanglingPronouns != 0 {
		t.Fatalf("DanglingPronouns = %d, want 0", a.Flags.DanglingPronouns)
	}
	if a.Score != 38 {
		t.Errorf("Score = %d, want 38", a.Score)
	}
}

func TestAnalyze_ScoreClampsAtZero(t *testing.T) {
	// No checks pass, plenty of penalties.
	a := Analyze("help assist optimize robust flexible scalable easy nice it is this should")
	if a.Score != 0 {
		t.Errorf("Score = %d, want 0 (clamped)", a.Score)
	}
}

func TestAnalyze_ContainmentSuppression(t *testing.T) {
	a := Analyze("help me with")
	if !reflect.DeepEqual(a.Flags.AmbiguousTerms, []string{"help"}) {
		t.Errorf("AmbiguousTerms = %v, want [help] (phrase match suppresses substring, then renames)", a.Flags.AmbiguousTerms)
	}
}

func TestAnalyze_TermsSorted(t *testing.T) {
	a := Analyze("a nice and flexible and easy thing")
	want := []string{"easy", "flexible", "nice"}
	if !reflect.DeepEqual(a.Flags.AmbiguousTerms, want) {
		t.Errorf("AmbiguousTerms = %v, want %v (sorted)", a.Flags.AmbiguousTerms, want)
	}
}

func TestAnalyze_DanglingPronouns(t *testing.T) {
	a := Analyze("It should load fast. This is the goal. They were slow before.")
	if a.Flags.DanglingPronouns != 3 {
		t.Errorf("DanglingPronouns = %d, want 3", a.Flags.DanglingPronouns)
	}
}

func TestAnalyze_ConstraintsFromNumeral(t *testing.T) {
	a := Analyze("ship 3 things")
	if !a.Checks.HasConstraints {
		t.Error("HasConstraints = false, want true (numeral counts as a constraint)")
	}

	a = Analyze("respect the deadline")
	if !a.Checks.HasConstraints {
		t.Error("HasConstraints = false, want true (constraint keyword)")
	}
}

func TestAnalyze_FormatNeedsDeliveryAndNoun(t *testing.T) {
	a := Analyze("return the data as json")
	if !a.Checks.HasFormat {
		t.Error("HasFormat = false, want true")
	}

	a = Analyze("json json json")
	if a.Checks.HasFormat {
		t.Error("HasFormat = true, want false (format noun without delivery verb)")
	}
}

func TestAnalyze_TaskMustOpenText(t *testing.T) {
	a := Analyze("  Summarize the meeting")
	if !a.Checks.HasTask {
		t.Error("HasTask = false, want true (leading whitespace allowed)")
	}

	a = Analyze("I want you to summarize the meeting")
	if a.Checks.HasTask {
		t.Error("HasTask = true, want false (imperative verb must open the text)")
	}
}

func TestAnalyze_NoFallbackNoteWhenOthersExist(t *testing.T) {
	a := Analyze("something vague with some words")
	for _, n := range a.Notes {
		if strings.Contains(n, "fundamentals") {
			t.Errorf("fallback note present alongside other notes: %v", a.Notes)
		}
	}
}
