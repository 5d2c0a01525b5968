package matcher

import (
	"reflect"
	"testing"
)

func testRules() []Rule {
	return []Rule{
		{
			Keywords:   []string{"trello", "kanban"},
			Categories: []string{"project-management", "task-management", "productivity"},
		},
		{
			Keywords:   []string{"board", "task"},
			Categories: []string{"collaboration", "task-management", "productivity"},
		},
		{
			Keywords:   []string{"chat"},
			Categories: []string{"communication", "team-chat", "collaboration"},
		},
	}
}

func allLabels() LabelSet {
	return NewLabelSet([]string{
		"project-management", "task-management", "productivity",
		"collaboration", "communication", "team-chat",
		"developer-tools", "self-hosted",
	})
}

var defaults = []string{"developer-tools", "productivity", "self-hosted"}

func TestMatch_FirstRuleWins(t *testing.T) {
	// Text hits both the trello rule and the generic board/task rule.
	// The earlier rule must win with its categories in declared order.
	text := "feature-rich kanban board alternative to trello"

	got := Match(text, testRules(), allLabels(), defaults)
	want := []string{"project-management", "task-management", "productivity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_NoKeywordHit_ReturnsDefaults(t *testing.T) {
	got := Match("a photo organizer for travel albums", testRules(), allLabels(), defaults)
	want := []string{"developer-tools", "productivity", "self-hosted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_EmptyText_ReturnsDefaults(t *testing.T) {
	got := Match("", testRules(), allLabels(), defaults)
	want := []string{"developer-tools", "productivity", "self-hosted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match(\"\") = %v, want %v", got, want)
	}
}

func TestMatch_ShortResolution_FallsThrough(t *testing.T) {
	// Remove two of the trello rule's labels from the store so it
	// resolves to 1; the later board/task rule must win instead.
	labels := NewLabelSet([]string{
		"productivity", "collaboration", "task-management",
	})
	text := "kanban task board"

	got := Match(text, testRules(), labels, defaults)
	want := []string{"collaboration", "task-management", "productivity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_UnresolvedLabelsDropped(t *testing.T) {
	// Defaults partially missing from the store: result is short, not padded.
	labels := NewLabelSet([]string{"productivity"})

	got := Match("unmatched text", testRules(), labels, defaults)
	want := []string{"productivity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_EmptyStore_ReturnsEmpty(t *testing.T) {
	got := Match("kanban board", testRules(), NewLabelSet(nil), defaults)
	if len(got) != 0 {
		t.Errorf("Match() with empty store = %v, want empty", got)
	}
}

func TestMatch_SubstringContainment(t *testing.T) {
	// "chat" inside "chatter" still hits: containment is deliberate,
	// there is no word-boundary check.
	got := Match("reduces workplace chatter", testRules(), allLabels(), defaults)
	want := []string{"communication", "team-chat", "collaboration"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	got := Match("Kanban Board For Teams", testRules(), allLabels(), defaults)
	want := []string{"project-management", "task-management", "productivity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	text := "kanban board alternative to trello"
	first := Match(text, testRules(), allLabels(), defaults)
	second := Match(text, testRules(), allLabels(), defaults)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Match() not idempotent: %v then %v", first, second)
	}
}

func TestMatch_TruncatesToThree(t *testing.T) {
	rules := []Rule{{
		Keywords:   []string{"editor"},
		Categories: []string{"productivity", "collaboration", "developer-tools", "self-hosted"},
	}}

	got := Match("markdown editor", rules, allLabels(), defaults)
	if len(got) != MaxCategories {
		t.Fatalf("Match() returned %d labels, want %d", len(got), MaxCategories)
	}
	want := []string{"productivity", "collaboration", "developer-tools"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestDefaultRules_ScenarioTrello(t *testing.T) {
	labels := NewLabelSet([]string{
		"project-management", "task-management", "productivity",
		"collaboration", "developer-tools", "self-hosted",
	})
	got := Match("feature-rich kanban board alternative to trello", DefaultRules, labels, DefaultCategories)
	want := []string{"project-management", "task-management", "productivity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}
