package fuzzy

import (
	"reflect"
	"testing"
)

func TestMatchesAny_SubstringShortCircuit(t *testing.T) {
	m := NewMatcher()
	if !m.MatchesAny("tunis", 0.6, "Tunis, Tunisia") {
		t.Fatalf("expected substring hit for %q in %q", "tunis", "Tunis, Tunisia")
	}
	// Substring hits ignore the threshold entirely.
	if !m.MatchesAny("tunis", 0.99, "Grand Tunis") {
		t.Fatalf("expected substring hit regardless of threshold")
	}
}

func TestMatchesAny_Threshold(t *testing.T) {
	m := NewMatcher()
	if !m.MatchesAny("tunsi", 0.6, "Tunis") {
		t.Fatalf("expected fuzzy hit at threshold 0.6")
	}
	if m.MatchesAny("tunsi", 0.9, "Tunis") {
		t.Fatalf("expected no hit at threshold 0.9")
	}
}

func TestMatchesAny_EmptyInputs(t *testing.T) {
	m := NewMatcher()
	if m.MatchesAny("", 0.1, "Tunis") {
		t.Fatalf("empty query must never match")
	}
	if m.MatchesAny("tunis", 0.1) {
		t.Fatalf("no fields must never match")
	}
	if m.MatchesAny("tunis", 0.1, "", "  ") {
		t.Fatalf("blank fields must never match")
	}
}

func TestMatchesAny_AccentInsensitive(t *testing.T) {
	m := NewMatcher()
	if !m.MatchesAny("developpeur", 0.6, "Développeur Java") {
		t.Fatalf("expected accent-insensitive substring hit")
	}
}

func TestBestScore_TokenWindows(t *testing.T) {
	m := NewMatcher()

	got := m.BestScore("Senior Python Developer", "pythn")
	want := 1.0 - 1.0/6.0
	if !almostEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Literal substring inside a long blob scores 1.
	if got := m.BestScore("Développeur Python confirmé à Tunis", "python"); !almostEqual(got, 1.0) {
		t.Fatalf("substring in corpus: got %v, want 1.0", got)
	}
}

func TestBestScore_EmptyInputs(t *testing.T) {
	m := NewMatcher()
	if got := m.BestScore("", "python"); got != 0 {
		t.Fatalf("empty corpus: got %v, want 0", got)
	}
	if got := m.BestScore("Python Developer", ""); got != 0 {
		t.Fatalf("empty query: got %v, want 0", got)
	}
}

func TestBestScore_MultiTokenQuery(t *testing.T) {
	m := NewMatcher()
	got := m.BestScore("Senior Python Developer in Tunis", "python developr")
	if got < 0.9 {
		t.Fatalf("expected near-exact window score, got %v", got)
	}
}

func TestSuggestions_RanksClosestFirst(t *testing.T) {
	m := NewMatcher()
	pool := []string{"Python Developer", "Java Developer", "Ruby"}
	got := m.Suggestions("pythn", pool, 2)
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("unexpected suggestion count: %v", got)
	}
	if got[0] != "Python Developer" {
		t.Fatalf("expected %q first, got %v", "Python Developer", got)
	}
}

func TestSuggestions_LimitAndEmptyPool(t *testing.T) {
	m := NewMatcher()
	if got := m.Suggestions("python", nil, 3); len(got) != 0 {
		t.Fatalf("empty pool: got %v", got)
	}
	if got := m.Suggestions("python", []string{"Python"}, 0); len(got) != 0 {
		t.Fatalf("limit 0: got %v", got)
	}
	if got := m.Suggestions("python", []string{"Python"}, -1); len(got) != 0 {
		t.Fatalf("negative limit: got %v", got)
	}
	if got := m.Suggestions("", []string{"Python"}, 3); len(got) != 0 {
		t.Fatalf("empty query: got %v", got)
	}
}

func TestSuggestions_DistinctByFoldedForm(t *testing.T) {
	m := NewMatcher()
	pool := []string{"Python Developer", "PYTHON DEVELOPER", "python developer"}
	got := m.Suggestions("python", pool, 5)
	want := []string{"Python Developer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSuggestions_FloorFiltersNoise(t *testing.T) {
	m := NewMatcher()
	pool := []string{"Zzzz", "Qqqqqq"}
	if got := m.Suggestions("python", pool, 5); len(got) != 0 {
		t.Fatalf("expected noise filtered out, got %v", got)
	}
}

func TestSuggestions_StableForEqualScores(t *testing.T) {
	m := NewMatcher()
	pool := []string{"Go Developer", "Go Engineer"}
	got := m.Suggestions("go", pool, 2)
	want := []string{"Go Developer", "Go Engineer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
