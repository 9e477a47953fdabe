package search

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"talent-match/internal/fuzzy"
)

type record struct {
	name   string
	fields []string
}

func fieldsOf(r record) []string { return r.fields }

func names(items []record) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}

func TestRank_EmptyQueryReturnsInputOrder(t *testing.T) {
	items := []record{
		{name: "a", fields: []string{"Java Developer"}},
		{name: "b", fields: []string{"Python Developer"}},
		{name: "c", fields: []string{"Ruby"}},
	}
	got, err := Rank(context.Background(), fuzzy.NewMatcher(), "", items, fieldsOf, 0.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"a", "b", "c"}) {
		t.Fatalf("order changed: %v", names(got))
	}
}

func TestRank_SubstringHitsFirst(t *testing.T) {
	items := []record{
		{name: "fuzzy", fields: []string{"Pyton Dev"}},
		{name: "substring", fields: []string{"Python Engineer"}},
		{name: "unrelated", fields: []string{"Accountant"}},
	}
	got, err := Rank(context.Background(), fuzzy.NewMatcher(), "python", items, fieldsOf, 0.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"substring", "fuzzy"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
}

func TestRank_ThresholdFilters(t *testing.T) {
	items := []record{
		{name: "close", fields: []string{"Pyton"}},
		{name: "far", fields: []string{"Zebra"}},
	}
	got, err := Rank(context.Background(), fuzzy.NewMatcher(), "python", items, fieldsOf, 0.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"close"}) {
		t.Fatalf("got %v, want [close]", names(got))
	}
}

func TestRank_StableForEqualScores(t *testing.T) {
	items := []record{
		{name: "first", fields: []string{"Python"}},
		{name: "second", fields: []string{"Python"}},
	}
	got, err := Rank(context.Background(), fuzzy.NewMatcher(), "python", items, fieldsOf, 0.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"first", "second"}) {
		t.Fatalf("stability broken: %v", names(got))
	}
}

func TestRank_AccentInsensitive(t *testing.T) {
	items := []record{
		{name: "accented", fields: []string{"Développeur Python"}},
	}
	got, err := Rank(context.Background(), fuzzy.NewMatcher(), "developpeur", items, fieldsOf, 0.6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected accent-folded substring hit, got %v", names(got))
	}
}

func TestRank_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []record{{name: "a", fields: []string{"Python"}}}
	_, err := Rank(ctx, fuzzy.NewMatcher(), "python", items, fieldsOf, 0.6)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRank_NilFieldsOf(t *testing.T) {
	_, err := Rank[record](context.Background(), fuzzy.NewMatcher(), "python", nil, nil, 0.6)
	if !errors.Is(err, ErrNilFieldsOf) {
		t.Fatalf("expected ErrNilFieldsOf, got %v", err)
	}
}
