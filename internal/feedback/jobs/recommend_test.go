package jobs

import (
	"reflect"
	"testing"
)

func TestTierFor(t *testing.T) {
	cases := map[int]Tier{100: TierSenior, 80: TierSenior, 79: TierMid, 60: TierMid, 59: TierEntry, 0: TierEntry}
	for score, want := range cases {
		if got := TierFor(score); got != want {
			t.Fatalf("TierFor(%d) = %q, want %q", score, got, want)
		}
	}
}

func TestClassifyWholeWords(t *testing.T) {
	// "apis" and "coder" are not whole-word hits for "api" and "code".
	if got := Classify("apis coder gitlab"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}

	got := Classify("Python developer writing Python code for an API")
	want := []Match{{Category: "development", Hits: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClassifyRanksAndCaps(t *testing.T) {
	text := "patient patient patient clinical. marketing campaign. budget. teacher students classroom curriculum"
	got := Classify(text)
	want := []Match{
		{Category: "healthcare", Hits: 4},
		{Category: "education", Hits: 4},
		{Category: "marketing", Hits: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRecommendByTier(t *testing.T) {
	text := "Senior software engineer writing Python code"

	senior := Recommend(text, 85)
	if senior[0] != "Senior Software Engineer" {
		t.Fatalf("unexpected senior titles %v", senior)
	}
	entry := Recommend(text, 40)
	if entry[0] != "Junior Developer" {
		t.Fatalf("unexpected entry titles %v", entry)
	}
}

func TestRecommendCapsAndDedupes(t *testing.T) {
	text := "software developer, data analytics and sql, managed the team budget"
	got := Recommend(text, 70)
	if len(got) != MaxTitles {
		t.Fatalf("expected %d titles, got %v", MaxTitles, got)
	}
	seen := map[string]bool{}
	for _, title := range got {
		if seen[title] {
			t.Fatalf("duplicate title %q in %v", title, got)
		}
		seen[title] = true
	}
}

func TestRecommendFallback(t *testing.T) {
	got := Recommend("quiet river at dawn", 90)
	if !reflect.DeepEqual(got, fallbackTitles) {
		t.Fatalf("got %v, want fallback", got)
	}
	got[0] = "mutated"
	if fallbackTitles[0] == "mutated" {
		t.Fatalf("fallback table was mutated")
	}
}

func TestTablesComplete(t *testing.T) {
	if len(categories) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(categories))
	}
	for _, c := range categories {
		for _, tier := range []Tier{TierEntry, TierMid, TierSenior} {
			n := len(c.titles[tier])
			if n < 3 || n > 4 {
				t.Fatalf("%s/%s has %d titles", c.name, tier, n)
			}
		}
	}
	if len(fallbackTitles) != 5 {
		t.Fatalf("expected 5 fallback titles")
	}
}
