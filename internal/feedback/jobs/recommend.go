// Package jobs suggests job titles from résumé text and an overall score tier.
package jobs

import (
	"regexp"
	"sort"
	"strings"
)

const (
	MaxCategories = 3
	MaxTitles     = 5
)

// Match is one detected role category with its whole-word hit count.
type Match struct {
	Category string `json:"category"`
	Hits     int    `json:"hits"`
}

var patterns = compilePatterns(categories)

func compilePatterns(cats []category) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(cats))
	for i, c := range cats {
		quoted := make([]string, len(c.keywords))
		for j, kw := range c.keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		out[i] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return out
}

// TierFor maps an overall score to an experience tier.
func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierSenior
	case score >= 60:
		return TierMid
	default:
		return TierEntry
	}
}

// Classify returns up to MaxCategories categories with at least one hit,
// ordered by hits descending. Ties keep table order.
func Classify(text string) []Match {
	matches := make([]Match, 0, len(categories))
	for i, c := range categories {
		if hits := len(patterns[i].FindAllStringIndex(text, -1)); hits > 0 {
			matches = append(matches, Match{Category: c.name, Hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Hits > matches[j].Hits })
	if len(matches) > MaxCategories {
		matches = matches[:MaxCategories]
	}
	return matches
}

// Recommend returns at most MaxTitles distinct job titles for text at the
// tier implied by overallScore.
func Recommend(text string, overallScore int) []string {
	matches := Classify(text)
	if len(matches) == 0 {
		return append([]string(nil), fallbackTitles...)
	}

	tier := TierFor(overallScore)
	seen := make(map[string]bool)
	out := make([]string, 0, MaxTitles)
	for _, m := range matches {
		for _, title := range titlesFor(m.Category, tier) {
			if seen[title] {
				continue
			}
			seen[title] = true
			out = append(out, title)
			if len(out) == MaxTitles {
				return out
			}
		}
	}
	return out
}

// Categories lists the recognised role categories in table order.
func Categories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.name
	}
	return out
}

func titlesFor(name string, tier Tier) []string {
	for _, c := range categories {
		if c.name == name {
			return c.titles[tier]
		}
	}
	return nil
}
