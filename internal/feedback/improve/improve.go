// Package improve rewrites single résumé sentences into stronger, action-led phrasing.
// Some choices are random; callers must not assume repeatable output.
package improve

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// InvalidSentenceMessage is returned for blank input.
const InvalidSentenceMessage = "Please provide a valid sentence to improve."

// minWordsForClause is the word count above which a quantified clause is appended.
const minWordsForClause = 5

// Source picks an index in [0, n).
type Source interface {
	IntN(n int) int
}

var (
	responsiblePattern = regexp.MustCompile(`(?i)was (responsible for|tasked with)`)
	involvedPattern    = regexp.MustCompile(`(?i)was (involved in|part of)`)
	actionVerbPrefix   = regexp.MustCompile(`(?i)^(Led|Managed|Created|Developed|Implemented|Achieved|Increased|Reduced|Improved)`)
	digitPattern       = regexp.MustCompile(`\d`)
)

var fillerVerbs = []string{"Spearheaded", "Implemented", "Delivered", "Orchestrated", "Developed", "Managed", "Achieved"}

var quantifiedClauses = []string{
	"resulting in 20% efficiency improvement",
	"increasing team productivity by 25%",
	"reducing costs by 15%",
	"saving over 10 hours per week",
	"achieving 30% faster delivery",
}

// sniffedVerbs are checked in order before falling back to fillerVerbs.
var sniffedVerbs = []struct {
	stems []string
	verb  string
}{
	{stems: []string{"develop", "creat"}, verb: "Developed"},
	{stems: []string{"manage", "lead"}, verb: "Managed"},
	{stems: []string{"improv", "enhanc"}, verb: "Improved"},
}

var industryTerms = map[string][]string{
	"technology": {"agile methodology", "DevOps practices", "cloud infrastructure", "cross-functional teams"},
	"healthcare": {"patient outcomes", "care protocols", "clinical workflows", "healthcare regulations"},
	"finance":    {"financial analytics", "regulatory compliance", "risk management", "investment strategies"},
	"marketing":  {"conversion rates", "customer acquisition", "brand positioning", "market segmentation"},
	"education":  {"learning outcomes", "curriculum development", "student engagement", "educational assessments"},
}

// Improver applies the rewrite rules. The zero value is not usable; call New.
type Improver struct {
	src Source
}

// New returns an Improver drawing random choices from src, or from a
// time-seeded generator when src is nil.
func New(src Source) *Improver {
	if src == nil {
		src = NewLockedSource(uint64(time.Now().UnixNano()))
	}
	return &Improver{src: src}
}

// Improve rewrites sentence, optionally weaving in a term for industry.
func (im *Improver) Improve(sentence, industry string) string {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return InvalidSentenceMessage
	}
	words := len(strings.Fields(sentence))

	improved := responsiblePattern.ReplaceAllString(sentence, "managed")
	improved = involvedPattern.ReplaceAllString(improved, "contributed to")

	if !actionVerbPrefix.MatchString(improved) {
		improved = im.verbFor(improved) + " " + lowerFirst(improved)
	}

	if words > minWordsForClause && !digitPattern.MatchString(improved) && !strings.Contains(improved, "%") {
		improved += ", " + im.pick(quantifiedClauses)
	}

	if terms := industryTerms[strings.ToLower(strings.TrimSpace(industry))]; len(terms) > 0 && !mentionsAny(improved, terms) {
		improved += " utilizing " + im.pick(terms)
	}
	return improved
}

func (im *Improver) verbFor(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, sv := range sniffedVerbs {
		for _, stem := range sv.stems {
			if strings.Contains(lower, stem) {
				return sv.verb
			}
		}
	}
	return im.pick(fillerVerbs)
}

func (im *Improver) pick(options []string) string {
	i := im.src.IntN(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}

func mentionsAny(sentence string, terms []string) bool {
	lower := strings.ToLower(sentence)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// IndustryTerms returns the terms that may be appended for industry.
func IndustryTerms(industry string) []string {
	return append([]string(nil), industryTerms[industry]...)
}

// LockedSource is a PCG generator safe for concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
