package improve

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource always returns the same index.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestImproveBlank(t *testing.T) {
	im := New(fixedSource(0))
	for _, in := range []string{"", "   ", "\n\t"} {
		assert.Equal(t, InvalidSentenceMessage, im.Improve(in, "technology"))
	}
}

func TestImprovePassiveVoice(t *testing.T) {
	im := New(fixedSource(0))

	got := im.Improve("was responsible for managing the team", "")
	assert.NotContains(t, got, "was responsible for")
	assert.Equal(t, "managed managing the team, resulting in 20% efficiency improvement", got)
	assert.Equal(t, 1, strings.Count(strings.ToLower(got), "managed"))

	got = im.Improve("Was part of the launch crew", "")
	assert.True(t, strings.HasPrefix(got, "Spearheaded contributed to the launch crew, "), got)
}

func TestImproveKeepsLeadingActionVerb(t *testing.T) {
	im := New(fixedSource(0))
	got := im.Improve("Led a migration to Kubernetes in 2023", "")
	assert.Equal(t, "Led a migration to Kubernetes in 2023", got)
}

func TestImproveSniffsVerb(t *testing.T) {
	im := New(fixedSource(0))
	cases := map[string]string{
		"Built tools to create reports":       "Developed built tools to create reports",
		"Helped lead weekly standups":         "Managed helped lead weekly standups",
		"Worked to enhance onboarding":        "Improved worked to enhance onboarding",
		"Handled support tickets for 3 teams": "Spearheaded handled support tickets for 3 teams",
	}
	for in, want := range cases {
		assert.Equal(t, want, im.Improve(in, ""), in)
	}
}

func TestImproveQuantifiedClause(t *testing.T) {
	im := New(fixedSource(2))

	assert.Equal(t,
		"Delivered handled the weekly payroll for the whole office, reducing costs by 15%",
		im.Improve("Handled the weekly payroll for the whole office", ""))

	// five words or fewer gets no clause
	assert.Equal(t, "Delivered handled the weekly payroll", im.Improve("Handled the weekly payroll", ""))

	// already quantified
	assert.Equal(t, "Delivered handled payroll for 40 staff across two offices", im.Improve("Handled payroll for 40 staff across two offices", ""))
}

func TestImproveIndustryTerm(t *testing.T) {
	im := New(fixedSource(1))

	got := im.Improve("Led a migration to Kubernetes in 2023", "Technology")
	assert.Equal(t, "Led a migration to Kubernetes in 2023 utilizing DevOps practices", got)

	got = im.Improve("Led adoption of devops practices in 2023", "technology")
	assert.Equal(t, "Led adoption of devops practices in 2023", got)

	got = im.Improve("Led a migration to Kubernetes in 2023", "aerospace")
	assert.Equal(t, "Led a migration to Kubernetes in 2023", got)
}

func TestLockedSourceConcurrent(t *testing.T) {
	im := New(NewLockedSource(42))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := im.Improve("handled support for the regional sales team", "finance")
				assert.NotContains(t, got, "was responsible")
				assert.Contains(t, got, " utilizing ")
			}
		}()
	}
	wg.Wait()
}

func TestLockedSourceSeeded(t *testing.T) {
	a := New(NewLockedSource(7))
	b := New(NewLockedSource(7))
	for i := 0; i < 20; i++ {
		s := "handled support for the regional sales team"
		assert.Equal(t, a.Improve(s, "marketing"), b.Improve(s, "marketing"))
	}
}

func TestNewDefaultsSource(t *testing.T) {
	got := New(nil).Improve("handled support for the regional sales team", "")
	assert.Contains(t, got, " handled support for the regional sales team, ")
}
