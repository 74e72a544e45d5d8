package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyradar/internal/domain/entity"
)

func TestNew_SeedsCuratedSources(t *testing.T) {
	r := New(nil)
	assert.Greater(t, r.Count(), 150, "curated list should approach the spec's ~200-entry target")
}

func TestNew_DropsInvalidSources(t *testing.T) {
	r := New(nil)
	for _, s := range r.All() {
		assert.NoError(t, s.Validate(), "registry.New must filter out sources that fail validation")
	}
}

func TestIsBlacklisted_MatchesBySubstring(t *testing.T) {
	assert.True(t, IsBlacklisted("Totally Legit Content Farm Daily"))
	assert.True(t, IsBlacklisted("CLICKBAIT Times"))
	assert.False(t, IsBlacklisted("The Hindu National"))
}

func TestListSources_ExcludesBlacklisted(t *testing.T) {
	r := NewWithSources([]*entity.Source{
		{Name: "A", URL: "https://a.example.com/rss", DefaultCategory: "Policy News"},
		{Name: "B Content Farm", URL: "https://b.example.com/rss", DefaultCategory: "Policy News"},
	})

	got := r.ListSources()
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestAll_IncludesBlacklisted(t *testing.T) {
	r := NewWithSources([]*entity.Source{
		{Name: "A Clickbait Network", URL: "https://a.example.com/rss", DefaultCategory: "Policy News"},
	})

	assert.Len(t, r.All(), 1)
	assert.Empty(t, r.ListSources())
}

func TestByCategory_GroupsActiveSourcesOnly(t *testing.T) {
	r := NewWithSources([]*entity.Source{
		{Name: "A", URL: "https://a.example.com/rss", DefaultCategory: "Economic Policy"},
		{Name: "B Content Farm", URL: "https://b.example.com/rss", DefaultCategory: "Economic Policy"},
		{Name: "C", URL: "https://c.example.com/rss", DefaultCategory: "Technology Policy"},
	})

	grouped := r.ByCategory()
	assert.Len(t, grouped["Economic Policy"], 1)
	assert.Len(t, grouped["Technology Policy"], 1)
}

func TestGet_FindsByExactName(t *testing.T) {
	r := NewWithSources([]*entity.Source{
		{Name: "Press Information Bureau", URL: "https://pib.gov.in/rss.aspx", DefaultCategory: "Policy News"},
	})
	s, err := r.Get("Press Information Bureau")
	require.NoError(t, err)
	assert.Equal(t, "https://pib.gov.in/rss.aspx", s.URL)
}

func TestGet_UnknownNameReturnsErrNotFound(t *testing.T) {
	r := NewWithSources(nil)
	_, err := r.Get("Nonexistent Gazette")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestCuratedSources_AllHaveNameURLAndCategory(t *testing.T) {
	for _, s := range curatedSources() {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.URL)
		assert.NotEmpty(t, s.DefaultCategory)
	}
}

func TestCuratedSources_CoverGovernmentAndNonGovernment(t *testing.T) {
	var gov, nonGov int
	for _, s := range curatedSources() {
		if entity.IsGovernmentSource(s.Name, s.URL) {
			gov++
		} else {
			nonGov++
		}
	}
	assert.Greater(t, gov, 0, "expected at least one recognized government source")
	assert.Greater(t, nonGov, 0, "expected at least one non-government source")
}
