package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policyradar/internal/domain/entity"
	"policyradar/internal/feedhealth"
)

func TestWriteIndex_RendersArticles(t *testing.T) {
	var buf bytes.Buffer
	now := time.Now()
	err := WriteIndex(&buf, IndexData{
		GeneratedAt: now,
		Articles: []*entity.Article{
			{Title: "Budget announced", URL: "https://example.com/a", Source: "Test", Category: "Economic Policy", PublishedDate: &now},
		},
		Categories: []string{"Economic Policy"},
		Sources:    []string{"Test"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Budget announced")
	assert.Contains(t, buf.String(), "Economic Policy")
}

func TestWriteHealthDashboard_RendersFeeds(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHealthDashboard(&buf, HealthData{
		GeneratedAt: time.Now(),
		Feeds:       []feedhealth.Report{{URL: "https://feed.example.com", HealthScore: 0.9, IsActive: true}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "feed.example.com")
}

func TestWriteAbout_Renders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAbout(&buf))
	assert.Contains(t, buf.String(), "PolicyRadar")
}

func TestWriteJSON_MatchesExportSchema(t *testing.T) {
	var buf bytes.Buffer
	now := time.Now()
	articles := []*entity.Article{{Title: "A", URL: "https://example.com/a"}}
	require.NoError(t, WriteJSON(&buf, articles, []string{"Economic Policy"}, []string{"Test"}, now))

	var decoded Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.TotalArticles)
	assert.Equal(t, []string{"Economic Policy"}, decoded.Categories)
	assert.Equal(t, []string{"Test"}, decoded.Sources)
}
