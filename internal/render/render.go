// Package render builds the static output PolicyRadar publishes after each
// run (C12): an HTML index, a feed health dashboard, an about page, and a
// machine-readable JSON export (spec §6).
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"policyradar/internal/domain/entity"
	"policyradar/internal/feedhealth"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// IndexData feeds the index.html template.
type IndexData struct {
	GeneratedAt time.Time
	Articles    []*entity.Article
	Categories  []string
	Sources     []string
}

// WriteIndex renders the article listing page.
func WriteIndex(w io.Writer, data IndexData) error {
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// HealthData feeds the health dashboard template.
type HealthData struct {
	GeneratedAt time.Time
	Feeds       []feedhealth.Report
}

// WriteHealthDashboard renders the per-feed health page.
func WriteHealthDashboard(w io.Writer, data HealthData) error {
	if err := templates.ExecuteTemplate(w, "health.html", data); err != nil {
		return fmt.Errorf("render health dashboard: %w", err)
	}
	return nil
}

// WriteAbout renders the static about page.
func WriteAbout(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "about.html", nil); err != nil {
		return fmt.Errorf("render about: %w", err)
	}
	return nil
}

// Export is the JSON document written to the --export path, and to
// export.json in the output directory after each run (spec §6):
//
//	{ generated, total_articles, articles, categories, sources }
type Export struct {
	Generated     time.Time         `json:"generated"`
	TotalArticles int               `json:"total_articles"`
	Articles      []*entity.Article `json:"articles"`
	Categories    []string          `json:"categories"`
	Sources       []string          `json:"sources"`
}

// WriteJSON writes the structured export document.
func WriteJSON(w io.Writer, articles []*entity.Article, categories, sources []string, generated time.Time) error {
	export := Export{
		Generated:     generated,
		TotalArticles: len(articles),
		Articles:      articles,
		Categories:    categories,
		Sources:       sources,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}
