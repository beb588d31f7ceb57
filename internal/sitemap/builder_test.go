package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carenavi/sitemapd/internal/geo"
	"github.com/carenavi/sitemapd/internal/models"
	"github.com/carenavi/sitemapd/internal/urls"
)

func newTestBuilder() *Builder {
	b := NewBuilder(
		geo.NewResolver(),
		urls.NewBuilder("https://www.carenavi.com"),
		"https://sitemaps.carenavi.com",
		[]string{"en", "fr"},
		[]string{"es", "de"},
		[]models.StaticRoute{
			{Path: "/", Priority: 1.0, ChangeFreq: models.FreqDaily},
			{Path: "/search", RouteKey: "search", Priority: 0.9, ChangeFreq: models.FreqDaily},
		},
	)
	b.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return b
}

func findFile(t *testing.T, result *Result, name string) models.SitemapFile {
	t.Helper()
	for _, f := range result.Files {
		if f.FileName == name {
			return f
		}
	}
	t.Fatalf("file %s not generated", name)
	return models.SitemapFile{}
}

func TestBuildAllCounts(t *testing.T) {
	b := newTestBuilder()

	result := b.BuildAll(nil)

	assert.Equal(t, 4, result.Level1Count)
	assert.Equal(t, 2, result.Level2Count)
	assert.Len(t, result.Files, 7)
	assert.Empty(t, result.Errors)
}

func TestBuildAllEmptyCatalogStillEmitsStaticRoutes(t *testing.T) {
	b := newTestBuilder()

	result := b.BuildAll(nil)

	file := findFile(t, result, "sitemap-en-es.xml.gz")
	content := string(file.Content)
	assert.Contains(t, content, "<loc>https://www.carenavi.com/en-es</loc>")
	assert.Contains(t, content, "<loc>https://www.carenavi.com/en-es/search</loc>")
}

func TestBuildAllRecordPlacement(t *testing.T) {
	b := newTestBuilder()

	records := []models.CatalogRecord{
		{
			ID:          "abc123",
			Type:        models.TypeCaregiver,
			CountryRaw:  "Espagne",
			Slug:        "maria-garcia",
			DisplayName: "María García",
		},
	}

	result := b.BuildAll(records)
	require.Empty(t, result.Errors)

	// Level 1 carries the record in every locale pair, regardless of the
	// record's own country.
	frES := string(findFile(t, result, "sitemap-fr-es.xml.gz").Content)
	assert.Contains(t, frES, "/fr-es/aide-a-domicile/maria-garcia-abc123")

	enDE := string(findFile(t, result, "sitemap-en-de.xml.gz").Content)
	assert.Contains(t, enDE, "/en-de/caregiver/maria-garcia-abc123")

	// Level 2 only lists the record under its resolved country, once per
	// language.
	countryES := string(findFile(t, result, "sitemap-country-es.xml.gz").Content)
	assert.Contains(t, countryES, "/en-es/caregiver/maria-garcia-abc123")
	assert.Contains(t, countryES, "/fr-es/aide-a-domicile/maria-garcia-abc123")

	countryDE := string(findFile(t, result, "sitemap-country-de.xml.gz").Content)
	assert.NotContains(t, countryDE, "maria-garcia-abc123")
}

func TestBuildAllRecordAlternates(t *testing.T) {
	b := newTestBuilder()

	records := []models.CatalogRecord{
		{ID: "abc123", Type: models.TypeCaregiver, CountryRaw: "es", Slug: "maria"},
	}

	result := b.BuildAll(records)

	enES := string(findFile(t, result, "sitemap-en-es.xml.gz").Content)
	assert.Contains(t, enES, `hreflang="fr"`)
	assert.Contains(t, enES, "/fr-es/aide-a-domicile/maria-abc123")
}

func TestBuildAllIndexCoversGeneratedFiles(t *testing.T) {
	b := newTestBuilder()

	result := b.BuildAll(nil)

	index := string(findFile(t, result, "sitemap-index.xml.gz").Content)
	assert.Equal(t, "global", findFile(t, result, "sitemap-index.xml.gz").RelativePath)

	assert.Contains(t, index, "<loc>https://sitemaps.carenavi.com/language-country/sitemap-en-es.xml.gz</loc>")
	assert.Contains(t, index, "<loc>https://sitemaps.carenavi.com/country/sitemap-country-de.xml.gz</loc>")
	assert.NotContains(t, index, "sitemap-index.xml.gz</loc>")

	// 4 level-1 files + 2 level-2 files, never the index itself.
	assert.Equal(t, 6, strings.Count(index, "<sitemap>"))
}

func TestBuildAllIsRepeatable(t *testing.T) {
	b := newTestBuilder()

	updated := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.CatalogRecord{
		{ID: "abc123", Type: models.TypeCaregiver, CountryRaw: "Espagne", Slug: "maria-garcia"},
		{ID: "def456", Type: models.TypeAgency, CountryRaw: "de", Slug: "sunrise-care", UpdatedAt: &updated},
	}

	first := b.BuildAll(records)
	second := b.BuildAll(records)

	require.Empty(t, first.Errors)
	require.Empty(t, second.Errors)
	require.Len(t, second.Files, len(first.Files))

	// Unchanged input must reproduce the exact same tree, file for file
	// and byte for byte.
	for i := range first.Files {
		assert.Equal(t, first.Files[i].RelativePath, second.Files[i].RelativePath)
		assert.Equal(t, first.Files[i].FileName, second.Files[i].FileName)
		assert.Equal(t, first.Files[i].Content, second.Files[i].Content,
			"content of %s differs between runs", first.Files[i].FileName)
	}
}

func TestBuildAllLastMod(t *testing.T) {
	b := newTestBuilder()

	updated := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.CatalogRecord{
		{ID: "r1", Type: models.TypeAgency, CountryRaw: "de", UpdatedAt: &updated},
	}

	result := b.BuildAll(records)

	enDE := string(findFile(t, result, "sitemap-en-de.xml.gz").Content)
	assert.Contains(t, enDE, "<lastmod>2026-05-01</lastmod>")
	assert.Contains(t, enDE, "<lastmod>2026-08-30</lastmod>")
}
