package urls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carenavi/sitemapd/internal/models"
)

func TestStaticURL(t *testing.T) {
	b := NewBuilder("https://www.carenavi.com/")

	root := models.StaticRoute{Path: "/"}
	assert.Equal(t, "https://www.carenavi.com/fr-be", b.StaticURL(root, "fr", "be"))

	search := models.StaticRoute{Path: "/search", RouteKey: "search"}
	assert.Equal(t, "https://www.carenavi.com/fr-be/recherche", b.StaticURL(search, "fr", "be"))
	assert.Equal(t, "https://www.carenavi.com/en-us/search", b.StaticURL(search, "en", "us"))

	// Only the first segment is translated.
	safety := models.StaticRoute{Path: "/help/safety", RouteKey: "help"}
	assert.Equal(t, "https://www.carenavi.com/de-at/hilfe/safety", b.StaticURL(safety, "de", "at"))
}

func TestRecordURL(t *testing.T) {
	b := NewBuilder("https://www.carenavi.com")

	record := &models.CatalogRecord{
		ID:          "abc123",
		Type:        models.TypeCaregiver,
		Slug:        "maria-garcia",
		DisplayName: "María García",
	}

	assert.Equal(t,
		"https://www.carenavi.com/es-es/cuidador/maria-garcia-abc123",
		b.RecordURL(record, "es", "es"))
}

func TestRecordURLDoesNotDuplicateID(t *testing.T) {
	b := NewBuilder("https://www.carenavi.com")

	record := &models.CatalogRecord{
		ID:   "abc123",
		Type: models.TypeAgency,
		Slug: "sunrise-care-abc123",
	}

	url := b.RecordURL(record, "en", "gb")
	assert.Equal(t, "https://www.carenavi.com/en-gb/agency/sunrise-care-abc123", url)
	assert.Equal(t, url, b.RecordURL(record, "en", "gb"))
}

func TestRecordURLDerivesSlugFromName(t *testing.T) {
	b := NewBuilder("https://www.carenavi.com")

	record := &models.CatalogRecord{
		ID:          "xyz789",
		Type:        models.TypeCaregiver,
		DisplayName: "O'Brien & Co.",
	}

	assert.Equal(t,
		"https://www.carenavi.com/en-ie/caregiver/o-brien-co-xyz789",
		b.RecordURL(record, "en", "ie"))
}

func TestRecordURLEmptySlugAndName(t *testing.T) {
	b := NewBuilder("https://www.carenavi.com")

	record := &models.CatalogRecord{ID: "id42", Type: models.TypeCaregiver}
	assert.Equal(t,
		"https://www.carenavi.com/en-us/caregiver/id42",
		b.RecordURL(record, "en", "us"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "maria-garcia", Slugify("María García"))
	assert.Equal(t, "o-brien-co", Slugify("O'Brien & Co."))
	assert.Equal(t, "francois", Slugify("  François  "))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "a1-b2", Slugify("A1 -- B2"))
}
