package sitemap

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carenavi/sitemapd/internal/geo"
	"github.com/carenavi/sitemapd/internal/models"
	"github.com/carenavi/sitemapd/internal/urls"
)

// Builder drives the three generation levels. One sitemap file is one
// unit of work: a failure building a file is recorded and the run moves
// on, so a bad locale never sinks the whole tree.
type Builder struct {
	resolver   *geo.Resolver
	urls       *urls.Builder
	publicBase string
	languages  []string
	countries  []string
	routes     []models.StaticRoute
	now        func() time.Time
}

// Result collects the output of one BuildAll pass. Errors holds one
// human-readable string per skipped file.
type Result struct {
	Files       []models.SitemapFile
	Level1Count int
	Level2Count int
	Errors      []string
}

// TotalSize sums the recorded compressed sizes of all generated files.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += int64(f.CompressedSize)
	}
	return total
}

func NewBuilder(resolver *geo.Resolver, urlBuilder *urls.Builder, publicBase string, languages, countries []string, routes []models.StaticRoute) *Builder {
	return &Builder{
		resolver:   resolver,
		urls:       urlBuilder,
		publicBase: publicBase,
		languages:  languages,
		countries:  countries,
		routes:     routes,
		now:        time.Now,
	}
}

// BuildAll generates every level-1 and level-2 sitemap plus the global
// index over them. Levels run strictly in sequence; the index is built
// last and covers whatever actually got generated, so a partially
// failed run still yields a usable best-effort index.
func (b *Builder) BuildAll(records []models.CatalogRecord) *Result {
	result := &Result{}

	// Resolve each record's country once; unresolved records simply
	// never match a level-2 country.
	recordCountry := make([]string, len(records))
	for i := range records {
		recordCountry[i] = b.resolver.Resolve(records[i].CountryRaw)
	}

	log.WithField("pairs", len(b.languages)*len(b.countries)).Info("building level-1 sitemaps")
	for _, lang := range b.languages {
		for _, country := range b.countries {
			name := fmt.Sprintf("sitemap-%s-%s.xml.gz", lang, country)
			file, err := b.buildFile("language-country", name, b.pairEntries(lang, country, records))
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("level1 %s-%s: %v", lang, country, err))
				continue
			}
			result.Files = append(result.Files, file)
			result.Level1Count++
		}
	}

	log.WithField("countries", len(b.countries)).Info("building level-2 sitemaps")
	for _, country := range b.countries {
		name := fmt.Sprintf("sitemap-country-%s.xml.gz", country)
		file, err := b.buildFile("country", name, b.countryEntries(country, records, recordCountry))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("level2 %s: %v", country, err))
			continue
		}
		result.Files = append(result.Files, file)
		result.Level2Count++
	}

	indexFile, err := b.buildIndex(result.Files)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("level3 index: %v", err))
	} else {
		result.Files = append(result.Files, indexFile)
	}

	return result
}

func (b *Builder) buildFile(relativePath, name string, entries []models.URLEntry) (models.SitemapFile, error) {
	xmlDoc, err := WriteURLSet(entries)
	if err != nil {
		return models.SitemapFile{}, err
	}
	return Pack(relativePath, name, xmlDoc)
}

// pairEntries builds the level-1 entry list for one language-country
// pair: every static route plus every eligible record. Records are not
// filtered by country here; the pair encodes the serving locale, not
// the record's location.
func (b *Builder) pairEntries(lang, country string, records []models.CatalogRecord) []models.URLEntry {
	today := b.today()
	entries := make([]models.URLEntry, 0, len(b.routes)+len(records))

	for _, route := range b.routes {
		entries = append(entries, models.URLEntry{
			Loc:        b.urls.StaticURL(route, lang, country),
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   formatPriority(route.Priority),
			Alternates: b.staticAlternates(route, country),
		})
	}

	for i := range records {
		record := &records[i]
		entries = append(entries, models.URLEntry{
			Loc:        b.urls.RecordURL(record, lang, country),
			LastMod:    b.lastMod(record),
			ChangeFreq: models.FreqWeekly,
			Priority:   formatPriority(0.8),
			Alternates: b.recordAlternates(record, country),
		})
	}

	return entries
}

// countryEntries builds the level-2 entry list for one country: static
// routes across every language, plus one entry per language for each
// record whose resolved country matches.
func (b *Builder) countryEntries(country string, records []models.CatalogRecord, recordCountry []string) []models.URLEntry {
	today := b.today()
	var entries []models.URLEntry

	for _, lang := range b.languages {
		for _, route := range b.routes {
			entries = append(entries, models.URLEntry{
				Loc:        b.urls.StaticURL(route, lang, country),
				LastMod:    today,
				ChangeFreq: route.ChangeFreq,
				Priority:   formatPriority(route.Priority),
			})
		}
	}

	for i := range records {
		if recordCountry[i] != country {
			continue
		}
		record := &records[i]
		for _, lang := range b.languages {
			entries = append(entries, models.URLEntry{
				Loc:        b.urls.RecordURL(record, lang, country),
				LastMod:    b.lastMod(record),
				ChangeFreq: models.FreqWeekly,
				Priority:   formatPriority(0.8),
			})
		}
	}

	return entries
}

func (b *Builder) buildIndex(files []models.SitemapFile) (models.SitemapFile, error) {
	today := b.today()
	entries := make([]models.IndexEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, models.IndexEntry{
			Loc:     fmt.Sprintf("%s/%s/%s", b.publicBase, f.RelativePath, f.FileName),
			LastMod: today,
		})
	}

	xmlDoc, err := WriteIndex(entries)
	if err != nil {
		return models.SitemapFile{}, err
	}
	return Pack("global", "sitemap-index.xml.gz", xmlDoc)
}

func (b *Builder) staticAlternates(route models.StaticRoute, country string) []models.AlternateLink {
	links := make([]models.AlternateLink, 0, len(b.languages))
	for _, altLang := range b.languages {
		links = append(links, models.AlternateLink{
			Rel:      "alternate",
			Hreflang: altLang,
			Href:     b.urls.StaticURL(route, altLang, country),
		})
	}
	return links
}

func (b *Builder) recordAlternates(record *models.CatalogRecord, country string) []models.AlternateLink {
	links := make([]models.AlternateLink, 0, len(b.languages))
	for _, altLang := range b.languages {
		links = append(links, models.AlternateLink{
			Rel:      "alternate",
			Hreflang: altLang,
			Href:     b.urls.RecordURL(record, altLang, country),
		})
	}
	return links
}

func (b *Builder) lastMod(record *models.CatalogRecord) string {
	if record.UpdatedAt != nil {
		return record.UpdatedAt.Format("2006-01-02")
	}
	return b.today()
}

func (b *Builder) today() string {
	return b.now().Format("2006-01-02")
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
