package urls

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/carenavi/sitemapd/internal/i18n"
	"github.com/carenavi/sitemapd/internal/models"
)

// Builder composes fully-qualified site URLs. BaseURL carries no
// trailing slash, e.g. "https://www.carenavi.com".
type Builder struct {
	BaseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{BaseURL: strings.TrimRight(baseURL, "/")}
}

// StaticURL builds the URL of a translated marketing route under the
// given locale. When the route declares a RouteKey its first path
// segment is replaced by the localized slug; remaining segments are
// kept verbatim.
func (b *Builder) StaticURL(route models.StaticRoute, languageCode, countryCode string) string {
	path := route.Path
	if route.RouteKey != "" {
		segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
		segments[0] = i18n.Translate(route.RouteKey, languageCode)
		path = "/" + strings.Join(segments, "/")
	}
	if path == "/" {
		return fmt.Sprintf("%s/%s-%s", b.BaseURL, languageCode, countryCode)
	}
	return fmt.Sprintf("%s/%s-%s%s", b.BaseURL, languageCode, countryCode, path)
}

// RecordURL builds the profile URL of a catalog record under the given
// locale: /{lang}-{country}/{typeSlug}/{contentSlug}. The record id is
// appended to the content slug unless the slug already contains it, so
// rebuilding from an already-suffixed stored slug stays stable.
func (b *Builder) RecordURL(record *models.CatalogRecord, languageCode, countryCode string) string {
	typeSlug := i18n.Translate(string(record.Type), languageCode)

	slug := record.Slug
	if slug == "" {
		slug = Slugify(record.DisplayName)
	}
	if !strings.Contains(slug, record.ID) {
		if slug == "" {
			slug = record.ID
		} else {
			slug = slug + "-" + record.ID
		}
	}

	return fmt.Sprintf("%s/%s-%s/%s/%s", b.BaseURL, languageCode, countryCode, typeSlug, slug)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a display name: lowercase,
// diacritics stripped, non-alphanumeric runs collapsed to single
// hyphens, leading and trailing hyphens trimmed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var sb strings.Builder
	lastHyphen := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(sb.String(), "-")
}
