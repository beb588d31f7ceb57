package sitemap

import (
	"bytes"
	"encoding/xml"

	"github.com/carenavi/sitemapd/internal/models"
)

// WriteURLSet serializes URL entries into a sitemap XML document.
// encoding/xml escapes every character datum, so raw &, <, >, quotes in
// locations or slugs can never reach the output unescaped.
func WriteURLSet(entries []models.URLEntry) ([]byte, error) {
	set := models.URLSet{
		Xmlns: models.SitemapNS,
		URLs:  entries,
	}
	for _, e := range entries {
		if len(e.Alternates) > 0 {
			set.XmlnsXht = models.XHTMLNS
			break
		}
	}

	return marshalDoc(set)
}

// WriteIndex serializes sitemap locations into a sitemap-index document.
func WriteIndex(entries []models.IndexEntry) ([]byte, error) {
	index := models.SitemapIndex{
		Xmlns:    models.SitemapNS,
		Sitemaps: entries,
	}

	return marshalDoc(index)
}

func marshalDoc(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
