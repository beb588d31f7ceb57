package models

import "encoding/xml"

const (
	SitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	XHTMLNS   = "http://www.w3.org/1999/xhtml"
)

// URLSet represents the <urlset> document of a single sitemap file.
type URLSet struct {
	XMLName  xml.Name   `xml:"urlset"`
	Xmlns    string     `xml:"xmlns,attr"`
	XmlnsXht string     `xml:"xmlns:xhtml,attr,omitempty"`
	URLs     []URLEntry `xml:"url"`
}

// URLEntry is a single <url> element.
type URLEntry struct {
	Loc        string          `xml:"loc"`
	LastMod    string          `xml:"lastmod,omitempty"`
	ChangeFreq string          `xml:"changefreq,omitempty"`
	Priority   string          `xml:"priority,omitempty"`
	Alternates []AlternateLink `xml:"xhtml:link,omitempty"`
}

// AlternateLink is an <xhtml:link rel="alternate"> element pointing at
// the same page under another language prefix.
type AlternateLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// SitemapIndex represents the <sitemapindex> document listing every
// generated sitemap file.
type SitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []IndexEntry `xml:"sitemap"`
}

// IndexEntry is a single <sitemap> element of the index.
type IndexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapFile is one generated artifact of a run. Content holds the
// uncompressed XML handed to the publisher; CompressedSize is recorded
// by the packager for size accounting in the run summary. The publisher
// compresses independently when it writes the .gz artifact.
type SitemapFile struct {
	RelativePath   string
	FileName       string
	Content        []byte
	CompressedSize int
}
