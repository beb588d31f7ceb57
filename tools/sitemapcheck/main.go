package main

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

// sitemapcheck fetches a deployed sitemap tree and spot-checks that the
// listed pages actually exist, carry a title, and declare hreflang
// alternates matching the sitemap's own alternate entries.

type SitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Sitemaps []IndexEntry `xml:"sitemap"`
}

type IndexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Alternates []Alternate `xml:"link"`
}

type Alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

func main() {
	indexURL := flag.String("index", "https://sitemaps.carenavi.com/global/sitemap-index.xml.gz", "sitemap index URL")
	samples := flag.Int("samples", 3, "pages to spot-check per sitemap file")
	maxFiles := flag.Int("files", 2, "sitemap files to inspect from the index")
	flag.Parse()

	index, err := fetchIndex(*indexURL)
	if err != nil {
		log.Fatalf("Error fetching sitemap index: %v", err)
	}

	fmt.Printf("Index lists %d sitemap files\n\n", len(index.Sitemaps))

	for i, entry := range index.Sitemaps {
		if i >= *maxFiles {
			break
		}

		sitemap, err := fetchSitemap(entry.Loc)
		if err != nil {
			log.Printf("Error fetching sitemap %s: %v", entry.Loc, err)
			continue
		}

		fmt.Printf("=== %s: %d URLs ===\n", entry.Loc, len(sitemap.URLs))
		checkSamplePages(sitemap, *samples)
		fmt.Println()
	}
}

func checkSamplePages(sitemap *Sitemap, samples int) {
	declared := make(map[string][]Alternate, samples)

	c := colly.NewCollector(
		colly.UserAgent("carenavi-sitemapcheck/1.0"),
	)

	c.OnResponse(func(r *colly.Response) {
		fmt.Printf("  %s\n    title: %q\n", r.Request.URL, pageTitle(r.Body))

		pageAlternates := extractAlternates(r.Body)
		want := declared[r.Request.URL.String()]
		for _, alt := range want {
			if _, ok := pageAlternates[alt.Hreflang]; !ok {
				fmt.Printf("    MISSING hreflang %s (sitemap declares %s)\n", alt.Hreflang, alt.Href)
			}
		}
		fmt.Printf("    hreflang on page: %d, in sitemap: %d\n", len(pageAlternates), len(want))
	})

	c.OnError(func(r *colly.Response, err error) {
		fmt.Printf("  %s\n    FAILED: %v (status %d)\n", r.Request.URL, err, r.StatusCode)
	})

	for i := 0; i < samples && i < len(sitemap.URLs); i++ {
		entry := sitemap.URLs[i]
		declared[entry.Loc] = entry.Alternates
		if err := c.Visit(entry.Loc); err != nil {
			fmt.Printf("  %s\n    FAILED: %v\n", entry.Loc, err)
		}
	}
	c.Wait()
}

func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractAlternates walks the raw document for link rel=alternate
// elements and returns hreflang -> href.
func extractAlternates(body []byte) map[string]string {
	alternates := make(map[string]string)

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return alternates
	}

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "link" {
			if getAttr(n, "rel") == "alternate" {
				if hreflang := getAttr(n, "hreflang"); hreflang != "" {
					alternates[hreflang] = getAttr(n, "href")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)

	return alternates
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func fetchIndex(url string) (*SitemapIndex, error) {
	body, err := fetchDocument(url)
	if err != nil {
		return nil, err
	}

	var index SitemapIndex
	if err := xml.Unmarshal(body, &index); err != nil {
		return nil, err
	}

	return &index, nil
}

func fetchSitemap(url string) (*Sitemap, error) {
	body, err := fetchDocument(url)
	if err != nil {
		return nil, err
	}

	var sitemap Sitemap
	if err := xml.Unmarshal(body, &sitemap); err != nil {
		return nil, err
	}

	return &sitemap, nil
}

func fetchDocument(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	reader := resp.Body
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}

	return io.ReadAll(reader)
}
