package publish

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carenavi/sitemapd/internal/models"
)

func TestPublishWritesGzippedArtifact(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalPublisher(dir)

	content := []byte(`<?xml version="1.0" encoding="UTF-8"?><urlset></urlset>`)
	err := p.Publish(models.SitemapFile{
		RelativePath: "language-country",
		FileName:     "sitemap-en-us.xml.gz",
		Content:      content,
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "language-country", "sitemap-en-us.xml.gz"))
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.Equal(t, content, decompressed)
}

func TestPublishOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalPublisher(dir)

	file := models.SitemapFile{
		RelativePath: "global",
		FileName:     "sitemap-index.xml.gz",
		Content:      []byte("first"),
	}
	require.NoError(t, p.Publish(file))

	file.Content = []byte("second")
	require.NoError(t, p.Publish(file))

	f, err := os.Open(filepath.Join(dir, "global", "sitemap-index.xml.gz"))
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)

	assert.Equal(t, []byte("second"), decompressed)
}
