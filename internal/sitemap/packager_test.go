package sitemap

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRecordsCompressedSize(t *testing.T) {
	content := []byte(strings.Repeat("<url><loc>https://example.com</loc></url>\n", 100))

	file, err := Pack("language-country", "sitemap-en-us.xml.gz", content)
	require.NoError(t, err)

	assert.Equal(t, "language-country", file.RelativePath)
	assert.Equal(t, "sitemap-en-us.xml.gz", file.FileName)
	assert.Greater(t, file.CompressedSize, 0)
	assert.Less(t, file.CompressedSize, len(content))
}

func TestPackLeavesContentUntouched(t *testing.T) {
	content := []byte("<urlset></urlset>")

	file, err := Pack("country", "sitemap-country-de.xml.gz", content)
	require.NoError(t, err)

	assert.Equal(t, content, file.Content)
}

func TestPackSizeMatchesGzipOutput(t *testing.T) {
	content := []byte("<urlset><url><loc>https://example.com</loc></url></urlset>")

	file, err := Pack("global", "sitemap-index.xml.gz", content)
	require.NoError(t, err)

	// Recompressing the recorded content must round-trip.
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(file.Content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	assert.Equal(t, buf.Len(), file.CompressedSize)

	zr, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, content, decompressed)
}
