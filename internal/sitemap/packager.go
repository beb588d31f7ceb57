package sitemap

import (
	"bytes"
	"compress/gzip"
	"fmt"

	"github.com/carenavi/sitemapd/internal/models"
)

// Pack wraps an XML document into a SitemapFile, compressing a copy to
// record the compressed size. The uncompressed content is passed through
// untouched; the persistence layer does its own compression when
// writing the .gz artifact, this size only feeds the run summary.
func Pack(relativePath, fileName string, xmlContent []byte) (models.SitemapFile, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(xmlContent); err != nil {
		return models.SitemapFile{}, fmt.Errorf("failed to compress %s: %w", fileName, err)
	}
	if err := zw.Close(); err != nil {
		return models.SitemapFile{}, fmt.Errorf("failed to compress %s: %w", fileName, err)
	}

	return models.SitemapFile{
		RelativePath:   relativePath,
		FileName:       fileName,
		Content:        xmlContent,
		CompressedSize: buf.Len(),
	}, nil
}
