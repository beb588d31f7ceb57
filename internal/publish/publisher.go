package publish

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carenavi/sitemapd/internal/models"
)

// Publisher persists generated sitemap files so the CDN layer can serve
// them. Implementations receive the uncompressed XML and own the final
// on-the-wire encoding.
type Publisher interface {
	Publish(file models.SitemapFile) error
}

// LocalPublisher writes .xml.gz artifacts under a base directory,
// mirroring the relative-path layout the public base URL serves.
type LocalPublisher struct {
	baseDir string
}

func NewLocalPublisher(baseDir string) *LocalPublisher {
	return &LocalPublisher{baseDir: baseDir}
}

func (p *LocalPublisher) Publish(file models.SitemapFile) error {
	dir := filepath.Join(p.baseDir, file.RelativePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, file.FileName)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	zw := gzip.NewWriter(out)
	if _, err := zw.Write(file.Content); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return out.Close()
}
