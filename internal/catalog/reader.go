package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/carenavi/sitemapd/internal/models"
	"github.com/carenavi/sitemapd/internal/storage"
)

const DefaultPageSize = 500

// Reader loads the publishable subset of the catalog. Eligibility is
// filtered in-process rather than pushed into store queries: historical
// records often lack the boolean flags entirely, and store-side filters
// silently dropped those. Each LoadEligible call re-reads the store.
type Reader struct {
	store    storage.CatalogStore
	pageSize int
}

func NewReader(store storage.CatalogStore, pageSize int) *Reader {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Reader{store: store, pageSize: pageSize}
}

// LoadEligible pages through the store with an id cursor until a short
// page signals the end, keeping only eligible records. The full eligible
// set is accumulated because level-2 generation needs repeated passes.
func (r *Reader) LoadEligible(ctx context.Context) ([]models.CatalogRecord, error) {
	var eligible []models.CatalogRecord
	cursor := ""
	scanned := 0

	for {
		page, err := r.store.ListRecordsAfter(ctx, cursor, r.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog page after %q: %w", cursor, err)
		}

		scanned += len(page)
		for i := range page {
			if page[i].Eligible() {
				eligible = append(eligible, page[i])
			}
		}

		if len(page) < r.pageSize {
			break
		}
		cursor = page[len(page)-1].ID
	}

	log.WithFields(log.Fields{
		"scanned":  scanned,
		"eligible": len(eligible),
	}).Info("catalog loaded")

	return eligible, nil
}
