package storage

import (
	"context"

	"github.com/carenavi/sitemapd/internal/models"
)

// CatalogStore reads provider records from the content store. The store
// is owned by the CMS; this service only ever reads.
//
// ListRecordsAfter returns up to limit records whose id sorts strictly
// after afterID, ordered by id. An empty afterID starts from the
// beginning. The id ordering is the pagination cursor, so it must be
// total and stable between calls.
type CatalogStore interface {
	Initialize() error
	Close() error

	ListRecordsAfter(ctx context.Context, afterID string, limit int) ([]models.CatalogRecord, error)
}
