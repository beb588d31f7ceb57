package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carenavi/sitemapd/internal/models"
)

type fakeStore struct {
	records []models.CatalogRecord
	calls   int
	err     error
}

func (f *fakeStore) Initialize() error { return nil }
func (f *fakeStore) Close() error      { return nil }

func (f *fakeStore) ListRecordsAfter(ctx context.Context, afterID string, limit int) ([]models.CatalogRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	start := 0
	for i := range f.records {
		if f.records[i].ID > afterID {
			start = i
			break
		}
		start = i + 1
	}

	end := start + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[start:end], nil
}

func makeRecords(n int) []models.CatalogRecord {
	records := make([]models.CatalogRecord, n)
	for i := range records {
		records[i] = models.CatalogRecord{
			ID:   fmt.Sprintf("id-%06d", i),
			Type: models.TypeCaregiver,
		}
	}
	return records
}

func TestLoadEligiblePagination(t *testing.T) {
	// Exactly 3 full pages. The final full page forces one extra empty
	// request to learn the catalog is exhausted.
	store := &fakeStore{records: makeRecords(30)}
	reader := NewReader(store, 10)

	eligible, err := reader.LoadEligible(context.Background())
	require.NoError(t, err)

	assert.Len(t, eligible, 30)
	assert.Equal(t, 4, store.calls)
}

func TestLoadEligiblePartialLastPage(t *testing.T) {
	store := &fakeStore{records: makeRecords(25)}
	reader := NewReader(store, 10)

	eligible, err := reader.LoadEligible(context.Background())
	require.NoError(t, err)

	assert.Len(t, eligible, 25)
	assert.Equal(t, 3, store.calls)
}

func TestLoadEligibleFiltersInProcess(t *testing.T) {
	falseVal := false
	trueVal := true

	records := []models.CatalogRecord{
		{ID: "a", Type: models.TypeCaregiver},
		{ID: "b", Type: models.TypeAgency, Visible: &falseVal},
		{ID: "c", Type: models.TypeCaregiver, Banned: &trueVal},
		{ID: "d", Type: models.TypeCaregiver, Admin: &trueVal},
		{ID: "e", Type: "editor"},
		{ID: "f", Type: models.TypeAgency},
	}

	store := &fakeStore{records: records}
	reader := NewReader(store, 10)

	eligible, err := reader.LoadEligible(context.Background())
	require.NoError(t, err)

	require.Len(t, eligible, 2)
	assert.Equal(t, "a", eligible[0].ID)
	assert.Equal(t, "f", eligible[1].ID)
}

func TestLoadEligibleStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	reader := NewReader(store, 10)

	_, err := reader.LoadEligible(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewReaderDefaultPageSize(t *testing.T) {
	reader := NewReader(&fakeStore{}, 0)
	assert.Equal(t, DefaultPageSize, reader.pageSize)
}
