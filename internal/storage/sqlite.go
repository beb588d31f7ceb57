package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/carenavi/sitemapd/internal/models"
)

// SQLiteStore backs local and single-node deployments; the schema
// mirrors the Postgres store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS catalog_records (
            id TEXT PRIMARY KEY,
            type TEXT NOT NULL,
            country TEXT,
            is_visible BOOLEAN,
            is_approved BOOLEAN,
            is_banned BOOLEAN,
            is_admin BOOLEAN,
            slug TEXT,
            display_name TEXT NOT NULL DEFAULT '',
            updated_at DATETIME
        )`,
		`CREATE INDEX IF NOT EXISTS idx_catalog_records_type ON catalog_records(type)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *SQLiteStore) ListRecordsAfter(ctx context.Context, afterID string, limit int) ([]models.CatalogRecord, error) {
	query := `
        SELECT id, type, country, is_visible, is_approved, is_banned, is_admin, slug, display_name, updated_at
        FROM catalog_records
        WHERE id > ?
        ORDER BY id
        LIMIT ?
    `

	rows, err := s.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CatalogRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
