package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carenavi/sitemapd/internal/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS catalog_records (
            id VARCHAR(64) PRIMARY KEY,
            type VARCHAR(32) NOT NULL,
            country TEXT,
            is_visible BOOLEAN,
            is_approved BOOLEAN,
            is_banned BOOLEAN,
            is_admin BOOLEAN,
            slug VARCHAR(255),
            display_name VARCHAR(255) NOT NULL DEFAULT '',
            updated_at TIMESTAMP
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

func (s *PostgresStore) ListRecordsAfter(ctx context.Context, afterID string, limit int) ([]models.CatalogRecord, error) {
	query := `
        SELECT id, type, country, is_visible, is_approved, is_banned, is_admin, slug, display_name, updated_at
        FROM catalog_records
        WHERE id > $1
        ORDER BY id
        LIMIT $2
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

func scanRecord(rows *sql.Rows) (models.CatalogRecord, error) {
	var record models.CatalogRecord
	var recordType string
	var country, slug, displayName sql.NullString
	var visible, approved, banned, admin sql.NullBool
	var updatedAt sql.NullTime

	err := rows.Scan(
		&record.ID,
		&recordType,
		&country,
		&visible,
		&approved,
		&banned,
		&admin,
		&slug,
		&displayName,
		&updatedAt,
	)
	if err != nil {
		return record, err
	}

	record.Type = models.RecordType(recordType)
	record.CountryRaw = country.String
	record.Slug = slug.String
	record.DisplayName = displayName.String
	if visible.Valid {
		record.Visible = &visible.Bool
	}
	if approved.Valid {
		record.Approved = &approved.Bool
	}
	if banned.Valid {
		record.Banned = &banned.Bool
	}
	if admin.Valid {
		record.Admin = &admin.Bool
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		record.UpdatedAt = &t
	}

	return record, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
