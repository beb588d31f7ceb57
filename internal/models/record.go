package models

import "time"

// RecordType distinguishes the two kinds of publishable profiles.
type RecordType string

const (
	TypeCaregiver RecordType = "caregiver"
	TypeAgency    RecordType = "agency"
)

// CatalogRecord is a provider profile as read from the content store.
// The store is owned by the CMS; this service never writes records back.
// Boolean flags are pointers because historical records may lack them
// entirely, and absence must map to a per-field default rather than false.
type CatalogRecord struct {
	ID          string      `json:"id"`
	Type        RecordType  `json:"type"`
	CountryRaw  string      `json:"country"`
	Visible     *bool       `json:"isVisible,omitempty"`
	Approved    *bool       `json:"isApproved,omitempty"`
	Banned      *bool       `json:"isBanned,omitempty"`
	Admin       *bool       `json:"isAdmin,omitempty"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
	Slug        string      `json:"slug,omitempty"`
	DisplayName string      `json:"displayName"`
}

// IsVisible defaults to true when the flag is missing.
func (r *CatalogRecord) IsVisible() bool {
	return r.Visible == nil || *r.Visible
}

// IsBanned defaults to false when the flag is missing.
func (r *CatalogRecord) IsBanned() bool {
	return r.Banned != nil && *r.Banned
}

// IsAdmin defaults to false when the flag is missing.
func (r *CatalogRecord) IsAdmin() bool {
	return r.Admin != nil && *r.Admin
}

// IsApproved reports an explicit approval. Unlike the other flags a
// missing value counts as not approved; approval only gates the
// change-triggered regeneration path, not publication itself.
func (r *CatalogRecord) IsApproved() bool {
	return r.Approved != nil && *r.Approved
}

// Eligible reports whether the record belongs in public sitemaps.
// The predicate is evaluated in-process on every run and never persisted.
func (r *CatalogRecord) Eligible() bool {
	if r.Type != TypeCaregiver && r.Type != TypeAgency {
		return false
	}
	return r.IsVisible() && !r.IsBanned() && !r.IsAdmin()
}
