package models

import "time"

// Profile links an authenticated user to an organization.
type Profile struct {
	ProfileID      string    `db:"profile_id"`
	UserID         string    `db:"user_id"`
	OrganizationID string    `db:"organization_id"`
	DisplayName    string    `db:"display_name"`
	Role           string    `db:"role"`
	JoinedAt       time.Time `db:"joined_at"`
}

// Organization is the tenant boundary row.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
