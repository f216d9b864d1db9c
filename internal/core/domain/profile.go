package domain

import "time"

// ProfileRole defines the roles a profile can hold within its organization.
// Route-level gating on these roles belongs to the HTTP layer; the ledger core
// only relies on the tenant scope.
type ProfileRole string

const (
	RoleAdmin   ProfileRole = "ADMIN"
	RoleManager ProfileRole = "MANAGER"
	RoleAgent   ProfileRole = "AGENT"
)

// Profile links an authenticated user to exactly one organization.
type Profile struct {
	ProfileID      string      `json:"profileID"` // Primary Key (UUID)
	UserID         string      `json:"userID"`    // Identity subject from the session provider
	OrganizationID string      `json:"organizationID"`
	DisplayName    string      `json:"displayName"`
	Role           ProfileRole `json:"role"`
	JoinedAt       time.Time   `json:"joinedAt"`
}

// TenantContext is the resolved scope for a single operation. Every
// repository call carries the OrganizationID explicitly; there is no ambient
// tenant state anywhere in the core.
type TenantContext struct {
	OrganizationID string
	ProfileID      string
	Role           ProfileRole
}

// Organization is the tenant boundary. Provisioning is out of scope; the type
// exists for lookups and referential integrity.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
