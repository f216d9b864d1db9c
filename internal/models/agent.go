package models

// Agent is a real-estate agent row; read by the ledger for display enrichment only.
type Agent struct {
	AgentID        string `db:"agent_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
