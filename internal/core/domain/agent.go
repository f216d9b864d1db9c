package domain

// Agent is a real-estate agent belonging to an organization. The ledger only
// reads agents for display enrichment and filter validation; agent management
// screens live elsewhere.
type Agent struct {
	AgentID        string `json:"agentID"` // Primary Key (UUID)
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
