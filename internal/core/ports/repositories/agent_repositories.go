package repositories

import (
	"context"

	"github.com/brokerops/commission_console/internal/core/domain"
)

// AgentReader defines read-only operations against agent data. The ledger
// uses these for reference validation and display enrichment only.
type AgentReader interface {
	// FindAgentByID retrieves an agent scoped to the organization.
	FindAgentByID(ctx context.Context, organizationID, agentID string) (*domain.Agent, error)

	// FindAgentNamesByIDs returns a map of agentID to display name for the
	// given IDs, scoped to the organization. Unknown IDs are simply absent.
	FindAgentNamesByIDs(ctx context.Context, organizationID string, agentIDs []string) (map[string]string, error)
}

// AgentRepositoryFacade combines all agent repository interfaces.
type AgentRepositoryFacade interface {
	AgentReader
}
