package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	"github.com/brokerops/commission_console/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAgentRepository implements read-only agent lookups against PostgreSQL.
type PgxAgentRepository struct {
	BaseRepository
}

// newPgxAgentRepository creates a new repository for agent data.
func newPgxAgentRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.AgentRepositoryFacade {
	return &PgxAgentRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.AgentRepositoryFacade = (*PgxAgentRepository)(nil)

func toDomainAgent(m models.Agent) domain.Agent {
	return domain.Agent{
		AgentID:        m.AgentID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// FindAgentByID retrieves an agent scoped to the organization.
func (r *PgxAgentRepository) FindAgentByID(ctx context.Context, organizationID, agentID string) (*domain.Agent, error) {
	query := `
		SELECT agent_id, organization_id, name, email, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM agents
		WHERE organization_id = $1 AND agent_id = $2;
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	var m models.Agent
	err := r.Pool.QueryRow(ctx, query, organizationID, agentID).Scan(
		&m.AgentID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapStoreErr(err, fmt.Sprintf("failed to find agent %s", agentID))
	}

	agent := toDomainAgent(m)
	return &agent, nil
}

// FindAgentNamesByIDs returns a map of agentID to display name for the given
// IDs, scoped to the organization.
func (r *PgxAgentRepository) FindAgentNamesByIDs(ctx context.Context, organizationID string, agentIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(agentIDs))
	if len(agentIDs) == 0 {
		return names, nil
	}

	query := `
		SELECT agent_id, name
		FROM agents
		WHERE organization_id = $1 AND agent_id = ANY($2);
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, query, organizationID, agentIDs)
	if err != nil {
		return nil, mapStoreErr(err, "failed to query agent names")
	}
	defer rows.Close()

	for rows.Next() {
		var agentID, name string
		if err := rows.Scan(&agentID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan agent name row: %w", err)
		}
		names[agentID] = name
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreErr(err, "error iterating agent name rows")
	}

	return names, nil
}
