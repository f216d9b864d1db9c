package pgsql

import (
	"time"

	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires up all pgsql-backed repositories. A
// non-positive queryTimeout falls back to DefaultQueryTimeout.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}

	return portsrepo.RepositoryProvider{
		CommissionRepo: newPgxCommissionRepository(dbPool, queryTimeout),
		ProfileRepo:    newPgxProfileRepository(dbPool, queryTimeout),
		AgentRepo:      newPgxAgentRepository(dbPool, queryTimeout),
	}
}
