package services

import (
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
)

// NewContainer creates a new service container with properly initialized
// dependencies. The tenant service comes first since everything else
// resolves its scope through it.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Tenant = NewTenantService(repos.ProfileRepo)
	container.Commission = NewCommissionService(repos.CommissionRepo, repos.AgentRepo, container.Tenant)
	container.Stats = NewStatsService(repos.CommissionRepo, container.Tenant)

	return container
}
