package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/middleware"
)

// tenantService resolves caller identities into tenant scopes.
type tenantService struct {
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.TenantSvc {
	return &tenantService{profileRepo: profileRepo}
}

var _ portssvc.TenantSvc = (*tenantService)(nil)

// ResolveContext maps the identity subject to its organization and profile.
// This is the single place tenant scope comes from; everything downstream
// receives the organization ID as an explicit argument.
func (s *tenantService) ResolveContext(ctx context.Context, userID string) (*domain.TenantContext, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		logger.Warn("Tenant resolution attempted without caller identity")
		return nil, apperrors.ErrNotAuthenticated
	}

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Caller has no profile", slog.String("user_id", userID))
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error("Failed to look up caller profile", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve tenant context: %w", err)
	}

	return &domain.TenantContext{
		OrganizationID: profile.OrganizationID,
		ProfileID:      profile.ProfileID,
		Role:           profile.Role,
	}, nil
}
