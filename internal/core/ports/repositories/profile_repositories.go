package repositories

import (
	"context"

	"github.com/brokerops/commission_console/internal/core/domain"
)

// ProfileReader defines read operations for caller profiles.
type ProfileReader interface {
	// FindProfileByUserID retrieves the profile for an identity subject.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// ProfileRepositoryFacade combines all profile repository interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
}
