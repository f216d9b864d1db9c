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

// PgxProfileRepository implements profile lookups against PostgreSQL.
type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for profile data.
func newPgxProfileRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func toDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:      m.ProfileID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		DisplayName:    m.DisplayName,
		Role:           domain.ProfileRole(m.Role),
		JoinedAt:       m.JoinedAt,
	}
}

// FindProfileByUserID retrieves the profile for an identity subject.
func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, user_id, organization_id, display_name, role, joined_at
		FROM profiles
		WHERE user_id = $1;
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	var m models.Profile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.ProfileID,
		&m.UserID,
		&m.OrganizationID,
		&m.DisplayName,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapStoreErr(err, fmt.Sprintf("failed to find profile for user %s", userID))
	}

	profile := toDomainProfile(m)
	return &profile, nil
}
