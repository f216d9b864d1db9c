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

// PgxCommissionRepository is the store adapter for the commission ledger.
// Every query carries the organization filter; there is no cross-tenant read
// path at this layer.
type PgxCommissionRepository struct {
	BaseRepository
}

// newPgxCommissionRepository creates a new repository for commission data.
func newPgxCommissionRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.CommissionRepositoryFacade {
	return &PgxCommissionRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

const commissionColumns = `
	commission_id, organization_id, agent_id, transaction_type, property_id, lead_id,
	deal_description, sale_amount, commission_rate, commission_amount, split_percentage,
	final_commission, transaction_date, expected_payment_date, notes, status,
	payment_status, approval_date, approved_by, dispute_reason, payment_amount,
	payment_method, payment_reference, payment_date, version,
	created_at, created_by, last_updated_at, last_updated_by`

// Helper to convert domain.CommissionRecord to models.Commission for DB storage.
func toModelCommission(d domain.CommissionRecord) models.Commission {
	return models.Commission{
		CommissionID:        d.CommissionID,
		OrganizationID:      d.OrganizationID,
		AgentID:             d.AgentID,
		TransactionType:     string(d.TransactionType),
		PropertyID:          d.PropertyID,
		LeadID:              d.LeadID,
		DealDescription:     d.DealDescription,
		SaleAmount:          d.SaleAmount,
		CommissionRate:      d.CommissionRate,
		CommissionAmount:    d.CommissionAmount,
		SplitPercentage:     d.SplitPercentage,
		FinalCommission:     d.FinalCommission,
		TransactionDate:     d.TransactionDate,
		ExpectedPaymentDate: d.ExpectedPaymentDate,
		Notes:               d.Notes,
		Status:              string(d.Status),
		PaymentStatus:       string(d.PaymentStatus),
		ApprovalDate:        d.ApprovalDate,
		ApprovedBy:          d.ApprovedBy,
		DisputeReason:       d.DisputeReason,
		PaymentAmount:       d.PaymentAmount,
		PaymentMethod:       d.PaymentMethod,
		PaymentReference:    d.PaymentReference,
		PaymentDate:         d.PaymentDate,
		Version:             d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Commission from DB to domain.CommissionRecord.
func toDomainCommission(m models.Commission) domain.CommissionRecord {
	return domain.CommissionRecord{
		CommissionID:        m.CommissionID,
		OrganizationID:      m.OrganizationID,
		AgentID:             m.AgentID,
		TransactionType:     domain.TransactionType(m.TransactionType),
		PropertyID:          m.PropertyID,
		LeadID:              m.LeadID,
		DealDescription:     m.DealDescription,
		SaleAmount:          m.SaleAmount,
		CommissionRate:      m.CommissionRate,
		CommissionAmount:    m.CommissionAmount,
		SplitPercentage:     m.SplitPercentage,
		FinalCommission:     m.FinalCommission,
		TransactionDate:     m.TransactionDate,
		ExpectedPaymentDate: m.ExpectedPaymentDate,
		Notes:               m.Notes,
		Status:              domain.CommissionStatus(m.Status),
		PaymentStatus:       domain.PaymentStatus(m.PaymentStatus),
		ApprovalDate:        m.ApprovalDate,
		ApprovedBy:          m.ApprovedBy,
		DisputeReason:       m.DisputeReason,
		PaymentAmount:       m.PaymentAmount,
		PaymentMethod:       m.PaymentMethod,
		PaymentReference:    m.PaymentReference,
		PaymentDate:         m.PaymentDate,
		Version:             m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// scanCommission scans a full commission row in commissionColumns order.
func scanCommission(row pgx.Row) (*models.Commission, error) {
	var m models.Commission
	err := row.Scan(
		&m.CommissionID,
		&m.OrganizationID,
		&m.AgentID,
		&m.TransactionType,
		&m.PropertyID,
		&m.LeadID,
		&m.DealDescription,
		&m.SaleAmount,
		&m.CommissionRate,
		&m.CommissionAmount,
		&m.SplitPercentage,
		&m.FinalCommission,
		&m.TransactionDate,
		&m.ExpectedPaymentDate,
		&m.Notes,
		&m.Status,
		&m.PaymentStatus,
		&m.ApprovalDate,
		&m.ApprovedBy,
		&m.DisputeReason,
		&m.PaymentAmount,
		&m.PaymentMethod,
		&m.PaymentReference,
		&m.PaymentDate,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// appendFilters adds the optional filter clauses to a WHERE that already
// contains the mandatory organization predicate as $1.
func appendFilters(query string, args []any, filters portsrepo.CommissionFilters) (string, []any) {
	idx := len(args) + 1
	if filters.AgentID != nil {
		query += fmt.Sprintf(" AND agent_id = $%d", idx)
		args = append(args, *filters.AgentID)
		idx++
	}
	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, string(*filters.Status))
		idx++
	}
	if filters.StartDate != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", idx)
		args = append(args, *filters.StartDate)
		idx++
	}
	if filters.EndDate != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", idx)
		args = append(args, *filters.EndDate)
	}
	return query, args
}

// SaveCommission inserts a new ledger entry.
func (r *PgxCommissionRepository) SaveCommission(ctx context.Context, record domain.CommissionRecord) error {
	m := toModelCommission(record)

	query := `
		INSERT INTO commissions (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29);
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	_, err := r.Pool.Exec(ctx, query,
		m.CommissionID,
		m.OrganizationID,
		m.AgentID,
		m.TransactionType,
		m.PropertyID,
		m.LeadID,
		m.DealDescription,
		m.SaleAmount,
		m.CommissionRate,
		m.CommissionAmount,
		m.SplitPercentage,
		m.FinalCommission,
		m.TransactionDate,
		m.ExpectedPaymentDate,
		m.Notes,
		m.Status,
		m.PaymentStatus,
		m.ApprovalDate,
		m.ApprovedBy,
		m.DisputeReason,
		m.PaymentAmount,
		m.PaymentMethod,
		m.PaymentReference,
		m.PaymentDate,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapStoreErr(err, fmt.Sprintf("failed to insert commission %s", m.CommissionID))
	}
	return nil
}

// FindCommissionByID retrieves a single entry scoped to the organization.
// A row belonging to another organization is indistinguishable from a
// missing one.
func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, organizationID, commissionID string) (*domain.CommissionRecord, error) {
	query := `SELECT ` + commissionColumns + `
		FROM commissions
		WHERE organization_id = $1 AND commission_id = $2;
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	m, err := scanCommission(r.Pool.QueryRow(ctx, query, organizationID, commissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapStoreErr(err, fmt.Sprintf("failed to find commission %s", commissionID))
	}

	record := toDomainCommission(*m)
	return &record, nil
}

// ListCommissions retrieves the organization's entries matching the filters,
// newest first.
func (r *PgxCommissionRepository) ListCommissions(ctx context.Context, organizationID string, filters portsrepo.CommissionFilters) ([]domain.CommissionRecord, error) {
	query := `SELECT ` + commissionColumns + `
		FROM commissions
		WHERE organization_id = $1`
	args := []any{organizationID}
	query, args = appendFilters(query, args, filters)
	query += ` ORDER BY created_at DESC, commission_id DESC;`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreErr(err, "failed to query commissions")
	}
	defer rows.Close()

	records := []domain.CommissionRecord{}
	for rows.Next() {
		m, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission row: %w", err)
		}
		records = append(records, toDomainCommission(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreErr(err, "error iterating commission rows")
	}

	return records, nil
}

// ListCommissionSummaries retrieves only the (status, finalCommission)
// projection the aggregator needs.
func (r *PgxCommissionRepository) ListCommissionSummaries(ctx context.Context, organizationID string, filters portsrepo.CommissionFilters) ([]domain.CommissionSummary, error) {
	query := `SELECT status, final_commission
		FROM commissions
		WHERE organization_id = $1`
	args := []any{organizationID}
	query, args = appendFilters(query, args, filters)

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStoreErr(err, "failed to query commission summaries")
	}
	defer rows.Close()

	summaries := []domain.CommissionSummary{}
	for rows.Next() {
		var status string
		var summary domain.CommissionSummary
		if err := rows.Scan(&status, &summary.FinalCommission); err != nil {
			return nil, fmt.Errorf("failed to scan commission summary row: %w", err)
		}
		summary.Status = domain.CommissionStatus(status)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreErr(err, "error iterating commission summary rows")
	}

	return summaries, nil
}

// UpdateCommission writes the full record back, guarded by its version.
// The statement only matches the row when the caller's version is current;
// a concurrent writer that got there first makes this call fail with
// ErrConflict instead of silently losing its changes.
func (r *PgxCommissionRepository) UpdateCommission(ctx context.Context, record domain.CommissionRecord) (*domain.CommissionRecord, error) {
	m := toModelCommission(record)

	query := `
		UPDATE commissions SET
			agent_id = $3,
			transaction_type = $4,
			property_id = $5,
			lead_id = $6,
			deal_description = $7,
			sale_amount = $8,
			commission_rate = $9,
			commission_amount = $10,
			split_percentage = $11,
			final_commission = $12,
			transaction_date = $13,
			expected_payment_date = $14,
			notes = $15,
			status = $16,
			payment_status = $17,
			approval_date = $18,
			approved_by = $19,
			dispute_reason = $20,
			payment_amount = $21,
			payment_method = $22,
			payment_reference = $23,
			payment_date = $24,
			version = version + 1,
			last_updated_at = $25,
			last_updated_by = $26
		WHERE organization_id = $1 AND commission_id = $2 AND version = $27
		RETURNING version;
	`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	var newVersion int64
	err := r.Pool.QueryRow(ctx, query,
		m.OrganizationID,
		m.CommissionID,
		m.AgentID,
		m.TransactionType,
		m.PropertyID,
		m.LeadID,
		m.DealDescription,
		m.SaleAmount,
		m.CommissionRate,
		m.CommissionAmount,
		m.SplitPercentage,
		m.FinalCommission,
		m.TransactionDate,
		m.ExpectedPaymentDate,
		m.Notes,
		m.Status,
		m.PaymentStatus,
		m.ApprovalDate,
		m.ApprovedBy,
		m.DisputeReason,
		m.PaymentAmount,
		m.PaymentMethod,
		m.PaymentReference,
		m.PaymentDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, m.OrganizationID, m.CommissionID)
		}
		return nil, mapStoreErr(err, fmt.Sprintf("failed to update commission %s", m.CommissionID))
	}

	record.Version = newVersion
	return &record, nil
}

// classifyMissedUpdate distinguishes a stale-version write from a row that
// does not exist (or belongs to another organization).
func (r *PgxCommissionRepository) classifyMissedUpdate(ctx context.Context, organizationID, commissionID string) error {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM commissions WHERE organization_id = $1 AND commission_id = $2);`,
		organizationID, commissionID,
	).Scan(&exists)
	if err != nil {
		return mapStoreErr(err, fmt.Sprintf("failed to classify update miss for commission %s", commissionID))
	}
	if exists {
		return fmt.Errorf("%w: commission %s was modified concurrently", apperrors.ErrConflict, commissionID)
	}
	return apperrors.ErrNotFound
}

// DeleteCommission permanently removes the entry.
func (r *PgxCommissionRepository) DeleteCommission(ctx context.Context, organizationID, commissionID string) error {
	query := `DELETE FROM commissions WHERE organization_id = $1 AND commission_id = $2;`

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	tag, err := r.Pool.Exec(ctx, query, organizationID, commissionID)
	if err != nil {
		return mapStoreErr(err, fmt.Sprintf("failed to delete commission %s", commissionID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
