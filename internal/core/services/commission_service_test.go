package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/core/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CommissionRepository ---
type MockCommissionRepository struct {
	mock.Mock
}

// Ensure MockCommissionRepository implements portsrepo.CommissionRepositoryFacade
var _ portsrepo.CommissionRepositoryFacade = (*MockCommissionRepository)(nil)

func (m *MockCommissionRepository) SaveCommission(ctx context.Context, record domain.CommissionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindCommissionByID(ctx context.Context, organizationID, commissionID string) (*domain.CommissionRecord, error) {
	args := m.Called(ctx, organizationID, commissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) ListCommissions(ctx context.Context, organizationID string, filters portsrepo.CommissionFilters) ([]domain.CommissionRecord, error) {
	args := m.Called(ctx, organizationID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) ListCommissionSummaries(ctx context.Context, organizationID string, filters portsrepo.CommissionFilters) ([]domain.CommissionSummary, error) {
	args := m.Called(ctx, organizationID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionSummary), args.Error(1)
}

func (m *MockCommissionRepository) UpdateCommission(ctx context.Context, record domain.CommissionRecord) (*domain.CommissionRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionRecord), args.Error(1)
}

func (m *MockCommissionRepository) DeleteCommission(ctx context.Context, organizationID, commissionID string) error {
	args := m.Called(ctx, organizationID, commissionID)
	return args.Error(0)
}

// --- Mock AgentRepository ---
type MockAgentRepository struct {
	mock.Mock
}

var _ portsrepo.AgentRepositoryFacade = (*MockAgentRepository)(nil)

func (m *MockAgentRepository) FindAgentByID(ctx context.Context, organizationID, agentID string) (*domain.Agent, error) {
	args := m.Called(ctx, organizationID, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

func (m *MockAgentRepository) FindAgentNamesByIDs(ctx context.Context, organizationID string, agentIDs []string) (map[string]string, error) {
	args := m.Called(ctx, organizationID, agentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

var _ portssvc.TenantSvc = (*MockTenantService)(nil)

func (m *MockTenantService) ResolveContext(ctx context.Context, userID string) (*domain.TenantContext, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantContext), args.Error(1)
}

// --- Test Suite Setup ---
type CommissionServiceTestSuite struct {
	suite.Suite
	mockCommissionRepo *MockCommissionRepository
	mockAgentRepo      *MockAgentRepository
	mockTenantSvc      *MockTenantService
	service            portssvc.CommissionSvcFacade
	organizationID     string
	profileID          string
	userID             string
	agent              domain.Agent
	tenant             *domain.TenantContext
}

func (suite *CommissionServiceTestSuite) SetupTest() {
	suite.mockCommissionRepo = new(MockCommissionRepository)
	suite.mockAgentRepo = new(MockAgentRepository)
	suite.mockTenantSvc = new(MockTenantService)
	suite.service = services.NewCommissionService(suite.mockCommissionRepo, suite.mockAgentRepo, suite.mockTenantSvc)

	suite.organizationID = uuid.NewString()
	suite.profileID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.tenant = &domain.TenantContext{
		OrganizationID: suite.organizationID,
		ProfileID:      suite.profileID,
		Role:           domain.RoleManager,
	}

	suite.agent = domain.Agent{
		AgentID:        uuid.NewString(),
		OrganizationID: suite.organizationID,
		Name:           "Dana Reyes",
		Email:          "dana@example.com",
		IsActive:       true,
	}
}

func (suite *CommissionServiceTestSuite) expectTenant() {
	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(suite.tenant, nil).Once()
}

func (suite *CommissionServiceTestSuite) pendingRecord() *domain.CommissionRecord {
	return &domain.CommissionRecord{
		CommissionID:     uuid.NewString(),
		OrganizationID:   suite.organizationID,
		AgentID:          suite.agent.AgentID,
		TransactionType:  domain.TransactionSale,
		SaleAmount:       decimal.NewFromInt(200000),
		CommissionRate:   decimal.NewFromInt(3),
		CommissionAmount: decimal.NewFromInt(6000),
		SplitPercentage:  decimal.NewFromInt(100),
		FinalCommission:  decimal.NewFromInt(6000),
		TransactionDate:  time.Now().UTC(),
		Status:           domain.CommissionPending,
		PaymentStatus:    domain.PaymentUnpaid,
		Version:          1,
	}
}

// --- CreateCommission ---

func (suite *CommissionServiceTestSuite) TestCreateCommission_Success() {
	ctx := context.Background()
	req := dto.CreateCommissionRequest{
		AgentID:         suite.agent.AgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.NewFromInt(200000),
		CommissionRate:  decimal.NewFromInt(3),
		TransactionDate: time.Now().UTC(),
	}

	suite.expectTenant()
	suite.mockAgentRepo.On("FindAgentByID", ctx, suite.organizationID, suite.agent.AgentID).Return(&suite.agent, nil).Once()
	suite.mockCommissionRepo.On("SaveCommission", ctx, mock.AnythingOfType("domain.CommissionRecord")).Return(nil).Once()

	record, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.CommissionID)
	suite.Equal(suite.organizationID, record.OrganizationID)
	suite.Equal(domain.CommissionPending, record.Status)
	suite.Equal(domain.PaymentUnpaid, record.PaymentStatus)
	suite.Equal(int64(1), record.Version)
	suite.Equal(suite.profileID, record.CreatedBy)
	// Split defaults to 100, so the agent keeps the full commission.
	suite.True(record.SplitPercentage.Equal(decimal.NewFromInt(100)))
	suite.True(record.CommissionAmount.Equal(decimal.NewFromInt(6000)))
	suite.True(record.FinalCommission.Equal(decimal.NewFromInt(6000)))

	suite.mockTenantSvc.AssertExpectations(suite.T())
	suite.mockAgentRepo.AssertExpectations(suite.T())
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_AppliesSplit() {
	ctx := context.Background()
	split := decimal.NewFromInt(50)
	req := dto.CreateCommissionRequest{
		AgentID:         suite.agent.AgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.NewFromInt(200000),
		CommissionRate:  decimal.NewFromInt(3),
		SplitPercentage: &split,
		TransactionDate: time.Now().UTC(),
	}

	suite.expectTenant()
	suite.mockAgentRepo.On("FindAgentByID", ctx, suite.organizationID, suite.agent.AgentID).Return(&suite.agent, nil).Once()
	suite.mockCommissionRepo.On("SaveCommission", ctx, mock.AnythingOfType("domain.CommissionRecord")).Return(nil).Once()

	record, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(record.CommissionAmount.Equal(decimal.NewFromInt(6000)))
	suite.True(record.FinalCommission.Equal(decimal.NewFromInt(3000)))
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_NonPositiveSaleAmount() {
	ctx := context.Background()
	req := dto.CreateCommissionRequest{
		AgentID:         suite.agent.AgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.Zero,
		CommissionRate:  decimal.NewFromInt(3),
		TransactionDate: time.Now().UTC(),
	}

	suite.expectTenant()

	_, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "SaveCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_RateOutOfRange() {
	ctx := context.Background()
	req := dto.CreateCommissionRequest{
		AgentID:         suite.agent.AgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.NewFromInt(100000),
		CommissionRate:  decimal.NewFromInt(101),
		TransactionDate: time.Now().UTC(),
	}

	suite.expectTenant()

	_, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_UnknownAgent() {
	ctx := context.Background()
	unknownAgentID := uuid.NewString()
	req := dto.CreateCommissionRequest{
		AgentID:         unknownAgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.NewFromInt(100000),
		CommissionRate:  decimal.NewFromInt(3),
		TransactionDate: time.Now().UTC(),
	}

	suite.expectTenant()
	suite.mockAgentRepo.On("FindAgentByID", ctx, suite.organizationID, unknownAgentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "SaveCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_NoProfile() {
	ctx := context.Background()
	req := dto.CreateCommissionRequest{
		AgentID:         suite.agent.AgentID,
		TransactionType: "SALE",
		SaleAmount:      decimal.NewFromInt(100000),
		CommissionRate:  decimal.NewFromInt(3),
		TransactionDate: time.Now().UTC(),
	}

	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(nil, apperrors.ErrProfileNotFound).Once()

	_, err := suite.service.CreateCommission(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.mockAgentRepo.AssertNotCalled(suite.T(), "FindAgentByID", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetCommission ---

func (suite *CommissionServiceTestSuite) TestGetCommission_Success() {
	ctx := context.Background()
	record := suite.pendingRecord()

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockAgentRepo.On("FindAgentNamesByIDs", ctx, suite.organizationID, []string{suite.agent.AgentID}).
		Return(map[string]string{suite.agent.AgentID: suite.agent.Name}, nil).Once()

	got, err := suite.service.GetCommission(ctx, record.CommissionID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(record.CommissionID, got.CommissionID)
	suite.Equal(suite.agent.Name, got.AgentName)
}

func (suite *CommissionServiceTestSuite) TestGetCommission_NotFound() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, commissionID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCommission(ctx, commissionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CommissionServiceTestSuite) TestGetCommission_EnrichmentFailureIsIgnored() {
	ctx := context.Background()
	record := suite.pendingRecord()

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockAgentRepo.On("FindAgentNamesByIDs", ctx, suite.organizationID, []string{suite.agent.AgentID}).
		Return(nil, assert.AnError).Once()

	got, err := suite.service.GetCommission(ctx, record.CommissionID, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(got.AgentName)
}

// --- ListCommissions ---

func (suite *CommissionServiceTestSuite) TestListCommissions_Success() {
	ctx := context.Background()
	records := []domain.CommissionRecord{*suite.pendingRecord(), *suite.pendingRecord()}

	suite.expectTenant()
	suite.mockCommissionRepo.On("ListCommissions", ctx, suite.organizationID, mock.AnythingOfType("repositories.CommissionFilters")).Return(records, nil).Once()
	suite.mockAgentRepo.On("FindAgentNamesByIDs", ctx, suite.organizationID, []string{suite.agent.AgentID}).
		Return(map[string]string{suite.agent.AgentID: suite.agent.Name}, nil).Once()

	got, err := suite.service.ListCommissions(ctx, dto.ListCommissionsParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(suite.agent.Name, got[0].AgentName)
	suite.Equal(suite.agent.Name, got[1].AgentName)
}

func (suite *CommissionServiceTestSuite) TestListCommissions_PassesStatusFilter() {
	ctx := context.Background()
	status := "APPROVED"
	params := dto.ListCommissionsParams{Status: &status}

	suite.expectTenant()
	suite.mockCommissionRepo.On("ListCommissions", ctx, suite.organizationID, mock.MatchedBy(func(f portsrepo.CommissionFilters) bool {
		return f.Status != nil && *f.Status == domain.CommissionApproved
	})).Return([]domain.CommissionRecord{}, nil).Once()

	got, err := suite.service.ListCommissions(ctx, params, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

// --- UpdateCommission ---

func (suite *CommissionServiceTestSuite) TestUpdateCommission_RecalculatesDerivedAmounts() {
	ctx := context.Background()
	record := suite.pendingRecord()
	newRate := decimal.NewFromFloat(2.5)
	req := dto.UpdateCommissionRequest{CommissionRate: &newRate}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.MatchedBy(func(r domain.CommissionRecord) bool {
		// 200000 * 2.5% = 5000, full split
		return r.CommissionAmount.Equal(decimal.NewFromInt(5000)) && r.FinalCommission.Equal(decimal.NewFromInt(5000))
	})).Return(record, nil).Once()

	_, err := suite.service.UpdateCommission(ctx, record.CommissionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestUpdateCommission_NonMonetaryChangeKeepsAmounts() {
	ctx := context.Background()
	record := suite.pendingRecord()
	notes := "updated notes"
	req := dto.UpdateCommissionRequest{Notes: &notes}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.MatchedBy(func(r domain.CommissionRecord) bool {
		return r.Notes == notes && r.FinalCommission.Equal(decimal.NewFromInt(6000))
	})).Return(record, nil).Once()

	_, err := suite.service.UpdateCommission(ctx, record.CommissionID, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *CommissionServiceTestSuite) TestUpdateCommission_PaidIsImmutable() {
	ctx := context.Background()
	record := suite.pendingRecord()
	record.Status = domain.CommissionPaid
	notes := "too late"
	req := dto.UpdateCommissionRequest{Notes: &notes}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()

	_, err := suite.service.UpdateCommission(ctx, record.CommissionID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "UpdateCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestUpdateCommission_StaleVersionConflict() {
	ctx := context.Background()
	record := suite.pendingRecord()
	notes := "concurrent edit"
	req := dto.UpdateCommissionRequest{Notes: &notes}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.AnythingOfType("domain.CommissionRecord")).Return(nil, apperrors.ErrConflict).Once()

	_, err := suite.service.UpdateCommission(ctx, record.CommissionID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- Status transitions ---

func (suite *CommissionServiceTestSuite) TestApproveCommission_Success() {
	ctx := context.Background()
	record := suite.pendingRecord()

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.MatchedBy(func(r domain.CommissionRecord) bool {
		return r.Status == domain.CommissionApproved &&
			r.ApprovalDate != nil &&
			r.ApprovedBy != nil && *r.ApprovedBy == suite.profileID
	})).Return(record, nil).Once()

	_, err := suite.service.ApproveCommission(ctx, record.CommissionID, suite.userID)

	suite.Require().NoError(err)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestApproveCommission_RejectedIsTerminal() {
	ctx := context.Background()
	record := suite.pendingRecord()
	record.Status = domain.CommissionRejected

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()

	_, err := suite.service.ApproveCommission(ctx, record.CommissionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "UpdateCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestRejectCommission_RecordsDisputeReason() {
	ctx := context.Background()
	record := suite.pendingRecord()
	reason := "duplicate deal"
	req := dto.RejectCommissionRequest{DisputeReason: &reason}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.MatchedBy(func(r domain.CommissionRecord) bool {
		return r.Status == domain.CommissionRejected && r.DisputeReason != nil && *r.DisputeReason == reason
	})).Return(record, nil).Once()

	_, err := suite.service.RejectCommission(ctx, record.CommissionID, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *CommissionServiceTestSuite) TestRejectCommission_ApprovedCanBeRejected() {
	ctx := context.Background()
	record := suite.pendingRecord()
	record.Status = domain.CommissionApproved

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.AnythingOfType("domain.CommissionRecord")).Return(record, nil).Once()

	_, err := suite.service.RejectCommission(ctx, record.CommissionID, dto.RejectCommissionRequest{}, suite.userID)

	suite.Require().NoError(err)
}

func (suite *CommissionServiceTestSuite) TestMarkCommissionPaid_Success() {
	ctx := context.Background()
	record := suite.pendingRecord()
	req := dto.MarkPaidRequest{
		PaymentAmount: decimal.NewFromInt(6000),
		PaymentMethod: "WIRE",
	}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()
	suite.mockCommissionRepo.On("UpdateCommission", ctx, mock.MatchedBy(func(r domain.CommissionRecord) bool {
		return r.Status == domain.CommissionPaid &&
			r.PaymentStatus == domain.PaymentPaid &&
			r.PaymentDate != nil && // defaults to now when omitted
			r.PaymentAmount != nil && r.PaymentAmount.Equal(decimal.NewFromInt(6000))
	})).Return(record, nil).Once()

	_, err := suite.service.MarkCommissionPaid(ctx, record.CommissionID, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestMarkCommissionPaid_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.MarkPaidRequest{
		PaymentAmount: decimal.Zero,
		PaymentMethod: "WIRE",
	}

	suite.expectTenant()

	_, err := suite.service.MarkCommissionPaid(ctx, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "FindCommissionByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestMarkCommissionPaid_AlreadyPaid() {
	ctx := context.Background()
	record := suite.pendingRecord()
	record.Status = domain.CommissionPaid
	req := dto.MarkPaidRequest{
		PaymentAmount: decimal.NewFromInt(6000),
		PaymentMethod: "WIRE",
	}

	suite.expectTenant()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, suite.organizationID, record.CommissionID).Return(record, nil).Once()

	_, err := suite.service.MarkCommissionPaid(ctx, record.CommissionID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- DeleteCommission ---

func (suite *CommissionServiceTestSuite) TestDeleteCommission_Success() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.expectTenant()
	suite.mockCommissionRepo.On("DeleteCommission", ctx, suite.organizationID, commissionID).Return(nil).Once()

	err := suite.service.DeleteCommission(ctx, commissionID, suite.userID)

	suite.Require().NoError(err)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestDeleteCommission_NotFound() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.expectTenant()
	suite.mockCommissionRepo.On("DeleteCommission", ctx, suite.organizationID, commissionID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCommission(ctx, commissionID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCommissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
