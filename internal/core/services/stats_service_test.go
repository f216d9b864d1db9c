package services_test

import (
	"context"
	"testing"

	"github.com/brokerops/commission_console/internal/apperrors"
	"github.com/brokerops/commission_console/internal/core/domain"
	portsrepo "github.com/brokerops/commission_console/internal/core/ports/repositories"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/core/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type StatsServiceTestSuite struct {
	suite.Suite
	mockCommissionRepo *MockCommissionRepository
	mockTenantSvc      *MockTenantService
	service            portssvc.StatsSvc
	organizationID     string
	userID             string
	tenant             *domain.TenantContext
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.mockCommissionRepo = new(MockCommissionRepository)
	suite.mockTenantSvc = new(MockTenantService)
	suite.service = services.NewStatsService(suite.mockCommissionRepo, suite.mockTenantSvc)

	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.tenant = &domain.TenantContext{
		OrganizationID: suite.organizationID,
		ProfileID:      uuid.NewString(),
		Role:           domain.RoleManager,
	}
}

// --- Test Cases ---

func (suite *StatsServiceTestSuite) TestComputeStats_PartitionsByStatus() {
	ctx := context.Background()
	summaries := []domain.CommissionSummary{
		{Status: domain.CommissionPending, FinalCommission: decimal.NewFromInt(1000)},
		{Status: domain.CommissionPending, FinalCommission: decimal.NewFromInt(2000)},
		{Status: domain.CommissionApproved, FinalCommission: decimal.NewFromInt(3000)},
		{Status: domain.CommissionRejected, FinalCommission: decimal.NewFromInt(4000)},
		{Status: domain.CommissionPaid, FinalCommission: decimal.NewFromInt(5000)},
	}

	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(suite.tenant, nil).Once()
	suite.mockCommissionRepo.On("ListCommissionSummaries", ctx, suite.organizationID, mock.AnythingOfType("repositories.CommissionFilters")).Return(summaries, nil).Once()

	stats, err := suite.service.ComputeStats(ctx, dto.StatsParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(5), stats.TotalCommissions)
	suite.Equal(int64(2), stats.PendingCommissions)
	suite.Equal(int64(1), stats.ApprovedCommissions)
	suite.Equal(int64(1), stats.RejectedCommissions)
	suite.Equal(int64(1), stats.PaidCommissions)
	// TotalAmount covers every entry; rejected value still counts toward it.
	suite.True(stats.TotalAmount.Equal(decimal.NewFromInt(15000)))
	suite.True(stats.PendingAmount.Equal(decimal.NewFromInt(3000)))
	suite.True(stats.ApprovedAmount.Equal(decimal.NewFromInt(3000)))
	suite.True(stats.PaidAmount.Equal(decimal.NewFromInt(5000)))

	suite.mockTenantSvc.AssertExpectations(suite.T())
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestComputeStats_EmptyLedger() {
	ctx := context.Background()

	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(suite.tenant, nil).Once()
	suite.mockCommissionRepo.On("ListCommissionSummaries", ctx, suite.organizationID, mock.AnythingOfType("repositories.CommissionFilters")).Return([]domain.CommissionSummary{}, nil).Once()

	stats, err := suite.service.ComputeStats(ctx, dto.StatsParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(0), stats.TotalCommissions)
	suite.True(stats.TotalAmount.IsZero())
	suite.True(stats.PendingAmount.IsZero())
	suite.True(stats.ApprovedAmount.IsZero())
	suite.True(stats.PaidAmount.IsZero())
}

func (suite *StatsServiceTestSuite) TestComputeStats_PassesFilters() {
	ctx := context.Background()
	agentID := uuid.NewString()
	params := dto.StatsParams{AgentID: &agentID}

	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(suite.tenant, nil).Once()
	suite.mockCommissionRepo.On("ListCommissionSummaries", ctx, suite.organizationID, mock.MatchedBy(func(f portsrepo.CommissionFilters) bool {
		return f.AgentID != nil && *f.AgentID == agentID
	})).Return([]domain.CommissionSummary{}, nil).Once()

	_, err := suite.service.ComputeStats(ctx, params, suite.userID)

	suite.Require().NoError(err)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestComputeStats_TenantFailureShortCircuits() {
	ctx := context.Background()

	suite.mockTenantSvc.On("ResolveContext", mock.Anything, suite.userID).Return(nil, apperrors.ErrProfileNotFound).Once()

	_, err := suite.service.ComputeStats(ctx, dto.StatsParams{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "ListCommissionSummaries", mock.Anything, mock.Anything, mock.Anything)
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
