package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brokerops/commission_console/internal/apperrors"
	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/brokerops/commission_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commissionHandler handles HTTP requests for the commission ledger.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

// newCommissionHandler creates a new commissionHandler.
func newCommissionHandler(commissionService portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{
		commissionService: commissionService,
	}
}

// handleServiceError maps service errors to HTTP responses. The fallback
// message is returned for anything that is not part of the error taxonomy.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		logger.Warn("Caller not authenticated")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrProfileNotFound):
		logger.Warn("Caller has no profile", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "No profile for this user"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Data store is temporarily unavailable"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createCommission godoc
// @Summary Create a commission record
// @Description Creates a new commission ledger entry in PENDING status with derived amounts
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   commission body dto.CreateCommissionRequest true "Commission details"
// @Success 201 {object} dto.CommissionResponse "The created commission"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create commission"
// @Router /commissions [post]
func (h *commissionHandler) createCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.CreateCommission(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create commission")
		return
	}

	logger.Info("Commission created", slog.String("commission_id", record.CommissionID))
	c.JSON(http.StatusCreated, dto.ToCommissionResponse(record))
}

// getCommission godoc
// @Summary Get a commission record
// @Description Retrieves a single ledger entry by ID
// @Tags commissions
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Success 200 {object} dto.CommissionResponse "The commission"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 500 {object} map[string]string "Failed to retrieve commission"
// @Router /commissions/{commissionID} [get]
func (h *commissionHandler) getCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.GetCommission(c.Request.Context(), commissionID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve commission")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

// listCommissions godoc
// @Summary List commission records
// @Description Retrieves the organization's ledger entries, newest first, with optional filters
// @Tags commissions
// @Produce  json
// @Param   agentID query string false "Filter by agent"
// @Param   status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED, PAID)
// @Param   startDate query string false "Transaction date lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Transaction date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListCommissionsResponse "Matching commissions"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list commissions"
// @Router /commissions [get]
func (h *commissionHandler) listCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCommissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listCommissions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := h.commissionService.ListCommissions(c.Request.Context(), params, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list commissions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommissionsResponse(records))
}

// updateCommission godoc
// @Summary Update a commission record
// @Description Partially updates an editable ledger entry, recalculating derived amounts when monetary fields change
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Param   commission body dto.UpdateCommissionRequest true "Fields to update"
// @Success 200 {object} dto.CommissionResponse "The updated commission"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Commission is paid or was modified concurrently"
// @Router /commissions/{commissionID} [put]
func (h *commissionHandler) updateCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	var req dto.UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.UpdateCommission(c.Request.Context(), commissionID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update commission")
		return
	}

	logger.Info("Commission updated", slog.String("commission_id", record.CommissionID))
	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

// approveCommission godoc
// @Summary Approve a commission record
// @Description Moves a pending entry to APPROVED, stamping the approval date and approver
// @Tags commissions
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Success 200 {object} dto.CommissionResponse "The approved commission"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Status transition not allowed"
// @Router /commissions/{commissionID}/approve [post]
func (h *commissionHandler) approveCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.ApproveCommission(c.Request.Context(), commissionID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to approve commission")
		return
	}

	logger.Info("Commission approved", slog.String("commission_id", record.CommissionID))
	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

// rejectCommission godoc
// @Summary Reject a commission record
// @Description Moves an entry to REJECTED with an optional dispute reason
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Param   rejection body dto.RejectCommissionRequest false "Dispute reason"
// @Success 200 {object} dto.CommissionResponse "The rejected commission"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Status transition not allowed"
// @Router /commissions/{commissionID}/reject [post]
func (h *commissionHandler) rejectCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	var req dto.RejectCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for rejectCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.RejectCommission(c.Request.Context(), commissionID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to reject commission")
		return
	}

	logger.Info("Commission rejected", slog.String("commission_id", record.CommissionID))
	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

// markCommissionPaid godoc
// @Summary Mark a commission record as paid
// @Description Records payment details and moves the entry to PAID; paid entries are immutable
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Param   payment body dto.MarkPaidRequest true "Payment details"
// @Success 200 {object} dto.CommissionResponse "The paid commission"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 409 {object} map[string]string "Status transition not allowed"
// @Router /commissions/{commissionID}/pay [post]
func (h *commissionHandler) markCommissionPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for markCommissionPaid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.commissionService.MarkCommissionPaid(c.Request.Context(), commissionID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to mark commission paid")
		return
	}

	logger.Info("Commission marked paid", slog.String("commission_id", record.CommissionID))
	c.JSON(http.StatusOK, dto.ToCommissionResponse(record))
}

// deleteCommission godoc
// @Summary Delete a commission record
// @Description Permanently removes a ledger entry
// @Tags commissions
// @Produce  json
// @Param   commissionID path string true "Commission ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 500 {object} map[string]string "Failed to delete commission"
// @Router /commissions/{commissionID} [delete]
func (h *commissionHandler) deleteCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commissionID := c.Param("commissionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.commissionService.DeleteCommission(c.Request.Context(), commissionID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to delete commission")
		return
	}

	logger.Info("Commission deleted", slog.String("commission_id", commissionID))
	c.Status(http.StatusNoContent)
}

// RegisterCommissionRoutes registers commission ledger routes.
func RegisterCommissionRoutes(group *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(commissionService)

	commissions := group.Group("/commissions")
	{
		commissions.POST("", h.createCommission)
		commissions.GET("", h.listCommissions)
		commissions.GET("/:commissionID", h.getCommission)
		commissions.PUT("/:commissionID", h.updateCommission)
		commissions.DELETE("/:commissionID", h.deleteCommission)
		commissions.POST("/:commissionID/approve", h.approveCommission)
		commissions.POST("/:commissionID/reject", h.rejectCommission)
		commissions.POST("/:commissionID/pay", h.markCommissionPaid)
	}
}
