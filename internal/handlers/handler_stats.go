package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/brokerops/commission_console/internal/core/ports/services"
	"github.com/brokerops/commission_console/internal/dto"
	"github.com/brokerops/commission_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the ledger aggregate endpoint.
type statsHandler struct {
	statsService portssvc.StatsSvc
}

func newStatsHandler(statsService portssvc.StatsSvc) *statsHandler {
	return &statsHandler{
		statsService: statsService,
	}
}

// getCommissionStats godoc
// @Summary Get commission statistics
// @Description Summarizes the organization's ledger entries matching the filters into counts and monetary totals
// @Tags commissions
// @Produce  json
// @Param   agentID query string false "Filter by agent"
// @Param   startDate query string false "Transaction date lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Transaction date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.CommissionStatsResponse "Aggregated statistics"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /commissions/stats [get]
func (h *statsHandler) getCommissionStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.StatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getCommissionStats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.statsService.ComputeStats(c.Request.Context(), params, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionStatsResponse(stats))
}

// RegisterStatsRoutes registers the aggregate route. It must be registered
// before the commission routes so /commissions/stats is not captured by the
// :commissionID parameter.
func RegisterStatsRoutes(group *gin.RouterGroup, statsService portssvc.StatsSvc) {
	h := newStatsHandler(statsService)
	group.GET("/commissions/stats", h.getCommissionStats)
}
