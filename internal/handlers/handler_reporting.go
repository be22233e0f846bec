package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/overview", h.getOverview)
		reportingGroup.GET("/cards", h.getCardSummaries)
		reportingGroup.GET("/installments", h.getInstallmentsByFinalMonth)
		reportingGroup.GET("/monthly", h.getMonthlyTotals)
		reportingGroup.GET("/projection", h.getProjection)
	}
}

// parseAsOf reads the optional asOf=YYYY-MM query parameter, defaulting to the
// service's current month. It writes the 400 response itself.
func parseAsOf(c *gin.Context, logger *slog.Logger, rs portssvc.ReportingService) (domain.YearMonth, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return rs.Today(), true
	}
	asOf, err := domain.ParseYearMonth(raw)
	if err != nil {
		logger.Warn("Invalid asOf month format", slog.String("asOf", raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf format. Use YYYY-MM"})
		return domain.YearMonth{}, false
	}
	return asOf, true
}

// getOverview godoc
// @Summary Dashboard overview
// @Description Balance, monthly income and expense, surplus and card exposure
// @Tags reports
// @Produce json
// @Param asOf query string false "Reference month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c, logger, h.reportingService)
	if !ok {
		return
	}

	logger = logger.With(slog.String("asOf", asOf.String()))
	overview, err := h.reportingService.Overview(c.Request.Context(), userID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

// getCardSummaries godoc
// @Summary Card report
// @Description Card-linked expenses grouped per card, largest monthly bill first
// @Tags reports
// @Produce json
// @Param asOf query string false "Reference month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.CardReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cards [get]
func (h *reportingHandler) getCardSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c, logger, h.reportingService)
	if !ok {
		return
	}

	logger = logger.With(slog.String("asOf", asOf.String()))
	summaries, err := h.reportingService.CardSummaries(c.Request.Context(), userID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate card report")
		return
	}

	logger.Info("Card report generated successfully", slog.Int("card_count", len(summaries)))
	c.JSON(http.StatusOK, dto.ToCardReportResponse(summaries, asOf))
}

// getInstallmentsByFinalMonth godoc
// @Summary Installments by final month
// @Description Installment purchases grouped by the month their last installment falls in
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InstallmentReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/installments [get]
func (h *reportingHandler) getInstallmentsByFinalMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	buckets, err := h.reportingService.InstallmentsByFinalMonth(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate installment report")
		return
	}

	c.JSON(http.StatusOK, dto.ToInstallmentReportResponse(buckets))
}

// getMonthlyTotals godoc
// @Summary Monthly totals
// @Description Income and expense of each month of a year
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	year := h.reportingService.Today().Year
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 9999 {
			logger.Warn("Invalid year", slog.String("year", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}

	rows, err := h.reportingService.MonthlyTotals(c.Request.Context(), userID, year)
	if err != nil {
		respondServiceError(c, logger.With(slog.Int("year", year)), err, "Failed to generate monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(rows, year))
}

// getProjection godoc
// @Summary Installment projection
// @Description Installment load of the coming months
// @Tags reports
// @Produce json
// @Param asOf query string false "First projected month (YYYY-MM), defaults to the current month"
// @Param months query int false "Number of months (1-120)"
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/projection [get]
func (h *reportingHandler) getProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(c, logger, h.reportingService)
	if !ok {
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > config.MaxProjectionMonths {
			logger.Warn("Invalid months", slog.String("months", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and " + strconv.Itoa(config.MaxProjectionMonths)})
			return
		}
		months = parsed
	}

	rows, err := h.reportingService.Projection(c.Request.Context(), userID, asOf, months)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate projection")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectionResponse(rows, asOf))
}
