package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &balanceHandler{balanceService: balanceService}

	rg.GET("/balance", h.getBalance)
	rg.PUT("/balance", h.setBalance)
}

// getBalance godoc
// @Summary Get the current balance
// @Tags balance
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balance [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// setBalance godoc
// @Summary Set the current balance
// @Description Accepts a number or text such as "1234,56". Unusable or negative values store zero.
// @Tags balance
// @Accept  json
// @Produce  json
// @Param   balance body dto.SetBalanceRequest true "New balance"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save balance"
// @Security BearerAuth
// @Router /balance [put]
func (h *balanceHandler) setBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	balance, err := h.balanceService.SetBalance(c.Request.Context(), req.RawBalance(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save balance")
		return
	}

	logger.Info("Balance saved", slog.String("balance", balance.Amount.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}
