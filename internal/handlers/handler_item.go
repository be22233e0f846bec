package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests related to line items.
type itemHandler struct {
	itemService      portssvc.ItemSvcFacade
	reportingService portssvc.ReportingService
}

func newItemHandler(is portssvc.ItemSvcFacade, rs portssvc.ReportingService) *itemHandler {
	return &itemHandler{
		itemService:      is,
		reportingService: rs,
	}
}

// registerItemRoutes registers routes related to line items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade, reportingService portssvc.ReportingService) {
	h := newItemHandler(itemService, reportingService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PUT("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
		items.GET("/:itemID/progress", h.getItemProgress)
	}
}

// createItem godoc
// @Summary Create a line item
// @Description Records an income or expense. Installment expenses need a card and a schedule.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create item", slog.String("nature", string(req.Nature)), slog.String("kind", string(req.Kind)))

	item, err := h.itemService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create item")
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List line items
// @Description Lists the caller's items oldest first, one page at a time
// @Tags items
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	items, nextToken, err := h.itemService.ListItems(c.Request.Context(), params, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list items")
		return
	}

	logger.Debug("Items listed", slog.Int("count", len(items)), slog.Bool("has_more", nextToken != ""))
	c.JSON(http.StatusOK, dto.ListItemsResponse{
		Items:     dto.ToItemResponses(items),
		NextToken: nextToken,
	})
}

// getItem godoc
// @Summary Get a line item by ID
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Security BearerAuth
// @Router /items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("item_id", itemID))
	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update a line item
// @Description Replaces every editable field of an item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Item details"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Security BearerAuth
// @Router /items/{itemID} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("item_id", itemID))
	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update item")
		return
	}

	logger.Info("Item updated successfully")
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a line item
// @Tags items
// @Param   itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Security BearerAuth
// @Router /items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("item_id", itemID))
	if err := h.itemService.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete item")
		return
	}

	logger.Info("Item deleted successfully")
	c.Status(http.StatusNoContent)
}

// getItemProgress godoc
// @Summary Installment progress of an item
// @Description Paid and remaining installments, final month and outstanding exposure
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   asOf query string false "Reference month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.ItemProgressResponse
// @Failure 400 {object} map[string]string "Item has no installment schedule"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to compute progress"
// @Security BearerAuth
// @Router /items/{itemID}/progress [get]
func (h *itemHandler) getItemProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	asOf, ok := parseAsOf(c, logger, h.reportingService)
	if !ok {
		return
	}

	logger = logger.With(slog.String("item_id", itemID), slog.String("asOf", asOf.String()))
	item, progress, err := h.reportingService.ItemProgress(c.Request.Context(), userID, itemID, asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute progress")
		return
	}

	exposure := utils.FormatAmount(accounting.ItemExposure(*item, asOf))
	c.JSON(http.StatusOK, dto.ToItemProgressResponse(item, progress, exposure, asOf))
}
