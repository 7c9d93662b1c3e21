package handlers

import (
	"net/http"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// stockHandler handles stock entry requests.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func registerStockRoutes(rg *gin.RouterGroup, stockSvc portssvc.StockSvcFacade) {
	h := &stockHandler{stockService: stockSvc}

	stock := rg.Group("/stock")
	{
		stock.POST("", h.createStockEntry)
		stock.GET("", h.listStockEntries)
		stock.GET("/summary/data", h.summary)
		stock.GET("/:id", h.getStockEntry)
		stock.PUT("/:id", h.updateStockEntry)
		stock.DELETE("/:id", h.deleteStockEntry)
	}
}

// createStockEntry godoc
// @Summary Create a stock entry
// @Description Records an inventory movement; the total amount is derived server-side.
// @Tags stock
// @Accept json
// @Produce json
// @Param stock body dto.CreateStockEntryRequest true "Stock entry details"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock [post]
func (h *stockHandler) createStockEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include an item name, a type of purchase or sale, and a positive quantity")
		return
	}

	entry, err := h.stockService.CreateStockEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockEntryResponse(entry))
}

// listStockEntries godoc
// @Summary List stock entries
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockEntryResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock [get]
func (h *stockHandler) listStockEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.stockService.ListStockEntries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockEntryResponses(entries))
}

// getStockEntry godoc
// @Summary Get a stock entry
// @Tags stock
// @Produce json
// @Param id path string true "Stock entry ID"
// @Success 200 {object} dto.StockEntryResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock/{id} [get]
func (h *stockHandler) getStockEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.stockService.GetStockEntryByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockEntryResponse(entry))
}

// updateStockEntry godoc
// @Summary Update a stock entry
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock entry ID"
// @Param stock body dto.UpdateStockEntryRequest true "Fields to update"
// @Success 200 {object} dto.StockEntryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock/{id} [put]
func (h *stockHandler) updateStockEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.stockService.UpdateStockEntry(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockEntryResponse(entry))
}

// deleteStockEntry godoc
// @Summary Delete a stock entry
// @Tags stock
// @Produce json
// @Param id path string true "Stock entry ID"
// @Success 200 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock/{id} [delete]
func (h *stockHandler) deleteStockEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.stockService.DeleteStockEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	respondMsg(c, http.StatusOK, "Stock entry removed")
}

// summary godoc
// @Summary Stock summary
// @Description Folds all of the caller's stock entries into purchase/sale totals, counts and the inventory value difference.
// @Tags stock
// @Produce json
// @Success 200 {object} dto.StockSummaryResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/stock/summary/data [get]
func (h *stockHandler) summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.stockService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Stock entry not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}
