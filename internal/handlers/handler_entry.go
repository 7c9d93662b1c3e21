package handlers

import (
	"net/http"

	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// entryHandler serves one entry kind. Two instances are registered, one under
// /api/income and one under /api/expense; the machinery is identical.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
	kind         domain.EntryKind
	notFoundMsg  string
}

func newEntryHandler(es portssvc.EntrySvcFacade, kind domain.EntryKind, notFoundMsg string) *entryHandler {
	return &entryHandler{
		entryService: es,
		kind:         kind,
		notFoundMsg:  notFoundMsg,
	}
}

// registerEntryRoutes mounts one entry kind's CRUD, summary and category routes
// under the given path of an already-authenticated group.
func registerEntryRoutes(rg *gin.RouterGroup, path string, kind domain.EntryKind, notFoundMsg string, entrySvc portssvc.EntrySvcFacade, categorySvc portssvc.CategorySvcFacade) {
	h := newEntryHandler(entrySvc, kind, notFoundMsg)

	entries := rg.Group(path)
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/summary/data", h.summary)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}

	registerCategoryRoutes(entries, categorySvc)
}

// createEntry godoc
// @Summary Create an entry
// @Description Records a new income or expense entry against one of the caller's categories.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income [post]
// @Router /api/expense [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include a category and an amount")
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List entries
// @Description Lists the caller's entries of this kind, newest first. Without a limit the whole list is returned; with one, nextToken continues the page.
// @Tags entries
// @Produce json
// @Param limit query int false "Page size; 0 returns everything" default(0)
// @Param nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} MsgResponse "Malformed continuation token"
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income [get]
// @Router /api/expense [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondMsg(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	entries, nextToken, err := h.entryService.ListEntries(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	})
}

// getEntry godoc
// @Summary Get an entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/{id} [get]
// @Router /api/expense/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update an entry
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/{id} [put]
// @Router /api/expense/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/{id} [delete]
// @Router /api/expense/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}
	respondMsg(c, http.StatusOK, "Entry removed")
}

// summary godoc
// @Summary Entry summary
// @Description Folds all of the caller's entries of this kind into a grand total plus per-category totals.
// @Tags entries
// @Produce json
// @Success 200 {object} dto.IncomeSummaryResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/summary/data [get]
// @Router /api/expense/summary/data [get]
func (h *entryHandler) summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.entryService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, h.notFoundMsg)
		return
	}

	if h.kind == domain.CategoryIncome {
		c.JSON(http.StatusOK, dto.IncomeSummaryResponse{
			TotalIncome:    summary.Total,
			CategoryTotals: summary.CategoryTotals,
		})
		return
	}
	c.JSON(http.StatusOK, dto.ExpenseSummaryResponse{
		TotalExpenses:  summary.Total,
		CategoryTotals: summary.CategoryTotals,
	})
}
