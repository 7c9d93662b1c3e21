package handlers

import (
	"net/http"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles invoice requests.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceSvc portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceSvc}

	invoices := rg.Group("/invoice")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/generate/number", h.nextInvoiceNumber)
		invoices.GET("/summary/data", h.summary)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.PATCH("/:id/status", h.updateStatus)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice; item amounts, subtotal, tax and total are recomputed server-side from the submitted items.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} MsgResponse "Invalid input or duplicate invoice number"
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include an invoice number, customer name, dates and at least one item")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Replaces the invoice's content; all derived figures are recomputed.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Please include an invoice number, customer name, dates and at least one item")
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	respondMsg(c, http.StatusOK, "Invoice removed")
}

// updateStatus godoc
// @Summary Update invoice status
// @Description Transitions the invoice lifecycle status; a payment date may accompany the "paid" status.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/{id}/status [patch]
func (h *invoiceHandler) updateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Status must be one of draft, sent, paid, overdue or cancelled")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// nextInvoiceNumber godoc
// @Summary Suggest the next invoice number
// @Description Derives the next sequential number from the caller's latest invoice.
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.NextInvoiceNumberResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/generate/number [get]
func (h *invoiceHandler) nextInvoiceNumber(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	number, err := h.invoiceService.NextInvoiceNumber(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, dto.NextInvoiceNumberResponse{NextInvoiceNumber: number})
}

// summary godoc
// @Summary Invoice summary
// @Description Folds all of the caller's invoices into the dashboard totals.
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.InvoiceSummaryResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/invoice/summary/data [get]
func (h *invoiceHandler) summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.invoiceService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}
