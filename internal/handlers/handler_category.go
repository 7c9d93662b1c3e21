package handlers

import (
	"net/http"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the categories of one kind; it is mounted under the
// matching entry group (/api/income/categories, /api/expense/categories).
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(parent *gin.RouterGroup, categorySvc portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categorySvc}

	categories := parent.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/categories [post]
// @Router /api/expense/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Category name is required")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/categories [get]
// @Router /api/expense/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} MsgResponse
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/categories/{id} [put]
// @Router /api/expense/categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMsg(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Removes a category; fails while any entry still references it.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} MsgResponse
// @Failure 400 {object} MsgResponse "Category in use"
// @Failure 401 {object} MsgResponse
// @Failure 404 {object} MsgResponse
// @Security BearerAuth
// @Router /api/income/categories/{id} [delete]
// @Router /api/expense/categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Category not found")
		return
	}
	respondMsg(c, http.StatusOK, "Category removed")
}
