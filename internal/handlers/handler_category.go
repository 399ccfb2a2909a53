package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/dto"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryName", h.getCategory)
		categories.DELETE("/:categoryName", h.deleteCategory)
		categories.POST("/merge", h.mergeCategories)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.categoryService.CreateCategory(c.Request.Context(), req)
	respond(c, res, http.StatusCreated, dto.ToCategoryResponse)
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	res := h.categoryService.GetCategory(c.Request.Context(), c.Param("categoryName"))
	respond(c, res, http.StatusOK, dto.ToCategoryResponse)
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	res := h.categoryService.ListCategories(c.Request.Context(), includeInactive)
	respond(c, res, http.StatusOK, dto.ToListCategoriesResponse)
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	res := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("categoryName"))
	respond(c, res, http.StatusNoContent, func(bool) any { return nil })
}

func (h *categoryHandler) mergeCategories(c *gin.Context) {
	var req dto.MergeCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res := h.categoryService.MergeCategories(c.Request.Context(), req.TargetCategory, req.SourceCategory)
	respond(c, res, http.StatusOK, dto.ToCategoryResponse)
}
