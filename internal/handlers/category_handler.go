package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
)

// CategoryHandler handles category registry requests
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// CreateCategoryRequest represents the request payload for adding a category
type CreateCategoryRequest struct {
	Type models.TransactionType `json:"type" binding:"required,transaction_type"`
	Name string                 `json:"name" binding:"required"`
}

// RenameCategoryRequest represents the request payload for renaming a category
type RenameCategoryRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// GetCategories returns the whole registry
// @Summary     Get all categories
// @Description Get the ordered category lists for every transaction type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.CategoryMap "Categories grouped by type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.store.Categories()})
}

// GetCategoriesByType returns the ordered list for one type
// @Summary     Get categories for a type
// @Description Get the ordered category list for one transaction type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type path string true "Transaction type"
// @Success     200 {array} string "Ordered category names"
// @Failure     400 {object} ErrorResponse "Unknown transaction type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories/{type} [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	t, err := parseType(c, "type")
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.store.CategoriesFor(t)})
}

// CreateCategory adds a category to the registry
// @Summary     Add a category
// @Description Append a category name to its type's list
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} CreateCategoryRequest "Category added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate category"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.store.AddCategory(c.Request.Context(), req.Type, req.Name); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"type": req.Type, "name": req.Name})
}

// RenameCategory renames a category, cascading to its transactions
// @Summary     Rename a category
// @Description Rename a category in place; transactions of that type referencing the old name are rewritten
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type path string true "Transaction type"
// @Param       name path string true "Current category name"
// @Param       request body RenameCategoryRequest true "New name"
// @Success     200 {object} RenameCategoryRequest "Category renamed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate category"
// @Router      /categories/{type}/{name} [put]
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	t, err := parseType(c, "type")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.store.RenameCategory(c.Request.Context(), t, c.Param("name"), req.NewName); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"type": t, "name": req.NewName})
}

// DeleteCategory removes a category from the registry
// @Summary     Delete a category
// @Description Remove a category from its type's list; existing transactions keep the old name
// @Tags        categories
// @Security    BearerAuth
// @Param       type path string true "Transaction type"
// @Param       name path string true "Category name"
// @Success     204 "Category deleted"
// @Failure     400 {object} ErrorResponse "Unknown transaction type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{type}/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	t, err := parseType(c, "type")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.store.DeleteCategory(c.Request.Context(), t, c.Param("name")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
