package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Samhr4577/finance-sparkle-16/internal/store"
)

// AdminHandler handles maintenance operations.
type AdminHandler struct {
	store *store.Store
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s *store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// Reset drops all data and reseeds the default categories
// @Summary     Reset the database
// @Description Delete every transaction and restore the default category seed
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]string "Reset confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	h.store.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database reset successfully"})
}
