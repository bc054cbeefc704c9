package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
)

// ReportHandler serves the dashboard and reporting aggregations.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// SummaryResponse holds the dashboard totals. Net income is incoming
// sales minus expenses; deposits are tracked separately and outgoing
// sales do not contribute.
type SummaryResponse struct {
	Totals    map[models.TransactionType]float64 `json:"totals"`
	NetIncome float64                            `json:"net_income"`
}

// GetSummary returns totals per type and the derived net income
// @Summary     Dashboard summary
// @Description Get per-type totals and net income (incoming sales minus expenses)
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SummaryResponse "Dashboard totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	totals := make(map[models.TransactionType]float64, len(models.AllTransactionTypes))
	for _, t := range models.AllTransactionTypes {
		totals[t] = h.store.TotalByType(t)
	}
	c.JSON(http.StatusOK, SummaryResponse{
		Totals:    totals,
		NetIncome: totals[models.TransactionTypeSalesIn] - totals[models.TransactionTypeExpense],
	})
}

// GetRecent returns the most recent transactions
// @Summary     Recent transactions
// @Description Get the N transactions with the most recent dates, descending
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of transactions (default 5)"
// @Success     200 {array} models.Transaction "Recent transactions"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/recent [get]
func (h *ReportHandler) GetRecent(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit"))
			return
		}
		limit = parsed
	}
	c.JSON(http.StatusOK, gin.H{"transactions": h.store.Recent(limit)})
}

// GetCategoryTotals returns summed amounts per category for a type
// @Summary     Category totals
// @Description Get summed amounts per category for one transaction type; categories with no transactions are omitted
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       type query string true "Transaction type"
// @Success     200 {object} map[string]float64 "Totals keyed by category"
// @Failure     400 {object} ErrorResponse "Unknown transaction type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/category-totals [get]
func (h *ReportHandler) GetCategoryTotals(c *gin.Context) {
	t := models.TransactionType(c.Query("type"))
	if !t.Valid() {
		respondWithError(c, apperrors.ErrInvalidTransactionType)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": h.store.CategoryTotals(t)})
}

// GetRange returns transactions within an inclusive date range
// @Summary     Transactions by date range
// @Description Get transactions between two calendar days inclusive, optionally filtered by type
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from query string true "Range start (YYYY-MM-DD)"
// @Param       to query string true "Range end (YYYY-MM-DD)"
// @Param       type query string false "Transaction type"
// @Success     200 {array} models.Transaction "Matching transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/range [get]
func (h *ReportHandler) GetRange(c *gin.Context) {
	from, to, err := normalizeRange(c.Query("from"), c.Query("to"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var typ *models.TransactionType
	if raw := c.Query("type"); raw != "" {
		t := models.TransactionType(raw)
		if !t.Valid() {
			respondWithError(c, apperrors.ErrInvalidTransactionType)
			return
		}
		typ = &t
	}

	c.JSON(http.StatusOK, gin.H{"transactions": h.store.ByDateRange(from, to, typ)})
}
