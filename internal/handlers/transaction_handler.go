package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Samhr4577/finance-sparkle-16/internal/errors"
	"github.com/Samhr4577/finance-sparkle-16/internal/models"
	"github.com/Samhr4577/finance-sparkle-16/internal/pagination"
	"github.com/Samhr4577/finance-sparkle-16/internal/store"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	Date        string                 `json:"date" binding:"required,txn_date"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Notes       string                 `json:"notes"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Amount      *float64                `json:"amount" binding:"omitempty,gt=0"`
	Description *string                 `json:"description" binding:"omitempty,min=1"`
	Category    *string                 `json:"category" binding:"omitempty,min=1"`
	Date        *string                 `json:"date" binding:"omitempty,txn_date"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Notes       *string                 `json:"notes"`
}

// ListTransactionsQuery holds the optional filters for listing transactions.
type ListTransactionsQuery struct {
	pagination.PageRequest
	Type string `form:"type" binding:"omitempty,transaction_type"`
	From string `form:"from" binding:"omitempty,txn_date"`
	To   string `form:"to" binding:"omitempty,txn_date"`
}

// CreateTransaction records a new transaction
// @Summary     Record a transaction
// @Description Record a new financial event
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txn, err := h.store.AddTransaction(c.Request.Context(), models.TransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Type:        req.Type,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// ListTransactions returns a paginated, filtered transaction list
// @Summary     List transactions
// @Description List transactions, optionally filtered by type and date range
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Filter by transaction type"
// @Param       from query string false "Range start (YYYY-MM-DD, inclusive)"
// @Param       to query string false "Range end (YYYY-MM-DD, inclusive)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var typ *models.TransactionType
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		typ = &t
	}

	var txns []models.Transaction
	switch {
	case q.From != "" || q.To != "":
		from, to, err := normalizeRange(q.From, q.To)
		if err != nil {
			respondWithError(c, err)
			return
		}
		txns = h.store.ByDateRange(from, to, typ)
	case typ != nil:
		txns = h.store.ByType(*typ)
	default:
		txns = h.store.All()
	}

	c.JSON(http.StatusOK, pagination.Paginate(txns, q.PageRequest))
}

// GetTransactionByID returns a single transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	txn, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// UpdateTransaction merges field updates onto an existing transaction
// @Summary     Update a transaction
// @Description Update fields of an existing transaction; absent fields are untouched
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txn, err := h.store.UpdateTransaction(c.Request.Context(), c.Param("id"), models.TransactionPatch{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Type:        req.Type,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// DeleteTransaction removes a transaction permanently
// @Summary     Delete a transaction
// @Description Delete a transaction; deleting an unknown ID is a no-op
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	h.store.RemoveTransaction(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// normalizeRange fills in open range bounds and converts both to the
// canonical date form.
func normalizeRange(from, to string) (string, string, error) {
	const (
		minDate = "0000-01-01"
		maxDate = "9999-12-31"
	)
	if from == "" {
		from = minDate
	} else {
		normalized, err := models.NormalizeDate(from)
		if err != nil {
			return "", "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		from = normalized
	}
	if to == "" {
		to = maxDate
	} else {
		normalized, err := models.NormalizeDate(to)
		if err != nil {
			return "", "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		to = normalized
	}
	return from, to, nil
}
