package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/duasfl8r/vestat/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ledgerHandler handles HTTP requests on ledgers and their transactions.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to ledgers and transactions.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers/:ledgerName")
	{
		ledgers.GET("/balance", h.getBalance)
		ledgers.GET("/tree", h.getTree)
		ledgers.GET("/transactions", h.listTransactions)
		ledgers.POST("/transactions", h.createTransaction)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// getBalance godoc
// @Summary Balance of an account
// @Description Sums the entries posted exactly on an account between two days, both inclusive. With subtree=true descendant accounts are included.
// @Tags ledgers
// @Produce json
// @Param ledgerName path string true "Ledger name"
// @Param account query string true "Account path, e.g. bens:caixa"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param subtree query bool false "Include descendant accounts"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ledger not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledgers/{ledgerName}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	ledgerName := c.Param("ledgerName")

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	r, err := dto.ParseDateRange(params.From, params.To)
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	var balance decimal.Decimal
	if params.Subtree {
		balance, err = h.ledgerService.SubtreeTotal(c.Request.Context(), ledgerName, params.Account, r)
	} else {
		balance, err = h.ledgerService.Balance(c.Request.Context(), ledgerName, params.Account, r)
	}
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Ledger:  ledgerName,
		Account: params.Account,
		From:    params.From,
		To:      params.To,
		Subtree: params.Subtree,
		Balance: balance,
	})
}

// getTree godoc
// @Summary Account tree
// @Description Digests the ledger's entries into a tree keyed by account path segment, with rolled-up totals.
// @Tags ledgers
// @Produce json
// @Param ledgerName path string true "Ledger name"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountTreeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledgers/{ledgerName}/tree [get]
func (h *ledgerHandler) getTree(c *gin.Context) {
	r, err := dto.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to build account tree")
		return
	}

	tree, err := h.ledgerService.AccountTree(c.Request.Context(), c.Param("ledgerName"), r)
	if err != nil {
		respondError(c, err, "Failed to build account tree")
		return
	}

	c.JSON(http.StatusOK, dto.AccountTreeResponse{Tree: tree, Totals: tree.Totals()})
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists a ledger's transactions newest first, with token-based pagination.
// @Tags transactions
// @Produce json
// @Param ledgerName path string true "Ledger name"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledgers/{ledgerName}/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), c.Param("ledgerName"), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a dated transaction. Its entries must sum to exactly zero and every account path must be non-empty.
// @Tags transactions
// @Accept json
// @Produce json
// @Param ledgerName path string true "Ledger name"
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Unbalanced entries or invalid account path"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Ledger not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledgers/{ledgerName}/transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), c.Param("ledgerName"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and its entries. Tip accrual transactions are removed through their sale instead.
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Owned by a sale"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("transactionID"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
