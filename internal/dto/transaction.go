package dto

import (
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRequest is one line of a transaction to create.
type EntryRequest struct {
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"10.00"`
	Account string          `json:"account" example:"bens:caixa"`
}

// CreateTransactionRequest defines the payload for recording a ledger transaction.
type CreateTransactionRequest struct {
	Date        string         `json:"date" binding:"required" example:"2024-05-02"`
	Description string         `json:"description" binding:"max=255"`
	Entries     []EntryRequest `json:"entries"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for one entry.
type EntryResponse struct {
	EntryID string          `json:"entryID"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string"`
	Account string          `json:"account"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	LedgerID      string          `json:"ledgerID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Entries       []EntryResponse `json:"entries"`
	Accounts      []string        `json:"accounts"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(txn.Entries))
	for i, e := range txn.Entries {
		entries[i] = EntryResponse{EntryID: e.EntryID, Amount: e.Amount, Account: e.AccountPath}
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		LedgerID:      txn.LedgerID,
		Date:          formatDate(txn.Date),
		Description:   txn.Description,
		Entries:       entries,
		Accounts:      txn.InvolvedAccounts(),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
