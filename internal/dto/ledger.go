package dto

import (
	"github.com/duasfl8r/vestat/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BalanceParams defines query parameters for a balance query.
type BalanceParams struct {
	Account string `form:"account" binding:"required"`
	From    string `form:"from"`
	To      string `form:"to"`
	// Subtree includes descendant accounts when set.
	Subtree bool `form:"subtree"`
}

// BalanceResponse is the result of a balance query.
type BalanceResponse struct {
	Ledger  string          `json:"ledger"`
	Account string          `json:"account"`
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Subtree bool            `json:"subtree"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`
}

// AccountTreeResponse carries the digested tree plus rolled-up totals per account.
type AccountTreeResponse struct {
	Tree   *accounting.AccountTree    `json:"tree"`
	Totals map[string]decimal.Decimal `json:"totals"`
}
