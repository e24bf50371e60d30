package dto

import (
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayoutRequest records a cash expense or bank movement.
// An empty category defaults to the tip payout category.
type CreatePayoutRequest struct {
	Source      string          `json:"source" binding:"required,oneof=CASH BANK cash bank" example:"CASH"`
	Category    string          `json:"category" example:"10"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"10.00"`
	Date        string          `json:"date" binding:"required" example:"2024-05-03"`
	Description string          `json:"description" binding:"max=255"`
}

// PayoutResponse defines the data returned for a payout record.
type PayoutResponse struct {
	PayoutID    string          `json:"payoutID"`
	Source      string          `json:"source"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// OwedResponse is the amount owed to staff as of a day.
type OwedResponse struct {
	Date string          `json:"date"`
	Owed decimal.Decimal `json:"owed" swaggertype:"string"`
}

// ToPayoutResponse converts a domain.Payout to PayoutResponse DTO.
func ToPayoutResponse(p *domain.Payout) PayoutResponse {
	return PayoutResponse{
		PayoutID:    p.PayoutID,
		Source:      string(p.Source),
		Category:    p.Category,
		Amount:      p.Amount,
		Date:        formatDate(p.Date),
		Description: p.Description,
	}
}

// ToPayoutResponses converts a slice of domain.Payout.
func ToPayoutResponses(payouts []domain.Payout) []PayoutResponse {
	responses := make([]PayoutResponse, len(payouts))
	for i := range payouts {
		responses[i] = ToPayoutResponse(&payouts[i])
	}
	return responses
}
