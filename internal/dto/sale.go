package dto

import (
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the payload for registering a day's sale.
type CreateSaleRequest struct {
	Date      string          `json:"date" binding:"required" example:"2024-05-02"`
	TipAmount decimal.Decimal `json:"tipAmount" swaggertype:"string" example:"20.00"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID           string          `json:"saleID"`
	Date             string          `json:"date"`
	TipAmount        decimal.Decimal `json:"tipAmount" swaggertype:"string"`
	Closed           bool            `json:"closed"`
	TipTransactionID *string         `json:"tipTransactionID,omitempty"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:           s.SaleID,
		Date:             formatDate(s.Date),
		TipAmount:        s.TipAmount,
		Closed:           s.Closed,
		TipTransactionID: s.TipTransactionID,
	}
}
