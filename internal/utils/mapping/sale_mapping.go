package mapping

import (
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	m := models.Sale{
		SaleID:      d.SaleID,
		SaleDate:    domain.DateOnly(d.Date),
		TipAmount:   d.TipAmount,
		Closed:      d.Closed,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.HasTipTransaction() {
		id := *d.TipTransactionID
		m.TipTransactionID = &id
	}
	return m
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:           m.SaleID,
		Date:             domain.DateOnly(m.SaleDate),
		TipAmount:        m.TipAmount,
		Closed:           m.Closed,
		TipTransactionID: m.TipTransactionID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayout converts a domain Payout to a model Payout
func ToModelPayout(d domain.Payout) models.Payout {
	return models.Payout{
		PayoutID:    d.PayoutID,
		Source:      string(d.Source),
		Category:    d.Category,
		Amount:      d.Amount,
		PayoutDate:  domain.DateOnly(d.Date),
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayout converts a model Payout to a domain Payout
func ToDomainPayout(m models.Payout) domain.Payout {
	return domain.Payout{
		PayoutID:    m.PayoutID,
		Source:      domain.PayoutSource(m.Source),
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        domain.DateOnly(m.PayoutDate),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
