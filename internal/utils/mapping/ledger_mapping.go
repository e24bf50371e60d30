package mapping

import (
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/models"
)

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{LedgerID: m.LedgerID, Name: m.Name, CreatedAt: m.CreatedAt}
}

// ToModelLedgerTransaction converts a domain Transaction header to its row.
func ToModelLedgerTransaction(d domain.Transaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID:   d.TransactionID,
		LedgerID:        d.LedgerID,
		TransactionDate: domain.DateOnly(d.Date),
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToModelLedgerEntries converts the entries of a domain Transaction to rows.
// Position is taken from the slice index so insertion order survives a round trip.
func ToModelLedgerEntries(d domain.Transaction) []models.LedgerEntry {
	rows := make([]models.LedgerEntry, len(d.Entries))
	for i, e := range d.Entries {
		rows[i] = models.LedgerEntry{
			EntryID:       e.EntryID,
			TransactionID: d.TransactionID,
			Position:      i,
			Amount:        e.Amount,
			AccountPath:   e.AccountPath,
		}
	}
	return rows
}

// ToDomainTransaction assembles a domain Transaction from its row and its entry rows,
// which must already be ordered by position.
func ToDomainTransaction(m models.LedgerTransaction, entries []models.LedgerEntry) domain.Transaction {
	t := domain.Transaction{
		TransactionID: m.TransactionID,
		LedgerID:      m.LedgerID,
		Date:          domain.DateOnly(m.TransactionDate),
		Description:   m.Description,
		Entries:       make([]domain.Entry, len(entries)),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	for i, e := range entries {
		t.Entries[i] = domain.Entry{
			EntryID:       e.EntryID,
			TransactionID: e.TransactionID,
			Amount:        e.Amount,
			AccountPath:   e.AccountPath,
			Position:      e.Position,
		}
	}
	return t
}
