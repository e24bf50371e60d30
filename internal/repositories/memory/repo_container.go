package memory

import portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"

// NewRepositoryProvider wires every repository to one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:      &ledgerRepository{store: store},
		TransactionRepo: &transactionRepository{store: store},
		SaleRepo:        &saleRepository{store: store},
		PayoutRepo:      &payoutRepository{store: store},
		TxManager:       store,
	}
}
