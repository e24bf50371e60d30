package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	repos  portsrepo.RepositoryProvider
	ledger *domain.Ledger
	day    time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = memory.NewRepositoryProvider(memory.NewStore())
	s.day = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	ledger, err := s.repos.LedgerRepo.GetOrCreateLedger(s.ctx, "vestat", time.Now())
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *StoreTestSuite) newTxn(day time.Time, amount int64) domain.Transaction {
	txn := domain.NewTransaction(s.ledger.LedgerID, day, "t").
		AddEntry(decimal.NewFromInt(amount), "bens:caixa").
		AddEntry(decimal.NewFromInt(-amount), "entrada:vendas")
	txn.AuditFields = domain.NewAuditFields("u1", time.Now())
	return *txn
}

func (s *StoreTestSuite) TestGetOrCreateLedger_Idempotent() {
	again, err := s.repos.LedgerRepo.GetOrCreateLedger(s.ctx, "vestat", time.Now())
	s.Require().NoError(err)
	s.Equal(s.ledger.LedgerID, again.LedgerID)

	byName, err := s.repos.LedgerRepo.FindLedgerByName(s.ctx, "vestat")
	s.Require().NoError(err)
	s.Equal(s.ledger.LedgerID, byName.LedgerID)

	_, err = s.repos.LedgerRepo.FindLedgerByName(s.ctx, "other")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestRunInTx_RollbackOnError() {
	boom := errors.New("boom")
	txn := s.newTxn(s.day, 10)

	err := s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(ctx, txn))
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound, "rolled back writes are not visible")
}

func (s *StoreTestSuite) TestRunInTx_RollbackOnPanic() {
	txn := s.newTxn(s.day, 10)
	s.Panics(func() {
		_ = s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
			_ = s.repos.TransactionRepo.SaveTransaction(ctx, txn)
			panic("unexpected")
		})
	})
	_, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestRunInTx_NestedJoins() {
	outer := s.newTxn(s.day, 1)
	inner := s.newTxn(s.day, 2)

	err := s.repos.TxManager.RunInTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(ctx, outer))
		return s.repos.TxManager.RunInTx(ctx, func(ctx context.Context) error {
			return s.repos.TransactionRepo.SaveTransaction(ctx, inner)
		})
	})
	s.Require().NoError(err)

	all, err := s.repos.TransactionRepo.ListLedgerTransactions(s.ctx, s.ledger.LedgerID, domain.DateRange{})
	s.Require().NoError(err)
	s.Len(all, 2)
	s.Equal(outer.TransactionID, all[0].TransactionID, "same day keeps insertion order")
}

func (s *StoreTestSuite) TestSumAccount() {
	for i, amount := range []int64{1, 2, 4} {
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, s.newTxn(s.day.AddDate(0, 0, i), amount)))
	}
	d2 := s.day.AddDate(0, 0, 1)

	sum, err := s.repos.TransactionRepo.SumAccount(s.ctx, s.ledger.LedgerID, "bens:caixa", domain.DateRange{})
	s.Require().NoError(err)
	s.Equal("7", sum.String())

	sum, err = s.repos.TransactionRepo.SumAccount(s.ctx, s.ledger.LedgerID, "bens:caixa", domain.DateRange{From: &d2, To: &d2})
	s.Require().NoError(err)
	s.Equal("2", sum.String())

	sum, err = s.repos.TransactionRepo.SumAccount(s.ctx, s.ledger.LedgerID, "bens", domain.DateRange{})
	s.Require().NoError(err)
	s.True(sum.IsZero(), "parent accounts do not include children")
}

func (s *StoreTestSuite) TestListTransactionsPage() {
	var ids []string
	for i := 0; i < 5; i++ {
		txn := s.newTxn(s.day.AddDate(0, 0, i), int64(i+1))
		ids = append(ids, txn.TransactionID)
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))
	}

	page, next, err := s.repos.TransactionRepo.ListTransactionsPage(s.ctx, s.ledger.LedgerID, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Require().NotNil(next)
	s.Equal(ids[4], page[0].TransactionID, "newest first")
	s.Equal(ids[3], page[1].TransactionID)

	page, next, err = s.repos.TransactionRepo.ListTransactionsPage(s.ctx, s.ledger.LedgerID, 2, next)
	s.Require().NoError(err)
	s.Equal([]string{ids[2], ids[1]}, []string{page[0].TransactionID, page[1].TransactionID})

	page, next, err = s.repos.TransactionRepo.ListTransactionsPage(s.ctx, s.ledger.LedgerID, 2, next)
	s.Require().NoError(err)
	s.Len(page, 1)
	s.Nil(next)

	bad := "%%%"
	_, _, err = s.repos.TransactionRepo.ListTransactionsPage(s.ctx, s.ledger.LedgerID, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestSaleReferenceIntegrity() {
	txn := s.newTxn(s.day, 5)
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))

	sale, err := domain.NewSale(s.day, decimal.NewFromInt(5), "u1", time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.repos.SaleRepo.SaveSale(s.ctx, *sale))

	missing := "nope"
	sale.TipTransactionID = &missing
	s.ErrorIs(s.repos.SaleRepo.UpdateSale(s.ctx, *sale), apperrors.ErrNotFound)

	sale.TipTransactionID = &txn.TransactionID
	s.Require().NoError(s.repos.SaleRepo.UpdateSale(s.ctx, *sale))

	owner, err := s.repos.SaleRepo.FindSaleByTipTransactionID(s.ctx, txn.TransactionID)
	s.Require().NoError(err)
	s.Equal(sale.SaleID, owner.SaleID)

	s.ErrorIs(s.repos.TransactionRepo.DeleteTransaction(s.ctx, txn.TransactionID), apperrors.ErrConflict)

	s.ErrorIs(s.repos.SaleRepo.DeleteSale(s.ctx, "unknown"), apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestPayouts() {
	cash, err := domain.NewPayout(domain.PayoutSourceCash, domain.TipPayoutCategory, decimal.NewFromInt(10), s.day, "", "u1", time.Now())
	s.Require().NoError(err)
	bank, err := domain.NewPayout(domain.PayoutSourceBank, domain.TipPayoutCategory, decimal.NewFromInt(-5), s.day.AddDate(0, 0, 2), "", "u1", time.Now())
	s.Require().NoError(err)
	other, err := domain.NewPayout(domain.PayoutSourceCash, "aluguel", decimal.NewFromInt(100), s.day, "", "u1", time.Now())
	s.Require().NoError(err)
	for _, p := range []*domain.Payout{bank, cash, other} {
		s.Require().NoError(s.repos.PayoutRepo.SavePayout(s.ctx, *p))
	}

	sum, err := s.repos.PayoutRepo.SumPayouts(s.ctx, domain.TipPayoutCategory, domain.UpTo(s.day.AddDate(0, 0, 1)))
	s.Require().NoError(err)
	s.Equal("-10", sum.String())

	sum, err = s.repos.PayoutRepo.SumPayouts(s.ctx, domain.TipPayoutCategory, domain.DateRange{})
	s.Require().NoError(err)
	s.Equal("-15", sum.String())

	list, err := s.repos.PayoutRepo.ListPayouts(s.ctx, domain.TipPayoutCategory, domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(cash.PayoutID, list[0].PayoutID, "oldest first")
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ledger, err := repos.LedgerRepo.GetOrCreateLedger(ctx, "vestat", time.Now())
	require.NoError(t, err)

	txn := domain.NewTransaction(ledger.LedgerID, time.Now(), "x").
		AddEntry(decimal.NewFromInt(1), "a").
		AddEntry(decimal.NewFromInt(-1), "b")
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, *txn))

	got, err := repos.TransactionRepo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	got.Entries[0].AccountPath = "mutated"

	again, err := repos.TransactionRepo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Entries[0].AccountPath)
}
