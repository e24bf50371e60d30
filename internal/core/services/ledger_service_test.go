package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/core/services"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/duasfl8r/vestat/internal/events"
	"github.com/duasfl8r/vestat/internal/repositories/memory"
	"github.com/duasfl8r/vestat/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testLedger = "vestat"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rangeOf(from, to string) domain.DateRange {
	var r domain.DateRange
	if from != "" {
		f := day(from)
		r.From = &f
	}
	if to != "" {
		t := day(to)
		r.To = &t
	}
	return r
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	repos     portsrepo.RepositoryProvider
	publisher *events.RecordingPublisher
	service   portssvc.LedgerSvcFacade
	ledger    *domain.Ledger
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.publisher = &events.RecordingPublisher{}
	suite.service = services.NewLedgerService(suite.repos, services.WithEventPublisher(suite.publisher))

	ledger, err := suite.service.GetOrCreateLedger(suite.ctx, testLedger)
	suite.Require().NoError(err)
	suite.ledger = ledger
}

func (suite *LedgerServiceTestSuite) create(date string, entries ...dto.EntryRequest) *domain.Transaction {
	txn, err := suite.service.CreateTransaction(suite.ctx, testLedger, dto.CreateTransactionRequest{
		Date:        date,
		Description: "movimento",
		Entries:     entries,
	}, "admin")
	suite.Require().NoError(err)
	return txn
}

func entry(amount, account string) dto.EntryRequest {
	return dto.EntryRequest{Amount: dec(amount), Account: account}
}

func (suite *LedgerServiceTestSuite) balance(account string, r domain.DateRange) decimal.Decimal {
	b, err := suite.service.Balance(suite.ctx, testLedger, account, r)
	suite.Require().NoError(err)
	return b
}

func (suite *LedgerServiceTestSuite) TestGetOrCreateLedger_ReturnsSameLedger() {
	again, err := suite.service.GetOrCreateLedger(suite.ctx, testLedger)
	suite.Require().NoError(err)
	suite.Equal(suite.ledger.LedgerID, again.LedgerID)

	_, err = suite.service.GetOrCreateLedger(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	txn := suite.create("2024-05-02",
		entry("-10.00", "entrada:vendas"),
		entry("10.00", "bens:caixa"),
	)

	suite.Equal(suite.ledger.LedgerID, txn.LedgerID)
	suite.Equal("admin", txn.CreatedBy)
	suite.Len(txn.Entries, 2)
	suite.True(suite.balance("bens:caixa", domain.DateRange{}).Equal(dec("10")))
	suite.True(suite.balance("entrada:vendas", domain.DateRange{}).Equal(dec("-10")))

	published := suite.publisher.Events()
	suite.Require().Len(published, 1)
	suite.Equal(domain.EventTransactionCreated, published[0].Type)
	suite.Equal(txn.TransactionID, published[0].TransactionID)
	suite.Equal("2024-05-02", published[0].Date)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsWithoutSideEffects() {
	tests := []struct {
		name    string
		req     dto.CreateTransactionRequest
		wantErr error
	}{
		{
			name: "unbalanced",
			req: dto.CreateTransactionRequest{Date: "2024-05-02", Entries: []dto.EntryRequest{
				entry("-10.00", "entrada:vendas"), entry("9.99", "bens:caixa"),
			}},
			wantErr: domain.ErrUnbalancedTransaction,
		},
		{
			name: "empty account path",
			req: dto.CreateTransactionRequest{Date: "2024-05-02", Entries: []dto.EntryRequest{
				entry("-10.00", ""), entry("10.00", "bens:caixa"),
			}},
			wantErr: domain.ErrEmptyAccountPath,
		},
		{
			name: "empty segment",
			req: dto.CreateTransactionRequest{Date: "2024-05-02", Entries: []dto.EntryRequest{
				entry("-10.00", "bens::caixa"), entry("10.00", "bens:caixa"),
			}},
			wantErr: domain.ErrInvalidAccountPath,
		},
		{
			name:    "bad date",
			req:     dto.CreateTransactionRequest{Date: "02/05/2024"},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			txn, err := suite.service.CreateTransaction(suite.ctx, testLedger, tt.req, "admin")
			suite.Nil(txn)
			suite.ErrorIs(err, tt.wantErr)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}

	suite.True(suite.balance("bens:caixa", domain.DateRange{}).IsZero())
	page, err := suite.service.ListTransactions(suite.ctx, testLedger, dto.ListTransactionsParams{})
	suite.Require().NoError(err)
	suite.Empty(page.Transactions)
	suite.Empty(suite.publisher.Events())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_UnknownLedger() {
	_, err := suite.service.CreateTransaction(suite.ctx, "nope", dto.CreateTransactionRequest{Date: "2024-05-02"}, "admin")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NoEntriesIsAccepted() {
	txn := suite.create("2024-05-02")
	suite.Empty(txn.Entries)
}

func (suite *LedgerServiceTestSuite) TestBalance_ExactMatchAndInclusiveDates() {
	suite.create("2024-05-01", entry("5", "bens:caixa"), entry("-5", "entrada:vendas"))
	suite.create("2024-05-02", entry("7", "bens:caixa:troco"), entry("-7", "entrada:vendas"))
	suite.create("2024-05-03", entry("11", "bens:caixa"), entry("-11", "entrada:vendas"))

	// children are not included
	suite.True(suite.balance("bens:caixa", domain.DateRange{}).Equal(dec("16")))
	suite.True(suite.balance("bens", domain.DateRange{}).IsZero())

	// both endpoints are inclusive
	suite.True(suite.balance("bens:caixa", rangeOf("2024-05-01", "2024-05-01")).Equal(dec("5")))
	suite.True(suite.balance("bens:caixa", rangeOf("2024-05-01", "2024-05-03")).Equal(dec("16")))
	suite.True(suite.balance("bens:caixa", rangeOf("2024-05-02", "")).Equal(dec("11")))
	suite.True(suite.balance("bens:caixa", rangeOf("", "2024-05-02")).Equal(dec("5")))

	// additivity over adjacent ranges
	whole := suite.balance("entrada:vendas", rangeOf("2024-05-01", "2024-05-03"))
	left := suite.balance("entrada:vendas", rangeOf("2024-05-01", "2024-05-02"))
	right := suite.balance("entrada:vendas", rangeOf("2024-05-03", "2024-05-03"))
	suite.True(whole.Equal(left.Add(right)))

	total, err := suite.service.SubtreeTotal(suite.ctx, testLedger, "bens", domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(total.Equal(dec("23")))

	missing, err := suite.service.SubtreeTotal(suite.ctx, testLedger, "gastos", domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(missing.IsZero())
}

func (suite *LedgerServiceTestSuite) TestBalance_EmptyLedgerIsZero() {
	suite.True(suite.balance("bens:caixa", domain.DateRange{}).IsZero())

	_, err := suite.service.Balance(suite.ctx, testLedger, "", domain.DateRange{})
	suite.ErrorIs(err, domain.ErrEmptyAccountPath)
}

func (suite *LedgerServiceTestSuite) TestAccountTree_MatchesDigestedTransactions() {
	a := suite.create("2024-05-01", entry("5", "bens:caixa"), entry("-5", "entrada:vendas"))
	b := suite.create("2024-05-02", entry("3", "bens:banco"), entry("-3", "entrada:vendas:cartao"))

	tree, err := suite.service.AccountTree(suite.ctx, testLedger, domain.DateRange{})
	suite.Require().NoError(err)

	suite.True(tree.Equal(accounting.DigestTransactions([]domain.Transaction{*a, *b})))
	suite.True(tree.Total().IsZero())
	suite.True(tree.Node("bens").Total().Equal(dec("8")))

	partial, err := suite.service.AccountTree(suite.ctx, testLedger, rangeOf("2024-05-02", "2024-05-02"))
	suite.Require().NoError(err)
	suite.Nil(partial.Node("bens:caixa"))
}

func (suite *LedgerServiceTestSuite) TestListTransactions_NewestFirstWithPages() {
	first := suite.create("2024-05-01", entry("1", "bens:caixa"), entry("-1", "entrada:vendas"))
	second := suite.create("2024-05-02", entry("2", "bens:caixa"), entry("-2", "entrada:vendas"))
	third := suite.create("2024-05-03", entry("3", "bens:caixa"), entry("-3", "entrada:vendas"))

	page, err := suite.service.ListTransactions(suite.ctx, testLedger, dto.ListTransactionsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(page.Transactions, 2)
	suite.Equal(third.TransactionID, page.Transactions[0].TransactionID)
	suite.Equal(second.TransactionID, page.Transactions[1].TransactionID)
	suite.Equal([]string{"bens:caixa", "entrada:vendas"}, page.Transactions[0].Accounts)
	suite.Require().NotNil(page.NextToken)

	rest, err := suite.service.ListTransactions(suite.ctx, testLedger, dto.ListTransactionsParams{Limit: 2, NextToken: page.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(rest.Transactions, 1)
	suite.Equal(first.TransactionID, rest.Transactions[0].TransactionID)
	suite.Nil(rest.NextToken)

	bad := "not-a-token"
	_, err = suite.service.ListTransactions(suite.ctx, testLedger, dto.ListTransactionsParams{NextToken: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction() {
	txn := suite.create("2024-05-01", entry("5", "bens:caixa"), entry("-5", "entrada:vendas"))

	suite.Require().NoError(suite.service.DeleteTransaction(suite.ctx, txn.TransactionID, "admin"))
	suite.True(suite.balance("bens:caixa", domain.DateRange{}).IsZero())

	_, err := suite.service.GetTransaction(suite.ctx, txn.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.service.DeleteTransaction(suite.ctx, txn.TransactionID, "admin")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	published := suite.publisher.Events()
	suite.Require().Len(published, 2)
	suite.Equal(domain.EventTransactionDeleted, published[1].Type)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_TipAccrualIsProtected() {
	tips := services.NewTipService(suite.repos, staticSplit{StaffShares: 3, HouseShares: 1}, suite.ledger.LedgerID)
	sale, err := tips.CreateSale(suite.ctx, dto.CreateSaleRequest{Date: "2024-05-02", TipAmount: dec("20.00")}, "admin")
	suite.Require().NoError(err)
	sale, err = tips.CloseSale(suite.ctx, sale.SaleID, "admin")
	suite.Require().NoError(err)

	err = suite.service.DeleteTransaction(suite.ctx, *sale.TipTransactionID, "admin")
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.service.GetTransaction(suite.ctx, *sale.TipTransactionID)
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestPublishFailureDoesNotUndoCreate() {
	suite.publisher.Err = assert.AnError

	txn := suite.create("2024-05-01", entry("5", "bens:caixa"), entry("-5", "entrada:vendas"))

	stored, err := suite.service.GetTransaction(suite.ctx, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal(txn.TransactionID, stored.TransactionID)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
