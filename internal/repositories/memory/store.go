// Package memory holds in-process repositories used for development and tests.
// One mutex guards the whole store; a unit of work holds it until it ends.
package memory

import (
	"context"
	"sync"

	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
)

type txKey struct{}

// Store is the shared state behind the memory repositories.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	ledgers      map[string]domain.Ledger
	transactions map[string]domain.Transaction
	seq          map[string]int64 // transaction insertion order
	nextSeq      int64
	sales        map[string]domain.Sale
	payouts      []domain.Payout
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: &state{
		ledgers:      make(map[string]domain.Ledger),
		transactions: make(map[string]domain.Transaction),
		seq:          make(map[string]int64),
		sales:        make(map[string]domain.Sale),
	}}
}

var _ portsrepo.TxManager = (*Store)(nil)

// RunInTx runs fn with the store locked. If fn fails or panics, every change it made is undone.
// Calls nested inside an active unit of work join it.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	committed := false
	defer func() {
		if !committed {
			s.state = snapshot
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// with runs fn against the state, taking the lock unless ctx already holds it.
func (s *Store) with(ctx context.Context, fn func(st *state) error) error {
	if s.inTx(ctx) {
		return fn(s.state)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func (st *state) clone() *state {
	c := &state{
		ledgers:      make(map[string]domain.Ledger, len(st.ledgers)),
		transactions: make(map[string]domain.Transaction, len(st.transactions)),
		seq:          make(map[string]int64, len(st.seq)),
		nextSeq:      st.nextSeq,
		sales:        make(map[string]domain.Sale, len(st.sales)),
		payouts:      append([]domain.Payout(nil), st.payouts...),
	}
	for k, v := range st.ledgers {
		c.ledgers[k] = v
	}
	for k, v := range st.transactions {
		c.transactions[k] = v
	}
	for k, v := range st.seq {
		c.seq[k] = v
	}
	for k, v := range st.sales {
		c.sales[k] = v
	}
	return c
}

func copyTransaction(t domain.Transaction) domain.Transaction {
	t.Entries = append([]domain.Entry(nil), t.Entries...)
	return t
}

func copySale(s domain.Sale) domain.Sale {
	if s.TipTransactionID != nil {
		id := *s.TipTransactionID
		s.TipTransactionID = &id
	}
	return s
}
