package accounting

import (
	"context"
	"fmt"
	"sort"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountTree groups entries by the segments of their account paths.
// The root node stands for the empty path. Entries sit on the node where their path ends.
type AccountTree struct {
	Entries  []domain.Entry          `json:"entries"`
	Children map[string]*AccountTree `json:"children"`
}

// NewAccountTree returns an empty root node.
func NewAccountTree() *AccountTree {
	return &AccountTree{Entries: []domain.Entry{}, Children: map[string]*AccountTree{}}
}

// LedgerTransactionLister is the read side needed to digest a whole ledger.
type LedgerTransactionLister interface {
	ListLedgerTransactions(ctx context.Context, ledgerID string, r domain.DateRange) ([]domain.Transaction, error)
}

// Digest adds one entry to the tree, creating intermediate nodes as needed.
func (t *AccountTree) Digest(e domain.Entry) {
	node := t
	for _, segment := range domain.SplitAccountPath(e.AccountPath) {
		child, ok := node.Children[segment]
		if !ok {
			child = NewAccountTree()
			node.Children[segment] = child
		}
		node = child
	}
	node.Entries = append(node.Entries, e)
}

// DigestEntries builds a tree from entries in the order given.
func DigestEntries(entries []domain.Entry) *AccountTree {
	tree := NewAccountTree()
	for _, e := range entries {
		tree.Digest(e)
	}
	return tree
}

// DigestTransactions builds a tree from the entries of transactions.
func DigestTransactions(transactions []domain.Transaction) *AccountTree {
	return DigestEntries(FlattenEntries(transactions))
}

// DigestLedger builds a tree from every transaction of a ledger inside r.
func DigestLedger(ctx context.Context, lister LedgerTransactionLister, ledgerID string, r domain.DateRange) (*AccountTree, error) {
	transactions, err := lister.ListLedgerTransactions(ctx, ledgerID, r)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions of ledger %s: %w", ledgerID, err)
	}
	return DigestTransactions(transactions), nil
}

// Node returns the subtree for an account path, or nil if no entry reached it.
// The empty path returns the tree itself.
func (t *AccountTree) Node(path string) *AccountTree {
	node := t
	for _, segment := range domain.SplitAccountPath(path) {
		child, ok := node.Children[segment]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Balance sums the entries that end exactly at this node.
func (t *AccountTree) Balance() decimal.Decimal {
	return SumEntries(t.Entries)
}

// Total sums this node and all of its descendants.
func (t *AccountTree) Total() decimal.Decimal {
	total := t.Balance()
	for _, child := range t.Children {
		total = total.Add(child.Total())
	}
	return total
}

// Walk visits every node depth-first, children in name order, with its full path.
// The root is visited with the empty path.
func (t *AccountTree) Walk(fn func(path string, node *AccountTree)) {
	t.walk("", fn)
}

func (t *AccountTree) walk(path string, fn func(string, *AccountTree)) {
	fn(path, t)
	names := make([]string, 0, len(t.Children))
	for name := range t.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		childPath := name
		if path != "" {
			childPath = path + domain.AccountSeparator + name
		}
		t.Children[name].walk(childPath, fn)
	}
}

// Totals maps every non-root node path to its rolled-up total.
func (t *AccountTree) Totals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	t.Walk(func(path string, node *AccountTree) {
		if path != "" {
			totals[path] = node.Total()
		}
	})
	return totals
}

// Equal compares two trees structurally. Entry lists are compared in order.
func (t *AccountTree) Equal(other *AccountTree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Entries) != len(other.Entries) || len(t.Children) != len(other.Children) {
		return false
	}
	for i := range t.Entries {
		if !entriesEqual(t.Entries[i], other.Entries[i]) {
			return false
		}
	}
	for name, child := range t.Children {
		otherChild, ok := other.Children[name]
		if !ok || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

func entriesEqual(a, b domain.Entry) bool {
	return a.EntryID == b.EntryID &&
		a.TransactionID == b.TransactionID &&
		a.AccountPath == b.AccountPath &&
		a.Position == b.Position &&
		a.Amount.Equal(b.Amount)
}
