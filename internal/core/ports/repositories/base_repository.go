package repositories

import "context"

// TxManager runs a unit of work atomically. Repository calls made with the
// context handed to fn take part in the same unit; if fn returns an error
// nothing it wrote is kept.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
