package repositories

import (
	"context"
)

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// WithinTx calls fn with a context bound to a transaction. The transaction
	// commits when fn returns nil and rolls back otherwise. Repository calls made
	// with the derived context join the transaction; nested calls reuse it.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
