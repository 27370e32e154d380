package repository

import "context"

// TxManager runs a function inside a single store transaction. Repositories
// participating in the transaction pick it up from the context, so every
// write issued by fn either commits together or not at all.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
