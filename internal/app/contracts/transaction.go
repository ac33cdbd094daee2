package contracts

import "context"

// TransactionManager runs fn inside one database transaction. The ctx passed
// to fn carries the transaction handle; repository calls made with that ctx
// join the transaction. fn returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error
}
