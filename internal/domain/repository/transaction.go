package repository

import "context"

// TransactionManager runs use case work atomically. Repositories obtained from
// the factory passed to fn share the transaction; returning an error rolls
// everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewCatalogRepository() CatalogRepository
	NewOrderRepository() OrderRepository
}
